package study

import (
	"ai-study-assistant-be/pkg/health"
	"ai-study-assistant-be/pkg/llm"
	"ai-study-assistant-be/pkg/llm/chain"
	"ai-study-assistant-be/pkg/utils"
	"context"
	"errors"
	"strings"
	"time"
)

// ErrEmptyInput is the only error a capability run can surface. Every
// upstream failure degrades to the fallback payload instead.
var ErrEmptyInput = errors.New("no source text provided")

// Result is the outcome of one capability run.
type Result[P any] struct {
	Payload      P
	UsedFallback bool
	Model        string
	Err          error
}

// Capability describes one generation feature: its prompt, how to parse
// the model output, and what to produce when the AI path fails. The
// same truncated text feeds both paths.
type Capability[P any] struct {
	Name     string
	MaxChars int
	Timeout  time.Duration

	// Prompt builds the model prompt from the truncated document text.
	Prompt func(text string) string
	// Parse turns raw model output into the payload; false rejects it.
	Parse func(raw string) (P, bool)
	// Fallback produces the deterministic payload from the same text.
	Fallback func(text string) P
	// ModelHint optionally pins the first model to try.
	ModelHint string
	// MaxTokens bounds the completion size; zero means provider default.
	MaxTokens int
}

// Agent runs capabilities against the model chain with health gating.
// One agent is shared across all capabilities of the service.
type Agent struct {
	client  *chain.Client
	monitor *health.Monitor
}

func NewAgent(client *chain.Client, monitor *health.Monitor) *Agent {
	return &Agent{client: client, monitor: monitor}
}

// Run executes the capability. Empty input is the only error result;
// any AI-path failure silently switches to the fallback payload.
func Run[P any](ctx context.Context, a *Agent, c Capability[P], text string) Result[P] {
	if strings.TrimSpace(text) == "" {
		var zero P
		return Result[P]{Payload: zero, Err: ErrEmptyInput}
	}

	text = utils.Truncate(text, c.MaxChars)

	if st := a.monitor.Check(ctx); !st.Available {
		return fallbackResult(c, text)
	}

	callCtx := ctx
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	opts := buildOpts(c.MaxTokens)
	res := a.client.Generate(callCtx, c.Prompt(text), c.ModelHint, opts...)
	if !res.OK() {
		a.monitor.ReportFailure(res.Err)
		return fallbackResult(c, text)
	}
	a.monitor.ReportSuccess()

	payload, ok := c.Parse(res.Text)
	if !ok {
		return fallbackResult(c, text)
	}
	return Result[P]{Payload: payload, Model: res.Model}
}

func fallbackResult[P any](c Capability[P], text string) Result[P] {
	return Result[P]{Payload: c.Fallback(text), UsedFallback: true}
}

func buildOpts(maxTokens int) []llm.Option {
	if maxTokens > 0 {
		return []llm.Option{llm.WithMaxTokens(maxTokens)}
	}
	return nil
}
