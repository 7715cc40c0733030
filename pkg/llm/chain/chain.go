package chain

import (
	"ai-study-assistant-be/pkg/llm"
	"ai-study-assistant-be/pkg/retry"
	"context"
	"fmt"
	"strings"
)

// DefaultModels is the ordered fallback chain. The smaller model goes
// first because it is faster and has a higher rate limit ceiling.
var DefaultModels = []string{
	"llama3-8b-8192",
	"llama3-70b-8192",
}

// Result is the outcome of a chained generation call. Callers branch on
// Err / QuotaExceeded rather than matching sentinel strings in Text.
type Result struct {
	Text          string
	Model         string
	Err           error
	QuotaExceeded bool
}

func (r Result) OK() bool {
	return r.Err == nil && r.Text != ""
}

// IsQuotaError reports whether an error from the provider looks like a
// rate limit or quota rejection.
func IsQuotaError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "quota") ||
		strings.Contains(msg, "429") ||
		strings.Contains(msg, "rate limit") ||
		strings.Contains(msg, "too many requests")
}

// Client walks an ordered model chain, retrying the whole chain with
// backoff when every model fails.
type Client struct {
	provider llm.LLMProvider
	models   []string
	policy   retry.Policy
}

func New(provider llm.LLMProvider, models []string, policy retry.Policy) *Client {
	if len(models) == 0 {
		models = DefaultModels
	}
	return &Client{
		provider: provider,
		models:   models,
		policy:   policy,
	}
}

// Models returns the chain order given an optional preferred model. The
// hint goes first, the remaining chain follows in its original order.
func (c *Client) Models(hint string) []string {
	if hint == "" {
		return c.models
	}
	ordered := make([]string, 0, len(c.models)+1)
	ordered = append(ordered, hint)
	for _, m := range c.models {
		if m != hint {
			ordered = append(ordered, m)
		}
	}
	return ordered
}

// Generate runs the prompt through the model chain. Each retry round
// walks the full chain before backing off.
func (c *Client) Generate(ctx context.Context, prompt string, hint string, opts ...llm.Option) Result {
	return c.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, hint, opts...)
}

// Chat is Generate with a full message history.
func (c *Client) Chat(ctx context.Context, history []llm.Message, hint string, opts ...llm.Option) Result {
	models := c.Models(hint)

	var out Result
	err := c.policy.Do(ctx, func() error {
		var lastErr error
		for _, model := range models {
			callOpts := append([]llm.Option{}, opts...)
			callOpts = append(callOpts, llm.WithModel(model))

			text, err := c.provider.Chat(ctx, history, callOpts...)
			if err == nil && strings.TrimSpace(text) != "" {
				out = Result{Text: text, Model: model}
				return nil
			}
			if err == nil {
				err = fmt.Errorf("model %s returned an empty response", model)
			}
			if IsQuotaError(err) {
				out.QuotaExceeded = true
			}
			lastErr = err
		}
		return lastErr
	})
	if err != nil {
		out.Err = err
		out.Text = ""
	}
	return out
}
