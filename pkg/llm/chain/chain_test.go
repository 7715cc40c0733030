package chain

import (
	"ai-study-assistant-be/pkg/llm"
	"ai-study-assistant-be/pkg/retry"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedProvider struct {
	responses map[string]string
	errs      map[string]error
	calls     []string
}

func (s *scriptedProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	options := llm.ApplyOptions(opts)
	s.calls = append(s.calls, options.Model)
	if err, ok := s.errs[options.Model]; ok {
		return "", err
	}
	return s.responses[options.Model], nil
}

func (s *scriptedProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return s.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, opts...)
}

func noSleepPolicy(attempts int) retry.Policy {
	return retry.Policy{
		MaxAttempts: attempts,
		Delay:       2 * time.Second,
		Sleep:       func(ctx context.Context, d time.Duration) error { return nil },
	}
}

func TestGenerateFirstModelWins(t *testing.T) {
	p := &scriptedProvider{responses: map[string]string{"llama3-8b-8192": "hello"}}
	c := New(p, nil, noSleepPolicy(3))

	res := c.Generate(context.Background(), "hi", "")

	require.True(t, res.OK())
	assert.Equal(t, "hello", res.Text)
	assert.Equal(t, "llama3-8b-8192", res.Model)
	assert.Equal(t, []string{"llama3-8b-8192"}, p.calls)
}

func TestGenerateFallsBackToNextModel(t *testing.T) {
	p := &scriptedProvider{
		responses: map[string]string{"llama3-70b-8192": "bigger model answer"},
		errs:      map[string]error{"llama3-8b-8192": errors.New("boom")},
	}
	c := New(p, nil, noSleepPolicy(3))

	res := c.Generate(context.Background(), "hi", "")

	require.True(t, res.OK())
	assert.Equal(t, "llama3-70b-8192", res.Model)
	assert.Equal(t, []string{"llama3-8b-8192", "llama3-70b-8192"}, p.calls)
}

func TestGenerateHintGoesFirst(t *testing.T) {
	p := &scriptedProvider{responses: map[string]string{"llama3-70b-8192": "ok"}}
	c := New(p, nil, noSleepPolicy(3))

	res := c.Generate(context.Background(), "hi", "llama3-70b-8192")

	require.True(t, res.OK())
	assert.Equal(t, []string{"llama3-70b-8192"}, p.calls)
}

func TestGenerateAllModelsFail(t *testing.T) {
	p := &scriptedProvider{errs: map[string]error{
		"llama3-8b-8192":  errors.New("down"),
		"llama3-70b-8192": errors.New("also down"),
	}}
	c := New(p, nil, noSleepPolicy(3))

	res := c.Generate(context.Background(), "hi", "")

	assert.False(t, res.OK())
	require.Error(t, res.Err)
	assert.Empty(t, res.Text)
	// three rounds over two models
	assert.Len(t, p.calls, 6)
}

func TestGenerateFlagsQuotaErrors(t *testing.T) {
	p := &scriptedProvider{errs: map[string]error{
		"llama3-8b-8192":  errors.New("status 429: rate limit reached"),
		"llama3-70b-8192": errors.New("quota exceeded for today"),
	}}
	c := New(p, nil, noSleepPolicy(1))

	res := c.Generate(context.Background(), "hi", "")

	assert.False(t, res.OK())
	assert.True(t, res.QuotaExceeded)
}

func TestGenerateEmptyResponseTreatedAsFailure(t *testing.T) {
	p := &scriptedProvider{
		responses: map[string]string{"llama3-8b-8192": "   ", "llama3-70b-8192": "real"},
	}
	c := New(p, nil, noSleepPolicy(1))

	res := c.Generate(context.Background(), "hi", "")

	require.True(t, res.OK())
	assert.Equal(t, "real", res.Text)
}

func TestIsQuotaError(t *testing.T) {
	assert.True(t, IsQuotaError(errors.New("HTTP 429")))
	assert.True(t, IsQuotaError(errors.New("Quota exhausted")))
	assert.True(t, IsQuotaError(errors.New("Too Many Requests")))
	assert.False(t, IsQuotaError(errors.New("connection refused")))
	assert.False(t, IsQuotaError(nil))
}
