package llm

import (
	"context"
	"errors"
)

// ErrNotConfigured is returned by DisabledProvider for every call.
var ErrNotConfigured = errors.New("no AI provider configured")

// DisabledProvider stands in when no real provider can be built (for
// example a missing API key). Every call fails with ErrNotConfigured,
// so the health monitor reports the backend unavailable and callers
// serve their deterministic fallbacks. The process stays up.
type DisabledProvider struct{}

func NewDisabledProvider() *DisabledProvider {
	return &DisabledProvider{}
}

func (p *DisabledProvider) Chat(ctx context.Context, history []Message, options ...Option) (string, error) {
	return "", ErrNotConfigured
}

func (p *DisabledProvider) Generate(ctx context.Context, prompt string, options ...Option) (string, error) {
	return "", ErrNotConfigured
}
