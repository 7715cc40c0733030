package factory

import (
	"context"
	"testing"

	"ai-study-assistant-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMissingKeyYieldsDisabledProvider(t *testing.T) {
	p, err := NewLLMProvider("groq", "", "llama3-8b-8192", "")
	require.NoError(t, err)

	assert.IsType(t, &llm.DisabledProvider{}, p)
	_, chatErr := p.Generate(context.Background(), "hello")
	assert.ErrorIs(t, chatErr, llm.ErrNotConfigured)
}

func TestGroqProviderWithKey(t *testing.T) {
	p, err := NewLLMProvider("groq", "gsk_test", "llama3-8b-8192", "")
	require.NoError(t, err)
	assert.NotNil(t, p)
	assert.NotEqual(t, &llm.DisabledProvider{}, p)
}

func TestOllamaProviderNeedsNoKey(t *testing.T) {
	p, err := NewLLMProvider("ollama", "", "llama3", "")
	require.NoError(t, err)
	assert.NotNil(t, p)
}

func TestUnsupportedProviderType(t *testing.T) {
	_, err := NewLLMProvider("bedrock", "", "", "")
	assert.Error(t, err)
}
