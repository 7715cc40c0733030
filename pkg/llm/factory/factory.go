package factory

import (
	"ai-study-assistant-be/pkg/llm"
	"ai-study-assistant-be/pkg/llm/groq"
	"ai-study-assistant-be/pkg/llm/ollama"
	"fmt"
)

// NewLLMProvider builds the configured provider. A missing API key
// yields a DisabledProvider rather than an error: the service must boot
// without credentials and serve fallback content.
func NewLLMProvider(providerType, apiKey, modelName, baseURL string) (llm.LLMProvider, error) {
	switch providerType {
	case "groq", "":
		if apiKey == "" {
			return llm.NewDisabledProvider(), nil
		}
		return groq.NewGroqProvider(apiKey, modelName, baseURL), nil
	case "ollama":
		if baseURL == "" {
			baseURL = "http://localhost:11434"
		}
		return ollama.NewOllamaProvider(baseURL, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
