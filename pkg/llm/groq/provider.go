package groq

import (
	"ai-study-assistant-be/pkg/llm"
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Groq exposes an OpenAI-compatible chat completions endpoint, so the
// official OpenAI client works against it with just a base URL override.
const defaultBaseURL = "https://api.groq.com/openai/v1"

type GroqProvider struct {
	client    openai.Client
	ModelName string
}

var _ llm.LLMProvider = &GroqProvider{}

func NewGroqProvider(apiKey, modelName, baseURL string) *GroqProvider {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &GroqProvider{
		client: openai.NewClient(
			option.WithAPIKey(apiKey),
			option.WithBaseURL(baseURL),
		),
		ModelName: modelName,
	}
}

func (g *GroqProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	options := llm.ApplyOptions(opts)

	model := g.ModelName
	if options.Model != "" {
		model = options.Model
	}

	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(history))
	for _, msg := range history {
		switch msg.Role {
		case "system":
			messages = append(messages, openai.SystemMessage(msg.Content))
		case "assistant", "model":
			messages = append(messages, openai.AssistantMessage(msg.Content))
		default:
			messages = append(messages, openai.UserMessage(msg.Content))
		}
	}

	params := openai.ChatCompletionNewParams{
		Model:       model,
		Messages:    messages,
		Temperature: openai.Float(options.Temperature),
	}
	if options.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(options.MaxTokens))
	}

	resp, err := g.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("groq request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("groq returned no choices for model %s", model)
	}
	return resp.Choices[0].Message.Content, nil
}

func (g *GroqProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return g.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, opts...)
}
