package llm

import (
	"context"
	"fmt"
)

// Client is the gateway to an external generative-language model:
// prompt in, raw text out.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// New builds the client for the configured provider.
func New(ctx context.Context, provider, apiKey string) (Client, error) {
	switch provider {
	case "gemini":
		return NewGeminiClient(ctx, apiKey)
	case "openai":
		return NewOpenAIClient(apiKey), nil
	case "anthropic":
		return NewAnthropicClient(apiKey), nil
	}
	return nil, fmt.Errorf("unknown LLM provider: %s", provider)
}
