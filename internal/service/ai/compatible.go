package ai

import (
	"context"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// CompatibleProvider implements Provider for OpenAI-compatible APIs.
// This supports services like OpenRouter, Azure OpenAI, Ollama, etc.
type CompatibleProvider struct {
	client    openai.Client
	model     string
	maxTokens int64
}

// NewCompatibleProvider creates a new OpenAI-compatible provider.
func NewCompatibleProvider(apiKey, baseURL, model string, maxTokens int64) *CompatibleProvider {
	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(baseURL),
	)
	return &CompatibleProvider{
		client:    client,
		model:     model,
		maxTokens: maxTokens,
	}
}

// Name returns the provider name.
func (p *CompatibleProvider) Name() string {
	return ProviderCompatible
}

// Complete generates a response without streaming. Reasoning is disabled:
// a short field translation gains nothing from it.
func (p *CompatibleProvider) Complete(ctx context.Context, systemPrompt, content string) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model:     openai.ChatModel(p.model),
		Messages:  chatMessages(systemPrompt, content),
		MaxTokens: openai.Int(p.maxTokens),
	}

	resp, err := p.client.Chat.Completions.New(ctx, params,
		option.WithJSONSet("reasoning", map[string]interface{}{
			"enabled": false,
		}),
	)
	if err != nil {
		return "", err
	}
	return firstChoice(resp)
}
