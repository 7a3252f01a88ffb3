package ai

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"github.com/selivandex/news-agent/internal/adapters/config"
	"github.com/selivandex/news-agent/pkg/logger"
)

const systemPrompt = "You are a helpful assistant analyzing news articles."

// OpenAIProvider implements Provider on top of the OpenAI chat completions API
type OpenAIProvider struct {
	client  *openai.Client
	model   string
	enabled bool
}

// NewOpenAIProvider creates new OpenAI provider. A missing API key yields a
// disabled provider rather than an error, so the service can run without
// article analysis.
func NewOpenAIProvider(cfg *config.OpenAIConfig) *OpenAIProvider {
	if cfg.APIKey == "" {
		logger.Warn("OpenAI API key not configured, article analysis disabled")
		return &OpenAIProvider{enabled: false}
	}

	return &OpenAIProvider{
		client:  openai.NewClient(cfg.APIKey),
		model:   cfg.Model,
		enabled: true,
	}
}

func (o *OpenAIProvider) GetName() string {
	return "openai"
}

func (o *OpenAIProvider) IsEnabled() bool {
	return o.enabled
}

// Complete sends a single prompt and returns the trimmed response text
func (o *OpenAIProvider) Complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	if !o.enabled {
		return "", fmt.Errorf("openai provider not configured")
	}

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   maxTokens,
		Temperature: 0.5,
		N:           1,
	})
	if err != nil {
		return "", fmt.Errorf("openai request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}
