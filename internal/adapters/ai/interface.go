package ai

import "context"

// Provider represents an LLM provider interface
type Provider interface {
	// Complete sends a single prompt and returns the model's text response
	Complete(ctx context.Context, prompt string, maxTokens int) (string, error)

	// GetName returns provider name
	GetName() string

	// IsEnabled returns whether provider is configured and usable
	IsEnabled() bool
}
