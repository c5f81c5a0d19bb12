package ai

import (
	"context"
	"fmt"

	"tripsmith/internal/config"
)

// Completer defines the contract for text-generation backends.
// This interface allows the itinerary tool to run against the NVIDIA
// OpenAI-compatible endpoint or Gemini without changing the caller.
type Completer interface {
	// Complete sends one system/user prompt pair and returns the generated text verbatim.
	// Exactly one request is issued; failures are never retried.
	Complete(ctx context.Context, prompt Prompt) (string, error)

	// Close releases any client resources held by the backend.
	Close() error
}

// NewCompleter builds the backend selected by cfg.Provider.
func NewCompleter(ctx context.Context, cfg config.ChatConfig) (Completer, error) {
	switch cfg.Provider {
	case config.ProviderNvidia, "":
		return NewChatClient(cfg), nil
	case config.ProviderGemini:
		return NewGeminiClient(ctx, cfg)
	default:
		return nil, fmt.Errorf("ai: unknown completion provider %q", cfg.Provider)
	}
}
