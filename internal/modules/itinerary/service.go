package itinerary

import (
	"context"
	"fmt"
	"log"

	"tripsmith/internal/ai"
	"tripsmith/internal/config"
)

// CompleterFactory builds a completion backend from per-invocation settings.
type CompleterFactory func(ctx context.Context, cfg config.ChatConfig) (ai.Completer, error)

// Service generates itineraries. It holds no per-call state.
type Service struct {
	settings     config.Source
	templates    TemplateStore
	newCompleter CompleterFactory
}

// NewService creates a Service. A nil factory selects ai.NewCompleter.
func NewService(settings config.Source, templates TemplateStore, newCompleter CompleterFactory) *Service {
	if newCompleter == nil {
		newCompleter = ai.NewCompleter
	}
	return &Service{settings: settings, templates: templates, newCompleter: newCompleter}
}

// Generate resolves the chat settings, renders the prompt pair and returns the
// completion verbatim. Configuration and template failures happen before any
// network call.
func (s *Service) Generate(ctx context.Context, req ItineraryRequest) (*ItineraryResult, error) {
	cfg, err := config.LoadChat(s.settings)
	if err != nil {
		return nil, err
	}

	tmpl, err := s.templates.Load()
	if err != nil {
		return nil, fmt.Errorf("itinerary: load template: %w", err)
	}
	prompt := BuildPrompt(tmpl, req)

	completer, err := s.newCompleter(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("itinerary: completion client: %w", err)
	}
	defer completer.Close()

	text, err := completer.Complete(ctx, prompt)
	if err != nil {
		log.Printf("[ITINERARY] completion failed | provider=%s | destination=%s | err=%v", cfg.Provider, req.Destination, err)
		return nil, fmt.Errorf("itinerary: complete: %w", err)
	}

	log.Printf("[ITINERARY] %s %s..%s | flight_context=%t | chars=%d", req.Destination, req.StartDate, req.EndDate, req.HasFlightContext(), len(text))
	return &ItineraryResult{ItineraryMarkdown: text}, nil
}
