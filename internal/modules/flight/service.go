// README: Flight service runs query building, web search, result mapping, timing advice and composition.
package flight

import (
	"context"
	"fmt"
	"log"

	"tripsmith/internal/config"
	"tripsmith/internal/search"
)

// ProviderFactory builds a search provider from per-invocation settings.
type ProviderFactory func(cfg config.SearchConfig) search.Provider

// TavilyFactory is the production ProviderFactory.
func TavilyFactory(cfg config.SearchConfig) search.Provider {
	return search.NewTavilyProvider(cfg.APIKey)
}

// Service answers flight search requests. It holds no per-call state.
type Service struct {
	settings    config.Source
	newProvider ProviderFactory
}

// NewService creates a Service. Settings are re-read on every call.
func NewService(settings config.Source, newProvider ProviderFactory) *Service {
	if newProvider == nil {
		newProvider = TavilyFactory
	}
	return &Service{settings: settings, newProvider: newProvider}
}

// Search runs the flight path for one request. Missing credentials fail before
// any network call; provider errors abort the call with no partial result.
func (s *Service) Search(ctx context.Context, req FlightSearchRequest) (*FlightSearchResult, error) {
	cfg, err := config.LoadSearch(s.settings)
	if err != nil {
		return nil, err
	}

	query := BuildQuery(req)
	provider := s.newProvider(cfg)

	raw, err := provider.Search(ctx, search.Request{Query: query, MaxResults: req.MaxResults})
	if err != nil {
		log.Printf("[FLIGHT] search failed | provider=%s | err=%v", provider.Name(), err)
		return nil, fmt.Errorf("flight: search: %w", err)
	}

	options := AdaptResults(raw, req.MaxResults)
	advice := AdviseTiming(req.Pace, req.Constraints, req.DayStartTime)

	log.Printf("[FLIGHT] %s -> %s | raw=%d options=%d", req.Origin, req.Destination, len(raw), len(options))

	return &FlightSearchResult{
		Query:                 query,
		Options:               options,
		TimingAdvice:          advice,
		FlightContextMarkdown: ComposeContext(query, options, advice),
		Note:                  Note,
	}, nil
}
