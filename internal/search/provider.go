// Package search talks to the external web-search provider used by the flight tool.
//
// Providers return raw ranked results as field maps; mapping them into flight
// options is the caller's job.
package search

import "context"

// Request is one keyword search.
type Request struct {
	Query      string
	MaxResults int
}

// RawResult is a single provider hit. Fields are optional; Tavily sends
// title, url, content and score.
type RawResult map[string]any

// Provider defines the interface for web search backends.
type Provider interface {
	// Name returns the provider identifier (e.g. "tavily").
	Name() string

	// Search runs one request and returns results in provider rank order.
	// The context bounds and cancels the network call.
	Search(ctx context.Context, req Request) ([]RawResult, error)
}
