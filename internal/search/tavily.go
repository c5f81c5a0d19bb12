package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"tripsmith/internal/types"
)

// DefaultTavilyEndpoint is the Tavily search API.
const DefaultTavilyEndpoint = "https://api.tavily.com/search"

// TavilyOptions configures the TavilyProvider.
type TavilyOptions struct {
	// APIKey is required for Tavily API access.
	APIKey string

	// Endpoint overrides DefaultTavilyEndpoint.
	Endpoint string

	// HTTPClient for making requests. If nil, uses http.DefaultClient.
	HTTPClient *http.Client
}

// TavilyProvider implements Provider using the Tavily Search API.
type TavilyProvider struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

type tavilyRequest struct {
	APIKey            string `json:"api_key"`
	Query             string `json:"query"`
	MaxResults        int    `json:"max_results"`
	IncludeAnswer     bool   `json:"include_answer"`
	IncludeRawContent bool   `json:"include_raw_content"`
}

type tavilyResponse struct {
	Query   string      `json:"query"`
	Results []RawResult `json:"results"`
}

// NewTavilyProvider creates a Tavily provider with default options.
func NewTavilyProvider(apiKey string) *TavilyProvider {
	return NewTavilyProviderWithOptions(TavilyOptions{APIKey: apiKey})
}

// NewTavilyProviderWithOptions creates a Tavily provider with custom options.
func NewTavilyProviderWithOptions(opts TavilyOptions) *TavilyProvider {
	p := &TavilyProvider{
		apiKey:   opts.APIKey,
		endpoint: opts.Endpoint,
		client:   opts.HTTPClient,
	}
	if p.endpoint == "" {
		p.endpoint = DefaultTavilyEndpoint
	}
	if p.client == nil {
		p.client = http.DefaultClient
	}
	return p
}

// Name returns the provider identifier.
func (p *TavilyProvider) Name() string {
	return "tavily"
}

// Search performs a single search request. Failures are not retried.
func (p *TavilyProvider) Search(ctx context.Context, req Request) ([]RawResult, error) {
	body, err := json.Marshal(tavilyRequest{
		APIKey:            p.apiKey,
		Query:             req.Query,
		MaxResults:        req.MaxResults,
		IncludeAnswer:     false,
		IncludeRawContent: false,
	})
	if err != nil {
		return nil, fmt.Errorf("tavily: marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("tavily: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.client.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &types.UpstreamError{Provider: p.Name(), Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &types.UpstreamError{Provider: p.Name(), Status: resp.StatusCode, Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &types.UpstreamError{Provider: p.Name(), Status: resp.StatusCode, Body: types.TruncateBody(respBody, 300)}
	}

	var parsed tavilyResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, &types.UpstreamError{Provider: p.Name(), Status: resp.StatusCode, Err: fmt.Errorf("parse response: %w", err)}
	}

	log.Printf("[SEARCH] tavily returned %d results", len(parsed.Results))
	return parsed.Results, nil
}
