package search

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripsmith/internal/types"
)

func TestTavilyProvider_Name(t *testing.T) {
	assert.Equal(t, "tavily", NewTavilyProvider("k").Name())
}

func TestTavilyProvider_Search_Success(t *testing.T) {
	var got map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"query":"q","results":[
			{"title":"Cheap flights DEL-SIN","url":"https://example.com/a","content":"From $199","score":0.9},
			{"url":"https://example.com/b"}
		]}`))
	}))
	defer server.Close()

	p := NewTavilyProviderWithOptions(TavilyOptions{APIKey: "tvly-test", Endpoint: server.URL})
	results, err := p.Search(context.Background(), Request{Query: "flights DEL to SIN", MaxResults: 3})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Cheap flights DEL-SIN", results[0]["title"])
	_, hasTitle := results[1]["title"]
	assert.False(t, hasTitle)

	assert.Equal(t, "tvly-test", got["api_key"])
	assert.Equal(t, "flights DEL to SIN", got["query"])
	assert.Equal(t, float64(3), got["max_results"])
	assert.Equal(t, false, got["include_answer"])
	assert.Equal(t, false, got["include_raw_content"])
}

func TestTavilyProvider_Search_APIErrorNotRetried(t *testing.T) {
	var attempts int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"Invalid API key"}`))
	}))
	defer server.Close()

	p := NewTavilyProviderWithOptions(TavilyOptions{APIKey: "bad", Endpoint: server.URL})
	_, err := p.Search(context.Background(), Request{Query: "q", MaxResults: 1})
	require.Error(t, err)

	var upstream *types.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, "tavily", upstream.Provider)
	assert.Equal(t, http.StatusUnauthorized, upstream.Status)
	assert.EqualValues(t, 1, atomic.LoadInt32(&attempts))
}

func TestTavilyProvider_Search_MalformedPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer server.Close()

	p := NewTavilyProviderWithOptions(TavilyOptions{APIKey: "k", Endpoint: server.URL})
	_, err := p.Search(context.Background(), Request{Query: "q", MaxResults: 1})
	assert.True(t, types.IsUpstream(err), "got %v", err)
}

func TestTavilyProvider_Search_ContextCancellation(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	p := NewTavilyProviderWithOptions(TavilyOptions{APIKey: "k", Endpoint: server.URL})
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		_, err := p.Search(ctx, Request{Query: "q", MaxResults: 1})
		done <- err
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("search did not respond to context cancellation")
	}
}
