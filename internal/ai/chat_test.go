package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripsmith/internal/config"
	"tripsmith/internal/types"
)

func testChatConfig(baseURL string) config.ChatConfig {
	return config.ChatConfig{
		Provider:    config.ProviderNvidia,
		BaseURL:     baseURL,
		APIKey:      "nvapi-test",
		ModelName:   "meta/llama-3.1-70b-instruct",
		Temperature: 0.7,
		TopP:        0.9,
		MaxTokens:   2048,
	}
}

var testPrompt = Prompt{System: "You are a travel planner.\n", User: "Plan Singapore."}

func TestChatClient_Complete_Success(t *testing.T) {
	var body map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer nvapi-test", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"# Singapore\n\nDay 1"}}]}`))
	}))
	defer server.Close()

	got, err := NewChatClient(testChatConfig(server.URL + "/v1")).Complete(context.Background(), testPrompt)
	require.NoError(t, err)
	assert.Equal(t, "# Singapore\n\nDay 1", got)

	assert.Equal(t, "meta/llama-3.1-70b-instruct", body["model"])
	assert.Equal(t, 0.7, body["temperature"])
	assert.Equal(t, 0.9, body["top_p"])
	assert.Equal(t, float64(2048), body["max_tokens"])
	assert.Equal(t, false, body["stream"])
	assert.Equal(t, []any{"\n\nObservation:", "\n\nAction:", "\n\nThought:"}, body["stop"])

	messages, ok := body["messages"].([]any)
	require.True(t, ok)
	require.Len(t, messages, 2)
	assert.Equal(t, map[string]any{"role": "system", "content": testPrompt.System}, messages[0])
	assert.Equal(t, map[string]any{"role": "user", "content": testPrompt.User}, messages[1])
}

func TestChatClient_Complete_Non2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":"rate limited"}`))
	}))
	defer server.Close()

	_, err := NewChatClient(testChatConfig(server.URL)).Complete(context.Background(), testPrompt)
	var upstream *types.UpstreamError
	require.True(t, errors.As(err, &upstream))
	assert.Equal(t, "nvidia", upstream.Provider)
	assert.Equal(t, http.StatusTooManyRequests, upstream.Status)
	assert.Contains(t, upstream.Body, "rate limited")
}

func TestChatClient_Complete_MissingContent(t *testing.T) {
	cases := map[string]string{
		"empty choices":   `{"choices":[]}`,
		"no content":      `{"choices":[{"message":{"role":"assistant"}}]}`,
		"not json":        `<html>gateway</html>`,
		"missing choices": `{}`,
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(payload))
			}))
			defer server.Close()

			_, err := NewChatClient(testChatConfig(server.URL)).Complete(context.Background(), testPrompt)
			assert.True(t, types.IsUpstream(err), "got %v", err)
		})
	}
}

func TestChatClient_Complete_EmptyContentIsReturned(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":""}}]}`))
	}))
	defer server.Close()

	got, err := NewChatClient(testChatConfig(server.URL)).Complete(context.Background(), testPrompt)
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestChatClient_Complete_RequiresBothPrompts(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()

	client := NewChatClient(testChatConfig(server.URL))
	_, err := client.Complete(context.Background(), Prompt{User: "only user"})
	assert.True(t, types.IsValidation(err))
	_, err = client.Complete(context.Background(), Prompt{System: "only system"})
	assert.True(t, types.IsValidation(err))
	assert.Equal(t, 0, calls)
}

func TestChatClient_Complete_Cancelled(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := NewChatClient(testChatConfig(server.URL)).Complete(ctx, testPrompt)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded), "got %v", err)
	assert.False(t, types.IsUpstream(err))
}

func TestNewCompleter(t *testing.T) {
	c, err := NewCompleter(context.Background(), testChatConfig("http://localhost"))
	require.NoError(t, err)
	_, ok := c.(*ChatClient)
	assert.True(t, ok)
	assert.NoError(t, c.Close())

	gcfg := testChatConfig("")
	gcfg.Provider = config.ProviderGemini
	gcfg.ModelName = config.DefaultGeminiModel
	g, err := NewCompleter(context.Background(), gcfg)
	require.NoError(t, err)
	_, ok = g.(*GeminiClient)
	assert.True(t, ok)
	_ = g.Close()

	_, err = NewCompleter(context.Background(), config.ChatConfig{Provider: "openai"})
	assert.Error(t, err)
}
