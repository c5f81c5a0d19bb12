// README: NVIDIA (OpenAI-compatible) chat completions client used by the itinerary tool.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"tripsmith/internal/config"
	"tripsmith/internal/types"
)

// ChatTimeout bounds a single completion request.
const ChatTimeout = 60 * time.Second

// StopSequences keep agent-style scaffolding out of the generated itinerary.
var StopSequences = []string{"\n\nObservation:", "\n\nAction:", "\n\nThought:"}

const nvidiaProvider = "nvidia"

// ChatClient posts to {base_url}/chat/completions.
type ChatClient struct {
	cfg        config.ChatConfig
	httpClient *http.Client
}

// NewChatClient returns a client for cfg. The client is meant for one invocation.
func NewChatClient(cfg config.ChatConfig) *ChatClient {
	return NewChatClientWithHTTPClient(cfg, nil)
}

// NewChatClientWithHTTPClient lets callers supply the transport (tests, proxies).
func NewChatClientWithHTTPClient(cfg config.ChatConfig, hc *http.Client) *ChatClient {
	if hc == nil {
		hc = &http.Client{}
	}
	return &ChatClient{cfg: cfg, httpClient: hc}
}

// Complete sends the prompt pair and returns choices[0].message.content.
func (c *ChatClient) Complete(ctx context.Context, prompt Prompt) (string, error) {
	if err := prompt.Validate(); err != nil {
		return "", err
	}

	reqBody, err := json.Marshal(chatRequest{
		Model: c.cfg.ModelName,
		Messages: []chatMessage{
			{Role: "system", Content: prompt.System},
			{Role: "user", Content: prompt.User},
		},
		Temperature: c.cfg.Temperature,
		TopP:        c.cfg.TopP,
		MaxTokens:   c.cfg.MaxTokens,
		Stream:      false,
		Stop:        StopSequences,
	})
	if err != nil {
		return "", fmt.Errorf("chat: marshal request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, ChatTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/chat/completions", bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("chat: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("chat: do request: %w", ctx.Err())
		}
		return "", &types.UpstreamError{Provider: nvidiaProvider, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &types.UpstreamError{Provider: nvidiaProvider, Status: resp.StatusCode, Err: fmt.Errorf("read response: %w", err)}
	}

	log.Printf("[CHAT] model=%s status=%d bytes=%d latency=%s", c.cfg.ModelName, resp.StatusCode, len(body), time.Since(start).Round(time.Millisecond))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &types.UpstreamError{Provider: nvidiaProvider, Status: resp.StatusCode, Body: types.TruncateBody(body, 300)}
	}

	var cr chatResponse
	if err := json.Unmarshal(body, &cr); err != nil {
		return "", &types.UpstreamError{Provider: nvidiaProvider, Status: resp.StatusCode, Err: fmt.Errorf("unmarshal response: %w", err)}
	}
	if len(cr.Choices) == 0 || cr.Choices[0].Message.Content == nil {
		return "", &types.UpstreamError{
			Provider: nvidiaProvider,
			Status:   resp.StatusCode,
			Body:     types.TruncateBody(body, 300),
			Err:      fmt.Errorf("response has no choices[0].message.content"),
		}
	}
	return *cr.Choices[0].Message.Content, nil
}

// Close is a no-op; the HTTP client holds no per-call resources.
func (c *ChatClient) Close() error { return nil }
