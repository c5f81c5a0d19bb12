package ai

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"tripsmith/internal/config"
	"tripsmith/internal/types"
)

const geminiProvider = "gemini"

// GeminiClient implements Completer using Google's Gemini models.
type GeminiClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiClient initializes a Gemini client configured from cfg.
// Extra options (endpoint, HTTP client) are appended after the API key.
func NewGeminiClient(ctx context.Context, cfg config.ChatConfig, opts ...option.ClientOption) (*GeminiClient, error) {
	opts = append([]option.ClientOption{option.WithAPIKey(cfg.APIKey)}, opts...)
	client, err := genai.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}

	model := client.GenerativeModel(cfg.ModelName)
	model.SetTemperature(float32(cfg.Temperature))
	model.SetTopP(float32(cfg.TopP))
	model.SetMaxOutputTokens(int32(cfg.MaxTokens))
	model.StopSequences = StopSequences

	return &GeminiClient{client: client, model: model}, nil
}

// Close cleans up the Gemini client resources.
func (g *GeminiClient) Close() error {
	return g.client.Close()
}

// Complete sends the system prompt as a system instruction and the user prompt as content.
func (g *GeminiClient) Complete(ctx context.Context, prompt Prompt) (string, error) {
	if err := prompt.Validate(); err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, ChatTimeout)
	defer cancel()

	g.model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(prompt.System)}}

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt.User))
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("gemini: generate content: %w", ctx.Err())
		}
		return "", &types.UpstreamError{Provider: geminiProvider, Err: err}
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", &types.UpstreamError{Provider: geminiProvider, Err: fmt.Errorf("no response candidates")}
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			text.WriteString(string(txt))
		}
	}
	if text.Len() == 0 {
		return "", &types.UpstreamError{Provider: geminiProvider, Err: fmt.Errorf("candidate has no text parts")}
	}

	log.Printf("[CHAT] model=gemini bytes=%d", text.Len())
	return text.String(), nil
}
