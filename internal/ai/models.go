package ai

import "tripsmith/internal/types"

// Prompt pairs the fixed system instruction with the per-request user prompt.
// Backends only accept the pair; neither half is sent alone.
type Prompt struct {
	System string
	User   string
}

// Validate rejects a pair with a missing half.
func (p Prompt) Validate() error {
	if p.System == "" {
		return &types.ValidationError{Field: "system_prompt", Reason: "is required"}
	}
	if p.User == "" {
		return &types.ValidationError{Field: "user_prompt", Reason: "is required"}
	}
	return nil
}

// chatRequest is the OpenAI-compatible chat completions body.
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	TopP        float64       `json:"top_p"`
	MaxTokens   int           `json:"max_tokens"`
	Stream      bool          `json:"stream"`
	Stop        []string      `json:"stop"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatResponse keeps content as a pointer so a missing field is told apart
// from an empty completion.
type chatResponse struct {
	Choices []struct {
		Message struct {
			Role    string  `json:"role"`
			Content *string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}
