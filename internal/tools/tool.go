// Package tools exposes the flight and itinerary pipelines as named, schema-described
// tools that an agent host (or the HTTP gateway) can list and invoke with JSON input.
package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"tripsmith/internal/types"
)

// Tool is a callable unit with a JSON-schema described input.
type Tool interface {
	// Name returns the tool's identifier used in tool calls.
	Name() string

	// Description returns a human-readable description for the agent.
	Description() string

	// ParameterSchema returns the JSON Schema for the tool's parameters.
	ParameterSchema() map[string]any

	// Call decodes input, runs the tool and returns its output value.
	Call(ctx context.Context, input json.RawMessage) (any, error)
}

// ToolFunc adapts a typed function into a Tool.
type ToolFunc[I, O any] struct {
	name        string
	description string
	schema      map[string]any
	fn          func(ctx context.Context, input I) (O, error)
}

// NewToolFunc creates a new ToolFunc with typed input and output.
func NewToolFunc[I, O any](
	name, description string,
	schema map[string]any,
	fn func(ctx context.Context, input I) (O, error),
) *ToolFunc[I, O] {
	return &ToolFunc[I, O]{
		name:        name,
		description: description,
		schema:      schema,
		fn:          fn,
	}
}

func (t *ToolFunc[I, O]) Name() string { return t.name }

func (t *ToolFunc[I, O]) Description() string { return t.description }

func (t *ToolFunc[I, O]) ParameterSchema() map[string]any { return t.schema }

// Call decodes input into I. Malformed JSON is a ValidationError; unknown
// fields are ignored.
func (t *ToolFunc[I, O]) Call(ctx context.Context, input json.RawMessage) (any, error) {
	var in I
	if len(input) > 0 {
		if err := json.Unmarshal(input, &in); err != nil {
			return nil, &types.ValidationError{Field: "input", Reason: fmt.Sprintf("not a valid %s payload: %v", t.name, err)}
		}
	}
	out, err := t.fn(ctx, in)
	if err != nil {
		return nil, err
	}
	return out, nil
}
