package llm

import (
	"context"
)

// Provider defines the interface for LLM providers.
// A provider performs exactly one outbound call per Generate and never retries.
type Provider interface {
	// Generate sends the input messages to the model and returns its plain text reply
	Generate(ctx context.Context, request *GenerationRequest) (*GenerationResponse, error)

	// Name returns the provider name (e.g., "openai", "gemini")
	Name() string
}

// GenerationRequest contains all parameters needed for generation
type GenerationRequest struct {
	Model        string
	InputArray   []map[string]any
	SystemPrompt string
	// Nil means the provider default applies
	Temperature     *float64
	MaxOutputTokens *int64
}

// GenerationResponse contains the result from the LLM
type GenerationResponse struct {
	RawOutput string `json:"raw_output"`
	Model     string `json:"model"`
	Usage     Usage  `json:"usage"`
}

// Usage is the token accounting of a single call
type Usage struct {
	InputTokens  int64 `json:"input_tokens"`
	OutputTokens int64 `json:"output_tokens"`
	TotalTokens  int64 `json:"total_tokens"`
}

// AsMap returns the usage in the shape the logger and tracer expect
func (u Usage) AsMap() map[string]interface{} {
	return map[string]interface{}{
		"input_tokens":  u.InputTokens,
		"output_tokens": u.OutputTokens,
		"total_tokens":  u.TotalTokens,
	}
}

const (
	userRole      = "user"
	developerRole = "developer"
	systemRole    = "system"
)

// UserMessage builds a single user entry of an input array
func UserMessage(content string) map[string]any {
	return map[string]any{"role": userRole, "content": content}
}
