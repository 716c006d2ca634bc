package llm

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Conceptual-Machines/tweetcraft-api/internal/logger"
	"github.com/Conceptual-Machines/tweetcraft-api/internal/metrics"
	"github.com/Conceptual-Machines/tweetcraft-api/internal/observability"
)

// Options tunes a single call. Nil sampling fields leave the provider default.
type Options struct {
	Stage           string
	Temperature     *float64
	MaxOutputTokens *int64
}

// Client sends one prompt to the configured model and returns its reply text
type Client struct {
	provider Provider
	model    string
	metrics  metrics.Recorder
}

// NewClient creates a client bound to one provider and model
func NewClient(provider Provider, model string, recorder metrics.Recorder) *Client {
	if recorder == nil {
		recorder = metrics.Nop{}
	}
	return &Client{
		provider: provider,
		model:    model,
		metrics:  recorder,
	}
}

// Model returns the configured model name
func (c *Client) Model() string {
	return c.model
}

// Generate sends prompt as a single user message and returns the trimmed reply.
// It makes exactly one provider call; failures come back as *GenerationError.
func (c *Client) Generate(ctx context.Context, prompt string, opts Options) (string, error) {
	startTime := time.Now()

	gen := observability.TraceFromContext(ctx).Generation(stageOrDefault(opts.Stage), map[string]interface{}{
		"provider": c.provider.Name(),
	})
	defer gen.Finish()

	resp, err := c.provider.Generate(ctx, &GenerationRequest{
		Model:           c.model,
		InputArray:      []map[string]any{UserMessage(prompt)},
		Temperature:     opts.Temperature,
		MaxOutputTokens: opts.MaxOutputTokens,
	})
	duration := time.Since(startTime)

	if err != nil {
		c.metrics.RecordGenerationDuration(ctx, opts.Stage, duration, false)
		gen.SetLevel("ERROR")
		genErr := c.classify(err, opts.Stage)
		logger.Error("LLM call failed", genErr, logger.Fields{
			"model":       c.model,
			"stage":       opts.Stage,
			"duration_ms": duration.Milliseconds(),
		})
		return "", genErr
	}

	text := strings.TrimSpace(resp.RawOutput)
	if text == "" {
		c.metrics.RecordGenerationDuration(ctx, opts.Stage, duration, false)
		gen.SetLevel("ERROR")
		return "", &GenerationError{
			Reason:   ReasonEmptyResponse,
			Provider: c.provider.Name(),
			Stage:    opts.Stage,
			Err:      errEmptyOutput,
		}
	}

	c.metrics.RecordGenerationDuration(ctx, opts.Stage, duration, true)
	c.metrics.RecordTokenUsage(ctx, c.model, opts.Stage, resp.Usage.InputTokens, resp.Usage.OutputTokens)
	gen.Record(c.model, prompt, text, resp.Usage.InputTokens, resp.Usage.OutputTokens)
	logger.LogGenerationRequest(ctx, c.model, duration, resp.Usage.AsMap(), logger.Fields{
		"stage":    opts.Stage,
		"provider": c.provider.Name(),
	})

	return text, nil
}

func (c *Client) classify(err error, stage string) *GenerationError {
	reason := ReasonProviderUnavailable
	if errors.Is(err, errEmptyOutput) {
		reason = ReasonEmptyResponse
	}
	return &GenerationError{
		Reason:   reason,
		Provider: c.provider.Name(),
		Stage:    stage,
		Err:      err,
	}
}

func stageOrDefault(stage string) string {
	if stage == "" {
		return "generate"
	}
	return stage
}
