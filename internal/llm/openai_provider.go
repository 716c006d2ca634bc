package llm

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const (
	// Provider name
	providerNameOpenAI = "openai"

	// Logging limits
	maxPreviewChars = 200
)

// OpenAIProvider implements the Provider interface using the Chat Completions API.
// Any OpenAI-compatible endpoint works (Groq, OpenAI, local gateways) via the base URL.
type OpenAIProvider struct {
	client  *openai.Client
	baseURL string
}

// NewOpenAIProvider creates a new OpenAI-compatible provider.
// An empty baseURL targets api.openai.com.
func NewOpenAIProvider(apiKey, baseURL string) *OpenAIProvider {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	client := openai.NewClient(opts...)
	return &OpenAIProvider{
		client:  &client,
		baseURL: baseURL,
	}
}

// Name returns the provider name
func (p *OpenAIProvider) Name() string {
	return providerNameOpenAI
}

// Generate implements non-streaming generation using chat completions
func (p *OpenAIProvider) Generate(ctx context.Context, request *GenerationRequest) (*GenerationResponse, error) {
	startTime := time.Now()

	// Start Sentry transaction
	transaction := sentry.StartTransaction(ctx, "openai.generate")
	defer transaction.Finish()

	transaction.SetTag("model", request.Model)
	transaction.SetTag("provider", providerNameOpenAI)

	params := p.buildRequestParams(request)

	span := transaction.StartChild("openai.api_call")
	resp, err := p.client.Chat.Completions.New(ctx, params)
	apiDuration := time.Since(startTime)
	span.Finish()

	if err != nil {
		log.Printf("❌ OPENAI REQUEST FAILED after %v: %v", apiDuration, err)
		transaction.SetTag("success", "false")
		return nil, fmt.Errorf("openai request failed: %w", err)
	}

	result, err := p.processResponse(resp)
	if err != nil {
		transaction.SetTag("success", "false")
		return nil, err
	}

	log.Printf("⏱️  OPENAI API CALL COMPLETED in %v (tokens=%d, preview=%q)",
		apiDuration, result.Usage.TotalTokens, truncateString(result.RawOutput, maxPreviewChars))
	transaction.SetTag("success", "true")
	return result, nil
}

// buildRequestParams converts GenerationRequest to chat completion params
func (p *OpenAIProvider) buildRequestParams(request *GenerationRequest) openai.ChatCompletionNewParams {
	messages := []openai.ChatCompletionMessageParamUnion{}
	if request.SystemPrompt != "" {
		messages = append(messages, openai.SystemMessage(request.SystemPrompt))
	}

	for _, item := range request.InputArray {
		role, hasRole := item["role"].(string)
		content, hasContent := item["content"].(string)

		if !hasRole || !hasContent {
			log.Printf("⚠️  Skipping invalid input item (missing role or content): %v", item)
			continue
		}

		switch role {
		case developerRole, systemRole:
			messages = append(messages, openai.SystemMessage(content))
		default:
			messages = append(messages, openai.UserMessage(content))
		}
	}

	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(request.Model),
		Messages: messages,
	}

	if request.Temperature != nil {
		params.Temperature = openai.Float(*request.Temperature)
	}
	if request.MaxOutputTokens != nil {
		params.MaxCompletionTokens = openai.Int(*request.MaxOutputTokens)
	}

	return params
}

// processResponse extracts the first choice's text
func (p *OpenAIProvider) processResponse(resp *openai.ChatCompletion) (*GenerationResponse, error) {
	if resp == nil || len(resp.Choices) == 0 {
		return nil, fmt.Errorf("openai: empty choices: %w", errEmptyOutput)
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return nil, fmt.Errorf("openai: %w", errEmptyOutput)
	}

	return &GenerationResponse{
		RawOutput: text,
		Model:     resp.Model,
		Usage: Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// truncateString truncates a string to a maximum length
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
