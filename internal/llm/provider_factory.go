package llm

import (
	"context"
	"fmt"
	"strings"
)

// ProviderFactory creates providers based on model name or explicit provider choice
type ProviderFactory struct {
	openaiAPIKey  string
	openaiBaseURL string
	geminiAPIKey  string
}

// NewProviderFactory creates a new provider factory
func NewProviderFactory(openaiAPIKey, openaiBaseURL, geminiAPIKey string) *ProviderFactory {
	return &ProviderFactory{
		openaiAPIKey:  openaiAPIKey,
		openaiBaseURL: openaiBaseURL,
		geminiAPIKey:  geminiAPIKey,
	}
}

// GetProvider returns the appropriate provider for the given model/provider name
func (f *ProviderFactory) GetProvider(ctx context.Context, model, providerName string) (Provider, error) {
	if providerName != "" {
		return f.getProviderByName(ctx, providerName)
	}
	return f.getProviderByModel(ctx, model)
}

func (f *ProviderFactory) getProviderByName(ctx context.Context, providerName string) (Provider, error) {
	switch strings.ToLower(providerName) {
	case providerNameOpenAI:
		if f.openaiAPIKey == "" {
			return nil, fmt.Errorf("openai API key not configured")
		}
		return NewOpenAIProvider(f.openaiAPIKey, f.openaiBaseURL), nil

	case providerNameGemini:
		if f.geminiAPIKey == "" {
			return nil, fmt.Errorf("gemini API key not configured")
		}
		return NewGeminiProvider(ctx, f.geminiAPIKey)

	default:
		return nil, fmt.Errorf("unknown provider: %s (allowed: openai, gemini)", providerName)
	}
}

// getProviderByModel infers provider from model name
func (f *ProviderFactory) getProviderByModel(ctx context.Context, model string) (Provider, error) {
	if strings.HasPrefix(strings.ToLower(model), "gemini-") {
		return f.getProviderByName(ctx, providerNameGemini)
	}

	// Everything else goes through the OpenAI-compatible endpoint
	if f.openaiAPIKey == "" {
		return nil, fmt.Errorf("openai API key not configured (default provider)")
	}
	return NewOpenAIProvider(f.openaiAPIKey, f.openaiBaseURL), nil
}
