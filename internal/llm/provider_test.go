package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockProvider is a test implementation of the Provider interface
type MockProvider struct {
	name         string
	calls        int
	lastRequest  *GenerationRequest
	generateFunc func(ctx context.Context, request *GenerationRequest) (*GenerationResponse, error)
}

func (m *MockProvider) Name() string {
	return m.name
}

func (m *MockProvider) Generate(ctx context.Context, request *GenerationRequest) (*GenerationResponse, error) {
	m.calls++
	m.lastRequest = request
	if m.generateFunc != nil {
		return m.generateFunc(ctx, request)
	}
	return &GenerationResponse{}, nil
}

type recordedDuration struct {
	stage   string
	success bool
}

type stubRecorder struct {
	durations []recordedDuration
	tokens    int
}

func (s *stubRecorder) RecordAPIRequest(context.Context, string, int, time.Duration) {}

func (s *stubRecorder) RecordTokenUsage(context.Context, string, string, int64, int64) {
	s.tokens++
}

func (s *stubRecorder) RecordGenerationDuration(_ context.Context, stage string, _ time.Duration, success bool) {
	s.durations = append(s.durations, recordedDuration{stage: stage, success: success})
}

func (s *stubRecorder) RecordQualityVerdict(context.Context, string) {}

func TestClientGenerate_TrimsReply(t *testing.T) {
	mock := &MockProvider{
		name: "mock",
		generateFunc: func(_ context.Context, _ *GenerationRequest) (*GenerationResponse, error) {
			return &GenerationResponse{
				RawOutput: "  Fresh coffee, zero excuses. ☕\n",
				Usage:     Usage{InputTokens: 12, OutputTokens: 8, TotalTokens: 20},
			}, nil
		},
	}
	rec := &stubRecorder{}
	client := NewClient(mock, "test-model", rec)

	temp := 0.2
	text, err := client.Generate(context.Background(), "write a tweet", Options{Stage: "evaluate", Temperature: &temp})
	require.NoError(t, err)

	assert.Equal(t, "Fresh coffee, zero excuses. ☕", text)
	assert.Equal(t, 1, mock.calls)
	assert.Equal(t, "test-model", mock.lastRequest.Model)
	require.Len(t, mock.lastRequest.InputArray, 1)
	assert.Equal(t, "user", mock.lastRequest.InputArray[0]["role"])
	assert.Equal(t, "write a tweet", mock.lastRequest.InputArray[0]["content"])
	assert.Equal(t, &temp, mock.lastRequest.Temperature)
	assert.Nil(t, mock.lastRequest.MaxOutputTokens)

	assert.Equal(t, []recordedDuration{{stage: "evaluate", success: true}}, rec.durations)
	assert.Equal(t, 1, rec.tokens)
}

func TestClientGenerate_ErrorClassification(t *testing.T) {
	tests := []struct {
		name       string
		reply      *GenerationResponse
		err        error
		wantReason FailureReason
	}{
		{
			name:       "transport failure",
			err:        errors.New("connection refused"),
			wantReason: ReasonProviderUnavailable,
		},
		{
			name:       "provider reports no text",
			err:        errEmptyOutput,
			wantReason: ReasonEmptyResponse,
		},
		{
			name:       "whitespace-only reply",
			reply:      &GenerationResponse{RawOutput: " \n\t "},
			wantReason: ReasonEmptyResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &MockProvider{
				name: "mock",
				generateFunc: func(_ context.Context, _ *GenerationRequest) (*GenerationResponse, error) {
					return tt.reply, tt.err
				},
			}
			rec := &stubRecorder{}
			client := NewClient(mock, "test-model", rec)

			text, err := client.Generate(context.Background(), "prompt", Options{Stage: "generate"})
			assert.Empty(t, text)
			require.Error(t, err)
			assert.True(t, IsGenerationError(err))

			var genErr *GenerationError
			require.ErrorAs(t, err, &genErr)
			assert.Equal(t, tt.wantReason, genErr.Reason)
			assert.Equal(t, "generate", genErr.Stage)
			assert.Equal(t, "mock", genErr.Provider)

			assert.Equal(t, 1, mock.calls, "client must not retry")
			assert.Equal(t, 0, rec.tokens)
			require.Len(t, rec.durations, 1)
			assert.False(t, rec.durations[0].success)
		})
	}
}

func TestGenerationErrorMessage(t *testing.T) {
	err := &GenerationError{Reason: ReasonProviderUnavailable, Provider: "openai", Stage: "gatekeep", Err: errors.New("timeout")}
	assert.Equal(t, "openai generation failed (ProviderUnavailable) during gatekeep: timeout", err.Error())
	assert.False(t, IsGenerationError(errors.New("plain")))
}

func TestNewClientDefaultsRecorder(t *testing.T) {
	client := NewClient(&MockProvider{name: "mock", generateFunc: func(context.Context, *GenerationRequest) (*GenerationResponse, error) {
		return &GenerationResponse{RawOutput: "ok"}, nil
	}}, "m", nil)

	assert.Equal(t, "m", client.Model())
	text, err := client.Generate(context.Background(), "p", Options{})
	require.NoError(t, err)
	assert.Equal(t, "ok", text)
}

func TestUsageAsMap(t *testing.T) {
	m := Usage{InputTokens: 1, OutputTokens: 2, TotalTokens: 3}.AsMap()
	assert.Equal(t, int64(1), m["input_tokens"])
	assert.Equal(t, int64(2), m["output_tokens"])
	assert.Equal(t, int64(3), m["total_tokens"])
}

func TestProviderFactory(t *testing.T) {
	ctx := context.Background()

	t.Run("explicit openai", func(t *testing.T) {
		p, err := NewProviderFactory("key", "https://api.groq.com/openai/v1", "").GetProvider(ctx, "", "openai")
		require.NoError(t, err)
		assert.Equal(t, "openai", p.Name())
	})

	t.Run("llama model defaults to openai-compatible", func(t *testing.T) {
		p, err := NewProviderFactory("key", "", "").GetProvider(ctx, "llama-3.3-70b-versatile", "")
		require.NoError(t, err)
		assert.Equal(t, "openai", p.Name())
	})

	t.Run("missing keys", func(t *testing.T) {
		_, err := NewProviderFactory("", "", "").GetProvider(ctx, "llama-3.3-70b-versatile", "")
		assert.Error(t, err)
		_, err = NewProviderFactory("key", "", "").GetProvider(ctx, "gemini-2.5-flash", "")
		assert.Error(t, err)
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := NewProviderFactory("key", "", "").GetProvider(ctx, "", "anthropic")
		assert.Error(t, err)
	})
}
