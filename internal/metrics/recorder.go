package metrics

import (
	"context"
	"time"
)

// Recorder receives the service's custom metrics
type Recorder interface {
	RecordAPIRequest(ctx context.Context, endpoint string, statusCode int, duration time.Duration)
	RecordTokenUsage(ctx context.Context, model, stage string, inputTokens, outputTokens int64)
	RecordGenerationDuration(ctx context.Context, stage string, duration time.Duration, success bool)
	RecordQualityVerdict(ctx context.Context, verdict string)
}

// Fanout forwards every metric to each wrapped recorder
type Fanout []Recorder

func (f Fanout) RecordAPIRequest(ctx context.Context, endpoint string, statusCode int, duration time.Duration) {
	for _, r := range f {
		r.RecordAPIRequest(ctx, endpoint, statusCode, duration)
	}
}

func (f Fanout) RecordTokenUsage(ctx context.Context, model, stage string, inputTokens, outputTokens int64) {
	for _, r := range f {
		r.RecordTokenUsage(ctx, model, stage, inputTokens, outputTokens)
	}
}

func (f Fanout) RecordGenerationDuration(ctx context.Context, stage string, duration time.Duration, success bool) {
	for _, r := range f {
		r.RecordGenerationDuration(ctx, stage, duration, success)
	}
}

func (f Fanout) RecordQualityVerdict(ctx context.Context, verdict string) {
	for _, r := range f {
		r.RecordQualityVerdict(ctx, verdict)
	}
}

// Nop discards all metrics
type Nop struct{}

func (Nop) RecordAPIRequest(context.Context, string, int, time.Duration) {}
func (Nop) RecordTokenUsage(context.Context, string, string, int64, int64) {}
func (Nop) RecordGenerationDuration(context.Context, string, time.Duration, bool) {}
func (Nop) RecordQualityVerdict(context.Context, string) {}

// New builds the production recorder: Sentry spans always, CloudWatch when enabled
func New(ctx context.Context, environment string) Recorder {
	cw, _ := NewClient(ctx, environment)
	if cw.Enabled() {
		return Fanout{NewSentryMetrics(), cw}
	}
	return NewSentryMetrics()
}
