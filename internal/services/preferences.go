package services

import (
	"context"
	"time"

	"github.com/Conceptual-Machines/tweetcraft-api/internal/logger"
	"github.com/Conceptual-Machines/tweetcraft-api/internal/models"
)

// PreferenceStore inserts one preference record
type PreferenceStore interface {
	InsertPreference(ctx context.Context, record *models.PreferenceRecord) error
}

// NopPreferenceStore logs the record instead of storing it.
// Used when no DATABASE_URL is configured.
type NopPreferenceStore struct{}

func (NopPreferenceStore) InsertPreference(_ context.Context, record *models.PreferenceRecord) error {
	logger.Debug("Preference persistence disabled, skipping insert", logger.Fields{
		"request_id": record.RequestID,
		"tweet_type": record.TweetType,
	})
	return nil
}

// PreferenceRecorder inserts records with a bounded number of attempts
// and a fixed pause between them
type PreferenceRecorder struct {
	store    PreferenceStore
	attempts int
	backoff  time.Duration
	sleep    func(ctx context.Context, d time.Duration) error
}

// NewPreferenceRecorder creates a recorder. attempts below 1 are treated as 1.
func NewPreferenceRecorder(store PreferenceStore, attempts int, backoff time.Duration) *PreferenceRecorder {
	if store == nil {
		store = NopPreferenceStore{}
	}
	if attempts < 1 {
		attempts = 1
	}
	return &PreferenceRecorder{
		store:    store,
		attempts: attempts,
		backoff:  backoff,
		sleep:    sleepContext,
	}
}

// Persist inserts record, retrying failed attempts. It returns a
// *PersistenceError when every attempt failed, or the context error when
// the request was cancelled while waiting.
func (r *PreferenceRecorder) Persist(ctx context.Context, record *models.PreferenceRecord) error {
	var lastErr error
	for attempt := 1; attempt <= r.attempts; attempt++ {
		lastErr = r.store.InsertPreference(ctx, record)
		if lastErr == nil {
			if attempt > 1 {
				logger.Info("Preference insert succeeded after retry", logger.Fields{
					"request_id": record.RequestID,
					"attempt":    attempt,
				})
			}
			return nil
		}

		logger.Warn("Preference insert failed", logger.Fields{
			"request_id": record.RequestID,
			"attempt":    attempt,
			"error":      lastErr.Error(),
		})

		if attempt < r.attempts {
			if err := r.sleep(ctx, r.backoff); err != nil {
				return err
			}
		}
	}

	return &PersistenceError{Attempts: r.attempts, Err: lastErr}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
