package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/Conceptual-Machines/tweetcraft-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(gen TextGenerator, store PreferenceStore) *TweetService {
	recorder := NewPreferenceRecorder(store, 3, time.Second)
	recorder.sleep = func(context.Context, time.Duration) error { return nil }
	return NewTweetService(gen, StrictScoreParser{}, recorder, nil)
}

var validRequest = models.GenerationRequest{
	ProductDetails:      "Acme CI runs your test suite in 30 seconds.",
	TweetType:           "Funny",
	StructurePreference: "short",
	IncludeHashtags:     false,
}

func TestGenerateTweet_PassingTweetReturnedUnchanged(t *testing.T) {
	gen := newScriptedGenerator("Your tests finish before your coffee does. Acme CI.", "8")
	store := &flakyStore{}
	svc := newTestService(gen, store)

	candidate, err := svc.GenerateTweet(context.Background(), validRequest, "req-1")
	require.NoError(t, err)

	assert.Equal(t, "Your tests finish before your coffee does. Acme CI.", candidate.Text)
	assert.Equal(t, validRequest, candidate.SourceRequest)
	assert.Equal(t, []string{"generate", "evaluate"}, gen.stages())
	assert.Contains(t, gen.calls[0].prompt, validRequest.ProductDetails)
	assert.Contains(t, gen.calls[0].prompt, models.TweetTypeFunny.StyleDescription())

	require.Len(t, store.inserted, 1)
	assert.Equal(t, "req-1", store.inserted[0].RequestID)
	assert.Equal(t, "Funny", store.inserted[0].TweetType)
}

func TestGenerateTweet_FailingTweetIsRevised(t *testing.T) {
	revised := strings.Repeat("Acme CI makes slow builds history. ", 4)
	gen := newScriptedGenerator("Acme CI is a CI tool.", "Too bland, add a hook.", revised+" #ci")
	svc := newTestService(gen, &flakyStore{})

	candidate, err := svc.GenerateTweet(context.Background(), validRequest, "req-2")
	require.NoError(t, err)

	assert.Equal(t, strings.TrimSpace(revised), candidate.Text)
	assert.Equal(t, []string{"generate", "evaluate", "revise"}, gen.stages())
	assert.Contains(t, gen.calls[2].prompt, "Too bland, add a hook.")
}

func TestGenerateTweet_ValidationRejectsBeforeAnyCall(t *testing.T) {
	gen := newScriptedGenerator()
	store := &flakyStore{}
	svc := newTestService(gen, store)

	_, err := svc.GenerateTweet(context.Background(), models.GenerationRequest{ProductDetails: "", TweetType: "CTA"}, "req-3")

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Empty(t, gen.calls)
	assert.Zero(t, store.calls)
}

func TestGenerateTweet_PersistenceRetries(t *testing.T) {
	t.Run("two failures then success", func(t *testing.T) {
		gen := newScriptedGenerator("Tweet text", "9")
		store := &flakyStore{failures: 2}

		_, err := newTestService(gen, store).GenerateTweet(context.Background(), validRequest, "req-4")
		require.NoError(t, err)
		assert.Len(t, store.inserted, 1)
		assert.Len(t, gen.calls, 2)
	})

	t.Run("three failures abort before generation", func(t *testing.T) {
		gen := newScriptedGenerator()
		store := &flakyStore{failures: 3}

		_, err := newTestService(gen, store).GenerateTweet(context.Background(), validRequest, "req-5")
		var persistErr *PersistenceError
		require.ErrorAs(t, err, &persistErr)
		assert.Empty(t, gen.calls)
		assert.Equal(t, 3, store.calls)
	})
}

func TestRandomTweet(t *testing.T) {
	gen := newScriptedGenerator("Money talks. Mine just waves goodbye.", "7")
	svc := newTestService(gen, nil)

	tweet, err := svc.RandomTweet(context.Background(), models.RandomRequest{
		Mood: "funny", Style: "casual", Length: 200, TweetType: "Money",
	})
	require.NoError(t, err)
	assert.Equal(t, "Money talks. Mine just waves goodbye.", tweet)
	assert.Contains(t, gen.calls[0].prompt, "Keep it under 200 characters.")

	_, err = svc.RandomTweet(context.Background(), models.RandomRequest{Mood: "funny"})
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Len(t, gen.calls, 2)
}

func TestRefine(t *testing.T) {
	gen := newScriptedGenerator("4. Needs a hook.", strings.Repeat("b", 120))
	svc := newTestService(gen, nil)

	got, err := svc.Refine(context.Background(), "meh", models.RevisionConstraints{MaxLength: 280})
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("b", 120), got)

	_, err = svc.Refine(context.Background(), "  ", models.RevisionConstraints{})
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestCheckRelevance(t *testing.T) {
	svc := newTestService(newScriptedGenerator("yes"), nil)
	result, err := svc.CheckRelevance(context.Background(), "Try Acme today")
	require.NoError(t, err)
	assert.Equal(t, "Try Acme today", result.Text)

	_, err = svc.CheckRelevance(context.Background(), "")
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestCheckDetails(t *testing.T) {
	const details = "Acme CI runs your test suite in 30 seconds."

	t.Run("valid and passing", func(t *testing.T) {
		gen := newScriptedGenerator("Valid", "8")
		result, err := newTestService(gen, nil).CheckDetails(context.Background(), details)
		require.NoError(t, err)
		assert.Equal(t, DetailsResult{Tweet: details}, result)
		assert.Equal(t, []string{"details_check", "evaluate"}, gen.stages())
		assert.Contains(t, gen.calls[0].prompt, details)
	})

	t.Run("valid and revised", func(t *testing.T) {
		gen := newScriptedGenerator("Valid.", "Reads like a spec sheet.", "Stop waiting on CI. Acme runs it in 30s.")
		result, err := newTestService(gen, nil).CheckDetails(context.Background(), details)
		require.NoError(t, err)
		assert.Equal(t, "Stop waiting on CI. Acme runs it in 30s.", result.Tweet)
		assert.Equal(t, "Reads like a spec sheet.", result.Feedback)
	})

	t.Run("invalid", func(t *testing.T) {
		gen := newScriptedGenerator("Invalid")
		_, err := newTestService(gen, nil).CheckDetails(context.Background(), "asdf qwer")
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Len(t, gen.calls, 1)
	})

	t.Run("unexpected reply", func(t *testing.T) {
		gen := newScriptedGenerator("It depends")
		_, err := newTestService(gen, nil).CheckDetails(context.Background(), details)
		var replyErr *ProviderReplyError
		require.ErrorAs(t, err, &replyErr)
		assert.Equal(t, "It depends", replyErr.Reply)
	})

	t.Run("empty details", func(t *testing.T) {
		gen := newScriptedGenerator()
		_, err := newTestService(gen, nil).CheckDetails(context.Background(), "")
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Empty(t, gen.calls)
	})
}
