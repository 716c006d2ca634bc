package services

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/Conceptual-Machines/tweetcraft-api/internal/models"
	"github.com/Conceptual-Machines/tweetcraft-api/internal/prompt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A reply of the given rune count without hashtags
func replyOfLength(n int) string {
	return strings.Repeat("a", n)
}

func TestStripHashtags(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no hashtags", "Ship faster with Acme CI.", "Ship faster with Acme CI."},
		{"one hashtag", "Ship faster with Acme CI. #devops", "Ship faster with Acme CI."},
		{"many hashtags", "#New Ship #faster with Acme CI #devops #ci_cd", "Ship with Acme CI"},
		{"keeps line breaks", "Line one #a\nLine two", "Line one\nLine two"},
		{"only hashtags", "#one #two", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StripHashtags(tt.in)
			assert.Equal(t, tt.want, got)
			assert.False(t, hashtagPattern.MatchString(got))
		})
	}
}

func TestReviseStripsHashtagsWhenDisallowed(t *testing.T) {
	for _, reply := range []string{
		"Your backlog called. It wants Acme.",
		"Your backlog called. It wants Acme. #productivity",
		"#Launch Your backlog called. #tools It wants Acme. #productivity #saas",
	} {
		gen := newScriptedGenerator(reply)
		reviser := NewReviser(gen, prompt.NewPromptBuilder())

		got, err := reviser.Revise(context.Background(), "old tweet", "needs a hook", models.RevisionConstraints{HashtagsAllowed: false})
		require.NoError(t, err)
		assert.NotContains(t, got, "#")
		assert.Len(t, gen.calls, 1)
	}
}

func TestReviseKeepsHashtagsWhenAllowed(t *testing.T) {
	gen := newScriptedGenerator("Ship it. #devops")
	reviser := NewReviser(gen, prompt.NewPromptBuilder())

	got, err := reviser.Revise(context.Background(), "old", "feedback", models.RevisionConstraints{HashtagsAllowed: true})
	require.NoError(t, err)
	assert.Equal(t, "Ship it. #devops", got)
}

func TestReviseLengthBand(t *testing.T) {
	band := models.RevisionConstraints{HashtagsAllowed: true, MaxLength: 280}

	t.Run("short reply triggers exactly one retry", func(t *testing.T) {
		retry := replyOfLength(40)
		gen := newScriptedGenerator(replyOfLength(50), retry)
		reviser := NewReviser(gen, prompt.NewPromptBuilder())

		got, err := reviser.Revise(context.Background(), "old", "feedback", band)
		require.NoError(t, err)

		// The retry reply is accepted without another length check
		assert.Equal(t, retry, got)
		assert.Equal(t, []string{string(LLMStageRevise), string(LLMStageLengthRetry)}, gen.stages())
		assert.Contains(t, gen.calls[1].prompt, "between 100 and 280 characters")
	})

	t.Run("reply in band makes no retry", func(t *testing.T) {
		gen := newScriptedGenerator(replyOfLength(150))
		got, err := NewReviser(gen, prompt.NewPromptBuilder()).Revise(context.Background(), "old", "feedback", band)
		require.NoError(t, err)
		assert.Equal(t, 150, utf8.RuneCountInString(got))
		assert.Len(t, gen.calls, 1)
	})

	t.Run("long reply is truncated without retry", func(t *testing.T) {
		gen := newScriptedGenerator(strings.Repeat("é", 400))
		got, err := NewReviser(gen, prompt.NewPromptBuilder()).Revise(context.Background(), "old", "feedback", band)
		require.NoError(t, err)
		assert.Equal(t, 280, utf8.RuneCountInString(got))
		assert.Len(t, gen.calls, 1)
	})

	t.Run("short after hashtag stripping triggers retry", func(t *testing.T) {
		gen := newScriptedGenerator(replyOfLength(60)+" #a #b #c #d #e #f #g #h #i #j #k #l", replyOfLength(120)+" #tag")
		got, err := NewReviser(gen, prompt.NewPromptBuilder()).Revise(context.Background(), "old", "feedback",
			models.RevisionConstraints{HashtagsAllowed: false, MaxLength: 280})
		require.NoError(t, err)
		assert.Equal(t, replyOfLength(120), got)
		assert.Len(t, gen.calls, 2)
	})

	t.Run("no band means no retry", func(t *testing.T) {
		gen := newScriptedGenerator("short")
		got, err := NewReviser(gen, prompt.NewPromptBuilder()).Revise(context.Background(), "old", "feedback", models.RevisionConstraints{})
		require.NoError(t, err)
		assert.Equal(t, "short", got)
		assert.Len(t, gen.calls, 1)
	})

	t.Run("small max lowers the minimum", func(t *testing.T) {
		gen := newScriptedGenerator(replyOfLength(60))
		got, err := NewReviser(gen, prompt.NewPromptBuilder()).Revise(context.Background(), "old", "feedback",
			models.RevisionConstraints{HashtagsAllowed: true, MaxLength: 80})
		require.NoError(t, err)
		assert.Len(t, got, 60)
		assert.Len(t, gen.calls, 1)
	})
}

func TestReviseEmptyResult(t *testing.T) {
	gen := newScriptedGenerator("#only #hashtags")
	_, err := NewReviser(gen, prompt.NewPromptBuilder()).Revise(context.Background(), "old", "feedback", models.RevisionConstraints{})
	assert.ErrorIs(t, err, ErrEmptyResult)

	gen = newScriptedGenerator(replyOfLength(10), "#nothing")
	_, err = NewReviser(gen, prompt.NewPromptBuilder()).Revise(context.Background(), "old", "feedback",
		models.RevisionConstraints{MaxLength: 280})
	assert.ErrorIs(t, err, ErrEmptyResult)
	assert.Len(t, gen.calls, 2)
}

func TestRevisePromptCarriesFeedbackAndConstraints(t *testing.T) {
	gen := newScriptedGenerator(replyOfLength(150))
	_, err := NewReviser(gen, prompt.NewPromptBuilder()).Revise(context.Background(),
		"Buy Acme now", "Add urgency and a concrete benefit",
		models.RevisionConstraints{Structure: models.StructureShort, MaxLength: 280})
	require.NoError(t, err)

	p := gen.calls[0].prompt
	assert.Contains(t, p, `"Buy Acme now"`)
	assert.Contains(t, p, "Add urgency and a concrete benefit")
	assert.Contains(t, p, "between 100 and 280 characters")
	assert.Contains(t, p, models.StructureShort.Instruction())
	assert.Contains(t, p, models.HashtagInstruction(false))
}
