package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTweetType(t *testing.T) {
	for _, tt := range TweetTypes {
		parsed, ok := ParseTweetType(string(tt))
		assert.True(t, ok, "expected %s to parse", tt)
		assert.Equal(t, tt, parsed)
	}

	parsed, ok := ParseTweetType("Sarcastic")
	assert.False(t, ok)
	assert.Equal(t, TweetTypeCTA, parsed)

	// keys are case sensitive, matching the form values
	_, ok = ParseTweetType("cta")
	assert.False(t, ok)
}

func TestTweetTypeStyleDescription(t *testing.T) {
	seen := map[string]TweetType{}
	for _, tt := range TweetTypes {
		desc := tt.StyleDescription()
		assert.NotEmpty(t, desc)
		if other, dup := seen[desc]; dup {
			t.Errorf("%s and %s share a style description", tt, other)
		}
		seen[desc] = tt
	}

	assert.Equal(t, TweetTypeCTA.StyleDescription(), TweetType("Unknown").StyleDescription())
}

func TestStructureAndCaseFragments(t *testing.T) {
	assert.Equal(t, StructureShort, ParseStructure(" Short "))
	assert.Equal(t, StructureLong, ParseStructure("long"))
	assert.Equal(t, StructureNone, ParseStructure("medium"))
	assert.Empty(t, StructureNone.Instruction())
	assert.NotEmpty(t, StructureShort.Instruction())

	assert.Equal(t, CaseAlternating, ParseCase("ALTERNATING"))
	assert.Equal(t, CaseNone, ParseCase("kebab"))
	assert.Empty(t, CaseNone.Instruction())
	for _, c := range cases {
		assert.NotEmpty(t, c.Instruction(), "case %s", c)
	}
}

func TestRandomFallbacks(t *testing.T) {
	m, ok := ParseMood("grumpy")
	assert.False(t, ok)
	assert.Equal(t, MoodHappy, m)

	s, ok := ParseWritingStyle("poetic")
	assert.False(t, ok)
	assert.Equal(t, WritingStyleCasual, s)

	topic, ok := ParseTopic("Sports")
	assert.False(t, ok)
	assert.Equal(t, TopicHumor, topic)

	topic, ok = ParseTopic("Money")
	assert.True(t, ok)
	assert.Contains(t, topic.Description(), "finances")
}

func TestURLAndHashtagInstructions(t *testing.T) {
	assert.Empty(t, URLInstruction("   "))
	assert.Contains(t, URLInstruction("https://example.com"), "https://example.com")
	assert.Equal(t, "Do not include hashtags.", HashtagInstruction(false))
	assert.Equal(t, "Include 1-2 relevant hashtags.", HashtagInstruction(true))
}

func TestRevisionConstraintsLengthBand(t *testing.T) {
	_, _, ok := RevisionConstraints{}.LengthBand()
	assert.False(t, ok)

	minLen, maxLen, ok := RevisionConstraints{MaxLength: 280}.LengthBand()
	assert.True(t, ok)
	assert.Equal(t, 100, minLen)
	assert.Equal(t, 280, maxLen)

	minLen, maxLen, ok = RevisionConstraints{MaxLength: 80}.LengthBand()
	assert.True(t, ok)
	assert.Equal(t, 80, minLen)
	assert.Equal(t, 80, maxLen)
}

func TestCandidateTweetWithText(t *testing.T) {
	original := CandidateTweet{Text: "first", SourceRequest: GenerationRequest{ProductDetails: "p", TweetType: "CTA"}}
	revised := original.WithText("second")

	assert.Equal(t, "first", original.Text)
	assert.Equal(t, "second", revised.Text)
	assert.Equal(t, original.SourceRequest, revised.SourceRequest)
}
