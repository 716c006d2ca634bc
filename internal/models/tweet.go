package models

// GenerationRequest is the payload of the primary generate endpoint
type GenerationRequest struct {
	ProductDetails      string `json:"productDetails"`
	TweetType           string `json:"tweetType"`
	StructurePreference string `json:"structurePreference,omitempty"`
	CasePreference      string `json:"casePreference,omitempty"`
	URL                 string `json:"url,omitempty"`
	IncludeHashtags     bool   `json:"hashtags"`
}

// RandomRequest is the payload of the random generator endpoint
type RandomRequest struct {
	Mood      string `json:"mood"`
	Style     string `json:"style"`
	Length    int    `json:"length"`
	TweetType string `json:"tweetType"` // topic key, e.g. "Tech"
	Structure string `json:"structure,omitempty"`
	Hashtags  bool   `json:"hashtags"`
}

// CandidateTweet is a generated tweet together with the request that produced it.
// Revisions produce a new CandidateTweet instead of mutating the old one.
type CandidateTweet struct {
	Text          string
	SourceRequest GenerationRequest
}

// WithText returns a copy of the candidate carrying the revised text
func (c CandidateTweet) WithText(text string) CandidateTweet {
	return CandidateTweet{Text: text, SourceRequest: c.SourceRequest}
}

// Verdict is the outcome of a quality evaluation
type Verdict string

const (
	VerdictPass Verdict = "PASS"
	VerdictFail Verdict = "FAIL"
)

// QualityVerdict is the classified reply of the quality evaluation.
// Score is 0 when the model replied with prose instead of a number.
type QualityVerdict struct {
	Score    int     `json:"score"`
	Verdict  Verdict `json:"verdict"`
	Feedback string  `json:"feedback,omitempty"`
}

// Passed reports whether the tweet can be returned unchanged
func (v QualityVerdict) Passed() bool {
	return v.Verdict == VerdictPass
}

// RevisionConstraints are caller-supplied limits echoed into revision prompts.
// MaxLength of zero means no length band is enforced.
type RevisionConstraints struct {
	Structure       Structure
	HashtagsAllowed bool
	MaxLength       int
}

const (
	// TweetMaxLength is the platform character limit
	TweetMaxLength = 280
	// TweetMinLength is the lower bound of the accepted revision band
	TweetMinLength = 100
)

// LengthBand returns the accepted [min, max] rune band and whether one applies
func (c RevisionConstraints) LengthBand() (int, int, bool) {
	if c.MaxLength <= 0 {
		return 0, 0, false
	}
	minLength := TweetMinLength
	if c.MaxLength < minLength {
		minLength = c.MaxLength
	}
	return minLength, c.MaxLength, true
}
