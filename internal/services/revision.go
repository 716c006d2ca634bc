package services

import (
	"context"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/Conceptual-Machines/tweetcraft-api/internal/llm"
	"github.com/Conceptual-Machines/tweetcraft-api/internal/logger"
	"github.com/Conceptual-Machines/tweetcraft-api/internal/models"
	"github.com/Conceptual-Machines/tweetcraft-api/internal/prompt"
)

// TextGenerator is the single model call every stage is built on.
// *llm.Client satisfies it.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string, opts llm.Options) (string, error)
}

var (
	hashtagPattern = regexp.MustCompile(`#\w+`)
	spaceRuns      = regexp.MustCompile(`[ \t]{2,}`)
)

// StripHashtags removes every #word token and tidies the leftover spacing
func StripHashtags(text string) string {
	text = hashtagPattern.ReplaceAllString(text, "")
	text = spaceRuns.ReplaceAllString(text, " ")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// truncateRunes cuts text to at most n characters
func truncateRunes(text string, n int) string {
	if utf8.RuneCountInString(text) <= n {
		return text
	}
	return string([]rune(text)[:n])
}

// Reviser rewrites a failing tweet using the quality feedback
type Reviser struct {
	generator TextGenerator
	prompts   *prompt.Builder
}

// NewReviser creates a reviser
func NewReviser(generator TextGenerator, prompts *prompt.Builder) *Reviser {
	return &Reviser{generator: generator, prompts: prompts}
}

// Revise makes one rewrite call, then post-processes the reply. When a length
// band applies and the truncated reply is still too short, exactly one more
// call is made with the length retry prompt and its reply is accepted as is.
func (r *Reviser) Revise(ctx context.Context, tweet, feedback string, constraints models.RevisionConstraints) (string, error) {
	in := prompt.Input{Tweet: tweet, Feedback: feedback, Constraints: constraints}

	revised, err := r.generator.Generate(ctx, r.prompts.Build(prompt.ModeRevise, in), GetLLMParameters(LLMStageRevise))
	if err != nil {
		return "", err
	}
	revised = r.postProcess(revised, constraints)

	if minLength, maxLength, ok := constraints.LengthBand(); ok {
		length := utf8.RuneCountInString(revised)
		if length < minLength || length > maxLength {
			revised = truncateRunes(revised, maxLength)
			if utf8.RuneCountInString(revised) < minLength {
				logger.Info("Revised tweet below length band, retrying once", logger.Fields{
					"length":     utf8.RuneCountInString(revised),
					"min_length": minLength,
				})
				revised, err = r.generator.Generate(ctx, r.prompts.Build(prompt.ModeLengthRetry, in), GetLLMParameters(LLMStageLengthRetry))
				if err != nil {
					return "", err
				}
				revised = r.postProcess(revised, constraints)
			}
		}
	}

	if revised == "" {
		return "", ErrEmptyResult
	}
	return revised, nil
}

func (r *Reviser) postProcess(text string, constraints models.RevisionConstraints) string {
	text = strings.TrimSpace(text)
	if !constraints.HashtagsAllowed {
		text = StripHashtags(text)
	}
	return text
}
