package services

import (
	"context"
	"strings"

	"github.com/Conceptual-Machines/tweetcraft-api/internal/logger"
	"github.com/Conceptual-Machines/tweetcraft-api/internal/prompt"
)

// RejectionMessage replaces text the gatekeeper judged off-topic
const RejectionMessage = "Please cross check your product details"

// RelevanceResult is the gatekeeper outcome. Text is what the caller shows:
// the original text, the rejection message, or the raw model reply when the
// answer was neither yes nor no.
type RelevanceResult struct {
	Accepted  bool   `json:"accepted"`
	Ambiguous bool   `json:"ambiguous,omitempty"`
	Text      string `json:"tweet"`
}

// Gatekeeper asks the model whether text is a product marketing tweet
type Gatekeeper struct {
	generator TextGenerator
	prompts   *prompt.Builder
}

// NewGatekeeper creates a gatekeeper
func NewGatekeeper(generator TextGenerator, prompts *prompt.Builder) *Gatekeeper {
	return &Gatekeeper{generator: generator, prompts: prompts}
}

// CheckRelevance classifies text with one yes/no model call.
// "yes" is checked before "no", so a reply containing both is accepted.
func (g *Gatekeeper) CheckRelevance(ctx context.Context, text string) (RelevanceResult, error) {
	reply, err := g.generator.Generate(ctx,
		g.prompts.Build(prompt.ModeGatekeep, prompt.Input{Tweet: text}),
		GetLLMParameters(LLMStageGatekeep))
	if err != nil {
		return RelevanceResult{}, err
	}

	answer := strings.ToLower(reply)
	switch {
	case strings.Contains(answer, "yes"):
		return RelevanceResult{Accepted: true, Text: text}, nil
	case strings.Contains(answer, "no"):
		return RelevanceResult{Accepted: false, Text: RejectionMessage}, nil
	default:
		logger.Warn("Gatekeeper reply was neither yes nor no", logger.Fields{"reply": reply})
		return RelevanceResult{Accepted: false, Ambiguous: true, Text: reply}, nil
	}
}
