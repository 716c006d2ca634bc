package services

import (
	"context"
	"strings"

	"github.com/Conceptual-Machines/tweetcraft-api/internal/models"
	"github.com/Conceptual-Machines/tweetcraft-api/internal/prompt"
)

// DetailsResult is the outcome of a product details check.
// Feedback is set only when the text was revised.
type DetailsResult struct {
	Tweet    string `json:"tweet"`
	Feedback string `json:"feedback,omitempty"`
}

// DetailsChecker verifies that product details describe a real product and
// then treats them as a draft tweet: scored, and revised when they fail
type DetailsChecker struct {
	generator TextGenerator
	prompts   *prompt.Builder
	quality   *QualityGate
	reviser   *Reviser
}

// NewDetailsChecker creates a details checker
func NewDetailsChecker(generator TextGenerator, prompts *prompt.Builder, quality *QualityGate, reviser *Reviser) *DetailsChecker {
	return &DetailsChecker{
		generator: generator,
		prompts:   prompts,
		quality:   quality,
		reviser:   reviser,
	}
}

// Check classifies details as Valid or Invalid. Invalid yields a
// *ValidationError; a reply that is neither word yields a *ProviderReplyError.
func (d *DetailsChecker) Check(ctx context.Context, details string) (DetailsResult, error) {
	if err := ValidateProductDetails(details); err != nil {
		return DetailsResult{}, err
	}

	reply, err := d.generator.Generate(ctx,
		d.prompts.Build(prompt.ModeDetailsCheck, prompt.Input{Request: models.GenerationRequest{ProductDetails: details}}),
		GetLLMParameters(LLMStageDetailsCheck))
	if err != nil {
		return DetailsResult{}, err
	}

	switch strings.Trim(strings.TrimSpace(reply), `."'`) {
	case "Valid":
	case "Invalid":
		return DetailsResult{}, &ValidationError{Field: "productDetails", Message: "Invalid product details"}
	default:
		return DetailsResult{}, &ProviderReplyError{Stage: string(LLMStageDetailsCheck), Reply: reply}
	}

	verdict, err := d.quality.Evaluate(ctx, details)
	if err != nil {
		return DetailsResult{}, err
	}
	if verdict.Passed() {
		return DetailsResult{Tweet: details}, nil
	}

	revised, err := d.reviser.Revise(ctx, details, verdict.Feedback, models.RevisionConstraints{HashtagsAllowed: true})
	if err != nil {
		return DetailsResult{}, err
	}
	return DetailsResult{Tweet: revised, Feedback: verdict.Feedback}, nil
}
