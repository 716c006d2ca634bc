package services

import (
	"context"

	"github.com/Conceptual-Machines/tweetcraft-api/internal/logger"
	"github.com/Conceptual-Machines/tweetcraft-api/internal/metrics"
	"github.com/Conceptual-Machines/tweetcraft-api/internal/models"
	"github.com/Conceptual-Machines/tweetcraft-api/internal/prompt"
)

// TweetService runs the generation pipeline. Every stage is awaited before
// the next starts; nothing is shared between requests except the injected
// clients.
type TweetService struct {
	generator   TextGenerator
	prompts     *prompt.Builder
	quality     *QualityGate
	reviser     *Reviser
	gatekeeper  *Gatekeeper
	details     *DetailsChecker
	preferences *PreferenceRecorder
}

// NewTweetService wires the pipeline stages around one generator
func NewTweetService(generator TextGenerator, parser ScoreParser, preferences *PreferenceRecorder, recorder metrics.Recorder) *TweetService {
	prompts := prompt.NewPromptBuilder()
	quality := NewQualityGate(generator, prompts, parser, recorder)
	reviser := NewReviser(generator, prompts)
	if preferences == nil {
		preferences = NewPreferenceRecorder(NopPreferenceStore{}, 1, 0)
	}
	return &TweetService{
		generator:   generator,
		prompts:     prompts,
		quality:     quality,
		reviser:     reviser,
		gatekeeper:  NewGatekeeper(generator, prompts),
		details:     NewDetailsChecker(generator, prompts, quality, reviser),
		preferences: preferences,
	}
}

// GenerateTweet validates req, persists the preferences, generates a tweet
// and runs it through the quality gate. A persistence failure aborts the
// request before any model call.
func (s *TweetService) GenerateTweet(ctx context.Context, req models.GenerationRequest, requestID string) (models.CandidateTweet, error) {
	if err := ValidateGenerationRequest(req); err != nil {
		return models.CandidateTweet{}, err
	}

	if err := s.preferences.Persist(ctx, models.NewPreferenceRecord(req, requestID)); err != nil {
		return models.CandidateTweet{}, err
	}

	text, err := s.generator.Generate(ctx,
		s.prompts.Build(prompt.ModeGenerate, prompt.Input{Request: req}),
		GetLLMParameters(LLMStageGenerate))
	if err != nil {
		return models.CandidateTweet{}, err
	}
	candidate := models.CandidateTweet{Text: text, SourceRequest: req}

	refined, err := s.Refine(ctx, candidate.Text, models.RevisionConstraints{
		Structure:       models.ParseStructure(req.StructurePreference),
		HashtagsAllowed: req.IncludeHashtags,
		MaxLength:       models.TweetMaxLength,
	})
	if err != nil {
		return models.CandidateTweet{}, err
	}
	return candidate.WithText(refined), nil
}

// RandomTweet generates a tweet from mood, style and topic, then refines it
func (s *TweetService) RandomTweet(ctx context.Context, req models.RandomRequest) (string, error) {
	if err := ValidateRandomRequest(req); err != nil {
		return "", err
	}

	text, err := s.generator.Generate(ctx,
		s.prompts.Build(prompt.ModeRandom, prompt.Input{Random: req}),
		GetLLMParameters(LLMStageGenerate))
	if err != nil {
		return "", err
	}

	maxLength := req.Length
	if maxLength > models.TweetMaxLength {
		maxLength = models.TweetMaxLength
	}
	return s.Refine(ctx, text, models.RevisionConstraints{
		Structure:       models.ParseStructure(req.Structure),
		HashtagsAllowed: req.Hashtags,
		MaxLength:       maxLength,
	})
}

// Refine returns tweet unchanged when it passes the quality gate and the
// revised text otherwise
func (s *TweetService) Refine(ctx context.Context, tweet string, constraints models.RevisionConstraints) (string, error) {
	if err := ValidateQualityCheck(tweet); err != nil {
		return "", err
	}

	verdict, err := s.quality.Evaluate(ctx, tweet)
	if err != nil {
		return "", err
	}
	if verdict.Passed() {
		return tweet, nil
	}

	logger.Info("Tweet failed quality gate, revising", logger.Fields{
		"score":    verdict.Score,
		"feedback": verdict.Feedback,
	})
	return s.reviser.Revise(ctx, tweet, verdict.Feedback, constraints)
}

// CheckRelevance runs the gatekeeper on raw text
func (s *TweetService) CheckRelevance(ctx context.Context, text string) (RelevanceResult, error) {
	if err := ValidateRelevanceText(text); err != nil {
		return RelevanceResult{}, err
	}
	return s.gatekeeper.CheckRelevance(ctx, text)
}

// CheckDetails verifies product details and returns them as a polished tweet
func (s *TweetService) CheckDetails(ctx context.Context, details string) (DetailsResult, error) {
	return s.details.Check(ctx, details)
}
