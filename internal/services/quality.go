package services

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/Conceptual-Machines/tweetcraft-api/internal/logger"
	"github.com/Conceptual-Machines/tweetcraft-api/internal/metrics"
	"github.com/Conceptual-Machines/tweetcraft-api/internal/models"
	"github.com/Conceptual-Machines/tweetcraft-api/internal/prompt"
)

const passingScore = 7

// ScoreParser turns the evaluation reply into a verdict
type ScoreParser interface {
	Parse(reply string) models.QualityVerdict
}

// StrictScoreParser passes a reply only when it is an integer in [7, 10]
type StrictScoreParser struct{}

func (StrictScoreParser) Parse(reply string) models.QualityVerdict {
	reply = strings.TrimSpace(reply)
	n, err := strconv.Atoi(reply)
	if err != nil {
		return models.QualityVerdict{Verdict: models.VerdictFail, Feedback: reply}
	}
	if n >= passingScore && n <= 10 {
		return models.QualityVerdict{Score: n, Verdict: models.VerdictPass}
	}
	return models.QualityVerdict{Score: n, Verdict: models.VerdictFail, Feedback: reply}
}

// legacyScorePattern is the alternation "starts with 7-9" or "ends with 10"
var legacyScorePattern = regexp.MustCompile(`^[7-9]|10$`)

var leadingDigits = regexp.MustCompile(`^\d+`)

// LegacyScoreParser keeps the historical regex classification.
// Only one end of the reply is inspected, so "70" and "3/10" pass while "17" fails.
type LegacyScoreParser struct{}

func (LegacyScoreParser) Parse(reply string) models.QualityVerdict {
	reply = strings.TrimSpace(reply)
	score, _ := strconv.Atoi(leadingDigits.FindString(reply))
	if legacyScorePattern.MatchString(reply) {
		return models.QualityVerdict{Score: score, Verdict: models.VerdictPass}
	}
	return models.QualityVerdict{Score: score, Verdict: models.VerdictFail, Feedback: reply}
}

// NewScoreParser returns the parser for a QUALITY_SCORE_MODE value
func NewScoreParser(mode string) ScoreParser {
	if mode == "legacy" {
		return LegacyScoreParser{}
	}
	return StrictScoreParser{}
}

// QualityGate asks the model to score a tweet and classifies the reply
type QualityGate struct {
	generator TextGenerator
	prompts   *prompt.Builder
	parser    ScoreParser
	metrics   metrics.Recorder
}

// NewQualityGate creates a quality gate
func NewQualityGate(generator TextGenerator, prompts *prompt.Builder, parser ScoreParser, recorder metrics.Recorder) *QualityGate {
	if parser == nil {
		parser = StrictScoreParser{}
	}
	if recorder == nil {
		recorder = metrics.Nop{}
	}
	return &QualityGate{
		generator: generator,
		prompts:   prompts,
		parser:    parser,
		metrics:   recorder,
	}
}

// Evaluate scores tweet with one model call
func (g *QualityGate) Evaluate(ctx context.Context, tweet string) (models.QualityVerdict, error) {
	reply, err := g.generator.Generate(ctx,
		g.prompts.Build(prompt.ModeEvaluate, prompt.Input{Tweet: tweet}),
		GetLLMParameters(LLMStageEvaluate))
	if err != nil {
		return models.QualityVerdict{}, err
	}

	verdict := g.parser.Parse(reply)
	g.metrics.RecordQualityVerdict(ctx, string(verdict.Verdict))
	logger.Debug("Quality verdict", logger.Fields{
		"verdict": string(verdict.Verdict),
		"score":   verdict.Score,
	})
	return verdict, nil
}
