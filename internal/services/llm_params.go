package services

import (
	"github.com/Conceptual-Machines/tweetcraft-api/internal/llm"
)

// LLMStage represents which step of the pipeline a model call belongs to
type LLMStage string

const (
	LLMStageGenerate     LLMStage = "generate"
	LLMStageEvaluate     LLMStage = "evaluate"
	LLMStageRevise       LLMStage = "revise"
	LLMStageLengthRetry  LLMStage = "length_retry"
	LLMStageGatekeep     LLMStage = "gatekeep"
	LLMStageDetailsCheck LLMStage = "details_check"
)

// Sampling values for the classification stages
const (
	classifierTemperature = 0.0
	evaluateTemperature   = 0.2
	classifierMaxTokens   = 8
	evaluateMaxTokens     = 300
)

// GetLLMParameters returns the call options for each stage.
// Creative stages keep the provider defaults; classification stages are
// short and close to deterministic.
func GetLLMParameters(stage LLMStage) llm.Options {
	switch stage {
	case LLMStageEvaluate:
		// Either a bare number or a paragraph of feedback
		return llm.Options{
			Stage:           string(stage),
			Temperature:     floatPtr(evaluateTemperature),
			MaxOutputTokens: intPtr(evaluateMaxTokens),
		}

	case LLMStageGatekeep, LLMStageDetailsCheck:
		// One word answers
		return llm.Options{
			Stage:           string(stage),
			Temperature:     floatPtr(classifierTemperature),
			MaxOutputTokens: intPtr(classifierMaxTokens),
		}

	case LLMStageGenerate, LLMStageRevise, LLMStageLengthRetry:
		fallthrough
	default:
		return llm.Options{Stage: string(stage)}
	}
}

func floatPtr(v float64) *float64 { return &v }

func intPtr(v int64) *int64 { return &v }
