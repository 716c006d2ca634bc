package observability

import (
	"strconv"
	"strings"
)

// Pricing constants
const (
	tokensPerKilo       = 1000.0
	costFormatPrecision = 6

	defaultPricingModel = "llama-3.3-70b-versatile"
)

// ModelPricing contains pricing information per 1K tokens
type ModelPricing struct {
	InputPricePer1K  float64 // Price per 1K input tokens in USD
	OutputPricePer1K float64 // Price per 1K output tokens in USD
}

// PricingTable contains pricing for the models we route to
var PricingTable = map[string]ModelPricing{
	// Groq-hosted models
	"llama-3.3-70b-versatile": {InputPricePer1K: 0.00059, OutputPricePer1K: 0.00079},
	"llama-3.1-8b-instant":    {InputPricePer1K: 0.00005, OutputPricePer1K: 0.00008},
	// OpenAI
	"gpt-4o":      {InputPricePer1K: 0.0025, OutputPricePer1K: 0.01},
	"gpt-4o-mini": {InputPricePer1K: 0.00015, OutputPricePer1K: 0.0006},
	// Gemini
	"gemini-2.5-flash": {InputPricePer1K: 0.0003, OutputPricePer1K: 0.0025},
}

// CalculateCost calculates the cost in USD of one call.
// Unknown models fall back to the default model's pricing.
func CalculateCost(model string, inputTokens, outputTokens int64) float64 {
	pricing, exists := PricingTable[strings.ToLower(model)]
	if !exists {
		pricing = PricingTable[defaultPricingModel]
	}

	inputCost := (float64(inputTokens) / tokensPerKilo) * pricing.InputPricePer1K
	outputCost := (float64(outputTokens) / tokensPerKilo) * pricing.OutputPricePer1K
	return inputCost + outputCost
}

// FormatCost formats a cost value as a USD string
func FormatCost(cost float64) string {
	return "$" + strconv.FormatFloat(cost, 'f', costFormatPrecision, 64)
}
