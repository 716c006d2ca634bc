package services

import (
	"strings"

	"github.com/Conceptual-Machines/tweetcraft-api/internal/models"
)

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// ValidateGenerationRequest checks the primary endpoint payload
func ValidateGenerationRequest(req models.GenerationRequest) error {
	if blank(req.ProductDetails) {
		return &ValidationError{Field: "productDetails", Message: "Product details cannot be empty"}
	}
	if blank(req.TweetType) {
		return &ValidationError{Field: "tweetType", Message: "Tweet type is required"}
	}
	return nil
}

// ValidateRandomRequest checks the random generator payload
func ValidateRandomRequest(req models.RandomRequest) error {
	if blank(req.TweetType) {
		return &ValidationError{Field: "tweetType", Message: "Tweet type is required"}
	}
	if blank(req.Mood) || blank(req.Style) || req.Length <= 0 {
		return &ValidationError{Message: "Missing required fields"}
	}
	return nil
}

// ValidateQualityCheck checks the tweet submitted for a quality check
func ValidateQualityCheck(tweet string) error {
	if blank(tweet) {
		return &ValidationError{Field: "tweet", Message: "Tweet is required"}
	}
	return nil
}

// ValidateRelevanceText checks the raw gatekeeper body
func ValidateRelevanceText(text string) error {
	if blank(text) {
		return &ValidationError{Message: "Empty request body"}
	}
	return nil
}

// ValidateProductDetails checks the details check payload
func ValidateProductDetails(details string) error {
	if blank(details) {
		return &ValidationError{Field: "productDetails", Message: "Empty product details"}
	}
	return nil
}
