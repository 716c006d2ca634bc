package handlers

import (
	"context"
	"net/http"

	"github.com/Conceptual-Machines/tweetcraft-api/internal/api/middleware"
	"github.com/Conceptual-Machines/tweetcraft-api/internal/models"
	"github.com/Conceptual-Machines/tweetcraft-api/internal/services"
	"github.com/gin-gonic/gin"
)

// TweetPipeline is the subset of services.TweetService the handlers call
type TweetPipeline interface {
	GenerateTweet(ctx context.Context, req models.GenerationRequest, requestID string) (models.CandidateTweet, error)
	Refine(ctx context.Context, tweet string, constraints models.RevisionConstraints) (string, error)
	RandomTweet(ctx context.Context, req models.RandomRequest) (string, error)
	CheckRelevance(ctx context.Context, text string) (services.RelevanceResult, error)
	CheckDetails(ctx context.Context, details string) (services.DetailsResult, error)
}

type TweetHandler struct {
	pipeline TweetPipeline
}

func NewTweetHandler(pipeline TweetPipeline) *TweetHandler {
	return &TweetHandler{pipeline: pipeline}
}

// TweetResponse is the success body of every tweet endpoint
type TweetResponse struct {
	Tweet string `json:"tweet"`
}

// QualityCheckRequest is the body of POST /api/qc
type QualityCheckRequest struct {
	Tweet       string                  `json:"tweet"`
	Constraints QualityCheckConstraints `json:"constraints"`
}

// QualityCheckConstraints mirrors models.RevisionConstraints on the wire.
// Length is the maximum character count; zero means the platform limit.
type QualityCheckConstraints struct {
	Structure string `json:"structure"`
	Hashtags  bool   `json:"hashtags"`
	Length    int    `json:"length"`
}

func (q QualityCheckConstraints) toModel() models.RevisionConstraints {
	maxLength := q.Length
	if maxLength <= 0 || maxLength > models.TweetMaxLength {
		maxLength = models.TweetMaxLength
	}
	return models.RevisionConstraints{
		Structure:       models.ParseStructure(q.Structure),
		HashtagsAllowed: q.Hashtags,
		MaxLength:       maxLength,
	}
}

// DetailsCheckRequest is the body of POST /api/detailscheck
type DetailsCheckRequest struct {
	ProductDetails string `json:"productDetails"`
}

// GenerateTweet handles POST /api/gen-tweets
func (h *TweetHandler) GenerateTweet(c *gin.Context) {
	var req models.GenerationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidBody})
		return
	}

	candidate, err := h.pipeline.GenerateTweet(c.Request.Context(), req, c.GetString(middleware.RequestIDKey))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, TweetResponse{Tweet: candidate.Text})
}

// QualityCheck handles POST /api/qc
func (h *TweetHandler) QualityCheck(c *gin.Context) {
	var req QualityCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidBody})
		return
	}

	tweet, err := h.pipeline.Refine(c.Request.Context(), req.Tweet, req.Constraints.toModel())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, TweetResponse{Tweet: tweet})
}

// Gatekeeper handles POST /api/gatekeeper. The body is the raw tweet text.
func (h *TweetHandler) Gatekeeper(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidBody})
		return
	}

	result, err := h.pipeline.CheckRelevance(c.Request.Context(), string(body))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// RandomTweet handles POST /api/rand-tweet
func (h *TweetHandler) RandomTweet(c *gin.Context) {
	var req models.RandomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidBody})
		return
	}

	tweet, err := h.pipeline.RandomTweet(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, TweetResponse{Tweet: tweet})
}

// DetailsCheck handles POST /api/detailscheck
func (h *TweetHandler) DetailsCheck(c *gin.Context) {
	var req DetailsCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidBody})
		return
	}

	result, err := h.pipeline.CheckDetails(c.Request.Context(), req.ProductDetails)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
