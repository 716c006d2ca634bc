package models

import (
	"time"

	"github.com/google/uuid"
)

// PreferenceRecord logs the preferences submitted to the primary generate endpoint.
// Records are insert-only.
type PreferenceRecord struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt           time.Time `gorm:"not null" json:"created_at"`
	RequestID           string    `gorm:"index" json:"request_id"`
	ProductDetails      string    `gorm:"type:text;not null" json:"product_details"`
	TweetType           string    `gorm:"not null" json:"tweet_type"`
	StructurePreference string    `json:"structure_preference"`
	CasePreference      string    `json:"case_preference"`
	URL                 string    `json:"url"`
	IncludeHashtags     bool      `gorm:"default:false" json:"include_hashtags"`
}

// TableName overrides the gorm default
func (PreferenceRecord) TableName() string { return "tweet_preferences" }

// NewPreferenceRecord builds a record from a generation request
func NewPreferenceRecord(req GenerationRequest, requestID string) *PreferenceRecord {
	return &PreferenceRecord{
		ID:                  uuid.New(),
		CreatedAt:           time.Now().UTC(),
		RequestID:           requestID,
		ProductDetails:      req.ProductDetails,
		TweetType:           req.TweetType,
		StructurePreference: req.StructurePreference,
		CasePreference:      req.CasePreference,
		URL:                 req.URL,
		IncludeHashtags:     req.IncludeHashtags,
	}
}
