package advisor

import (
	"time"
)

// RecommendationType identifies the kind of advice being requested
type RecommendationType string

const (
	RecommendationBudget     RecommendationType = "budget"
	RecommendationInvestment RecommendationType = "investment"
	RecommendationSavings    RecommendationType = "savings"
	RecommendationDebt       RecommendationType = "debt"
)

// IsValid checks if the type is a valid RecommendationType
func (t RecommendationType) IsValid() bool {
	switch t {
	case RecommendationBudget, RecommendationInvestment,
		RecommendationSavings, RecommendationDebt:
		return true
	}
	return false
}

// String returns the string representation of RecommendationType
func (t RecommendationType) String() string {
	return string(t)
}

// RecommendationPayload is the result of one recommendation generation.
// The content is produced by an external generator and is opaque to the
// caching layer.
type RecommendationPayload struct {
	Type        RecommendationType `json:"type"`
	Summary     string             `json:"summary"`
	Suggestions []string           `json:"suggestions"`
	GeneratedAt time.Time          `json:"generated_at"`
}
