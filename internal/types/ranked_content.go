// Package types provides type definitions for structured data used throughout the cv-curator system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Priority is the tier assigned to a ranked content item
type Priority string

// Priority tiers, highest first
const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

// RankedContentItem wraps a content item with its alignment score, derived
// strategic value, priority tier, and the factors behind its final rank.
// A slice of these, sorted descending by FinalRankingScore with extraction
// order as the tie-break, forms the total order the decision maker walks.
type RankedContentItem struct {
	Item  ContentItem  `json:"item"`
	Score ContentScore `json:"score"`
	// StrategicValue is a 0-1 type- and context-derived importance score,
	// independent of job alignment
	StrategicValue    float64        `json:"strategic_value"`
	Priority          Priority       `json:"priority"`
	FinalRankingScore float64        `json:"final_ranking_score"`
	RankingFactors    RankingFactors `json:"ranking_factors"`
}

// RankingFactors holds the five 0-1 components behind a final ranking score
type RankingFactors struct {
	JobAlignment        float64 `json:"job_alignment"`
	ContentImpact       float64 `json:"content_impact"`
	StrategicImportance float64 `json:"strategic_importance"`
	Diversity           float64 `json:"diversity"`
	Essentialness       float64 `json:"essentialness"`
}
