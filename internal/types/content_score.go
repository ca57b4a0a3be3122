// Package types provides type definitions for structured data used throughout the cv-curator system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ContentScore represents a per-item job-alignment score produced by a
// scoring collaborator. OverallScore is the only field the ranker consumes;
// the component breakdown is carried for reporting.
type ContentScore struct {
	ContentID    string          `json:"content_id"`
	OverallScore float64         `json:"overall_score"`
	Components   ScoreComponents `json:"components"`
	// Confidence is the scorer's 0-1 confidence in its own assessment
	Confidence float64  `json:"confidence"`
	Reasoning  []string `json:"reasoning,omitempty"`
}

// ScoreComponents holds the individual alignment scoring factors
type ScoreComponents struct {
	KeywordRelevance    float64 `json:"keyword_relevance"`
	SkillAlignment      float64 `json:"skill_alignment"`
	ExperienceRelevance float64 `json:"experience_relevance"`
	RecencyScore        float64 `json:"recency_score"`
	ImpactScore         float64 `json:"impact_score"`
	SectorRelevance     float64 `json:"sector_relevance"`
}
