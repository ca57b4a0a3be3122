// Package types provides type definitions for structured data used throughout the cv-curator system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ContentCluster represents a thematic grouping of content items.
// The current analyzer builds one cluster per content type.
type ContentCluster struct {
	ID         string   `json:"id"`
	Theme      string   `json:"theme"`
	ContentIDs []string `json:"content_ids"`
	// JobRelevance is the 0-1 fraction of cluster keywords that match the
	// job context's keyword pool
	JobRelevance float64 `json:"job_relevance"`
	// Keywords are the cluster's representative keywords (first ten seen)
	Keywords []string `json:"keywords"`
}

// ContentAnalysis represents the full analysis of a CV against a job context
type ContentAnalysis struct {
	ContentItems []ContentItem    `json:"content_items"`
	Scores       []ContentScore   `json:"scores"`
	Clusters     []ContentCluster `json:"clusters"`
	Summary      AnalysisSummary  `json:"summary"`
}

// AnalysisSummary holds aggregate statistics over the extracted content
type AnalysisSummary struct {
	TotalItems     int      `json:"total_items"`
	AverageQuality float64  `json:"average_quality"`
	CoverageAreas  []string `json:"coverage_areas"`
	StrengthAreas  []string `json:"strength_areas"`
	GapAreas       []string `json:"gap_areas"`
}
