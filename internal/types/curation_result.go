// Package types provides type definitions for structured data used throughout the cv-curator system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// CurationResult represents the final output of a curation run, consumed by
// an external renderer that maps selected content back onto the CV structure.
type CurationResult struct {
	SelectedContent []ContentDecision `json:"selected_content"`
	ExcludedContent []ContentDecision `json:"excluded_content"`
	Strategy        CurationStrategy  `json:"strategy"`
	Summary         CurationSummary   `json:"summary"`
	Recommendations []string          `json:"recommendations"`
}

// CurationSummary holds the run's aggregate statistics
type CurationSummary struct {
	OriginalItems int `json:"original_items"`
	SelectedItems int `json:"selected_items"`
	// EstimatedLength is the character count of the selected content
	EstimatedLength int `json:"estimated_length"`
	// RequirementsCoverage is the 0-1 fraction of the job's required
	// keywords represented among selected content
	RequirementsCoverage float64 `json:"requirements_coverage"`
}
