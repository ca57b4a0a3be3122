// Package types provides type definitions for structured data used throughout the cv-curator system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ContentDecision is the terminal artifact per content item: whether it was
// selected, at what priority, and with what modifications. The decisions for
// a run partition the extracted items into exactly the selected and excluded
// sets.
type ContentDecision struct {
	ContentID     string         `json:"content_id"`
	Include       bool           `json:"include"`
	Priority      Priority       `json:"priority"`
	Reasoning     string         `json:"reasoning"`
	Modifications *Modifications `json:"modifications,omitempty"`
}

// Modifications holds suggested edits to a content item's text
type Modifications struct {
	// Shortened is a trimmed version of the content that fits a length target
	Shortened string `json:"shortened,omitempty"`
	// Emphasize lists keywords the renderer should highlight
	Emphasize []string `json:"emphasize,omitempty"`
}
