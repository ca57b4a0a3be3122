// Package types provides type definitions for structured data used throughout the cv-curator system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ContentType identifies the kind of CV content a ContentItem holds
type ContentType string

// Content types that can be curated
const (
	ContentExperience     ContentType = "experience"
	ContentEducation      ContentType = "education"
	ContentSkill          ContentType = "skill"
	ContentAchievement    ContentType = "achievement"
	ContentCertification  ContentType = "certification"
	ContentProject        ContentType = "project"
	ContentResponsibility ContentType = "responsibility"
	ContentSummary        ContentType = "summary"
	ContentPersonalInfo   ContentType = "personal_info"
)

// IsEssential reports whether this content type must always survive curation
func (t ContentType) IsEssential() bool {
	return t == ContentSummary || t == ContentPersonalInfo
}

// ContentItem represents one atomic piece of CV content that can be
// analyzed, scored, and selected. Items are created once per curation run
// by the extractor and are immutable afterwards.
type ContentItem struct {
	ID       string          `json:"id"`
	Type     ContentType     `json:"type"`
	Content  string          `json:"content"`
	Section  string          `json:"section"`
	Metadata ContentMetadata `json:"metadata"`
	// Source links the item back to the structured CV field it was derived
	// from so a downstream renderer can reassemble the document.
	Source ContentSource `json:"source"`
}

// ContentSource identifies the structured CV field an item was derived from
type ContentSource struct {
	Section string `json:"section"`
	// Index is the position within the section's list, -1 for scalar fields
	Index int `json:"index"`
	// SubIndex is the position within a nested list (responsibility or
	// achievement under an experience entry), -1 otherwise
	SubIndex int `json:"sub_index"`
}

// DateRange represents the start/end dates associated with a content item.
// End may be empty for open-ended ranges.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end,omitempty"`
}

// ContentMetadata holds the heuristic features attached to each content item
type ContentMetadata struct {
	DateRange *DateRange `json:"date_range,omitempty"`
	// Recency is a 0-1 freshness score, 1 = most current
	Recency float64 `json:"recency"`
	// Impact is a 0-1 heuristic measure of how significant the content appears
	Impact float64 `json:"impact"`
	// Length is the character count of the content
	Length int `json:"length"`
	// Keywords are the deduplicated lowercase tokens extracted from the
	// content, in first-seen order
	Keywords []string `json:"keywords"`
	// Sectors are the industry tags the content matched (federal, state,
	// healthcare, tech, private)
	Sectors []string `json:"sectors"`
}
