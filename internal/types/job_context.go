// Package types provides type definitions for structured data used throughout the cv-curator system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// JobContext represents the target-job description content is curated against
type JobContext struct {
	Title  string `json:"title,omitempty"`
	Sector string `json:"sector"`
	// Description is the free-text job posting body
	Description    string   `json:"description,omitempty"`
	RequiredSkills []string `json:"required_skills,omitempty"`
	// ExperienceLevel is a free-form requirement like "5+ years"
	ExperienceLevel       string       `json:"experience_level,omitempty"`
	EducationRequirements []string     `json:"education_requirements,omitempty"`
	Responsibilities      []string     `json:"responsibilities,omitempty"`
	Organization          Organization `json:"organization"`
}

// Organization describes the hiring company or agency
type Organization struct {
	Name string `json:"name,omitempty"`
	Type string `json:"type,omitempty"`
	Size string `json:"size,omitempty"`
}

// Known sector tags
const (
	SectorFederal    = "federal"
	SectorState      = "state"
	SectorHealthcare = "healthcare"
	SectorTech       = "tech"
	SectorPrivate    = "private"
)
