// Package types provides type definitions for structured data used throughout the cv-curator system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// CurationStrategy represents the configuration a curation run operates
// under: hard size constraints, alignment-scoring weights, and free-form
// sector rules consumed by downstream renderers.
type CurationStrategy struct {
	Name        string          `json:"name" validate:"required"`
	Constraints Constraints     `json:"constraints"`
	Weights     Weights         `json:"weights"`
	SectorRules map[string]bool `json:"sector_rules,omitempty"`
}

// Constraints holds the hard budget limits for a single-page document
type Constraints struct {
	MaxCharacters      int `json:"max_characters" validate:"gt=0"`
	MaxExperienceItems int `json:"max_experience_items" validate:"gte=0"`
	MaxEducationItems  int `json:"max_education_items" validate:"gte=0"`
	MaxSkills          int `json:"max_skills" validate:"gte=0"`
}

// Weights holds the named alignment-scoring coefficients.
// They are not required to sum to 1.
type Weights struct {
	KeywordRelevance    float64 `json:"keyword_relevance" validate:"gte=0,lte=1"`
	SkillAlignment      float64 `json:"skill_alignment" validate:"gte=0,lte=1"`
	ExperienceRelevance float64 `json:"experience_relevance" validate:"gte=0,lte=1"`
	RecencyScore        float64 `json:"recency_score" validate:"gte=0,lte=1"`
	ImpactScore         float64 `json:"impact_score" validate:"gte=0,lte=1"`
	SectorRelevance     float64 `json:"sector_relevance" validate:"gte=0,lte=1"`
}

// Validate validates the CurationStrategy using the validator.
func (s *CurationStrategy) Validate() error {
	validate := validator.New()
	return validate.Struct(s)
}
