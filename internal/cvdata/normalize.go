// Package cvdata provides functionality to load and normalize structured CV files.
package cvdata

import (
	"fmt"
	"strings"

	"github.com/jonathan/cv-curator/internal/parsing"
	"github.com/jonathan/cv-curator/internal/types"
)

// NormalizeCVData applies all normalization steps to a structured CV
func NormalizeCVData(cv *types.CVData) error {
	TrimFields(cv)
	NormalizeSkills(cv)

	if err := ValidateEntries(cv); err != nil {
		return err
	}

	return nil
}

// TrimFields strips surrounding whitespace from free-text fields
func TrimFields(cv *types.CVData) {
	cv.PersonalInfo.Name = strings.TrimSpace(cv.PersonalInfo.Name)
	cv.PersonalInfo.Summary = strings.TrimSpace(cv.PersonalInfo.Summary)

	for i := range cv.Experience {
		exp := &cv.Experience[i]
		exp.Position = strings.TrimSpace(exp.Position)
		exp.Employer = strings.TrimSpace(exp.Employer)
		for j := range exp.Responsibilities {
			exp.Responsibilities[j] = strings.TrimSpace(exp.Responsibilities[j])
		}
		for j := range exp.Achievements {
			exp.Achievements[j] = strings.TrimSpace(exp.Achievements[j])
		}
	}

	for i := range cv.Education {
		cv.Education[i].Degree = strings.TrimSpace(cv.Education[i].Degree)
		cv.Education[i].Field = strings.TrimSpace(cv.Education[i].Field)
		cv.Education[i].Institution = strings.TrimSpace(cv.Education[i].Institution)
	}

	for i := range cv.Certifications {
		cv.Certifications[i].Name = strings.TrimSpace(cv.Certifications[i].Name)
	}

	for i := range cv.Projects {
		cv.Projects[i].Name = strings.TrimSpace(cv.Projects[i].Name)
		cv.Projects[i].Description = strings.TrimSpace(cv.Projects[i].Description)
	}
}

// NormalizeSkills normalizes skill names and deduplicates them while
// preserving their original order
func NormalizeSkills(cv *types.CVData) {
	normalized := make([]string, 0, len(cv.Skills))
	seen := make(map[string]struct{})

	for _, skill := range cv.Skills {
		normalizedSkill := parsing.NormalizeSkillName(skill)
		if normalizedSkill == "" {
			continue // Skip empty skills
		}
		if _, exists := seen[normalizedSkill]; !exists {
			normalized = append(normalized, normalizedSkill)
			seen[normalizedSkill] = struct{}{}
		}
	}

	cv.Skills = normalized
}

// ValidateEntries validates that required fields are present on each entry
func ValidateEntries(cv *types.CVData) error {
	for i, exp := range cv.Experience {
		if exp.Position == "" {
			return &NormalizationError{
				Message: fmt.Sprintf("experience[%d] is missing a position", i),
			}
		}
	}

	for i, edu := range cv.Education {
		if edu.Degree == "" && edu.Field == "" {
			return &NormalizationError{
				Message: fmt.Sprintf("education[%d] is missing both degree and field", i),
			}
		}
	}

	for i, cert := range cv.Certifications {
		if cert.Name == "" {
			return &NormalizationError{
				Message: fmt.Sprintf("certifications[%d] is missing a name", i),
			}
		}
	}

	return nil
}
