// Package curation orchestrates the content curation pipeline: extraction,
// metadata analysis, clustering, alignment scoring, ranking, decision
// making, and result assembly.
package curation

import (
	"github.com/jonathan/cv-curator/internal/types"
)

// Sector strategy nudge limits
const (
	federalMaxExperienceCap = 4
	techMaxSkillsCap        = 10
)

// DefaultStrategy returns the standard single-page strategy
func DefaultStrategy() types.CurationStrategy {
	return types.CurationStrategy{
		Name: "Standard Single-Page",
		Constraints: types.Constraints{
			MaxCharacters:      4000,
			MaxExperienceItems: 3,
			MaxEducationItems:  2,
			MaxSkills:          8,
		},
		Weights: types.Weights{
			KeywordRelevance:    0.3,
			SkillAlignment:      0.2,
			ExperienceRelevance: 0.2,
			RecencyScore:        0.1,
			ImpactScore:         0.1,
			SectorRelevance:     0.1,
		},
	}
}

// DefaultSectorStrategies returns the built-in per-sector strategy table
func DefaultSectorStrategies() map[string]types.CurationStrategy {
	return map[string]types.CurationStrategy{
		types.SectorFederal: {
			Name: "Federal Application",
			Constraints: types.Constraints{
				MaxCharacters:      4500,
				MaxExperienceItems: 4,
				MaxEducationItems:  3,
				MaxSkills:          6,
			},
			Weights: types.Weights{
				KeywordRelevance:    0.25,
				SkillAlignment:      0.15,
				ExperienceRelevance: 0.35,
				RecencyScore:        0.1,
				ImpactScore:         0.1,
				SectorRelevance:     0.05,
			},
			SectorRules: map[string]bool{
				"require_detailed_experience": true,
				"emphasize_clearances":        true,
			},
		},
		types.SectorHealthcare: {
			Name: "Healthcare Application",
			Constraints: types.Constraints{
				MaxCharacters:      3800,
				MaxExperienceItems: 3,
				MaxEducationItems:  2,
				MaxSkills:          10,
			},
			Weights: types.Weights{
				KeywordRelevance:    0.3,
				SkillAlignment:      0.25,
				ExperienceRelevance: 0.2,
				RecencyScore:        0.15,
				ImpactScore:         0.05,
				SectorRelevance:     0.05,
			},
			SectorRules: map[string]bool{
				"emphasize_certifications":  true,
				"require_recent_experience": true,
			},
		},
		types.SectorTech: {
			Name: "Technology Application",
			Constraints: types.Constraints{
				MaxCharacters:      4200,
				MaxExperienceItems: 3,
				MaxEducationItems:  2,
				MaxSkills:          12,
			},
			Weights: types.Weights{
				KeywordRelevance:    0.35,
				SkillAlignment:      0.3,
				ExperienceRelevance: 0.15,
				RecencyScore:        0.1,
				ImpactScore:         0.05,
				SectorRelevance:     0.05,
			},
			SectorRules: map[string]bool{
				"emphasize_projects":   true,
				"tech_stack_important": true,
			},
		},
	}
}

// SelectStrategy returns the strategy a run for this job would use when no
// custom strategy is supplied. Callers may adjust the copy and pass it back
// to Curate.
func (c *Curator) SelectStrategy(job *types.JobContext) types.CurationStrategy {
	return c.selectStrategy(job)
}

// selectStrategy picks the strategy for a job: a configured sector override
// when one exists, otherwise a copy of the default with sector-specific
// nudges applied. The configured strategies are never mutated.
func (c *Curator) selectStrategy(job *types.JobContext) types.CurationStrategy {
	if sectorStrategy, ok := c.sectorStrategies[job.Sector]; ok {
		return sectorStrategy
	}

	strategy := c.defaultStrategy

	switch job.Sector {
	case types.SectorFederal:
		// Federal applications often need more detailed experience
		if strategy.Constraints.MaxExperienceItems < federalMaxExperienceCap {
			strategy.Constraints.MaxExperienceItems++
		}
		strategy.Weights.ExperienceRelevance += 0.1
	case types.SectorHealthcare:
		// Healthcare emphasizes certifications and recent experience
		strategy.Weights.SectorRelevance += 0.1
		strategy.Weights.RecencyScore += 0.05
	case types.SectorTech:
		// Tech sector values skills and projects
		strategy.Constraints.MaxSkills += 2
		if strategy.Constraints.MaxSkills > techMaxSkillsCap {
			strategy.Constraints.MaxSkills = techMaxSkillsCap
		}
		strategy.Weights.SkillAlignment += 0.1
	}

	return strategy
}
