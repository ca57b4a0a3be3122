package ranking

import (
	"github.com/jonathan/cv-curator/internal/types"
)

// Strategic value adjustments
const (
	sectorMatchBonus      = 0.1
	recencyBonusWeight    = 0.1
	keywordDensityCap     = 0.1
	keywordDensityPerUnit = 0.02
)

// strategicBaseByType maps content types to their base strategic value
var strategicBaseByType = map[types.ContentType]float64{
	types.ContentSummary:       0.95,
	types.ContentAchievement:   0.9,
	types.ContentExperience:    0.85,
	types.ContentCertification: 0.8,
	types.ContentSkill:         0.7,
	types.ContentEducation:     0.6,
	types.ContentProject:       0.5,
}

// strategicBaseDefault covers types without an explicit base value
const strategicBaseDefault = 0.3

// typeVarietyScores encourage balanced selection across content types
var typeVarietyScores = map[types.ContentType]float64{
	types.ContentSummary:        0.9,
	types.ContentAchievement:    0.9,
	types.ContentExperience:     0.8,
	types.ContentCertification:  0.8,
	types.ContentEducation:      0.7,
	types.ContentSkill:          0.6,
	types.ContentProject:        0.5,
	types.ContentResponsibility: 0.4,
}

// typeVarietyDefault covers types without an explicit variety score
const typeVarietyDefault = 0.3

// essentialnessScores measure how dispensable each content type is
var essentialnessScores = map[types.ContentType]float64{
	types.ContentSummary:        1.0,
	types.ContentPersonalInfo:   1.0,
	types.ContentExperience:     0.9,
	types.ContentAchievement:    0.8,
	types.ContentCertification:  0.8,
	types.ContentEducation:      0.7,
	types.ContentSkill:          0.6,
	types.ContentProject:        0.4,
	types.ContentResponsibility: 0.3,
}

// essentialnessDefault covers types without an explicit essentialness score
const essentialnessDefault = 0.2

// calculateStrategicValue derives an item's context-dependent importance,
// independent of job alignment: a type base plus sector match, recency for
// dated content types, and a capped keyword-density bonus.
func calculateStrategicValue(item *types.ContentItem, job *types.JobContext) float64 {
	value, ok := strategicBaseByType[item.Type]
	if !ok {
		value = strategicBaseDefault
	}

	if sectorMatches(item, job) {
		value += sectorMatchBonus
	}

	switch item.Type {
	case types.ContentExperience, types.ContentAchievement, types.ContentCertification:
		value += item.Metadata.Recency * recencyBonusWeight
	}

	// Keyword density rewards information-dense content, capped so long
	// keyword lists cannot dominate the ranking.
	lengthUnits := float64(item.Metadata.Length) / 100
	if lengthUnits < 1 {
		lengthUnits = 1
	}
	density := keywordDensityPerUnit * float64(len(item.Metadata.Keywords)) / lengthUnits
	if density > keywordDensityCap {
		density = keywordDensityCap
	}
	value += density

	if value > 1 {
		value = 1
	}
	if value < 0 {
		value = 0
	}
	return value
}

// calculateDiversity averages the sector match component with the
// type-variety lookup to discourage over-selecting from one area
func calculateDiversity(item *types.ContentItem, job *types.JobContext) float64 {
	sectorScore := 0.6
	if sectorMatches(item, job) {
		sectorScore = 0.8
	}

	variety, ok := typeVarietyScores[item.Type]
	if !ok {
		variety = typeVarietyDefault
	}

	return (sectorScore + variety) / 2
}

// essentialnessByType looks up how essential a content type is
func essentialnessByType(contentType types.ContentType) float64 {
	if score, ok := essentialnessScores[contentType]; ok {
		return score
	}
	return essentialnessDefault
}

// sectorMatches reports whether the item carries the job's sector tag
func sectorMatches(item *types.ContentItem, job *types.JobContext) bool {
	if job == nil {
		return false
	}
	for _, sector := range item.Metadata.Sectors {
		if sector == job.Sector {
			return true
		}
	}
	return false
}
