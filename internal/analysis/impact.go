package analysis

import (
	"strings"

	"github.com/jonathan/cv-curator/internal/types"
)

// Impact scoring adjustments
const (
	achievementVerbBonus = 0.05
	quantifiedBonus      = 0.1
	shortContentPenalty  = 0.1
	longContentPenalty   = 0.05
	shortContentChars    = 20
	longContentChars     = 200
)

// defaultAchievementVerbs is the fixed vocabulary of verbs that signal a
// concrete accomplishment
var defaultAchievementVerbs = []string{
	"achieved", "accomplished", "improved", "increased", "decreased",
	"led", "managed", "developed", "created", "implemented",
}

// baseImpactByType maps content types to their starting impact value
var baseImpactByType = map[types.ContentType]float64{
	types.ContentSummary:       0.9,
	types.ContentAchievement:   0.8,
	types.ContentExperience:    0.7,
	types.ContentCertification: 0.7,
	types.ContentSkill:         0.6,
	types.ContentEducation:     0.6,
	types.ContentProject:       0.5,
}

// baseImpactDefault is used for content types without an explicit base
const baseImpactDefault = 0.4

// AnalyzeImpact estimates how significant a piece of content appears,
// starting from a type-based base and adjusting for achievement verbs,
// quantified results, and content length. The result is clamped to [0, 1].
func (a *Analyzer) AnalyzeImpact(content string, contentType types.ContentType) float64 {
	impact, ok := baseImpactByType[contentType]
	if !ok {
		impact = baseImpactDefault
	}

	contentLower := strings.ToLower(content)
	for _, verb := range a.achievementVerbs {
		if strings.Contains(contentLower, verb) {
			impact += achievementVerbBonus
		}
	}

	if strings.ContainsAny(content, "0123456789") {
		impact += quantifiedBonus
	}
	if strings.Contains(content, "%") {
		impact += quantifiedBonus
	}
	if strings.Contains(content, "$") {
		impact += quantifiedBonus
	}

	if len(content) < shortContentChars {
		impact -= shortContentPenalty
	}
	if len(content) > longContentChars {
		impact -= longContentPenalty
	}

	return clamp01(impact)
}

// clamp01 clamps a score to the [0, 1] range
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
