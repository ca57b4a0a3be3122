package curation

import (
	"sort"

	"github.com/jonathan/cv-curator/internal/types"
)

// optimizationHeadroom is the minimum leftover character budget before the
// post-pass considers promoting excluded content
const optimizationHeadroom = 100

// optimizedReasoning replaces the exclusion reasoning on a promoted item
const optimizedReasoning = "Included after optimization with shortened version"

// optimizeResult promotes at most one previously excluded high-priority
// item into the selection when enough budget remains. Candidates are
// ordered by descending final ranking score, ties keeping their decision
// order, and the first whose shortened form fits the budget and its
// category cap is promoted.
func (c *Curator) optimizeResult(result *types.CurationResult, ranked []types.RankedContentItem) {
	available := result.Strategy.Constraints.MaxCharacters - result.Summary.EstimatedLength
	if available <= optimizationHeadroom {
		return
	}

	rankScores := make(map[string]float64, len(ranked))
	itemTypes := make(map[string]types.ContentType, len(ranked))
	for _, rankedItem := range ranked {
		rankScores[rankedItem.Item.ID] = rankedItem.FinalRankingScore
		itemTypes[rankedItem.Item.ID] = rankedItem.Item.Type
	}

	candidates := make([]int, 0)
	for i, decision := range result.ExcludedContent {
		if decision.Priority == types.PriorityHigh && decision.Modifications != nil && decision.Modifications.Shortened != "" {
			candidates = append(candidates, i)
		}
	}
	sort.SliceStable(candidates, func(a, b int) bool {
		idA := result.ExcludedContent[candidates[a]].ContentID
		idB := result.ExcludedContent[candidates[b]].ContentID
		return rankScores[idA] > rankScores[idB]
	})

	for _, idx := range candidates {
		decision := result.ExcludedContent[idx]
		shortenedLength := len(decision.Modifications.Shortened)
		if shortenedLength > available {
			continue
		}
		if capReached(result, itemTypes, itemTypes[decision.ContentID]) {
			continue
		}

		decision.Include = true
		decision.Reasoning = optimizedReasoning

		result.ExcludedContent = append(result.ExcludedContent[:idx], result.ExcludedContent[idx+1:]...)
		result.SelectedContent = append(result.SelectedContent, decision)
		result.Summary.SelectedItems++
		result.Summary.EstimatedLength += shortenedLength
		return
	}
}

// capReached reports whether promoting one more item of the given type
// would exceed its category cap
func capReached(result *types.CurationResult, itemTypes map[string]types.ContentType, contentType types.ContentType) bool {
	var limit int
	switch contentType {
	case types.ContentExperience:
		limit = result.Strategy.Constraints.MaxExperienceItems
	case types.ContentEducation:
		limit = result.Strategy.Constraints.MaxEducationItems
	case types.ContentSkill:
		limit = result.Strategy.Constraints.MaxSkills
	default:
		return false
	}

	count := 0
	for _, decision := range result.SelectedContent {
		if itemTypes[decision.ContentID] == contentType {
			count++
		}
	}
	return count >= limit
}
