// Package ranking computes strategic value and composite ranking scores for
// scored content items, producing the total order the decision maker walks.
package ranking

import (
	"fmt"
	"sort"

	"github.com/jonathan/cv-curator/internal/types"
)

// Fixed weights for the final ranking score
const (
	weightJobAlignment        = 0.35
	weightContentImpact       = 0.20
	weightStrategicImportance = 0.25
	weightDiversity           = 0.10
	weightEssentialness       = 0.10
)

// Priority score thresholds
const (
	criticalThreshold = 0.85
	highThreshold     = 0.70
	mediumThreshold   = 0.50
	// essentialCriticalThreshold promotes essential content to critical
	essentialCriticalThreshold = 0.8
)

// RankContent ranks all content items against their alignment scores,
// returning them sorted descending by final ranking score. The sort is
// stable over the extraction order, so items with equal scores keep their
// original document order and repeated runs produce identical rankings.
// Every item must have exactly one score; a missing score is an error.
func RankContent(items []types.ContentItem, scores []types.ContentScore, job *types.JobContext) ([]types.RankedContentItem, error) {
	scoreMap := make(map[string]types.ContentScore, len(scores))
	for _, score := range scores {
		scoreMap[score.ContentID] = score
	}

	ranked := make([]types.RankedContentItem, 0, len(items))
	for _, item := range items {
		score, ok := scoreMap[item.ID]
		if !ok {
			return nil, fmt.Errorf("missing alignment score for content item %s", item.ID)
		}

		strategicValue := calculateStrategicValue(&item, job)
		factors := types.RankingFactors{
			JobAlignment:        score.OverallScore,
			ContentImpact:       item.Metadata.Impact,
			StrategicImportance: strategicValue,
			Diversity:           calculateDiversity(&item, job),
			Essentialness:       essentialnessByType(item.Type),
		}
		finalScore := calculateFinalRankingScore(factors)

		ranked = append(ranked, types.RankedContentItem{
			Item:              item,
			Score:             score,
			StrategicValue:    strategicValue,
			Priority:          determinePriority(finalScore, item.Type),
			FinalRankingScore: finalScore,
			RankingFactors:    factors,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].FinalRankingScore > ranked[j].FinalRankingScore
	})

	return ranked, nil
}

// calculateFinalRankingScore combines the five factors with fixed weights
func calculateFinalRankingScore(factors types.RankingFactors) float64 {
	return factors.JobAlignment*weightJobAlignment +
		factors.ContentImpact*weightContentImpact +
		factors.StrategicImportance*weightStrategicImportance +
		factors.Diversity*weightDiversity +
		factors.Essentialness*weightEssentialness
}

// determinePriority maps a final score to a priority tier. Essential
// content types are forced to at least high priority.
func determinePriority(finalScore float64, contentType types.ContentType) types.Priority {
	if contentType.IsEssential() {
		if finalScore > essentialCriticalThreshold {
			return types.PriorityCritical
		}
		return types.PriorityHigh
	}

	switch {
	case finalScore > criticalThreshold:
		return types.PriorityCritical
	case finalScore > highThreshold:
		return types.PriorityHigh
	case finalScore > mediumThreshold:
		return types.PriorityMedium
	default:
		return types.PriorityLow
	}
}
