package curation

import (
	"fmt"
	"strings"

	"github.com/jonathan/cv-curator/internal/types"
)

// clusterStrengthThreshold marks a cluster as a strength area
const clusterStrengthThreshold = 0.7

// assembleResult splits decisions into selected and excluded sets and
// computes the run summary and recommendations
func (c *Curator) assembleResult(
	decisions []types.ContentDecision,
	strategy types.CurationStrategy,
	items []types.ContentItem,
	clusters []types.ContentCluster,
	job *types.JobContext,
) *types.CurationResult {
	itemMap := make(map[string]*types.ContentItem, len(items))
	for i := range items {
		itemMap[items[i].ID] = &items[i]
	}

	selected := make([]types.ContentDecision, 0, len(decisions))
	excluded := make([]types.ContentDecision, 0)
	estimatedLength := 0

	for _, decision := range decisions {
		if decision.Include {
			selected = append(selected, decision)
			if item, ok := itemMap[decision.ContentID]; ok {
				estimatedLength += item.Metadata.Length
			}
		} else {
			excluded = append(excluded, decision)
		}
	}

	return &types.CurationResult{
		SelectedContent: selected,
		ExcludedContent: excluded,
		Strategy:        strategy,
		Summary: types.CurationSummary{
			OriginalItems:        len(items),
			SelectedItems:        len(selected),
			EstimatedLength:      estimatedLength,
			RequirementsCoverage: requirementsCoverage(selected, itemMap, job),
		},
		Recommendations: generateRecommendations(selected, excluded, itemMap, job),
	}
}

// requirementsCoverage is the fraction of the job's required keywords
// (required skills plus responsibility words, length > 2) matched by any
// selected item's keywords via substring matching in either direction.
// A job with no required keywords is fully covered.
func requirementsCoverage(
	selected []types.ContentDecision,
	itemMap map[string]*types.ContentItem,
	job *types.JobContext,
) float64 {
	requiredKeywords := make([]string, 0)
	for _, skill := range job.RequiredSkills {
		if keyword := strings.ToLower(strings.TrimSpace(skill)); len(keyword) > 2 {
			requiredKeywords = append(requiredKeywords, keyword)
		}
	}
	for _, responsibility := range job.Responsibilities {
		for _, word := range strings.Fields(strings.ToLower(responsibility)) {
			if len(word) > 2 {
				requiredKeywords = append(requiredKeywords, word)
			}
		}
	}

	if len(requiredKeywords) == 0 {
		return 1.0
	}

	selectedKeywords := make([]string, 0)
	for _, decision := range selected {
		item, ok := itemMap[decision.ContentID]
		if !ok {
			continue
		}
		for _, keyword := range item.Metadata.Keywords {
			selectedKeywords = append(selectedKeywords, strings.ToLower(keyword))
		}
	}

	matches := 0
	for _, required := range requiredKeywords {
		for _, keyword := range selectedKeywords {
			if strings.Contains(keyword, required) || strings.Contains(required, keyword) {
				matches++
				break
			}
		}
	}

	return float64(matches) / float64(len(requiredKeywords))
}

// generateRecommendations produces the fixed-rule improvement suggestions
func generateRecommendations(
	selected []types.ContentDecision,
	excluded []types.ContentDecision,
	itemMap map[string]*types.ContentItem,
	job *types.JobContext,
) []string {
	recommendations := make([]string, 0)

	selectedSkills := make(map[string]bool)
	typeCounts := make(map[types.ContentType]int)
	for _, decision := range selected {
		item, ok := itemMap[decision.ContentID]
		if !ok {
			continue
		}
		typeCounts[item.Type]++
		if item.Type == types.ContentSkill {
			selectedSkills[strings.ToLower(item.Content)] = true
		}
	}

	missingSkills := make([]string, 0)
	for _, skill := range job.RequiredSkills {
		if !selectedSkills[strings.ToLower(skill)] {
			missingSkills = append(missingSkills, skill)
		}
	}
	if len(missingSkills) > 0 {
		recommendations = append(recommendations,
			fmt.Sprintf("Consider adding these missing critical skills: %s", strings.Join(missingSkills, ", ")))
	}

	if typeCounts[types.ContentExperience] < 2 {
		recommendations = append(recommendations, "Consider including more relevant work experience")
	}

	if typeCounts[types.ContentAchievement] == 0 {
		recommendations = append(recommendations, "Include quantifiable achievements to strengthen your CV")
	}

	for _, decision := range excluded {
		if decision.Priority == types.PriorityHigh || decision.Priority == types.PriorityCritical {
			recommendations = append(recommendations,
				"Some high-value content was excluded due to space constraints. Consider shortening other sections.")
			break
		}
	}

	return recommendations
}

// buildAnalysisSummary aggregates extraction-level statistics for reporting
func buildAnalysisSummary(items []types.ContentItem, clusters []types.ContentCluster, job *types.JobContext) types.AnalysisSummary {
	summary := types.AnalysisSummary{
		TotalItems:    len(items),
		CoverageAreas: []string{},
		StrengthAreas: []string{},
		GapAreas:      []string{},
	}
	if len(items) == 0 {
		return summary
	}

	totalImpact := 0.0
	seenSectors := make(map[string]bool)
	for _, item := range items {
		totalImpact += item.Metadata.Impact
		for _, sector := range item.Metadata.Sectors {
			if !seenSectors[sector] {
				seenSectors[sector] = true
				summary.CoverageAreas = append(summary.CoverageAreas, sector)
			}
		}
	}
	summary.AverageQuality = totalImpact / float64(len(items))

	for _, cluster := range clusters {
		if cluster.JobRelevance > clusterStrengthThreshold {
			summary.StrengthAreas = append(summary.StrengthAreas, cluster.Theme)
		}
	}

	if job != nil {
		summary.GapAreas = identifyGaps(items, seenSectors, job)
	}

	return summary
}

// identifyGaps lists required skills absent from the CV's keyword pool and
// flags missing sector experience
func identifyGaps(items []types.ContentItem, seenSectors map[string]bool, job *types.JobContext) []string {
	gaps := make([]string, 0)

	allKeywords := make(map[string]bool)
	for _, item := range items {
		for _, keyword := range item.Metadata.Keywords {
			allKeywords[strings.ToLower(keyword)] = true
		}
	}

	missingSkills := make([]string, 0)
	for _, skill := range job.RequiredSkills {
		if !allKeywords[strings.ToLower(skill)] {
			missingSkills = append(missingSkills, skill)
		}
	}
	if len(missingSkills) > 0 {
		gaps = append(gaps, fmt.Sprintf("Missing skills: %s", strings.Join(missingSkills, ", ")))
	}

	if job.Sector != "" && !seenSectors[job.Sector] {
		gaps = append(gaps, fmt.Sprintf("Limited experience in %s sector", job.Sector))
	}

	return gaps
}
