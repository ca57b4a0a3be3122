package scoring

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/cv-curator/internal/types"
)

// heuristicConfidence is the fixed confidence the lexical scorer reports;
// it performs no analysis of its own uncertainty.
const heuristicConfidence = 0.8

// unmatchedSectorRelevance is the relevance floor for content whose sector
// tags do not include the job's sector
const unmatchedSectorRelevance = 0.3

// HeuristicScorer scores content alignment with simple lexical matching:
// keyword overlap with the job description, exact skill matches, experience
// duration versus the required level, and sector tag overlap, combined with
// the strategy's weights.
type HeuristicScorer struct {
	weights types.Weights
}

// NewHeuristicScorer creates a scorer using the given strategy weights
func NewHeuristicScorer(weights types.Weights) *HeuristicScorer {
	return &HeuristicScorer{weights: weights}
}

// ScoreContentItems scores every item against the job context.
// The pass is pure and cannot fail; the error return satisfies the Scorer
// contract for fallible implementations.
func (s *HeuristicScorer) ScoreContentItems(ctx context.Context, items []types.ContentItem, job *types.JobContext) ([]types.ContentScore, error) {
	scores := make([]types.ContentScore, 0, len(items))
	for i := range items {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		scores = append(scores, s.scoreItem(&items[i], job))
	}
	return scores, nil
}

func (s *HeuristicScorer) scoreItem(item *types.ContentItem, job *types.JobContext) types.ContentScore {
	components := types.ScoreComponents{
		KeywordRelevance:    keywordRelevance(item, job),
		SkillAlignment:      skillAlignment(item, job),
		ExperienceRelevance: experienceRelevance(item, job),
		RecencyScore:        item.Metadata.Recency,
		ImpactScore:         item.Metadata.Impact,
		SectorRelevance:     sectorRelevance(item, job),
	}

	overall := components.KeywordRelevance*s.weights.KeywordRelevance +
		components.SkillAlignment*s.weights.SkillAlignment +
		components.ExperienceRelevance*s.weights.ExperienceRelevance +
		components.RecencyScore*s.weights.RecencyScore +
		components.ImpactScore*s.weights.ImpactScore +
		components.SectorRelevance*s.weights.SectorRelevance
	if overall > 1 {
		overall = 1
	}
	if overall < 0 {
		overall = 0
	}

	return types.ContentScore{
		ContentID:    item.ID,
		OverallScore: overall,
		Components:   components,
		Confidence:   heuristicConfidence,
		Reasoning: []string{
			fmt.Sprintf("keyword relevance %.2f", components.KeywordRelevance),
			fmt.Sprintf("skill alignment %.2f", components.SkillAlignment),
		},
	}
}

// keywordRelevance is the fraction of the item's keywords found verbatim in
// the job description
func keywordRelevance(item *types.ContentItem, job *types.JobContext) float64 {
	if len(item.Metadata.Keywords) == 0 {
		return 0
	}

	descWords := make(map[string]bool)
	for _, word := range strings.Fields(strings.ToLower(job.Description)) {
		descWords[word] = true
	}

	matches := 0
	for _, keyword := range item.Metadata.Keywords {
		if descWords[strings.ToLower(keyword)] {
			matches++
		}
	}

	return float64(matches) / float64(len(item.Metadata.Keywords))
}

// skillAlignment is 1 for skill items that exactly match a required skill,
// 0 otherwise
func skillAlignment(item *types.ContentItem, job *types.JobContext) float64 {
	if item.Type != types.ContentSkill {
		return 0
	}
	skill := strings.ToLower(item.Content)
	for _, required := range job.RequiredSkills {
		if strings.ToLower(required) == skill {
			return 1
		}
	}
	return 0
}

// experienceRelevance compares an experience item's duration in years with
// the numeric years parsed out of the job's experience level
func experienceRelevance(item *types.ContentItem, job *types.JobContext) float64 {
	if item.Type != types.ContentExperience || job.ExperienceLevel == "" {
		return 0
	}

	yearsRequired := parseYears(job.ExperienceLevel)
	itemYears := 0
	if item.Metadata.DateRange != nil {
		itemYears = rangeYears(item.Metadata.DateRange)
	}

	if yearsRequired <= 0 {
		yearsRequired = 1
	}
	if itemYears >= yearsRequired {
		return 1
	}
	return float64(itemYears) / float64(yearsRequired)
}

// sectorRelevance is 1 when the item carries the job's sector tag
func sectorRelevance(item *types.ContentItem, job *types.JobContext) float64 {
	for _, sector := range item.Metadata.Sectors {
		if sector == job.Sector {
			return 1
		}
	}
	return unmatchedSectorRelevance
}

// parseYears extracts the leading numeric year count from a free-form
// experience level like "5+ years"
func parseYears(level string) int {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, level)
	if digits == "" {
		return 0
	}
	years, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return years
}

// rangeYears is the whole-year span of a date range, open ranges ending now
func rangeYears(dateRange *types.DateRange) int {
	startYear := parseYear(dateRange.Start)
	if startYear == 0 {
		return 0
	}

	endYear := time.Now().Year()
	if dateRange.End != "" && !strings.EqualFold(dateRange.End, "Present") {
		if y := parseYear(dateRange.End); y != 0 {
			endYear = y
		}
	}

	if endYear < startYear {
		return 0
	}
	return endYear - startYear
}

// parseYear pulls the four-digit year prefix from a date string
func parseYear(date string) int {
	date = strings.TrimSpace(date)
	if len(date) < 4 {
		return 0
	}
	year, err := strconv.Atoi(date[:4])
	if err != nil {
		return 0
	}
	return year
}
