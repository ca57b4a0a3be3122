package curation

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-curator/internal/types"
)

// stubScorer returns a fixed score per item so pipeline tests are fully
// deterministic
type stubScorer struct {
	scoresByID map[string]float64
	defaultTo  float64
	err        error
}

func (s *stubScorer) ScoreContentItems(_ context.Context, items []types.ContentItem, _ *types.JobContext) ([]types.ContentScore, error) {
	if s.err != nil {
		return nil, s.err
	}
	scores := make([]types.ContentScore, 0, len(items))
	for _, item := range items {
		overall := s.defaultTo
		if fixed, ok := s.scoresByID[item.ID]; ok {
			overall = fixed
		}
		scores = append(scores, types.ContentScore{ContentID: item.ID, OverallScore: overall, Confidence: 1})
	}
	return scores, nil
}

func testCV() *types.CVData {
	return &types.CVData{
		PersonalInfo: types.PersonalInfo{
			Name:    "Jordan Example",
			Summary: "Backend engineer focused on distributed systems and developer platforms",
		},
		Experience: []types.Experience{
			{
				Position:  "Senior Engineer",
				Employer:  "Acme Corp",
				StartDate: "2020-01",
				EndDate:   "Present",
				Responsibilities: []string{
					"Operated the payment platform across three regions",
					"Mentored four engineers on the storage team",
				},
				Achievements: []string{
					"Cut infrastructure spend by 30% through workload consolidation",
				},
			},
			{
				Position:         "Engineer",
				Employer:         "Initech",
				StartDate:        "2016-05",
				EndDate:          "2019-12",
				Responsibilities: []string{"Built internal reporting dashboards"},
			},
		},
		Education: []types.Education{
			{Degree: "BS", Field: "Computer Science", Institution: "State University", GraduationDate: "2016"},
		},
		Skills:         []string{"Go", "PostgreSQL", "Kubernetes", "Terraform"},
		Certifications: []types.Certification{{Name: "CKA", DateObtained: "2024-02"}},
		Projects:       []types.Project{{Name: "loadgen", Description: "Open source load generator"}},
	}
}

func testJob() *types.JobContext {
	return &types.JobContext{
		Title:          "Staff Backend Engineer",
		Sector:         types.SectorPrivate,
		Description:    "Design and operate distributed systems in Go and PostgreSQL",
		RequiredSkills: []string{"Go", "PostgreSQL"},
	}
}

func TestCurateProducesCompleteResult(t *testing.T) {
	curator := NewCurator(Config{Scorer: &stubScorer{defaultTo: 0.6}})

	result, err := curator.Curate(context.Background(), testCV(), testJob(), nil)

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.NotEmpty(t, result.SelectedContent)
	assert.Equal(t, "Standard Single-Page", result.Strategy.Name)
	assert.Equal(t, len(result.SelectedContent), result.Summary.SelectedItems)
	assert.Positive(t, result.Summary.EstimatedLength)
}

func TestCurateDecisionsPartitionItems(t *testing.T) {
	curator := NewCurator(Config{Scorer: &stubScorer{defaultTo: 0.6}})
	cv := testCV()
	job := testJob()

	result, err := curator.Curate(context.Background(), cv, job, nil)
	require.NoError(t, err)

	analysis := curator.AnalyzeCV(cv, job)

	decided := make(map[string]int)
	for _, decision := range result.SelectedContent {
		decided[decision.ContentID]++
	}
	for _, decision := range result.ExcludedContent {
		decided[decision.ContentID]++
	}

	assert.Equal(t, len(analysis.ContentItems), len(decided))
	for _, item := range analysis.ContentItems {
		assert.Equal(t, 1, decided[item.ID], item.ID)
	}
}

func TestCurateEssentialContentAlwaysSelected(t *testing.T) {
	// Even with everything scored at zero the summary and name survive.
	curator := NewCurator(Config{Scorer: &stubScorer{defaultTo: 0}})

	result, err := curator.Curate(context.Background(), testCV(), testJob(), nil)
	require.NoError(t, err)

	selected := make(map[string]bool)
	for _, decision := range result.SelectedContent {
		selected[decision.ContentID] = true
	}
	assert.True(t, selected["personal-summary"])
	assert.True(t, selected["personal-name"])
}

func TestCurateIsDeterministic(t *testing.T) {
	curator := NewCurator(Config{Scorer: &stubScorer{defaultTo: 0.55}})

	first, err := curator.Curate(context.Background(), testCV(), testJob(), nil)
	require.NoError(t, err)
	second, err := curator.Curate(context.Background(), testCV(), testJob(), nil)
	require.NoError(t, err)

	require.Equal(t, len(first.SelectedContent), len(second.SelectedContent))
	for i := range first.SelectedContent {
		assert.Equal(t, first.SelectedContent[i].ContentID, second.SelectedContent[i].ContentID)
		assert.Equal(t, first.SelectedContent[i].Include, second.SelectedContent[i].Include)
	}
	assert.Equal(t, first.Summary, second.Summary)
}

func TestCurateRespectsCustomStrategy(t *testing.T) {
	curator := NewCurator(Config{Scorer: &stubScorer{defaultTo: 0.6}})

	custom := DefaultStrategy()
	custom.Name = "Tight Budget"
	custom.Constraints.MaxCharacters = 500

	result, err := curator.Curate(context.Background(), testCV(), testJob(), &custom)

	require.NoError(t, err)
	assert.Equal(t, "Tight Budget", result.Strategy.Name)
	assert.Equal(t, 500, result.Strategy.Constraints.MaxCharacters)
}

func TestCurateRejectsInvalidStrategy(t *testing.T) {
	curator := NewCurator(Config{Scorer: &stubScorer{defaultTo: 0.6}})

	invalid := DefaultStrategy()
	invalid.Constraints.MaxCharacters = -1

	_, err := curator.Curate(context.Background(), testCV(), testJob(), &invalid)

	require.Error(t, err)
	var curationErr *Error
	require.ErrorAs(t, err, &curationErr)
	assert.Equal(t, "invalid curation strategy", curationErr.Message)
}

func TestCurateFailsWhenScoringFails(t *testing.T) {
	scoringErr := errors.New("model unavailable")
	curator := NewCurator(Config{Scorer: &stubScorer{err: scoringErr}})

	result, err := curator.Curate(context.Background(), testCV(), testJob(), nil)

	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, scoringErr)
}

func TestCurateEmitsProgressEvents(t *testing.T) {
	var events []ProgressEvent
	curator := NewCurator(Config{
		Scorer:     &stubScorer{defaultTo: 0.6},
		OnProgress: func(event ProgressEvent) { events = append(events, event) },
	})

	_, err := curator.Curate(context.Background(), testCV(), testJob(), nil)
	require.NoError(t, err)

	steps := make([]string, 0, len(events))
	for _, event := range events {
		steps = append(steps, event.Step)
		assert.NotEmpty(t, event.RunID)
		assert.Equal(t, events[0].RunID, event.RunID)
	}
	assert.Equal(t, []string{"extract", "score", "rank", "decide", "assemble"}, steps)
}

func TestSelectStrategySectorTable(t *testing.T) {
	curator := NewCurator(Config{})

	federal := curator.SelectStrategy(&types.JobContext{Sector: types.SectorFederal})
	assert.Equal(t, "Federal Application", federal.Name)
	assert.Equal(t, 4500, federal.Constraints.MaxCharacters)

	healthcare := curator.SelectStrategy(&types.JobContext{Sector: types.SectorHealthcare})
	assert.Equal(t, 3800, healthcare.Constraints.MaxCharacters)
	assert.Equal(t, 10, healthcare.Constraints.MaxSkills)

	tech := curator.SelectStrategy(&types.JobContext{Sector: types.SectorTech})
	assert.Equal(t, 4200, tech.Constraints.MaxCharacters)
	assert.Equal(t, 12, tech.Constraints.MaxSkills)

	private := curator.SelectStrategy(&types.JobContext{Sector: types.SectorPrivate})
	assert.Equal(t, DefaultStrategy().Name, private.Name)
}

func TestSelectStrategySectorNudgesWithoutTable(t *testing.T) {
	// With the sector table disabled the default strategy gets per-sector
	// nudges instead.
	base := DefaultStrategy()
	curator := NewCurator(Config{SectorStrategies: map[string]types.CurationStrategy{}})

	federal := curator.SelectStrategy(&types.JobContext{Sector: types.SectorFederal})
	assert.Equal(t, base.Constraints.MaxExperienceItems+1, federal.Constraints.MaxExperienceItems)
	assert.InDelta(t, base.Weights.ExperienceRelevance+0.1, federal.Weights.ExperienceRelevance, 1e-9)

	tech := curator.SelectStrategy(&types.JobContext{Sector: types.SectorTech})
	assert.Equal(t, base.Constraints.MaxSkills+2, tech.Constraints.MaxSkills)
	assert.InDelta(t, base.Weights.SkillAlignment+0.1, tech.Weights.SkillAlignment, 1e-9)

	// The default must not have been mutated by the nudged copies.
	unchanged := curator.SelectStrategy(&types.JobContext{Sector: types.SectorPrivate})
	assert.Equal(t, base.Constraints, unchanged.Constraints)
	assert.Equal(t, base.Weights, unchanged.Weights)
}

func TestAnalyzeCVSummaries(t *testing.T) {
	curator := NewCurator(Config{})

	analysis := curator.AnalyzeCV(testCV(), testJob())

	require.NotNil(t, analysis)
	assert.NotEmpty(t, analysis.ContentItems)
	assert.NotEmpty(t, analysis.Clusters)
	assert.Equal(t, len(analysis.ContentItems), analysis.Summary.TotalItems)
	assert.Positive(t, analysis.Summary.AverageQuality)
}

func TestCurateCapsExperienceSelection(t *testing.T) {
	cv := &types.CVData{
		PersonalInfo: types.PersonalInfo{
			Name:    "Jordan Example",
			Summary: "Engineer with broad platform experience",
		},
		Experience: []types.Experience{
			{Position: "Engineer A", Employer: "One", StartDate: "2024-01"},
			{Position: "Engineer B", Employer: "Two", StartDate: "2022-01", EndDate: "2024-01"},
			{Position: "Engineer C", Employer: "Three", StartDate: "2020-01", EndDate: "2022-01"},
			{Position: "Engineer D", Employer: "Four", StartDate: "2018-01", EndDate: "2020-01"},
			{Position: "Engineer E", Employer: "Five", StartDate: "2016-01", EndDate: "2018-01"},
		},
	}

	// Perfect scores rank every entry critical; the cap must bind anyway.
	curator := NewCurator(Config{Scorer: &stubScorer{defaultTo: 1.0}})

	result, err := curator.Curate(context.Background(), cv, testJob(), nil)
	require.NoError(t, err)

	selectedExperience := 0
	for _, decision := range result.SelectedContent {
		if strings.HasPrefix(decision.ContentID, "experience-") {
			selectedExperience++
		}
	}
	assert.Equal(t, result.Strategy.Constraints.MaxExperienceItems, selectedExperience)

	for _, decision := range result.ExcludedContent {
		assert.NotEqual(t, "personal-summary", decision.ContentID)
		assert.NotEqual(t, "personal-name", decision.ContentID)
	}
}

func TestCurateEssentialShortenedToTinyBudget(t *testing.T) {
	cv := &types.CVData{
		PersonalInfo: types.PersonalInfo{
			Name:    "Jordan Example",
			Summary: "A deliberately long professional summary that cannot possibly fit inside a tiny character budget on its own",
		},
	}

	tight := DefaultStrategy()
	tight.Constraints.MaxCharacters = 40

	curator := NewCurator(Config{Scorer: &stubScorer{defaultTo: 0.5}})

	result, err := curator.Curate(context.Background(), cv, testJob(), &tight)
	require.NoError(t, err)

	var summaryDecision *types.ContentDecision
	for i := range result.SelectedContent {
		if result.SelectedContent[i].ContentID == "personal-summary" {
			summaryDecision = &result.SelectedContent[i]
		}
	}
	require.NotNil(t, summaryDecision, "summary must be selected even when it cannot fit")
	require.NotNil(t, summaryDecision.Modifications)
	assert.LessOrEqual(t, len(summaryDecision.Modifications.Shortened), 40)
}
