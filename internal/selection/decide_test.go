package selection

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-curator/internal/types"
)

func rankedItem(id string, contentType types.ContentType, length int, priority types.Priority, score float64) types.RankedContentItem {
	return types.RankedContentItem{
		Item: types.ContentItem{
			ID:       id,
			Type:     contentType,
			Content:  strings.Repeat("x", length),
			Metadata: types.ContentMetadata{Length: length},
		},
		Priority:          priority,
		FinalRankingScore: score,
	}
}

func defaultConstraints() types.Constraints {
	return types.Constraints{
		MaxCharacters:      4000,
		MaxExperienceItems: 3,
		MaxEducationItems:  2,
		MaxSkills:          8,
	}
}

func decisionFor(t *testing.T, decisions []types.ContentDecision, id string) types.ContentDecision {
	t.Helper()
	for _, decision := range decisions {
		if decision.ContentID == id {
			return decision
		}
	}
	require.FailNow(t, "no decision for "+id)
	return types.ContentDecision{}
}

func TestMakeDecisionsEmitsOneDecisionPerItem(t *testing.T) {
	ranked := []types.RankedContentItem{
		rankedItem("personal-summary", types.ContentSummary, 100, types.PriorityHigh, 0.7),
		rankedItem("experience-0", types.ContentExperience, 200, types.PriorityHigh, 0.8),
		rankedItem("skill-0", types.ContentSkill, 10, types.PriorityLow, 0.2),
	}

	decisions := MakeDecisions(ranked, defaultConstraints())

	require.Len(t, decisions, 3)
	seen := make(map[string]int)
	for _, decision := range decisions {
		seen[decision.ContentID]++
	}
	for id, count := range seen {
		assert.Equal(t, 1, count, id)
	}
}

func TestMakeDecisionsEssentialAlwaysIncluded(t *testing.T) {
	// An essential item ranked dead last with a terrible score still gets in.
	ranked := []types.RankedContentItem{
		rankedItem("experience-0", types.ContentExperience, 200, types.PriorityCritical, 0.9),
		rankedItem("personal-summary", types.ContentSummary, 300, types.PriorityHigh, 0.1),
	}

	decisions := MakeDecisions(ranked, defaultConstraints())

	summary := decisionFor(t, decisions, "personal-summary")
	assert.True(t, summary.Include)
	assert.Equal(t, reasonEssential, summary.Reasoning)
}

func TestMakeDecisionsEssentialShortenedWhenOverBudget(t *testing.T) {
	constraints := defaultConstraints()
	constraints.MaxCharacters = 250

	ranked := []types.RankedContentItem{
		rankedItem("personal-summary", types.ContentSummary, 200, types.PriorityHigh, 0.9),
		rankedItem("personal-name", types.ContentPersonalInfo, 100, types.PriorityHigh, 0.9),
	}

	decisions := MakeDecisions(ranked, constraints)

	name := decisionFor(t, decisions, "personal-name")
	assert.True(t, name.Include)
	require.NotNil(t, name.Modifications)
	assert.LessOrEqual(t, len(name.Modifications.Shortened), 50)
}

func TestMakeDecisionsPriorityInclusionBar(t *testing.T) {
	ranked := []types.RankedContentItem{
		rankedItem("experience-0", types.ContentExperience, 100, types.PriorityCritical, 0.9),
		rankedItem("experience-1", types.ContentExperience, 100, types.PriorityHigh, 0.75),
		rankedItem("skill-0", types.ContentSkill, 20, types.PriorityMedium, 0.55),
		rankedItem("skill-1", types.ContentSkill, 20, types.PriorityMedium, 0.35),
		rankedItem("project-0", types.ContentProject, 100, types.PriorityLow, 0.3),
	}

	decisions := MakeDecisions(ranked, defaultConstraints())

	assert.True(t, decisionFor(t, decisions, "experience-0").Include)
	assert.True(t, decisionFor(t, decisions, "experience-1").Include)
	assert.True(t, decisionFor(t, decisions, "skill-0").Include)
	assert.False(t, decisionFor(t, decisions, "skill-1").Include)
	assert.False(t, decisionFor(t, decisions, "project-0").Include)
}

func TestMakeDecisionsCharacterBudgetExcludes(t *testing.T) {
	constraints := defaultConstraints()
	constraints.MaxCharacters = 250

	ranked := []types.RankedContentItem{
		rankedItem("experience-0", types.ContentExperience, 200, types.PriorityHigh, 0.8),
		rankedItem("experience-1", types.ContentExperience, 200, types.PriorityHigh, 0.8),
	}

	decisions := MakeDecisions(ranked, constraints)

	assert.True(t, decisionFor(t, decisions, "experience-0").Include)
	excluded := decisionFor(t, decisions, "experience-1")
	assert.False(t, excluded.Include)
	assert.Equal(t, reasonConstraints, excluded.Reasoning)
	// Space-excluded items carry a shortened variant for later promotion.
	require.NotNil(t, excluded.Modifications)
	assert.NotEmpty(t, excluded.Modifications.Shortened)
}

func TestMakeDecisionsCategoryCaps(t *testing.T) {
	constraints := defaultConstraints()
	constraints.MaxSkills = 2

	ranked := []types.RankedContentItem{
		rankedItem("skill-0", types.ContentSkill, 10, types.PriorityHigh, 0.8),
		rankedItem("skill-1", types.ContentSkill, 10, types.PriorityHigh, 0.8),
		rankedItem("skill-2", types.ContentSkill, 10, types.PriorityHigh, 0.8),
	}

	decisions := MakeDecisions(ranked, constraints)

	assert.True(t, decisionFor(t, decisions, "skill-0").Include)
	assert.True(t, decisionFor(t, decisions, "skill-1").Include)
	overCap := decisionFor(t, decisions, "skill-2")
	assert.False(t, overCap.Include)
	assert.Equal(t, reasonConstraints, overCap.Reasoning)
}

func TestMakeDecisionsCriticalRespectsCaps(t *testing.T) {
	// Critical priority clears the inclusion bar but never the category
	// caps. Five top-scored experience entries against the default cap of
	// three must leave two excluded.
	ranked := []types.RankedContentItem{
		rankedItem("experience-0", types.ContentExperience, 100, types.PriorityCritical, 1.0),
		rankedItem("experience-1", types.ContentExperience, 100, types.PriorityCritical, 1.0),
		rankedItem("experience-2", types.ContentExperience, 100, types.PriorityCritical, 1.0),
		rankedItem("experience-3", types.ContentExperience, 100, types.PriorityCritical, 1.0),
		rankedItem("experience-4", types.ContentExperience, 100, types.PriorityCritical, 1.0),
	}

	decisions := MakeDecisions(ranked, defaultConstraints())

	selected := 0
	for _, decision := range decisions {
		if decision.Include {
			selected++
		}
	}
	assert.Equal(t, 3, selected)
	overCap := decisionFor(t, decisions, "experience-3")
	assert.False(t, overCap.Include)
	assert.Equal(t, reasonConstraints, overCap.Reasoning)
}

func TestMakeDecisionsCriticalRespectsCharacterBudget(t *testing.T) {
	constraints := defaultConstraints()
	constraints.MaxCharacters = 150

	ranked := []types.RankedContentItem{
		rankedItem("experience-0", types.ContentExperience, 100, types.PriorityCritical, 0.95),
		rankedItem("experience-1", types.ContentExperience, 100, types.PriorityCritical, 0.9),
	}

	decisions := MakeDecisions(ranked, constraints)

	assert.True(t, decisionFor(t, decisions, "experience-0").Include)
	assert.False(t, decisionFor(t, decisions, "experience-1").Include)
}

func TestMakeDecisionsLongIncludedContentIsShortened(t *testing.T) {
	ranked := []types.RankedContentItem{
		{
			Item: types.ContentItem{
				ID:      "experience-0-resp-0",
				Type:    types.ContentResponsibility,
				Content: strings.Repeat("word ", 60),
				Metadata: types.ContentMetadata{
					Length:   300,
					Keywords: []string{"platform", "payments", "latency", "scaling"},
				},
			},
			Priority:          types.PriorityHigh,
			FinalRankingScore: 0.75,
		},
	}

	decisions := MakeDecisions(ranked, defaultConstraints())

	decision := decisions[0]
	assert.True(t, decision.Include)
	require.NotNil(t, decision.Modifications)
	assert.LessOrEqual(t, len(decision.Modifications.Shortened), shortenTargetChars)
	assert.Equal(t, []string{"platform", "payments", "latency"}, decision.Modifications.Emphasize)
}

func TestMakeDecisionsEmptyInput(t *testing.T) {
	decisions := MakeDecisions(nil, defaultConstraints())
	assert.Empty(t, decisions)
}
