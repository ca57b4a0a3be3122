// Package selection walks the ranked content order and emits one
// include/exclude decision per item under the strategy's hard budget
// constraints.
package selection

import (
	"fmt"

	"github.com/jonathan/cv-curator/internal/types"
)

// shortenTargetChars is the length above which included content gets a
// shortened modification
const shortenTargetChars = 150

// emphasizeKeywordCount is how many leading keywords the renderer is asked
// to highlight on shortened content
const emphasizeKeywordCount = 3

// Decision reasoning strings
const (
	reasonEssential   = "Essential content must be included"
	reasonConstraints = "Excluded due to space/count constraints"
)

// counters tracks the running selection totals during a decision pass
type counters struct {
	characters int
	experience int
	education  int
	skills     int
}

// add records an included item against the running totals
func (c *counters) add(item *types.ContentItem) {
	c.characters += item.Metadata.Length
	switch item.Type {
	case types.ContentExperience:
		c.experience++
	case types.ContentEducation:
		c.education++
	case types.ContentSkill:
		c.skills++
	}
}

// MakeDecisions processes the ranked items in two passes. The essential
// pass includes every essential-type item unconditionally, shortening to
// the remaining budget when needed. The remaining pass includes items in
// ranked order while the character budget and per-category caps hold and
// the item's priority clears the inclusion bar; critical priority clears
// the bar but never the constraints. Exactly one decision is emitted per
// item.
func MakeDecisions(ranked []types.RankedContentItem, constraints types.Constraints) []types.ContentDecision {
	decisions := make([]types.ContentDecision, 0, len(ranked))
	totals := &counters{}

	essential := make([]*types.RankedContentItem, 0)
	remaining := make([]*types.RankedContentItem, 0, len(ranked))
	for i := range ranked {
		item := &ranked[i]
		if item.Item.Type.IsEssential() {
			essential = append(essential, item)
		} else {
			remaining = append(remaining, item)
		}
	}

	for _, rankedItem := range essential {
		decision := decideEssential(rankedItem, constraints, totals)
		if decision.Include {
			totals.add(&rankedItem.Item)
		}
		decisions = append(decisions, decision)
	}

	for _, rankedItem := range remaining {
		decision := decideRemaining(rankedItem, constraints, totals)
		if decision.Include {
			totals.add(&rankedItem.Item)
		}
		decisions = append(decisions, decision)
	}

	return decisions
}

// decideEssential always includes, shortening to the remaining character
// budget when the full content would not fit
func decideEssential(rankedItem *types.RankedContentItem, constraints types.Constraints, totals *counters) types.ContentDecision {
	item := &rankedItem.Item

	decision := types.ContentDecision{
		ContentID: item.ID,
		Include:   true,
		Priority:  rankedItem.Priority,
		Reasoning: reasonEssential,
	}

	if totals.characters+item.Metadata.Length > constraints.MaxCharacters {
		remaining := constraints.MaxCharacters - totals.characters
		if remaining < 0 {
			remaining = 0
		}
		decision.Modifications = &types.Modifications{
			Shortened: ShortenContent(item.Content, remaining),
		}
	}

	return decision
}

// decideRemaining applies the budget, category caps, and the priority
// inclusion bar. Items excluded for space still carry a shortened variant so
// the curator's optimization pass can promote one later.
func decideRemaining(rankedItem *types.RankedContentItem, constraints types.Constraints, totals *counters) types.ContentDecision {
	item := &rankedItem.Item

	overCharacters := totals.characters+item.Metadata.Length > constraints.MaxCharacters
	overExperience := item.Type == types.ContentExperience && totals.experience >= constraints.MaxExperienceItems
	overEducation := item.Type == types.ContentEducation && totals.education >= constraints.MaxEducationItems
	overSkills := item.Type == types.ContentSkill && totals.skills >= constraints.MaxSkills

	if overCharacters || overExperience || overEducation || overSkills {
		return types.ContentDecision{
			ContentID:     item.ID,
			Include:       false,
			Priority:      rankedItem.Priority,
			Reasoning:     reasonConstraints,
			Modifications: shortenedModifications(item),
		}
	}

	include := rankedItem.Priority == types.PriorityCritical ||
		(rankedItem.Priority == types.PriorityHigh && rankedItem.FinalRankingScore > 0.6) ||
		(rankedItem.Priority == types.PriorityMedium && rankedItem.FinalRankingScore > 0.4)

	decision := types.ContentDecision{
		ContentID: item.ID,
		Include:   include,
		Priority:  rankedItem.Priority,
	}

	if include {
		decision.Reasoning = fmt.Sprintf("High relevance (score: %.2f)", rankedItem.FinalRankingScore)
		if item.Metadata.Length > shortenTargetChars {
			decision.Modifications = shortenedModifications(item)
		}
	} else {
		decision.Reasoning = fmt.Sprintf("Low relevance (score: %.2f)", rankedItem.FinalRankingScore)
	}

	return decision
}

// shortenedModifications builds the standard 150-character shortening plus
// the top keywords to emphasize
func shortenedModifications(item *types.ContentItem) *types.Modifications {
	emphasize := item.Metadata.Keywords
	if len(emphasize) > emphasizeKeywordCount {
		emphasize = emphasize[:emphasizeKeywordCount]
	}
	return &types.Modifications{
		Shortened: ShortenContent(item.Content, shortenTargetChars),
		Emphasize: emphasize,
	}
}
