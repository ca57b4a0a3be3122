// Package validation provides consistency checks over curation results.
package validation

import (
	"fmt"

	"github.com/jonathan/cv-curator/internal/types"
)

// Violation types
const (
	ViolationDuplicateDecision = "duplicate_decision"
	ViolationMissingDecision   = "missing_decision"
	ViolationUnknownContent    = "unknown_content"
	ViolationEssentialExcluded = "essential_excluded"
	ViolationExperienceCap     = "experience_cap"
	ViolationEducationCap      = "education_cap"
	ViolationSkillCap          = "skill_cap"
)

// Violation flags one inconsistency between a curation result and the
// content items it was built from
type Violation struct {
	Type      string `json:"type"`
	ContentID string `json:"content_id,omitempty"`
	Details   string `json:"details"`
}

// CheckResult verifies a curation result against the content items of the
// run: decisions must partition the items exactly, essential content must
// be selected, and per-category caps must hold for every selection.
// A clean run returns no violations; any violation indicates a defect in
// the decision pipeline, not in the input.
func CheckResult(result *types.CurationResult, items []types.ContentItem) []Violation {
	violations := make([]Violation, 0)

	itemMap := make(map[string]*types.ContentItem, len(items))
	for i := range items {
		itemMap[items[i].ID] = &items[i]
	}

	violations = append(violations, checkPartition(result, itemMap)...)
	violations = append(violations, checkEssentials(result, itemMap)...)
	violations = append(violations, checkCaps(result, itemMap)...)

	return violations
}

// checkPartition verifies every item has exactly one decision and every
// decision points at a known item
func checkPartition(result *types.CurationResult, itemMap map[string]*types.ContentItem) []Violation {
	violations := make([]Violation, 0)
	seen := make(map[string]int, len(itemMap))

	decisions := make([]types.ContentDecision, 0, len(result.SelectedContent)+len(result.ExcludedContent))
	decisions = append(decisions, result.SelectedContent...)
	decisions = append(decisions, result.ExcludedContent...)

	for _, decision := range decisions {
		seen[decision.ContentID]++
		if _, ok := itemMap[decision.ContentID]; !ok {
			violations = append(violations, Violation{
				Type:      ViolationUnknownContent,
				ContentID: decision.ContentID,
				Details:   "decision references a content item that was never extracted",
			})
		}
	}

	for id, count := range seen {
		if count > 1 {
			violations = append(violations, Violation{
				Type:      ViolationDuplicateDecision,
				ContentID: id,
				Details:   fmt.Sprintf("content item has %d decisions", count),
			})
		}
	}

	for id := range itemMap {
		if seen[id] == 0 {
			violations = append(violations, Violation{
				Type:      ViolationMissingDecision,
				ContentID: id,
				Details:   "content item has no decision",
			})
		}
	}

	return violations
}

// checkEssentials verifies summary and personal info content was selected
func checkEssentials(result *types.CurationResult, itemMap map[string]*types.ContentItem) []Violation {
	violations := make([]Violation, 0)

	for _, decision := range result.ExcludedContent {
		item, ok := itemMap[decision.ContentID]
		if !ok {
			continue
		}
		if item.Type.IsEssential() {
			violations = append(violations, Violation{
				Type:      ViolationEssentialExcluded,
				ContentID: decision.ContentID,
				Details:   fmt.Sprintf("essential %s content was excluded", item.Type),
			})
		}
	}

	return violations
}

// checkCaps verifies selections respect the per-category caps regardless
// of priority
func checkCaps(result *types.CurationResult, itemMap map[string]*types.ContentItem) []Violation {
	violations := make([]Violation, 0)
	constraints := result.Strategy.Constraints

	var experience, education, skills int
	for _, decision := range result.SelectedContent {
		item, ok := itemMap[decision.ContentID]
		if !ok {
			continue
		}
		switch item.Type {
		case types.ContentExperience:
			experience++
		case types.ContentEducation:
			education++
		case types.ContentSkill:
			skills++
		}
	}

	if experience > constraints.MaxExperienceItems {
		violations = append(violations, Violation{
			Type:    ViolationExperienceCap,
			Details: fmt.Sprintf("selected %d experience items, cap is %d", experience, constraints.MaxExperienceItems),
		})
	}
	if education > constraints.MaxEducationItems {
		violations = append(violations, Violation{
			Type:    ViolationEducationCap,
			Details: fmt.Sprintf("selected %d education items, cap is %d", education, constraints.MaxEducationItems),
		})
	}
	if skills > constraints.MaxSkills {
		violations = append(violations, Violation{
			Type:    ViolationSkillCap,
			Details: fmt.Sprintf("selected %d skills, cap is %d", skills, constraints.MaxSkills),
		})
	}

	return violations
}
