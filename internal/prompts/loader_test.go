package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustGetReturnsAlignmentTemplate(t *testing.T) {
	template := MustGet("scoring.json", "score-content-alignment")

	require.NotEmpty(t, template)
	assert.Contains(t, template, "alignment_score")
	assert.Contains(t, template, "{{.JobTitle}}")
	assert.Contains(t, template, "{{.Content}}")
}

func TestMustGetPanicsOnMissingKey(t *testing.T) {
	assert.Panics(t, func() {
		MustGet("scoring.json", "no-such-prompt")
	})
}

func TestMustGetPanicsOnMissingFile(t *testing.T) {
	assert.Panics(t, func() {
		MustGet("no-such-file.json", "score-content-alignment")
	})
}

func TestFormatFillsAlignmentPlaceholders(t *testing.T) {
	template := MustGet("scoring.json", "score-content-alignment")

	filled := Format(template, map[string]string{
		"JobTitle":         "Staff Engineer",
		"Sector":           "tech",
		"RequiredSkills":   "Go, Postgres",
		"Responsibilities": "Own the billing platform",
		"Description":      "Billing team",
		"ContentType":      "experience",
		"Content":          "Led migration to event-driven billing",
	})

	assert.Contains(t, filled, "Staff Engineer")
	assert.Contains(t, filled, "Led migration to event-driven billing")
	assert.False(t, strings.Contains(filled, "{{."), "unfilled placeholder left in prompt")
}

func TestFormatLeavesUnknownPlaceholdersAlone(t *testing.T) {
	out := Format("rate {{.Content}} for {{.JobTitle}}", map[string]string{
		"Content": "some text",
	})

	assert.Equal(t, "rate some text for {{.JobTitle}}", out)
}
