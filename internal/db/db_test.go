package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArtifactStepConstants(t *testing.T) {
	steps := []string{
		StepJobContext,
		StepAnalysis,
		StepCurationResult,
	}

	for _, step := range steps {
		assert.NotEmpty(t, step, "step constant should not be empty")
	}
}

func TestRunType(t *testing.T) {
	run := Run{
		Candidate: "Jane Doe",
		JobTitle:  "Engineer",
		Sector:    "tech",
		Status:    "running",
	}

	assert.Equal(t, "Jane Doe", run.Candidate)
	assert.Equal(t, "Engineer", run.JobTitle)
	assert.Equal(t, "running", run.Status)
	assert.Nil(t, run.CompletedAt)
}

func TestRunFilters_Defaults(t *testing.T) {
	filters := RunFilters{}
	assert.Empty(t, filters.Sector)
	assert.Empty(t, filters.Status)
	assert.Zero(t, filters.Limit)
}
