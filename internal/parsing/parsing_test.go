package parsing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-curator/internal/types"
)

func TestNormalizeSkillName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"canonical variant", "golang", "Go"},
		{"canonical variant uppercase", "GOLANG", "Go"},
		{"abbreviation", "k8s", "Kubernetes"},
		{"postgres variant", "postgres", "PostgreSQL"},
		{"mixed case kept", "PyTorch", "PyTorch"},
		{"acronym kept", "AWS", "AWS"},
		{"lowercase single word capitalized", "rust", "Rust"},
		{"lowercase multi word kept", "machine learning", "machine learning"},
		{"surrounding whitespace", "  golang  ", "Go"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeSkillName(tt.input))
		})
	}
}

func TestNormalizeSkillNames(t *testing.T) {
	skills := []string{"golang", "Go", "js", "  ", "React.js", "reactjs"}

	assert.Equal(t, []string{"Go", "JavaScript", "React"}, NormalizeSkillNames(skills))
}

func TestNormalizeSkillNamesEmpty(t *testing.T) {
	assert.Empty(t, NormalizeSkillNames(nil))
}

func TestLoadJobContext(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"title": "  Backend Engineer ",
		"sector": "Tech",
		"description": "Build services",
		"required_skills": ["golang", "postgres"]
	}`), 0o644))

	job, err := LoadJobContext(path)

	require.NoError(t, err)
	assert.Equal(t, "Backend Engineer", job.Title)
	assert.Equal(t, types.SectorTech, job.Sector)
	assert.Equal(t, []string{"Go", "PostgreSQL"}, job.RequiredSkills)
}

func TestLoadJobContextMissingFile(t *testing.T) {
	_, err := LoadJobContext(filepath.Join(t.TempDir(), "missing.json"))

	require.Error(t, err)
	var loadErr *LoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestLoadJobContextInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o644))

	_, err := LoadJobContext(path)

	require.Error(t, err)
	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestNormalizeJobContextSectorFallback(t *testing.T) {
	job := &types.JobContext{Title: "Engineer"}

	require.NoError(t, NormalizeJobContext(job))

	assert.Equal(t, types.SectorPrivate, job.Sector)
}

func TestNormalizeJobContextDropsBlankLines(t *testing.T) {
	job := &types.JobContext{
		Title:                 "Engineer",
		Responsibilities:      []string{" build services ", "", "  "},
		EducationRequirements: []string{"", "BS or equivalent "},
	}

	require.NoError(t, NormalizeJobContext(job))

	assert.Equal(t, []string{"build services"}, job.Responsibilities)
	assert.Equal(t, []string{"BS or equivalent"}, job.EducationRequirements)
}

func TestNormalizeJobContextRejectsEmpty(t *testing.T) {
	job := &types.JobContext{Sector: "tech"}

	err := NormalizeJobContext(job)

	require.Error(t, err)
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}
