// Package parsing provides functionality to load and normalize job context
// documents that describe the target position.
package parsing

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/cv-curator/internal/types"
)

// LoadJobContext loads a job context from a JSON file and normalizes it
func LoadJobContext(path string) (*types.JobContext, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}

	var job types.JobContext
	if err := json.Unmarshal(content, &job); err != nil {
		return nil, &ParseError{
			Message: "failed to unmarshal JSON",
			Cause:   err,
		}
	}

	if err := NormalizeJobContext(&job); err != nil {
		return nil, err
	}

	return &job, nil
}

// NormalizeJobContext applies normalization and validation to a job context
func NormalizeJobContext(job *types.JobContext) error {
	job.Title = strings.TrimSpace(job.Title)
	job.Sector = strings.ToLower(strings.TrimSpace(job.Sector))

	// An absent sector falls back to private so sector scoring stays defined
	if job.Sector == "" {
		job.Sector = types.SectorPrivate
	}

	// Normalize skill names in required_skills
	job.RequiredSkills = NormalizeSkillNames(job.RequiredSkills)

	// Drop blank responsibility and education lines
	job.Responsibilities = trimNonEmpty(job.Responsibilities)
	job.EducationRequirements = trimNonEmpty(job.EducationRequirements)

	job.ExperienceLevel = strings.TrimSpace(job.ExperienceLevel)
	job.Organization.Name = strings.TrimSpace(job.Organization.Name)

	if job.Title == "" && job.Description == "" && len(job.RequiredSkills) == 0 {
		return &ValidationError{
			Message: "job context must include at least a title, description, or required skills",
		}
	}

	return nil
}

// trimNonEmpty trims each line and drops the empty ones
func trimNonEmpty(lines []string) []string {
	if len(lines) == 0 {
		return lines
	}
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
