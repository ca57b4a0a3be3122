package db

import (
	"time"

	"github.com/google/uuid"
)

// Run represents a curation run record
type Run struct {
	ID          uuid.UUID  `json:"id"`
	Candidate   string     `json:"candidate"`
	JobTitle    string     `json:"job_title"`
	Sector      string     `json:"sector"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// Artifact step constants for known artifact types
const (
	StepJobContext     = "job_context"
	StepAnalysis       = "content_analysis"
	StepCurationResult = "curation_result"
)
