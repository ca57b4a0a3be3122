// Package scoring provides job-alignment scorers for extracted CV content.
// The curator depends only on the Scorer interface; implementations range
// from the built-in lexical heuristic to an LLM-backed judge.
package scoring

import (
	"context"

	"github.com/jonathan/cv-curator/internal/types"
)

// Scorer produces one alignment score per content item against a job
// context. Scores are in [0, 1], higher means better alignment. A failed
// scoring pass must surface as an error; callers never substitute defaults.
type Scorer interface {
	ScoreContentItems(ctx context.Context, items []types.ContentItem, job *types.JobContext) ([]types.ContentScore, error)
}
