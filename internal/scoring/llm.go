package scoring

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/cv-curator/internal/llm"
	"github.com/jonathan/cv-curator/internal/prompts"
	"github.com/jonathan/cv-curator/internal/types"
)

// llmScoreResponse represents the expected JSON response from the model
type llmScoreResponse struct {
	AlignmentScore float64 `json:"alignment_score"`
	Reasoning      string  `json:"reasoning"`
}

// LLMScorer judges per-item job alignment with an LLM. Any generation or
// parse failure fails the whole pass; the engine never continues with
// fabricated scores.
type LLMScorer struct {
	client llm.Client
}

// NewLLMScorer creates a scorer over the given LLM client
func NewLLMScorer(client llm.Client) *LLMScorer {
	return &LLMScorer{client: client}
}

// ScoreContentItems judges every content item against the job context
func (s *LLMScorer) ScoreContentItems(ctx context.Context, items []types.ContentItem, job *types.JobContext) ([]types.ContentScore, error) {
	scores := make([]types.ContentScore, 0, len(items))

	for i := range items {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		score, err := s.scoreItem(ctx, &items[i], job)
		if err != nil {
			return nil, &Error{
				Message: fmt.Sprintf("alignment scoring failed for item %s", items[i].ID),
				Cause:   err,
			}
		}
		scores = append(scores, score)
	}

	return scores, nil
}

func (s *LLMScorer) scoreItem(ctx context.Context, item *types.ContentItem, job *types.JobContext) (types.ContentScore, error) {
	prompt := buildScorePrompt(item, job)

	jsonResp, err := s.client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		return types.ContentScore{}, fmt.Errorf("LLM generation failed: %w", err)
	}

	jsonResp = llm.CleanJSONBlock(jsonResp)

	var response llmScoreResponse
	if err := json.Unmarshal([]byte(jsonResp), &response); err != nil {
		return types.ContentScore{}, fmt.Errorf("failed to parse LLM response: %w (content: %s)", err, jsonResp)
	}

	if response.AlignmentScore < 0 {
		response.AlignmentScore = 0
	}
	if response.AlignmentScore > 1 {
		response.AlignmentScore = 1
	}

	return types.ContentScore{
		ContentID:    item.ID,
		OverallScore: response.AlignmentScore,
		Components: types.ScoreComponents{
			RecencyScore: item.Metadata.Recency,
			ImpactScore:  item.Metadata.Impact,
		},
		Confidence: 0.9,
		Reasoning:  []string{response.Reasoning},
	}, nil
}

// buildScorePrompt constructs the judging prompt for one content item
func buildScorePrompt(item *types.ContentItem, job *types.JobContext) string {
	template := prompts.MustGet("scoring.json", "score-content-alignment")
	return prompts.Format(template, map[string]string{
		"JobTitle":         job.Title,
		"Sector":           job.Sector,
		"RequiredSkills":   strings.Join(job.RequiredSkills, ", "),
		"Responsibilities": strings.Join(job.Responsibilities, "; "),
		"Description":      job.Description,
		"ContentType":      string(item.Type),
		"Content":          item.Content,
	})
}
