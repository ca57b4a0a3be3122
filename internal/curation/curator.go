package curation

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/cv-curator/internal/analysis"
	"github.com/jonathan/cv-curator/internal/clustering"
	"github.com/jonathan/cv-curator/internal/extraction"
	"github.com/jonathan/cv-curator/internal/ranking"
	"github.com/jonathan/cv-curator/internal/scoring"
	"github.com/jonathan/cv-curator/internal/selection"
	"github.com/jonathan/cv-curator/internal/types"
)

// ProgressEvent represents a progress update during a curation run
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	RunID   string `json:"run_id,omitempty"`
}

// ProgressCallback is called as a curation run advances through its stages
type ProgressCallback func(event ProgressEvent)

// Config holds the construction-time configuration for a Curator.
// All fields are optional; zero values fall back to the built-in defaults.
type Config struct {
	// DefaultStrategy is used when the job's sector has no dedicated
	// strategy; nil means DefaultStrategy().
	DefaultStrategy *types.CurationStrategy
	// SectorStrategies overrides the built-in per-sector strategy table
	SectorStrategies map[string]types.CurationStrategy
	// Lexicon overrides the metadata analyzer's keyword dictionaries
	Lexicon *analysis.Lexicon
	// Scorer is the alignment-scoring collaborator. When nil, a lexical
	// HeuristicScorer is built per run from the selected strategy's weights.
	Scorer scoring.Scorer
	// OnProgress receives stage updates; nil disables them
	OnProgress ProgressCallback
}

// Curator sequences the curation pipeline for one CV / job-context pair.
// A Curator is safe for concurrent runs: all per-run state is local.
type Curator struct {
	extractor        *extraction.Extractor
	defaultStrategy  types.CurationStrategy
	sectorStrategies map[string]types.CurationStrategy
	scorer           scoring.Scorer
	onProgress       ProgressCallback
}

// NewCurator creates a curator from the given configuration
func NewCurator(cfg Config) *Curator {
	lexicon := analysis.DefaultLexicon()
	if cfg.Lexicon != nil {
		lexicon = *cfg.Lexicon
	}

	defaultStrategy := DefaultStrategy()
	if cfg.DefaultStrategy != nil {
		defaultStrategy = *cfg.DefaultStrategy
	}

	sectorStrategies := cfg.SectorStrategies
	if sectorStrategies == nil {
		sectorStrategies = DefaultSectorStrategies()
	}

	return &Curator{
		extractor:        extraction.NewExtractor(analysis.NewAnalyzer(lexicon)),
		defaultStrategy:  defaultStrategy,
		sectorStrategies: sectorStrategies,
		scorer:           cfg.Scorer,
		onProgress:       cfg.OnProgress,
	}
}

// Curate runs the full pipeline and returns the curation result.
// A nil customStrategy means the strategy is selected from the job's
// sector. A scoring failure fails the run; no partial result is returned.
func (c *Curator) Curate(ctx context.Context, cv *types.CVData, job *types.JobContext, customStrategy *types.CurationStrategy) (*types.CurationResult, error) {
	runID := uuid.New().String()

	strategy := c.defaultStrategy
	if customStrategy != nil {
		strategy = *customStrategy
	} else {
		strategy = c.selectStrategy(job)
	}
	if err := strategy.Validate(); err != nil {
		return nil, &Error{Message: "invalid curation strategy", Cause: err}
	}

	c.progress(runID, "extract", "extracting content items")
	items := c.extractor.ExtractContent(cv)

	scorer := c.scorer
	if scorer == nil {
		scorer = scoring.NewHeuristicScorer(strategy.Weights)
	}

	// Clustering and alignment scoring are independent of each other;
	// the scorer call is the pipeline's only suspension point.
	var clusters []types.ContentCluster
	var scores []types.ContentScore

	c.progress(runID, "score", "scoring content alignment with job requirements")
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		clusters = clustering.ClusterContent(items, job)
		return nil
	})
	group.Go(func() error {
		var err error
		scores, err = scorer.ScoreContentItems(groupCtx, items, job)
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, &Error{Message: "alignment scoring failed", Cause: err}
	}

	c.progress(runID, "rank", "ranking content by strategic importance")
	ranked, err := ranking.RankContent(items, scores, job)
	if err != nil {
		return nil, &Error{Message: "ranking failed", Cause: err}
	}

	c.progress(runID, "decide", "making content selection decisions")
	decisions := selection.MakeDecisions(ranked, strategy.Constraints)

	c.progress(runID, "assemble", "assembling curation result")
	result := c.assembleResult(decisions, strategy, items, clusters, job)
	c.optimizeResult(result, ranked)

	return result, nil
}

// AnalyzeCV extracts and clusters a CV's content without scoring it,
// returning the analysis summary. Used for verbose reporting.
func (c *Curator) AnalyzeCV(cv *types.CVData, job *types.JobContext) *types.ContentAnalysis {
	items := c.extractor.ExtractContent(cv)
	clusters := clustering.ClusterContent(items, job)

	return &types.ContentAnalysis{
		ContentItems: items,
		Scores:       []types.ContentScore{},
		Clusters:     clusters,
		Summary:      buildAnalysisSummary(items, clusters, job),
	}
}

// progress emits a progress event when a callback is configured
func (c *Curator) progress(runID, step, message string) {
	if c.onProgress == nil {
		return
	}
	c.onProgress(ProgressEvent{Step: step, Message: message, RunID: runID})
}
