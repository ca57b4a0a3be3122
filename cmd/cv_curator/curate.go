package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-curator/internal/config"
	"github.com/jonathan/cv-curator/internal/curation"
	"github.com/jonathan/cv-curator/internal/cvdata"
	"github.com/jonathan/cv-curator/internal/db"
	"github.com/jonathan/cv-curator/internal/llm"
	"github.com/jonathan/cv-curator/internal/observability"
	"github.com/jonathan/cv-curator/internal/parsing"
	"github.com/jonathan/cv-curator/internal/schemas"
	"github.com/jonathan/cv-curator/internal/scoring"
	"github.com/jonathan/cv-curator/internal/types"
	"github.com/jonathan/cv-curator/internal/validation"
)

var curateCmd = &cobra.Command{
	Use:   "curate",
	Short: "Curate CV content against a target job",
	Long: `Runs the full curation pipeline: extraction -> analysis -> clustering -> scoring -> ranking -> selection -> assembly.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runCurate,
}

var (
	curateConfigPath  string
	curateCV          string
	curateJob         string
	curateStrategy    string
	curateOutput      string
	curateScorer      string
	curateSector      string
	curateAPIKey      string
	curateMaxChars    int
	curateMaxExp      int
	curateMaxEdu      int
	curateMaxSkills   int
	curateVerbose     bool
	curateSkipSchema  bool
	curateDatabaseURL string
)

func init() {
	// Config file flag (processed first)
	curateCmd.Flags().StringVar(&curateConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	curateCmd.Flags().StringVarP(&curateCV, "cv", "c", "", "Path to structured CV JSON file")
	curateCmd.Flags().StringVarP(&curateJob, "job", "j", "", "Path to job context JSON file")
	curateCmd.Flags().StringVarP(&curateStrategy, "strategy", "s", "", "Path to custom curation strategy JSON file (optional)")
	curateCmd.Flags().StringVarP(&curateOutput, "out", "o", "", "Path to output curation result JSON file (defaults to stdout)")
	curateCmd.Flags().StringVar(&curateScorer, "scorer", "", `Alignment scorer: "heuristic" (default) or "llm"`)
	curateCmd.Flags().StringVar(&curateSector, "sector", "", "Override the job context's sector (federal, state, healthcare, tech, private)")
	curateCmd.Flags().IntVar(&curateMaxChars, "max-characters", 0, "Character budget override")
	curateCmd.Flags().IntVar(&curateMaxExp, "max-experience", 0, "Experience item cap override")
	curateCmd.Flags().IntVar(&curateMaxEdu, "max-education", 0, "Education item cap override")
	curateCmd.Flags().IntVar(&curateMaxSkills, "max-skills", 0, "Skill cap override")
	curateCmd.Flags().BoolVarP(&curateVerbose, "verbose", "v", false, "Print detailed analysis information")
	curateCmd.Flags().BoolVar(&curateSkipSchema, "skip-schema", false, "Skip JSON Schema validation of input files")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	curateCmd.Flags().StringVar(&curateAPIKey, "api-key", "", "Gemini API Key (llm scorer only, defaults to GEMINI_API_KEY env var)")

	// Database URL for run history persistence
	curateCmd.Flags().StringVar(&curateDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(curateCmd)
}

func runCurate(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := resolveCurateConfig(cmd)
	if err != nil {
		return err
	}

	// Validate inputs against their schemas before decoding
	if !cfg.SkipSchema {
		validateInput(schemas.CVDataSchema, cfg.CV)
		validateInput(schemas.JobContextSchema, cfg.Job)
		if cfg.Strategy != "" {
			validateInput(schemas.CurationStrategySchema, cfg.Strategy)
		}
	}

	// Load and normalize inputs
	cv, err := cvdata.LoadCVData(cfg.CV)
	if err != nil {
		return fmt.Errorf("failed to load cv: %w", err)
	}
	if err := cvdata.NormalizeCVData(cv); err != nil {
		return fmt.Errorf("failed to normalize cv: %w", err)
	}

	job, err := parsing.LoadJobContext(cfg.Job)
	if err != nil {
		return fmt.Errorf("failed to load job context: %w", err)
	}
	if cmd.Flags().Changed("sector") {
		job.Sector = strings.ToLower(strings.TrimSpace(curateSector))
		if job.Sector == "" {
			job.Sector = types.SectorPrivate
		}
	}

	// Build the curator; LLM scoring is opt-in
	curatorCfg := curation.Config{}
	if cfg.Scorer == "llm" {
		apiKey := cfg.APIKey
		if apiKey == "" {
			apiKey = os.Getenv("GEMINI_API_KEY")
		}
		if apiKey == "" {
			return fmt.Errorf("GEMINI_API_KEY environment variable or --api-key flag is required for the llm scorer")
		}

		client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
		if err != nil {
			return fmt.Errorf("failed to create LLM client: %w", err)
		}
		defer func() { _ = client.Close() }()
		curatorCfg.Scorer = scoring.NewLLMScorer(client)
	}

	if cfg.Verbose {
		curatorCfg.OnProgress = func(event curation.ProgressEvent) {
			_, _ = fmt.Fprintf(os.Stderr, "[%s] %s\n", event.Step, event.Message)
		}
	}

	curator := curation.NewCurator(curatorCfg)

	customStrategy, err := resolveStrategy(curator, job, cfg)
	if err != nil {
		return err
	}

	analysis := curator.AnalyzeCV(cv, job)
	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintJobContext(job)
		printer.PrintAnalysis(analysis)
	}

	result, err := curator.Curate(ctx, cv, job, customStrategy)
	if err != nil {
		return fmt.Errorf("curation failed: %w", err)
	}

	// Sanity-check the result against the run's content items
	for _, violation := range validation.CheckResult(result, analysis.ContentItems) {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: result violation %s: %s\n", violation.Type, violation.Details)
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintCurationResult(result)
	}

	if err := writeResult(result, cfg.Output); err != nil {
		return err
	}

	// Persist run history when a database is configured
	databaseURL := cfg.DatabaseURL
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL != "" {
		if err := persistRun(ctx, databaseURL, cv, job, result); err != nil {
			// Run history is best-effort; the result is already written
			_, _ = fmt.Fprintf(os.Stderr, "Warning: failed to persist run: %v\n", err)
		}
	}

	_, _ = fmt.Fprintf(os.Stderr, "Selected %d of %d items (%d chars, %.0f%% coverage)\n",
		result.Summary.SelectedItems, result.Summary.OriginalItems,
		result.Summary.EstimatedLength, result.Summary.RequirementsCoverage*100)

	return nil
}

// resolveCurateConfig merges the config file, CLI flags, and defaults.
// Command-line arguments take priority over config file values.
func resolveCurateConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if curateConfigPath != "" {
		loadedCfg, err := config.LoadConfig(curateConfigPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return cfg, err
		}
		cfg = *loadedCfg
	}

	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("cv") {
		cfg.CV = curateCV
	}
	if cmd.Flags().Changed("job") {
		cfg.Job = curateJob
	}
	if cmd.Flags().Changed("strategy") {
		cfg.Strategy = curateStrategy
	}
	if cmd.Flags().Changed("out") {
		cfg.Output = curateOutput
	}
	if cmd.Flags().Changed("scorer") {
		cfg.Scorer = curateScorer
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = curateAPIKey
	}
	if cmd.Flags().Changed("max-characters") {
		cfg.MaxCharacters = curateMaxChars
	}
	if cmd.Flags().Changed("max-experience") {
		cfg.MaxExperienceItems = curateMaxExp
	}
	if cmd.Flags().Changed("max-education") {
		cfg.MaxEducationItems = curateMaxEdu
	}
	if cmd.Flags().Changed("max-skills") {
		cfg.MaxSkills = curateMaxSkills
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = curateVerbose
	}
	if cmd.Flags().Changed("skip-schema") {
		cfg.SkipSchema = curateSkipSchema
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = curateDatabaseURL
	}

	cfg = cfg.MergeWithDefaults(config.Config{Scorer: "heuristic"})

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	if cfg.CV == "" {
		return cfg, fmt.Errorf("--cv is required (via flag or config)")
	}
	if cfg.Job == "" {
		return cfg, fmt.Errorf("--job is required (via flag or config)")
	}

	return cfg, nil
}

// resolveStrategy loads the custom strategy file and applies budget
// overrides. Returns nil when the job's sector strategy should be used
// unmodified.
func resolveStrategy(curator *curation.Curator, job *types.JobContext, cfg config.Config) (*types.CurationStrategy, error) {
	hasOverrides := cfg.MaxCharacters > 0 || cfg.MaxExperienceItems > 0 ||
		cfg.MaxEducationItems > 0 || cfg.MaxSkills > 0

	var strategy types.CurationStrategy
	switch {
	case cfg.Strategy != "":
		content, err := os.ReadFile(cfg.Strategy)
		if err != nil {
			return nil, fmt.Errorf("failed to read strategy file %s: %w", cfg.Strategy, err)
		}
		if err := json.Unmarshal(content, &strategy); err != nil {
			return nil, fmt.Errorf("failed to unmarshal strategy JSON: %w", err)
		}
	case hasOverrides:
		strategy = curator.SelectStrategy(job)
	default:
		return nil, nil
	}

	if cfg.MaxCharacters > 0 {
		strategy.Constraints.MaxCharacters = cfg.MaxCharacters
	}
	if cfg.MaxExperienceItems > 0 {
		strategy.Constraints.MaxExperienceItems = cfg.MaxExperienceItems
	}
	if cfg.MaxEducationItems > 0 {
		strategy.Constraints.MaxEducationItems = cfg.MaxEducationItems
	}
	if cfg.MaxSkills > 0 {
		strategy.Constraints.MaxSkills = cfg.MaxSkills
	}

	return &strategy, nil
}

// validateInput validates a file against a named schema; validation
// problems are warnings so hand-edited files still curate
func validateInput(schemaName, jsonPath string) {
	schemaPath := schemas.ResolveSchemaPath(schemaName)
	if schemaPath == "" {
		return
	}
	if err := schemas.ValidateFile(schemaPath, jsonPath); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: %s does not match %s: %v\n", jsonPath, schemaName, err)
	}
}

// writeResult marshals the result and writes it to the output path, or
// stdout when no path is configured
func writeResult(result *types.CurationResult, outputPath string) error {
	jsonOutput, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal curation result to JSON: %w", err)
	}

	if outputPath == "" {
		_, _ = fmt.Fprintln(os.Stdout, string(jsonOutput))
		return nil
	}

	// Ensure output directory exists
	outputDir := filepath.Dir(outputPath)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}

	if err := os.WriteFile(outputPath, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write curation result to output file %s: %w", outputPath, err)
	}
	return nil
}

// persistRun records the run and its artifacts in the database
func persistRun(ctx context.Context, databaseURL string, cv *types.CVData, job *types.JobContext, result *types.CurationResult) error {
	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	runID, err := database.CreateRun(ctx, cv.PersonalInfo.Name, job.Title, job.Sector)
	if err != nil {
		return err
	}

	if err := database.SaveArtifact(ctx, runID, db.StepJobContext, job); err != nil {
		return err
	}
	if err := database.SaveArtifact(ctx, runID, db.StepCurationResult, result); err != nil {
		return err
	}

	return database.CompleteRun(ctx, runID, "completed")
}
