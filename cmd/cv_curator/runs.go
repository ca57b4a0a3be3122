package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/cv-curator/internal/db"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List or inspect stored curation runs",
	Long:  "Lists curation runs from the run history database, or prints a single run's curation result when --id is given.",
	RunE:  runRuns,
}

var (
	runsDatabaseURL string
	runsID          string
	runsSector      string
	runsStatus      string
	runsLimit       int
)

func init() {
	runsCmd.Flags().StringVar(&runsDatabaseURL, "db-url", "", "PostgreSQL connection URL (defaults to DATABASE_URL env var)")
	runsCmd.Flags().StringVar(&runsID, "id", "", "Show a single run and its stored result")
	runsCmd.Flags().StringVar(&runsSector, "sector", "", "Filter runs by job sector")
	runsCmd.Flags().StringVar(&runsStatus, "status", "", "Filter runs by status")
	runsCmd.Flags().IntVar(&runsLimit, "limit", 20, "Maximum number of runs to list")

	rootCmd.AddCommand(runsCmd)
}

func runRuns(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	databaseURL := runsDatabaseURL
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable or --db-url flag is required")
	}

	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	if runsID != "" {
		return showRun(ctx, database, runsID)
	}

	runs, err := database.ListRuns(ctx, db.RunFilters{
		Sector: runsSector,
		Status: runsStatus,
		Limit:  runsLimit,
	})
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		_, _ = fmt.Fprintln(os.Stdout, "No runs found")
		return nil
	}

	for _, run := range runs {
		_, _ = fmt.Fprintf(os.Stdout, "%s  %-10s  %-12s  %s (%s)\n",
			run.ID, run.Status, run.Sector, run.JobTitle, run.Candidate)
	}

	return nil
}

func showRun(ctx context.Context, database *db.DB, id string) error {
	runID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid run id format: %w", err)
	}

	run, err := database.GetRun(ctx, runID)
	if err != nil {
		return err
	}
	if run == nil {
		return fmt.Errorf("run not found: %s", id)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Run:       %s\n", run.ID)
	_, _ = fmt.Fprintf(os.Stdout, "Candidate: %s\n", run.Candidate)
	_, _ = fmt.Fprintf(os.Stdout, "Job:       %s (%s)\n", run.JobTitle, run.Sector)
	_, _ = fmt.Fprintf(os.Stdout, "Status:    %s\n", run.Status)

	content, err := database.GetArtifact(ctx, runID, db.StepCurationResult)
	if err != nil {
		return err
	}
	if content != nil {
		_, _ = fmt.Fprintln(os.Stdout, string(content))
	}

	return nil
}
