package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-curator/internal/curation"
	"github.com/jonathan/cv-curator/internal/cvdata"
	"github.com/jonathan/cv-curator/internal/observability"
	"github.com/jonathan/cv-curator/internal/parsing"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze CV content against a target job without curating",
	Long:  "Extracts content items, analyzes their metadata, and clusters them against the job context, producing a ContentAnalysis JSON. No selection decisions are made.",
	RunE:  runAnalyze,
}

var (
	analyzeCV     string
	analyzeJob    string
	analyzeOutput string
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeCV, "cv", "c", "", "Path to structured CV JSON file (required)")
	analyzeCmd.Flags().StringVarP(&analyzeJob, "job", "j", "", "Path to job context JSON file (required)")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "out", "o", "", "Path to output ContentAnalysis JSON file (optional)")

	if err := analyzeCmd.MarkFlagRequired("cv"); err != nil {
		panic(fmt.Sprintf("failed to mark cv flag as required: %v", err))
	}
	if err := analyzeCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	cv, err := cvdata.LoadCVData(analyzeCV)
	if err != nil {
		return fmt.Errorf("failed to load cv: %w", err)
	}
	if err := cvdata.NormalizeCVData(cv); err != nil {
		return fmt.Errorf("failed to normalize cv: %w", err)
	}

	job, err := parsing.LoadJobContext(analyzeJob)
	if err != nil {
		return fmt.Errorf("failed to load job context: %w", err)
	}

	curator := curation.NewCurator(curation.Config{})
	analysis := curator.AnalyzeCV(cv, job)

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintJobContext(job)
	printer.PrintAnalysis(analysis)

	if analyzeOutput == "" {
		return nil
	}

	jsonOutput, err := json.MarshalIndent(analysis, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal analysis to JSON: %w", err)
	}

	outputDir := filepath.Dir(analyzeOutput)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}

	if err := os.WriteFile(analyzeOutput, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write analysis to output file %s: %w", analyzeOutput, err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Wrote analysis of %d content items to %s\n",
		analysis.Summary.TotalItems, analyzeOutput)

	return nil
}
