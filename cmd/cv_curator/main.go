// Package main provides the cv_curator CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cv_curator",
	Short: "Content curation engine for CVs",
	Long:  "cv_curator selects and prioritizes CV content against a target job description under hard budget constraints, producing a curation result for downstream rendering.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
