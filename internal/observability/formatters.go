// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/cv-curator/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintJobContext outputs a human-readable summary of the target job.
func (p *Printer) PrintJobContext(job *types.JobContext) {
	if job == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Title:    %s\n", job.Title))
	sb.WriteString(fmt.Sprintf("Sector:   %s\n", job.Sector))
	if job.Organization.Name != "" {
		sb.WriteString(fmt.Sprintf("Org:      %s\n", job.Organization.Name))
	}
	if job.ExperienceLevel != "" {
		sb.WriteString(fmt.Sprintf("Level:    %s\n", job.ExperienceLevel))
	}
	sb.WriteString("\n")

	if len(job.RequiredSkills) > 0 {
		sb.WriteString("Required Skills:\n")
		count := min(len(job.RequiredSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", job.RequiredSkills[i]))
		}
		if len(job.RequiredSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(job.RequiredSkills)-maxItemsToShow))
		}
	}

	p.printBox("TARGET JOB", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAnalysis outputs cluster relevance and aggregate content statistics.
func (p *Printer) PrintAnalysis(analysis *types.ContentAnalysis) {
	if analysis == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Content items: %d\n", analysis.Summary.TotalItems))
	sb.WriteString(fmt.Sprintf("Avg quality:   %.2f\n", analysis.Summary.AverageQuality))
	sb.WriteString("\n")

	if len(analysis.Clusters) > 0 {
		sb.WriteString("Clusters:\n")
		for _, cluster := range analysis.Clusters {
			sb.WriteString(fmt.Sprintf("  %-16s %2d items  rel %.2f\n",
				cluster.Theme, len(cluster.ContentIDs), cluster.JobRelevance))
		}
	}

	if len(analysis.Summary.GapAreas) > 0 {
		sb.WriteString("\nGaps:\n")
		for _, gap := range analysis.Summary.GapAreas {
			sb.WriteString(fmt.Sprintf("  • %s\n", gap))
		}
	}

	p.printBox("CONTENT ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRankedContent outputs the top N ranked content items with scores.
func (p *Printer) PrintRankedContent(ranked []types.RankedContentItem) {
	if len(ranked) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total items ranked: %d\n\n", len(ranked)))

	count := min(len(ranked), maxItemsToShow)
	for i := 0; i < count; i++ {
		item := ranked[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, item.Item.ID))
		sb.WriteString(fmt.Sprintf("    Score: %.2f  Priority: %s\n",
			item.FinalRankingScore, item.Priority))
		text := item.Item.Content
		if len(text) > 45 {
			text = text[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("    %s\n", text))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(ranked) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more items", len(ranked)-maxItemsToShow))
	}

	p.printBox("TOP RANKED CONTENT", sb.String())
}

// PrintCurationResult outputs the run summary with selection statistics,
// budget usage, and recommendations.
func (p *Printer) PrintCurationResult(result *types.CurationResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Strategy:  %s\n", result.Strategy.Name))
	sb.WriteString(fmt.Sprintf("Selected:  %d of %d items\n",
		result.Summary.SelectedItems, result.Summary.OriginalItems))
	sb.WriteString(fmt.Sprintf("Length:    %d / %d chars\n",
		result.Summary.EstimatedLength, result.Strategy.Constraints.MaxCharacters))
	sb.WriteString(fmt.Sprintf("Coverage:  %.0f%%\n", result.Summary.RequirementsCoverage*100))

	if len(result.Recommendations) > 0 {
		sb.WriteString("\nRecommendations:\n")
		for _, rec := range result.Recommendations {
			sb.WriteString(fmt.Sprintf("⚠ %s\n", rec))
		}
	}

	p.printBox("CURATION RESULT", strings.TrimSuffix(sb.String(), "\n"))
}
