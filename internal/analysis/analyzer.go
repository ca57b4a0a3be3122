// Package analysis provides the heuristic metadata analyzer that attaches
// recency, impact, keyword, and sector features to extracted content items.
package analysis

import (
	"github.com/jonathan/cv-curator/internal/types"
)

// Lexicon holds the keyword dictionaries the analyzer matches against.
// The tables are plain data so tests and callers can substitute their own.
type Lexicon struct {
	StopWords        []string
	AchievementVerbs []string
	Sectors          map[string][]string
}

// DefaultLexicon returns the built-in dictionaries
func DefaultLexicon() Lexicon {
	stopWords := make([]string, 0, len(defaultStopWords))
	for w := range defaultStopWords {
		stopWords = append(stopWords, w)
	}
	return Lexicon{
		StopWords:        stopWords,
		AchievementVerbs: defaultAchievementVerbs,
		Sectors:          defaultSectorKeywords,
	}
}

// Analyzer computes content metadata from its configured dictionaries.
// A zero-value Analyzer is not usable; construct with NewAnalyzer.
type Analyzer struct {
	stopWords        map[string]bool
	achievementVerbs []string
	sectorKeywords   map[string][]string
	sectorOrder      []string
}

// NewAnalyzer creates an analyzer over the given lexicon. Empty lexicon
// tables fall back to the defaults.
func NewAnalyzer(lexicon Lexicon) *Analyzer {
	a := &Analyzer{
		stopWords:        defaultStopWords,
		achievementVerbs: defaultAchievementVerbs,
		sectorKeywords:   defaultSectorKeywords,
		sectorOrder:      defaultSectorOrder,
	}

	if len(lexicon.StopWords) > 0 {
		a.stopWords = make(map[string]bool, len(lexicon.StopWords))
		for _, w := range lexicon.StopWords {
			a.stopWords[w] = true
		}
	}
	if len(lexicon.AchievementVerbs) > 0 {
		a.achievementVerbs = lexicon.AchievementVerbs
	}
	if len(lexicon.Sectors) > 0 {
		a.sectorKeywords = lexicon.Sectors
		a.sectorOrder = sortedSectorNames(lexicon.Sectors)
	}

	return a
}

// AnalyzeContent computes the metadata record for a piece of content.
// Recency defaults to the neutral 0.5; extraction overrides it where the
// source entry carries dates.
func (a *Analyzer) AnalyzeContent(content string, contentType types.ContentType) types.ContentMetadata {
	keywords := a.ExtractKeywords(content)

	return types.ContentMetadata{
		Recency:  defaultRecency,
		Impact:   a.AnalyzeImpact(content, contentType),
		Length:   len(content),
		Keywords: keywords,
		Sectors:  a.IdentifySectors(content, keywords),
	}
}
