// Package analysis provides the heuristic metadata analyzer that attaches
// recency, impact, keyword, and sector features to extracted content items.
package analysis

import (
	"strings"
	"unicode"
)

// minKeywordLength is the shortest token kept as a keyword
const minKeywordLength = 3

// defaultStopWords is the fixed English stop-word set dropped during
// keyword extraction
var defaultStopWords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true, "but": true,
	"in": true, "on": true, "at": true, "to": true, "for": true, "of": true,
	"with": true, "by": true, "is": true, "are": true, "was": true,
	"were": true, "be": true, "been": true, "being": true, "have": true,
	"has": true, "had": true, "do": true, "does": true, "did": true,
	"will": true, "would": true, "could": true, "should": true, "may": true,
	"might": true, "must": true, "can": true, "shall": true,
}

// ExtractKeywords lowercases the content, strips punctuation other than
// hyphens and periods, splits on whitespace, and returns the deduplicated
// tokens longer than two characters that are not stop words.
// Order is first-seen, which keeps downstream top-N picks deterministic.
func (a *Analyzer) ExtractKeywords(content string) []string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-' || r == '.' {
			return unicode.ToLower(r)
		}
		return ' '
	}, content)

	seen := make(map[string]bool)
	keywords := make([]string, 0)
	for _, word := range strings.Fields(cleaned) {
		if len(word) < minKeywordLength || a.stopWords[word] || seen[word] {
			continue
		}
		seen[word] = true
		keywords = append(keywords, word)
	}

	return keywords
}
