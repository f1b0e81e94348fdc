// Package lexicon scans requirement text against fixed healthcare reference
// tables. It is the deterministic stand-in for a language-model entity pass.
package lexicon

import (
	"regexp"
	"sort"
	"strings"
)

// Entities holds the deduplicated matches per category for one requirement.
// Ephemeral: created per requirement and consumed by the template selector.
type Entities struct {
	Keywords     []string
	Regulatory   []string // expanded to full standard names
	ActionVerbs  []string
	DataElements []string
}

// Extractor matches requirement text against the fixed lexical tables.
// Patterns are compiled once; safe for reuse across requirements.
type Extractor struct {
	verbs    []wordPattern
	elements []wordPattern
}

type wordPattern struct {
	term    string
	pattern *regexp.Regexp
}

// NewExtractor compiles the whole-word patterns for verbs and data elements.
func NewExtractor() *Extractor {
	return &Extractor{
		verbs:    compileWordPatterns(actionVerbs),
		elements: compileWordPatterns(dataElements),
	}
}

func compileWordPatterns(terms []string) []wordPattern {
	patterns := make([]wordPattern, 0, len(terms))
	for _, term := range terms {
		p := regexp.MustCompile(`\b` + regexp.QuoteMeta(strings.ToLower(term)) + `\b`)
		patterns = append(patterns, wordPattern{term: strings.ToLower(term), pattern: p})
	}
	return patterns
}

// Extract scans the requirement text. Matching is case-insensitive: keywords
// and regulatory abbreviations by substring, verbs and data elements by word
// boundary. Empty input yields all-empty categories; there are no error
// conditions.
func (e *Extractor) Extract(text string) Entities {
	lower := strings.ToLower(text)

	entities := Entities{
		Keywords:     matchSubstrings(lower, healthcareKeywords),
		Regulatory:   matchStandards(lower),
		ActionVerbs:  matchWords(lower, e.verbs),
		DataElements: matchWords(lower, e.elements),
	}
	return entities
}

func matchSubstrings(lower string, terms []string) []string {
	var matches []string
	for _, term := range terms {
		if strings.Contains(lower, term) {
			matches = append(matches, term)
		}
	}
	sort.Strings(matches)
	return matches
}

func matchStandards(lower string) []string {
	seen := make(map[string]bool)
	var matches []string
	for abbrev, full := range regulatoryStandards {
		if strings.Contains(lower, strings.ToLower(abbrev)) && !seen[full] {
			seen[full] = true
			matches = append(matches, full)
		}
	}
	sort.Strings(matches)
	return matches
}

func matchWords(lower string, patterns []wordPattern) []string {
	var matches []string
	for _, wp := range patterns {
		if wp.pattern.MatchString(lower) {
			matches = append(matches, wp.term)
		}
	}
	sort.Strings(matches)
	return matches
}
