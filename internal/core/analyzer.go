package core

import (
	"aura/internal/lexicon"
	"aura/internal/templates"
	"aura/pkg/schema"
)

// Analyzer turns requirement text into filled test case templates. The
// interface exists so the generator can be tested with canned selections.
type Analyzer interface {
	Analyze(text string) []schema.TestCaseTemplate
}

// RuleAnalyzer is the production analyzer: fixed-table entity extraction
// followed by rule-based template selection. It stands in for a model call
// and is fully deterministic.
type RuleAnalyzer struct {
	extractor *lexicon.Extractor
}

// NewRuleAnalyzer creates an analyzer with the compiled lexical tables.
func NewRuleAnalyzer() *RuleAnalyzer {
	return &RuleAnalyzer{extractor: lexicon.NewExtractor()}
}

// Analyze extracts entities and selects templates. Never returns an empty
// slice: the default template fires when no rule matches.
func (a *RuleAnalyzer) Analyze(text string) []schema.TestCaseTemplate {
	entities := a.extractor.Extract(text)
	return templates.Select(entities)
}

// MockAnalyzer implements Analyzer for testing with canned templates.
type MockAnalyzer struct {
	Templates []schema.TestCaseTemplate
	Calls     int
}

func (m *MockAnalyzer) Analyze(text string) []schema.TestCaseTemplate {
	m.Calls++
	return m.Templates
}
