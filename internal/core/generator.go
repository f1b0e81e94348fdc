package core

import (
	"aura/pkg/schema"
)

// Generator runs the requirement-to-test-case pipeline and accumulates
// results in its session. All inputs, including empty text, produce at least
// one record; there are no error conditions in the pipeline itself.
type Generator struct {
	analyzer Analyzer
	session  *Session
	logger   Logger
}

// NewGenerator creates a generator around an analyzer and session.
func NewGenerator(analyzer Analyzer, session *Session, logger Logger) *Generator {
	return &Generator{
		analyzer: analyzer,
		session:  session,
		logger:   logger,
	}
}

// NewDefaultGenerator wires the rule-based analyzer with a fresh session.
func NewDefaultGenerator(logger Logger) (*Generator, error) {
	session, err := NewSession()
	if err != nil {
		return nil, err
	}
	return NewGenerator(NewRuleAnalyzer(), session, logger), nil
}

// Process generates test cases for one requirement and appends them, with
// their traceability entries, to the session. Returns the records produced by
// this call, in template selection order.
func (g *Generator) Process(text, source string) []schema.TestCaseRecord {
	tmpls := g.analyzer.Analyze(text)
	records := BuildRecords(text, tmpls)
	g.session.Append(source, text, records)

	g.logger.Info("requirement processed",
		"source", source,
		"requirement_hash", schema.RequirementHash(text),
		"test_cases", len(records),
	)
	return records
}

// Session returns the generator's session for export and reporting.
func (g *Generator) Session() *Session {
	return g.session
}
