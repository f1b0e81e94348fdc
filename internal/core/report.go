package core

import (
	"time"

	"aura/pkg/schema"
)

// BuildReport aggregates a session's ledger and test case list into the
// traceability report: distinct requirement sources, totals, the full ledger
// dump, and the compliance and risk histograms.
func BuildReport(s *Session) *schema.TraceabilityReport {
	records := s.Records()
	matrix := s.Ledger()

	sources := make(map[string]bool)
	for _, entry := range matrix {
		sources[entry.Source] = true
	}

	coverage := make(map[string]int)
	risk := make(map[schema.RiskLevel]int)
	for _, record := range records {
		for _, standard := range record.Compliance {
			coverage[standard]++
		}
		risk[record.RiskLevel]++
	}

	return &schema.TraceabilityReport{
		GeneratedAt:        time.Now().UTC(),
		RequirementSources: len(sources),
		TotalTestCases:     len(records),
		Matrix:             matrix,
		ComplianceCoverage: coverage,
		RiskDistribution:   risk,
	}
}
