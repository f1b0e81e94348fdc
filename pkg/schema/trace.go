package schema

import "time"

// TraceabilityEntry links one generated test case back to the requirement it
// came from. One entry exists per TestCaseRecord, keyed by the traceability ID.
type TraceabilityEntry struct {
	TraceID         string    `json:"traceability_id" yaml:"traceability_id"`
	Source          string    `json:"requirement_source" yaml:"requirement_source"`
	RequirementText string    `json:"requirement_text" yaml:"requirement_text"`
	TestCaseID      string    `json:"test_case_id" yaml:"test_case_id"`
	Compliance      []string  `json:"regulatory_compliance" yaml:"regulatory_compliance"`
	CreatedAt       time.Time `json:"created_at" yaml:"created_at"`
}

// TraceabilityReport aggregates a session's ledger and generated test list.
type TraceabilityReport struct {
	GeneratedAt        time.Time           `json:"generated_at" yaml:"generated_at"`
	RequirementSources int                 `json:"requirement_sources" yaml:"requirement_sources"`
	TotalTestCases     int                 `json:"total_test_cases" yaml:"total_test_cases"`
	Matrix             []TraceabilityEntry `json:"traceability_matrix" yaml:"traceability_matrix"`
	ComplianceCoverage map[string]int      `json:"compliance_coverage" yaml:"compliance_coverage"`
	RiskDistribution   map[RiskLevel]int   `json:"risk_distribution" yaml:"risk_distribution"`
}
