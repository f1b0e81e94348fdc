package schema

import "time"

// TestStep is a single numbered action/expectation pair within a test case.
type TestStep struct {
	Number   int    `json:"step_number" yaml:"step_number"`
	Action   string `json:"action" yaml:"action" jsonschema:"maxLength=500"`
	Expected string `json:"expected_result" yaml:"expected_result" jsonschema:"maxLength=500"`
}

// TestCaseTemplate is one of the four canned test case variants. All content is
// fixed at compile time except Compliance and RiskLevel, which the selector
// fills from the extraction result.
type TestCaseTemplate struct {
	Kind       TemplateKind `json:"kind" yaml:"kind"`
	Title      string       `json:"title" yaml:"title"`
	Priority   Priority     `json:"priority" yaml:"priority" jsonschema:"enum=critical,enum=high,enum=medium,enum=low"`
	Type       TestType     `json:"type" yaml:"type" jsonschema:"enum=security,enum=functional,enum=compliance"`
	Steps      []TestStep   `json:"steps" yaml:"steps" jsonschema:"minItems=1,maxItems=20"`
	TestData   []string     `json:"test_data" yaml:"test_data"`
	Compliance []string     `json:"regulatory_compliance" yaml:"regulatory_compliance"`
	RiskLevel  RiskLevel    `json:"risk_level" yaml:"risk_level"`
}

// TestCaseRecord is a finalized template instance. Never mutated after
// construction; the session's generated-test list owns it.
type TestCaseRecord struct {
	ID              string       `json:"test_case_id" yaml:"test_case_id"`
	TraceID         string       `json:"traceability_id" yaml:"traceability_id"`
	RequirementHash string       `json:"requirement_hash" yaml:"requirement_hash"`
	Kind            TemplateKind `json:"kind" yaml:"kind"`
	Title           string       `json:"title" yaml:"title"`
	Priority        Priority     `json:"priority" yaml:"priority"`
	Type            TestType     `json:"type" yaml:"type"`
	Steps           []TestStep   `json:"steps" yaml:"steps"`
	TestData        []string     `json:"test_data" yaml:"test_data"`
	Compliance      []string     `json:"regulatory_compliance" yaml:"regulatory_compliance"`
	RiskLevel       RiskLevel    `json:"risk_level" yaml:"risk_level"`
	CreatedAt       time.Time    `json:"created_at" yaml:"created_at"`
}
