package schema

// Priority represents the test case priority level.
type Priority string

const (
	PriorityCritical Priority = "critical" // Blocking defect territory, run first
	PriorityHigh     Priority = "high"     // Core safety or security behavior
	PriorityMedium   Priority = "medium"   // Standard functional coverage
	PriorityLow      Priority = "low"      // Nice to have
)

// RiskLevel mirrors the priority domain and classifies the impact of a failure.
type RiskLevel string

const (
	RiskCritical RiskLevel = "critical"
	RiskHigh     RiskLevel = "high"
	RiskMedium   RiskLevel = "medium"
	RiskLow      RiskLevel = "low"
)

// TestType classifies what a test case exercises.
type TestType string

const (
	TestTypeSecurity   TestType = "security"
	TestTypeFunctional TestType = "functional"
	TestTypeCompliance TestType = "compliance"
)

// TemplateKind identifies one of the four canned test case templates.
type TemplateKind string

const (
	KindAuthentication TemplateKind = "authentication"
	KindPatientData    TemplateKind = "patient_data"
	KindCompliance     TemplateKind = "compliance"
	KindDefault        TemplateKind = "default"
)

// ValidationLimits defines the constraints for various fields.
const (
	RequirementHashLen = 8
	TitleMin           = 1
	TitleMax           = 200
	StepActionMax      = 500
	StepExpectedMax    = 500
	StepsMin           = 1
	StepsMax           = 20
	SourceLabelMax     = 100
)
