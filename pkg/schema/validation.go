package schema

import (
	"fmt"
	"regexp"
)

var (
	testCaseIDPattern = regexp.MustCompile(`^TC_[0-9a-f]{8}_[0-9]{3}$`)
	traceIDPattern    = regexp.MustCompile(`^REQ_[0-9a-f]{8}_TEST_[1-9][0-9]*$`)
)

// ValidatePriority checks that a priority is one of the known levels.
func ValidatePriority(p Priority) error {
	switch p {
	case PriorityCritical, PriorityHigh, PriorityMedium, PriorityLow:
		return nil
	}
	return fmt.Errorf("invalid priority: %s", p)
}

// ValidateRiskLevel checks that a risk level is one of the known levels.
func ValidateRiskLevel(r RiskLevel) error {
	switch r {
	case RiskCritical, RiskHigh, RiskMedium, RiskLow:
		return nil
	}
	return fmt.Errorf("invalid risk level: %s", r)
}

// ValidateTestType checks that a test type is one of the known types.
func ValidateTestType(t TestType) error {
	switch t {
	case TestTypeSecurity, TestTypeFunctional, TestTypeCompliance:
		return nil
	}
	return fmt.Errorf("invalid test type: %s", t)
}

// ValidateTemplate validates a filled test case template.
func ValidateTemplate(t *TestCaseTemplate) error {
	switch t.Kind {
	case KindAuthentication, KindPatientData, KindCompliance, KindDefault:
		// Valid
	default:
		return fmt.Errorf("invalid template kind: %s", t.Kind)
	}

	if len(t.Title) < TitleMin || len(t.Title) > TitleMax {
		return fmt.Errorf("title must be %d-%d characters", TitleMin, TitleMax)
	}

	if err := ValidatePriority(t.Priority); err != nil {
		return err
	}
	if err := ValidateTestType(t.Type); err != nil {
		return err
	}
	if err := ValidateRiskLevel(t.RiskLevel); err != nil {
		return err
	}

	if len(t.Steps) < StepsMin || len(t.Steps) > StepsMax {
		return fmt.Errorf("must have %d-%d steps", StepsMin, StepsMax)
	}
	for i, step := range t.Steps {
		if step.Number != i+1 {
			return fmt.Errorf("steps[%d]: number must be %d, got %d", i, i+1, step.Number)
		}
		if step.Action == "" || len(step.Action) > StepActionMax {
			return fmt.Errorf("steps[%d]: action must be 1-%d characters", i, StepActionMax)
		}
		if step.Expected == "" || len(step.Expected) > StepExpectedMax {
			return fmt.Errorf("steps[%d]: expected result must be 1-%d characters", i, StepExpectedMax)
		}
	}

	return nil
}

// ValidateRecord validates a finalized test case record.
func ValidateRecord(r *TestCaseRecord) error {
	if !testCaseIDPattern.MatchString(r.ID) {
		return fmt.Errorf("invalid test case ID: %s", r.ID)
	}
	if !traceIDPattern.MatchString(r.TraceID) {
		return fmt.Errorf("invalid traceability ID: %s", r.TraceID)
	}
	if len(r.RequirementHash) != RequirementHashLen {
		return fmt.Errorf("requirement hash must be %d characters", RequirementHashLen)
	}
	if r.CreatedAt.IsZero() {
		return fmt.Errorf("created_at must be set")
	}

	tmpl := TestCaseTemplate{
		Kind:       r.Kind,
		Title:      r.Title,
		Priority:   r.Priority,
		Type:       r.Type,
		Steps:      r.Steps,
		TestData:   r.TestData,
		Compliance: r.Compliance,
		RiskLevel:  r.RiskLevel,
	}
	return ValidateTemplate(&tmpl)
}
