// Package templates holds the four canned test case variants and the rules
// that decide which of them a requirement produces.
package templates

import (
	"aura/internal/lexicon"
	"aura/pkg/schema"
)

// patientDataCompliance is a fixed policy: patient data test cases always cite
// these two standards, regardless of what the requirement text mentions.
var patientDataCompliance = []string{
	"HIPAA Security Rule",
	"FDA 21 CFR Part 820",
}

func authenticationTemplate(e lexicon.Entities) schema.TestCaseTemplate {
	return schema.TestCaseTemplate{
		Kind:     schema.KindAuthentication,
		Title:    "Verify user authentication and access control",
		Priority: schema.PriorityHigh,
		Type:     schema.TestTypeSecurity,
		Steps: []schema.TestStep{
			{Number: 1, Action: "Navigate to the application login page", Expected: "Login page loads with credential entry fields"},
			{Number: 2, Action: "Enter valid provider credentials and submit", Expected: "User is authenticated and redirected to the dashboard"},
			{Number: 3, Action: "Enter invalid credentials and submit", Expected: "Access is denied with a generic failure message"},
			{Number: 4, Action: "Repeat invalid login attempts past the lockout threshold", Expected: "Account is locked and a security event is written to the audit log"},
			{Number: 5, Action: "Attempt to reach a protected page without an active session", Expected: "User is redirected to the login page"},
		},
		TestData: []string{
			"Valid provider account with assigned role",
			"Invalid credential pairs",
			"Account at the lockout threshold",
		},
		Compliance: append([]string(nil), e.Regulatory...),
		RiskLevel:  schema.RiskHigh,
	}
}

func patientDataTemplate(_ lexicon.Entities) schema.TestCaseTemplate {
	return schema.TestCaseTemplate{
		Kind:     schema.KindPatientData,
		Title:    "Verify patient data handling and privacy safeguards",
		Priority: schema.PriorityCritical,
		Type:     schema.TestTypeFunctional,
		Steps: []schema.TestStep{
			{Number: 1, Action: "Create a patient record with complete demographic data", Expected: "Record is saved and assigned a medical record number"},
			{Number: 2, Action: "Retrieve the record as an authorized clinician", Expected: "Full record is displayed with PHI visible"},
			{Number: 3, Action: "Retrieve the record as a user without clinical privileges", Expected: "PHI fields are masked or access is denied"},
			{Number: 4, Action: "Update a demographic field and save", Expected: "Change is persisted and the previous value is retained in history"},
			{Number: 5, Action: "Review the access audit trail for the record", Expected: "Every read and write is logged with user, action, and timestamp"},
		},
		TestData: []string{
			"Synthetic patient demographics",
			"Authorized clinician account",
			"Non-clinical user account",
		},
		Compliance: append([]string(nil), patientDataCompliance...),
		RiskLevel:  schema.RiskCritical,
	}
}

func complianceTemplate(e lexicon.Entities) schema.TestCaseTemplate {
	return schema.TestCaseTemplate{
		Kind:     schema.KindCompliance,
		Title:    "Verify regulatory compliance requirements",
		Priority: schema.PriorityHigh,
		Type:     schema.TestTypeCompliance,
		Steps: []schema.TestStep{
			{Number: 1, Action: "Review data handling paths against each cited standard", Expected: "Every path maps to a documented control"},
			{Number: 2, Action: "Verify protected data is encrypted in transit and at rest", Expected: "Encryption meets the cited standard's requirements"},
			{Number: 3, Action: "Verify audit trail completeness for regulated operations", Expected: "All regulated operations produce immutable audit entries"},
			{Number: 4, Action: "Verify data retention and disposal behavior", Expected: "Retention periods and disposal match the cited standard"},
		},
		TestData: []string{
			"Compliance control checklist for each cited standard",
			"Sample regulated transactions",
		},
		Compliance: append([]string(nil), e.Regulatory...),
		RiskLevel:  schema.RiskHigh,
	}
}

func defaultTemplate(_ lexicon.Entities) schema.TestCaseTemplate {
	return schema.TestCaseTemplate{
		Kind:     schema.KindDefault,
		Title:    "Verify requirement implementation",
		Priority: schema.PriorityMedium,
		Type:     schema.TestTypeFunctional,
		Steps: []schema.TestStep{
			{Number: 1, Action: "Review the requirement and identify the primary flow", Expected: "Primary flow and expected outcome are identified"},
			{Number: 2, Action: "Execute the primary flow with representative input", Expected: "System behaves as the requirement describes"},
			{Number: 3, Action: "Execute the flow with boundary and invalid input", Expected: "System handles edge cases without data loss"},
			{Number: 4, Action: "Record actual results against expected results", Expected: "Results are captured for the traceability record"},
		},
		TestData: []string{
			"Representative input data",
			"Boundary and invalid input samples",
		},
		Compliance: []string{},
		RiskLevel:  schema.RiskMedium,
	}
}
