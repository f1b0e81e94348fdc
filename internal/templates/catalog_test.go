package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aura/internal/lexicon"
	"aura/pkg/schema"
)

func TestTemplateRiskMirrorsPriority(t *testing.T) {
	entities := lexicon.Entities{Regulatory: []string{"HIPAA Security Rule"}}

	tests := []struct {
		name     string
		build    func(lexicon.Entities) schema.TestCaseTemplate
		priority schema.Priority
		risk     schema.RiskLevel
		testType schema.TestType
	}{
		{"authentication", authenticationTemplate, schema.PriorityHigh, schema.RiskHigh, schema.TestTypeSecurity},
		{"patient_data", patientDataTemplate, schema.PriorityCritical, schema.RiskCritical, schema.TestTypeFunctional},
		{"compliance", complianceTemplate, schema.PriorityHigh, schema.RiskHigh, schema.TestTypeCompliance},
		{"default", defaultTemplate, schema.PriorityMedium, schema.RiskMedium, schema.TestTypeFunctional},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl := tt.build(entities)
			assert.Equal(t, tt.priority, tmpl.Priority)
			assert.Equal(t, tt.risk, tmpl.RiskLevel)
			assert.Equal(t, tt.testType, tmpl.Type)
		})
	}
}

func TestTemplatesAreValid(t *testing.T) {
	entities := lexicon.Entities{Regulatory: []string{"HIPAA Security Rule"}}

	builders := []func(lexicon.Entities) schema.TestCaseTemplate{
		authenticationTemplate,
		patientDataTemplate,
		complianceTemplate,
		defaultTemplate,
	}

	for _, build := range builders {
		tmpl := build(entities)
		require.NoError(t, schema.ValidateTemplate(&tmpl), "template %s", tmpl.Kind)
	}
}

func TestTemplateStepsAreNumberedSequentially(t *testing.T) {
	tmpl := authenticationTemplate(lexicon.Entities{})

	require.NotEmpty(t, tmpl.Steps)
	for i, step := range tmpl.Steps {
		assert.Equal(t, i+1, step.Number)
		assert.NotEmpty(t, step.Action)
		assert.NotEmpty(t, step.Expected)
	}
}

func TestTemplateComplianceListsAreIndependentCopies(t *testing.T) {
	entities := lexicon.Entities{Regulatory: []string{"HIPAA Security Rule"}}

	first := complianceTemplate(entities)
	first.Compliance[0] = "mutated"

	second := complianceTemplate(entities)
	assert.Equal(t, []string{"HIPAA Security Rule"}, second.Compliance)
}
