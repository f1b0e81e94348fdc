package schema

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"gopkg.in/yaml.v3"
)

func TestRequirementHashDeterminism(t *testing.T) {
	text := "The system must authenticate healthcare providers before granting access"

	first := RequirementHash(text)
	second := RequirementHash(text)

	if first != second {
		t.Errorf("hash not deterministic: %s vs %s", first, second)
	}
	if len(first) != RequirementHashLen {
		t.Errorf("hash should be %d characters, got %d", RequirementHashLen, len(first))
	}

	other := RequirementHash(text + ".")
	if other == first {
		t.Error("different texts should produce different hashes")
	}
}

func TestIDFormats(t *testing.T) {
	hash := RequirementHash("patient record access must be audited per HIPAA")

	tcID := TestCaseID(hash, 1)
	if !strings.HasPrefix(tcID, "TC_"+hash+"_") {
		t.Errorf("test case ID should start with TC_%s_, got %s", hash, tcID)
	}
	if tcID != "TC_"+hash+"_001" {
		t.Errorf("sequence should be zero-padded to 3 digits, got %s", tcID)
	}
	if got := TestCaseID(hash, 12); !strings.HasSuffix(got, "_012") {
		t.Errorf("sequence 12 should render as 012, got %s", got)
	}

	traceID := TraceabilityID(hash, 2)
	if traceID != "REQ_"+hash+"_TEST_2" {
		t.Errorf("unexpected traceability ID: %s", traceID)
	}
}

func TestSessionIDGeneration(t *testing.T) {
	id, err := NewSessionID()
	if err != nil {
		t.Fatalf("Failed to generate session ID: %v", err)
	}
	if !strings.HasPrefix(id, "SES-") {
		t.Errorf("session ID should start with SES-, got %s", id)
	}
	if len(strings.TrimPrefix(id, "SES-")) != 10 {
		t.Errorf("nanoid portion should be 10 characters")
	}
}

func TestBatchIDIsULID(t *testing.T) {
	id := NewBatchID()
	if _, err := ulid.Parse(id); err != nil {
		t.Errorf("batch ID should parse as ULID: %v", err)
	}
}

func validTemplate() TestCaseTemplate {
	return TestCaseTemplate{
		Kind:     KindDefault,
		Title:    "Verify requirement implementation",
		Priority: PriorityMedium,
		Type:     TestTypeFunctional,
		Steps: []TestStep{
			{Number: 1, Action: "Execute the primary flow", Expected: "Flow completes"},
			{Number: 2, Action: "Check the outcome", Expected: "Outcome matches the requirement"},
		},
		TestData:  []string{"Representative input data"},
		RiskLevel: RiskMedium,
	}
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*TestCaseTemplate)
		wantErr bool
	}{
		{name: "valid template", mutate: func(*TestCaseTemplate) {}, wantErr: false},
		{name: "bad kind", mutate: func(tm *TestCaseTemplate) { tm.Kind = "bogus" }, wantErr: true},
		{name: "empty title", mutate: func(tm *TestCaseTemplate) { tm.Title = "" }, wantErr: true},
		{name: "bad priority", mutate: func(tm *TestCaseTemplate) { tm.Priority = "urgent" }, wantErr: true},
		{name: "bad type", mutate: func(tm *TestCaseTemplate) { tm.Type = "smoke" }, wantErr: true},
		{name: "bad risk", mutate: func(tm *TestCaseTemplate) { tm.RiskLevel = "severe" }, wantErr: true},
		{name: "no steps", mutate: func(tm *TestCaseTemplate) { tm.Steps = nil }, wantErr: true},
		{
			name:    "misnumbered steps",
			mutate:  func(tm *TestCaseTemplate) { tm.Steps[1].Number = 5 },
			wantErr: true,
		},
		{
			name:    "empty step action",
			mutate:  func(tm *TestCaseTemplate) { tm.Steps[0].Action = "" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl := validTemplate()
			tt.mutate(&tmpl)
			err := ValidateTemplate(&tmpl)
			if (err != nil) != tt.wantErr {
				t.Errorf("validation error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateRecord(t *testing.T) {
	hash := RequirementHash("nurses must verify medication orders")
	tmpl := validTemplate()

	record := TestCaseRecord{
		ID:              TestCaseID(hash, 1),
		TraceID:         TraceabilityID(hash, 1),
		RequirementHash: hash,
		Kind:            tmpl.Kind,
		Title:           tmpl.Title,
		Priority:        tmpl.Priority,
		Type:            tmpl.Type,
		Steps:           tmpl.Steps,
		TestData:        tmpl.TestData,
		Compliance:      tmpl.Compliance,
		RiskLevel:       tmpl.RiskLevel,
		CreatedAt:       time.Now().UTC(),
	}

	if err := ValidateRecord(&record); err != nil {
		t.Errorf("valid record should pass: %v", err)
	}

	bad := record
	bad.ID = "TC_zzzz_1"
	if err := ValidateRecord(&bad); err == nil {
		t.Error("malformed test case ID should fail validation")
	}

	stale := record
	stale.CreatedAt = time.Time{}
	if err := ValidateRecord(&stale); err == nil {
		t.Error("zero created_at should fail validation")
	}
}

func TestRecordMarshaling(t *testing.T) {
	hash := RequirementHash("the system shall encrypt PHI at rest")
	record := TestCaseRecord{
		ID:              TestCaseID(hash, 1),
		TraceID:         TraceabilityID(hash, 1),
		RequirementHash: hash,
		Kind:            KindCompliance,
		Title:           "Verify regulatory compliance requirements",
		Priority:        PriorityHigh,
		Type:            TestTypeCompliance,
		Steps: []TestStep{
			{Number: 1, Action: "Review encryption configuration", Expected: "PHI is encrypted at rest"},
		},
		Compliance: []string{"HIPAA Security Rule"},
		RiskLevel:  RiskHigh,
		CreatedAt:  time.Now().UTC(),
	}

	jsonData, err := json.Marshal(record)
	if err != nil {
		t.Fatalf("Failed to marshal record to JSON: %v", err)
	}
	jsonStr := string(jsonData)
	for _, field := range []string{"test_case_id", "traceability_id", "regulatory_compliance", "risk_level"} {
		if !strings.Contains(jsonStr, field) {
			t.Errorf("JSON should contain %s field", field)
		}
	}

	yamlData, err := yaml.Marshal(record)
	if err != nil {
		t.Fatalf("Failed to marshal record to YAML: %v", err)
	}

	var decoded TestCaseRecord
	if err := yaml.Unmarshal(yamlData, &decoded); err != nil {
		t.Fatalf("Failed to unmarshal record from YAML: %v", err)
	}
	if decoded.ID != record.ID {
		t.Errorf("ID mismatch after YAML round trip: got %s, want %s", decoded.ID, record.ID)
	}
	if decoded.RiskLevel != record.RiskLevel {
		t.Errorf("RiskLevel mismatch: got %s, want %s", decoded.RiskLevel, record.RiskLevel)
	}
}
