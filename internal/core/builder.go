package core

import (
	"time"

	"aura/pkg/schema"
)

// BuildRecords finalizes filled templates into immutable test case records.
// Pure construction: the requirement hash is computed once, IDs follow the
// 1-based template order, and all records share one creation timestamp.
func BuildRecords(text string, tmpls []schema.TestCaseTemplate) []schema.TestCaseRecord {
	hash := schema.RequirementHash(text)
	now := time.Now().UTC()

	records := make([]schema.TestCaseRecord, 0, len(tmpls))
	for i, tmpl := range tmpls {
		seq := i + 1
		records = append(records, schema.TestCaseRecord{
			ID:              schema.TestCaseID(hash, seq),
			TraceID:         schema.TraceabilityID(hash, seq),
			RequirementHash: hash,
			Kind:            tmpl.Kind,
			Title:           tmpl.Title,
			Priority:        tmpl.Priority,
			Type:            tmpl.Type,
			Steps:           tmpl.Steps,
			TestData:        tmpl.TestData,
			Compliance:      tmpl.Compliance,
			RiskLevel:       tmpl.RiskLevel,
			CreatedAt:       now,
		})
	}
	return records
}
