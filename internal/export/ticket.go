// Package export renders test case records into external ticket-system
// payloads. Pure formatting; no network calls.
package export

import (
	"fmt"
	"strings"
	"time"

	"aura/pkg/schema"
)

// TicketPayload is the external ticket shape for one test case record.
type TicketPayload struct {
	Summary     string          `json:"summary" yaml:"summary"`
	Description string          `json:"description" yaml:"description"`
	IssueType   string          `json:"issue_type" yaml:"issue_type"`
	Priority    schema.Priority `json:"priority" yaml:"priority"`
	Labels      []string        `json:"labels" yaml:"labels"`
}

// Batch wraps one export run so downstream consumers can identify it.
type Batch struct {
	ID        string          `json:"batch_id" yaml:"batch_id"`
	CreatedAt time.Time       `json:"created_at" yaml:"created_at"`
	Tickets   []TicketPayload `json:"tickets" yaml:"tickets"`
}

const issueTypeTest = "Test"

// Tickets converts records into ticket payloads, one per record, in input
// order. Empty input yields an empty list.
func Tickets(records []schema.TestCaseRecord) []TicketPayload {
	tickets := make([]TicketPayload, 0, len(records))
	for _, record := range records {
		tickets = append(tickets, TicketPayload{
			Summary:     record.Title,
			Description: buildDescription(record),
			IssueType:   issueTypeTest,
			Priority:    record.Priority,
			Labels:      buildLabels(record),
		})
	}
	return tickets
}

// NewBatch converts records and stamps the result with a fresh batch ID.
func NewBatch(records []schema.TestCaseRecord) Batch {
	return Batch{
		ID:        schema.NewBatchID(),
		CreatedAt: time.Now().UTC(),
		Tickets:   Tickets(records),
	}
}

func buildDescription(r schema.TestCaseRecord) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Test Case ID: %s\n", r.ID)
	fmt.Fprintf(&b, "Priority: %s\n", r.Priority)
	fmt.Fprintf(&b, "Type: %s\n", r.Type)
	fmt.Fprintf(&b, "Risk Level: %s\n", r.RiskLevel)

	b.WriteString("\nSteps:\n")
	for _, step := range r.Steps {
		fmt.Fprintf(&b, "%d. %s\n   Expected: %s\n", step.Number, step.Action, step.Expected)
	}

	if len(r.TestData) > 0 {
		b.WriteString("\nTest Data:\n")
		for _, data := range r.TestData {
			fmt.Fprintf(&b, "- %s\n", data)
		}
	}

	if len(r.Compliance) > 0 {
		fmt.Fprintf(&b, "\nCompliance: %s\n", strings.Join(r.Compliance, ", "))
	}

	fmt.Fprintf(&b, "\nTraceability ID: %s\n", r.TraceID)
	return b.String()
}

func buildLabels(r schema.TestCaseRecord) []string {
	labels := []string{
		strings.ToLower(string(r.Type)),
		"automated-generation",
	}
	for _, standard := range r.Compliance {
		label := strings.ToLower(strings.ReplaceAll(standard, " ", "-"))
		labels = append(labels, label)
	}
	return labels
}
