package schema

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/oklog/ulid/v2"
)

// RequirementHash computes the 8-character hash of a requirement text.
// Deterministic over the exact text: same text yields the same hash across
// calls, processes, and call order.
func RequirementHash(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])[:RequirementHashLen]
}

// TestCaseID formats a test case ID as TC_{hash8}_{seq zero-padded to 3}.
// seq is 1-based and scoped to a single process call, not the session.
func TestCaseID(hash string, seq int) string {
	return fmt.Sprintf("TC_%s_%03d", hash, seq)
}

// TraceabilityID formats a traceability ID as REQ_{hash8}_TEST_{seq}.
func TraceabilityID(hash string, seq int) string {
	return fmt.Sprintf("REQ_%s_TEST_%d", hash, seq)
}

// NewSessionID generates a new generator session ID in format SES-{nanoid(10)}.
func NewSessionID() (string, error) {
	id, err := gonanoid.New(10)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("SES-%s", id), nil
}

// NewBatchID generates a sortable export batch ID.
func NewBatchID() string {
	return ulid.Make().String()
}
