package core

import (
	"sync"

	"aura/pkg/schema"
)

// Session owns the mutable state of one generator session: the accumulated
// test case list and the traceability ledger. Both are append-only; access is
// serialized with a mutex so a session can be shared across callers.
type Session struct {
	mu      sync.Mutex
	id      string
	records []schema.TestCaseRecord
	ledger  map[string]schema.TraceabilityEntry
	order   []string // trace IDs in first-insertion order
}

// NewSession creates an empty session with a fresh session ID.
func NewSession() (*Session, error) {
	id, err := schema.NewSessionID()
	if err != nil {
		return nil, err
	}
	return &Session{
		id:      id,
		records: make([]schema.TestCaseRecord, 0),
		ledger:  make(map[string]schema.TraceabilityEntry),
		order:   make([]string, 0),
	}, nil
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Append adds generated records to the session and inserts one traceability
// entry per record. Reprocessing an identical requirement reuses the same
// trace IDs; on an exact collision the last write wins and the dump order
// keeps the first insertion position.
func (s *Session) Append(source, text string, records []schema.TestCaseRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, record := range records {
		s.records = append(s.records, record)

		entry := schema.TraceabilityEntry{
			TraceID:         record.TraceID,
			Source:          source,
			RequirementText: text,
			TestCaseID:      record.ID,
			Compliance:      record.Compliance,
			CreatedAt:       record.CreatedAt,
		}
		if _, seen := s.ledger[record.TraceID]; !seen {
			s.order = append(s.order, record.TraceID)
		}
		s.ledger[record.TraceID] = entry
	}
}

// Records returns a copy of the accumulated test case list.
func (s *Session) Records() []schema.TestCaseRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]schema.TestCaseRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Ledger returns the full traceability dump in insertion order.
func (s *Session) Ledger() []schema.TraceabilityEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]schema.TraceabilityEntry, 0, len(s.order))
	for _, traceID := range s.order {
		out = append(out, s.ledger[traceID])
	}
	return out
}

// LedgerSize returns the number of ledger entries.
func (s *Session) LedgerSize() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ledger)
}
