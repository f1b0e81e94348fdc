// Package repository persists session artifacts under a .aura/ directory.
// Writes are atomic: all files land in a temp directory that is swapped in
// with a rename.
package repository

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"aura/pkg/schema"

	"gopkg.in/yaml.v3"
)

const (
	artifactsDirName = ".aura"
	testCasesFile    = "test_cases.yaml"
	traceabilityFile = "traceability.yaml"
	reportFile       = "report.yaml"
)

// Repository handles artifact file I/O for one base directory.
type Repository struct {
	baseDir string
}

// NewRepository creates a repository rooted at baseDir; artifacts live in
// baseDir/.aura/.
func NewRepository(baseDir string) *Repository {
	return &Repository{baseDir: baseDir}
}

// Dir returns the artifacts directory path.
func (r *Repository) Dir() string {
	return filepath.Join(r.baseDir, artifactsDirName)
}

// LockPath returns the path of the artifacts lock file.
func (r *Repository) LockPath() string {
	return filepath.Join(r.baseDir, artifactsDirName+".lock")
}

// testCasesDoc is the on-disk shape of the generated test case list.
type testCasesDoc struct {
	SessionID   string                  `yaml:"session_id"`
	GeneratedAt time.Time               `yaml:"generated_at"`
	TestCases   []schema.TestCaseRecord `yaml:"test_cases"`
}

// traceabilityDoc is the on-disk shape of the ledger dump.
type traceabilityDoc struct {
	SessionID string                     `yaml:"session_id"`
	Entries   []schema.TraceabilityEntry `yaml:"entries"`
}

// WriteSessionArtifacts writes the test case list, ledger dump, and report in
// one atomic swap.
func (r *Repository) WriteSessionArtifacts(
	sessionID string,
	records []schema.TestCaseRecord,
	ledger []schema.TraceabilityEntry,
	report *schema.TraceabilityReport,
) error {
	tx := NewCopyOnWriteTx(r.Dir())
	if err := tx.Begin(); err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	files := []struct {
		name string
		doc  any
	}{
		{testCasesFile, testCasesDoc{SessionID: sessionID, GeneratedAt: time.Now().UTC(), TestCases: records}},
		{traceabilityFile, traceabilityDoc{SessionID: sessionID, Entries: ledger}},
		{reportFile, report},
	}

	for _, f := range files {
		data, err := yaml.Marshal(f.doc)
		if err != nil {
			abort(tx)
			return fmt.Errorf("marshal %s: %w", f.name, err)
		}
		if err := tx.WriteFile(f.name, data); err != nil {
			abort(tx)
			return fmt.Errorf("write %s: %w", f.name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		abort(tx)
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// ReadTestCases reads the persisted test case list and its session ID.
func (r *Repository) ReadTestCases() ([]schema.TestCaseRecord, string, error) {
	data, err := os.ReadFile(filepath.Join(r.Dir(), testCasesFile))
	if err != nil {
		if os.IsNotExist(err) {
			return []schema.TestCaseRecord{}, "", nil
		}
		return nil, "", fmt.Errorf("read test cases: %w", err)
	}

	var doc testCasesDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, "", fmt.Errorf("parse test cases: %w", err)
	}
	return doc.TestCases, doc.SessionID, nil
}

// ReadTraceability reads the persisted ledger dump.
func (r *Repository) ReadTraceability() ([]schema.TraceabilityEntry, error) {
	data, err := os.ReadFile(filepath.Join(r.Dir(), traceabilityFile))
	if err != nil {
		if os.IsNotExist(err) {
			return []schema.TraceabilityEntry{}, nil
		}
		return nil, fmt.Errorf("read traceability: %w", err)
	}

	var doc traceabilityDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse traceability: %w", err)
	}
	return doc.Entries, nil
}

// ReadReport reads the persisted traceability report.
func (r *Repository) ReadReport() (*schema.TraceabilityReport, error) {
	data, err := os.ReadFile(filepath.Join(r.Dir(), reportFile))
	if err != nil {
		return nil, fmt.Errorf("read report: %w", err)
	}

	var report schema.TraceabilityReport
	if err := yaml.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("parse report: %w", err)
	}
	return &report, nil
}

func abort(tx *CopyOnWriteTx) {
	if err := tx.Rollback(); err != nil {
		log.Printf("rollback failed: %v", err)
	}
}
