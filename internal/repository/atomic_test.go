package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTxCommitCreatesBaseDir(t *testing.T) {
	base := filepath.Join(t.TempDir(), ".aura")

	tx := NewCopyOnWriteTx(base)
	require.NoError(t, tx.Begin())
	require.NoError(t, tx.WriteFile("test_cases.yaml", []byte("test_cases: []")))
	require.NoError(t, tx.Commit())

	data, err := os.ReadFile(filepath.Join(base, "test_cases.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "test_cases: []", string(data))
}

func TestTxRollbackLeavesBaseUntouched(t *testing.T) {
	base := filepath.Join(t.TempDir(), ".aura")
	require.NoError(t, os.MkdirAll(base, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(base, "report.yaml"), []byte("original"), 0644))

	tx := NewCopyOnWriteTx(base)
	require.NoError(t, tx.Begin())
	require.NoError(t, tx.WriteFile("report.yaml", []byte("modified")))
	require.NoError(t, tx.Rollback())

	data, err := os.ReadFile(filepath.Join(base, "report.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "original", string(data))
}

func TestTxIsolationBeforeCommit(t *testing.T) {
	base := filepath.Join(t.TempDir(), ".aura")
	require.NoError(t, os.MkdirAll(base, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(base, "report.yaml"), []byte("original"), 0644))

	tx := NewCopyOnWriteTx(base)
	require.NoError(t, tx.Begin())
	require.NoError(t, tx.WriteFile("report.yaml", []byte("modified")))

	// Base directory must not see the write until commit.
	data, err := os.ReadFile(filepath.Join(base, "report.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "original", string(data))

	require.NoError(t, tx.Commit())

	data, err = os.ReadFile(filepath.Join(base, "report.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "modified", string(data))
}

func TestTxCommitSwapsAtomically(t *testing.T) {
	base := filepath.Join(t.TempDir(), ".aura")
	require.NoError(t, os.MkdirAll(base, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(base, "keep.yaml"), []byte("kept"), 0644))

	tx := NewCopyOnWriteTx(base)
	require.NoError(t, tx.Begin())
	require.NoError(t, tx.WriteFile("new.yaml", []byte("added")))
	require.NoError(t, tx.Commit())

	// Pre-existing files survive the swap alongside new ones.
	kept, err := os.ReadFile(filepath.Join(base, "keep.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "kept", string(kept))

	added, err := os.ReadFile(filepath.Join(base, "new.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "added", string(added))
}

func TestTxWriteAfterCommitFails(t *testing.T) {
	base := filepath.Join(t.TempDir(), ".aura")

	tx := NewCopyOnWriteTx(base)
	require.NoError(t, tx.Begin())
	require.NoError(t, tx.Commit())

	assert.Error(t, tx.WriteFile("late.yaml", []byte("too late")))
	assert.Error(t, tx.Commit())
	assert.Error(t, tx.Rollback())
}

func TestTxReadFile(t *testing.T) {
	base := filepath.Join(t.TempDir(), ".aura")
	require.NoError(t, os.MkdirAll(base, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(base, "existing.yaml"), []byte("content"), 0644))

	tx := NewCopyOnWriteTx(base)
	require.NoError(t, tx.Begin())
	defer func() { _ = tx.Rollback() }()

	data, err := tx.ReadFile("existing.yaml")
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))

	_, err = tx.ReadFile("missing.yaml")
	assert.Error(t, err)
}
