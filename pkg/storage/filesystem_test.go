package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndOpen(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	path, err := s.Save("reports/transcript.csv", []byte("hello"))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	f, err := s.Open("reports/transcript.csv")
	require.NoError(t, err)
	require.NoError(t, f.Close())
}

func TestDeleteMissingIsNoop(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	assert.NoError(t, s.Delete("never-existed.csv"))
}

func TestSnapshotCopiesFlatFiles(t *testing.T) {
	src := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(src, "users.csv"), []byte("u"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(src, "grades.csv"), []byte("g"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(src, "nested"), 0o755))

	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	dest, err := s.Snapshot(src, "backup_20250829_120000")
	require.NoError(t, err)

	entries, err := os.ReadDir(dest)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	data, err := os.ReadFile(filepath.Join(dest, "grades.csv"))
	require.NoError(t, err)
	assert.Equal(t, "g", string(data))
}
