package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"graphotimer/internal/core/model"
)

func testEntry(t *testing.T, date, start, end, action string) model.Entry {
	t.Helper()
	entry, err := model.NewEntry(date, start, end, action)
	require.NoError(t, err)
	return entry
}

func TestJSONStoreMissingFile(t *testing.T) {
	s := NewJSONStore(filepath.Join(t.TempDir(), "missing.json"))
	entries, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestJSONStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	s := NewJSONStore(path)

	first := testEntry(t, "2024-01-01", "09:00", "10:30", "Work")
	second := testEntry(t, "2024-01-02", "07:00", "08:00", "Gym")
	require.NoError(t, s.Append(first))
	require.NoError(t, s.Append(second))

	entries, err := s.List()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, first, entries[0])
	assert.Equal(t, second, entries[1])
}

func TestJSONStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	s := NewJSONStore(path)
	_, err := s.List()
	assert.Error(t, err, "a corrupt store must not read as an empty corpus")
}

func TestOpenBackendSelection(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(BackendJSON, filepath.Join(dir, "data.json"))
	require.NoError(t, err)
	assert.IsType(t, &JSONStore{}, s)

	s, err = Open("", filepath.Join(dir, "data.json"))
	require.NoError(t, err)
	assert.IsType(t, &JSONStore{}, s)

	s, err = Open(BackendSQLite, filepath.Join(dir, "data.db"))
	require.NoError(t, err)
	assert.IsType(t, &SQLiteStore{}, s)
	s.Close()

	_, err = Open("bolt", filepath.Join(dir, "data.bolt"))
	assert.Error(t, err)
}
