package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.db")
	s, err := NewSQLiteStore(path)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Append(testEntry(t, "2024-01-02", "07:00", "08:00", "Gym")))
	require.NoError(t, s.Append(testEntry(t, "2024-01-01", "09:00", "10:30", "Work")))
	require.NoError(t, s.Append(testEntry(t, "2024-01-01", "08:00", "08:30", "Breakfast")))

	entries, err := s.List()
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// Ordered by date then start time, regardless of insertion order.
	assert.Equal(t, "Breakfast", entries[0].ActionName)
	assert.Equal(t, "Work", entries[1].ActionName)
	assert.Equal(t, "Gym", entries[2].ActionName)
}

func TestSQLiteStoreReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.db")

	s, err := NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Append(testEntry(t, "2024-01-01", "09:00", "10:00", "Work")))
	require.NoError(t, s.Close())

	s, err = NewSQLiteStore(path)
	require.NoError(t, err)
	defer s.Close()

	entries, err := s.List()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Work", entries[0].ActionName)
	assert.Equal(t, 60.0, entries[0].DurationMinutes)
}
