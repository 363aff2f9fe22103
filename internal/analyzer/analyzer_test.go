package analyzer

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"graphotimer/internal/core/model"
	"graphotimer/internal/data/store"
)

func seedStore(t *testing.T, entries ...model.Entry) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.json")
	s := store.NewJSONStore(path)
	for _, entry := range entries {
		require.NoError(t, s.Append(entry))
	}
	return path
}

func entry(t *testing.T, date, start, end, action string) model.Entry {
	t.Helper()
	e, err := model.NewEntry(date, start, end, action)
	require.NoError(t, err)
	return e
}

func TestBuildReport(t *testing.T) {
	path := seedStore(t,
		entry(t, "2024-01-01", "09:00", "10:30", "Work"),
		entry(t, "2024-01-02", "09:00", "10:30", "Work"),
	)

	a := New(&Config{DataFile: path, StoreBackend: store.BackendJSON})
	report, err := a.BuildReport()
	require.NoError(t, err)

	assert.Len(t, report.Corpus, 2)
	assert.InDelta(t, 1.5, report.Averages["Work"], 1e-9)
	assert.InDelta(t, 22.5, report.Averages[model.FreeTimeLabel], 1e-9)
	require.NotEmpty(t, report.AverageDay)
	assert.Equal(t, model.MinutesPerDay, report.AverageDay.TotalMinutes())
	require.Len(t, report.LabelStats, 2)
}

func TestBuildReportEmptyStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.json")

	a := New(&Config{DataFile: path})
	report, err := a.BuildReport()
	require.NoError(t, err)

	assert.Empty(t, report.Corpus)
	assert.Empty(t, report.Averages)
	assert.Empty(t, report.AverageDay)
}

func TestBuildReportPropagatesOverlapError(t *testing.T) {
	path := seedStore(t,
		entry(t, "2024-01-01", "09:00", "11:00", "Work"),
		entry(t, "2024-01-01", "10:00", "12:00", "Meeting"),
	)

	a := New(&Config{DataFile: path})
	_, err := a.BuildReport()
	require.Error(t, err)

	var validationErr *model.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestRunRejectsUnknownFormat(t *testing.T) {
	path := seedStore(t, entry(t, "2024-01-01", "09:00", "10:30", "Work"))

	a := New(&Config{DataFile: path, OutputFormat: "yaml"})
	assert.Error(t, a.Run())
}
