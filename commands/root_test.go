package commands

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"graphotimer/internal/data/store"
)

func TestAddAndExport(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dataPath := filepath.Join(home, "data.json")
	configFile := filepath.Join(home, "config.yaml")
	excelPath := filepath.Join(home, "out.xlsx")

	run := func(args ...string) error {
		rootCmd.SetArgs(append(args,
			"--file", dataPath,
			"--config", configFile,
		))
		return rootCmd.Execute()
	}

	require.NoError(t, run("add",
		"--date", "2024-01-01",
		"--start-time", "09:00",
		"--end-time", "10:30",
		"--action-name", "Work"))
	require.NoError(t, run("add",
		"--date", "2024-01-02",
		"--start-time", "07:00",
		"--end-time", "08:00",
		"--action-name", "Gym"))

	entries, err := store.NewJSONStore(dataPath).List()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Work", entries[0].ActionName)
	assert.Equal(t, 90.0, entries[0].DurationMinutes)

	require.NoError(t, run("export", "--excel", excelPath))

	f, err := excelize.OpenFile(excelPath)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Sheet1")
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

func TestAddRejectsInvertedTimes(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dataPath := filepath.Join(home, "data.json")
	rootCmd.SetArgs([]string{"add",
		"--date", "2024-01-01",
		"--start-time", "10:00",
		"--end-time", "09:00",
		"--action-name", "Work",
		"--file", dataPath,
		"--config", filepath.Join(home, "config.yaml"),
	})
	assert.Error(t, rootCmd.Execute())
}
