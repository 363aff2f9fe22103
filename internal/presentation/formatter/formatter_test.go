package formatter

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"graphotimer/internal/core/model"
	"graphotimer/internal/stats"
)

func workDay() model.DayTimeline {
	return model.DayTimeline{
		{StartMinute: 0, EndMinute: 540, Label: model.FreeTimeLabel},
		{StartMinute: 540, EndMinute: 630, Label: "Work"},
		{StartMinute: 630, EndMinute: 1440, Label: model.FreeTimeLabel},
	}
}

func report(corpus model.Corpus) *ReportData {
	return &ReportData{
		Corpus:     corpus,
		Averages:   stats.Averages(corpus),
		LabelStats: stats.PerLabel(corpus),
		AverageDay: stats.AverageDay(corpus),
	}
}

func twoDayReport() *ReportData {
	return report(model.Corpus{
		"2024-01-01": workDay(),
		"2024-01-02": workDay(),
	})
}

func TestNewUnknownFormat(t *testing.T) {
	_, err := New("yaml")
	assert.Error(t, err)
}

func TestTableFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTableFormatter(&buf).Format(twoDayReport()))

	out := buf.String()
	assert.Contains(t, out, "2024-01-01")
	assert.Contains(t, out, "2024-01-02")
	assert.Contains(t, out, "Work")
	assert.Contains(t, out, "09:00")
	assert.Contains(t, out, "10:30")
	assert.Contains(t, out, "Total")
	// Two full days tracked.
	assert.Contains(t, out, "48h 0m")
}

func TestCSVFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewCSVFormatter(&buf).Format(twoDayReport()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)

	// Header + 3 intervals per day for 2 days + 3 average day rows.
	require.Len(t, records, 10)
	assert.Equal(t, []string{"section", "date", "start_time", "end_time", "label", "duration_minutes"}, records[0])
	assert.Equal(t, []string{"day", "2024-01-01", "09:00", "10:30", "Work", "90"}, records[2])
	assert.Equal(t, "average_day", records[7][0])
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONFormatter(&buf).Format(twoDayReport()))

	var decoded struct {
		Days       map[string]model.DayTimeline `json:"days"`
		Averages   map[string]float64           `json:"averages"`
		AverageDay model.DayTimeline            `json:"averageDay"`
	}
	require.NoError(t, sonic.Unmarshal(buf.Bytes(), &decoded))
	assert.Len(t, decoded.Days, 2)
	assert.InDelta(t, 1.5, decoded.Averages["Work"], 1e-9)
	assert.Equal(t, model.MinutesPerDay, decoded.AverageDay.TotalMinutes())
}

func TestSummaryFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewSummaryFormatter(&buf).Format(twoDayReport()))

	out := buf.String()
	assert.Contains(t, out, "Date Range: 2024-01-01 to 2024-01-02")
	assert.Contains(t, out, "Tracked Days: 2")
	assert.Contains(t, out, "Work")
	assert.Contains(t, out, "1.5h")
	assert.Contains(t, out, "Typical Average Day")
}

func TestSummaryFormatterSingleDay(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewSummaryFormatter(&buf).Format(report(model.Corpus{"2024-01-01": workDay()})))

	out := buf.String()
	assert.Contains(t, out, "Date Range: 2024-01-01")
	assert.Contains(t, out, "Multiple days needed")
	assert.NotContains(t, out, "Typical Average Day")
}

func TestSummaryFormatterEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewSummaryFormatter(&buf).Format(report(model.Corpus{})))
	assert.Contains(t, buf.String(), "No data to summarize")
}

func TestFormattersShareReport(t *testing.T) {
	// Formatters are read-only over the report; running all of them on
	// the same value must not change it.
	data := twoDayReport()
	snapshot := *data

	for _, name := range []string{"table", "json", "csv", "summary"} {
		f, err := NewWithWriter(name, &strings.Builder{})
		require.NoError(t, err)
		require.NoError(t, f.Format(data))
	}
	assert.Equal(t, snapshot.Averages, data.Averages)
	assert.Equal(t, snapshot.Corpus, data.Corpus)
}
