package formatter

import (
	"fmt"
	"io"
	"os"

	"graphotimer/internal/core/model"
	"graphotimer/internal/stats"
)

// ReportData bundles the three independent engine outputs for one
// processing run. Formatters only read it.
type ReportData struct {
	Corpus     model.Corpus
	Averages   map[string]float64
	LabelStats []stats.LabelStats
	AverageDay model.DayTimeline
}

// DayCount returns the number of distinct dates in the corpus.
func (d *ReportData) DayCount() int {
	return len(d.Corpus)
}

// Formatter renders a report to its writer.
type Formatter interface {
	Format(data *ReportData) error
}

// New builds the formatter for the given output format name, writing to
// stdout.
func New(format string) (Formatter, error) {
	return NewWithWriter(format, os.Stdout)
}

// NewWithWriter builds the formatter for the given output format name.
func NewWithWriter(format string, w io.Writer) (Formatter, error) {
	switch format {
	case "table":
		return NewTableFormatter(w), nil
	case "json":
		return NewJSONFormatter(w), nil
	case "csv":
		return NewCSVFormatter(w), nil
	case "summary":
		return NewSummaryFormatter(w), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (expected table, json, csv or summary)", format)
	}
}
