package formatter

import (
	"fmt"
	"io"

	"github.com/bytedance/sonic"

	"graphotimer/internal/core/model"
	"graphotimer/internal/stats"
)

// JSONFormatter emits the full report as one indented JSON document.
type JSONFormatter struct {
	w io.Writer
}

func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{w: w}
}

type jsonReport struct {
	Days       map[string]model.DayTimeline `json:"days"`
	Averages   map[string]float64           `json:"averages"`
	LabelStats []stats.LabelStats           `json:"labelStats,omitempty"`
	AverageDay model.DayTimeline            `json:"averageDay"`
}

func (f *JSONFormatter) Format(data *ReportData) error {
	report := jsonReport{
		Days:       data.Corpus,
		Averages:   data.Averages,
		LabelStats: data.LabelStats,
		AverageDay: data.AverageDay,
	}
	out, err := sonic.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(f.w, string(out))
	return err
}
