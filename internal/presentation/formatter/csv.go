package formatter

import (
	"encoding/csv"
	"fmt"
	"io"

	"graphotimer/internal/core/model"
)

// CSVFormatter emits the normalized timelines and the average day as flat
// records. The section column distinguishes per-day rows from the
// synthesized average day.
type CSVFormatter struct {
	w io.Writer
}

func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{w: w}
}

func (f *CSVFormatter) Format(data *ReportData) error {
	w := csv.NewWriter(f.w)
	defer w.Flush()

	headers := []string{"section", "date", "start_time", "end_time", "label", "duration_minutes"}
	if err := w.Write(headers); err != nil {
		return err
	}

	for _, date := range data.Corpus.Dates() {
		for _, iv := range data.Corpus[date] {
			record := []string{
				"day",
				date,
				model.FormatClock(iv.StartMinute),
				model.FormatClock(iv.EndMinute),
				iv.Label,
				fmt.Sprintf("%d", iv.Duration()),
			}
			if err := w.Write(record); err != nil {
				return err
			}
		}
	}

	for _, iv := range data.AverageDay {
		record := []string{
			"average_day",
			"",
			model.FormatClock(iv.StartMinute),
			model.FormatClock(iv.EndMinute),
			iv.Label,
			fmt.Sprintf("%d", iv.Duration()),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	return nil
}
