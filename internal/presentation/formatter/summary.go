package formatter

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"graphotimer/internal/core/model"
	"graphotimer/internal/util"
)

// SummaryFormatter is responsible for formatting and outputting summary
// reports.
type SummaryFormatter struct {
	w io.Writer
}

// NewSummaryFormatter creates a new instance of SummaryFormatter.
func NewSummaryFormatter(w io.Writer) *SummaryFormatter {
	return &SummaryFormatter{w: w}
}

// Format writes the summary report for one processing run.
func (f *SummaryFormatter) Format(data *ReportData) error {
	fmt.Fprintln(f.w, strings.Repeat("=", 60))
	fmt.Fprintln(f.w, "Daily Schedule Summary Report")
	fmt.Fprintln(f.w, strings.Repeat("=", 60))
	fmt.Fprintln(f.w)

	if data.DayCount() == 0 {
		fmt.Fprintln(f.w, "No data to summarize")
		fmt.Fprintln(f.w)
		fmt.Fprintln(f.w, strings.Repeat("=", 60))
		return nil
	}

	dates := data.Corpus.Dates()
	firstDate := dates[0]
	lastDate := dates[len(dates)-1]
	if firstDate == lastDate {
		fmt.Fprintf(f.w, "Date Range: %s\n", firstDate)
	} else {
		fmt.Fprintf(f.w, "Date Range: %s to %s\n", firstDate, lastDate)
	}
	if last, err := time.Parse(model.DateLayout, lastDate); err == nil {
		fmt.Fprintf(f.w, "Last Tracked Day: %s\n", humanize.Time(last))
	}
	fmt.Fprintf(f.w, "Tracked Days: %s\n", humanize.Comma(int64(data.DayCount())))
	fmt.Fprintln(f.w)

	if data.DayCount() < 2 {
		fmt.Fprintln(f.w, "Multiple days needed for averages and the typical day")
		fmt.Fprintln(f.w)
		fmt.Fprintln(f.w, strings.Repeat("=", 60))
		return nil
	}

	fmt.Fprintln(f.w, "Average Hours per Day:")
	fmt.Fprintln(f.w, strings.Repeat("-", 60))
	for _, stat := range data.LabelStats {
		fmt.Fprintf(f.w, "\n%s:\n", stat.Label)
		fmt.Fprintf(f.w, "  Average:   %s\n", util.FormatHours(stat.MeanHours))
		fmt.Fprintf(f.w, "  Min / Max: %s / %s\n",
			util.FormatHours(stat.MinHours), util.FormatHours(stat.MaxHours))
		fmt.Fprintf(f.w, "  Std Dev:   %s\n", util.FormatHours(stat.StdDevHours))
	}
	fmt.Fprintln(f.w)

	fmt.Fprintln(f.w, "Typical Average Day:")
	fmt.Fprintln(f.w, strings.Repeat("-", 60))
	for _, iv := range data.AverageDay {
		fmt.Fprintf(f.w, "  %s - %s  %s (%s)\n",
			model.FormatClock(iv.StartMinute), model.FormatClock(iv.EndMinute),
			iv.Label, util.FormatMinutes(iv.Duration()))
	}

	fmt.Fprintln(f.w)
	fmt.Fprintln(f.w, strings.Repeat("=", 60))
	return nil
}
