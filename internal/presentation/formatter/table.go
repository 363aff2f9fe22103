package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"graphotimer/internal/core/model"
	"graphotimer/internal/util"
)

// TableFormatter prints the normalized timelines as a box-drawing table,
// one row per interval, followed by a totals row.
type TableFormatter struct {
	w       io.Writer
	headers []string
}

func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{
		w:       w,
		headers: []string{"Date", "Start", "End", "Activity", "Duration"},
	}
}

func (f *TableFormatter) Format(data *ReportData) error {
	rows := f.buildRows(data)
	widths := f.calculateColumnWidths(rows)

	f.printBorder(widths, "top")
	f.printRow(f.headers, widths)
	f.printBorder(widths, "middle")

	for i, row := range rows {
		if i == len(rows)-1 {
			f.printBorder(widths, "middle")
		}
		f.printRow(row, widths)
	}

	f.printBorder(widths, "bottom")
	return nil
}

// buildRows flattens every day's timeline into table rows plus a final
// totals row.
func (f *TableFormatter) buildRows(data *ReportData) [][]string {
	var rows [][]string
	totalMinutes := 0

	for _, date := range data.Corpus.Dates() {
		first := true
		for _, iv := range data.Corpus[date] {
			dateCell := ""
			if first {
				dateCell = date
				first = false
			}
			rows = append(rows, []string{
				dateCell,
				model.FormatClock(iv.StartMinute),
				model.FormatClock(iv.EndMinute),
				iv.Label,
				util.FormatMinutes(iv.Duration()),
			})
			totalMinutes += iv.Duration()
		}
	}

	rows = append(rows, []string{
		"Total",
		"",
		"",
		fmt.Sprintf("%d days", data.DayCount()),
		util.FormatMinutes(totalMinutes),
	})
	return rows
}

// calculateColumnWidths sizes each column to its widest cell, measured in
// display cells so wide runes stay aligned.
func (f *TableFormatter) calculateColumnWidths(rows [][]string) []int {
	widths := make([]int, len(f.headers))
	for i, header := range f.headers {
		widths[i] = runewidth.StringWidth(header)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func (f *TableFormatter) printBorder(widths []int, borderType string) {
	var left, middle, right string

	switch borderType {
	case "top":
		left, middle, right = "┌", "┬", "┐"
	case "middle":
		left, middle, right = "├", "┼", "┤"
	case "bottom":
		left, middle, right = "└", "┴", "┘"
	}

	fmt.Fprint(f.w, left)
	for i, width := range widths {
		fmt.Fprint(f.w, strings.Repeat("─", width+2))
		if i < len(widths)-1 {
			fmt.Fprint(f.w, middle)
		}
	}
	fmt.Fprintln(f.w, right)
}

func (f *TableFormatter) printRow(values []string, widths []int) {
	fmt.Fprint(f.w, "│")
	for i, value := range values {
		padding := widths[i] - runewidth.StringWidth(value)
		if i < len(values)-1 {
			fmt.Fprintf(f.w, " %s%s │", value, strings.Repeat(" ", padding))
		} else {
			// The duration column is right-aligned.
			fmt.Fprintf(f.w, " %s%s │", strings.Repeat(" ", padding), value)
		}
	}
	fmt.Fprintln(f.w)
}
