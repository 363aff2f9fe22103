// Package chart turns engine outputs into a declarative chart
// description and renders it to the terminal. The engine never touches
// drawing state; the Chart value is the whole contract.
package chart

import (
	"fmt"

	"graphotimer/internal/presentation/formatter"
)

// PanelKind selects how a panel is drawn.
type PanelKind int

const (
	// PanelTimeline draws one horizontal day bar per row, segmented by
	// labeled minute spans.
	PanelTimeline PanelKind = iota
	// PanelBars draws one value bar per label.
	PanelBars
	// PanelNotice draws a text placeholder instead of data.
	PanelNotice
)

// Segment is a labeled minute span inside a timeline row.
type Segment struct {
	Start int
	End   int
	Label string
}

// TimelineRow is one horizontal bar: a named, fully segmented day.
type TimelineRow struct {
	Name     string
	Segments []Segment
}

// Bar is one entry of a value-bar panel.
type Bar struct {
	Label string
	Hours float64
}

// Panel is one chart section.
type Panel struct {
	Title  string
	Kind   PanelKind
	Rows   []TimelineRow
	Bars   []Bar
	Notice string
}

// Chart is the complete declarative description handed to a renderer.
type Chart struct {
	Title  string
	Panels []Panel
	Colors map[string]string
}

// Builder accumulates panels into a Chart value.
type Builder struct {
	chart Chart
}

func NewBuilder(title string) *Builder {
	return &Builder{chart: Chart{Title: title}}
}

func (b *Builder) AddTimelinePanel(title string, rows []TimelineRow) *Builder {
	b.chart.Panels = append(b.chart.Panels, Panel{Title: title, Kind: PanelTimeline, Rows: rows})
	return b
}

func (b *Builder) AddBarsPanel(title string, bars []Bar) *Builder {
	b.chart.Panels = append(b.chart.Panels, Panel{Title: title, Kind: PanelBars, Bars: bars})
	return b
}

func (b *Builder) AddNoticePanel(title, notice string) *Builder {
	b.chart.Panels = append(b.chart.Panels, Panel{Title: title, Kind: PanelNotice, Notice: notice})
	return b
}

func (b *Builder) Build() Chart {
	b.chart.Colors = AssignColors(chartLabels(b.chart))
	return b.chart
}

// FromReport assembles the standard three-panel chart: daily distribution,
// average distribution and the typical average day. With fewer than two
// days the average panels become notices, since single-day averages are a
// degenerate passthrough of that day.
func FromReport(data *formatter.ReportData) Chart {
	b := NewBuilder("Time Distribution Analysis")

	var dayRows []TimelineRow
	for _, date := range data.Corpus.Dates() {
		row := TimelineRow{Name: date}
		for _, iv := range data.Corpus[date] {
			row.Segments = append(row.Segments, Segment{
				Start: iv.StartMinute,
				End:   iv.EndMinute,
				Label: iv.Label,
			})
		}
		dayRows = append(dayRows, row)
	}
	b.AddTimelinePanel("Daily Time Distribution", dayRows)

	if data.DayCount() > 1 {
		var bars []Bar
		for _, stat := range data.LabelStats {
			bars = append(bars, Bar{Label: stat.Label, Hours: data.Averages[stat.Label]})
		}
		b.AddBarsPanel("Average Time Distribution", bars)

		average := TimelineRow{Name: "Average Day"}
		for _, iv := range data.AverageDay {
			average.Segments = append(average.Segments, Segment{
				Start: iv.StartMinute,
				End:   iv.EndMinute,
				Label: iv.Label,
			})
		}
		b.AddTimelinePanel("Typical Average Day", []TimelineRow{average})
	} else {
		b.AddNoticePanel("Average Time Distribution", "Multiple days needed for averages")
		b.AddNoticePanel("Typical Average Day", "Multiple days needed for average day")
	}

	return b.Build()
}

func chartLabels(c Chart) []string {
	seen := make(map[string]struct{})
	for _, panel := range c.Panels {
		for _, row := range panel.Rows {
			for _, seg := range row.Segments {
				seen[seg.Label] = struct{}{}
			}
		}
		for _, bar := range panel.Bars {
			seen[bar.Label] = struct{}{}
		}
	}
	labels := make([]string, 0, len(seen))
	for label := range seen {
		labels = append(labels, label)
	}
	return labels
}

// Validate checks that every timeline row is contiguous over the full
// day. Renderers may rely on this instead of re-checking.
func (c Chart) Validate() error {
	for _, panel := range c.Panels {
		for _, row := range panel.Rows {
			cursor := 0
			for _, seg := range row.Segments {
				if seg.Start != cursor {
					return fmt.Errorf("row %q: segment starts at %d, expected %d", row.Name, seg.Start, cursor)
				}
				cursor = seg.End
			}
		}
	}
	return nil
}
