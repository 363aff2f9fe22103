package chart

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"graphotimer/internal/core/model"
)

const (
	defaultWidth = 100
	minBarWidth  = 48
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	panelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#4A90E2"))

	axisStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	noticeStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color("#999999"))
)

// Renderer draws a Chart as styled terminal text.
type Renderer struct {
	width int
}

// NewRenderer builds a renderer. A zero width means: detect the terminal
// width, falling back to a fixed default when stdout is not a terminal.
func NewRenderer(width int) *Renderer {
	if width == 0 {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
			width = w
		} else {
			width = defaultWidth
		}
	}
	return &Renderer{width: width}
}

// Render draws every panel of the chart.
func (r *Renderer) Render(c Chart) string {
	var out strings.Builder

	out.WriteString(titleStyle.Render(c.Title))
	out.WriteString("\n\n")

	for _, panel := range c.Panels {
		out.WriteString(panelTitleStyle.Render(panel.Title))
		out.WriteString("\n")
		switch panel.Kind {
		case PanelTimeline:
			r.renderTimeline(&out, panel, c.Colors)
		case PanelBars:
			r.renderBars(&out, panel, c.Colors)
		case PanelNotice:
			out.WriteString(noticeStyle.Render(panel.Notice))
			out.WriteString("\n")
		}
		out.WriteString("\n")
	}

	out.WriteString(r.renderLegend(c.Colors))
	return out.String()
}

// renderTimeline draws one colored bar per row plus a shared hour axis.
func (r *Renderer) renderTimeline(out *strings.Builder, panel Panel, colors map[string]string) {
	nameWidth := 0
	for _, row := range panel.Rows {
		if w := runewidth.StringWidth(row.Name); w > nameWidth {
			nameWidth = w
		}
	}
	barWidth := r.barWidth(nameWidth)

	for _, row := range panel.Rows {
		out.WriteString(padRight(row.Name, nameWidth))
		out.WriteString("  ")
		for col := 0; col < barWidth; col++ {
			minute := col * model.MinutesPerDay / barWidth
			label := segmentLabelAt(row.Segments, minute)
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(colors[label]))
			out.WriteString(style.Render("█"))
		}
		out.WriteString("\n")
	}

	out.WriteString(strings.Repeat(" ", nameWidth+2))
	out.WriteString(axisStyle.Render(hourAxis(barWidth)))
	out.WriteString("\n")
}

// renderBars draws one value bar per label, scaled to the largest value.
func (r *Renderer) renderBars(out *strings.Builder, panel Panel, colors map[string]string) {
	labelWidth := 0
	maxHours := 0.0
	for _, bar := range panel.Bars {
		if w := runewidth.StringWidth(bar.Label); w > labelWidth {
			labelWidth = w
		}
		if bar.Hours > maxHours {
			maxHours = bar.Hours
		}
	}
	if maxHours == 0 {
		maxHours = 1
	}
	barWidth := r.barWidth(labelWidth)

	for _, bar := range panel.Bars {
		filled := int(bar.Hours / maxHours * float64(barWidth))
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(colors[bar.Label]))
		out.WriteString(padRight(bar.Label, labelWidth))
		out.WriteString("  ")
		out.WriteString(style.Render(strings.Repeat("█", filled)))
		fmt.Fprintf(out, " %.1f h\n", bar.Hours)
	}
}

// renderLegend lists every label with its color swatch, sorted.
func (r *Renderer) renderLegend(colors map[string]string) string {
	labels := make([]string, 0, len(colors))
	for label := range colors {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	parts := make([]string, 0, len(labels))
	for _, label := range labels {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(colors[label])).Render("■")
		parts = append(parts, swatch+" "+label)
	}
	return strings.Join(parts, "   ") + "\n"
}

// barWidth fits the bar next to its name column within the terminal.
func (r *Renderer) barWidth(nameWidth int) int {
	width := r.width - nameWidth - 10
	if width < minBarWidth {
		width = minBarWidth
	}
	return width
}

// segmentLabelAt finds the label covering a minute. Rows are contiguous,
// so a linear scan over the few segments is enough.
func segmentLabelAt(segments []Segment, minute int) string {
	for _, seg := range segments {
		if minute >= seg.Start && minute < seg.End {
			return seg.Label
		}
	}
	return model.FreeTimeLabel
}

// hourAxis builds the tick row under a timeline bar, one mark every three
// hours.
func hourAxis(barWidth int) string {
	axis := []rune(strings.Repeat(" ", barWidth))
	for hour := 0; hour <= 24; hour += 3 {
		col := hour * 60 * barWidth / model.MinutesPerDay
		tick := fmt.Sprintf("%02d", hour)
		for i, ch := range tick {
			if col+i < len(axis) {
				axis[col+i] = ch
			}
		}
	}
	return string(axis)
}

func padRight(s string, width int) string {
	return s + strings.Repeat(" ", width-runewidth.StringWidth(s))
}
