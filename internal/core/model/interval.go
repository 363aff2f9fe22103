package model

import (
	"fmt"
	"sort"
)

const (
	// MinutesPerDay is the closed upper bound of every timeline.
	MinutesPerDay = 24 * 60

	// FreeTimeLabel is the synthetic label used to fill timeline gaps.
	FreeTimeLabel = "Free Time"
)

// Interval is a labeled span of a single day, expressed in minutes since
// midnight. It is a plain value: freely copied, never shared mutably.
type Interval struct {
	StartMinute int    `json:"startMinute"`
	EndMinute   int    `json:"endMinute"`
	Label       string `json:"label"`
}

// NewInterval validates and builds an Interval.
func NewInterval(start, end int, label string) (Interval, error) {
	if label == "" {
		return Interval{}, &ValidationError{Reason: "empty label"}
	}
	if start < 0 || start >= MinutesPerDay {
		return Interval{}, &ValidationError{
			Reason: fmt.Sprintf("start minute %d out of range [0, %d)", start, MinutesPerDay),
		}
	}
	if end > MinutesPerDay {
		return Interval{}, &ValidationError{
			Reason: fmt.Sprintf("end minute %d exceeds %d", end, MinutesPerDay),
		}
	}
	if start >= end {
		return Interval{}, &ValidationError{
			Reason: fmt.Sprintf("start minute %d is not before end minute %d", start, end),
		}
	}
	return Interval{StartMinute: start, EndMinute: end, Label: label}, nil
}

// Duration returns the interval length in minutes.
func (iv Interval) Duration() int {
	return iv.EndMinute - iv.StartMinute
}

// Hours returns the interval length in hours.
func (iv Interval) Hours() float64 {
	return float64(iv.Duration()) / 60
}

// Before orders intervals by start minute.
func (iv Interval) Before(other Interval) bool {
	return iv.StartMinute < other.StartMinute
}

// DayTimeline is the ordered interval sequence for one calendar date.
// A normalized timeline is sorted, non-overlapping, contiguous and spans
// [0, MinutesPerDay) exactly.
type DayTimeline []Interval

// TotalMinutes sums the durations of all intervals.
func (t DayTimeline) TotalMinutes() int {
	total := 0
	for _, iv := range t {
		total += iv.Duration()
	}
	return total
}

// Labels returns the distinct labels in the timeline, sorted.
func (t DayTimeline) Labels() []string {
	seen := make(map[string]struct{})
	for _, iv := range t {
		seen[iv.Label] = struct{}{}
	}
	labels := make([]string, 0, len(seen))
	for label := range seen {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// Corpus maps a date key ("YYYY-MM-DD") to its normalized timeline.
// It is built once per processing run and treated as immutable downstream.
type Corpus map[string]DayTimeline

// Dates returns the corpus date keys in ascending order.
func (c Corpus) Dates() []string {
	dates := make([]string, 0, len(c))
	for date := range c {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates
}

// Labels returns the distinct labels across all timelines, sorted.
func (c Corpus) Labels() []string {
	seen := make(map[string]struct{})
	for _, timeline := range c {
		for _, iv := range timeline {
			seen[iv.Label] = struct{}{}
		}
	}
	labels := make([]string, 0, len(seen))
	for label := range seen {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}
