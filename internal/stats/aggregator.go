// Package stats derives cross-day statistics from a normalized corpus:
// per-label average daily hours, per-label spread, and the synthesized
// average day.
package stats

import (
	"sort"

	descriptive "github.com/montanaflynn/stats"

	"graphotimer/internal/core/model"
)

// Averages computes the average hours per day for every label, dividing
// each label's summed duration by the total number of days in the corpus,
// not by the number of days containing that label. An empty corpus yields
// an empty map.
func Averages(corpus model.Corpus) map[string]float64 {
	if len(corpus) == 0 {
		return map[string]float64{}
	}
	totals := make(map[string]float64)
	for _, timeline := range corpus {
		for _, iv := range timeline {
			totals[iv.Label] += iv.Hours()
		}
	}
	dayCount := float64(len(corpus))
	averages := make(map[string]float64, len(totals))
	for label, total := range totals {
		averages[label] = total / dayCount
	}
	return averages
}

// LabelStats describes how a label's daily hours are distributed across
// the corpus. Days without the label count as zero hours.
type LabelStats struct {
	Label       string  `json:"label"`
	MeanHours   float64 `json:"meanHours"`
	MinHours    float64 `json:"minHours"`
	MaxHours    float64 `json:"maxHours"`
	StdDevHours float64 `json:"stdDevHours"`
}

// PerLabel computes spread statistics for every label, sorted by label.
func PerLabel(corpus model.Corpus) []LabelStats {
	if len(corpus) == 0 {
		return nil
	}

	dates := corpus.Dates()
	perDay := make(map[string][]float64)
	for _, label := range corpus.Labels() {
		perDay[label] = make([]float64, len(dates))
	}
	for i, date := range dates {
		for _, iv := range corpus[date] {
			perDay[iv.Label][i] += iv.Hours()
		}
	}

	labels := make([]string, 0, len(perDay))
	for label := range perDay {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	result := make([]LabelStats, 0, len(labels))
	for _, label := range labels {
		series := perDay[label]
		mean, _ := descriptive.Mean(series)
		minimum, _ := descriptive.Min(series)
		maximum, _ := descriptive.Max(series)
		stddev, _ := descriptive.StandardDeviation(series)
		result = append(result, LabelStats{
			Label:       label,
			MeanHours:   mean,
			MinHours:    minimum,
			MaxHours:    maximum,
			StdDevHours: stddev,
		})
	}
	return result
}
