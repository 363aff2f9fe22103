// Package timeline normalizes raw activity entries into gap-free,
// contiguous per-day timelines.
package timeline

import (
	"fmt"
	"sort"

	"graphotimer/internal/core/model"
)

// BuildCorpus groups raw entries by date, sorts each group by start minute
// and fills gaps with synthetic "Free Time" intervals so every timeline
// covers [0, 1440) exactly. Any parse or validation failure aborts the
// whole run; a partial corpus is never returned.
func BuildCorpus(entries []model.Entry) (model.Corpus, error) {
	grouped := make(map[string][]model.Interval)
	for _, entry := range entries {
		if _, err := model.ParseDate(entry.Date); err != nil {
			return nil, err
		}
		iv, err := entry.Interval()
		if err != nil {
			return nil, err
		}
		grouped[entry.Date] = append(grouped[entry.Date], iv)
	}

	corpus := make(model.Corpus, len(grouped))
	for date, intervals := range grouped {
		// Stable keeps the original relative order of entries sharing a
		// start minute.
		sort.SliceStable(intervals, func(i, j int) bool {
			return intervals[i].Before(intervals[j])
		})
		if err := checkOverlap(date, intervals); err != nil {
			return nil, err
		}
		corpus[date] = fillGaps(intervals)
	}
	return corpus, nil
}

// checkOverlap rejects same-day intervals that overlap. The sort-then-walk
// gap fill would otherwise emit a malformed timeline silently.
func checkOverlap(date string, sorted []model.Interval) error {
	for i := 1; i < len(sorted); i++ {
		prev, cur := sorted[i-1], sorted[i]
		if cur.StartMinute < prev.EndMinute {
			return &model.ValidationError{
				Date: date,
				Reason: fmt.Sprintf("%q (%s-%s) overlaps %q (%s-%s)",
					prev.Label, model.FormatClock(prev.StartMinute), model.FormatClock(prev.EndMinute),
					cur.Label, model.FormatClock(cur.StartMinute), model.FormatClock(cur.EndMinute)),
			}
		}
	}
	return nil
}

// fillGaps walks the sorted intervals with a cursor starting at minute 0,
// emitting a "Free Time" interval for every uncovered span, including the
// stretch before the first entry and after the last.
func fillGaps(sorted []model.Interval) model.DayTimeline {
	filled := make(model.DayTimeline, 0, 2*len(sorted)+1)
	cursor := 0
	for _, iv := range sorted {
		if iv.StartMinute > cursor {
			filled = append(filled, model.Interval{
				StartMinute: cursor,
				EndMinute:   iv.StartMinute,
				Label:       model.FreeTimeLabel,
			})
		}
		filled = append(filled, iv)
		cursor = iv.EndMinute
	}
	if cursor < model.MinutesPerDay {
		filled = append(filled, model.Interval{
			StartMinute: cursor,
			EndMinute:   model.MinutesPerDay,
			Label:       model.FreeTimeLabel,
		})
	}
	return filled
}
