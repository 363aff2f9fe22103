package stats

import (
	"sort"

	"graphotimer/internal/core/model"
)

// BucketMinutes is the fixed resolution of average-day synthesis.
const BucketMinutes = 15

const bucketCount = model.MinutesPerDay / BucketMinutes

// AverageDay synthesizes a single "typical day" timeline: every interval
// in the corpus votes once per 15-minute bucket it overlaps (truncated to
// bucket granularity), the most frequent label wins each bucket, and runs
// of buckets with the same winner merge into one interval. Buckets nothing
// voted for default to "Free Time". Ties break to the lexicographically
// smallest label so output is stable across runs. An empty corpus yields
// an empty timeline.
func AverageDay(corpus model.Corpus) model.DayTimeline {
	if len(corpus) == 0 {
		return model.DayTimeline{}
	}

	buckets := make([]map[string]int, bucketCount)
	for i := range buckets {
		buckets[i] = make(map[string]int)
	}

	for _, timeline := range corpus {
		for _, iv := range timeline {
			first := iv.StartMinute / BucketMinutes
			last := iv.EndMinute / BucketMinutes
			for b := first; b < last && b < bucketCount; b++ {
				buckets[b][iv.Label]++
			}
		}
	}

	var (
		averageDay   model.DayTimeline
		currentLabel string
		currentStart int
	)
	for i, bucket := range buckets {
		dominant := dominantLabel(bucket)
		if dominant != currentLabel {
			if currentLabel != "" {
				averageDay = append(averageDay, model.Interval{
					StartMinute: currentStart,
					EndMinute:   i * BucketMinutes,
					Label:       currentLabel,
				})
			}
			currentLabel = dominant
			currentStart = i * BucketMinutes
		}
	}
	averageDay = append(averageDay, model.Interval{
		StartMinute: currentStart,
		EndMinute:   model.MinutesPerDay,
		Label:       currentLabel,
	})
	return averageDay
}

func dominantLabel(votes map[string]int) string {
	if len(votes) == 0 {
		return model.FreeTimeLabel
	}
	labels := make([]string, 0, len(votes))
	for label := range votes {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	best := labels[0]
	for _, label := range labels[1:] {
		if votes[label] > votes[best] {
			best = label
		}
	}
	return best
}
