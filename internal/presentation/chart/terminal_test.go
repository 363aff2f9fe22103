package chart

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"graphotimer/internal/core/model"
)

func TestRendererFixedWidth(t *testing.T) {
	c := FromReport(report(model.Corpus{
		"2024-01-01": workDay(),
		"2024-01-02": workDay(),
	}))

	out := NewRenderer(120).Render(c)
	require.NotEmpty(t, out)
	assert.Contains(t, out, "Daily Time Distribution")
	assert.Contains(t, out, "Average Time Distribution")
	assert.Contains(t, out, "Typical Average Day")
	assert.Contains(t, out, "2024-01-01")
	assert.Contains(t, out, "Work")
	assert.Contains(t, out, "1.5 h")
}

func TestRendererNoticePanels(t *testing.T) {
	c := FromReport(report(model.Corpus{"2024-01-01": workDay()}))

	out := NewRenderer(100).Render(c)
	assert.Contains(t, out, "Multiple days needed for averages")
	assert.Contains(t, out, "Multiple days needed for average day")
}

func TestSegmentLabelAt(t *testing.T) {
	segments := []Segment{
		{Start: 0, End: 540, Label: model.FreeTimeLabel},
		{Start: 540, End: 630, Label: "Work"},
		{Start: 630, End: 1440, Label: model.FreeTimeLabel},
	}
	assert.Equal(t, model.FreeTimeLabel, segmentLabelAt(segments, 0))
	assert.Equal(t, "Work", segmentLabelAt(segments, 540))
	assert.Equal(t, "Work", segmentLabelAt(segments, 629))
	assert.Equal(t, model.FreeTimeLabel, segmentLabelAt(segments, 630))
}

func TestHourAxisTicks(t *testing.T) {
	axis := hourAxis(96)
	assert.True(t, strings.HasPrefix(axis, "00"))
	assert.Contains(t, axis, "12")
	assert.Equal(t, 96, len([]rune(axis)))
}
