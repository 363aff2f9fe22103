package chart

import (
	"sort"

	"graphotimer/internal/core/model"
)

// palette is a fixed pastel cycle; assignment is positional over the
// sorted label list so the same corpus always gets the same colors.
var palette = []string{
	"#8DD3C7", "#FFFFB3", "#BEBADA", "#FB8072",
	"#80B1D3", "#FDB462", "#B3DE69", "#FCCDE5",
	"#BC80BD", "#CCEBC5", "#FFED6F", "#D9D9D9",
}

// freeTimeColor pins the synthetic gap label to a neutral grey.
const freeTimeColor = "#E6E6E6"

// AssignColors maps each label to a hex color deterministically,
// independent of input order.
func AssignColors(labels []string) map[string]string {
	sorted := make([]string, 0, len(labels))
	for _, label := range labels {
		if label != model.FreeTimeLabel {
			sorted = append(sorted, label)
		}
	}
	sort.Strings(sorted)

	colors := make(map[string]string, len(sorted)+1)
	for i, label := range sorted {
		colors[label] = palette[i%len(palette)]
	}
	colors[model.FreeTimeLabel] = freeTimeColor
	return colors
}
