// Package analyzer orchestrates one processing run: load raw entries,
// normalize them into per-day timelines, derive cross-day statistics and
// hand the results to the selected presentation.
package analyzer

import (
	"fmt"
	"time"

	"graphotimer/internal/core/timeline"
	"graphotimer/internal/data/store"
	"graphotimer/internal/presentation/chart"
	"graphotimer/internal/presentation/formatter"
	"graphotimer/internal/stats"
	"graphotimer/internal/util"
)

type Config struct {
	DataFile     string
	StoreBackend string
	OutputFormat string
	ChartWidth   int
}

type Analyzer struct {
	config *Config
}

func New(config *Config) *Analyzer {
	return &Analyzer{config: config}
}

// Run executes one full processing run and renders the result. Derived
// structures are recomputed fresh from the raw entry list every time;
// nothing is cached between runs.
func (a *Analyzer) Run() error {
	report, err := a.BuildReport()
	if err != nil {
		return err
	}

	if a.config.OutputFormat == "chart" {
		c := chart.FromReport(report)
		renderer := chart.NewRenderer(a.config.ChartWidth)
		fmt.Print(renderer.Render(c))
		return nil
	}

	f, err := formatter.New(a.config.OutputFormat)
	if err != nil {
		return err
	}
	return f.Format(report)
}

// BuildReport loads the store and computes all three engine outputs.
func (a *Analyzer) BuildReport() (*formatter.ReportData, error) {
	start := time.Now()

	s, err := store.Open(a.config.StoreBackend, a.config.DataFile)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	entries, err := s.List()
	if err != nil {
		return nil, err
	}
	util.LogDebugf("Loaded %d entries from %s", len(entries), a.config.DataFile)
	if len(entries) == 0 {
		util.LogWarn("No data available")
	}

	corpus, err := timeline.BuildCorpus(entries)
	if err != nil {
		return nil, err
	}

	report := &formatter.ReportData{
		Corpus:     corpus,
		Averages:   stats.Averages(corpus),
		LabelStats: stats.PerLabel(corpus),
		AverageDay: stats.AverageDay(corpus),
	}
	util.LogDebugf("Processed %d days in %v", len(corpus), time.Since(start))
	return report, nil
}
