package commands

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"graphotimer/internal/analyzer"
	"graphotimer/internal/util"
)

var (
	outputFormat string
	chartWidth   int
	watch        bool

	showCmd = &cobra.Command{
		Use:   "show",
		Short: "Show schedule distribution charts or reports",
		RunE:  runShow,
	}
)

func init() {
	showCmd.Flags().StringVarP(&outputFormat, "output", "o", "",
		"Output format (chart, table, json, csv, summary)")
	showCmd.Flags().IntVar(&chartWidth, "width", 0,
		"Chart width in columns (0 = detect terminal)")
	showCmd.Flags().BoolVarP(&watch, "watch", "w", false,
		"Re-render whenever the data file changes")

	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	a := analyzer.New(analyzerConfig())
	if !watch {
		return a.Run()
	}
	return watchAndRun(a)
}

func analyzerConfig() *analyzer.Config {
	format := cfg.Output
	if outputFormat != "" {
		format = outputFormat
	}
	width := cfg.ChartWidth
	if chartWidth != 0 {
		width = chartWidth
	}
	return &analyzer.Config{
		DataFile:     cfg.DataFile,
		StoreBackend: cfg.Store,
		OutputFormat: format,
		ChartWidth:   width,
	}
}

// watchAndRun renders once, then re-renders on every change to the data
// file until interrupted. Editors and the JSON store replace the file
// wholesale, so the watch is on the parent directory.
func watchAndRun(a *analyzer.Analyzer) error {
	if err := a.Run(); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	dataPath, err := filepath.Abs(cfg.DataFile)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(dataPath)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(dataPath), err)
	}
	util.LogInfof("Watching %s for changes", dataPath)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	// Writes arrive in bursts; the timer coalesces them into one rerun.
	debounce := time.NewTimer(time.Hour)
	debounce.Stop()

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Name != dataPath {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			debounce.Reset(250 * time.Millisecond)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			util.LogWarnf("Watch error: %v", err)
		case <-debounce.C:
			if err := a.Run(); err != nil {
				util.LogErrorf("Render failed: %v", err)
				fmt.Fprintf(os.Stderr, "render failed: %v\n", err)
			}
		case <-interrupt:
			return nil
		}
	}
}
