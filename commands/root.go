package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"graphotimer/internal/config"
	"graphotimer/internal/util"
)

var (
	// Logging related
	debug bool

	// Data location
	dataFile     string
	storeBackend string
	configPath   string

	// Time handling
	timezone string

	cfg *config.Config

	rootCmd = &cobra.Command{
		Use:   "graphotimer",
		Short: "Generate graphs based on your daily schedule",
		Long: `graphotimer records timestamped daily activities and derives visual
summaries: per-day time distributions, cross-day activity averages, and a
synthesized typical day.

Examples:
  graphotimer add --start-time 09:00 --end-time 10:30 --action-name Work
  graphotimer add --date 2024-01-01 --start-time 22:00 --end-time 23:30 --action-name Reading
  graphotimer show                       # Render charts in the terminal
  graphotimer show --output summary      # Text summary instead of charts
  graphotimer show --watch               # Re-render whenever the data file changes
  graphotimer export --excel out.xlsx    # Dump all entries to a workbook`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}
)

const defaultLogFile = "~/.graphotimer/logs/app.log"

func init() {
	rootCmd.PersistentFlags().StringVarP(&dataFile, "file", "f", "",
		"Data file path (default: .graphotimer.json)")
	rootCmd.PersistentFlags().StringVar(&storeBackend, "store", "",
		"Store backend (json, sqlite)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath(),
		"Config file path")
	rootCmd.PersistentFlags().StringVar(&timezone, "timezone", "",
		"Timezone for resolving dates (e.g., Asia/Shanghai, UTC)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"Enable debug mode")
}

// setup loads the config file, applies flag overrides and initializes
// logging and the time provider before any command runs.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return err
	}
	if dataFile != "" {
		cfg.DataFile = dataFile
	}
	if storeBackend != "" {
		cfg.Store = storeBackend
	}
	if timezone != "" {
		cfg.Timezone = timezone
	}

	logLevel := "info"
	if debug {
		logLevel = "debug"
	}
	logFile := expandPath(defaultLogFile)
	if err := ensureDir(filepath.Dir(logFile)); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	if err := util.InitLogger(logLevel, logFile, debug); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	return util.InitializeTimeProvider(cfg.Timezone)
}

func Execute() error {
	return rootCmd.Execute()
}

// Helper functions

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[2:])
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return absPath
}

func ensureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}
