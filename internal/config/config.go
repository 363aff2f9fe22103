// Package config loads the optional YAML configuration file. Flags
// override config values, which override built-in defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration
type Config struct {
	DataFile   string `yaml:"data_file,omitempty"`   // Entry store path (default: .graphotimer.json)
	Store      string `yaml:"store,omitempty"`       // Store backend: json or sqlite
	Output     string `yaml:"output,omitempty"`      // Default output format for show
	Timezone   string `yaml:"timezone,omitempty"`    // Timezone for resolving "today"
	ChartWidth int    `yaml:"chart_width,omitempty"` // Fixed chart width (0 = detect terminal)
}

// Defaults returns the built-in configuration.
func Defaults() *Config {
	return &Config{
		DataFile: ".graphotimer.json",
		Store:    "json",
		Output:   "chart",
		Timezone: "Local",
	}
}

// Load reads the config file and fills unset values with defaults.
// A missing file is not an error.
func Load(configPath string) (*Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if fileCfg.DataFile != "" {
		cfg.DataFile = fileCfg.DataFile
	}
	if fileCfg.Store != "" {
		cfg.Store = fileCfg.Store
	}
	if fileCfg.Output != "" {
		cfg.Output = fileCfg.Output
	}
	if fileCfg.Timezone != "" {
		cfg.Timezone = fileCfg.Timezone
	}
	if fileCfg.ChartWidth != 0 {
		cfg.ChartWidth = fileCfg.ChartWidth
	}
	return cfg, nil
}

// Save writes the config to file, creating parent directories as needed.
func Save(configPath string, cfg *Config) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// DefaultPath returns the config file location under the user's home.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(home, ".graphotimer", "config.yaml")
}
