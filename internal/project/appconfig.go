package project

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// AppConfig holds per-user CLI preferences persisted between runs.
type AppConfig struct {
	RecentLayouts []string `json:"recent_layouts"`
	OutputDir     string   `json:"output_dir"`
}

const maxRecentLayouts = 10

// DefaultAppConfig returns the configuration used on first run.
func DefaultAppConfig() AppConfig {
	return AppConfig{RecentLayouts: []string{}, OutputDir: "."}
}

// DefaultConfigDir returns the per-user configuration directory, ~/.roomplan.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".roomplan")
}

// DefaultConfigPath returns the default path for the config file.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.json")
}

// SaveAppConfig persists the config as JSON, creating parent directories.
func SaveAppConfig(path string, config AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadAppConfig reads the config from path. A missing file yields the
// defaults with no error.
func LoadAppConfig(path string) (AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultAppConfig(), nil
		}
		return AppConfig{}, err
	}
	var config AppConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return AppConfig{}, err
	}
	if config.RecentLayouts == nil {
		config.RecentLayouts = []string{}
	}
	return config, nil
}

// AddRecentLayout prepends path to the recent list, dropping duplicates
// and trimming to the cap.
func (c *AppConfig) AddRecentLayout(path string) {
	recent := []string{path}
	for _, p := range c.RecentLayouts {
		if p != path {
			recent = append(recent, p)
		}
	}
	if len(recent) > maxRecentLayouts {
		recent = recent[:maxRecentLayouts]
	}
	c.RecentLayouts = recent
}
