// Package config holds user preferences for the fitfolio viewer.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config holds user preferences.
type Config struct {
	Theme       string `json:"theme"`        // "light", "dark", or "" for auto
	Mouse       bool   `json:"mouse"`        // Mouse wheel and click support
	ContentPath string `json:"content_path"` // Default content file
	Watch       bool   `json:"watch"`        // Reload content on file changes
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Mouse: true,
		Watch: true,
	}
}

// ConfigDir returns the directory where config is stored.
func ConfigDir() (string, error) {
	// Prefer a project-local .fitfolio directory if present or creatable.
	if cwd, err := os.Getwd(); err == nil {
		localDir := filepath.Join(cwd, ".fitfolio")
		if stat, err := os.Stat(localDir); (err == nil && stat.IsDir()) || os.IsNotExist(err) {
			return localDir, nil
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".fitfolio"), nil
}

// ConfigFile returns the full path to the config file.
func ConfigFile() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the configuration from disk. A missing file yields the
// defaults without error.
func Load() (Config, error) {
	path, err := ConfigFile()
	if err != nil {
		return DefaultConfig(), err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return DefaultConfig(), err
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), err
	}
	return cfg, nil
}

// Save writes the configuration to disk.
func Save(cfg Config) error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path, err := ConfigFile()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
