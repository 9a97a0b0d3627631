// Package config handles CLI configuration.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/tidwall/jsonc"
)

const (
	// DefaultOutputFormat is the default output format.
	DefaultOutputFormat = "table"
)

// Config represents the CLI configuration.
type Config struct {
	OutputFormat string `json:"output_format"`
	DefaultList  string `json:"default_list,omitempty"`
}

// Dir returns the path to the ~/.picker directory.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".picker"), nil
}

// EnsureDir creates the config directory if it doesn't exist.
func EnsureDir() error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0700)
}

// configPath returns the path to the config file.
func configPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LoadConfig loads the configuration from disk, creating defaults if
// necessary. The file may contain // and /* */ comments.
func LoadConfig() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{OutputFormat: DefaultOutputFormat}, nil
	}
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(jsonc.ToJSON(data), &cfg); err != nil {
		return nil, err
	}

	if cfg.OutputFormat == "" {
		cfg.OutputFormat = DefaultOutputFormat
	}

	return &cfg, nil
}

// SaveConfig saves the configuration to disk.
func SaveConfig(cfg *Config) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	path, err := configPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}

// GetOutputFormat returns the output format from config.
func GetOutputFormat() string {
	cfg, err := LoadConfig()
	if err != nil {
		return DefaultOutputFormat
	}
	return cfg.OutputFormat
}

// GetDefaultList returns the default named list from config.
func GetDefaultList() string {
	cfg, err := LoadConfig()
	if err != nil {
		return ""
	}
	return cfg.DefaultList
}

// SetOutputFormat updates the output format in config.
func SetOutputFormat(format string) error {
	cfg, err := LoadConfig()
	if err != nil {
		cfg = &Config{OutputFormat: DefaultOutputFormat}
	}
	cfg.OutputFormat = format
	return SaveConfig(cfg)
}

// SetDefaultList updates the default named list in config.
func SetDefaultList(name string) error {
	cfg, err := LoadConfig()
	if err != nil {
		cfg = &Config{OutputFormat: DefaultOutputFormat}
	}
	cfg.DefaultList = name
	return SaveConfig(cfg)
}
