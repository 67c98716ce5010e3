package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// ReferenceDir points at the GWI field-reference documents.
	ReferenceDir string `yaml:"reference_dir,omitempty"`

	// HistoryLimit caps the retained conversation turns. 0 keeps all.
	HistoryLimit int `yaml:"history_limit,omitempty"`

	// LogFile receives the structured debug log. Empty disables logging.
	LogFile string `yaml:"log_file,omitempty"`

	// ShowPanel opens the audience side panel on startup.
	ShowPanel bool `yaml:"show_panel"`
}

func DefaultConfig() *Config {
	dir, err := ConfigDir()
	if err != nil {
		return &Config{ShowPanel: true}
	}
	return &Config{
		ReferenceDir: filepath.Join(dir, "context"),
		LogFile:      filepath.Join(dir, "gwichat.log"),
		ShowPanel:    true,
	}
}

func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "gwichat"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Save() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}
