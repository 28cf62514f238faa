package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

type LocationConfig struct {
	Lat float64 `yaml:"lat"`
	Lng float64 `yaml:"lng"`
}

type Config struct {
	StorePath       string         `yaml:"store_path"`
	LogPath         string         `yaml:"log_path"`
	ExportDir       string         `yaml:"export_dir"`
	ShareBaseURL    string         `yaml:"share_base_url"`
	GeocodeURL      string         `yaml:"geocode_url"`
	AutoSaveSeconds int            `yaml:"auto_save_seconds"`
	Language        string         `yaml:"language"`
	Location        LocationConfig `yaml:"location"`

	// AutoSaveInterval is derived from AutoSaveSeconds by Load.
	AutoSaveInterval time.Duration `yaml:"-"`
}

func DefaultConfigPath() string {
	exe, err := os.Executable()
	if err != nil {
		return "config.yml"
	}
	return filepath.Join(filepath.Dir(exe), "config.yml")
}

func DefaultStorePath() string {
	exe, err := os.Executable()
	if err != nil {
		return "notekeep.db"
	}
	return filepath.Join(filepath.Dir(exe), "notekeep.db")
}

func DefaultLogPath() string {
	exe, err := os.Executable()
	if err != nil {
		return "notekeep.log"
	}
	return filepath.Join(filepath.Dir(exe), "notekeep.log")
}

func ConfigExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

func Load(path string) (*Config, error) {
	cfg := &Config{
		StorePath:       DefaultStorePath(),
		LogPath:         DefaultLogPath(),
		ExportDir:       ".",
		ShareBaseURL:    "https://notekeep.local/notes",
		AutoSaveSeconds: 3,
		Language:        "en",
	}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// A hand-edited config may blank out fields; fall back per field.
	if cfg.StorePath == "" {
		cfg.StorePath = DefaultStorePath()
	}
	if cfg.LogPath == "" {
		cfg.LogPath = DefaultLogPath()
	}
	if cfg.ExportDir == "" {
		cfg.ExportDir = "."
	}
	if cfg.ShareBaseURL == "" {
		cfg.ShareBaseURL = "https://notekeep.local/notes"
	}
	if cfg.AutoSaveSeconds <= 0 {
		cfg.AutoSaveSeconds = 3
	}
	cfg.AutoSaveInterval = time.Duration(cfg.AutoSaveSeconds) * time.Second
	if cfg.Language == "" {
		cfg.Language = "en"
	}
	cfg.StorePath = expandHome(cfg.StorePath)
	cfg.LogPath = expandHome(cfg.LogPath)
	cfg.ExportDir = expandHome(cfg.ExportDir)

	return cfg, nil
}

func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
