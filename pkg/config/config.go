// Package config handles battlecard configuration loading.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure.
type Config struct {
	Service ServiceConfig `yaml:"service"`
	Export  ExportConfig  `yaml:"export"`
	Wizard  WizardConfig  `yaml:"wizard"`
}

// ServiceConfig holds generation service settings.
type ServiceConfig struct {
	URL     string        `yaml:"url"`
	APIKey  string        `yaml:"api_key"`
	Timeout time.Duration `yaml:"timeout"`
}

// ExportConfig holds document export settings.
type ExportConfig struct {
	Path         string `yaml:"path"`
	Author       string `yaml:"author"`
	Confidential string `yaml:"confidential_notice"`
	Compress     bool   `yaml:"compress"`
}

// WizardConfig holds wizard session settings.
type WizardConfig struct {
	HistoryFile     string   `yaml:"history_file"`
	DefaultTemplate string   `yaml:"default_template"`
	DefaultSections []string `yaml:"default_sections"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Service: ServiceConfig{
			URL:     "http://localhost:8090",
			Timeout: 120 * time.Second,
		},
		Export: ExportConfig{
			Path:         "./cards",
			Confidential: "CONFIDENTIAL - For internal sales use only",
			Compress:     true,
		},
		Wizard: WizardConfig{
			HistoryFile:     ".battlecard_history",
			DefaultTemplate: "standard",
			DefaultSections: []string{
				"overview",
				"strengths",
				"weaknesses",
				"differentiators",
				"objections",
				"pricing",
				"discoveryQuestions",
				"testimonials",
			},
		},
	}
}

// Load loads configuration from a file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// LoadOrDefault loads config from path, or returns default if not found.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}

	return Load(path)
}

// Save saves configuration to a file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	if _, err := os.Stat("battlecard.yaml"); err == nil {
		return "battlecard.yaml"
	}
	if _, err := os.Stat("config/battlecard.yaml"); err == nil {
		return "config/battlecard.yaml"
	}
	return "battlecard.yaml"
}

// InitConfig creates a default config file if it doesn't exist.
func InitConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil // Already exists
	}

	cfg := Default()
	return cfg.Save(path)
}
