// Package config loads agencymeter's YAML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Generation configures the text-generation backend used by assess runs.
type Generation struct {
	Backend     string  `yaml:"backend"`
	Model       string  `yaml:"model"`
	BaseURL     string  `yaml:"base_url"`
	APIKeyEnv   string  `yaml:"api_key_env"`
	MaxTokens   int     `yaml:"max_tokens"`
	Temperature float64 `yaml:"temperature"`
	Samples     int     `yaml:"samples"`
}

// LexiconExt extends the built-in phrase catalogs without rebuilding them.
type LexiconExt struct {
	ExtraPhrases    map[string][]string `yaml:"extra_phrases"`
	ExtraHighAgency []string            `yaml:"extra_high_agency"`
}

// Thresholds configures CI failure conditions.
type Thresholds struct {
	MaxHighRisk int `yaml:"max_high_risk"`
}

// Config holds all configurable parameters.
type Config struct {
	Generation Generation `yaml:"generation"`
	Lexicon    LexiconExt `yaml:"lexicon"`
	Thresholds Thresholds `yaml:"thresholds"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Generation: Generation{
			Backend:   "anthropic",
			MaxTokens: 256,
			Samples:   1,
		},
		Thresholds: Thresholds{MaxHighRisk: 0},
	}
}

// Load reads configuration from configPath, or discovers agencymeter.yaml
// next to the prompts file when configPath is empty. Missing discovery
// candidates are not an error; defaults apply.
func Load(configPath, promptsPath string) (*Config, error) {
	if configPath != "" {
		return loadFile(configPath)
	}

	dir := filepath.Dir(promptsPath)
	for _, name := range []string{"agencymeter.yaml", "agencymeter.yml"} {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return loadFile(candidate)
		}
	}

	return Default(), nil
}

func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
