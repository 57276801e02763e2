package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config captures the launcher-generation defaults a user can persist.
type Config struct {
	// DefaultMethod is the execution method used when none is given.
	DefaultMethod string `yaml:"default_method"`
	// Terminal is the default run-in-terminal flag.
	Terminal bool `yaml:"terminal"`
	// CopyToDesktop is the default desktop-copy flag.
	CopyToDesktop bool `yaml:"copy_to_desktop"`
	// ShowHints controls the update-desktop-database hint after installs.
	ShowHints *bool `yaml:"show_hints,omitempty"`
	// ExtraCategories extends the built-in category vocabulary.
	ExtraCategories []string `yaml:"extra_categories"`
	// Interpreters overrides the default interpreter per method name,
	// e.g. {python: /usr/bin/python3.12}.
	Interpreters map[string]string `yaml:"interpreters"`
}

// Default returns the baseline configuration.
func Default() Config {
	return Config{
		DefaultMethod: "direct",
		ShowHints:     boolPtr(true),
	}
}

// Load reads the YAML configuration from disk if it exists, otherwise returns
// the default configuration.
func Load(path string) (Config, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := Default()
			cfg.ApplyDefaults()
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.ApplyDefaults()
	return cfg, nil
}

// ApplyDefaults ensures fields fall back to sensible defaults when the YAML
// omits them.
func (c *Config) ApplyDefaults() {
	defaults := Default()

	if c.DefaultMethod == "" {
		c.DefaultMethod = defaults.DefaultMethod
	}
	if c.ShowHints == nil {
		c.ShowHints = boolPtr(true)
	}
}

// HintsEnabled returns the effective hint flag applying defaults.
func (c Config) HintsEnabled() bool {
	if c.ShowHints == nil {
		return true
	}
	return *c.ShowHints
}

// Marshal returns the YAML encoding of the configuration.
func (c Config) Marshal() ([]byte, error) {
	buf, err := yaml.Marshal(&c)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return buf, nil
}

func boolPtr(v bool) *bool {
	return &v
}
