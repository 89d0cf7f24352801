// Package config loads the optional YAML configuration file controlling
// startup defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Theme selects how the TUI colors are chosen.
const (
	ThemeAuto  = "auto"
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Config holds startup defaults. Command-line flags override every field.
type Config struct {
	// Language is a BCP-47 tag resolved against the supported languages.
	Language string `yaml:"language"`
	// Dataset is the path of a YAML dataset replacing the embedded one.
	Dataset string `yaml:"dataset"`
	// LogFile is where JSON logs go; empty disables logging.
	LogFile string `yaml:"log_file"`
	// Theme is auto, dark, or light.
	Theme string `yaml:"theme"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{Theme: ThemeAuto}
}

// Load reads a configuration file. An empty path returns the defaults; a
// missing file at an explicit path is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Theme {
	case "", ThemeAuto, ThemeDark, ThemeLight:
		return nil
	default:
		return fmt.Errorf("unknown theme %q", c.Theme)
	}
}
