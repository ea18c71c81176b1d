// Package config loads objhook's YAML configuration.
package config

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DefaultTargetClass is the class hooked when none is configured.
const DefaultTargetClass = "SBRecordingIndicatorViewController"

// Config is the full configuration.
type Config struct {
	TargetClass string   `yaml:"target_class"`
	ClassPath   string   `yaml:"class_path"`
	BootClasses []string `yaml:"boot_classes"`
	LogLevel    string   `yaml:"log_level"`
	MetricsAddr string   `yaml:"metrics_addr"`
	Hooks       Hooks    `yaml:"hooks"`
}

// Hooks toggles individual hook policies.
type Hooks struct {
	IndicatorVisibility bool `yaml:"indicator_visibility"`
	ForceDisplay        bool `yaml:"force_display"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		TargetClass: DefaultTargetClass,
		LogLevel:    "info",
		Hooks: Hooks{
			IndicatorVisibility: true,
			ForceDisplay:        true,
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "reading config")
	}
	if err := Parse(data, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "parsing %s", path)
	}
	return cfg, nil
}

// Parse decodes YAML into cfg, keeping fields the document does not set,
// and validates the result.
func Parse(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	// An empty document overrides nothing.
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return cfg.Validate()
}

// Validate checks the configuration for values the tool cannot use.
func (c Config) Validate() error {
	if strings.TrimSpace(c.TargetClass) == "" {
		return errors.New("target_class must not be empty")
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel maps log_level to a slog.Level.
func (c Config) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, errors.Errorf("unknown log_level %q", c.LogLevel)
}
