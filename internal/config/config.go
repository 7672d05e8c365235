// Package config resolves logging settings for docxcat from an optional YAML
// file and environment variables. Environment wins over the file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	yaml "gopkg.in/yaml.v3"
)

const (
	EnvConfigFile = "DOCXTEXT_CONFIG"
	EnvLogLevel   = "DOCXTEXT_LOG_LEVEL"
	EnvLogFormat  = "DOCXTEXT_LOG_FORMAT"
)

const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config holds settings that never affect extraction output.
type Config struct {
	LogLevel  string `yaml:"logLevel"`
	LogFormat string `yaml:"logFormat"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		LogLevel:  "warn",
		LogFormat: FormatConsole,
	}
}

// Load reads configuration from the process environment.
func Load() (Config, error) {
	return LoadFrom(os.Getenv)
}

// LoadFrom resolves configuration using getenv for lookups. The returned
// Config is usable even when an error is reported; an invalid value resets
// it to Default.
func LoadFrom(getenv func(string) string) (Config, error) {
	cfg := Default()

	if path := strings.TrimSpace(getenv(EnvConfigFile)); path != "" {
		if err := cfg.mergeFile(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return cfg, err
		}
	}

	if v := strings.TrimSpace(getenv(EnvLogLevel)); v != "" {
		cfg.LogLevel = v
	}
	if v := strings.TrimSpace(getenv(EnvLogFormat)); v != "" {
		cfg.LogFormat = v
	}

	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var fc Config
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if fc.LogLevel != "" {
		c.LogLevel = fc.LogLevel
	}
	if fc.LogFormat != "" {
		c.LogFormat = fc.LogFormat
	}
	return nil
}

// Validate checks the level and format names.
func (c Config) Validate() error {
	if _, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	switch strings.ToLower(c.LogFormat) {
	case FormatConsole, FormatJSON:
	default:
		return fmt.Errorf("invalid log format %q (must be console or json)", c.LogFormat)
	}
	return nil
}

// Logger builds a zerolog.Logger writing to w.
func (c Config) Logger(w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		level = zerolog.WarnLevel
	}

	if strings.ToLower(c.LogFormat) != FormatJSON {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
