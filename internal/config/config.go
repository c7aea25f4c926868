// Package config loads the junction tool's settings from an optional TOML
// file.
//
//	log_level  = "debug"  # any logrus level, default "info"
//	log_format = "json"   # "text" or "json", default "text"
//	trace      = true     # log a span for every operation, default false
package config

import (
	"fmt"
	"sort"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

const (
	keyLogLevel  = "log_level"
	keyLogFormat = "log_format"
	keyTrace     = "trace"
)

type Config struct {
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
	Trace     bool   `toml:"trace"`
}

// Default returns the settings used when no file is given.
func Default() *Config {
	return &Config{
		LogLevel:  logrus.InfoLevel.String(),
		LogFormat: FormatText,
	}
}

// Load reads the TOML file at path. Keys missing from the file keep their
// default values; unknown keys are an error.
func Load(path string) (*Config, error) {
	tree, err := toml.LoadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load TOML %s", path)
	}

	if unknown := lo.Without(tree.Keys(), keyLogLevel, keyLogFormat, keyTrace); len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, fmt.Errorf("%s: unknown keys %q", path, unknown)
	}

	c := Default()
	if err := tree.Unmarshal(c); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal TOML %s", path)
	}
	if c.LogLevel == "" {
		c.LogLevel = Default().LogLevel
	}
	if c.LogFormat == "" {
		c.LogFormat = Default().LogFormat
	}
	if err := c.Validate(); err != nil {
		return nil, errors.Wrap(err, path)
	}
	return c, nil
}

// Validate checks that every setting holds an allowed value.
func (c *Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%s: %w", keyLogLevel, err)
	}
	switch c.LogFormat {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("%s: unsupported log format %q, expected %q or %q", keyLogFormat, c.LogFormat, FormatText, FormatJSON)
	}
	return nil
}

// Level returns the parsed log level, or [logrus.InfoLevel] if it is invalid.
func (c *Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

// Formatter returns the logrus formatter for the configured format.
func (c *Config) Formatter() logrus.Formatter {
	if c.LogFormat == FormatJSON {
		return &logrus.JSONFormatter{}
	}
	return &logrus.TextFormatter{FullTimestamp: true}
}
