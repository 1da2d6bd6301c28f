// Package config handles reading ovenreader.toml.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/BurntSushi/toml"

	"ovenreader/internal/report"
)

// DefaultFileName is looked up in the working directory when no path is given
const DefaultFileName = "ovenreader.toml"

// Config represents the configuration stored in ovenreader.toml.
type Config struct {
	Parser ParserConfig `toml:"parser"`
	Output OutputConfig `toml:"output"`
	Log    LogConfig    `toml:"log"`
	View   ViewConfig   `toml:"view"`
}

// ParserConfig contains report parsing configuration.
type ParserConfig struct {
	// Timezone the controller clock runs in, as an IANA name or "Local".
	// Defaults to "UTC".
	Timezone string `toml:"timezone"`
}

// OutputConfig controls how parsed records are printed.
type OutputConfig struct {
	// Format is one of "text", "json", "yaml". Defaults to "text".
	Format string `toml:"format"`
}

// LogConfig controls the debug log.
type LogConfig struct {
	// Level is one of "debug", "info", "warn", "error". Defaults to "info".
	Level string `toml:"level"`

	// File receives JSON log lines in append mode. Empty disables logging
	// unless --verbose sends it to stderr.
	File string `toml:"file"`
}

// ViewConfig controls the terminal viewer.
type ViewConfig struct {
	ShowHelp       bool `toml:"show_help"`
	SparklineWidth int  `toml:"sparkline_width"`
}

// DefaultConfig returns the configuration used when no file exists
func DefaultConfig() Config {
	return Config{
		Parser: ParserConfig{Timezone: "UTC"},
		Output: OutputConfig{Format: string(report.FormatText)},
		Log:    LogConfig{Level: "info"},
		View:   ViewConfig{ShowHelp: true, SparklineWidth: 40},
	}
}

// Load reads the config at path over the defaults. An empty path means
// DefaultFileName, which may be absent; an explicit path must exist.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	explicit := path != ""
	if !explicit {
		path = DefaultFileName
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every enumerated value
func (c Config) Validate() error {
	if _, err := c.Location(); err != nil {
		return err
	}
	if _, err := report.ParseFormat(c.Output.Format); err != nil {
		return err
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	if c.View.SparklineWidth < 0 {
		return fmt.Errorf("view.sparkline_width must not be negative, got %d", c.View.SparklineWidth)
	}
	return nil
}

// Location resolves the parser timezone
func (c Config) Location() (*time.Location, error) {
	switch tz := strings.TrimSpace(c.Parser.Timezone); tz {
	case "", "UTC":
		return time.UTC, nil
	case "Local":
		return time.Local, nil
	default:
		loc, err := time.LoadLocation(tz)
		if err != nil {
			return nil, fmt.Errorf("parser.timezone: %w", err)
		}
		return loc, nil
	}
}

// LogLevel maps the configured level name to a slog level
func (c Config) LogLevel() (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(c.Log.Level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("log.level %q is not debug, info, warn or error", c.Log.Level)
	}
}

// OutputFormat returns the validated output format
func (c Config) OutputFormat() report.Format {
	f, err := report.ParseFormat(c.Output.Format)
	if err != nil {
		return report.FormatText
	}
	return f
}
