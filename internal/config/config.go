// Package config holds runtime configuration: defaults, CLI flag parsing,
// environment loading, and validation. CLI flags take precedence over
// environment variables, which take precedence over values from an env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/subosito/gotenv"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Environment variable names read by [LoadEnv].
const (
	EnvMediaFolder = "MEDIA_FOLDER"
	EnvDryRun      = "DRY_RUN"
	EnvWatch       = "MEDIA_WATCH"
	EnvLogFile     = "LOG_FILE"
)

// Config holds all runtime settings. It is populated by [DefaultConfig],
// then mutated by [ParseFlags] and [LoadEnv] before being passed (by
// pointer) to packages that need it.
type Config struct {
	// Library root scanned for episode files. Set from the positional arg
	// or MEDIA_FOLDER.
	MediaFolder string

	// Behavior flags.
	DryRun bool // Log intended renames without touching the filesystem.
	Watch  bool // Keep running and re-scan on filesystem changes.

	// Env file handling.
	EnvFile     string // Optional explicit env file path (default: ".env" if present).
	EnvOverride bool   // Let env file values override already-set variables.

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
	CheckOnly bool      // Run --check diagnostics and exit.
}

// DefaultConfig returns a Config with all defaults set. Used as the base
// before [ParseFlags] and [LoadEnv] apply overrides.
func DefaultConfig() Config {
	return Config{
		ColorMode: ColorAuto,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// LoadEnv loads variables from an env file into the process environment and
// then fills Config fields that flags left unset. An explicitly requested
// env file must exist; the default ".env" is loaded only when present.
func (c *Config) LoadEnv() error {
	path := c.EnvFile
	if path == "" {
		if _, err := os.Stat(".env"); err == nil {
			path = ".env"
		}
	} else if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("env file %s: %w", path, err)
	}

	if path != "" {
		load := gotenv.Load
		if c.EnvOverride {
			load = gotenv.OverLoad
		}
		if err := load(path); err != nil {
			return fmt.Errorf("env file %s: %w", path, err)
		}
	}

	c.applyEnv()
	return nil
}

// applyEnv fills fields from the process environment. Values already set on
// the command line win.
func (c *Config) applyEnv() {
	if c.MediaFolder == "" {
		c.MediaFolder = NormalizeDirArg(strings.TrimSpace(os.Getenv(EnvMediaFolder)))
	}
	if os.Getenv(EnvDryRun) == "1" {
		c.DryRun = true
	}
	if os.Getenv(EnvWatch) == "1" {
		c.Watch = true
	}
	if c.LogFile == "" {
		c.LogFile = strings.TrimSpace(os.Getenv(EnvLogFile))
	}
}

// Validate checks that enum fields hold valid values. When not in CheckOnly
// mode, it also requires a media folder from either the positional argument
// or MEDIA_FOLDER.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if c.CheckOnly {
		return nil
	}
	if c.MediaFolder == "" {
		return errors.New("no media folder (pass a directory argument or set MEDIA_FOLDER)")
	}
	return nil
}
