// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

const (
	// ColorAuto colors ls output only when stdout is a terminal.
	ColorAuto ColorMode = "auto"
	// ColorNever disables colored output.
	ColorNever ColorMode = "never"

	// LogLevelDebug enables debug logging.
	LogLevelDebug LogLevel = "debug"
	// LogLevelInfo enables info logging.
	LogLevelInfo LogLevel = "info"
	// LogLevelWarn enables warning logging. This is the default.
	LogLevelWarn LogLevel = "warn"
	// LogLevelError limits logging to errors.
	LogLevelError LogLevel = "error"

	// DumpFormatCUE renders the configuration as CUE.
	DumpFormatCUE DumpFormat = "cue"
	// DumpFormatTOML renders the configuration as TOML.
	DumpFormatTOML DumpFormat = "toml"
	// DumpFormatYAML renders the configuration as YAML.
	DumpFormatYAML DumpFormat = "yaml"

	// DefaultParallelSortThreshold mirrors catsim.DefaultParallelSortThreshold.
	DefaultParallelSortThreshold = 10000
	// DefaultTimeFormat mirrors lssim.DefaultTimeFormat.
	DefaultTimeFormat = "Jan 02 15:04"
)

var (
	// ErrInvalidColorMode is the sentinel error wrapped by InvalidColorModeError.
	ErrInvalidColorMode = errors.New("invalid color mode")
	// ErrInvalidLogLevel is the sentinel error wrapped by InvalidLogLevelError.
	ErrInvalidLogLevel = errors.New("invalid log level")
	// ErrInvalidDumpFormat is the sentinel error wrapped by InvalidDumpFormatError.
	ErrInvalidDumpFormat = errors.New("invalid dump format")
	// ErrInvalidSortThreshold is the sentinel error wrapped by InvalidSortThresholdError.
	ErrInvalidSortThreshold = errors.New("invalid parallel sort threshold")
	// ErrInvalidTimeFormat is the sentinel error wrapped by InvalidTimeFormatError.
	ErrInvalidTimeFormat = errors.New("invalid time format")
)

type (
	// ColorMode selects when ls colors entry names.
	ColorMode string

	// LogLevel is the minimum level written by the slog handler.
	LogLevel string

	// DumpFormat is an output format accepted by Dump.
	DumpFormat string

	// InvalidColorModeError is returned when a ColorMode value is not recognized.
	InvalidColorModeError struct {
		Value ColorMode
	}

	// InvalidLogLevelError is returned when a LogLevel value is not recognized.
	InvalidLogLevelError struct {
		Value LogLevel
	}

	// InvalidDumpFormatError is returned when a DumpFormat value is not recognized.
	InvalidDumpFormatError struct {
		Value DumpFormat
	}

	// InvalidSortThresholdError is returned for a negative parallel sort threshold.
	InvalidSortThresholdError struct {
		Value int
	}

	// InvalidTimeFormatError is returned for an empty or whitespace-only time layout.
	InvalidTimeFormatError struct {
		Value string
	}

	// Config holds the application configuration.
	Config struct {
		// UI configures colors and verbosity.
		UI UIConfig `json:"ui" mapstructure:"ui" toml:"ui" yaml:"ui"`
		// Log configures the slog handler.
		Log LogConfig `json:"log" mapstructure:"log" toml:"log" yaml:"log"`
		// Cat configures the cat utility.
		Cat CatConfig `json:"cat" mapstructure:"cat" toml:"cat" yaml:"cat"`
		// Ls configures the ls utility.
		Ls LsConfig `json:"ls" mapstructure:"ls" toml:"ls" yaml:"ls"`
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		// Color selects when ls colors names.
		Color ColorMode `json:"color" mapstructure:"color" toml:"color" yaml:"color"`
		// Verbose forces debug logging.
		Verbose bool `json:"verbose" mapstructure:"verbose" toml:"verbose" yaml:"verbose"`
	}

	// LogConfig configures logging.
	LogConfig struct {
		Level LogLevel `json:"level" mapstructure:"level" toml:"level" yaml:"level"`
	}

	// CatConfig configures the cat utility.
	CatConfig struct {
		// ParallelSortThreshold is the line count above which -sa sorts in parallel.
		ParallelSortThreshold int `json:"parallel_sort_threshold" mapstructure:"parallel_sort_threshold" toml:"parallel_sort_threshold" yaml:"parallel_sort_threshold"`
	}

	// LsConfig configures the ls utility.
	LsConfig struct {
		// TimeFormat is the Go time layout used by the long listing.
		TimeFormat string `json:"time_format" mapstructure:"time_format" toml:"time_format" yaml:"time_format"`
	}
)

// Error implements the error interface for InvalidColorModeError.
func (e *InvalidColorModeError) Error() string {
	return fmt.Sprintf("invalid color mode %q (valid: auto, never)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidColorModeError) Unwrap() error { return ErrInvalidColorMode }

// String returns the string representation of the ColorMode.
func (m ColorMode) String() string { return string(m) }

// IsValid returns whether the ColorMode is one of the defined modes,
// and a list of validation errors if it is not.
func (m ColorMode) IsValid() (bool, []error) {
	switch m {
	case ColorAuto, ColorNever:
		return true, nil
	default:
		return false, []error{&InvalidColorModeError{Value: m}}
	}
}

// Error implements the error interface for InvalidLogLevelError.
func (e *InvalidLogLevelError) Error() string {
	return fmt.Sprintf("invalid log level %q (valid: debug, info, warn, error)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidLogLevelError) Unwrap() error { return ErrInvalidLogLevel }

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string { return string(l) }

// IsValid returns whether the LogLevel is one of the defined levels,
// and a list of validation errors if it is not.
func (l LogLevel) IsValid() (bool, []error) {
	switch l {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return true, nil
	default:
		return false, []error{&InvalidLogLevelError{Value: l}}
	}
}

// SlogLevel maps the level onto log/slog. Unknown values map to warn.
func (l LogLevel) SlogLevel() slog.Level {
	switch l {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelInfo:
		return slog.LevelInfo
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// Error implements the error interface for InvalidDumpFormatError.
func (e *InvalidDumpFormatError) Error() string {
	return fmt.Sprintf("invalid dump format %q (valid: cue, toml, yaml)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidDumpFormatError) Unwrap() error { return ErrInvalidDumpFormat }

// String returns the string representation of the DumpFormat.
func (f DumpFormat) String() string { return string(f) }

// IsValid returns whether the DumpFormat is one of the supported formats,
// and a list of validation errors if it is not.
func (f DumpFormat) IsValid() (bool, []error) {
	switch f {
	case DumpFormatCUE, DumpFormatTOML, DumpFormatYAML:
		return true, nil
	default:
		return false, []error{&InvalidDumpFormatError{Value: f}}
	}
}

// Error implements the error interface for InvalidSortThresholdError.
func (e *InvalidSortThresholdError) Error() string {
	return fmt.Sprintf("invalid cat.parallel_sort_threshold %d: must be >= 0", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidSortThresholdError) Unwrap() error { return ErrInvalidSortThreshold }

// Error implements the error interface for InvalidTimeFormatError.
func (e *InvalidTimeFormatError) Error() string {
	return fmt.Sprintf("invalid ls.time_format %q: must not be empty or whitespace-only", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidTimeFormatError) Unwrap() error { return ErrInvalidTimeFormat }

// Validate checks every field and joins all failures. Files are already
// checked by the CUE schema; this catches environment overrides.
func (c *Config) Validate() error {
	var errs []error
	if ok, fieldErrs := c.UI.Color.IsValid(); !ok {
		errs = append(errs, fieldErrs...)
	}
	if ok, fieldErrs := c.Log.Level.IsValid(); !ok {
		errs = append(errs, fieldErrs...)
	}
	if c.Cat.ParallelSortThreshold < 0 {
		errs = append(errs, &InvalidSortThresholdError{Value: c.Cat.ParallelSortThreshold})
	}
	if strings.TrimSpace(c.Ls.TimeFormat) == "" {
		errs = append(errs, &InvalidTimeFormatError{Value: c.Ls.TimeFormat})
	}
	return errors.Join(errs...)
}

// EffectiveLogLevel returns debug when verbose output is requested and the
// configured level otherwise.
func (c *Config) EffectiveLogLevel() slog.Level {
	if c.UI.Verbose {
		return slog.LevelDebug
	}
	return c.Log.Level.SlogLevel()
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			Color:   ColorAuto,
			Verbose: false,
		},
		Log: LogConfig{
			Level: LogLevelWarn,
		},
		Cat: CatConfig{
			ParallelSortThreshold: DefaultParallelSortThreshold,
		},
		Ls: LsConfig{
			TimeFormat: DefaultTimeFormat,
		},
	}
}
