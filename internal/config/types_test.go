// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"log/slog"
	"reflect"
	"strings"
	"testing"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

func TestColorMode_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		mode ColorMode
		want bool
	}{
		{ColorAuto, true},
		{ColorNever, true},
		{"always", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			t.Parallel()

			ok, errs := tt.mode.IsValid()
			if ok != tt.want {
				t.Fatalf("ColorMode(%q).IsValid() = %v, want %v", tt.mode, ok, tt.want)
			}
			if !ok && (len(errs) != 1 || !errors.Is(errs[0], ErrInvalidColorMode)) {
				t.Errorf("errors = %v, want one ErrInvalidColorMode", errs)
			}
		})
	}
}

func TestLogLevel_IsValid(t *testing.T) {
	t.Parallel()

	for _, level := range []LogLevel{LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError} {
		if ok, errs := level.IsValid(); !ok {
			t.Errorf("LogLevel(%q).IsValid() = false, %v", level, errs)
		}
	}

	ok, errs := LogLevel("trace").IsValid()
	if ok {
		t.Fatal("LogLevel(trace).IsValid() = true")
	}
	var levelErr *InvalidLogLevelError
	if !errors.As(errs[0], &levelErr) || levelErr.Value != "trace" {
		t.Errorf("errors.As InvalidLogLevelError = %+v", levelErr)
	}
}

func TestLogLevel_SlogLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level LogLevel
		want  slog.Level
	}{
		{LogLevelDebug, slog.LevelDebug},
		{LogLevelInfo, slog.LevelInfo},
		{LogLevelWarn, slog.LevelWarn},
		{LogLevelError, slog.LevelError},
		{"", slog.LevelWarn},
	}

	for _, tt := range tests {
		if got := tt.level.SlogLevel(); got != tt.want {
			t.Errorf("LogLevel(%q).SlogLevel() = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestConfig_EffectiveLogLevel(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if got := cfg.EffectiveLogLevel(); got != slog.LevelWarn {
		t.Errorf("EffectiveLogLevel() = %v, want warn", got)
	}
	cfg.UI.Verbose = true
	if got := cfg.EffectiveLogLevel(); got != slog.LevelDebug {
		t.Errorf("EffectiveLogLevel() with verbose = %v, want debug", got)
	}
}

func TestConfig_ValidateJoinsErrors(t *testing.T) {
	t.Parallel()

	cfg := &Config{
		UI:  UIConfig{Color: "sometimes"},
		Log: LogConfig{Level: "loud"},
		Cat: CatConfig{ParallelSortThreshold: -5},
		Ls:  LsConfig{TimeFormat: " "},
	}

	err := cfg.Validate()
	for _, sentinel := range []error{ErrInvalidColorMode, ErrInvalidLogLevel, ErrInvalidSortThreshold, ErrInvalidTimeFormat} {
		if !errors.Is(err, sentinel) {
			t.Errorf("Validate() error %v does not wrap %v", err, sentinel)
		}
	}
}

// cueFields lists the regular field names of a CUE struct definition.
func cueFields(t *testing.T, def string) map[string]bool {
	t.Helper()

	schema := cuecontext.New().CompileString(configSchema)
	if err := schema.Err(); err != nil {
		t.Fatalf("failed to compile CUE schema: %v", err)
	}
	val := schema.LookupPath(cue.ParsePath(def))
	if err := val.Err(); err != nil {
		t.Fatalf("failed to lookup %s: %v", def, err)
	}

	iter, err := val.Fields(cue.Optional(true))
	if err != nil {
		t.Fatalf("failed to iterate CUE fields: %v", err)
	}
	fields := make(map[string]bool)
	for iter.Next() {
		fields[strings.TrimSuffix(iter.Selector().String(), "?")] = true
	}
	return fields
}

// goFields lists the json tag names of a Go struct.
func goFields(typ reflect.Type) map[string]bool {
	fields := make(map[string]bool)
	for i := range typ.NumField() {
		name, _, _ := strings.Cut(typ.Field(i).Tag.Get("json"), ",")
		if name != "" && name != "-" {
			fields[name] = true
		}
	}
	return fields
}

func TestSchemaSync(t *testing.T) {
	t.Parallel()

	tests := []struct {
		def string
		typ reflect.Type
	}{
		{"#Config", reflect.TypeFor[Config]()},
		{"#UIConfig", reflect.TypeFor[UIConfig]()},
		{"#LogConfig", reflect.TypeFor[LogConfig]()},
		{"#CatConfig", reflect.TypeFor[CatConfig]()},
		{"#LsConfig", reflect.TypeFor[LsConfig]()},
	}

	for _, tt := range tests {
		t.Run(tt.def, func(t *testing.T) {
			t.Parallel()

			inCUE, inGo := cueFields(t, tt.def), goFields(tt.typ)
			for name := range inCUE {
				if !inGo[name] {
					t.Errorf("CUE field %q has no Go json tag in %s", name, tt.typ.Name())
				}
			}
			for name := range inGo {
				if !inCUE[name] {
					t.Errorf("Go json tag %q is missing from CUE %s", name, tt.def)
				}
			}
		})
	}
}
