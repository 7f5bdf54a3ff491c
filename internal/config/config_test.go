// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"errors"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/invowk/catls/internal/issue"
	"github.com/invowk/catls/internal/testutil"
	"github.com/invowk/catls/pkg/platform"

	"github.com/spf13/afero"
)

const testConfigDir = "/home/user/.config/catls"

func noEnv(string) (string, bool) { return "", false }

func envOf(vars map[string]string) func(string) (string, bool) {
	return func(name string) (string, bool) {
		v, ok := vars[name]
		return v, ok
	}
}

func writeConfig(t *testing.T, fsys afero.Fs, path, content string) {
	t.Helper()
	testutil.WriteFiles(t, fsys, map[string]string{path: content})
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	if cfg.UI.Color != ColorAuto {
		t.Errorf("default color = %q, want auto", cfg.UI.Color)
	}
	if cfg.UI.Verbose {
		t.Error("expected default verbose to be false")
	}
	if cfg.Log.Level != LogLevelWarn {
		t.Errorf("default log level = %q, want warn", cfg.Log.Level)
	}
	if cfg.Cat.ParallelSortThreshold != 10000 {
		t.Errorf("default threshold = %d, want 10000", cfg.Cat.ParallelSortThreshold)
	}
	if cfg.Ls.TimeFormat != "Jan 02 15:04" {
		t.Errorf("default time format = %q", cfg.Ls.TimeFormat)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
}

func TestConfigDir(t *testing.T) {
	if runtime.GOOS != platform.Linux {
		t.Skip("XDG lookup is linux-specific")
	}

	t.Setenv("XDG_CONFIG_HOME", "/tmp/test-xdg-config")
	dir, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir() returned error: %v", err)
	}
	if want := filepath.Join("/tmp/test-xdg-config", AppName); dir != want {
		t.Errorf("ConfigDir() = %s, want %s", dir, want)
	}

	home := t.TempDir()
	testutil.SetHomeDir(t, home)
	t.Setenv("XDG_CONFIG_HOME", "")
	dir, err = ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir() returned error: %v", err)
	}
	if want := filepath.Join(home, ".config", AppName); dir != want {
		t.Errorf("ConfigDir() = %s, want %s", dir, want)
	}
}

func TestLoad_DefaultsWhenNoConfigFile(t *testing.T) {
	t.Parallel()

	loaded, err := NewProvider().Load(t.Context(), LoadOptions{
		ConfigDirPath: testConfigDir,
		FS:            afero.NewMemMapFs(),
		LookupEnv:     noEnv,
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Path != "" {
		t.Errorf("Path = %q, want empty", loaded.Path)
	}
	if *loaded.Config != *DefaultConfig() {
		t.Errorf("Config = %+v, want defaults", *loaded.Config)
	}
}

func TestLoad_ConfigDirFile(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	path := filepath.Join(testConfigDir, "config.cue")
	writeConfig(t, fsys, path, `
ui: color: "never"
ls: time_format: "2006-01-02"
`)

	loaded, err := NewProvider().Load(t.Context(), LoadOptions{
		ConfigDirPath: testConfigDir,
		FS:            fsys,
		LookupEnv:     noEnv,
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Path != path {
		t.Errorf("Path = %q, want %q", loaded.Path, path)
	}

	cfg := loaded.Config
	if cfg.UI.Color != ColorNever {
		t.Errorf("UI.Color = %q, want never", cfg.UI.Color)
	}
	if cfg.Ls.TimeFormat != "2006-01-02" {
		t.Errorf("Ls.TimeFormat = %q", cfg.Ls.TimeFormat)
	}
	// Omitted keys keep defaults.
	if cfg.Cat.ParallelSortThreshold != DefaultParallelSortThreshold {
		t.Errorf("Cat.ParallelSortThreshold = %d, want default", cfg.Cat.ParallelSortThreshold)
	}
	if cfg.Log.Level != LogLevelWarn {
		t.Errorf("Log.Level = %q, want warn", cfg.Log.Level)
	}
}

func TestLoad_LocalFileFallback(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	writeConfig(t, fsys, "config.cue", `cat: parallel_sort_threshold: 0`)

	loaded, err := NewProvider().Load(t.Context(), LoadOptions{
		ConfigDirPath: testConfigDir,
		FS:            fsys,
		LookupEnv:     noEnv,
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Path != "config.cue" {
		t.Errorf("Path = %q, want config.cue", loaded.Path)
	}
	if loaded.Config.Cat.ParallelSortThreshold != 0 {
		t.Errorf("threshold = %d, want 0", loaded.Config.Cat.ParallelSortThreshold)
	}
}

func TestLoad_CustomPath(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	writeConfig(t, fsys, filepath.Join(testConfigDir, "config.cue"), `log: level: "error"`)
	writeConfig(t, fsys, "/etc/catls.cue", `log: level: "debug"`)

	loaded, err := NewProvider().Load(t.Context(), LoadOptions{
		ConfigFilePath: "/etc/catls.cue",
		ConfigDirPath:  testConfigDir,
		FS:             fsys,
		LookupEnv:      noEnv,
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Config.Log.Level != LogLevelDebug {
		t.Errorf("Log.Level = %q, want debug from the explicit file", loaded.Config.Log.Level)
	}
}

func TestLoad_CustomPath_NotFound(t *testing.T) {
	t.Parallel()

	_, err := NewProvider().Load(t.Context(), LoadOptions{
		ConfigFilePath: "/missing.cue",
		FS:             afero.NewMemMapFs(),
		LookupEnv:      noEnv,
	})

	var ae *issue.ActionableError
	if !errors.As(err, &ae) {
		t.Fatalf("expected ActionableError, got %T: %v", err, err)
	}
	if ae.Operation != "load configuration" || ae.Resource != "/missing.cue" {
		t.Errorf("ActionableError = %+v", ae)
	}
	if !ae.HasSuggestions() {
		t.Error("expected suggestions")
	}
}

func TestLoad_SchemaViolations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantMsg string
	}{
		{"bad color", `ui: color: "always"`, "ui.color"},
		{"negative threshold", `cat: parallel_sort_threshold: -1`, "cat.parallel_sort_threshold"},
		{"wrong type", `ui: verbose: "yes"`, "ui.verbose"},
		{"blank time format", `ls: time_format: "  "`, "ls.time_format"},
		{"unknown section", `sort: reverse: true`, "sort"},
		{"syntax error", `ui: {`, "config.cue"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fsys := afero.NewMemMapFs()
			writeConfig(t, fsys, "/c/config.cue", tt.content)

			_, err := NewProvider().Load(t.Context(), LoadOptions{
				ConfigFilePath: "/c/config.cue",
				FS:             fsys,
				LookupEnv:      noEnv,
			})
			var ae *issue.ActionableError
			if !errors.As(err, &ae) {
				t.Fatalf("expected ActionableError, got %T: %v", err, err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error = %q, want substring %q", err, tt.wantMsg)
			}
		})
	}
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	writeConfig(t, fsys, filepath.Join(testConfigDir, "config.cue"), `ls: time_format: "15:04"`)

	loaded, err := NewProvider().Load(t.Context(), LoadOptions{
		ConfigDirPath: testConfigDir,
		FS:            fsys,
		LookupEnv: envOf(map[string]string{
			"CATLS_LS_TIME_FORMAT":              "2006",
			"CATLS_CAT_PARALLEL_SORT_THRESHOLD": "42",
			"CATLS_UI_VERBOSE":                  "true",
		}),
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	cfg := loaded.Config
	if cfg.Ls.TimeFormat != "2006" {
		t.Errorf("environment should beat the file, got %q", cfg.Ls.TimeFormat)
	}
	if cfg.Cat.ParallelSortThreshold != 42 {
		t.Errorf("threshold = %d, want 42", cfg.Cat.ParallelSortThreshold)
	}
	if !cfg.UI.Verbose {
		t.Error("UI.Verbose = false, want true")
	}
}

func TestLoad_InvalidEnvironmentOverride(t *testing.T) {
	t.Parallel()

	_, err := NewProvider().Load(t.Context(), LoadOptions{
		ConfigDirPath: testConfigDir,
		FS:            afero.NewMemMapFs(),
		LookupEnv:     envOf(map[string]string{"CATLS_UI_COLOR": "rainbow"}),
	})
	if !errors.Is(err, ErrInvalidColorMode) {
		t.Fatalf("error = %v, want ErrInvalidColorMode", err)
	}
	var ae *issue.ActionableError
	if !errors.As(err, &ae) || ae.Operation != "validate configuration" {
		t.Errorf("expected validate configuration ActionableError, got %v", err)
	}
}

func TestLoad_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	if _, err := NewProvider().Load(ctx, LoadOptions{FS: afero.NewMemMapFs(), LookupEnv: noEnv}); !errors.Is(err, context.Canceled) {
		t.Errorf("Load() error = %v, want context.Canceled", err)
	}
}

func TestCreateDefaultConfig(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()

	path, created, err := CreateDefaultConfig(fsys, testConfigDir)
	if err != nil {
		t.Fatalf("CreateDefaultConfig() error = %v", err)
	}
	if !created || path != filepath.Join(testConfigDir, "config.cue") {
		t.Fatalf("CreateDefaultConfig() = %q, %v", path, created)
	}

	// The generated file must load back to the defaults.
	loaded, err := NewProvider().Load(t.Context(), LoadOptions{ConfigFilePath: path, FS: fsys, LookupEnv: noEnv})
	if err != nil {
		t.Fatalf("Load(generated) error = %v", err)
	}
	if *loaded.Config != *DefaultConfig() {
		t.Errorf("generated config = %+v, want defaults", *loaded.Config)
	}

	writeConfig(t, fsys, path, `ui: color: "never"`)
	if _, created, err := CreateDefaultConfig(fsys, testConfigDir); err != nil || created {
		t.Errorf("second CreateDefaultConfig() created=%v err=%v, want existing file kept", created, err)
	}
	data, _ := afero.ReadFile(fsys, path)
	if string(data) != `ui: color: "never"` {
		t.Errorf("existing file overwritten: %q", data)
	}
}
