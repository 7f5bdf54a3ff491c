// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/invowk/catls/internal/config"
	"github.com/invowk/catls/internal/uroot"

	"github.com/spf13/afero"
)

type (
	// ConfigProvider loads configuration using explicit options.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Loaded, error)
	}

	// App wires CLI services and shared dependencies. It is the composition
	// root for the CLI layer: every cobra handler receives an App and reads
	// streams, filesystem and configuration through it.
	App struct {
		Config    ConfigProvider
		fs        afero.Fs
		stdin     io.Reader
		stdout    io.Writer
		stderr    io.Writer
		dir       string
		configDir string
		lookupEnv func(string) (string, bool)

		// Per-invocation state filled by loadConfig.
		cfg     *config.Config
		cfgPath string
		cfgErr  error
	}

	// Dependencies defines the injection points for building an App. Nil
	// fields are replaced with production defaults by NewApp.
	Dependencies struct {
		Config ConfigProvider
		// FS backs utilities, scripts and configuration files.
		FS     afero.Fs
		Stdin  io.Reader
		Stdout io.Writer
		Stderr io.Writer
		// Dir is the working directory for the utilities; empty means the
		// process working directory.
		Dir string
		// ConfigDir overrides the platform configuration directory.
		ConfigDir string
		// LookupEnv replaces the process environment for CATLS_* overrides.
		LookupEnv func(string) (string, bool)
	}
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) (*App, error) {
	if deps.Stdin == nil {
		deps.Stdin = os.Stdin
	}
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.FS == nil {
		deps.FS = afero.NewOsFs()
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}

	return &App{
		Config:    deps.Config,
		fs:        deps.FS,
		stdin:     deps.Stdin,
		stdout:    deps.Stdout,
		stderr:    deps.Stderr,
		dir:       deps.Dir,
		configDir: deps.ConfigDir,
		lookupEnv: deps.LookupEnv,
	}, nil
}

// loadConfig resolves configuration for this invocation. A broken config
// file is remembered in cfgErr and the defaults are used instead, so that
// commands like `config init` keep working.
func (a *App) loadConfig(ctx context.Context, configFile string) {
	loaded, err := a.Config.Load(ctx, config.LoadOptions{
		ConfigFilePath: configFile,
		ConfigDirPath:  a.configDir,
		FS:             a.fs,
		LookupEnv:      a.lookupEnv,
	})
	if err != nil {
		slog.Debug("config load failed, using defaults", "error", err)
		a.cfg, a.cfgPath, a.cfgErr = config.DefaultConfig(), "", err
		return
	}
	a.cfg, a.cfgPath, a.cfgErr = loaded.Config, loaded.Path, nil
}

// currentConfig returns the loaded configuration or the defaults.
func (a *App) currentConfig() *config.Config {
	if a.cfg == nil {
		return config.DefaultConfig()
	}
	return a.cfg
}

// registry builds the utility registry from the loaded configuration.
func (a *App) registry() *uroot.Registry {
	cfg := a.currentConfig()
	return uroot.NewBuiltinRegistry(uroot.Settings{
		FS:            a.fs,
		SortThreshold: cfg.Cat.ParallelSortThreshold,
		TimeFormat:    cfg.Ls.TimeFormat,
		ColorAuto:     cfg.UI.Color == config.ColorAuto,
	})
}

// handlerContext binds the process handler context to the App streams.
func (a *App) handlerContext() *uroot.HandlerContext {
	hc := uroot.ProcessHandlerContext()
	hc.Stdout, hc.Stderr = a.stdout, a.stderr
	if a.dir != "" {
		hc.Dir = a.dir
	}
	if a.lookupEnv != nil {
		hc.LookupEnv = a.lookupEnv
	}
	return hc
}

// runUtility runs a built-in utility with the process-like handler context.
// args excludes the utility name.
func (a *App) runUtility(ctx context.Context, name string, args []string) error {
	ctx = uroot.WithHandlerContext(ctx, a.handlerContext())
	return a.registry().Run(ctx, name, append([]string{name}, args...))
}

// configDirPath returns the overridden or platform configuration directory.
func (a *App) configDirPath() (string, error) {
	if a.configDir != "" {
		return a.configDir, nil
	}
	return config.ConfigDir()
}
