// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/invowk/catls/internal/config"
	"github.com/invowk/catls/internal/issue"

	"github.com/spf13/cobra"
)

// newConfigCommand creates the `catls config` command tree.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage catls configuration",
		Long: `Manage catls configuration.

Configuration is stored in:
  - Linux: ~/.config/catls/config.cue
  - macOS: ~/Library/Application Support/catls/config.cue
  - Windows: %APPDATA%\catls\config.cue

Every key can be overridden with a CATLS_ environment variable, for example
CATLS_UI_COLOR=never or CATLS_LS_TIME_FORMAT="2006-01-02 15:04".`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(app)
		},
	})

	var format string
	dumpCmd := &cobra.Command{
		Use:   "dump",
		Short: "Output the effective configuration as CUE, TOML or YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.cfgErr != nil {
				return newServiceError(app.cfgErr, issue.ConfigLoadFailedId, "")
			}
			out, err := config.Dump(app.currentConfig(), config.DumpFormat(format))
			if err != nil {
				return newServiceError(err, issue.UnsupportedFormatId, "")
			}
			_, err = app.stdout.Write(out)
			return err
		},
	}
	dumpCmd.Flags().StringVarP(&format, "format", "f", string(config.DumpFormatCUE), "output format: cue, toml, yaml")
	cfgCmd.AddCommand(dumpCmd)

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfigPath(app)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(app)
		},
	})

	return cfgCmd
}

func showConfig(app *App) error {
	if app.cfgErr != nil {
		return newServiceError(app.cfgErr, issue.ConfigLoadFailedId, "")
	}
	cfg := app.currentConfig()
	out := app.stdout

	keyStyle := CmdStyle
	valueStyle := SuccessStyle

	fmt.Fprintln(out, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(out)

	if app.cfgPath != "" {
		fmt.Fprintf(out, "%s: %s\n", keyStyle.Render("Config file"), app.cfgPath)
	} else {
		fmt.Fprintf(out, "%s: %s\n", keyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s:\n", keyStyle.Render("ui"))
	fmt.Fprintf(out, "  color: %s\n", valueStyle.Render(cfg.UI.Color.String()))
	fmt.Fprintf(out, "  verbose: %s\n", valueStyle.Render(fmt.Sprintf("%v", cfg.UI.Verbose)))

	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s:\n", keyStyle.Render("log"))
	fmt.Fprintf(out, "  level: %s\n", valueStyle.Render(cfg.Log.Level.String()))

	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s:\n", keyStyle.Render("cat"))
	fmt.Fprintf(out, "  parallel_sort_threshold: %s\n", valueStyle.Render(fmt.Sprintf("%d", cfg.Cat.ParallelSortThreshold)))

	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s:\n", keyStyle.Render("ls"))
	fmt.Fprintf(out, "  time_format: %s\n", valueStyle.Render(fmt.Sprintf("%q", cfg.Ls.TimeFormat)))

	return nil
}

func showConfigPath(app *App) error {
	cfgDir, err := app.configDirPath()
	if err != nil {
		return err
	}

	fmt.Fprintf(app.stdout, "Config directory: %s\n", cfgDir)
	fmt.Fprintf(app.stdout, "Config file: %s\n", filepath.Join(cfgDir, config.ConfigFileName+"."+config.ConfigFileExt))
	if app.cfgPath != "" {
		fmt.Fprintf(app.stdout, "Loaded from: %s\n", app.cfgPath)
	}
	return nil
}

func initConfig(app *App) error {
	cfgDir, err := app.configDirPath()
	if err != nil {
		return err
	}

	path, created, err := config.CreateDefaultConfig(app.fs, cfgDir)
	if err != nil {
		return fmt.Errorf("failed to create config: %w", err)
	}

	if !created {
		fmt.Fprintf(app.stdout, "%s Configuration already exists at %s\n", SubtitleStyle.Render("•"), path)
		return nil
	}
	fmt.Fprintf(app.stdout, "%s Created default configuration at %s\n", SuccessStyle.Render("✓"), path)
	return nil
}
