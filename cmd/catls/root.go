// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the catls command tree.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/invowk/catls/internal/issue"
	"github.com/invowk/catls/pkg/platform"
	"github.com/invowk/catls/pkg/types"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// rootFlags holds the persistent flags of one command tree.
type rootFlags struct {
	verbose bool
	cfgFile string
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// NewRootCommand builds the catls command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "catls",
		Short: "cat and ls, reimagined",
		Long: TitleStyle.Render("catls") + SubtitleStyle.Render(" - cat and ls, reimagined") + `

catls bundles two small file utilities and a virtual shell that runs them
in-process. Invoked through a symlink named 'cat' or 'ls' it behaves as that
utility directly.

` + SubtitleStyle.Render("Examples:") + `
  catls cat -n notes.txt                          Number the lines of a file
  catls cat a.txt b.txt '>>' all                  Append two files to 'all'
  catls ls -laF                                   Long listing with indicators
  catls sh -c 'ls -S > list.txt; cat -n list.txt' Run a script in the virtual shell
  catls man ls                                    Read the ls manual`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			app.loadConfig(cmd.Context(), flags.cfgFile)
			if app.cfgErr != nil {
				fmt.Fprintln(app.stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(app.cfgErr, flags.verbose))
			}

			level := app.currentConfig().EffectiveLogLevel()
			if flags.verbose {
				level = slog.LevelDebug
			}
			configureLogging(app.stderr, level)
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&flags.cfgFile, "config", "", "config file (default is $HOME/.config/catls/config.cue)")

	rootCmd.AddCommand(newCatCommand(app))
	rootCmd.AddCommand(newLsCommand(app))
	rootCmd.AddCommand(newShCommand(app))
	rootCmd.AddCommand(newManCommand(app))
	rootCmd.AddCommand(newConfigCommand(app))

	return rootCmd
}

// Execute runs catls with the process arguments and exits.
// This is called by main.main().
func Execute() {
	os.Exit(run(context.Background(), os.Args))
}

// run dispatches either to the multi-call utility named by argv[0] or to the
// cobra command tree, and returns the process exit status.
func run(ctx context.Context, argv []string) int {
	app, err := NewApp(Dependencies{})
	if err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+err.Error())
		return int(types.ExitFailure)
	}

	if name := multiCallName(argv[0]); name != "" {
		return app.runMultiCall(ctx, name, argv[1:])
	}

	rootCmd := NewRootCommand(app)
	rootCmd.SetArgs(argv[1:])

	if err := fang.Execute(ctx, rootCmd, fangOptions()...); err != nil {
		return int(exitCodeOf(err))
	}
	return int(types.ExitSuccess)
}

// fangOptions configures fang for the root command. fang overrides
// rootCmd.Version, so the version goes in as an option.
func fangOptions() []fang.Option {
	return []fang.Option{
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(handleError),
		// fang's generated man page would replace `catls man`.
		fang.WithoutManpage(),
	}
}

// multiCallName returns "cat" or "ls" when the binary was invoked under that
// name, and "" otherwise.
func multiCallName(argv0 string) string {
	name := strings.TrimSuffix(filepath.Base(argv0), platform.ExecutableSuffix(runtime.GOOS))
	switch name {
	case "cat", "ls":
		return name
	default:
		return ""
	}
}

// runMultiCall runs one utility with the whole argument list, without cobra.
func (a *App) runMultiCall(ctx context.Context, name string, args []string) int {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	a.loadConfig(ctx, "")
	if a.cfgErr != nil {
		fmt.Fprintln(a.stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(a.cfgErr, false))
	}
	configureLogging(a.stderr, a.currentConfig().EffectiveLogLevel())

	if err := a.runUtility(ctx, name, args); err != nil {
		fmt.Fprintln(a.stderr, ErrorStyle.Render(name+": ")+err.Error())
		return int(types.ExitFailure)
	}
	return int(types.ExitSuccess)
}

// handleError renders errors returned from the command tree. Exit statuses
// that were already reported by a script are not printed again.
func handleError(w io.Writer, styles fang.Styles, err error) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Err == nil {
		return
	}

	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		renderServiceError(w, svcErr, "dark")
	}

	fang.DefaultErrorHandler(w, styles, err)
}

// exitCodeOf maps an error returned by the command tree to an exit status.
func exitCodeOf(err error) types.ExitCode {
	if err == nil {
		return types.ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		if validErr := exitErr.Code.Validate(); validErr != nil {
			slog.Debug("exit status out of range", "error", validErr)
			return types.ExitFailure
		}
		// An error reaching here never exits 0.
		if exitErr.Code.IsSuccess() {
			return types.ExitFailure
		}
		return exitErr.Code
	}
	return types.ExitFailure
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
