// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"log/slog"
	"path/filepath"

	"github.com/invowk/catls/internal/issue"
	"github.com/invowk/catls/internal/vshell"
	"github.com/invowk/catls/pkg/types"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// newShCommand creates the `catls sh` virtual shell command.
func newShCommand(app *App) *cobra.Command {
	var inline string

	shCmd := &cobra.Command{
		Use:   "sh [-c SCRIPT | FILE] [ARG]...",
		Short: "Run a shell script with cat and ls built in",
		Long: `Run a POSIX shell script in-process. The cat and ls utilities are served
by catls itself; every other command runs from the host PATH. cat only reads
the files it is given, never standard input, so chain the two through a file
rather than a pipe.

With -c the script is taken from the flag and ARGs become $1, $2, ...
Otherwise the first argument names the script file.`,
		Example: `  catls sh -c 'ls -S > list.txt; cat -n list.txt'
  catls sh -c 'cat "$1" ">>" all.txt' notes.txt
  catls sh build.sh release`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := vshell.Options{
				Stdin:    app.stdin,
				Stdout:   app.stdout,
				Stderr:   app.stderr,
				Dir:      app.dir,
				Registry: app.registry(),
			}

			switch {
			case cmd.Flags().Changed("command"):
				opts.Script, opts.Name, opts.Params = inline, "-c", args
			case len(args) > 0:
				data, err := afero.ReadFile(app.fs, resolveAgainst(app.dir, args[0]))
				if err != nil {
					return newServiceError(issue.WrapWithContext(err, "read script", args[0]), issue.ScriptReadFailedId, "")
				}
				opts.Script, opts.Name, opts.Params = string(data), args[0], args[1:]
			default:
				return cmd.Help()
			}

			return runScript(cmd, opts)
		},
	}

	shCmd.Flags().StringVarP(&inline, "command", "c", "", "read the script from this string")
	// Everything after the script belongs to the script.
	shCmd.Flags().SetInterspersed(false)

	return shCmd
}

// runScript executes opts and maps the shell outcome onto CLI errors.
func runScript(cmd *cobra.Command, opts vshell.Options) error {
	err := vshell.Run(cmd.Context(), opts)
	if err == nil {
		return nil
	}

	if code, ok := vshell.ExitCode(err); ok {
		status := types.ExitCode(code)
		if status.IsCommandNotFound() {
			slog.Debug("script ran a command missing from PATH", "name", opts.Name)
		}
		slog.Debug("script exited", "name", opts.Name, "status", code)
		return &ExitError{Code: status}
	}
	if errors.Is(err, vshell.ErrParse) {
		return newServiceError(err, issue.ScriptParseFailedId, "")
	}
	return err
}

// resolveAgainst joins a relative path onto dir; empty dir keeps it relative.
func resolveAgainst(dir, path string) string {
	if dir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
