// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"github.com/invowk/catls/internal/uroot"
	"github.com/invowk/catls/pkg/types"

	"github.com/spf13/cobra"
)

// newLsCommand creates the `catls ls` command.
func newLsCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "ls [-aAdFlrSt] [PATH]...",
		Short: "List directory contents",
		Long: `List information about the PATHs (the current directory by default).
Options may be combined (-laF).

Options:
` + utilityFlags(app, "ls") + `
Global flags are not parsed here; use CATLS_* environment variables instead.
See 'catls man ls' for details.`,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.runUtility(cmd.Context(), "ls", args); err != nil {
				return &ExitError{Code: types.ExitFailure, Err: err}
			}
			return nil
		},
	}
}

// utilityFlags lists the options of the named built-in for help text.
func utilityFlags(app *App, name string) string {
	cmd, ok := app.registry().Lookup(name)
	if !ok {
		return ""
	}
	return uroot.FormatFlags(cmd.SupportedFlags())
}
