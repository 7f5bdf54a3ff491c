// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"github.com/invowk/catls/pkg/types"

	"github.com/spf13/cobra"
)

// newCatCommand creates the `catls cat` command. Arguments are handed to the
// utility untouched, including the '>' and '>>' redirection tokens.
func newCatCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "cat [-n] [-v] [-sa] [FILE]... [> | >> OUTPUT]",
		Short: "Concatenate files with optional numbering, escaping and sorting",
		Long: `Concatenate FILEs to standard output or to OUTPUT.

Options may appear anywhere among the files and are only recognized as whole
tokens. Quote '>' and '>>' so your shell passes them through.

Options:
` + utilityFlags(app, "cat") + `
Global flags are not parsed here; use CATLS_* environment variables instead.
See 'catls man cat' for details.`,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.runUtility(cmd.Context(), "cat", args); err != nil {
				return &ExitError{Code: types.ExitFailure, Err: err}
			}
			return nil
		},
	}
}
