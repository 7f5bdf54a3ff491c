// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/invowk/catls/internal/issue"
	"github.com/invowk/catls/internal/manual"

	"github.com/spf13/cobra"
)

// newManCommand creates the `catls man` command.
func newManCommand(app *App) *cobra.Command {
	var (
		style string
		width int
		raw   bool
	)

	manCmd := &cobra.Command{
		Use:       "man <" + strings.Join(manual.Names(), "|") + ">",
		Short:     "Show the manual page of a utility",
		Args:      cobra.ExactArgs(1),
		ValidArgs: manual.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			if raw {
				page, err := manual.Lookup(args[0])
				if err != nil {
					return manualError(err)
				}
				fmt.Fprint(app.stdout, page)
				return nil
			}

			rendered, err := manual.Render(args[0], manual.RenderOptions{Style: style, Width: width})
			if err != nil {
				return manualError(err)
			}
			fmt.Fprint(app.stdout, rendered)
			return nil
		},
	}

	manCmd.Flags().StringVar(&style, "style", manual.StyleAuto, "glamour style: auto, dark, light, notty")
	manCmd.Flags().IntVar(&width, "width", 80, "word-wrap width")
	manCmd.Flags().BoolVar(&raw, "raw", false, "print the Markdown source")

	return manCmd
}

func manualError(err error) error {
	if errors.Is(err, manual.ErrPageNotFound) {
		return newServiceError(err, issue.ManualPageNotFoundId, "")
	}
	return err
}
