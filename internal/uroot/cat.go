// SPDX-License-Identifier: MPL-2.0

package uroot

import (
	"context"

	"github.com/invowk/catls/internal/catsim"
	"github.com/spf13/afero"
)

// catCommand runs catsim against the handler context streams.
type catCommand struct {
	baseCommand
	fs            afero.Fs
	sortThreshold int
}

// newCatCommand creates a new cat command.
func newCatCommand(s Settings) *catCommand {
	return &catCommand{
		baseCommand: baseCommand{
			name: "cat",
			flags: []FlagInfo{
				{Name: "n", Description: "number all output lines"},
				{Name: "v", Description: "use ^ notation for non-printing characters"},
				{Name: "sa", Description: "sort lines alphabetically before numbering"},
				{Name: ">", Description: "write to FILE, truncating it", TakesValue: true},
				{Name: ">>", Description: "append to FILE", TakesValue: true},
			},
		},
		fs:            s.fs(),
		sortThreshold: s.SortThreshold,
	}
}

// Run executes the cat command.
func (c *catCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)

	runner := &catsim.Runner{
		FS:            c.fs,
		Stdout:        hc.Stdout,
		Stderr:        hc.Stderr,
		Dir:           hc.Dir,
		SortThreshold: c.sortThreshold,
	}
	return runner.Run(ctx, operands(args))
}
