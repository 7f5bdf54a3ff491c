// SPDX-License-Identifier: MPL-2.0

package uroot

import (
	"context"

	"github.com/invowk/catls/internal/lssim"
	"github.com/spf13/afero"
)

// lsCommand runs lssim against the handler context streams.
type lsCommand struct {
	baseCommand
	fs         afero.Fs
	timeFormat string
	colorAuto  bool
}

// newLsCommand creates a new ls command.
func newLsCommand(s Settings) *lsCommand {
	return &lsCommand{
		baseCommand: baseCommand{
			name: "ls",
			flags: []FlagInfo{
				{Name: "a", Description: "do not ignore entries starting with ."},
				{Name: "A", Description: "do not list implied . and .."},
				{Name: "d", Description: "list directories themselves, not their contents"},
				{Name: "F", Description: "append indicator (one of /*@) to entries"},
				{Name: "l", Description: "use a long listing format"},
				{Name: "r", Description: "reverse order while sorting"},
				{Name: "S", Description: "sort by file size, largest first"},
				{Name: "t", Description: "sort by modification time, newest first"},
			},
		},
		fs:         s.fs(),
		timeFormat: s.TimeFormat,
		colorAuto:  s.ColorAuto,
	}
}

// Run executes the ls command.
func (c *lsCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)

	runner := &lssim.Runner{
		FS:         c.fs,
		Stdout:     hc.Stdout,
		Dir:        hc.Dir,
		TimeFormat: c.timeFormat,
		Color:      c.useColor(hc),
	}
	return runner.Run(ctx, operands(args))
}

// useColor enables color in auto mode for a terminal, unless NO_COLOR is set.
func (c *lsCommand) useColor(hc *HandlerContext) bool {
	return c.colorAuto && !hc.noColor() && lssim.IsTerminal(hc.Stdout)
}
