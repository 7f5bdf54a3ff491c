// SPDX-License-Identifier: MPL-2.0

package catsim

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/afero"
)

// Runner executes one cat invocation against its filesystem and streams.
type Runner struct {
	FS     afero.Fs
	Stdout io.Writer
	Stderr io.Writer
	// Dir resolves relative input and output paths. Empty means the process
	// working directory.
	Dir string
	// SortThreshold is passed to SortLines; zero or less disables parallel sorting.
	SortThreshold int
}

// Run parses args and performs the whole cat pipeline. Usage and per-file
// failures are printed, not returned: the returned error is reserved for a
// cancelled context or a failing console stream.
func (r *Runner) Run(ctx context.Context, args []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(args) == 0 {
		return nil
	}

	opts, err := ParseArgs(args)
	if err != nil {
		if errors.Is(err, ErrNoOutputFile) {
			fmt.Fprintln(r.Stdout, "Error: No output file specified")
			return nil
		}
		return err
	}
	slog.Debug("cat options parsed",
		"inputs", len(opts.InputPaths),
		"number", opts.NumberLines,
		"visible", opts.ShowNonPrintable,
		"sort", opts.SortAlphabetically)

	src := NewFSSource(r.FS, r.Dir)
	lines := readAll(src, opts.InputPaths, func(path string, err error) {
		slog.Debug("input skipped", "path", path, "error", err)
		fmt.Fprintln(r.Stderr, readError(err))
	})

	lines = Apply(opts, lines, r.SortThreshold)

	if opts.Output == nil {
		sink := &ConsoleSink{Out: r.Stdout}
		if err := sink.Emit(lines); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		return nil
	}

	sink := &FileSink{FS: r.FS, Dir: r.Dir, Target: *opts.Output, Notice: r.Stdout}
	if err := sink.Emit(lines); err != nil {
		fmt.Fprintf(r.Stderr, "Error writing to file: %v\n", err)
	}
	return nil
}
