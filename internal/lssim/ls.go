// SPDX-License-Identifier: MPL-2.0

package lssim

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/afero"
)

// Runner executes one ls invocation against its filesystem and streams.
type Runner struct {
	FS     afero.Fs
	Stdout io.Writer
	// Dir resolves relative targets. Empty means the process working directory.
	Dir string
	// TimeFormat is the long-format time layout; empty means DefaultTimeFormat.
	TimeFormat string
	// Color enables name coloring on Stdout.
	Color bool
}

// Run parses args and prints the listing. Usage errors and missing paths are
// printed to Stdout, not returned: the returned error is reserved for a
// cancelled context or a failing output stream.
func (r *Runner) Run(ctx context.Context, args []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cfg, err := ParseOptions(args)
	if err != nil {
		var optErr *InvalidOptionError
		if errors.As(err, &optErr) {
			_, werr := fmt.Fprintf(r.Stdout, "Invalid option: %s\n", optErr.Option)
			return werr
		}
		return err
	}
	slog.Debug("ls options parsed",
		"targets", len(cfg.Targets),
		"sort", cfg.SortKey,
		"long", cfg.LongFormat,
		"names_only", cfg.NamesOnly)

	w := &lineWriter{w: r.Stdout}
	res := Resolve(r.FS, r.Dir, cfg.Targets, func(path string) {
		w.printf("%s: No such file or directory", path)
	})

	var styler *NameStyler
	if r.Color {
		styler = NewNameStyler(r.Stdout)
	}
	f := NewFormatter(cfg, r.TimeFormat, styler)

	if cfg.NamesOnly {
		merged := append(append([]*Entry{}, res.Dirs...), res.Files...)
		Sort(merged, cfg.SortKey, cfg.Reverse)
		for _, e := range merged {
			w.println(f.Format(e))
		}
		return w.err
	}

	Sort(res.Files, cfg.SortKey, cfg.Reverse)
	for _, e := range res.Files {
		w.println(f.Format(e))
	}
	if len(res.Files) > 0 {
		w.println("")
	}

	Sort(res.Dirs, cfg.SortKey, cfg.Reverse)
	for _, dir := range res.Dirs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if len(cfg.Targets) > 1 {
			w.println(dir.Arg + ":")
		}
		for _, e := range List(r.FS, dir, cfg) {
			w.println(f.Format(e))
		}
		w.println("")
	}

	return w.err
}

// lineWriter keeps the first write error and drops later writes.
type lineWriter struct {
	w   io.Writer
	err error
}

func (lw *lineWriter) println(s string) {
	if lw.err != nil {
		return
	}
	_, lw.err = fmt.Fprintln(lw.w, s)
}

func (lw *lineWriter) printf(format string, args ...any) {
	lw.println(fmt.Sprintf(format, args...))
}
