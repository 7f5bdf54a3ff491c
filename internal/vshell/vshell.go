// SPDX-License-Identifier: MPL-2.0

// Package vshell runs POSIX shell scripts in-process with mvdan/sh, serving
// the built-in utilities from a uroot.Registry and everything else from the
// host.
package vshell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/invowk/catls/internal/uroot"
	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

var (
	// ErrParse is returned when the script is not valid shell syntax.
	ErrParse = errors.New("failed to parse script")
	// ErrNoRegistry is returned when Options.Registry is nil.
	ErrNoRegistry = errors.New("no command registry")
)

// Options configures one script execution.
type Options struct {
	// Script is the shell source to run.
	Script string
	// Name labels parse errors; defaults to "script".
	Name string
	// Dir is the initial working directory; empty means the process one.
	Dir    string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	// Env is the initial environment in KEY=VALUE form; nil inherits the
	// process environment.
	Env []string
	// Params are the positional parameters ($1, $2, ...).
	Params []string
	// Registry serves built-in commands ahead of host binaries.
	Registry *uroot.Registry
}

// Run parses and executes opts.Script. A non-zero exit status is returned as
// interp.ExitStatus.
func Run(ctx context.Context, opts Options) error {
	if opts.Registry == nil {
		return ErrNoRegistry
	}

	name := opts.Name
	if name == "" {
		name = "script"
	}
	prog, err := syntax.NewParser().Parse(strings.NewReader(opts.Script), name)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrParse, err)
	}

	env := opts.Env
	if env == nil {
		env = os.Environ()
	}

	runnerOpts := []interp.RunnerOption{
		interp.Env(expand.ListEnviron(env...)),
		interp.StdIO(opts.Stdin, opts.Stdout, opts.Stderr),
		interp.ExecHandlers(execHandler(opts.Registry)),
	}
	if opts.Dir != "" {
		runnerOpts = append(runnerOpts, interp.Dir(opts.Dir))
	}
	// "--" keeps parameters like "-n" from being read as shell options.
	if len(opts.Params) > 0 {
		params := append([]string{"--"}, opts.Params...)
		runnerOpts = append(runnerOpts, interp.Params(params...))
	}

	runner, err := interp.New(runnerOpts...)
	if err != nil {
		return fmt.Errorf("failed to create interpreter: %w", err)
	}

	return runner.Run(ctx, prog)
}

// ExitCode extracts the shell exit status from an error returned by Run.
func ExitCode(err error) (int, bool) {
	var status interp.ExitStatus
	if errors.As(err, &status) {
		return int(status), true
	}
	return 0, false
}

// execHandler dispatches registered commands in-process and falls back to
// next for anything else.
func execHandler(reg *uroot.Registry) func(next interp.ExecHandlerFunc) interp.ExecHandlerFunc {
	return func(next interp.ExecHandlerFunc) interp.ExecHandlerFunc {
		return func(ctx context.Context, args []string) error {
			if len(args) == 0 {
				return next(ctx, args)
			}
			cmd, found := reg.Lookup(args[0])
			if !found {
				return next(ctx, args)
			}

			hc := uroot.ExtractHandlerContext(ctx)
			err := cmd.Run(uroot.WithHandlerContext(ctx, hc), args)
			if err == nil {
				return nil
			}
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			slog.Debug("builtin failed", "command", args[0], "error", err)
			fmt.Fprintf(hc.Stderr, "%s: %v\n", args[0], err)
			return interp.ExitStatus(1)
		}
	}
}
