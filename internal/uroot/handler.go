// SPDX-License-Identifier: MPL-2.0

package uroot

import (
	"context"
	"io"
	"os"

	"mvdan.cc/sh/v3/interp"
)

type (
	// HandlerContext provides the output streams, working directory and
	// environment of one command invocation. The built-ins never read stdin.
	HandlerContext struct {
		// Stdout is the output stream for the command.
		Stdout io.Writer
		// Stderr is the error output stream for the command.
		Stderr io.Writer
		// Dir is the current working directory.
		Dir string
		// LookupEnv retrieves environment variables.
		LookupEnv func(string) (string, bool)
	}

	// handlerContextKey is the context key for storing HandlerContext.
	handlerContextKey struct{}
)

// ProcessHandlerContext returns a HandlerContext bound to the process streams,
// working directory and environment.
func ProcessHandlerContext() *HandlerContext {
	dir, err := os.Getwd()
	if err != nil {
		dir = ""
	}
	return &HandlerContext{
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		Dir:       dir,
		LookupEnv: os.LookupEnv,
	}
}

// ExtractHandlerContext extracts the HandlerContext from mvdan/sh's context.
// It must only be called from inside an interp exec handler.
func ExtractHandlerContext(ctx context.Context) *HandlerContext {
	hc := interp.HandlerCtx(ctx)
	return &HandlerContext{
		Stdout: hc.Stdout,
		Stderr: hc.Stderr,
		Dir:    hc.Dir,
		LookupEnv: func(name string) (string, bool) {
			v := hc.Env.Get(name)
			return v.Str, v.Set
		},
	}
}

// noColor reports whether NO_COLOR is set to a non-empty value.
func (hc *HandlerContext) noColor() bool {
	if hc.LookupEnv == nil {
		return false
	}
	v, ok := hc.LookupEnv("NO_COLOR")
	return ok && v != ""
}

// WithHandlerContext stores a HandlerContext in the context.
func WithHandlerContext(ctx context.Context, hc *HandlerContext) context.Context {
	return context.WithValue(ctx, handlerContextKey{}, hc)
}

// GetHandlerContext retrieves the HandlerContext from the context.
// If the context was created with WithHandlerContext, it returns that value.
// Otherwise, it extracts from mvdan/sh's handler context.
func GetHandlerContext(ctx context.Context) *HandlerContext {
	if hc, ok := ctx.Value(handlerContextKey{}).(*HandlerContext); ok {
		return hc
	}
	return ExtractHandlerContext(ctx)
}
