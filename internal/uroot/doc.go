// SPDX-License-Identifier: MPL-2.0

// Package uroot provides the built-in cat and ls utilities behind a common
// Command interface so the CLI and the virtual shell can dispatch them by name.
//
// # Supported Commands
//
//   - cat: Concatenate, sort, number and escape file lines
//   - ls: List directory contents
//
// # Usage
//
// The composition root builds a Registry with NewBuiltinRegistry and hands it
// to the CLI subcommands and to the virtual shell exec handler. There is no
// package-level registry.
//
// # I/O
//
// Commands read their streams and working directory from the HandlerContext
// carried in the context. Inside the virtual shell the context comes from
// mvdan/sh's interp.HandlerCtx; elsewhere callers attach one with
// WithHandlerContext.
//
// # Exit Behavior
//
// Usage mistakes and per-file failures are printed by the utilities
// themselves. Run only returns an error for a cancelled context or a broken
// output stream.
package uroot
