// SPDX-License-Identifier: MPL-2.0

package uroot

import (
	"context"
	"fmt"
	"strings"
)

type (
	// Command defines the interface for built-in utility implementations.
	Command interface {
		// Name returns the command name (e.g., "cat", "ls").
		Name() string

		// Run executes the command with the given context and arguments.
		// The context carries the HandlerContext with stdin/stdout/stderr.
		// args[0] is the command name, args[1:] are the arguments.
		Run(ctx context.Context, args []string) error

		// SupportedFlags returns the flags this implementation recognizes,
		// in the order they are documented.
		SupportedFlags() []FlagInfo
	}

	// FlagInfo describes a supported flag of a built-in command.
	FlagInfo struct {
		// Name is the flag token without the leading dash (e.g., "n", "sa").
		// Tokens that take a value (">", ">>") are written without a dash.
		Name string
		// Description explains what the flag does.
		Description string
		// TakesValue indicates if the flag consumes the next token.
		TakesValue bool
	}
)

// baseCommand holds the name and flag table shared by the built-ins.
type baseCommand struct {
	name  string
	flags []FlagInfo
}

// Name returns the command name.
func (b *baseCommand) Name() string { return b.name }

// SupportedFlags returns the flags supported by this command.
func (b *baseCommand) SupportedFlags() []FlagInfo { return b.flags }

// FormatFlags renders flags as an indented two-column list, one per line.
func FormatFlags(flags []FlagInfo) string {
	tokens := make([]string, len(flags))
	width := 0
	for i, f := range flags {
		if f.TakesValue {
			tokens[i] = f.Name + " FILE"
		} else {
			tokens[i] = "-" + f.Name
		}
		width = max(width, len(tokens[i]))
	}

	var sb strings.Builder
	for i, f := range flags {
		fmt.Fprintf(&sb, "  %-*s  %s\n", width, tokens[i], f.Description)
	}
	return sb.String()
}

// operands drops the command name from args.
func operands(args []string) []string {
	if len(args) > 1 {
		return args[1:]
	}
	return nil
}
