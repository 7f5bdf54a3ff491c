// SPDX-License-Identifier: MPL-2.0

package catsim

import (
	"errors"
	"fmt"
)

const (
	// WriteTruncate replaces the output file content.
	WriteTruncate WriteMode = "truncate"
	// WriteAppend appends to the output file content.
	WriteAppend WriteMode = "append"

	tokenNumber   = "-n"
	tokenVisible  = "-v"
	tokenSort     = "-sa"
	tokenRedirect = ">"
	tokenAppend   = ">>"
)

var (
	// ErrNoOutputFile is returned when a redirection token is not followed by a path.
	ErrNoOutputFile = errors.New("no output file specified")
	// ErrInvalidWriteMode is returned when a WriteMode value is not recognized.
	ErrInvalidWriteMode = errors.New("invalid write mode")
)

type (
	// WriteMode selects how an output file is opened.
	WriteMode string

	// InvalidWriteModeError is returned when a WriteMode value is not recognized.
	// It wraps ErrInvalidWriteMode for errors.Is() compatibility.
	InvalidWriteModeError struct {
		Value WriteMode
	}

	// OutputTarget is the redirection destination.
	OutputTarget struct {
		Path string
		Mode WriteMode
	}

	// Options is the parsed invocation. It is built once by ParseArgs and
	// treated as read-only afterwards.
	Options struct {
		NumberLines        bool
		ShowNonPrintable   bool
		SortAlphabetically bool
		// Output is nil when lines go to the console.
		Output     *OutputTarget
		InputPaths []string
	}
)

// Error implements the error interface.
func (e *InvalidWriteModeError) Error() string {
	return fmt.Sprintf("invalid write mode %q (valid: %s, %s)", e.Value, WriteTruncate, WriteAppend)
}

// Unwrap returns ErrInvalidWriteMode for errors.Is() compatibility.
func (e *InvalidWriteModeError) Unwrap() error { return ErrInvalidWriteMode }

// String returns the string representation of the WriteMode.
func (m WriteMode) String() string { return string(m) }

// Validate returns an error if the WriteMode is not one of the defined modes.
func (m WriteMode) Validate() error {
	switch m {
	case WriteTruncate, WriteAppend:
		return nil
	default:
		return &InvalidWriteModeError{Value: m}
	}
}

// ParseArgs turns the raw argument vector into Options.
// No I/O happens here.
func ParseArgs(args []string) (*Options, error) {
	opts := &Options{}

	for i := 0; i < len(args); i++ {
		switch tok := args[i]; tok {
		case tokenNumber:
			opts.NumberLines = true
		case tokenVisible:
			opts.ShowNonPrintable = true
		case tokenSort:
			opts.SortAlphabetically = true
		case tokenRedirect, tokenAppend:
			if i+1 >= len(args) {
				return nil, ErrNoOutputFile
			}
			mode := WriteTruncate
			if tok == tokenAppend {
				mode = WriteAppend
			}
			opts.Output = &OutputTarget{Path: args[i+1], Mode: mode}
			i++
		default:
			opts.InputPaths = append(opts.InputPaths, tok)
		}
	}

	return opts, nil
}
