// SPDX-License-Identifier: MPL-2.0

// Package catsim implements a small "cat" work-alike.
//
// Arguments are split into flags, a redirection target and input paths.
// Input files are concatenated line by line in argument order, passed through
// an optional pipeline (sort, number, caret-escape, always in that order) and
// emitted either to the console or to a file.
//
// Recognized tokens:
//
//	-n      prefix each line with "<n>: "
//	-v      render non-printable characters in caret notation
//	-sa     sort all lines alphabetically before numbering
//	> OUT   write the result to OUT, truncating it
//	>> OUT  append the result to OUT
//
// Any other token is an input path. When both redirections are given, the last
// one wins.
package catsim
