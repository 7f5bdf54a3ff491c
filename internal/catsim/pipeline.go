// SPDX-License-Identifier: MPL-2.0

package catsim

import (
	"runtime"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"
)

// DefaultParallelSortThreshold is the line count above which SortLines sorts
// chunks concurrently.
const DefaultParallelSortThreshold = 10000

// SortLines returns the lines in ascending byte order. Equal lines keep their
// input order. When threshold > 0 and len(lines) > threshold the work is split
// into per-CPU chunks that are sorted concurrently and merged; the result is
// identical to the sequential sort.
func SortLines(lines []string, threshold int) []string {
	sorted := slices.Clone(lines)

	workers := runtime.GOMAXPROCS(0)
	if threshold <= 0 || len(sorted) <= threshold || workers < 2 {
		slices.SortStableFunc(sorted, strings.Compare)
		return sorted
	}

	chunkSize := (len(sorted) + workers - 1) / workers
	var chunks [][]string
	for start := 0; start < len(sorted); start += chunkSize {
		chunks = append(chunks, sorted[start:min(start+chunkSize, len(sorted))])
	}

	var g errgroup.Group
	for _, chunk := range chunks {
		g.Go(func() error {
			slices.SortStableFunc(chunk, strings.Compare)
			return nil
		})
	}
	_ = g.Wait() // chunk sorts never fail

	for len(chunks) > 1 {
		next := make([][]string, 0, (len(chunks)+1)/2)
		for i := 0; i < len(chunks); i += 2 {
			if i+1 == len(chunks) {
				next = append(next, chunks[i])
				continue
			}
			next = append(next, mergeStable(chunks[i], chunks[i+1]))
		}
		chunks = next
	}
	return chunks[0]
}

// mergeStable merges two sorted runs; on ties the element from left comes first.
func mergeStable(left, right []string) []string {
	out := make([]string, 0, len(left)+len(right))
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		if right[j] < left[i] {
			out = append(out, right[j])
			j++
			continue
		}
		out = append(out, left[i])
		i++
	}
	out = append(out, left[i:]...)
	return append(out, right[j:]...)
}

// NumberLines prefixes each line in place with its 1-based position and ": ".
func NumberLines(lines []string) {
	for i, line := range lines {
		lines[i] = strconv.Itoa(i+1) + ": " + line
	}
}

// EscapeNonPrintable rewrites each line in place using caret notation: every
// rune below 32 or above 126 becomes '^' followed by the rune 64 code points
// higher. DEL and non-ASCII runes take the same +64 shift as control characters.
func EscapeNonPrintable(lines []string) {
	for i, line := range lines {
		lines[i] = escapeLine(line)
	}
}

func escapeLine(line string) string {
	clean := true
	for _, r := range line {
		if r < 32 || r > 126 {
			clean = false
			break
		}
	}
	if clean {
		return line
	}

	var sb strings.Builder
	sb.Grow(len(line) + 8)
	for _, r := range line {
		if r < 32 || r > 126 {
			sb.WriteByte('^')
			sb.WriteRune(r + 64)
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// Apply runs the enabled stages on lines: sort, then number, then escape.
func Apply(opts *Options, lines []string, sortThreshold int) []string {
	if opts.SortAlphabetically {
		lines = SortLines(lines, sortThreshold)
	}
	if opts.NumberLines {
		NumberLines(lines)
	}
	if opts.ShowNonPrintable {
		EscapeNonPrintable(lines)
	}
	return lines
}
