// SPDX-License-Identifier: MPL-2.0

package catsim

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"
)

type (
	// LineSource reads a file as an ordered sequence of lines.
	LineSource interface {
		ReadLines(path string) ([]string, error)
	}

	fsSource struct {
		fs  afero.Fs
		dir string
	}
)

// NewFSSource returns a LineSource backed by fs. Relative paths are resolved
// against dir when dir is non-empty.
func NewFSSource(fs afero.Fs, dir string) LineSource {
	return &fsSource{fs: fs, dir: dir}
}

// ReadLines reads the whole file and splits it into lines.
func (s *fsSource) ReadLines(path string) ([]string, error) {
	data, err := afero.ReadFile(s.fs, resolvePath(s.dir, path))
	if err != nil {
		return nil, asTyped(err, path)
	}
	return splitLines(data), nil
}

// splitLines splits on "\n", "\r\n" and a lone "\r". A trailing terminator
// does not produce an empty last line, and empty content produces no lines.
func splitLines(data []byte) []string {
	if len(data) == 0 {
		return nil
	}

	normalized := bytes.ReplaceAll(data, []byte("\r\n"), []byte("\n"))
	normalized = bytes.ReplaceAll(normalized, []byte("\r"), []byte("\n"))
	normalized = bytes.TrimSuffix(normalized, []byte("\n"))

	parts := bytes.Split(normalized, []byte("\n"))
	lines := make([]string, len(parts))
	for i, p := range parts {
		lines[i] = string(p)
	}
	return lines
}

// readAll concatenates the lines of every path in order. A path that cannot be
// read contributes no lines; report is called with the failure and reading
// continues with the next path.
func readAll(src LineSource, paths []string, report func(path string, err error)) []string {
	var combined []string
	for _, p := range paths {
		lines, err := src.ReadLines(p)
		if err != nil {
			report(p, err)
			continue
		}
		combined = append(combined, lines...)
	}
	return combined
}

// asTyped rewrites the path of a *fs.PathError back to the one on the command
// line, so messages do not leak the resolved working directory.
func asTyped(err error, path string) error {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		pe.Path = path
	}
	return err
}

func resolvePath(dir, path string) string {
	if dir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

func readError(err error) string {
	return fmt.Sprintf("Error reading file: %v", err)
}
