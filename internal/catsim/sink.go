// SPDX-License-Identifier: MPL-2.0

package catsim

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/afero"
)

type (
	// Sink receives the final lines.
	Sink interface {
		Emit(lines []string) error
	}

	// ConsoleSink prints one line per entry to Out.
	ConsoleSink struct {
		Out io.Writer
	}

	// FileSink writes all lines to Target in a single write.
	// Notice receives the confirmation message after a successful write.
	FileSink struct {
		FS     afero.Fs
		Dir    string
		Target OutputTarget
		Notice io.Writer
	}
)

// Emit implements Sink.
func (s *ConsoleSink) Emit(lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(s.Out, line); err != nil {
			return err
		}
	}
	return nil
}

// Emit implements Sink. The output handle is released on every path.
func (s *FileSink) Emit(lines []string) (err error) {
	if err := s.Target.Mode.Validate(); err != nil {
		return err
	}

	var buf strings.Builder
	for _, line := range lines {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}

	// Truncation waits for the lock, so O_TRUNC is not used.
	flag := os.O_CREATE | os.O_WRONLY
	if s.Target.Mode == WriteAppend {
		flag |= os.O_APPEND
	}

	f, err := s.FS.OpenFile(resolvePath(s.Dir, s.Target.Path), flag, 0o644)
	if err != nil {
		return asTyped(err, s.Target.Path)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	unlock, lockErr := lockOutput(f)
	if lockErr != nil {
		slog.Debug("output lock unavailable, writing unlocked", "path", s.Target.Path, "error", lockErr)
	} else {
		defer unlock()
	}

	if s.Target.Mode == WriteTruncate {
		if err := f.Truncate(0); err != nil {
			return asTyped(err, s.Target.Path)
		}
	}
	if _, err := f.WriteString(buf.String()); err != nil {
		return asTyped(err, s.Target.Path)
	}

	verb := "written to"
	if s.Target.Mode == WriteAppend {
		verb = "appended to"
	}
	fmt.Fprintf(s.Notice, "Content %s %s\n", verb, s.Target.Path)
	return nil
}
