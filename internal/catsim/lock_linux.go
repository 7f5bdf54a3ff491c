// SPDX-License-Identifier: MPL-2.0

//go:build linux

package catsim

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/afero"
	"golang.org/x/sys/unix"
)

// errNoDescriptor is returned for in-memory files that have no kernel handle.
var errNoDescriptor = errors.New("file has no descriptor")

type fdFile interface {
	Fd() uintptr
}

// lockOutput takes a blocking exclusive flock on the open output handle so that
// concurrent appenders do not interleave their single writes.
func lockOutput(f afero.File) (func(), error) {
	osf, ok := f.(fdFile)
	if !ok {
		return nil, errNoDescriptor
	}
	fd := int(osf.Fd())
	if err := unix.Flock(fd, unix.LOCK_EX); err != nil {
		return nil, fmt.Errorf("flock %s: %w", f.Name(), err)
	}
	return func() {
		if err := unix.Flock(fd, unix.LOCK_UN); err != nil {
			slog.Debug("flock unlock failed", "path", f.Name(), "error", err)
		}
	}, nil
}
