// SPDX-License-Identifier: MPL-2.0

package uroot

import "github.com/spf13/afero"

// Settings configures the built-in commands.
type Settings struct {
	// FS is the filesystem the utilities operate on. Nil means the host
	// filesystem.
	FS afero.Fs
	// SortThreshold is the cat -sa line count above which sorting runs in
	// parallel. Zero disables parallel sorting.
	SortThreshold int
	// TimeFormat is the ls -l time layout. Empty selects the default.
	TimeFormat string
	// ColorAuto colors ls names when the command's stdout is a terminal.
	ColorAuto bool
}

func (s Settings) fs() afero.Fs {
	if s.FS == nil {
		return afero.NewOsFs()
	}
	return s.FS
}
