// SPDX-License-Identifier: MPL-2.0

package lssim

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"
)

// unknownOwner is reported when the platform exposes no owner information.
const unknownOwner = "unknown"

// Entry is one filesystem object visited during a listing. Attributes follow
// symbolic links; IsSymlink reports the link itself.
type Entry struct {
	// Path is the filesystem path used for metadata lookups.
	Path string
	// Name is the final path element, or "." / ".." for synthetic entries.
	Name string
	// Arg is the path exactly as named on the command line; empty for entries
	// found inside a directory.
	Arg string

	IsDir     bool
	IsRegular bool
	IsSymlink bool
	Size      int64
	ModTime   time.Time
	Perm      fs.FileMode
	Owner     string
	Group     string
}

// Stat reads the metadata of path. A dangling symbolic link is described by
// the link itself rather than failing.
func Stat(fsys afero.Fs, path string) (*Entry, error) {
	linfo, lerr := lstat(fsys, path)

	info, err := fsys.Stat(path)
	if err != nil {
		if lerr != nil || linfo.Mode()&os.ModeSymlink == 0 {
			return nil, err
		}
		info = linfo
	}

	owner, group := ownerOf(info)
	return &Entry{
		Path:      path,
		Name:      filepath.Base(path),
		IsDir:     info.IsDir(),
		IsRegular: info.Mode().IsRegular(),
		IsSymlink: lerr == nil && linfo.Mode()&os.ModeSymlink != 0,
		Size:      info.Size(),
		ModTime:   info.ModTime(),
		Perm:      info.Mode().Perm(),
		Owner:     owner,
		Group:     group,
	}, nil
}

func lstat(fsys afero.Fs, path string) (os.FileInfo, error) {
	if l, ok := fsys.(afero.Lstater); ok {
		info, _, err := l.LstatIfPossible(path)
		return info, err
	}
	return fsys.Stat(path)
}

// IsHidden reports whether the entry name starts with a dot.
func (e *Entry) IsHidden() bool {
	return strings.HasPrefix(e.Name, ".")
}

// IsExecutable reports whether the entry is a regular file with the owner
// execute bit set.
func (e *Entry) IsExecutable() bool {
	return e.IsRegular && e.Perm&0o100 != 0
}

// Indicator returns the type indicator for the entry. Directory takes
// precedence over executable, which takes precedence over symlink.
func (e *Entry) Indicator() Indicator {
	switch {
	case e.IsDir:
		return IndicatorDirectory
	case e.IsExecutable():
		return IndicatorExecutable
	case e.IsSymlink:
		return IndicatorSymlink
	default:
		return IndicatorNone
	}
}
