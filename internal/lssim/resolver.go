// SPDX-License-Identifier: MPL-2.0

package lssim

import (
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// Resolution splits the command line targets into directories and plain files.
// Missing paths appear in neither list.
type Resolution struct {
	Dirs  []*Entry
	Files []*Entry
}

// Resolve classifies every target in order. Relative targets are looked up
// against dir when dir is non-empty. missing is called, in target order, for
// each path that does not exist.
func Resolve(fsys afero.Fs, dir string, targets []string, missing func(path string)) *Resolution {
	res := &Resolution{}
	for _, target := range targets {
		path := resolvePath(dir, target)
		if _, err := fsys.Stat(path); err != nil {
			missing(target)
			continue
		}

		e, err := Stat(fsys, path)
		if err != nil {
			missing(target)
			continue
		}
		e.Arg = displayArg(target)
		e.Name = filepath.Base(e.Arg)

		if e.IsDir {
			res.Dirs = append(res.Dirs, e)
		} else {
			res.Files = append(res.Files, e)
		}
	}
	return res
}

func resolvePath(dir, path string) string {
	if dir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

// displayArg drops trailing separators so "dir/" prints as "dir".
func displayArg(target string) string {
	trimmed := strings.TrimRight(target, string(filepath.Separator))
	if trimmed == "" {
		return target[:1]
	}
	return trimmed
}
