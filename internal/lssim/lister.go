// SPDX-License-Identifier: MPL-2.0

package lssim

import (
	"log/slog"
	"path/filepath"

	"github.com/spf13/afero"
)

// List returns the visible contents of dir, sorted per cfg. Synthetic . and
// .. entries are added under ShowDotEntries; dot-prefixed names are dropped
// unless ShowHidden. A directory that cannot be read lists as empty.
func List(fsys afero.Fs, dir *Entry, cfg *Config) []*Entry {
	infos, err := afero.ReadDir(fsys, dir.Path)
	if err != nil {
		slog.Debug("directory unreadable, listing as empty", "path", dir.Path, "error", err)
		infos = nil
	}

	entries := make([]*Entry, 0, len(infos)+2)
	for _, info := range infos {
		e, err := Stat(fsys, filepath.Join(dir.Path, info.Name()))
		if err != nil {
			slog.Debug("entry vanished during listing", "name", info.Name(), "error", err)
			continue
		}
		e.Name = info.Name()
		entries = append(entries, e)
	}

	if cfg.ShowDotEntries {
		for _, name := range []string{".", ".."} {
			e, err := Stat(fsys, filepath.Join(dir.Path, name))
			if err != nil {
				slog.Debug("synthetic entry unavailable", "name", name, "error", err)
				continue
			}
			e.Name = name
			entries = append(entries, e)
		}
	}

	Sort(entries, cfg.SortKey, cfg.Reverse)

	if cfg.ShowHidden {
		return entries
	}
	visible := entries[:0]
	for _, e := range entries {
		if !e.IsHidden() {
			visible = append(visible, e)
		}
	}
	return visible
}
