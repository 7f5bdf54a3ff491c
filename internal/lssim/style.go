// SPDX-License-Identifier: MPL-2.0

package lssim

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Name colors for terminal output.
const (
	colorDirectory  = lipgloss.Color("#3B82F6")
	colorExecutable = lipgloss.Color("#10B981")
	colorSymlink    = lipgloss.Color("#06B6D4")
)

// NameStyler colors entry names by kind. A nil *NameStyler leaves names plain.
type NameStyler struct {
	dir  lipgloss.Style
	exec lipgloss.Style
	link lipgloss.Style
}

// NewNameStyler returns a styler whose color profile is detected from w.
func NewNameStyler(w io.Writer) *NameStyler {
	r := lipgloss.NewRenderer(w)
	return &NameStyler{
		dir:  r.NewStyle().Bold(true).Foreground(colorDirectory),
		exec: r.NewStyle().Foreground(colorExecutable),
		link: r.NewStyle().Foreground(colorSymlink),
	}
}

// Render returns name styled for the kind of e.
func (s *NameStyler) Render(e *Entry, name string) string {
	if s == nil {
		return name
	}
	switch {
	case e.IsDir:
		return s.dir.Render(name)
	case e.IsExecutable():
		return s.exec.Render(name)
	case e.IsSymlink:
		return s.link.Render(name)
	default:
		return name
	}
}

// IsTerminal reports whether w is a terminal file descriptor.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
