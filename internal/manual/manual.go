// SPDX-License-Identifier: MPL-2.0

// Package manual holds the built-in manual pages and renders them for the
// terminal.
package manual

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	"github.com/charmbracelet/glamour"
)

// StyleAuto picks a dark or light style from the terminal background.
const StyleAuto = "auto"

//go:embed pages/*.md
var pages embed.FS

// ErrPageNotFound is the sentinel wrapped by PageNotFoundError.
var ErrPageNotFound = errors.New("manual page not found")

type (
	// PageNotFoundError is returned for names without a manual page.
	// It wraps ErrPageNotFound for errors.Is() compatibility.
	PageNotFoundError struct {
		Name string
	}

	// RenderOptions controls terminal rendering.
	RenderOptions struct {
		// Style is a glamour standard style name ("dark", "light", "notty")
		// or StyleAuto. Empty means StyleAuto.
		Style string
		// Width wraps text at this column; zero disables wrapping.
		Width int
	}
)

// Error implements the error interface.
func (e *PageNotFoundError) Error() string {
	return fmt.Sprintf("no manual entry for %q (available: %s)", e.Name, strings.Join(Names(), ", "))
}

// Unwrap returns ErrPageNotFound for errors.Is() compatibility.
func (e *PageNotFoundError) Unwrap() error { return ErrPageNotFound }

// Names returns the available page names in sorted order.
func Names() []string {
	entries, err := fs.ReadDir(pages, "pages")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".md"))
	}
	slices.Sort(names)
	return names
}

// Lookup returns the Markdown source of the page for name.
func Lookup(name string) (string, error) {
	data, err := pages.ReadFile(path.Join("pages", name+".md"))
	if err != nil || strings.ContainsAny(name, "/\\") {
		return "", &PageNotFoundError{Name: name}
	}
	return string(data), nil
}

// Render returns the page for name rendered for a terminal.
func Render(name string, opts RenderOptions) (string, error) {
	src, err := Lookup(name)
	if err != nil {
		return "", err
	}

	var rendererOpts []glamour.TermRendererOption
	switch opts.Style {
	case "", StyleAuto:
		rendererOpts = append(rendererOpts, glamour.WithAutoStyle())
	default:
		rendererOpts = append(rendererOpts, glamour.WithStandardStyle(opts.Style))
	}
	if opts.Width > 0 {
		rendererOpts = append(rendererOpts, glamour.WithWordWrap(opts.Width))
	}

	renderer, err := glamour.NewTermRenderer(rendererOpts...)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}
	return renderer.Render(src)
}
