// SPDX-License-Identifier: MPL-2.0

package lssim

import (
	"fmt"
	"strings"
)

// DefaultTimeFormat renders modification times as "MMM dd HH:mm".
const DefaultTimeFormat = "Jan 02 15:04"

// Type indicators appended under -F.
const (
	IndicatorNone Indicator = iota
	IndicatorDirectory
	IndicatorExecutable
	IndicatorSymlink
)

type (
	// Indicator is the kind of an entry as shown by -F.
	Indicator int

	// Formatter renders entries as single output lines.
	Formatter struct {
		Classify   bool
		LongFormat bool
		NamesOnly  bool
		// TimeFormat is a time.Format layout; empty means DefaultTimeFormat.
		TimeFormat string
		// Styler colors names; nil prints them plain.
		Styler *NameStyler
	}
)

// String returns the indicator character, or "" for IndicatorNone.
func (i Indicator) String() string {
	switch i {
	case IndicatorDirectory:
		return "/"
	case IndicatorExecutable:
		return "*"
	case IndicatorSymlink:
		return "@"
	default:
		return ""
	}
}

// NewFormatter returns a Formatter for cfg.
func NewFormatter(cfg *Config, timeFormat string, styler *NameStyler) *Formatter {
	return &Formatter{
		Classify:   cfg.Classify,
		LongFormat: cfg.LongFormat,
		NamesOnly:  cfg.NamesOnly,
		TimeFormat: timeFormat,
		Styler:     styler,
	}
}

// Format renders one entry.
func (f *Formatter) Format(e *Entry) string {
	if !f.LongFormat {
		return f.displayName(e)
	}

	layout := f.TimeFormat
	if layout == "" {
		layout = DefaultTimeFormat
	}
	return fmt.Sprintf("%s %s %s %d %s %s",
		permissionString(e), e.Owner, e.Group, e.Size, e.ModTime.Local().Format(layout), f.displayName(e))
}

func (f *Formatter) displayName(e *Entry) string {
	name := e.Name
	if f.NamesOnly && e.Arg != "" {
		name = e.Arg
	}
	name = f.Styler.Render(e, name)
	if f.Classify {
		name += e.Indicator().String()
	}
	return name
}

// permissionString renders the type flag followed by rwx for owner, group
// and other.
func permissionString(e *Entry) string {
	var sb strings.Builder
	sb.Grow(10)
	if e.IsDir {
		sb.WriteByte('d')
	} else {
		sb.WriteByte('-')
	}
	const letters = "rwxrwxrwx"
	for i := range 9 {
		if e.Perm&(1<<uint(8-i)) != 0 {
			sb.WriteByte(letters[i])
		} else {
			sb.WriteByte('-')
		}
	}
	return sb.String()
}
