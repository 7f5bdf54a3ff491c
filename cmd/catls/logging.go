// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
)

// newLogHandler returns a charmbracelet/log handler for slog writing to w.
func newLogHandler(w io.Writer, level slog.Level) slog.Handler {
	return log.NewWithOptions(w, log.Options{
		Prefix: "catls",
		Level:  log.Level(level),
	})
}

// configureLogging installs the default slog logger for this process.
func configureLogging(w io.Writer, level slog.Level) {
	slog.SetDefault(slog.New(newLogHandler(w, level)))
}
