// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"
	"io"
	"log/slog"
)

// newLogger creates a logger writing to w. Verbose mode logs at debug level,
// which includes the per-step traversal trace; otherwise only warnings and
// errors are shown.
func newLogger(verbose bool, format string, w io.Writer) (*slog.Logger, error) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch format {
	case "text", "":
		handler = slog.NewTextHandler(w, opts)
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		return nil, fmt.Errorf("unknown log format %q (want text or json)", format)
	}
	return slog.New(handler), nil
}
