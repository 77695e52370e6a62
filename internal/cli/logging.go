// SPDX-License-Identifier: MIT

package cli

import (
	"io"
	"log/slog"

	"github.com/google/uuid"
)

// newLogger returns a debug-level text logger on w tagged with a run id,
// or a discarding logger when verbose is off. Logs never share stdout with
// command output.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})

	return slog.New(h).With("run", uuid.Must(uuid.NewV7()).String())
}
