// Package dlog implements the process-wide debug log spec §5 calls for: lazily opened on
// first use, write-only, and independent of normal control flow -- a failure to open or
// write it never aborts an encode/decode operation.
package dlog

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

const path = "/tmp/cegse_debug.log"

var (
	once   sync.Once
	logger *slog.Logger
)

// get lazily opens the log file and builds a slog.Logger around it. If the file cannot be
// opened, get falls back to a logger that discards everything -- debug logging is strictly
// best-effort.
func get() *slog.Logger {
	once.Do(func() {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			logger = slog.New(slog.NewTextHandler(io.Discard, nil))
			return
		}

		logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	})

	return logger
}

// Debug writes one debug-level line. args follow slog's alternating key/value convention.
func Debug(msg string, args ...any) {
	get().Debug(msg, args...)
}
