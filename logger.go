package fresco

import (
	"log/slog"

	"github.com/gogpu/fresco/internal/logging"
)

// SetLogger configures the logger for fresco and all its sub-packages.
// By default, fresco produces no log output. Call SetLogger to enable logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by fresco:
//   - [slog.LevelDebug]: decode outcomes and failures (including I/O
//     failures while reading encoded images), plugin registration
//   - [slog.LevelInfo]: fetch lifecycle in vito
//
// Example:
//
//	// Enable info-level logging to stderr:
//	fresco.SetLogger(slog.Default())
//
//	// Enable debug-level logging for full diagnostics:
//	fresco.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}

// Logger returns the current logger used by fresco.
// Plugins and sub-packages call this to share the same logger configuration.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return logging.Logger()
}
