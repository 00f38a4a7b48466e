/*
PURPOSE:
  Provides a structured logger for hevy-metrics.
  Wraps slog for consistent output.

REQUIREMENTS:
  User-specified:
  - Human-readable success/failure messages. Not spammy.

  Implementation-discovered:
  - Needs Debug for request tracing behind --debug.

ARCHITECTURE INTEGRATION:
  - Used everywhere.

IMPLEMENTATION RULES:
  - Use `log/slog`.
  - Level is held in a LevelVar so --debug can flip it after init.

USAGE:
  output.Logger.Info("message", "key", "value")
  output.SetLevel(slog.LevelDebug)
*/

package output

import (
	"io"
	"log/slog"
	"os"
)

var (
	Logger *slog.Logger
	level  = new(slog.LevelVar)
)

func init() {
	Logger = NewLogger(os.Stdout)
}

// NewLogger builds a text logger on w that honours the shared level.
func NewLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// SetLogger allows overriding the default logger (e.g. for testing or config changes)
func SetLogger(l *slog.Logger) {
	Logger = l
}

// SetLevel changes the minimum level of loggers built by NewLogger.
func SetLevel(l slog.Level) {
	level.Set(l)
}
