// Package logging configures the process-wide debug logger.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/amonks/pomo/internal/paths"
)

// DebugEnv enables debug logging when set to "1".
const DebugEnv = "POMO_DEBUG"

const logFileName = "pomo.log"

// Logger is the shared logger. It discards everything until Initialize
// enables debug output.
var Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))

// Initialize enables debug logging when debug is set, debugFile is given, or
// POMO_DEBUG=1. It returns the log file path, or "" when logging is disabled,
// and a close function that is always safe to call.
func Initialize(debug bool, debugFile string) (string, func() error, error) {
	noop := func() error { return nil }
	if os.Getenv(DebugEnv) == "1" {
		debug = true
	}
	if !debug && debugFile == "" {
		Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
		return "", noop, nil
	}

	logFilePath := debugFile
	if logFilePath == "" {
		logDir, err := paths.DefaultLogDir()
		if err != nil {
			return "", noop, fmt.Errorf("get log directory: %w", err)
		}
		logFilePath = filepath.Join(logDir, logFileName)
	}

	if err := os.MkdirAll(filepath.Dir(logFilePath), 0o755); err != nil {
		return "", noop, fmt.Errorf("create log directory: %w", err)
	}

	logFile, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return "", noop, fmt.Errorf("open log file: %w", err)
	}

	Logger = New(logFile)
	Logger.Debug("debug logging initialized", "log_file", logFilePath, "pid", os.Getpid())
	return logFilePath, logFile.Close, nil
}

// New returns a debug-level JSON logger writing to w.
func New(w io.Writer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
