package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Setup configures the process-wide slog default logger. The TUI owns
// stdout/stderr, so logs always go to a file.
func Setup(level string, debug bool) (io.Closer, error) {
	lvl := parseLevel(level)
	if debug {
		lvl = slog.LevelDebug
	}

	path := logFilePath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", path, err)
	}

	handler := slog.NewTextHandler(f, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
	return f, nil
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func logFilePath() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, "lazydock", "lazydock.log")
	}
	return filepath.Join(os.TempDir(), "lazydock.log")
}
