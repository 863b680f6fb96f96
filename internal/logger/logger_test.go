package logger

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewFileLogger(t *testing.T) {
	t.Run("writes above level", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "logs", "debug.log")

		l, closer, err := NewFileLogger(path, slog.LevelInfo)
		if err != nil {
			t.Fatalf("NewFileLogger() error = %v", err)
		}
		l.Debug("hidden")
		l.Info("shown", "session", "abc")
		if err := closer.Close(); err != nil {
			t.Fatalf("failed to close log file: %v", err)
		}

		b, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read log file: %v", err)
		}
		got := string(b)
		if strings.Contains(got, "hidden") {
			t.Errorf("log contains debug record: %q", got)
		}
		if !strings.Contains(got, "msg=shown session=abc") {
			t.Errorf("log does not contain info record: %q", got)
		}
	})

	t.Run("path is a directory", func(t *testing.T) {
		if _, _, err := NewFileLogger(t.TempDir(), slog.LevelDebug); err == nil {
			t.Error("NewFileLogger() error = nil, want error")
		}
	})
}
