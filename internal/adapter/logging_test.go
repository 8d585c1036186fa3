package adapter

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetupLoggerWritesJSONToFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "castdeck.log")
	logger, err := SetupLogger(&LoggingConfig{File: logPath, Level: "DEBUG"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	logger.Info("hello")

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("log file missing: %v", err)
	}
	if !strings.Contains(string(data), `"app":"castdeck"`) {
		t.Errorf("records should carry the app attribute, got %q", string(data))
	}
}

func TestExpandHomeLeavesAbsolutePathsAlone(t *testing.T) {
	got, err := expandHome("/var/log/castdeck.log")
	if err != nil || got != "/var/log/castdeck.log" {
		t.Errorf("expected path unchanged, got %q (%v)", got, err)
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"WARN", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"nonsense", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, tc := range tests {
		if got := parseLogLevel(tc.in); got != tc.want {
			t.Errorf("parseLogLevel(%q): expected %v, got %v", tc.in, tc.want, got)
		}
	}
}
