package logger

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"DEBUG", slog.LevelDebug},
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"WARNING", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := parseLogLevel(tt.input); got != tt.want {
			t.Errorf("parseLogLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestSetOutputFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf, "WARN")
	defer SetOutput(&bytes.Buffer{}, "INFO")

	Info("hidden")
	Warning("rooms swapped", "count", 3)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("Info message should be filtered at WARN level: %q", out)
	}
	if !strings.Contains(out, "rooms swapped") || !strings.Contains(out, "count=3") {
		t.Errorf("Warning message missing from output: %q", out)
	}
}

func TestInitializeFile(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FilePath = filepath.Join(t.TempDir(), "test.log")
	if err := Initialize(cfg); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	Info("written to file")
	Close()

	cfg.FilePath = ""
	if err := Initialize(cfg); err == nil {
		t.Error("File logging without a path should fail")
	}
}
