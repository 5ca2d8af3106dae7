package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"chatty", slog.LevelInfo, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, slog.LevelWarn)

	l.Debug("hidden")
	l.Info("hidden")
	l.Warn("shown", slog.String("iata", "JFK"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1: %q", len(lines), buf.String())
	}

	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &rec); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if rec["msg"] != "shown" || rec["iata"] != "JFK" {
		t.Errorf("record = %v", rec)
	}
}

func TestWithCarriesAttributes(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, slog.LevelInfo).With("component", "schedule")
	l.Info("spawned", slog.String("from", "LAX"))

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if rec["component"] != "schedule" || rec["from"] != "LAX" {
		t.Errorf("record = %v", rec)
	}
}

func TestNilLoggerIsSafe(t *testing.T) {
	var l *Logger
	l.Debug("x")
	l.Info("x")
	l.Warn("x")
	l.Error("x")
	if l.With("k", "v") != nil {
		t.Error("With on nil logger should stay nil")
	}
	if got := l.WriteCrashReport("boom", nil); got != "" {
		t.Errorf("WriteCrashReport on nil = %q, want empty", got)
	}
}

func TestNewWritesToFileNotStdout(t *testing.T) {
	dir := t.TempDir()
	l, err := New("debug", dir)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	l.Info("flight launched", slog.String("from", "LAX"))

	if l.LogFile != filepath.Join(dir, logFileName) {
		t.Errorf("LogFile = %q", l.LogFile)
	}
	data, err := os.ReadFile(l.LogFile)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !bytes.Contains(data, []byte("flight launched")) {
		t.Error("log file missing message")
	}
}

func TestNewRejectsBadLevel(t *testing.T) {
	if _, err := New("loud", t.TempDir()); err == nil {
		t.Error("New with invalid level should fail")
	}
}

func TestWriteCrashReport(t *testing.T) {
	dir := t.TempDir()
	l, err := New("info", dir)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	fn := l.WriteCrashReport("boom", []byte("goroutine 1"))
	if fn == "" {
		t.Fatal("no crash report written")
	}
	data, err := os.ReadFile(fn)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if !strings.Contains(string(data), "Crashed: boom") || !strings.Contains(string(data), "goroutine 1") {
		t.Errorf("report = %q", data)
	}
}
