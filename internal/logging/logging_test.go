package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "gwichat.log")

	logger, err := New(path)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	logger.Info("turn processed")
	if err := logger.Sync(); err != nil {
		t.Fatalf("Sync() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "turn processed") {
		t.Errorf("log file missing entry: %q", string(data))
	}
}

func TestNewEmptyPathIsNop(t *testing.T) {
	logger, err := New("")
	if err != nil {
		t.Fatalf("New(\"\") error: %v", err)
	}
	logger.Info("discarded")
}
