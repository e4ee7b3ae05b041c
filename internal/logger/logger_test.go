package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitWritesToLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "tedit.log")
	t.Setenv("TEDIT_LOG_FILE", path)

	if err := Init(true); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	Debug("mode change", "from", "INSERT", "to", "NORMAL")
	Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "mode change") {
		t.Fatalf("log = %q, want it to contain %q", string(data), "mode change")
	}
}

func TestInfoLevelDropsDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tedit.log")
	t.Setenv("TEDIT_LOG_FILE", path)

	if err := Init(false); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	Debug("hidden")
	Info("shown")
	Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if strings.Contains(string(data), "hidden") {
		t.Fatalf("debug line written at info level")
	}
	if !strings.Contains(string(data), "shown") {
		t.Fatalf("info line missing")
	}
}

func TestHelpersBeforeInitAreNoops(t *testing.T) {
	Close()
	Debug("x")
	Info("x")
	Warn("x")
	Error("x")
}

func TestDebugEnabled(t *testing.T) {
	t.Setenv("TEDIT_DEBUG", "1")
	if !DebugEnabled() {
		t.Fatalf("DebugEnabled = false, want true")
	}
	t.Setenv("TEDIT_DEBUG", "0")
	if DebugEnabled() {
		t.Fatalf("DebugEnabled = true, want false")
	}
}

func TestLogPathFallbacks(t *testing.T) {
	t.Setenv("TEDIT_LOG_FILE", "")
	t.Setenv("TEDIT_CONFIG_HOME", "/tmp/tedit-home")
	got, err := getLogPath()
	if err != nil {
		t.Fatalf("getLogPath error: %v", err)
	}
	if got != "/tmp/tedit-home/tedit.log" {
		t.Fatalf("getLogPath = %q, want %q", got, "/tmp/tedit-home/tedit.log")
	}

	t.Setenv("TEDIT_CONFIG_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	got, err = getLogPath()
	if err != nil {
		t.Fatalf("getLogPath error: %v", err)
	}
	if got != "/tmp/xdg/tedit/tedit.log" {
		t.Fatalf("getLogPath = %q, want %q", got, "/tmp/xdg/tedit/tedit.log")
	}
}
