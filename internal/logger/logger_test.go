package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"debug", DEBUG},
		{"INFO", INFO},
		{"warn", WARN},
		{"warning", WARN},
		{"error", ERROR},
		{"fatal", FATAL},
		{"", INFO},
		{"verbose", INFO},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriterLogger("warn", &buf)

	log.Debug("hidden debug")
	log.Infof("hidden %s", "info")
	log.Warnf("shown %d", 1)
	log.Error("shown error")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("filtered messages written: %q", out)
	}
	if !strings.Contains(out, "[WARN ]") || !strings.Contains(out, "shown 1") {
		t.Errorf("warning missing: %q", out)
	}
	if !strings.Contains(out, "[ERROR]") {
		t.Errorf("error missing: %q", out)
	}
	if !strings.Contains(out, "logger_test.go:") {
		t.Errorf("caller location missing: %q", out)
	}
	if strings.Contains(out, "\033[") {
		t.Errorf("writer logger emitted colors: %q", out)
	}

	buf.Reset()
	log.SetLevel("debug")
	log.Debugf("now %s", "visible")
	if !strings.Contains(buf.String(), "[DEBUG]") || log.Level() != DEBUG {
		t.Errorf("SetLevel did not apply: %q", buf.String())
	}
}

func TestColors(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriterLogger("info", &buf)
	log.EnableColors(true)
	log.Info("colored")

	if !strings.HasPrefix(buf.String(), levelColors[INFO]) {
		t.Errorf("missing color prefix: %q", buf.String())
	}
}

func TestFatalExits(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriterLogger("error", &buf)

	code := -1
	log.exit = func(c int) { code = c }
	log.Fatalf("boom %d", 7)

	if code != 1 {
		t.Errorf("exit code %d, want 1", code)
	}
	if !strings.Contains(buf.String(), "[FATAL]") || !strings.Contains(buf.String(), "boom 7") {
		t.Errorf("fatal message missing: %q", buf.String())
	}
}

func TestFileLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "trace.log")

	log, err := NewFileLogger("info", path)
	if err != nil {
		t.Fatal(err)
	}
	log.Info("to file")
	log.Close()
	log.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "to file") {
		t.Errorf("file content %q", data)
	}
}

func TestSetOutput(t *testing.T) {
	var first, second bytes.Buffer
	log := NewWriterLogger("info", &first)
	log.SetOutput(&second)
	log.Info("moved")

	if first.Len() != 0 || !strings.Contains(second.String(), "moved") {
		t.Errorf("first %q second %q", first.String(), second.String())
	}
}

func TestMultiLogger(t *testing.T) {
	var console bytes.Buffer
	path := filepath.Join(t.TempDir(), "multi.log")

	log, err := NewMultiLogger("info", path, &console)
	if err != nil {
		t.Fatal(err)
	}
	log.Info("both sinks")
	log.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "both sinks") || !strings.Contains(console.String(), "both sinks") {
		t.Errorf("file %q console %q", data, console.String())
	}
}
