package logger

import (
	"bytes"
	"strings"
	"testing"
)

func newBufferedLogger(level string) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := NewLogger(level)
	l.SetOutput(&buf)
	l.EnableColors(false)
	return l, &buf
}

func TestLoggerLevelFiltering(t *testing.T) {
	l, buf := newBufferedLogger("info")

	l.Debugf("hidden %d", 1)
	if buf.Len() != 0 {
		t.Errorf("debug message logged at info level: %q", buf.String())
	}

	l.Infof("shown %d", 2)
	l.Warnf("warned %d", 3)
	l.Errorf("failed %d", 4)

	out := buf.String()
	for _, want := range []string{"[INFO ] ", "shown 2", "[WARN ] ", "warned 3", "[ERROR] ", "failed 4"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\033[") {
		t.Errorf("colors disabled but output carries ANSI codes:\n%s", out)
	}
}

func TestLoggerSetLevel(t *testing.T) {
	l, buf := newBufferedLogger("error")

	l.Warnf("dropped")
	if buf.Len() != 0 {
		t.Errorf("warn message logged at error level: %q", buf.String())
	}

	l.SetLevel("debug")
	l.Debugf("now visible")
	if !strings.Contains(buf.String(), "now visible") {
		t.Errorf("debug message missing after SetLevel:\n%s", buf.String())
	}
}

func TestLoggerUnknownLevelDefaultsToInfo(t *testing.T) {
	l, buf := newBufferedLogger("chatty")

	l.Debugf("hidden")
	l.Infof("shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Errorf("unknown level should behave as info:\n%s", buf.String())
	}
}

func TestLoggerCallerLocation(t *testing.T) {
	l, buf := newBufferedLogger("info")

	l.Infof("where am I")
	if !strings.Contains(buf.String(), "logger_test.go:") {
		t.Errorf("output missing caller location:\n%s", buf.String())
	}
}
