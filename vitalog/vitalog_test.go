package vitalog

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevelFilterSuppressesBelowThreshold(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, WARNING)
	l.Debugf("should not appear")
	l.Infof("should not appear either")
	l.Warningf("should appear: %d", 42)

	out := buf.String()
	if strings.Contains(out, "should not appear") {
		t.Fatalf("expected DEBUG/INFO to be filtered, got: %s", out)
	}
	if !strings.Contains(out, "should appear: 42") {
		t.Fatalf("expected WARNING to appear, got: %s", out)
	}
}

func TestOffSuppressesEverythingIncludingOutput(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, OFF)
	l.Errorf("error")
	l.Outputf("output")
	if buf.Len() != 0 {
		t.Fatalf("expected no output at level OFF, got: %s", buf.String())
	}
}

func TestNilLoggerIsSilentNotPanicking(t *testing.T) {
	var l *Logger
	l.Infof("noop")
	l.Outputf("noop")
}
