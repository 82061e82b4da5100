package diag

import (
	"bytes"
	"strings"
	"testing"
)

func TestDisabledLoggerIsSilent(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(false)
	l.SetOutput(&buf)
	l.Log("hello %d", 1)
	l.Section("section")
	if buf.Len() != 0 {
		t.Errorf("disabled logger wrote %q, want nothing", buf.String())
	}
}

func TestEnabledLoggerWrites(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(true)
	l.SetOutput(&buf)
	l.Log("hello %d", 1)
	if !strings.Contains(buf.String(), "hello 1") {
		t.Errorf("enabled logger output = %q, want to contain %q", buf.String(), "hello 1")
	}
}

func TestSectionHeader(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(true)
	l.SetOutput(&buf)
	l.Section("Parse")
	if !strings.Contains(buf.String(), "Parse") {
		t.Errorf("Section output = %q, want to contain %q", buf.String(), "Parse")
	}
}

func TestEnabled(t *testing.T) {
	if NewLogger(true).Enabled() != true {
		t.Error("Enabled() = false, want true")
	}
	if NewLogger(false).Enabled() != false {
		t.Error("Enabled() = true, want false")
	}
}
