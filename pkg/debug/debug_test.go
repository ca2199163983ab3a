package debug

import (
	"bytes"
	"strings"
	"testing"
)

func TestLogRespectsEnabled(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetEnabled(false)

	SetEnabled(false)
	Log("hidden %d", 1)
	if buf.Len() != 0 {
		t.Errorf("expected no output while disabled, got %q", buf.String())
	}

	SetEnabled(true)
	if !Enabled() {
		t.Fatal("expected debug logging to be enabled")
	}
	Log("visible %d", 2)
	if !strings.Contains(buf.String(), "visible 2") {
		t.Errorf("expected output to contain message, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), "[VENTIQ_DEBUG]") {
		t.Errorf("expected prefix in output, got %q", buf.String())
	}
}
