package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New("", &buf)
	log.Debug("hidden")
	log.Warn("shown", "target", "android")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug line logged at default level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "target=android") {
		t.Errorf("warn line missing or without fields: %q", out)
	}
	if !strings.Contains(out, "distman") {
		t.Errorf("logger name missing: %q", out)
	}
}

func TestNewJSON(t *testing.T) {
	t.Setenv("DISTMAN_JSON_LOG", "1")

	var buf bytes.Buffer
	New("debug", &buf).Debug("scan", "count", 2)
	if !strings.HasPrefix(strings.TrimSpace(buf.String()), "{") {
		t.Errorf("expected JSON output, got %q", buf.String())
	}
}
