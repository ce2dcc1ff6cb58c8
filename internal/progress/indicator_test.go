package progress

import (
	"bytes"
	"strings"
	"testing"
)

func TestPageFetched(t *testing.T) {
	var buf bytes.Buffer
	p := NewIndicator(&buf)

	p.PageFetched(500, 1200)
	p.PageFetched(1000, 1200)
	p.PageFetched(1200, 1200)

	out := buf.String()
	if !strings.Contains(out, "(500/1200)") {
		t.Errorf("missing first page update:\n%q", out)
	}
	if !strings.Contains(out, "100.0% (1200/1200)") {
		t.Errorf("missing final update:\n%q", out)
	}
	if !strings.HasSuffix(out, "\n") {
		t.Errorf("final update should end the line:\n%q", out)
	}
}

func TestDisabledIndicatorStaysQuiet(t *testing.T) {
	var buf bytes.Buffer
	p := NewIndicator(&buf)
	p.Disable()

	p.PageFetched(500, 1200)
	if buf.Len() != 0 {
		t.Errorf("disabled indicator wrote output: %q", buf.String())
	}
}

func TestUnknownTotalStaysQuiet(t *testing.T) {
	var buf bytes.Buffer
	p := NewIndicator(&buf)

	p.PageFetched(500, 0)
	if buf.Len() != 0 {
		t.Errorf("indicator wrote output for zero total: %q", buf.String())
	}
}
