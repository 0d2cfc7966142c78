package spinner

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestSpinnerNonTTY(t *testing.T) {
	var buf bytes.Buffer
	s := NewWriter("Analyzing competitors", &buf)

	s.Start()
	if !s.IsActive() {
		t.Error("spinner should be active after Start")
	}
	if !strings.Contains(buf.String(), "Analyzing competitors...") {
		t.Errorf("non-TTY start should print the message, got %q", buf.String())
	}

	s.Success("Analysis done")
	if s.IsActive() {
		t.Error("spinner should be inactive after Success")
	}
	out := buf.String()
	if !strings.Contains(out, symbolSuccess) || !strings.Contains(out, "Analysis done") {
		t.Errorf("success output missing, got %q", out)
	}
	if strings.Contains(out, colorGreen) {
		t.Error("non-TTY output should not carry ANSI colors")
	}
}

func TestSpinnerFail(t *testing.T) {
	var buf bytes.Buffer
	s := NewWriter("Generating card", &buf)
	s.Start()
	s.Fail("")

	out := buf.String()
	if !strings.Contains(out, symbolFailure) {
		t.Error("failure symbol missing")
	}
	// Empty completion message falls back to the spinner message.
	if strings.Count(out, "Generating card") < 2 {
		t.Errorf("fallback message missing, got %q", out)
	}
}

func TestSpinnerIdempotentLifecycle(t *testing.T) {
	var buf bytes.Buffer
	s := NewWriter("work", &buf)

	s.Stop() // stop before start is a no-op
	s.Start()
	s.Start() // double start is a no-op
	s.Stop()
	s.Stop() // double stop is a no-op
	if s.IsActive() {
		t.Error("spinner should be stopped")
	}
}

func TestSpinnerUpdate(t *testing.T) {
	var buf bytes.Buffer
	s := NewWriter("first", &buf)
	s.Start()
	s.Update("second")
	s.Success("")
	if !strings.Contains(buf.String(), "second") {
		t.Error("updated message should be used for completion")
	}
}

func TestProgressBar(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgressWriter(4, "Analyzing", &buf)

	p.Start()
	for i := 0; i < 4; i++ {
		p.Increment()
	}
	if p.Current() != 4 {
		t.Errorf("Current = %d, want 4", p.Current())
	}

	p.Increment() // clamped at total
	if p.Current() != 4 {
		t.Errorf("Current = %d after overflow increment, want 4", p.Current())
	}

	out := buf.String()
	if !strings.Contains(out, "(2/4)") || !strings.Contains(out, "100%") {
		t.Errorf("progress lines missing, got %q", out)
	}

	p.Complete("All competitors analyzed")
	if !strings.Contains(buf.String(), "All competitors analyzed") {
		t.Error("completion message missing")
	}
}

func TestProgressBarInactiveIgnoresUpdates(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgressWriter(3, "idle", &buf)
	p.Increment()
	if p.Current() != 0 {
		t.Error("increment before Start should not advance")
	}
}

func TestFormatElapsed(t *testing.T) {
	if got := formatElapsed(1500 * time.Millisecond); got != "(1.5s)" {
		t.Errorf("formatElapsed = %q, want (1.5s)", got)
	}
	if got := formatElapsed(90 * time.Second); got != "(1m 30s)" {
		t.Errorf("formatElapsed = %q, want (1m 30s)", got)
	}
}
