package profiler

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestTickReportsOncePerInterval(t *testing.T) {
	var buf bytes.Buffer
	clock := time.Unix(0, 0)
	p := NewProfiler(
		WithInterval(time.Second),
		WithLogger(slog.New(slog.NewTextHandler(&buf, nil))),
	)
	p.now = func() time.Time { return clock }
	p.lastTime = clock

	reports := 0
	for range 125 {
		clock = clock.Add(time.Second / 60)
		if p.Tick(time.Second / 60) {
			reports++
		}
	}

	if reports != 2 {
		t.Fatalf("reports = %d, want 2", reports)
	}
	if out := buf.String(); !strings.Contains(out, "frame stats") || !strings.Contains(out, "fps=") {
		t.Fatalf("log output missing stats: %q", out)
	}
}

func TestTickTracksWorstFrame(t *testing.T) {
	var buf bytes.Buffer
	clock := time.Unix(0, 0)
	p := NewProfiler(WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))
	p.now = func() time.Time { return clock }
	p.lastTime = clock

	p.Tick(5 * time.Millisecond)
	p.Tick(40 * time.Millisecond)
	clock = clock.Add(time.Second)
	p.Tick(10 * time.Millisecond)

	if !strings.Contains(buf.String(), "worst_frame=40ms") {
		t.Fatalf("worst frame not reported: %q", buf.String())
	}
	if p.worstFrame != 0 {
		t.Fatalf("worstFrame not reset: %v", p.worstFrame)
	}
}
