package core

import (
	"math"
	"testing"
	"time"
)

func TestFixedStepAccumulates(t *testing.T) {
	fs := NewFixedStep(10)
	if fs.Interval() != 100*time.Millisecond {
		t.Fatalf("interval %v, expected 100ms", fs.Interval())
	}
	start := time.Unix(0, 0)
	if !fs.advance(start) {
		t.Fatal("first call should step immediately")
	}
	if fs.advance(start.Add(40 * time.Millisecond)) {
		t.Fatal("stepped before a full interval elapsed")
	}
	if !fs.advance(start.Add(110 * time.Millisecond)) {
		t.Fatal("expected a step once the interval elapsed")
	}
}

func TestFixedStepDefaultsTPS(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.Interval() != time.Second/60 {
		t.Fatalf("interval %v, expected 60 TPS", fs.Interval())
	}
	fs.SetTPS(-3)
	if fs.Interval() != time.Second/60 {
		t.Fatalf("interval %v after negative TPS, expected 60 TPS", fs.Interval())
	}
}

func TestStopwatch(t *testing.T) {
	sw := NewStopwatch("tick")
	if sw.Mean() != 0 {
		t.Fatal("mean should be zero before any samples")
	}
	sw.Record(2 * time.Millisecond)
	sw.Record(4 * time.Millisecond)
	ran := false
	sw.Time(func() { ran = true })
	if !ran {
		t.Fatal("Time did not run the section")
	}
	if sw.Count() != 3 {
		t.Fatalf("count %d, expected 3", sw.Count())
	}
	if sw.Mean() < 2*time.Millisecond {
		t.Fatalf("mean %v lower than expected", sw.Mean())
	}
}

func TestFrameStatsWindow(t *testing.T) {
	var fs FrameStats
	now := time.Unix(100, 0)
	fs.Frame(now)
	if fs.Latest() != 0 {
		t.Fatal("priming frame should not record a rate")
	}

	// 150 frames at 50 FPS followed by one at 20 FPS.
	for i := 0; i < 150; i++ {
		now = now.Add(20 * time.Millisecond)
		fs.Frame(now)
	}
	now = now.Add(50 * time.Millisecond)
	fs.Frame(now)

	if len(fs.frames) != FrameStatsWindow {
		t.Fatalf("kept %d frames, expected %d", len(fs.frames), FrameStatsWindow)
	}
	if math.Abs(fs.Latest()-20) > 1e-9 {
		t.Fatalf("latest %f, expected 20", fs.Latest())
	}
	mean, lo, hi := fs.Summary()
	if math.Abs(lo-20) > 1e-9 || math.Abs(hi-50) > 1e-9 {
		t.Fatalf("min/max %f/%f, expected 20/50", lo, hi)
	}
	if want := (99*50.0 + 20) / 100; math.Abs(mean-want) > 1e-9 {
		t.Fatalf("mean %f, expected %f", mean, want)
	}
	if lines := fs.Lines(); len(lines) != 4 || lines[0] != "FPS latest = 20" {
		t.Fatalf("unexpected lines %q", lines)
	}
}
