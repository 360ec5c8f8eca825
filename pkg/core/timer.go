package core

import (
	"fmt"
	"math"
	"time"
)

// FixedStep helps run simulation updates at a steady ticks-per-second rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	if tps <= 0 {
		tps = 60
	}
	fs := &FixedStep{}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// Interval reports the duration of a single tick.
func (f *FixedStep) Interval() time.Duration { return f.step }

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	return f.advance(time.Now())
}

func (f *FixedStep) advance(now time.Time) bool {
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}

// Stopwatch measures a named section each time it runs and keeps running totals.
type Stopwatch struct {
	Name string

	last  time.Duration
	total time.Duration
	count int
}

// NewStopwatch returns a stopwatch labelled name.
func NewStopwatch(name string) *Stopwatch {
	return &Stopwatch{Name: name}
}

// Time runs fn and records how long it took.
func (s *Stopwatch) Time(fn func()) {
	start := time.Now()
	fn()
	s.Record(time.Since(start))
}

// Record adds an externally measured sample.
func (s *Stopwatch) Record(d time.Duration) {
	s.last = d
	s.total += d
	s.count++
}

// Last returns the most recent sample.
func (s *Stopwatch) Last() time.Duration { return s.last }

// Count returns the number of samples recorded.
func (s *Stopwatch) Count() int { return s.count }

// Mean returns the average sample, or zero before the first one.
func (s *Stopwatch) Mean() time.Duration {
	if s.count == 0 {
		return 0
	}
	return s.total / time.Duration(s.count)
}

func (s *Stopwatch) String() string {
	return fmt.Sprintf("%s: last %v, mean %v over %d", s.Name, s.last, s.Mean(), s.count)
}

// FrameStatsWindow is how many frame rates FrameStats keeps.
const FrameStatsWindow = 100

// FrameStats tracks frames per second over a rolling window.
type FrameStats struct {
	frames []float64
	last   time.Time
}

// Frame records a frame presented at now. The first call only primes the clock.
func (f *FrameStats) Frame(now time.Time) {
	if f.last.IsZero() {
		f.last = now
		return
	}
	delta := now.Sub(f.last)
	f.last = now
	if delta <= 0 {
		return
	}
	f.push(float64(time.Second) / float64(delta))
}

func (f *FrameStats) push(fps float64) {
	f.frames = append(f.frames, fps)
	if len(f.frames) > FrameStatsWindow {
		f.frames = f.frames[len(f.frames)-FrameStatsWindow:]
	}
}

// Latest returns the most recent frame rate.
func (f *FrameStats) Latest() float64 {
	if len(f.frames) == 0 {
		return 0
	}
	return f.frames[len(f.frames)-1]
}

// Summary returns the mean, minimum and maximum over the window.
func (f *FrameStats) Summary() (mean, lo, hi float64) {
	if len(f.frames) == 0 {
		return 0, 0, 0
	}
	lo, hi = math.Inf(1), math.Inf(-1)
	sum := 0.0
	for _, fps := range f.frames {
		sum += fps
		lo = math.Min(lo, fps)
		hi = math.Max(hi, fps)
	}
	return sum / float64(len(f.frames)), lo, hi
}

// Lines formats the stats for display.
func (f *FrameStats) Lines() []string {
	mean, lo, hi := f.Summary()
	n := len(f.frames)
	return []string{
		fmt.Sprintf("FPS latest = %.0f", f.Latest()),
		fmt.Sprintf("avg of last %d = %.0f", n, mean),
		fmt.Sprintf("min of last %d = %.0f", n, lo),
		fmt.Sprintf("max of last %d = %.0f", n, hi),
	}
}
