package tabletop

import (
	"fmt"
	"time"
)

// PerfTracker keeps a rolling window of pipeline recompute durations. The
// whole vision/fog/lighting pass must fit inside one frame budget; the HUD
// and the headless report surface these numbers so regressions are visible.
type PerfTracker struct {
	samples []time.Duration
	next    int
	filled  bool
	last    time.Duration
}

// NewPerfTracker creates a tracker with the given window size.
func NewPerfTracker(window int) *PerfTracker {
	if window < 1 {
		window = 1
	}
	return &PerfTracker{samples: make([]time.Duration, window)}
}

// Record adds one recompute duration to the window.
func (p *PerfTracker) Record(d time.Duration) {
	p.last = d
	p.samples[p.next] = d
	p.next++
	if p.next == len(p.samples) {
		p.next = 0
		p.filled = true
	}
}

// Last returns the most recent duration.
func (p *PerfTracker) Last() time.Duration {
	return p.last
}

// count returns how many samples the window currently holds.
func (p *PerfTracker) count() int {
	if p.filled {
		return len(p.samples)
	}
	return p.next
}

// Avg returns the mean duration over the window.
func (p *PerfTracker) Avg() time.Duration {
	n := p.count()
	if n == 0 {
		return 0
	}
	var sum time.Duration
	for i := 0; i < n; i++ {
		sum += p.samples[i]
	}
	return sum / time.Duration(n)
}

// Max returns the worst duration in the window.
func (p *PerfTracker) Max() time.Duration {
	var worst time.Duration
	for i := 0; i < p.count(); i++ {
		if p.samples[i] > worst {
			worst = p.samples[i]
		}
	}
	return worst
}

// Summary returns a one-line HUD string.
func (p *PerfTracker) Summary() string {
	return fmt.Sprintf("recompute last=%.2fms avg=%.2fms max=%.2fms",
		float64(p.Last().Microseconds())/1000,
		float64(p.Avg().Microseconds())/1000,
		float64(p.Max().Microseconds())/1000)
}
