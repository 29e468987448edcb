package bramble

import "time"

// frameTimerWindow is the number of samples in the moving average.
const frameTimerWindow = 60

// FrameTimer measures a recurring piece of work and keeps a moving average
// of its duration.
type FrameTimer struct {
	timings []time.Duration // ring buffer
	next    int
	sum     time.Duration
	avg     time.Duration
	now     func() time.Time
}

// NewFrameTimer returns a timer using the wall clock.
func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		timings: make([]time.Duration, 0, frameTimerWindow),
		now:     time.Now,
	}
}

// Run calls fn with the current average and records how long it took.
func (t *FrameTimer) Run(fn func(avg time.Duration)) {
	start := t.now()
	fn(t.avg)
	t.Record(t.now().Sub(start))
}

// Record adds a sample.
func (t *FrameTimer) Record(d time.Duration) {
	if len(t.timings) < frameTimerWindow {
		t.timings = append(t.timings, d)
	} else {
		t.sum -= t.timings[t.next]
		t.timings[t.next] = d
		t.next = (t.next + 1) % frameTimerWindow
	}
	t.sum += d
	t.avg = t.sum / time.Duration(len(t.timings))
}

// Average returns the moving average of the recorded samples.
func (t *FrameTimer) Average() time.Duration {
	return t.avg
}

// clock produces the delta between successive ticks.
type clock struct {
	last time.Time
	now  func() time.Time
}

func newClock(now func() time.Time) *clock {
	return &clock{last: now(), now: now}
}

// tick returns the time elapsed since the previous tick.
func (c *clock) tick() time.Duration {
	t := c.now()
	d := t.Sub(c.last)
	c.last = t
	return d
}
