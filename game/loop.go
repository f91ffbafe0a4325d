package game

// Loop converts measured frame times into a whole number of fixed ticks.
// Leftover time carries over to the next frame; a long stall is capped at
// MaxCatchUp ticks and the rest is dropped.
type Loop struct {
	TickMs     float64
	MaxCatchUp int
	Ticks      int

	acc     float64
	last    float64
	started bool
}

// NewLoop creates a loop with a fixed tick length in milliseconds.
func NewLoop(tickMs float64, maxCatchUp int) *Loop {
	return &Loop{TickMs: tickMs, MaxCatchUp: maxCatchUp}
}

// Advance takes the timestamp of a new frame and returns how many ticks to
// simulate. The first frame only sets the reference time.
func (l *Loop) Advance(now float64) int {
	if !l.started {
		l.started = true
		l.last = now
		return 0
	}
	elapsed := now - l.last
	l.last = now
	if elapsed < 0 {
		elapsed = 0
	}
	l.acc += elapsed

	n := int(l.acc / l.TickMs)
	if n > l.MaxCatchUp {
		n = l.MaxCatchUp
		l.acc = 0
	} else {
		l.acc -= float64(n) * l.TickMs
	}
	l.Ticks += n
	return n
}

// Reset forgets the reference time, so the next frame starts fresh.
func (l *Loop) Reset() {
	l.acc = 0
	l.started = false
}
