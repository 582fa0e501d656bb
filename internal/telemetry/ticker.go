package telemetry

import "time"

// Ticker measures consecutive steps of a multi-step operation.
type Ticker struct {
	last  time.Time
	ticks []time.Duration
	now   func() time.Time
}

// NewTicker starts a ticker at the current time.
func NewTicker() *Ticker {
	return newTicker(time.Now)
}

func newTicker(now func() time.Time) *Ticker {
	return &Ticker{last: now(), now: now}
}

// Tick ends the current step and returns its duration.
func (t *Ticker) Tick() time.Duration {
	end := t.now()
	d := end.Sub(t.last)
	t.last = end
	t.ticks = append(t.ticks, d)
	return d
}

// Ticks returns the recorded step durations.
func (t *Ticker) Ticks() []time.Duration {
	return t.ticks
}

// Total returns the sum of all steps.
func (t *Ticker) Total() time.Duration {
	var sum time.Duration
	for _, d := range t.ticks {
		sum += d
	}
	return sum
}

// Average returns the mean step duration, or zero before the first tick.
func (t *Ticker) Average() time.Duration {
	if len(t.ticks) == 0 {
		return 0
	}
	return t.Total() / time.Duration(len(t.ticks))
}
