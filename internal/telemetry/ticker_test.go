package telemetry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTicker(t *testing.T) {
	base := time.Unix(1000, 0)
	steps := []time.Duration{0, 10 * time.Millisecond, 30 * time.Millisecond, 35 * time.Millisecond}
	i := 0
	clock := func() time.Time {
		now := base.Add(steps[i])
		i++
		return now
	}

	tk := newTicker(clock)
	assert.Equal(t, time.Duration(0), tk.Average())

	assert.Equal(t, 10*time.Millisecond, tk.Tick())
	assert.Equal(t, 20*time.Millisecond, tk.Tick())
	assert.Equal(t, 5*time.Millisecond, tk.Tick())

	assert.Equal(t, []time.Duration{10 * time.Millisecond, 20 * time.Millisecond, 5 * time.Millisecond}, tk.Ticks())
	assert.Equal(t, 35*time.Millisecond, tk.Total())
	assert.Equal(t, 35*time.Millisecond/3, tk.Average())
}
