package session

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTicker_DeliversTicks(t *testing.T) {
	var ticks atomic.Int32
	tk := startTicker(time.Millisecond, func() { ticks.Add(1) })
	defer tk.Stop()

	assert.Eventually(t, func() bool { return ticks.Load() >= 3 },
		time.Second, time.Millisecond)
}

func TestTicker_StopEndsDelivery(t *testing.T) {
	var ticks atomic.Int32
	tk := startTicker(time.Millisecond, func() { ticks.Add(1) })

	assert.Eventually(t, func() bool { return ticks.Load() >= 1 },
		time.Second, time.Millisecond)

	tk.Stop()
	settled := ticks.Load()
	time.Sleep(20 * time.Millisecond)
	// At most one in-flight tick may land after Stop.
	assert.LessOrEqual(t, ticks.Load(), settled+1)
}

func TestTicker_StopIsIdempotent(t *testing.T) {
	tk := startTicker(time.Millisecond, func() {})
	tk.Stop()
	assert.NotPanics(t, func() { tk.Stop() })
}
