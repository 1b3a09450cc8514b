package session

import (
	"sync"
	"time"
)

// ticker is the countdown tick source: one repeating tick at a fixed
// interval, delivered until Stop. Stop is idempotent and safe to call from
// the tick callback itself; a tick already in flight when Stop is called may
// still be delivered, so callers must guard their handlers.
type ticker struct {
	stop chan struct{}
	once sync.Once
}

// startTicker launches a goroutine invoking onTick every interval.
func startTicker(interval time.Duration, onTick func()) *ticker {
	t := &ticker{stop: make(chan struct{})}
	go t.run(interval, onTick)
	return t
}

func (t *ticker) run(interval time.Duration, onTick func()) {
	tk := time.NewTicker(interval)
	defer tk.Stop()

	for {
		select {
		case <-t.stop:
			return
		case <-tk.C:
			select {
			case <-t.stop:
				return
			default:
			}
			onTick()
		}
	}
}

// Stop deterministically ends tick delivery.
func (t *ticker) Stop() {
	t.once.Do(func() { close(t.stop) })
}
