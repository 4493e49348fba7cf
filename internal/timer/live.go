package timer

import "github.com/benbjohnson/clock"

// liveClock is the periodic-task handle held while the timer is running
// and unpaused. At most one is current at a time.
type liveClock struct {
	ticker *clock.Ticker
	done   chan struct{}
}

// startLiveLocked replaces any current handle with a fresh one.
func (t *Timer) startLiveLocked() {
	t.stopLiveLocked()
	if t.closed {
		return
	}
	lc := &liveClock{
		ticker: t.clock.Ticker(t.interval),
		done:   make(chan struct{}),
	}
	t.live = lc
	go t.runLive(lc)
}

func (t *Timer) stopLiveLocked() {
	if t.live == nil {
		return
	}
	t.live.ticker.Stop()
	close(t.live.done)
	t.live = nil
}

func (t *Timer) runLive(lc *liveClock) {
	for {
		select {
		case <-lc.done:
			return
		case <-lc.ticker.C:
			t.tick(lc)
		}
	}
}

// tick recomputes the elapsed seconds. A tick delivered by a handle that
// has since been released is dropped, so pause and stop are never
// followed by a stray update.
func (t *Timer) tick(lc *liveClock) {
	t.mu.Lock()
	if t.live != lc || !t.running || t.paused {
		t.mu.Unlock()
		return
	}
	from := t.phaseLocked()
	t.advanceLocked(t.elapsedAtLocked(t.clock.Now()))
	t.unlockAndPublish(from, false)
}
