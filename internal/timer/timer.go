// Package timer implements the focus-session stopwatch.
//
// A Timer is a small state machine with three phases (idle, running,
// paused) driven only by Start, Pause, Resume, Stop and Reset. Calls made
// in the wrong phase are no-ops; none of the operations return an error.
//
// While running and unpaused the timer owns a live-clock ticker that
// recomputes the elapsed seconds once per interval and publishes a
// snapshot to subscribers. The ticker is released on every exit from the
// running-unpaused phase and on Close.
package timer

import (
	"io"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

// DefaultInterval is the live-clock cadence.
const DefaultInterval = time.Second

// Timer is the single session stopwatch owned by the application.
// Create it once with New and pass it to the views that need it.
type Timer struct {
	mu       sync.Mutex
	pubMu    sync.Mutex // serializes delivery to subscribers
	clock    clock.Clock
	interval time.Duration
	logger   *slog.Logger

	running     bool
	paused      bool
	startTime   time.Time // zero when paused or idle
	accumulated time.Duration
	elapsed     int
	category    string

	live   *liveClock
	closed bool

	seq       uint64 // bumped on every published change
	delivered uint64 // guarded by pubMu

	nextSubID   int
	subscribers map[int]func(State)
}

// Option configures a Timer.
type Option func(*Timer)

// WithClock sets the wall-clock source. Tests pass clock.NewMock().
func WithClock(c clock.Clock) Option {
	return func(t *Timer) {
		if c != nil {
			t.clock = c
		}
	}
}

// WithInterval sets the live-clock refresh cadence.
func WithInterval(d time.Duration) Option {
	return func(t *Timer) {
		if d > 0 {
			t.interval = d
		}
	}
}

// WithLogger sets the logger used for transition events.
func WithLogger(l *slog.Logger) Option {
	return func(t *Timer) {
		if l != nil {
			t.logger = l
		}
	}
}

// WithListener registers a subscriber at construction time.
func WithListener(fn func(State)) Option {
	return func(t *Timer) {
		if fn != nil {
			t.subscribers[t.nextSubID] = fn
			t.nextSubID++
		}
	}
}

// New returns an idle timer.
func New(opts ...Option) *Timer {
	t := &Timer{
		clock:       clock.New(),
		interval:    DefaultInterval,
		logger:      slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)})),
		subscribers: make(map[int]func(State)),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Subscribe registers fn to receive a snapshot after every transition and
// every live-clock tick. The returned func removes the subscription.
// Subscribers run outside the state lock and never see a snapshot older
// than one already delivered. They must not block and must not call
// Start, Pause, Resume, Stop or Reset; reading State is fine.
func (t *Timer) Subscribe(fn func(State)) (unsubscribe func()) {
	t.mu.Lock()
	id := t.nextSubID
	t.nextSubID++
	t.subscribers[id] = fn
	t.mu.Unlock()

	return func() {
		t.mu.Lock()
		delete(t.subscribers, id)
		t.mu.Unlock()
	}
}

// State returns a snapshot of the current timer state.
func (t *Timer) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.snapshotLocked()
}

// Start begins a new session with the given category. It is valid in any
// phase: an existing session is discarded and the clock restarts at zero.
func (t *Timer) Start(category string) {
	t.mu.Lock()
	from := t.phaseLocked()
	t.running = true
	t.paused = false
	t.startTime = t.clock.Now()
	t.accumulated = 0
	t.elapsed = 0
	t.category = category
	t.startLiveLocked()
	t.unlockAndPublish(from, true)
}

// Pause freezes the clock. No-op unless running and unpaused.
func (t *Timer) Pause() {
	t.mu.Lock()
	if !t.running || t.paused {
		t.mu.Unlock()
		return
	}
	from := t.phaseLocked()
	now := t.clock.Now()
	t.accumulated += now.Sub(t.startTime)
	t.startTime = time.Time{}
	t.paused = true
	t.stopLiveLocked()
	t.advanceLocked(secondsOf(t.accumulated))
	t.unlockAndPublish(from, true)
}

// Resume restarts the clock after a pause. No-op unless running and paused.
func (t *Timer) Resume() {
	t.mu.Lock()
	if !t.running || !t.paused {
		t.mu.Unlock()
		return
	}
	from := t.phaseLocked()
	t.startTime = t.clock.Now()
	t.paused = false
	t.startLiveLocked()
	t.unlockAndPublish(from, true)
}

// Stop ends the session and returns its duration and category. The
// duration is computed at the stop instant rather than read from the last
// tick. When idle, Stop returns ok=false and changes nothing.
func (t *Timer) Stop() (res Result, ok bool) {
	t.mu.Lock()
	if !t.running {
		t.mu.Unlock()
		return Result{}, false
	}
	from := t.phaseLocked()
	if !t.paused {
		t.advanceLocked(t.elapsedAtLocked(t.clock.Now()))
	}
	res = Result{Duration: t.elapsed, Category: t.category}
	t.resetLocked()
	t.unlockAndPublish(from, true)
	return res, true
}

// Reset discards any session in progress and returns to idle.
func (t *Timer) Reset() {
	t.mu.Lock()
	from := t.phaseLocked()
	t.resetLocked()
	t.unlockAndPublish(from, true)
}

// Close releases the live-clock ticker. The session state is left as is
// but no further ticks are produced and no new ticker will be acquired.
func (t *Timer) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLiveLocked()
	t.closed = true
}

func (t *Timer) resetLocked() {
	t.stopLiveLocked()
	t.running = false
	t.paused = false
	t.startTime = time.Time{}
	t.accumulated = 0
	t.elapsed = 0
	t.category = ""
}

func (t *Timer) phaseLocked() Phase {
	return State{Running: t.running, Paused: t.paused}.Phase()
}

func (t *Timer) snapshotLocked() State {
	s := State{
		Running:        t.running,
		Paused:         t.paused,
		Accumulated:    t.accumulated,
		ElapsedSeconds: t.elapsed,
		Category:       t.category,
	}
	if !t.startTime.IsZero() {
		st := t.startTime
		s.StartTime = &st
	}
	return s
}

// elapsedAtLocked is floor((now - startTime + accumulated) / 1s).
func (t *Timer) elapsedAtLocked(now time.Time) int {
	return secondsOf(now.Sub(t.startTime) + t.accumulated)
}

// advanceLocked keeps the published value non-decreasing within a session.
func (t *Timer) advanceLocked(secs int) {
	if secs > t.elapsed {
		t.elapsed = secs
	}
}

func secondsOf(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int(d / time.Second)
}

// unlockAndPublish snapshots the state, releases the state lock and
// delivers the snapshot unless a newer one has already gone out.
func (t *Timer) unlockAndPublish(from Phase, transition bool) {
	t.seq++
	seq := t.seq
	snap := t.snapshotLocked()
	subs := make([]func(State), 0, len(t.subscribers))
	for _, fn := range t.subscribers {
		subs = append(subs, fn)
	}
	t.mu.Unlock()

	if transition {
		t.logger.Debug("timer_transition",
			"from", from.String(),
			"to", snap.Phase().String(),
			"category", snap.Category,
			"elapsed_seconds", snap.ElapsedSeconds,
		)
	}

	t.pubMu.Lock()
	defer t.pubMu.Unlock()
	if seq <= t.delivered {
		return
	}
	t.delivered = seq
	for _, fn := range subs {
		fn(snap)
	}
}
