package throttle

import (
	"sync"
	"time"
)

// throttler holds the configuration and window state shared by the New and
// NewMutable factories.
type throttler struct {
	// Configuration
	wait   time.Duration
	policy Policy
	clock  Clock

	// State
	mux     sync.Mutex
	seq     uint64
	armed   bool
	pending func()
	timer   *time.Timer
	last    time.Time
}

// call processes a single invocation attempt carrying callback f. It is safe
// for concurrent use.
func (t *throttler) call(f func()) {
	t.mux.Lock()

	now := t.clock.Now()

	// A zero last-fire time means no window has ever been opened, so the
	// very first call is always admitted.
	open := t.last.IsZero() || now.Sub(t.last) >= t.wait

	fireNow := false

	switch t.policy {
	case Leading:
		if open {
			t.last = now
			fireNow = true
		}
	case Trailing:
		if !t.armed {
			t.arm(t.wait, f)
		}
	default: // Both
		t.disarm()
		if open {
			t.last = now
			fireNow = true
		} else {
			t.arm(t.wait-now.Sub(t.last), f)
		}
	}

	t.mux.Unlock()

	if fireNow && f != nil {
		f()
	}
}

// arm schedules the pending callback to run after d. The caller must hold
// the mutex.
func (t *throttler) arm(d time.Duration, f func()) {
	t.seq++
	t.armed = true
	t.pending = f

	seq := t.seq
	t.timer = time.AfterFunc(d, func() { t.expire(seq) })
}

// disarm cancels any armed window. Stop may return false if the callback is
// already in flight, in which case the bumped sequence number makes it
// inert. The caller must hold the mutex.
func (t *throttler) disarm() {
	if t.timer != nil {
		t.timer.Stop()
	}
	t.seq++
	t.armed = false
	t.pending = nil
}

// expire runs at the boundary of window seq, invoking the callback that was
// carried into the window. A superseded window is a no-op.
func (t *throttler) expire(seq uint64) {
	t.mux.Lock()

	if seq != t.seq || !t.armed {
		t.mux.Unlock()
		return
	}

	f := t.pending
	t.pending = nil
	t.armed = false
	t.last = t.clock.Now()
	t.mux.Unlock()

	if f != nil {
		f()
	}
}

// cancel discards any pending trailing invocation and resets the rate
// window, as if the throttler had just been created.
func (t *throttler) cancel() {
	t.mux.Lock()
	defer t.mux.Unlock()

	t.disarm()
	t.last = time.Time{}
}

// newThrottler validates wait and applies options. A nil return with a nil
// error means wait is zero and callers should pass attempts straight
// through.
func newThrottler(wait time.Duration, opts ...Option) (*throttler, error) {
	if wait < 0 {
		return nil, ErrNegativeWait
	}

	t := &throttler{wait: wait}
	for _, opt := range opts {
		opt(t)
	}

	if !t.policy.valid() {
		return nil, ErrInvalidPolicy
	}
	if wait == 0 {
		return nil, nil
	}

	if t.clock == nil {
		t.clock = realClock{}
	}

	return t, nil
}
