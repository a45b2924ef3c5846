package debounce

import (
	"sync"
	"time"
)

// debouncer holds the configuration and timer state shared by the New and
// NewMutable factories.
type debouncer struct {
	// Configuration
	wait     time.Duration
	leading  bool
	trailing bool
	maxWait  time.Duration

	// State
	mux        sync.Mutex
	seq        uint64
	armed      bool
	maxSeq     uint64
	maxArmed   bool
	pending    func()
	timer      *time.Timer
	maxTimer   *time.Timer
	lastInvoke time.Time
}

// call processes a single invocation attempt carrying callback f. It is safe
// for concurrent use.
func (d *debouncer) call(f func()) {
	d.mux.Lock()

	now := time.Now()
	fireNow := d.leading && !d.armed &&
		(d.lastInvoke.IsZero() || now.Sub(d.lastInvoke) >= d.wait)

	// Cancel the outstanding window before arming a new one. Stop may
	// return false if the callback is already in flight, in which case the
	// sequence number below makes it inert.
	if d.timer != nil {
		d.timer.Stop()
	}
	d.seq++
	d.armed = true
	seq := d.seq
	d.timer = time.AfterFunc(d.wait, func() { d.expire(seq) })

	if fireNow {
		d.lastInvoke = now
	} else if d.trailing {
		d.pending = f

		if d.maxWait > 0 && !d.maxArmed {
			d.maxSeq++
			d.maxArmed = true
			maxSeq := d.maxSeq
			d.maxTimer = time.AfterFunc(d.maxWait, func() {
				d.expireMax(maxSeq)
			})
		}
	}

	d.mux.Unlock()

	if fireNow && f != nil {
		f()
	}
}

// expire runs when a quiet period of length wait has elapsed since the
// attempt that armed window seq. A superseded window is a no-op.
func (d *debouncer) expire(seq uint64) {
	d.mux.Lock()

	if seq != d.seq || !d.armed {
		d.mux.Unlock()
		return
	}

	f := d.flush(time.Now())
	d.mux.Unlock()

	if f != nil {
		f()
	}
}

// expireMax runs when a burst has kept the quiet-period timer busy for
// maxWait, forcing the pending callback through.
func (d *debouncer) expireMax(seq uint64) {
	d.mux.Lock()

	if seq != d.maxSeq || !d.maxArmed {
		d.mux.Unlock()
		return
	}

	f := d.flush(time.Now())
	d.mux.Unlock()

	if f != nil {
		f()
	}
}

// flush disarms both timers, invalidates any in-flight callbacks, and
// returns the pending trailing callback, if any. The caller must hold the
// mutex and invoke the returned function after unlocking.
func (d *debouncer) flush(now time.Time) func() {
	f := d.pending
	d.pending = nil
	d.armed = false
	d.maxArmed = false
	d.seq++
	d.maxSeq++

	if d.timer != nil {
		d.timer.Stop()
	}
	if d.maxTimer != nil {
		d.maxTimer.Stop()
	}

	if f != nil {
		d.lastInvoke = now
	}

	return f
}

// cancel discards any pending invocation and resets the leading-edge
// bookkeeping, as if the debouncer had just been created.
func (d *debouncer) cancel() {
	d.mux.Lock()
	defer d.mux.Unlock()

	d.flush(time.Time{})
	d.lastInvoke = time.Time{}
}

// newDebouncer validates wait and applies options. A nil return with a nil
// error means wait is zero and callers should pass attempts straight through.
func newDebouncer(wait time.Duration, opts ...Option) (*debouncer, error) {
	if wait < 0 {
		return nil, ErrNegativeWait
	}
	if wait == 0 {
		return nil, nil
	}

	d := &debouncer{wait: wait}
	for _, opt := range opts {
		opt(d)
	}

	// If neither leading nor trailing is set, default to trailing.
	if !d.leading && !d.trailing {
		d.trailing = true
	}

	// A maxWait that could never outlast the quiet period is disabled.
	if d.maxWait <= d.wait {
		d.maxWait = 0
	}

	return d, nil
}
