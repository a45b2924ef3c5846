// Package throttle provides functions to throttle function calls, i.e., to
// cap how often a function may be invoked regardless of how often it is
// called.
//
// Unlike debouncing, which waits for a quiet period, throttling guarantees
// progress during a sustained burst: at most one invocation per wait window,
// on the leading edge, the trailing edge, or both.
package throttle

import (
	"errors"
	"time"
)

var (
	// ErrNegativeWait is returned when a factory is given a negative wait
	// duration.
	ErrNegativeWait = errors.New("throttle: negative wait duration")

	// ErrNilFunc is returned when a factory is given a nil function.
	ErrNilFunc = errors.New("throttle: nil function")

	// ErrInvalidPolicy is returned when a factory is given a Policy value
	// outside of Both, Leading and Trailing.
	ErrInvalidPolicy = errors.New("throttle: invalid policy")
)

// New returns a throttled function that invokes f at most once per wait
// window, no matter how often the throttled function is called.
//
// With the default Both policy, the first call of a burst invokes f
// synchronously, and the most recent call inside a window is invoked once
// the window elapses. The Leading policy drops calls arriving inside a
// window, and the Trailing policy defers each window's invocation to the
// window boundary. An elapsed time exactly equal to wait opens a new window.
//
// A wait of zero disables throttling entirely, and the returned function
// invokes f synchronously on every call. A negative wait is rejected with
// ErrNegativeWait.
//
// The returned cancel function discards any pending trailing invocation and
// resets the rate window, but is not required to be called, so can be
// ignored if not needed.
//
// Both throttled and cancel functions are safe for concurrent use in
// goroutines, and can both be called multiple times.
func New(
	wait time.Duration,
	f func(),
	opts ...Option,
) (throttled func(), cancel func(), err error) {
	if f == nil {
		return nil, nil, ErrNilFunc
	}

	t, err := newThrottler(wait, opts...)
	if err != nil {
		return nil, nil, err
	}
	if t == nil {
		return f, func() {}, nil
	}

	throttled = func() { t.call(f) }

	return throttled, t.cancel, nil
}

// NewMutable returns a throttled function like New, but it allows the
// callback function to be changed, as a new callback function is passed to
// each invocation of the throttled function.
//
// With the Both policy, the call that opens a window invokes its own f on
// the leading edge, and the last f passed inside a window is the one invoked
// on the trailing edge; earlier f values are discarded. With Trailing, the f
// that opened the window is kept, matching New's drop semantics.
//
// Both throttled and cancel functions are safe for concurrent use in
// goroutines, and can both be called multiple times.
func NewMutable(
	wait time.Duration,
	opts ...Option,
) (throttled func(f func()), cancel func(), err error) {
	t, err := newThrottler(wait, opts...)
	if err != nil {
		return nil, nil, err
	}
	if t == nil {
		throttled = func(f func()) {
			if f != nil {
				f()
			}
		}

		return throttled, func() {}, nil
	}

	return t.call, t.cancel, nil
}
