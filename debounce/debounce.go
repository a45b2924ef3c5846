// Package debounce provides functions to debounce function calls, i.e., to
// ensure that a function is only executed after a certain amount of time has
// passed since the last call.
//
// Debouncing can be useful in scenarios where function calls may be triggered
// rapidly, such as in response to user input, but the underlying operation is
// expensive and only needs to be performed once per batch of calls.
package debounce

import (
	"errors"
	"time"
)

var (
	// ErrNegativeWait is returned when a factory is given a negative wait
	// duration.
	ErrNegativeWait = errors.New("debounce: negative wait duration")

	// ErrNilFunc is returned when a factory is given a nil function.
	ErrNilFunc = errors.New("debounce: nil function")
)

// New returns a debounced function that delays invoking f until after wait
// time has elapsed since the last time the debounced function was invoked.
// With the Leading option, f is instead invoked synchronously on the first
// call of each burst, and later calls are suppressed until the burst ends.
//
// A wait of zero disables debouncing entirely, and the returned function
// invokes f synchronously on every call. A negative wait is rejected with
// ErrNegativeWait.
//
// The returned cancel function discards any pending invocation of f, but is
// not required to be called, so can be ignored if not needed.
//
// Both debounced and cancel functions are safe for concurrent use in
// goroutines, and can both be called multiple times.
//
// The debounced function does not wait for f to complete, so f needs to be
// thread-safe as it may be invoked again before the previous invocation
// completes.
func New(
	wait time.Duration,
	f func(),
	opts ...Option,
) (debounced func(), cancel func(), err error) {
	if f == nil {
		return nil, nil, ErrNilFunc
	}

	d, err := newDebouncer(wait, opts...)
	if err != nil {
		return nil, nil, err
	}
	if d == nil {
		return f, func() {}, nil
	}

	debounced = func() { d.call(f) }

	return debounced, d.cancel, nil
}
