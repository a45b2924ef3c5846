package debounce

import (
	"time"
)

// Option is a function that can be used to configure the debounced function.
type Option func(*debouncer)

// Leading returns an option that will cause the debounced function to invoke
// the given function immediately on the first call of a burst, before waiting
// for the wait duration.
//
// When only leading is used, a burst of calls immediately invokes the
// function, and any subsequent calls are ignored until the wait duration has
// passed since the last call.
func Leading() Option {
	return func(d *debouncer) {
		d.leading = true
	}
}

// Trailing returns an option that will cause the debounced function to be
// invoked after the wait duration has passed since the last call. This is the
// default behavior when no options are given.
//
// If both Leading and Trailing are used, a burst of calls immediately invokes
// the function, followed by another invocation after the wait duration has
// passed since the last call. If only a single call is made, only one
// invocation will occur.
func Trailing() Option {
	return func(d *debouncer) {
		d.trailing = true
	}
}

// MaxWait returns an option that will cause the debounced function to be
// invoked after at most maxWait, even if calls keep arriving within the wait
// duration.
//
// Without a max wait, the debounced function might never be invoked if it is
// called repeatedly within the wait duration. A maxWait less than or equal to
// wait is ignored.
func MaxWait(maxWait time.Duration) Option {
	return func(d *debouncer) {
		d.maxWait = maxWait
	}
}
