package debounce

import (
	"time"
)

// NewMutable returns a debounced function like New, but it allows the
// callback function to be changed, as a new callback function is passed to
// each invocation of the debounced function.
//
// Only the very last f passed to the debounced function is called when the
// wait expires and the callback function is invoked; previous f values are
// discarded. With the Leading option, the f passed to the call that starts a
// burst is the one invoked on the leading edge.
//
// The returned cancel function can be used to cancel any pending invocation,
// but is not required to be called, so can be ignored if not needed.
//
// Both debounced and cancel functions are safe for concurrent use in
// goroutines, and can both be called multiple times.
func NewMutable(
	wait time.Duration,
	opts ...Option,
) (debounced func(f func()), cancel func(), err error) {
	d, err := newDebouncer(wait, opts...)
	if err != nil {
		return nil, nil, err
	}
	if d == nil {
		debounced = func(f func()) {
			if f != nil {
				f()
			}
		}

		return debounced, func() {}, nil
	}

	return d.call, d.cancel, nil
}
