package throttle

// Option is a function that can be used to configure the throttled function.
type Option func(*throttler)

// WithPolicy sets which edges of the throttle window invoke the function.
// The default is Both.
func WithPolicy(p Policy) Option {
	return func(t *throttler) {
		t.policy = p
	}
}

// WithClock sets a custom implementation of the Clock interface, used for
// the last-fire bookkeeping. Timer scheduling is unaffected.
func WithClock(c Clock) Option {
	return func(t *throttler) {
		t.clock = c
	}
}
