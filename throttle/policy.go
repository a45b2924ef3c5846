package throttle

// Policy selects which edges of a throttle window invoke the function.
type Policy int

const (
	// Both invokes on the leading edge of a burst and once more on the
	// trailing edge with the most recent callback. This is the default.
	Both Policy = iota

	// Leading invokes at most once per wait window, at the moment a call
	// is admitted. Calls arriving inside a window are dropped.
	Leading

	// Trailing defers each window's invocation to the window boundary,
	// using the call that opened the window. Later calls in the same
	// window are dropped.
	Trailing
)

// String returns the name of the policy.
func (p Policy) String() string {
	switch p {
	case Both:
		return "both"
	case Leading:
		return "leading"
	case Trailing:
		return "trailing"
	default:
		return "invalid"
	}
}

func (p Policy) valid() bool {
	return p == Both || p == Leading || p == Trailing
}
