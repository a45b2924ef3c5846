package throttle

import "time"

// Clock supplies the current time for the last-fire bookkeeping. It exists
// so that window arithmetic can be tested deterministically.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}
