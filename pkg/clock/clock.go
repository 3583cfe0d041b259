// Package clock abstracts the source of "now" so that time-dependent
// calendar logic can be tested deterministically.
package clock

import "time"

// Clock returns the current time.
type Clock interface {
	Now() time.Time
}

// Real is a Clock backed by the system clock.
type Real struct{}

// Now returns the current system time.
func (Real) Now() time.Time {
	return time.Now()
}

var _ Clock = Real{}

// Fixed is a Clock frozen at a single instant.
type Fixed struct {
	t time.Time
}

// At returns a Fixed clock that always reports t.
func At(t time.Time) Fixed {
	return Fixed{t: t}
}

// Now returns the frozen instant.
func (f Fixed) Now() time.Time {
	return f.t
}

var _ Clock = Fixed{}
