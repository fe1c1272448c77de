// Package clock isolates wall-clock access behind a narrow interface so the
// state machine and the selection-window checks stay deterministic in tests.
package clock

import "time"

// Clock supplies the current time. Production code uses SystemClock; tests
// inject a Fixed clock to pin "now".
type Clock interface {
	Now() time.Time
}

// SystemClock reads the operating-system wall clock.
type SystemClock struct{}

// NewSystemClock creates the production clock.
func NewSystemClock() SystemClock {
	return SystemClock{}
}

// Now returns the current UTC time.
func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// Fixed is a clock frozen at a single instant, for tests.
type Fixed struct {
	Instant time.Time
}

// NewFixed creates a clock that always reports the given instant.
func NewFixed(instant time.Time) Fixed {
	return Fixed{Instant: instant}
}

// Now returns the frozen instant.
func (f Fixed) Now() time.Time {
	return f.Instant
}
