// Package clock provides the virtual millisecond clock that drives every
// timer in the simulation. All deadlines in the engine are expressed as
// values of Source.Now(); nothing reads the wall clock directly.
package clock

import "time"

// Source produces monotonic virtual timestamps in milliseconds.
type Source interface {
	Now() int64
}

// Monotonic is a Source backed by the process monotonic clock.
type Monotonic struct {
	start time.Time
}

// NewMonotonic creates a Source that starts counting from zero.
func NewMonotonic() *Monotonic {
	return &Monotonic{start: time.Now()}
}

// Now returns the number of milliseconds elapsed since creation.
func (m *Monotonic) Now() int64 {
	return time.Since(m.start).Milliseconds()
}

// Manual is a Source advanced explicitly. It is used by tests and by the
// headless script runner, where time only passes on "wait" commands.
type Manual struct {
	now int64
}

// NewManual creates a manual clock starting at the given timestamp.
func NewManual(start int64) *Manual {
	return &Manual{now: start}
}

// Now returns the current virtual timestamp.
func (m *Manual) Now() int64 {
	return m.now
}

// Advance moves the clock forward by ms milliseconds.
func (m *Manual) Advance(ms int64) {
	m.now += ms
}

// Set moves the clock to an absolute timestamp. Moving backwards is not
// allowed: the clock is monotonic.
func (m *Manual) Set(now int64) {
	if now < m.now {
		panic("clock: manual clock cannot move backwards")
	}
	m.now = now
}
