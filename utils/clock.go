package utils

import "time"

// Clock abstracts time.Now so date-dependent logic can be pinned in tests.
type Clock interface {
	Now() time.Time
}

// RealClock is the wall clock used outside of tests.
type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now()
}

// FixedClock always reports the same instant.
type FixedClock struct {
	Fixed time.Time
}

func (c FixedClock) Now() time.Time {
	return c.Fixed
}

// StartOfDay truncates t to local midnight. All occurrence and completion
// dates are stored and compared in this normalized form.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
