// Package clock supplies the time dependencies injected into reducers so
// tests can fix the current instant and day boundaries deterministically.
package clock

import "time"

// Clock supplies the current instant.
type Clock interface {
	Now() time.Time
}

// Calendar supplies day-boundary computation used to bucket log entries into
// calendar days and to compute streaks and weekly ratios.
type Calendar interface {
	StartOfDay(t time.Time) time.Time
	SameDay(a, b time.Time) bool
	AddDays(t time.Time, days int) time.Time
}

// System is the live Clock backed by the wall clock.
type System struct{}

// Now implements Clock.
func (System) Now() time.Time { return time.Now() }

// Gregorian is the live Calendar. A nil Location means time.Local.
type Gregorian struct {
	Location *time.Location
}

func (g Gregorian) location() *time.Location {
	if g.Location != nil {
		return g.Location
	}
	return time.Local
}

// StartOfDay truncates t to midnight in the calendar's location.
func (g Gregorian) StartOfDay(t time.Time) time.Time {
	t = t.In(g.location())
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, g.location())
}

// SameDay reports whether a and b fall on the same calendar day.
func (g Gregorian) SameDay(a, b time.Time) bool {
	return g.StartOfDay(a).Equal(g.StartOfDay(b))
}

// AddDays shifts t by whole calendar days.
func (g Gregorian) AddDays(t time.Time, days int) time.Time {
	return t.In(g.location()).AddDate(0, 0, days)
}

// Fixed is a Clock pinned to a single instant, for tests.
type Fixed struct {
	Instant time.Time
}

// Now implements Clock.
func (f Fixed) Now() time.Time { return f.Instant }
