package streak

import "time"

// Clock is the single source of "now" and "today" for a process.
type Clock interface {
	Now() time.Time
	Today() Date
}

// SystemClock reads the wall clock in Location (time.Local when nil).
type SystemClock struct {
	Location *time.Location
}

func (c SystemClock) Now() time.Time {
	if c.Location == nil {
		return time.Now()
	}
	return time.Now().In(c.Location)
}

func (c SystemClock) Today() Date {
	return DateOf(c.Now())
}

// FixedClock always reports the same instant. Used by tests and by the CLI
// when a day is passed explicitly.
type FixedClock struct {
	At time.Time
}

func FixedDay(d Date) FixedClock {
	return FixedClock{At: d.Time().Add(12 * time.Hour)}
}

func (c FixedClock) Now() time.Time {
	return c.At
}

func (c FixedClock) Today() Date {
	return DateOf(c.At)
}
