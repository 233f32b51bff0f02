package scheduler

import (
	"errors"
	"fmt"
	"time"
)

// DefaultReminderAt is when the daily sweep runs, local time.
var DefaultReminderAt = TimeOfDay{Hour: 1}

type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay accepts "HH:MM" in 24h format.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return TimeOfDay{}, errors.New("parsing time of day error: " + err.Error())
	}
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}, nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Next returns the first moment strictly after now at this time of day, in now's location.
func (t TimeOfDay) Next(now time.Time) time.Time {
	y, m, d := now.Date()
	next := time.Date(y, m, d, t.Hour, t.Minute, 0, 0, now.Location())
	if !next.After(now) {
		next = time.Date(y, m, d+1, t.Hour, t.Minute, 0, 0, now.Location())
	}
	return next
}
