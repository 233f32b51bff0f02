package streak

import (
	"fmt"
	"time"

	errorvalues "github.com/limbo/checkin/internal/error_values"
)

const dateLayout = "2006-01-02"

// Date is a calendar day without time-of-day. It is stored as midnight UTC so
// that day arithmetic never crosses a DST boundary. The zero Date is invalid.
type Date struct {
	t time.Time
}

type InvalidDateError struct {
	Value  string
	Reason string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date %q: %s", e.Value, e.Reason)
}

func (e *InvalidDateError) Is(target error) bool {
	return target == errorvalues.ErrInvalidDate
}

// NewDate rejects impossible dates instead of normalizing them the way
// time.Date does (Feb 30 stays an error, it never becomes Mar 2).
func NewDate(year int, month time.Month, day int) (Date, error) {
	value := fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
	if year < 1 {
		return Date{}, &InvalidDateError{Value: value, Reason: "year out of range"}
	}
	if month < time.January || month > time.December {
		return Date{}, &InvalidDateError{Value: value, Reason: "month out of range"}
	}
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if day < 1 || t.Day() != day || t.Month() != month {
		return Date{}, &InvalidDateError{Value: value, Reason: "day out of range"}
	}
	return Date{t: t}, nil
}

func MustDate(year int, month time.Month, day int) Date {
	d, err := NewDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, &InvalidDateError{Value: s, Reason: "expected YYYY-MM-DD"}
	}
	return NewDate(t.Year(), t.Month(), t.Day())
}

// DateOf takes the calendar day of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// FromTimes converts stored check-in dates. A zero time is rejected.
func FromTimes(times []time.Time) ([]Date, error) {
	dates := make([]Date, 0, len(times))
	for _, t := range times {
		if t.IsZero() {
			return nil, &InvalidDateError{Value: t.String(), Reason: "zero time"}
		}
		dates = append(dates, DateOf(t))
	}
	return dates, nil
}

func (d Date) IsZero() bool {
	return d.t.IsZero()
}

func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

// DaysUntil returns the number of whole days from d to other. It is negative
// when other is before d.
func (d Date) DaysUntil(other Date) int {
	return int(other.t.Sub(d.t) / (24 * time.Hour))
}

func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

func (d Date) After(other Date) bool {
	return d.t.After(other.t)
}

func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

func (d Date) Compare(other Date) int {
	return d.t.Compare(other.t)
}

// Time returns midnight UTC of the day.
func (d Date) Time() time.Time {
	return d.t
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(dateLayout)
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(b []byte) error {
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) validate() error {
	if d.IsZero() {
		return &InvalidDateError{Value: "", Reason: "zero date"}
	}
	return nil
}
