// Package streak computes check-in streaks and missed days over a user's
// check-in dates. Every function is pure: "today" is always passed in.
package streak

import (
	"slices"
)

// Summary is the derived view of one user's check-in log at a given day.
type Summary struct {
	Current           int
	Longest           int
	ConsecutiveMissed int
	TotalDays         int
	CheckedInToday    bool
	Last              Date
}

// Normalize validates the dates and returns them sorted ascending without
// duplicates. The input slice is not modified.
func Normalize(dates []Date) ([]Date, error) {
	out := make([]Date, 0, len(dates))
	for _, d := range dates {
		if err := d.validate(); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	slices.SortFunc(out, Date.Compare)
	return slices.CompactFunc(out, Date.Equal), nil
}

// LongestStreak is the longest run of consecutive days anywhere in the log.
func LongestStreak(dates []Date) (int, error) {
	days, err := Normalize(dates)
	if err != nil {
		return 0, err
	}
	return longest(days), nil
}

// CurrentStreak counts the unbroken run of days ending at today. When today
// has no check-in the result depends on mode: CurrentTrailing counts the run
// ending yesterday, CurrentRequireToday returns 0. Dates after today are ignored.
func CurrentStreak(dates []Date, today Date, mode CurrentMode) (int, error) {
	if err := today.validate(); err != nil {
		return 0, err
	}
	days, err := Normalize(dates)
	if err != nil {
		return 0, err
	}
	return current(days, today, mode), nil
}

// ConsecutiveMissed counts the days missed since the last check-in. A user
// without check-ins has missed nothing. A last check-in today, in the future
// or yesterday yields 0 (today is not over yet).
func ConsecutiveMissed(dates []Date, today Date, mode MissedMode) (int, error) {
	if err := today.validate(); err != nil {
		return 0, err
	}
	days, err := Normalize(dates)
	if err != nil {
		return 0, err
	}
	return missed(days, today, mode), nil
}

// GapBefore is the number of full days with no check-in strictly between the
// last check-in before day and day itself. It is the value annotated on a new
// check-in record and does not depend on MissedMode: once day is checked in
// it is no longer open.
func GapBefore(dates []Date, day Date) (int, error) {
	if err := day.validate(); err != nil {
		return 0, err
	}
	days, err := Normalize(dates)
	if err != nil {
		return 0, err
	}
	idx, _ := slices.BinarySearchFunc(days, day, Date.Compare)
	if idx == 0 {
		return 0, nil
	}
	gap := days[idx-1].DaysUntil(day) - 1
	if gap < 0 {
		return 0, nil
	}
	return gap, nil
}

func Summarize(dates []Date, today Date, policy Policy) (Summary, error) {
	if err := today.validate(); err != nil {
		return Summary{}, err
	}
	days, err := Normalize(dates)
	if err != nil {
		return Summary{}, err
	}
	s := Summary{
		Current:           current(days, today, policy.Current),
		Longest:           longest(days),
		ConsecutiveMissed: missed(days, today, policy.Missed),
		TotalDays:         len(days),
	}
	if len(days) > 0 {
		s.Last = days[len(days)-1]
		_, s.CheckedInToday = slices.BinarySearchFunc(days, today, Date.Compare)
	}
	return s, nil
}

// The helpers below expect normalized input.

func longest(days []Date) int {
	if len(days) == 0 {
		return 0
	}
	best, run := 1, 1
	for i := 1; i < len(days); i++ {
		if days[i-1].DaysUntil(days[i]) == 1 {
			run++
			best = max(best, run)
		} else {
			run = 1
		}
	}
	return best
}

func current(days []Date, today Date, mode CurrentMode) int {
	i := len(days) - 1
	for i >= 0 && days[i].After(today) {
		i--
	}
	expected := today
	if i < 0 || !days[i].Equal(today) {
		if mode == CurrentRequireToday {
			return 0
		}
		expected = today.AddDays(-1)
	}
	n := 0
	for ; i >= 0 && days[i].Equal(expected); i-- {
		n++
		expected = expected.AddDays(-1)
	}
	return n
}

func missed(days []Date, today Date, mode MissedMode) int {
	if len(days) == 0 {
		return 0
	}
	gap := days[len(days)-1].DaysUntil(today)
	if gap <= 1 {
		return 0
	}
	if mode == MissedStrict {
		return gap
	}
	return gap - 1
}
