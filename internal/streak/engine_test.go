package streak_test

import (
	"testing"
	"time"

	errorvalues "github.com/limbo/checkin/internal/error_values"
	"github.com/limbo/checkin/internal/streak"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = streak.MustDate(2025, time.March, 10)

func daysAgo(n ...int) []streak.Date {
	out := make([]streak.Date, 0, len(n))
	for _, k := range n {
		out = append(out, today.AddDays(-k))
	}
	return out
}

func TestLongestStreak(t *testing.T) {
	d := streak.MustDate(2025, time.January, 30)
	testCases := []struct {
		Desc     string
		Dates    []streak.Date
		Expected int
	}{
		{Desc: "empty", Dates: nil, Expected: 0},
		{Desc: "single day", Dates: []streak.Date{d}, Expected: 1},
		{Desc: "three consecutive", Dates: []streak.Date{d, d.AddDays(1), d.AddDays(2)}, Expected: 3},
		{Desc: "gap breaks streak", Dates: []streak.Date{d, d.AddDays(2)}, Expected: 1},
		{Desc: "duplicates count once", Dates: []streak.Date{d, d, d.AddDays(1)}, Expected: 2},
		{Desc: "unsorted input", Dates: []streak.Date{d.AddDays(2), d, d.AddDays(1), d.AddDays(5)}, Expected: 3},
		{Desc: "descending input", Dates: []streak.Date{d.AddDays(9), d.AddDays(8), d.AddDays(3), d.AddDays(2), d.AddDays(1)}, Expected: 3},
		{Desc: "run across month end", Dates: []streak.Date{d, d.AddDays(1), d.AddDays(2), d.AddDays(3)}, Expected: 4},
		{Desc: "later run is longer", Dates: []streak.Date{d, d.AddDays(1), d.AddDays(4), d.AddDays(5), d.AddDays(6)}, Expected: 3},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			got, err := streak.LongestStreak(tc.Dates)
			require.NoError(t, err)
			assert.Equal(t, tc.Expected, got)
		})
	}
}

func TestCurrentStreak(t *testing.T) {
	testCases := []struct {
		Desc     string
		Dates    []streak.Date
		Mode     streak.CurrentMode
		Expected int
	}{
		{Desc: "empty", Dates: nil, Mode: streak.CurrentTrailing, Expected: 0},
		{Desc: "today only", Dates: daysAgo(0), Mode: streak.CurrentTrailing, Expected: 1},
		{Desc: "run including today", Dates: daysAgo(0, 1, 2), Mode: streak.CurrentTrailing, Expected: 3},
		{Desc: "run ending yesterday keeps counting", Dates: daysAgo(1, 2, 3), Mode: streak.CurrentTrailing, Expected: 3},
		{Desc: "run ending yesterday with require today", Dates: daysAgo(1, 2, 3), Mode: streak.CurrentRequireToday, Expected: 0},
		{Desc: "run including today with require today", Dates: daysAgo(0, 1), Mode: streak.CurrentRequireToday, Expected: 2},
		{Desc: "last check-in two days ago", Dates: daysAgo(2, 3), Mode: streak.CurrentTrailing, Expected: 0},
		{Desc: "gap stops the walk", Dates: daysAgo(0, 1, 3, 4, 5), Mode: streak.CurrentTrailing, Expected: 2},
		{Desc: "future dates ignored", Dates: []streak.Date{today.AddDays(1), today, today.AddDays(-1)}, Mode: streak.CurrentTrailing, Expected: 2},
		{Desc: "duplicates count once", Dates: []streak.Date{today, today, today.AddDays(-1)}, Mode: streak.CurrentTrailing, Expected: 2},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			got, err := streak.CurrentStreak(tc.Dates, today, tc.Mode)
			require.NoError(t, err)
			assert.Equal(t, tc.Expected, got)
		})
	}
}

func TestConsecutiveMissed(t *testing.T) {
	testCases := []struct {
		Desc     string
		Dates    []streak.Date
		Mode     streak.MissedMode
		Expected int
	}{
		{Desc: "new user", Dates: nil, Mode: streak.MissedGrace, Expected: 0},
		{Desc: "checked in today", Dates: daysAgo(0), Mode: streak.MissedGrace, Expected: 0},
		{Desc: "checked in yesterday", Dates: daysAgo(1), Mode: streak.MissedGrace, Expected: 0},
		{Desc: "two days ago", Dates: daysAgo(2), Mode: streak.MissedGrace, Expected: 1},
		{Desc: "five days ago", Dates: daysAgo(5), Mode: streak.MissedGrace, Expected: 4},
		{Desc: "only latest date matters", Dates: daysAgo(30, 20, 3), Mode: streak.MissedGrace, Expected: 2},
		{Desc: "future date counts as checked in", Dates: []streak.Date{today.AddDays(2)}, Mode: streak.MissedGrace, Expected: 0},
		{Desc: "strict yesterday", Dates: daysAgo(1), Mode: streak.MissedStrict, Expected: 0},
		{Desc: "strict two days ago", Dates: daysAgo(2), Mode: streak.MissedStrict, Expected: 2},
		{Desc: "strict five days ago", Dates: daysAgo(5), Mode: streak.MissedStrict, Expected: 5},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			got, err := streak.ConsecutiveMissed(tc.Dates, today, tc.Mode)
			require.NoError(t, err)
			assert.Equal(t, tc.Expected, got)
		})
	}
}

func TestGapBefore(t *testing.T) {
	testCases := []struct {
		Desc     string
		Dates    []streak.Date
		Expected int
	}{
		{Desc: "first check-in", Dates: nil, Expected: 0},
		{Desc: "after yesterday", Dates: daysAgo(1), Expected: 0},
		{Desc: "after three days", Dates: daysAgo(3), Expected: 2},
		{Desc: "today already present", Dates: daysAgo(0, 4), Expected: 3},
		{Desc: "later dates ignored", Dates: []streak.Date{today.AddDays(-2), today.AddDays(3)}, Expected: 1},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			got, err := streak.GapBefore(tc.Dates, today)
			require.NoError(t, err)
			assert.Equal(t, tc.Expected, got)
		})
	}
}

func TestLongestNeverBelowCurrent(t *testing.T) {
	histories := [][]streak.Date{
		daysAgo(0),
		daysAgo(0, 1, 2, 10, 11),
		daysAgo(1, 2, 3, 4),
		daysAgo(0, 1, 2, 3, 4, 5, 9, 10),
		daysAgo(2, 5, 6, 7, 8, 9, 10, 11),
	}
	for _, h := range histories {
		for _, mode := range []streak.CurrentMode{streak.CurrentTrailing, streak.CurrentRequireToday} {
			for offset := 0; offset < 4; offset++ {
				day := today.AddDays(offset)
				cur, err := streak.CurrentStreak(h, day, mode)
				require.NoError(t, err)
				longest, err := streak.LongestStreak(h)
				require.NoError(t, err)
				assert.GreaterOrEqual(t, longest, cur)
			}
		}
	}
}

func TestMonthScenario(t *testing.T) {
	day := func(n int) streak.Date { return streak.MustDate(2025, time.April, n) }
	history := []streak.Date{day(1), day(2), day(3)}
	policy := streak.DefaultPolicy()

	missed, err := streak.ConsecutiveMissed(history, day(5), policy.Missed)
	require.NoError(t, err)
	assert.Equal(t, 1, missed)
	assert.False(t, policy.ShouldNotify(missed))

	strict, err := streak.ConsecutiveMissed(history, day(5), streak.MissedStrict)
	require.NoError(t, err)
	assert.Equal(t, 2, strict)

	// at the end of day 5 the watcher runs on day 6 before the user checks in
	missed, err = streak.ConsecutiveMissed(history, day(6), policy.Missed)
	require.NoError(t, err)
	assert.Equal(t, 2, missed)
	assert.True(t, policy.ShouldNotify(missed))

	gap, err := streak.GapBefore(history, day(6))
	require.NoError(t, err)
	assert.Equal(t, 2, gap)

	history = append(history, day(6))
	summary, err := streak.Summarize(history, day(6), policy)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.ConsecutiveMissed)
	assert.Equal(t, 1, summary.Current)
	assert.Equal(t, 3, summary.Longest)
	assert.Equal(t, 4, summary.TotalDays)
	assert.True(t, summary.CheckedInToday)
	assert.Equal(t, day(6), summary.Last)
}

func TestSummarize(t *testing.T) {
	t.Run("empty history", func(t *testing.T) {
		s, err := streak.Summarize(nil, today, streak.DefaultPolicy())
		require.NoError(t, err)
		assert.Equal(t, streak.Summary{}, s)
	})
	t.Run("not yet checked in today", func(t *testing.T) {
		s, err := streak.Summarize(daysAgo(1, 2), today, streak.DefaultPolicy())
		require.NoError(t, err)
		assert.False(t, s.CheckedInToday)
		assert.Equal(t, 2, s.Current)
		assert.Equal(t, today.AddDays(-1), s.Last)
	})
}

func TestInvalidDates(t *testing.T) {
	t.Run("zero date in history", func(t *testing.T) {
		_, err := streak.LongestStreak([]streak.Date{today, {}})
		assert.ErrorIs(t, err, errorvalues.ErrInvalidDate)
	})
	t.Run("zero today", func(t *testing.T) {
		_, err := streak.CurrentStreak(daysAgo(0), streak.Date{}, streak.CurrentTrailing)
		var dateErr *streak.InvalidDateError
		assert.ErrorAs(t, err, &dateErr)
	})
	t.Run("zero today for missed days", func(t *testing.T) {
		_, err := streak.ConsecutiveMissed(daysAgo(3), streak.Date{}, streak.MissedGrace)
		assert.ErrorIs(t, err, errorvalues.ErrInvalidDate)
	})
}
