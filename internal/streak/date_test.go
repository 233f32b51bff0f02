package streak_test

import (
	"testing"
	"time"

	errorvalues "github.com/limbo/checkin/internal/error_values"
	"github.com/limbo/checkin/internal/streak"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDate(t *testing.T) {
	testCases := []struct {
		Desc  string
		Year  int
		Month time.Month
		Day   int
		Valid bool
	}{
		{Desc: "regular", Year: 2025, Month: time.June, Day: 15, Valid: true},
		{Desc: "leap day", Year: 2024, Month: time.February, Day: 29, Valid: true},
		{Desc: "not a leap year", Year: 2025, Month: time.February, Day: 29, Valid: false},
		{Desc: "february 30", Year: 2024, Month: time.February, Day: 30, Valid: false},
		{Desc: "month 13", Year: 2024, Month: 13, Day: 1, Valid: false},
		{Desc: "day 0", Year: 2024, Month: time.March, Day: 0, Valid: false},
		{Desc: "year 0", Year: 0, Month: time.March, Day: 1, Valid: false},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			d, err := streak.NewDate(tc.Year, tc.Month, tc.Day)
			if tc.Valid {
				require.NoError(t, err)
				assert.Equal(t, tc.Day, d.Time().Day())
				return
			}
			assert.ErrorIs(t, err, errorvalues.ErrInvalidDate)
			assert.True(t, d.IsZero())
		})
	}
}

func TestParseDate(t *testing.T) {
	d, err := streak.ParseDate("2025-03-01")
	require.NoError(t, err)
	assert.Equal(t, streak.MustDate(2025, time.March, 1), d)
	assert.Equal(t, "2025-03-01", d.String())

	for _, s := range []string{"2025-02-30", "2025-13-01", "yesterday", "2025/03/01", ""} {
		_, err := streak.ParseDate(s)
		assert.ErrorIs(t, err, errorvalues.ErrInvalidDate, s)
	}
}

func TestDateArithmetic(t *testing.T) {
	d := streak.MustDate(2024, time.February, 28)
	assert.Equal(t, streak.MustDate(2024, time.February, 29), d.AddDays(1))
	assert.Equal(t, streak.MustDate(2024, time.March, 1), d.AddDays(2))
	assert.Equal(t, 2, d.DaysUntil(d.AddDays(2)))
	assert.Equal(t, -366, streak.MustDate(2025, time.January, 1).DaysUntil(streak.MustDate(2024, time.January, 1)))
	assert.True(t, d.Before(d.AddDays(1)))
	assert.True(t, d.AddDays(1).After(d))
}

func TestDateOfKeepsLocalDay(t *testing.T) {
	loc := time.FixedZone("UTC+8", 8*60*60)
	// 23:30 UTC is already the next morning at UTC+8
	at := time.Date(2025, time.March, 9, 23, 30, 0, 0, time.UTC).In(loc)
	assert.Equal(t, streak.MustDate(2025, time.March, 10), streak.DateOf(at))
}

func TestDaysUntilAcrossDST(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Skip("tzdata not available")
	}
	before := streak.DateOf(time.Date(2025, time.March, 29, 22, 0, 0, 0, loc))
	after := streak.DateOf(time.Date(2025, time.March, 31, 1, 0, 0, 0, loc))
	assert.Equal(t, 2, before.DaysUntil(after))
}

func TestFromTimes(t *testing.T) {
	dates, err := streak.FromTimes([]time.Time{
		time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.March, 2, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Len(t, dates, 2)

	_, err = streak.FromTimes([]time.Time{{}})
	assert.ErrorIs(t, err, errorvalues.ErrInvalidDate)
}

func TestClocks(t *testing.T) {
	d := streak.MustDate(2025, time.July, 4)
	c := streak.FixedDay(d)
	assert.Equal(t, d, c.Today())

	loc := time.FixedZone("test", -5*60*60)
	sys := streak.SystemClock{Location: loc}
	assert.Equal(t, loc, sys.Now().Location())
	assert.False(t, sys.Today().IsZero())
}

func TestDateText(t *testing.T) {
	d := streak.MustDate(2024, time.February, 29)
	raw, err := d.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", string(raw))

	var back streak.Date
	require.NoError(t, back.UnmarshalText(raw))
	assert.True(t, d.Equal(back))
	assert.ErrorIs(t, back.UnmarshalText([]byte("2023-02-29")), errorvalues.ErrInvalidDate)
}
