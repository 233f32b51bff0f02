package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/checkin/internal/streak"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	got, err := ParseTimeOfDay("01:00")
	require.NoError(t, err)
	assert.Equal(t, DefaultReminderAt, got)
	assert.Equal(t, "01:00", got.String())

	got, err = ParseTimeOfDay("23:45")
	require.NoError(t, err)
	assert.Equal(t, TimeOfDay{Hour: 23, Minute: 45}, got)

	for _, bad := range []string{"", "25:00", "1am", "12:60"} {
		_, err = ParseTimeOfDay(bad)
		assert.Error(t, err, bad)
	}
}

func TestTimeOfDayNext(t *testing.T) {
	at := TimeOfDay{Hour: 1}
	testCases := []struct {
		Desc string
		Now  time.Time
		Want time.Time
	}{
		{
			Desc: "later today",
			Now:  time.Date(2025, time.March, 6, 0, 30, 0, 0, time.UTC),
			Want: time.Date(2025, time.March, 6, 1, 0, 0, 0, time.UTC),
		},
		{
			Desc: "exactly at",
			Now:  time.Date(2025, time.March, 6, 1, 0, 0, 0, time.UTC),
			Want: time.Date(2025, time.March, 7, 1, 0, 0, 0, time.UTC),
		},
		{
			Desc: "month end",
			Now:  time.Date(2025, time.February, 28, 13, 0, 0, 0, time.UTC),
			Want: time.Date(2025, time.March, 1, 1, 0, 0, 0, time.UTC),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			assert.True(t, tc.Want.Equal(at.Next(tc.Now)))
		})
	}
}

type fakeSetNX struct {
	keys map[string]bool
	err  error
	ttl  time.Duration
}

func (f *fakeSetNX) SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd {
	f.ttl = expiration
	if f.err != nil {
		return redis.NewBoolResult(false, f.err)
	}
	if f.keys[key] {
		return redis.NewBoolResult(false, nil)
	}
	f.keys[key] = true
	return redis.NewBoolResult(true, nil)
}

func TestRedisReminderLog(t *testing.T) {
	store := &fakeSetNX{keys: map[string]bool{}}
	l := &RedisReminderLog{rdb: store, ttl: ReminderTTL}
	uid := uuid.New()
	day := streak.MustDate(2025, time.March, 6)

	first, err := l.MarkSent(context.Background(), uid, day)
	require.NoError(t, err)
	assert.True(t, first)
	again, err := l.MarkSent(context.Background(), uid, day)
	require.NoError(t, err)
	assert.False(t, again)
	assert.Equal(t, ReminderTTL, store.ttl)
	assert.True(t, store.keys["checkin:reminded:"+uid.String()+":2025-03-06"])

	store.err = errors.New("connection refused")
	_, err = l.MarkSent(context.Background(), uid, day.AddDays(1))
	assert.Error(t, err)
}

func TestMemoryReminderLogExpires(t *testing.T) {
	l := NewMemoryReminderLog()
	now := time.Date(2025, time.March, 6, 1, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }
	uid := uuid.New()
	day := streak.MustDate(2025, time.March, 6)

	first, err := l.MarkSent(context.Background(), uid, day)
	require.NoError(t, err)
	assert.True(t, first)
	again, err := l.MarkSent(context.Background(), uid, day)
	require.NoError(t, err)
	assert.False(t, again)

	now = now.Add(ReminderTTL + time.Minute)
	first, err = l.MarkSent(context.Background(), uid, day)
	require.NoError(t, err)
	assert.True(t, first)
}
