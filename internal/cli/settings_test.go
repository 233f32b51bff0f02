package cli

import (
	"testing"
	"time"

	"github.com/limbo/checkin/internal/scheduler"
	"github.com/limbo/checkin/internal/streak"
	"github.com/limbo/checkin/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettingsDefaults(t *testing.T) {
	for _, key := range []string{"STREAK_CURRENT_MODE", "STREAK_MISSED_MODE", "REMINDER_AT", "NOTIFY_THRESHOLD", "TZ_LOCATION", "SMTP_PORT"} {
		t.Setenv(key, "")
	}
	cfg, err := config.Load("")
	require.NoError(t, err)

	s, err := LoadSettings(cfg)
	require.NoError(t, err)
	assert.Equal(t, streak.DefaultPolicy(), s.Policy)
	assert.Equal(t, scheduler.DefaultReminderAt, s.ReminderAt)
	assert.Equal(t, 24*time.Hour, s.TokenTTL)
	assert.Equal(t, "+86", s.SMS.CountryPrefix)
}

func TestLoadSettingsOverrides(t *testing.T) {
	t.Setenv("STREAK_CURRENT_MODE", "require_today")
	t.Setenv("STREAK_MISSED_MODE", "strict")
	t.Setenv("REMINDER_AT", "07:30")
	t.Setenv("NOTIFY_THRESHOLD", "3")
	t.Setenv("POSTGRES_DB_ADDRESS", "db:5432")
	t.Setenv("TZ_LOCATION", "UTC")
	cfg, err := config.Load("")
	require.NoError(t, err)

	s, err := LoadSettings(cfg)
	require.NoError(t, err)
	assert.Equal(t, streak.Policy{
		Current:         streak.CurrentRequireToday,
		Missed:          streak.MissedStrict,
		NotifyThreshold: 3,
	}, s.Policy)
	assert.Equal(t, scheduler.TimeOfDay{Hour: 7, Minute: 30}, s.ReminderAt)
	assert.Equal(t, "db:5432", s.DB.Address)
	assert.Equal(t, time.UTC, s.Location)
}

func TestLoadSettingsErrors(t *testing.T) {
	t.Setenv("STREAK_MISSED_MODE", "sometimes")
	t.Setenv("REMINDER_AT", "noon")
	t.Setenv("NOTIFY_THRESHOLD", "0")
	cfg, err := config.Load("")
	require.NoError(t, err)

	_, err = LoadSettings(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NOTIFY_THRESHOLD")
	assert.Contains(t, err.Error(), "time of day")
}
