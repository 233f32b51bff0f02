package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/checkin/internal/error_values"
	"github.com/limbo/checkin/internal/scheduler"
	"github.com/limbo/checkin/internal/service"
	"github.com/limbo/checkin/internal/service/mocks"
	"github.com/limbo/checkin/internal/streak"
	"github.com/limbo/checkin/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	today = streak.MustDate(2025, time.March, 6)
	alice = &entity.User{ID: uuid.New(), Name: "alice", Email: "alice@qq.com"}
)

type testApp struct {
	users    *mocks.MockUserServiceI
	checkIns *mocks.MockCheckInServiceI
}

// run executes the root command with services replaced by mocks.
func (ta *testApp) run(t *testing.T, args ...string) (string, error) {
	opts := &RootOptions{
		newApp: func(ctx context.Context, opts *RootOptions) (*App, error) {
			clock := streak.Clock(streak.FixedDay(today))
			if opts.Day != "" {
				d, err := streak.ParseDate(opts.Day)
				if err != nil {
					return nil, err
				}
				clock = streak.FixedDay(d)
			}
			return &App{
				Settings: &Settings{ReminderAt: scheduler.DefaultReminderAt},
				Logger:   zap.NewNop(),
				Clock:    clock,
				Users:    ta.users,
				CheckIns: ta.checkIns,
			}, nil
		},
	}
	buf := &bytes.Buffer{}
	cmd := newRootCommand(opts)
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--env-file", ""}, args...))
	err := cmd.Execute()
	return buf.String(), err
}

func newTestApp(t *testing.T) *testApp {
	ctrl := gomock.NewController(t)
	return &testApp{
		users:    mocks.NewMockUserServiceI(ctrl),
		checkIns: mocks.NewMockCheckInServiceI(ctrl),
	}
}

func TestCheckInCommand(t *testing.T) {
	ta := newTestApp(t)
	ta.users.EXPECT().GetByName(gomock.Any(), "alice").Return(alice, nil).Times(2)
	ta.checkIns.EXPECT().RecordCheckIn(gomock.Any(), alice.ID, today).Return(&entity.RecordOutcome{
		Status:        entity.StatusRecorded,
		Date:          today.Time(),
		CurrentStreak: 4,
		LongestStreak: 7,
	}, nil)
	ta.checkIns.EXPECT().RecordCheckIn(gomock.Any(), alice.ID, today).Return(&entity.RecordOutcome{
		Status:        entity.StatusAlreadyRecorded,
		Date:          today.Time(),
		CurrentStreak: 4,
		LongestStreak: 7,
	}, nil)

	out, err := ta.run(t, "in", "--name", "alice")
	require.NoError(t, err)
	assert.Contains(t, out, "checked in for 2025-03-06")
	assert.Contains(t, out, "current streak: 4")

	out, err = ta.run(t, "in", "--name", "alice")
	require.NoError(t, err)
	assert.Contains(t, out, "already checked in for 2025-03-06")
}

func TestCheckInCommandErrors(t *testing.T) {
	ta := newTestApp(t)

	_, err := ta.run(t, "in")
	assert.ErrorIs(t, err, errNoName)

	ta.users.EXPECT().GetByName(gomock.Any(), "ghost").Return(nil, errorvalues.ErrUserNotFound)
	_, err = ta.run(t, "in", "--name", "ghost")
	assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)

	_, err = ta.run(t, "in", "--name", "alice", "--format", "yaml")
	assert.Error(t, err)
}

func TestCheckInCommandDayOverride(t *testing.T) {
	ta := newTestApp(t)
	day := streak.MustDate(2025, time.January, 1)
	ta.users.EXPECT().GetByName(gomock.Any(), "alice").Return(alice, nil)
	ta.checkIns.EXPECT().RecordCheckIn(gomock.Any(), alice.ID, day).
		Return(&entity.RecordOutcome{Status: entity.StatusRecorded, Date: day.Time()}, nil)

	out, err := ta.run(t, "in", "--name", "alice", "--day", "2025-01-01")
	require.NoError(t, err)
	assert.Contains(t, out, "2025-01-01")
}

func TestStatusCommandJSON(t *testing.T) {
	ta := newTestApp(t)
	last := today.AddDays(-3).Time()
	ta.users.EXPECT().GetByName(gomock.Any(), "alice").Return(alice, nil)
	ta.checkIns.EXPECT().GetStats(gomock.Any(), alice.ID, today).Return(&entity.CheckInStats{
		UserID:            alice.ID,
		TotalDays:         5,
		LongestStreak:     5,
		ConsecutiveMissed: 2,
		LastCheckIn:       &last,
		NeedsReminder:     true,
	}, nil)

	out, err := ta.run(t, "status", "--name", "alice", "--format", "json")
	require.NoError(t, err)
	var stats entity.CheckInStats
	require.NoError(t, sonic.ConfigDefault.Unmarshal([]byte(out), &stats))
	assert.Equal(t, 2, stats.ConsecutiveMissed)
	assert.True(t, stats.NeedsReminder)
}

func TestHistoryCommand(t *testing.T) {
	ta := newTestApp(t)
	ta.users.EXPECT().GetByName(gomock.Any(), "alice").Return(alice, nil)
	ta.checkIns.EXPECT().GetHistory(gomock.Any(), alice.ID, 2).Return([]entity.CheckInRecord{
		{UserID: alice.ID, CheckDate: today.Time(), ConsecutiveMissed: 2},
		{UserID: alice.ID, CheckDate: today.AddDays(-3).Time()},
	}, nil)

	out, err := ta.run(t, "history", "--name", "alice", "--limit", "2")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-06 (after 2 missed)\n2025-03-03\n", out)
}

func TestUserSaveCommand(t *testing.T) {
	ta := newTestApp(t)
	ta.users.EXPECT().Save(gomock.Any(), &service.SaveUserRequest{Name: "alice", Email: "alice@qq.com"}).Return(alice, nil)

	out, err := ta.run(t, "user", "save", "--name", "alice", "--email", "alice@qq.com")
	require.NoError(t, err)
	assert.Contains(t, out, "saved user alice")

	_, err = ta.run(t, "user", "save", "--email", "alice@qq.com")
	assert.Error(t, err)
}

func TestRemindCommand(t *testing.T) {
	ta := newTestApp(t)
	ta.users.EXPECT().ListUsers(gomock.Any()).Return([]*entity.User{alice}, nil)
	ta.checkIns.EXPECT().CheckReminder(gomock.Any(), alice.ID, today).
		Return(entity.ReminderVerdict{Missed: 1}, nil)

	out, err := ta.run(t, "remind")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-06: 1 users, 0 due, 0 notified, 0 skipped, 0 failed\n", out)
}

func TestRemindCommandListFailure(t *testing.T) {
	ta := newTestApp(t)
	ta.users.EXPECT().ListUsers(gomock.Any()).Return(nil, errors.New("db down"))

	_, err := ta.run(t, "remind")
	assert.Error(t, err)
}

func TestHashCodeCommand(t *testing.T) {
	ta := newTestApp(t)
	out, err := ta.run(t, "hash-code", "let-me-in")
	require.NoError(t, err)
	hash := out[:len(out)-1]
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("let-me-in")))
	assert.NoError(t, service.NewAuthService(hash).Authorize("let-me-in"))
}
