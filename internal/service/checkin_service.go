package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/checkin/internal/error_values"
	"github.com/limbo/checkin/internal/repository"
	"github.com/limbo/checkin/internal/streak"
	"github.com/limbo/checkin/pkg/entity"
)

const (
	DefaultHistoryLimit = 30
	MaxHistoryLimit     = 365
)

type CheckInService struct {
	usersRepo  repository.UsersRepositoryI
	checksRepo repository.CheckInsRepositoryI
	policy     streak.Policy
	locks      *userLocks
}

func NewCheckInService(usersRepo repository.UsersRepositoryI, checksRepo repository.CheckInsRepositoryI, policy streak.Policy) *CheckInService {
	if usersRepo == nil || checksRepo == nil {
		panic("on check-in service provided nil repos")
	}
	return &CheckInService{
		usersRepo:  usersRepo,
		checksRepo: checksRepo,
		policy:     policy,
		locks:      newUserLocks(),
	}
}

func (serv *CheckInService) Policy() streak.Policy {
	return serv.policy
}

// RecordCheckIn stores today's check-in annotated with the days missed right
// before it. The insert itself is conditional in the store, the per-user lock
// only keeps the annotation consistent with the history it was computed from.
func (serv *CheckInService) RecordCheckIn(ctx context.Context, uid uuid.UUID, today streak.Date) (*entity.RecordOutcome, error) {
	if today.IsZero() {
		return nil, &streak.InvalidDateError{Reason: "zero date"}
	}
	if err := serv.ensureUser(ctx, uid); err != nil {
		return nil, err
	}

	unlock := serv.locks.lock(uid)
	defer unlock()

	dates, err := serv.loadDates(ctx, uid)
	if err != nil {
		return nil, err
	}
	gap, err := streak.GapBefore(dates, today)
	if err != nil {
		return nil, err
	}
	res, err := serv.checksRepo.InsertIfAbsent(ctx, uid, today.Time(), gap)
	if err != nil {
		return nil, repoError("inserting check-in", err)
	}

	summary, err := streak.Summarize(append(dates, today), today, serv.policy)
	if err != nil {
		return nil, err
	}
	outcome := &entity.RecordOutcome{
		Status:        entity.StatusRecorded,
		Date:          today.Time(),
		CurrentStreak: summary.Current,
		LongestStreak: summary.Longest,
	}
	if res == repository.AlreadyExists {
		outcome.Status = entity.StatusAlreadyRecorded
		return outcome, nil
	}
	outcome.ConsecutiveMissed = gap
	return outcome, nil
}

func (serv *CheckInService) GetCurrentStreak(ctx context.Context, uid uuid.UUID, today streak.Date) (int, error) {
	dates, err := serv.userDates(ctx, uid)
	if err != nil {
		return 0, err
	}
	return streak.CurrentStreak(dates, today, serv.policy.Current)
}

func (serv *CheckInService) GetLongestStreak(ctx context.Context, uid uuid.UUID) (int, error) {
	dates, err := serv.userDates(ctx, uid)
	if err != nil {
		return 0, err
	}
	return streak.LongestStreak(dates)
}

func (serv *CheckInService) GetConsecutiveMissed(ctx context.Context, uid uuid.UUID, today streak.Date) (int, error) {
	if err := serv.ensureUser(ctx, uid); err != nil {
		return 0, err
	}
	latest, err := serv.checksRepo.LatestDate(ctx, uid)
	if err != nil {
		return 0, repoError("getting last check-in", err)
	}
	if latest == nil {
		return streak.ConsecutiveMissed(nil, today, serv.policy.Missed)
	}
	return streak.ConsecutiveMissed([]streak.Date{streak.DateOf(*latest)}, today, serv.policy.Missed)
}

func (serv *CheckInService) CheckReminder(ctx context.Context, uid uuid.UUID, today streak.Date) (entity.ReminderVerdict, error) {
	missed, err := serv.GetConsecutiveMissed(ctx, uid, today)
	if err != nil {
		return entity.ReminderVerdict{}, err
	}
	return entity.ReminderVerdict{
		Missed: missed,
		Notify: serv.policy.ShouldNotify(missed),
	}, nil
}

func (serv *CheckInService) EvaluateReminder(ctx context.Context, uid uuid.UUID, today streak.Date) (bool, error) {
	verdict, err := serv.CheckReminder(ctx, uid, today)
	if err != nil {
		return false, err
	}
	return verdict.Notify, nil
}

func (serv *CheckInService) GetStats(ctx context.Context, uid uuid.UUID, today streak.Date) (*entity.CheckInStats, error) {
	dates, err := serv.userDates(ctx, uid)
	if err != nil {
		return nil, err
	}
	summary, err := streak.Summarize(dates, today, serv.policy)
	if err != nil {
		return nil, err
	}
	stats := &entity.CheckInStats{
		UserID:            uid,
		TotalDays:         summary.TotalDays,
		CurrentStreak:     summary.Current,
		LongestStreak:     summary.Longest,
		ConsecutiveMissed: summary.ConsecutiveMissed,
		CheckedInToday:    summary.CheckedInToday,
		NeedsReminder:     serv.policy.ShouldNotify(summary.ConsecutiveMissed),
	}
	if !summary.Last.IsZero() {
		last := summary.Last.Time()
		stats.LastCheckIn = &last
	}
	return stats, nil
}

func (serv *CheckInService) GetHistory(ctx context.Context, uid uuid.UUID, limit int) ([]entity.CheckInRecord, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}
	if err := serv.ensureUser(ctx, uid); err != nil {
		return nil, err
	}
	records, err := serv.checksRepo.History(ctx, uid, limit)
	if err != nil {
		return nil, repoError("getting check-in history", err)
	}
	return records, nil
}

func (serv *CheckInService) ensureUser(ctx context.Context, uid uuid.UUID) error {
	_, err := serv.usersRepo.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return errorvalues.ErrUnknownUser
		}
		return repoError("searching user", err)
	}
	return nil
}

func (serv *CheckInService) userDates(ctx context.Context, uid uuid.UUID) ([]streak.Date, error) {
	if err := serv.ensureUser(ctx, uid); err != nil {
		return nil, err
	}
	return serv.loadDates(ctx, uid)
}

func (serv *CheckInService) loadDates(ctx context.Context, uid uuid.UUID) ([]streak.Date, error) {
	times, err := serv.checksRepo.ListDates(ctx, uid)
	if err != nil {
		return nil, repoError("listing check-in dates", err)
	}
	return streak.FromTimes(times)
}
