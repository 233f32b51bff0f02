package scheduler

import (
	"context"
	"errors"
	"time"

	"github.com/limbo/checkin/internal/notify"
	"github.com/limbo/checkin/internal/service"
	"github.com/limbo/checkin/internal/streak"
	"github.com/limbo/checkin/pkg/entity"
	"go.uber.org/zap"
)

type SweepReport struct {
	Day      streak.Date `json:"day"`
	Users    int         `json:"users"`
	Due      int         `json:"due"`
	Notified int         `json:"notified"`
	// Skipped counts due users without contacts or already reminded today
	Skipped int `json:"skipped"`
	Failed  int `json:"failed"`
}

type Options struct {
	UserService    service.UserServiceI
	CheckInService service.CheckInServiceI
	Notifiers      []notify.Notifier
	// Log de-duplicates reminders, in-memory when nil
	Log    ReminderLog
	Clock  streak.Clock
	At     TimeOfDay
	Logger *zap.Logger
}

// Watcher sends reminders to users who stopped checking in.
type Watcher struct {
	users     service.UserServiceI
	checkIns  service.CheckInServiceI
	notifiers map[entity.ContactKind]notify.Notifier
	log       ReminderLog
	clock     streak.Clock
	at        TimeOfDay
	logger    *zap.Logger
}

func NewWatcher(opts Options) *Watcher {
	if opts.UserService == nil || opts.CheckInService == nil {
		panic("on watcher provided nil services")
	}
	w := &Watcher{
		users:     opts.UserService,
		checkIns:  opts.CheckInService,
		notifiers: notify.ByChannel(opts.Notifiers...),
		log:       opts.Log,
		clock:     opts.Clock,
		at:        opts.At,
		logger:    opts.Logger,
	}
	if w.log == nil {
		w.log = NewMemoryReminderLog()
	}
	if w.clock == nil {
		w.clock = streak.SystemClock{}
	}
	if w.logger == nil {
		w.logger = zap.NewNop()
	}
	return w
}

// Sweep evaluates every user once for day. A failure for one user is logged and
// counted, the sweep goes on with the next one.
func (w *Watcher) Sweep(ctx context.Context, day streak.Date) (SweepReport, error) {
	report := SweepReport{Day: day}
	listCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	users, err := w.users.ListUsers(listCtx)
	cancel()
	if err != nil {
		return report, errors.New("listing users error: " + err.Error())
	}
	report.Users = len(users)
	for _, user := range users {
		if err = ctx.Err(); err != nil {
			return report, err
		}
		logger := w.logger.With(zap.String("uid", user.ID.String()), zap.String("name", user.Name))
		verdict, err := w.checkIns.CheckReminder(ctx, user.ID, day)
		if err != nil {
			logger.Error("reminder check failed", zap.Error(err))
			report.Failed++
			continue
		}
		logger.Debug("user checked", zap.Int("missed", verdict.Missed), zap.Bool("notify", verdict.Notify))
		if !verdict.Notify {
			continue
		}
		report.Due++
		switch w.remind(ctx, logger, user, day, verdict.Missed) {
		case remindSent:
			report.Notified++
		case remindSkipped:
			report.Skipped++
		case remindFailed:
			report.Failed++
		}
	}
	return report, nil
}

type remindResult int

const (
	remindSent remindResult = iota
	remindSkipped
	remindFailed
)

func (w *Watcher) remind(ctx context.Context, logger *zap.Logger, user *entity.User, day streak.Date, missed int) remindResult {
	contacts := user.Contacts()
	if len(contacts) == 0 {
		logger.Warn("reminder due but user has no contacts", zap.Int("missed", missed))
		return remindSkipped
	}
	first, err := w.log.MarkSent(ctx, user.ID, day)
	if err != nil {
		logger.Warn("reminder log unavailable, sending anyway", zap.Error(err))
	} else if !first {
		logger.Info("reminder already sent today")
		return remindSkipped
	}

	msg := notify.ReminderMessage(user, missed)
	sent := 0
	for _, contact := range contacts {
		n, ok := w.notifiers[contact.Kind]
		if !ok {
			logger.Info("no notifier configured", zap.String("channel", string(contact.Kind)))
			continue
		}
		if err = n.Send(ctx, contact, msg); err != nil {
			logger.Error("reminder not delivered", zap.String("channel", string(contact.Kind)), zap.Error(err))
			continue
		}
		logger.Info("reminder sent", zap.String("channel", string(contact.Kind)), zap.Int("missed", missed))
		sent++
	}
	if sent == 0 {
		return remindFailed
	}
	return remindSent
}

// Run sweeps once a day at the configured time until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	for {
		now := w.clock.Now()
		next := w.at.Next(now)
		w.logger.Info("next reminder sweep scheduled", zap.Time("at", next))
		timer := time.NewTimer(next.Sub(now))
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case <-timer.C:
		}
		report, err := w.Sweep(ctx, w.clock.Today())
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			w.logger.Error("reminder sweep failed", zap.Error(err))
			continue
		}
		w.logger.Info("reminder sweep finished",
			zap.String("day", report.Day.String()),
			zap.Int("users", report.Users),
			zap.Int("due", report.Due),
			zap.Int("notified", report.Notified),
			zap.Int("skipped", report.Skipped),
			zap.Int("failed", report.Failed),
		)
	}
}
