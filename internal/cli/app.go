package cli

import (
	"context"
	"errors"

	"github.com/limbo/checkin/internal/notify"
	"github.com/limbo/checkin/internal/repository"
	"github.com/limbo/checkin/internal/scheduler"
	"github.com/limbo/checkin/internal/service"
	"github.com/limbo/checkin/internal/streak"
	"github.com/limbo/checkin/pkg/cleanup"
	"github.com/limbo/checkin/pkg/config"
	"github.com/limbo/checkin/pkg/logger"
	"go.uber.org/zap"
)

// App holds the wired services a command works with.
type App struct {
	Settings *Settings
	Logger   *zap.Logger
	Clock    streak.Clock

	Users    service.UserServiceI
	CheckIns service.CheckInServiceI
	Auth     service.AuthServiceI

	Notifiers   []notify.Notifier
	ReminderLog scheduler.ReminderLog
}

// Close runs the registered cleanup jobs and flushes the logger.
func (a *App) Close() {
	cleanup.CleanUp(a.Logger)
	_ = a.Logger.Sync()
}

func (a *App) Watcher() *scheduler.Watcher {
	return scheduler.NewWatcher(scheduler.Options{
		UserService:    a.Users,
		CheckInService: a.CheckIns,
		Notifiers:      a.Notifiers,
		Log:            a.ReminderLog,
		Clock:          a.Clock,
		At:             a.Settings.ReminderAt,
		Logger:         a.Logger.Named("reminders"),
	})
}

// loadSettings reads the env file from opts and the process environment.
func loadSettings(opts *RootOptions) (*Settings, error) {
	cfg, err := config.Load(opts.EnvFile)
	if err != nil {
		return nil, err
	}
	return LoadSettings(cfg)
}

// NewApp connects to postgres and builds every service. Notifiers and the
// redis reminder log are optional and only built when configured.
func NewApp(ctx context.Context, opts *RootOptions) (*App, error) {
	settings, err := loadSettings(opts)
	if err != nil {
		return nil, err
	}
	log, err := logger.New(settings.Log)
	if err != nil {
		return nil, err
	}
	service.InitValidator()

	pool, err := repository.Connect(ctx, &settings.DB)
	if err != nil {
		return nil, err
	}
	usersRepo := repository.NewUsersRepoWithConn(pool)
	checksRepo := repository.NewCheckInsRepoWithConn(pool)

	app := &App{
		Settings: settings,
		Logger:   log,
		Clock:    streak.SystemClock{Location: settings.Location},
		Users:    service.NewUserService(usersRepo),
		CheckIns: service.NewCheckInService(usersRepo, checksRepo, settings.Policy),
		Auth:     service.NewAuthService(settings.AccessCodeHash),
	}
	if opts.Day != "" {
		day, err := streak.ParseDate(opts.Day)
		if err != nil {
			app.Close()
			return nil, err
		}
		app.Clock = streak.FixedDay(day)
	}

	if settings.Email.From != "" {
		email, err := notify.NewEmailNotifier(settings.Email)
		if err != nil {
			app.Close()
			return nil, err
		}
		app.Notifiers = append(app.Notifiers, email)
	} else {
		log.Warn("SMTP_SENDER is empty, email reminders are disabled")
	}
	if settings.SMS.GatewayURL != "" {
		sms, err := notify.NewSMSNotifier(settings.SMS)
		if err != nil {
			app.Close()
			return nil, err
		}
		app.Notifiers = append(app.Notifiers, sms)
	}

	if settings.Redis.Addr != "" {
		rdb, err := scheduler.NewRedisClient(ctx, settings.Redis)
		if err != nil {
			log.Warn("redis unavailable at startup", zap.Error(err))
		}
		cleanup.Register(&cleanup.Job{
			Name: "closing redis client",
			F:    rdb.Close,
		})
		app.ReminderLog = scheduler.NewRedisReminderLog(rdb)
	}
	return app, nil
}

var errNoName = errors.New("--name is required")
