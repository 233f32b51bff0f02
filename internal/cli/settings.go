package cli

import (
	"errors"
	"time"

	"github.com/limbo/checkin/internal/notify"
	"github.com/limbo/checkin/internal/repository"
	"github.com/limbo/checkin/internal/scheduler"
	"github.com/limbo/checkin/internal/streak"
	"github.com/limbo/checkin/pkg/config"
	"github.com/limbo/checkin/pkg/logger"
)

// Settings is everything the commands read from the environment.
type Settings struct {
	DB             repository.PGCfg
	MigrationsDir  string
	HTTPAddr       string
	JWTSecret      string
	TokenTTL       time.Duration
	AccessCodeHash string
	RateLimit      int

	Policy     streak.Policy
	Location   *time.Location
	ReminderAt scheduler.TimeOfDay

	Redis scheduler.RedisOptions
	Email notify.EmailConfig
	SMS   notify.SMSConfig

	Log logger.Options
}

func LoadSettings(cfg *config.Config) (*Settings, error) {
	s := &Settings{
		DB: repository.PGCfg{
			Address:  cfg.GetStringOr("POSTGRES_DB_ADDRESS", "localhost:5432"),
			Username: cfg.GetString("POSTGRES_USER"),
			Password: cfg.GetString("POSTGRES_PASSWORD"),
			DB:       cfg.GetString("POSTGRES_DB"),
			SSLMode:  cfg.GetStringOr("POSTGRES_SSLMODE", "disable"),
		},
		MigrationsDir:  cfg.GetStringOr("MIGRATIONS_DIR", "./migrations"),
		HTTPAddr:       cfg.GetStringOr("API_ADDRESS", ":8080"),
		JWTSecret:      cfg.GetString("JWT_SECRET"),
		AccessCodeHash: cfg.GetString("ACCESS_CODE_HASH"),
		Policy:         streak.DefaultPolicy(),
		ReminderAt:     scheduler.DefaultReminderAt,
		Location:       time.Local,
		Redis: scheduler.RedisOptions{
			Addr:     cfg.GetString("REDIS_ADDR"),
			Password: cfg.GetString("REDIS_PASSWORD"),
		},
		Email: notify.EmailConfig{
			From:     cfg.GetString("SMTP_SENDER"),
			FromName: cfg.GetStringOr("SMTP_SENDER_NAME", "Daily check-in"),
			Password: cfg.GetString("SMTP_PASSWORD"),
			Host:     cfg.GetString("SMTP_HOST"),
		},
		SMS: notify.SMSConfig{
			GatewayURL:    cfg.GetString("SMS_GATEWAY_URL"),
			APIKey:        cfg.GetString("SMS_API_KEY"),
			Sender:        cfg.GetString("SMS_SENDER"),
			CountryPrefix: cfg.GetStringOr("SMS_COUNTRY_PREFIX", notify.DefaultCountryPrefix),
		},
		Log: logger.Options{
			Level:      cfg.GetStringOr("LOG_LEVEL", "info"),
			Path:       cfg.GetString("LOG_PATH"),
			MaxSizeMB:  50,
			MaxBackups: 5,
			MaxAgeDays: 30,
			Compress:   true,
		},
	}

	var errs []error
	var err error
	if s.TokenTTL, err = cfg.GetDuration("JWT_TTL", 24*time.Hour); err != nil {
		errs = append(errs, err)
	}
	if s.RateLimit, err = cfg.GetInt("CHECKINS_PER_MINUTE", 30); err != nil {
		errs = append(errs, err)
	}
	if s.Redis.DB, err = cfg.GetInt("REDIS_DB", 0); err != nil {
		errs = append(errs, err)
	}
	if s.Email.Port, err = cfg.GetInt("SMTP_PORT", 0); err != nil {
		errs = append(errs, err)
	}
	if v := cfg.GetString("STREAK_CURRENT_MODE"); v != "" {
		if s.Policy.Current, err = streak.ParseCurrentMode(v); err != nil {
			errs = append(errs, err)
		}
	}
	if v := cfg.GetString("STREAK_MISSED_MODE"); v != "" {
		if s.Policy.Missed, err = streak.ParseMissedMode(v); err != nil {
			errs = append(errs, err)
		}
	}
	if s.Policy.NotifyThreshold, err = cfg.GetInt("NOTIFY_THRESHOLD", streak.DefaultNotifyThreshold); err != nil {
		errs = append(errs, err)
	} else if s.Policy.NotifyThreshold < 1 {
		errs = append(errs, errors.New("NOTIFY_THRESHOLD must be positive"))
	}
	if v := cfg.GetString("REMINDER_AT"); v != "" {
		if s.ReminderAt, err = scheduler.ParseTimeOfDay(v); err != nil {
			errs = append(errs, err)
		}
	}
	if v := cfg.GetString("TZ_LOCATION"); v != "" {
		if s.Location, err = time.LoadLocation(v); err != nil {
			errs = append(errs, errors.New("loading TZ_LOCATION error: "+err.Error()))
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return s, nil
}
