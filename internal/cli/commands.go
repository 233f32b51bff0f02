package cli

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/limbo/checkin/internal/api"
	"github.com/limbo/checkin/internal/repository"
	"github.com/limbo/checkin/internal/service"
	"github.com/limbo/checkin/pkg/entity"
	jwtservice "github.com/limbo/checkin/pkg/jwt_service"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCommand(opts *RootOptions) *cobra.Command {
	var noReminders bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the daily reminder sweep",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			app, err := opts.newApp(ctx, opts)
			if err != nil {
				return err
			}
			defer app.Close()
			if app.Settings.JWTSecret == "" {
				return errors.New("JWT_SECRET is empty")
			}

			srv := api.New(&api.ServicesList{
				UserService:       app.Users,
				CheckInService:    app.CheckIns,
				AuthService:       app.Auth,
				JWTService:        jwtservice.New(app.Settings.JWTSecret, app.Settings.TokenTTL),
				Clock:             app.Clock,
				Logger:            app.Logger.Named("api"),
				CheckInsPerMinute: app.Settings.RateLimit,
			})
			watcherDone := make(chan error, 1)
			if noReminders {
				close(watcherDone)
			} else {
				go func() {
					watcherDone <- app.Watcher().Run(ctx)
				}()
			}
			err = srv.Run(ctx, app.Settings.HTTPAddr)
			stop()
			if werr := <-watcherDone; werr != nil {
				app.Logger.Error("reminder watcher stopped with error", zap.Error(werr))
			}
			return err
		},
	}
	cmd.Flags().BoolVar(&noReminders, "no-reminders", false, "don't run the daily reminder sweep")
	return cmd
}

func newMigrateCommand(opts *RootOptions) *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings(opts)
			if err != nil {
				return err
			}
			if dir == "" {
				dir = settings.MigrationsDir
			}
			if err = repository.Migrate(&settings.DB, dir); err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), "migrations applied from "+dir)
			return err
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "migrations directory (MIGRATIONS_DIR by default)")
	return cmd
}

func newUserCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage users",
	}
	cmd.AddCommand(newUserSaveCommand(opts))
	cmd.AddCommand(newUserListCommand(opts))
	return cmd
}

func newUserSaveCommand(opts *RootOptions) *cobra.Command {
	req := &service.SaveUserRequest{}
	cmd := &cobra.Command{
		Use:   "save",
		Short: "Create a user or update the contacts of an existing one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.app(cmd)
			if err != nil {
				return err
			}
			defer app.Close()
			user, err := app.Users.Save(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), opts, user,
				"saved user "+user.Name+" ("+user.ID.String()+")")
		},
	}
	cmd.Flags().StringVar(&req.Name, "name", "", "user name")
	cmd.Flags().StringVar(&req.Email, "email", "", "reminder email")
	cmd.Flags().StringVar(&req.Phone, "phone", "", "reminder phone number")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newUserListCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.app(cmd)
			if err != nil {
				return err
			}
			defer app.Close()
			users, err := app.Users.ListUsers(cmd.Context())
			if err != nil {
				return err
			}
			lines := make([]string, 0, len(users))
			for _, u := range users {
				lines = append(lines, u.Name+"\t"+u.Email+"\t"+u.Phone)
			}
			return printResult(cmd.OutOrStdout(), opts, users, lines...)
		},
	}
}

func newCheckInCommand(opts *RootOptions) *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "in",
		Short: "Check in for today",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.app(cmd)
			if err != nil {
				return err
			}
			defer app.Close()
			user, err := userByName(cmd.Context(), app, name)
			if err != nil {
				return err
			}
			today := app.Clock.Today()
			outcome, err := app.CheckIns.RecordCheckIn(cmd.Context(), user.ID, today)
			if err != nil {
				return err
			}
			head := "checked in for " + today.String()
			if !outcome.Recorded() {
				head = "already checked in for " + today.String()
			}
			return printResult(cmd.OutOrStdout(), opts, outcome,
				head,
				"current streak: "+strconv.Itoa(outcome.CurrentStreak),
				"longest streak: "+strconv.Itoa(outcome.LongestStreak),
			)
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "user name")
	return cmd
}

func newStatusCommand(opts *RootOptions) *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show streaks and missed days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.app(cmd)
			if err != nil {
				return err
			}
			defer app.Close()
			user, err := userByName(cmd.Context(), app, name)
			if err != nil {
				return err
			}
			stats, err := app.CheckIns.GetStats(cmd.Context(), user.ID, app.Clock.Today())
			if err != nil {
				return err
			}
			last := "never"
			if stats.LastCheckIn != nil {
				last = stats.LastCheckIn.Format("2006-01-02")
			}
			return printResult(cmd.OutOrStdout(), opts, stats,
				"user: "+user.Name,
				"checked in today: "+strconv.FormatBool(stats.CheckedInToday),
				"current streak: "+strconv.Itoa(stats.CurrentStreak),
				"longest streak: "+strconv.Itoa(stats.LongestStreak),
				"missed in a row: "+strconv.Itoa(stats.ConsecutiveMissed),
				"total days: "+strconv.Itoa(stats.TotalDays),
				"last check-in: "+last,
			)
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "user name")
	return cmd
}

func newHistoryCommand(opts *RootOptions) *cobra.Command {
	var name string
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List latest check-ins, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.app(cmd)
			if err != nil {
				return err
			}
			defer app.Close()
			user, err := userByName(cmd.Context(), app, name)
			if err != nil {
				return err
			}
			records, err := app.CheckIns.GetHistory(cmd.Context(), user.ID, limit)
			if err != nil {
				return err
			}
			lines := make([]string, 0, len(records))
			for _, r := range records {
				line := r.CheckDate.Format("2006-01-02")
				if r.ConsecutiveMissed > 0 {
					line += " (after " + strconv.Itoa(r.ConsecutiveMissed) + " missed)"
				}
				lines = append(lines, line)
			}
			return printResult(cmd.OutOrStdout(), opts, records, lines...)
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "user name")
	cmd.Flags().IntVar(&limit, "limit", service.DefaultHistoryLimit, "how many records to show")
	return cmd
}

func newRemindCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "remind",
		Short: "Run one reminder sweep now",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.app(cmd)
			if err != nil {
				return err
			}
			defer app.Close()
			report, err := app.Watcher().Sweep(cmd.Context(), app.Clock.Today())
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), opts, report,
				fmt.Sprintf("%s: %d users, %d due, %d notified, %d skipped, %d failed",
					report.Day, report.Users, report.Due, report.Notified, report.Skipped, report.Failed),
			)
		},
	}
}

func newHashCodeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-code <code>",
		Short: "Print the bcrypt hash to put into ACCESS_CODE_HASH",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := service.Hash(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), hash)
			return err
		},
	}
}

func userByName(ctx context.Context, app *App, name string) (*entity.User, error) {
	if name == "" {
		return nil, errNoName
	}
	return app.Users.GetByName(ctx, name)
}
