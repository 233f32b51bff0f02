package cli

import (
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/bytedance/sonic"
	"github.com/limbo/checkin/pkg/config"
	"github.com/spf13/cobra"
)

var ValidFormats = []string{"text", "json"}

// RootOptions holds global flags for all commands.
type RootOptions struct {
	EnvFile string
	Format  string
	// Day overrides today, YYYY-MM-DD
	Day string

	// newApp builds the dependencies of a command, NewApp unless replaced in tests
	newApp func(ctx context.Context, opts *RootOptions) (*App, error)
}

func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{newApp: NewApp})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checkin",
		Short: "Daily check-in tracker",
		Long: `Records one check-in per user per day, reports streaks and
reminds users who stopped checking in.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.EnvFile, "env-file", config.DefaultEnvFile, "path to the .env file")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Day, "day", "", "act as if today were this date (YYYY-MM-DD)")

	cmd.AddCommand(newServeCommand(opts))
	cmd.AddCommand(newMigrateCommand(opts))
	cmd.AddCommand(newUserCommand(opts))
	cmd.AddCommand(newCheckInCommand(opts))
	cmd.AddCommand(newStatusCommand(opts))
	cmd.AddCommand(newHistoryCommand(opts))
	cmd.AddCommand(newRemindCommand(opts))
	cmd.AddCommand(newHashCodeCommand())
	return cmd
}

func (opts *RootOptions) app(cmd *cobra.Command) (*App, error) {
	return opts.newApp(cmd.Context(), opts)
}

// printResult writes v as JSON or the text lines depending on --format.
func printResult(w io.Writer, opts *RootOptions, v any, lines ...string) error {
	if opts.Format == "json" {
		raw, err := sonic.ConfigDefault.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(raw))
		return err
	}
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}
