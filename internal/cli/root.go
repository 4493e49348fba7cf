package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/focusflow/internal/config"
	"github.com/alexanderramin/focusflow/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	flagConfig   = "config"
	flagDB       = "db"
	flagLogLevel = "log-level"
)

// NewRootCmd creates the top-level "focusflow" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var closers []io.Closer

	root := &cobra.Command{
		Use:           "focusflow",
		Short:         "Focus session timer and activity log",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			c, err := bootstrap(cmd, app)
			closers = append(closers, c...)
			return err
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			var errs []error
			for i := len(closers) - 1; i >= 0; i-- {
				errs = append(errs, closers[i].Close())
			}
			closers = nil
			return errors.Join(errs...)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runTracker(cmd, app, "")
			}
			return cmd.Help()
		},
	}

	root.PersistentFlags().String(flagConfig, "", "Config file (default: $XDG_CONFIG_HOME/focusflow/config.yaml)")
	root.PersistentFlags().String(flagDB, "", "Database path (default: ~/.focusflow/focusflow.db)")
	root.PersistentFlags().String(flagLogLevel, "", "Log level: debug, info, warn, error")

	root.AddCommand(
		newTrackCmd(app),
		newActivityCmd(app),
		newStatsCmd(app),
		newServeCmd(app),
		newCategoriesCmd(),
	)

	return root
}

// bootstrap resolves config, builds the logger and opens the store. A
// preset app.Config (tests) skips loading.
func bootstrap(cmd *cobra.Command, app *App) ([]io.Closer, error) {
	var closers []io.Closer

	if app.Config == nil {
		v := config.NewViper()
		flags := cmd.Root().PersistentFlags()
		for key, name := range map[string]string{
			config.KeyConfigFile: flagConfig,
			"db_path":            flagDB,
			"log_level":          flagLogLevel,
		} {
			if err := bindFlag(v.BindPFlag, key, flags.Lookup(name)); err != nil {
				return nil, err
			}
		}
		cfg, err := config.LoadConfig(v)
		if err != nil {
			return nil, err
		}
		app.Config = cfg
	}

	if app.Logger == nil {
		level, err := app.Config.SlogLevel()
		if err != nil {
			return nil, err
		}
		if cmd.Name() == trackCmdName || (cmd == cmd.Root() && app.IsInteractive != nil && app.IsInteractive()) {
			fl, err := logging.SetupTUILogger(app.Config.LogDir, level, app.Config.LogRotation)
			if err != nil {
				return nil, fmt.Errorf("opening log file: %w", err)
			}
			app.Logger = fl.Logger
			closers = append(closers, fl)
		} else {
			app.Logger = logging.NewCLILogger(os.Stderr, level)
		}
	}

	if app.Open != nil {
		c, err := app.Open(app.Config, app.Logger)
		if err != nil {
			return closers, err
		}
		if c != nil {
			closers = append(closers, c)
		}
		app.Open = nil
	}
	return closers, nil
}

func bindFlag(bind func(string, *pflag.Flag) error, key string, f *pflag.Flag) error {
	if f == nil {
		return nil
	}
	return bind(key, f)
}
