package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alexanderramin/focusflow/internal/cli"
	"github.com/alexanderramin/focusflow/internal/config"
	"github.com/alexanderramin/focusflow/internal/db"
	"github.com/alexanderramin/focusflow/internal/repository"
	"github.com/alexanderramin/focusflow/internal/service"
	"github.com/alexanderramin/focusflow/internal/timer"
	"github.com/benbjohnson/clock"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	clk := clock.New()

	app := &cli.App{Clock: clk}

	// Detect interactive terminal for the bare `focusflow` entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	app.Open = func(cfg *config.Config, logger *slog.Logger) (io.Closer, error) {
		database, err := db.OpenDB(cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("opening database: %w", err)
		}
		logger.Debug("db_opened", "path", cfg.DBPath)

		// Wire repositories and the unit of work for transactional updates.
		activityRepo := repository.NewSQLiteActivityRepo(database)
		uow := db.NewSQLiteUnitOfWork(database)
		observer := service.NewLogUseCaseObserver(logger)

		app.Activities = service.NewActivityService(activityRepo, uow, clk, observer)
		app.Stats = service.NewStatsService(activityRepo)
		app.Backup = service.NewBackupService(activityRepo, uow, clk, observer)
		app.Timer = timer.New(
			timer.WithClock(clk),
			timer.WithInterval(cfg.TickInterval),
			timer.WithLogger(logger),
		)

		return closerFunc(func() error {
			app.Timer.Close()
			return database.Close()
		}), nil
	}

	return cli.NewRootCmd(app).Execute()
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }
