package cli

import (
	"io"
	"log/slog"
	"math"

	"github.com/alexanderramin/focusflow/internal/config"
	"github.com/alexanderramin/focusflow/internal/service"
	"github.com/alexanderramin/focusflow/internal/timer"
	"github.com/benbjohnson/clock"
)

// App holds everything the commands and the TUI need.
type App struct {
	Timer      *timer.Timer
	Activities service.ActivityService
	Stats      service.StatsService
	Backup     service.BackupService

	Config *config.Config
	Clock  clock.Clock
	Logger *slog.Logger

	// IsInteractive reports whether stdin is a terminal. The bare
	// `focusflow` command opens the tracker only when it is.
	IsInteractive func() bool

	// Open wires the fields above from the resolved config and logger. It
	// runs once, before any command. Tests leave it nil and fill the
	// fields directly.
	Open func(cfg *config.Config, logger *slog.Logger) (io.Closer, error)
}

func (a *App) now() clock.Clock {
	if a.Clock == nil {
		return clock.New()
	}
	return a.Clock
}

func (a *App) logger() *slog.Logger {
	if a.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)}))
	}
	return a.Logger
}
