package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/focusflow/internal/timer"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

const trackCmdName = "track"

func newTrackCmd(app *App) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   trackCmdName,
		Short: "Open the live session timer",
		Long: `Open the full-screen session timer.

With --category the session starts immediately; otherwise press n to pick
a category. Stopping a session opens the save dialog.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTracker(cmd, app, category)
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Start a session in this category right away")
	return cmd
}

// runTracker runs the bubbletea program until the user quits.
func runTracker(cmd *cobra.Command, app *App, category string) error {
	if app.Timer == nil {
		return fmt.Errorf("timer is not configured")
	}
	if category = strings.TrimSpace(category); category != "" {
		app.Timer.Start(category)
	}

	updates, unsubscribe := timerFeed(app.Timer)
	defer unsubscribe()

	p := tea.NewProgram(newAppModel(app, updates),
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	_, err := p.Run()

	if s := app.Timer.State(); s.Phase() != timer.PhaseIdle {
		app.logger().Warn("session_discarded_on_exit",
			"category", s.Category,
			"elapsed_seconds", s.ElapsedSeconds,
		)
		app.Timer.Reset()
	}
	return err
}
