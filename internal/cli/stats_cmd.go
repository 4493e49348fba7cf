package cli

import (
	"fmt"

	"github.com/alexanderramin/focusflow/internal/cli/formatter"
	"github.com/alexanderramin/focusflow/internal/domain"
	"github.com/spf13/cobra"
)

func newStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show profile totals and streak",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Stats.ProfileStats(cmd.Context(), app.now().Now())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProfileStats(s))
			return nil
		},
	}
}

func newCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the categories offered when starting a session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, c := range domain.StartCategories {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.CategoryBadge(c))
			}
			return nil
		},
	}
}
