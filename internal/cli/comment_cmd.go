package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/focusflow/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newActivityLikeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "like <id>",
		Short: "Like an activity, or unlike it if already liked",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := resolveActivity(cmd.Context(), app.Activities, args[0])
			if err != nil {
				return err
			}
			toggled, err := app.Activities.ToggleLike(cmd.Context(), a.ID)
			if err != nil {
				return err
			}
			verb := "Unliked"
			if toggled.Liked() {
				verb = "Liked"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", verb, formatter.TruncID(toggled.ID))
			return nil
		},
	}
}

func newActivityCommentCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "comment",
		Aliases: []string{"comments"},
		Short:   "Add, list, edit and remove comments on an activity",
	}
	cmd.AddCommand(
		newCommentAddCmd(app),
		newCommentListCmd(app),
		newCommentEditCmd(app),
		newCommentRemoveCmd(app),
	)
	return cmd
}

func newCommentAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <activity-id> <text...>",
		Short: "Comment on an activity",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := resolveActivity(cmd.Context(), app.Activities, args[0])
			if err != nil {
				return err
			}
			c, err := app.Activities.Comment(cmd.Context(), a.ID, strings.Join(args[1:], " "))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Commented on %s (%s)\n",
				formatter.TruncID(a.ID), formatter.TruncID(c.ID))
			return nil
		},
	}
}

func newCommentListCmd(app *App) *cobra.Command {
	var limit, offset int

	cmd := &cobra.Command{
		Use:     "list <activity-id>",
		Aliases: []string{"ls"},
		Short:   "List comments, oldest first",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := resolveActivity(cmd.Context(), app.Activities, args[0])
			if err != nil {
				return err
			}
			comments, err := app.Activities.ListComments(cmd.Context(), a.ID, limit, offset)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatComments(comments, app.now().Now()))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Page size (default: all)")
	cmd.Flags().IntVar(&offset, "offset", 0, "Skip this many comments")
	return cmd
}

func newCommentEditCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <activity-id> <comment-id> <text...>",
		Short: "Replace a comment's text",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := resolveActivity(cmd.Context(), app.Activities, args[0])
			if err != nil {
				return err
			}
			c, err := resolveComment(cmd.Context(), app.Activities, a.ID, args[1])
			if err != nil {
				return err
			}
			if _, err := app.Activities.EditComment(cmd.Context(), c.ID, strings.Join(args[2:], " ")); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Edited comment %s\n", formatter.TruncID(c.ID))
			return nil
		},
	}
}

func newCommentRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <activity-id> <comment-id>",
		Aliases: []string{"rm"},
		Short:   "Delete a comment",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := resolveActivity(cmd.Context(), app.Activities, args[0])
			if err != nil {
				return err
			}
			c, err := resolveComment(cmd.Context(), app.Activities, a.ID, args[1])
			if err != nil {
				return err
			}
			if err := app.Activities.DeleteComment(cmd.Context(), c.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed comment %s\n", formatter.TruncID(c.ID))
			return nil
		},
	}
}
