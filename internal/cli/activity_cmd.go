package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/focusflow/internal/cli/formatter"
	"github.com/alexanderramin/focusflow/internal/domain"
	"github.com/alexanderramin/focusflow/internal/repository"
	"github.com/alexanderramin/focusflow/internal/service"
	"github.com/spf13/cobra"
)

func newActivityCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "activity",
		Aliases: []string{"activities", "a"},
		Short:   "Browse and manage saved sessions",
	}

	cmd.AddCommand(
		newActivityListCmd(app),
		newActivityShowCmd(app),
		newActivityLogCmd(app),
		newActivityEditCmd(app),
		newActivityShareCmd(app),
		newActivityLikeCmd(app),
		newActivityCommentCmd(app),
		newActivityRemoveCmd(app),
		newActivityExportCmd(app),
		newActivityImportCmd(app),
	)

	return cmd
}

func newActivityListCmd(app *App) *cobra.Command {
	var category string
	var limit, offset int
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved sessions, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit <= 0 {
				limit = app.Config.FeedPageSize
			}
			acts, err := app.Activities.ListFeed(cmd.Context(), service.FeedQuery{
				Category:       category,
				IncludePrivate: all,
				Limit:          limit,
				Offset:         offset,
			})
			if err != nil {
				return err
			}
			if len(acts) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No activities found.")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatActivityList(acts, app.now().Now()))
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Only show this category")
	cmd.Flags().IntVar(&limit, "limit", 0, "Page size (default: feed_page_size)")
	cmd.Flags().IntVar(&offset, "offset", 0, "Skip this many activities")
	cmd.Flags().BoolVarP(&all, "all", "a", false, "Include private activities")

	return cmd
}

func newActivityShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one activity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := resolveActivity(cmd.Context(), app.Activities, args[0])
			if err != nil {
				return err
			}
			now := app.now().Now()
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatActivityDetail(a, now))
			if a.CommentCount == 0 {
				return nil
			}
			comments, err := app.Activities.ListComments(cmd.Context(), a.ID, 0, 0)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), "\n"+formatter.FormatComments(comments, now))
			return nil
		},
	}
}

// activityFlags are the metadata flags shared by log and edit.
type activityFlags struct {
	category string
	note     string
	evidence string
	focus    int
	minutes  int
	private  bool
	public   bool
}

func (f *activityFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.category, "category", "c", "", "Category label")
	cmd.Flags().IntVarP(&f.minutes, "minutes", "m", 0, "Duration in minutes")
	cmd.Flags().StringVarP(&f.note, "note", "n", "", "Free-form note")
	cmd.Flags().StringVar(&f.evidence, "evidence", "", "Link to evidence of the work")
	cmd.Flags().IntVar(&f.focus, "focus", 0, fmt.Sprintf("Focus rating %d-%d", domain.MinFocusLevel, domain.MaxFocusLevel))
	cmd.Flags().BoolVar(&f.private, "private", false, "Hide from the public feed")
	cmd.Flags().BoolVar(&f.public, "public", false, "Show in the public feed")
	cmd.MarkFlagsMutuallyExclusive("private", "public")
}

func (f *activityFlags) validate() error {
	if err := validateEvidenceURL(f.evidence); err != nil {
		return err
	}
	return nil
}

func newActivityLogCmd(app *App) *cobra.Command {
	var f activityFlags

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Record a session that was not timed",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := f.validate(); err != nil {
				return err
			}
			in := service.SaveInput{
				Category:    domain.CoalesceStr(strings.TrimSpace(f.category), app.Config.DefaultCategory),
				Note:        strings.TrimSpace(f.note),
				EvidenceURL: strings.TrimSpace(f.evidence),
				FocusLevel:  domain.IntPtr(app.Config.DefaultFocus),
				Visibility:  domain.VisibilityPublic,
			}
			if cmd.Flags().Changed("focus") {
				in.FocusLevel = domain.IntPtr(f.focus)
			}
			if f.private {
				in.Visibility = domain.VisibilityPrivate
			}

			a, err := app.Activities.LogManual(cmd.Context(), f.minutes, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s of %s (%s)\n",
				formatter.FormatMinutes(a.DurationMinutes), a.Category, formatter.TruncID(a.ID))
			return nil
		},
	}

	f.register(cmd)
	_ = cmd.MarkFlagRequired("minutes")

	return cmd
}

func newActivityEditCmd(app *App) *cobra.Command {
	var f activityFlags

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change an activity's details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := f.validate(); err != nil {
				return err
			}
			a, err := resolveActivity(cmd.Context(), app.Activities, args[0])
			if err != nil {
				return err
			}

			var u domain.ActivityUpdate
			flags := cmd.Flags()
			if flags.Changed("category") {
				u.Category = &f.category
			}
			if flags.Changed("minutes") {
				u.DurationMinutes = &f.minutes
			}
			if flags.Changed("note") {
				u.Note = &f.note
			}
			if flags.Changed("evidence") {
				u.EvidenceURL = &f.evidence
			}
			if flags.Changed("focus") {
				u.FocusLevel = &f.focus
			}
			if f.private || f.public {
				v := domain.VisibilityPublic
				if f.private {
					v = domain.VisibilityPrivate
				}
				u.Visibility = &v
			}
			if u == (domain.ActivityUpdate{}) {
				return errors.New("nothing to change: pass at least one flag")
			}

			updated, err := app.Activities.Update(cmd.Context(), a.ID, u)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatActivityDetail(updated, app.now().Now()))
			return nil
		},
	}

	f.register(cmd)
	return cmd
}

func newActivityShareCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "share <id>",
		Short: "Count a share of an activity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := resolveActivity(cmd.Context(), app.Activities, args[0])
			if err != nil {
				return err
			}
			shared, err := app.Activities.Share(cmd.Context(), a.ID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Shared %s (%s shares)\n",
				formatter.TruncID(shared.ID), formatter.Count(shared.ShareCount))
			return nil
		},
	}
}

func newActivityRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <id>",
		Aliases: []string{"rm"},
		Short:   "Delete an activity",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := resolveActivity(cmd.Context(), app.Activities, args[0])
			if err != nil {
				return err
			}
			if err := app.Activities.Delete(cmd.Context(), a.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", formatter.TruncID(a.ID))
			return nil
		},
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, repository.ErrNotFound)
}
