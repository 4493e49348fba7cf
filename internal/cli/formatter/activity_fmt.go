package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/focusflow/internal/domain"
	"github.com/alexanderramin/focusflow/internal/timer"
)

// FormatActivityList renders the feed as a table, newest first as given.
func FormatActivityList(activities []*domain.Activity, now time.Time) string {
	if len(activities) == 0 {
		return Dim("No activities yet. Run `focusflow track` to start a session.") + "\n"
	}

	rows := make([][]string, 0, len(activities))
	for _, a := range activities {
		focus := Dim("--")
		if a.FocusLevel != nil {
			focus = FocusStyle(*a.FocusLevel).Render(fmt.Sprintf("%d/10", *a.FocusLevel))
		}
		rows = append(rows, []string{
			TruncID(a.ID),
			CategoryBadge(a.Category),
			FormatMinutes(a.DurationMinutes),
			focus,
			HumanTimestampFrom(a.CreatedAt, now),
			likeCell(a),
			Count(a.CommentCount),
			truncate(a.Note, 40),
		})
	}

	cols := []Column{
		{Title: "ID"},
		{Title: "CATEGORY"},
		{Title: "DURATION", Right: true},
		{Title: "FOCUS", Right: true},
		{Title: "WHEN"},
		{Title: "LIKES", Right: true},
		{Title: "COMMENTS", Right: true},
		{Title: "NOTE"},
	}
	return RenderTable(cols, rows)
}

func likeCell(a *domain.Activity) string {
	if a.Liked() {
		return StyleRed.Render("♥ " + Count(a.LikeCount))
	}
	return Dim(Count(a.LikeCount))
}

// FormatComments renders comments oldest first, one block each.
func FormatComments(comments []*domain.Comment, now time.Time) string {
	if len(comments) == 0 {
		return Dim("No comments yet.") + "\n"
	}
	var b strings.Builder
	for _, c := range comments {
		meta := TruncID(c.ID) + " " + Dim(HumanTimestampFrom(c.CreatedAt, now))
		if c.Edited() {
			meta += " " + Dim("(edited)")
		}
		b.WriteString(meta + "\n")
		b.WriteString("  " + strings.ReplaceAll(c.Body, "\n", "\n  ") + "\n")
	}
	return b.String()
}

// FormatActivityDetail renders a single activity in a box.
func FormatActivityDetail(a *domain.Activity, now time.Time) string {
	var b strings.Builder
	line := func(label, value string) {
		b.WriteString(fmt.Sprintf("%s  %s\n", Dim(fmt.Sprintf("%-10s", label)), value))
	}

	line("ID", a.ID)
	line("Category", CategoryBadge(a.Category))
	line("Duration", FormatMinutes(a.DurationMinutes))
	line("Focus", FocusMeter(a.FocusLevel))
	line("Visibility", VisibilityPill(a.Visibility))
	line("Shares", Count(a.ShareCount))
	line("Likes", likeCell(a))
	line("Comments", Count(a.CommentCount))
	line("Logged", fmt.Sprintf("%s %s",
		a.CreatedAt.Local().Format("Jan 2, 2006 15:04"),
		Dim("("+HumanTimestampFrom(a.CreatedAt, now)+")")))
	if a.EvidenceURL != "" {
		line("Evidence", StyleBlue.Render(a.EvidenceURL))
	}
	if a.Note != "" {
		b.WriteString("\n" + a.Note + "\n")
	}

	return RenderBox("Activity", strings.TrimRight(b.String(), "\n"))
}

// FormatProfileStats renders the stats box.
func FormatProfileStats(s domain.ProfileStats) string {
	streak := fmt.Sprintf("%d days", s.CurrentStreak)
	if s.CurrentStreak == 1 {
		streak = "1 day"
	}
	if s.CurrentStreak > 0 {
		streak = StyleGreen.Render("🔥 " + streak)
	} else {
		streak = Dim(streak)
	}

	rows := [][2]string{
		{"Sessions", Bold(Count(s.TotalSessions))},
		{"Hours", Bold(Count(s.TotalHours()))},
		{"Total time", FormatMinutes(s.TotalMinutes)},
		{"Streak", streak},
	}
	var b strings.Builder
	for _, r := range rows {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim(fmt.Sprintf("%-12s", r[0])), r[1]))
	}
	return RenderBox("Profile", strings.TrimRight(b.String(), "\n"))
}

// FormatTimerState renders the compact one-line timer status used by
// non-interactive commands.
func FormatTimerState(s timer.State) string {
	if s.Phase() == timer.PhaseIdle {
		return PhasePill(timer.PhaseIdle)
	}
	return fmt.Sprintf("%s  %s  %s",
		PhasePill(s.Phase()), CategoryBadge(s.Category), StyleBold.Render(LiveClock(s.ElapsedSeconds)))
}

func truncate(s string, n int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
