package formatter

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/focusflow/internal/domain"
	"github.com/alexanderramin/focusflow/internal/timer"
	"github.com/stretchr/testify/assert"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestLiveClock(t *testing.T) {
	tests := []struct {
		secs int
		want string
	}{
		{0, "00:00"},
		{5, "00:05"},
		{65, "01:05"},
		{599, "09:59"},
		{3599, "59:59"},
		{3600, "1:00:00"},
		{3725, "1:02:05"},
		{36000, "10:00:00"},
		{-3, "00:00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LiveClock(tt.secs), "LiveClock(%d)", tt.secs)
	}
}

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		min  int
		want string
	}{
		{0, "0m"},
		{-5, "0m"},
		{1, "1m"},
		{45, "45m"},
		{60, "1h"},
		{90, "1h 30m"},
		{125, "2h 5m"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatMinutes(tt.min), "FormatMinutes(%d)", tt.min)
	}
}

func TestSessionDuration(t *testing.T) {
	tests := []struct {
		secs int
		want string
	}{
		{0, "0s"},
		{42, "42s"},
		{59, "59s"},
		{60, "1m"},
		{125, "2m"},
		{2400, "40m"},
		{3600, "1h"},
		{3725, "1h 2m"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SessionDuration(tt.secs), "SessionDuration(%d)", tt.secs)
	}
}

func TestFocusLabel(t *testing.T) {
	want := map[int]string{
		1: "Distracted", 2: "Distracted",
		3: "Some distractions", 4: "Some distractions",
		5: "Good focus", 6: "Good focus",
		7: "Very focused", 8: "Very focused",
		9: "Flow state!", 10: "Flow state!",
	}
	for lvl, label := range want {
		assert.Equal(t, label, FocusLabel(lvl), "FocusLabel(%d)", lvl)
	}
}

func TestFocusMeter(t *testing.T) {
	out := stripANSI(FocusMeter(domain.IntPtr(7)))
	assert.Equal(t, "[███████░░░] 7/10 Very focused", out)

	assert.Equal(t, "unrated", stripANSI(FocusMeter(nil)))
	assert.Contains(t, stripANSI(FocusMeter(domain.IntPtr(42))), "10/10")
}

func TestHumanTimestampFrom(t *testing.T) {
	now := time.Date(2026, 6, 10, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "Just now", HumanTimestampFrom(now.Add(-20*time.Second), now))
	assert.Equal(t, "5 minutes ago", HumanTimestampFrom(now.Add(-5*time.Minute), now))
	assert.Equal(t, "3 hours ago", HumanTimestampFrom(now.Add(-3*time.Hour), now))
	assert.Equal(t, "2 days ago", HumanTimestampFrom(now.Add(-48*time.Hour), now))

	old := now.AddDate(0, -2, 0)
	assert.Equal(t, old.Local().Format("Jan 2, 2006"), HumanTimestampFrom(old, now))
}

func TestRenderTable_RightAlign(t *testing.T) {
	out := stripANSI(RenderTable(
		[]Column{{Title: "NAME"}, {Title: "MIN", Right: true}},
		[][]string{{"a", "5"}, {"long", "120"}},
	))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Equal(t, []string{
		"NAME  MIN",
		"────  ───",
		"a       5",
		"long  120",
	}, lines)
}

func TestRenderTable_NoColumns(t *testing.T) {
	assert.Empty(t, RenderTable(nil, nil))
}

func TestFormatActivityList(t *testing.T) {
	now := time.Date(2026, 6, 10, 12, 0, 0, 0, time.UTC)
	a := &domain.Activity{
		ID:              "0123456789abcdef",
		Category:        "Coding",
		DurationMinutes: 90,
		Note:            "parser work",
		FocusLevel:      domain.IntPtr(8),
		Visibility:      domain.VisibilityPublic,
		CreatedAt:       now.Add(-2 * time.Hour),
	}

	out := stripANSI(FormatActivityList([]*domain.Activity{a}, now))
	assert.Contains(t, out, "01234567")
	assert.NotContains(t, out, "89abcdef")
	assert.Contains(t, out, "Coding")
	assert.Contains(t, out, "1h 30m")
	assert.Contains(t, out, "8/10")
	assert.Contains(t, out, "2 hours ago")
	assert.Contains(t, out, "parser work")

	empty := stripANSI(FormatActivityList(nil, now))
	assert.Contains(t, empty, "No activities yet")
}

func TestFormatActivityList_LikeAndCommentCounts(t *testing.T) {
	now := time.Date(2026, 6, 10, 12, 0, 0, 0, time.UTC)
	liked := &domain.Activity{
		ID: "liked-000", Category: "Coding", DurationMinutes: 30,
		Visibility: domain.VisibilityPublic, CreatedAt: now,
		LikeCount: 1, CommentCount: 3,
	}
	plain := &domain.Activity{
		ID: "plain-000", Category: "Reading", DurationMinutes: 30,
		Visibility: domain.VisibilityPublic, CreatedAt: now,
	}

	out := stripANSI(FormatActivityList([]*domain.Activity{liked, plain}, now))
	assert.Contains(t, out, "LIKES")
	assert.Contains(t, out, "COMMENTS")
	assert.Contains(t, out, "♥ 1")

	lines := strings.Split(out, "\n")
	var likedLine, plainLine string
	for _, l := range lines {
		switch {
		case strings.Contains(l, "liked-00"):
			likedLine = l
		case strings.Contains(l, "plain-00"):
			plainLine = l
		}
	}
	assert.Contains(t, likedLine, "3")
	assert.NotContains(t, plainLine, "♥")
}

func TestFormatComments(t *testing.T) {
	now := time.Date(2026, 6, 10, 12, 0, 0, 0, time.UTC)
	comments := []*domain.Comment{
		{ID: "c1aaaaaaaa", Body: "first", CreatedAt: now.Add(-time.Hour), UpdatedAt: now.Add(-time.Hour)},
		{ID: "c2bbbbbbbb", Body: "line one\nline two", CreatedAt: now.Add(-time.Minute), UpdatedAt: now},
	}

	out := stripANSI(FormatComments(comments, now))
	assert.Contains(t, out, "c1aaaaaa")
	assert.Contains(t, out, "1 hour ago")
	assert.Contains(t, out, "  line one\n  line two")
	assert.Equal(t, 1, strings.Count(out, "(edited)"))
	assert.Less(t, strings.Index(out, "first"), strings.Index(out, "line one"))

	assert.Contains(t, stripANSI(FormatComments(nil, now)), "No comments yet.")
}

func TestFormatActivityDetail(t *testing.T) {
	now := time.Date(2026, 6, 10, 12, 0, 0, 0, time.UTC)
	a := &domain.Activity{
		ID:              "abc",
		Category:        "Reading",
		DurationMinutes: 25,
		EvidenceURL:     "https://example.com/notes",
		Visibility:      domain.VisibilityPrivate,
		ShareCount:      1200,
		CreatedAt:       now,
	}

	out := stripANSI(FormatActivityDetail(a, now))
	assert.Contains(t, out, "ACTIVITY")
	assert.Contains(t, out, "25m")
	assert.Contains(t, out, "unrated")
	assert.Contains(t, out, "Private")
	assert.Contains(t, out, "1,200")
	assert.Contains(t, out, "https://example.com/notes")
	assert.Contains(t, out, "Likes")
	assert.Contains(t, out, "Comments")
}

func TestFormatProfileStats(t *testing.T) {
	out := stripANSI(FormatProfileStats(domain.ProfileStats{
		TotalSessions: 12,
		TotalMinutes:  400,
		CurrentStreak: 1,
	}))
	assert.Contains(t, out, "12")
	assert.Contains(t, out, "6h 40m")
	assert.Contains(t, out, "1 day")
}

func TestFormatTimerState(t *testing.T) {
	assert.Contains(t, stripANSI(FormatTimerState(timer.State{})), "Idle")

	out := stripANSI(FormatTimerState(timer.State{Running: true, Paused: true, Category: "Design", ElapsedSeconds: 75}))
	assert.Contains(t, out, "Paused")
	assert.Contains(t, out, "Design")
	assert.Contains(t, out, "01:15")
}

func TestCategoryBadge_UnknownCategory(t *testing.T) {
	assert.Equal(t, "Juggling", stripANSI(CategoryBadge("Juggling")))
	assert.Equal(t, "--", stripANSI(CategoryBadge("")))
}
