package cli

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/focusflow/internal/config"
	"github.com/alexanderramin/focusflow/internal/domain"
	"github.com/alexanderramin/focusflow/internal/importer"
	"github.com/alexanderramin/focusflow/internal/repository"
	"github.com/alexanderramin/focusflow/internal/service"
	"github.com/alexanderramin/focusflow/internal/testutil"
	"github.com/alexanderramin/focusflow/internal/timer"
	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// testApp wires a full App backed by an in-memory DB and a mock clock.
func testApp(t *testing.T) (*App, *clock.Mock) {
	t.Helper()
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteActivityRepo(database)
	uow := testutil.NewTestUoW(database)

	clk := clock.NewMock()
	clk.Set(time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC))

	tm := timer.New(timer.WithClock(clk))
	t.Cleanup(tm.Close)

	return &App{
		Timer:      tm,
		Activities: service.NewActivityService(repo, uow, clk),
		Stats:      service.NewStatsService(repo),
		Backup:     service.NewBackupService(repo, uow, clk),
		Config:     config.Default(),
		Clock:      clk,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)})),
	}, clk
}

// seedActivity stores an activity with a fixed id for prefix lookups.
func seedActivity(t *testing.T, app *App, id string, opts ...testutil.ActivityOption) *domain.Activity {
	t.Helper()
	a := testutil.NewTestActivity(opts...)
	a.ID = id
	a.CreatedAt = app.Clock.Now().UTC().Add(-time.Hour)
	schema := importer.FromActivities([]*domain.Activity{a}, app.Clock.Now())
	_, err := app.Backup.ImportFromSchema(context.Background(), schema)
	require.NoError(t, err)
	return a
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return stripANSI(buf.String()), err
}

// --- activity log / list ---

func TestActivityLog_ThenList(t *testing.T) {
	app, _ := testApp(t)

	out, err := executeCmd(t, app, "activity", "log", "--minutes", "45", "--category", "Coding", "--note", "parser work", "--focus", "9")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged 45m of Coding")

	out, err = executeCmd(t, app, "activity", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Coding")
	assert.Contains(t, out, "45m")
	assert.Contains(t, out, "9/10")
	assert.Contains(t, out, "parser work")
}

func TestActivityLog_Defaults(t *testing.T) {
	app, _ := testApp(t)
	app.Config.DefaultCategory = "Reading"
	app.Config.DefaultFocus = 4

	_, err := executeCmd(t, app, "activity", "log", "-m", "10")
	require.NoError(t, err)

	acts, err := app.Activities.ListFeed(context.Background(), service.FeedQuery{IncludePrivate: true})
	require.NoError(t, err)
	require.Len(t, acts, 1)
	assert.Equal(t, "Reading", acts[0].Category)
	require.NotNil(t, acts[0].FocusLevel)
	assert.Equal(t, 4, *acts[0].FocusLevel)
	assert.Equal(t, domain.VisibilityPublic, acts[0].Visibility)
}

func TestActivityLog_Validation(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing minutes", []string{"--category", "Coding"}, `required flag(s) "minutes" not set`},
		{"zero minutes", []string{"--minutes", "0"}, "duration must be at least 1 minute"},
		{"focus out of range", []string{"--minutes", "5", "--focus", "11"}, "focus level must be between 1 and 10"},
		{"bad evidence", []string{"--minutes", "5", "--evidence", "not a url"}, "http(s) link"},
		{"public and private", []string{"--minutes", "5", "--public", "--private"}, "none of the others can be"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _ := testApp(t)
			_, err := executeCmd(t, app, append([]string{"activity", "log"}, tt.args...)...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestActivityList_PrivateNeedsAll(t *testing.T) {
	app, _ := testApp(t)
	_, err := executeCmd(t, app, "activity", "log", "-m", "20", "-c", "Writing", "--private")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "activity", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No activities found.")

	out, err = executeCmd(t, app, "activity", "list", "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "Writing")
}

func TestActivityList_Paging(t *testing.T) {
	app, clk := testApp(t)
	for _, c := range []string{"Coding", "Reading", "Writing"} {
		_, err := executeCmd(t, app, "activity", "log", "-m", "5", "-c", c)
		require.NoError(t, err)
		clk.Add(time.Minute)
	}

	out, err := executeCmd(t, app, "activity", "list", "--limit", "1", "--offset", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Reading")
	assert.NotContains(t, out, "Writing")
	assert.NotContains(t, out, "Coding")
}

// --- show / edit / share / remove ---

func TestActivityShow_ByPrefix(t *testing.T) {
	app, _ := testApp(t)
	seedActivity(t, app, "abcd1111-0000", testutil.WithCategory("Design"))
	seedActivity(t, app, "abcd2222-0000", testutil.WithCategory("Coding"))

	out, err := executeCmd(t, app, "activity", "show", "abcd1")
	require.NoError(t, err)
	assert.Contains(t, out, "abcd1111-0000")
	assert.Contains(t, out, "Design")

	_, err = executeCmd(t, app, "activity", "show", "abcd")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ambiguous")

	_, err = executeCmd(t, app, "activity", "show", "zzzz")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestActivityEdit(t *testing.T) {
	app, _ := testApp(t)
	seedActivity(t, app, "edit0001", testutil.WithDurationMinutes(25))

	out, err := executeCmd(t, app, "activity", "edit", "edit0001", "--minutes", "50", "--note", "longer than I thought", "--private")
	require.NoError(t, err)
	assert.Contains(t, out, "50m")
	assert.Contains(t, out, "longer than I thought")

	a, err := app.Activities.Get(context.Background(), "edit0001")
	require.NoError(t, err)
	assert.Equal(t, 50, a.DurationMinutes)
	assert.Equal(t, domain.VisibilityPrivate, a.Visibility)

	_, err = executeCmd(t, app, "activity", "edit", "edit0001")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nothing to change")

	_, err = executeCmd(t, app, "activity", "edit", "edit0001", "--focus", "0")
	require.ErrorIs(t, err, domain.ErrInvalidActivity)
}

func TestActivityShare(t *testing.T) {
	app, _ := testApp(t)
	seedActivity(t, app, "share001")

	out, err := executeCmd(t, app, "activity", "share", "share001")
	require.NoError(t, err)
	assert.Contains(t, out, "(1 shares)")

	out, err = executeCmd(t, app, "activity", "share", "share001")
	require.NoError(t, err)
	assert.Contains(t, out, "(2 shares)")
}

func TestActivityRemove(t *testing.T) {
	app, _ := testApp(t)
	seedActivity(t, app, "gone0001")

	out, err := executeCmd(t, app, "activity", "rm", "gone0001")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed gone0001")

	_, err = executeCmd(t, app, "activity", "show", "gone0001")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

// --- likes / comments ---

func TestActivityLike_Toggles(t *testing.T) {
	app, _ := testApp(t)
	seedActivity(t, app, "like0001")

	out, err := executeCmd(t, app, "activity", "like", "like")
	require.NoError(t, err)
	assert.Contains(t, out, "Liked like0001")

	out, err = executeCmd(t, app, "activity", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "♥ 1")

	out, err = executeCmd(t, app, "activity", "like", "like0001")
	require.NoError(t, err)
	assert.Contains(t, out, "Unliked like0001")
}

func TestActivityComment_Lifecycle(t *testing.T) {
	app, clk := testApp(t)
	seedActivity(t, app, "talk0001")
	ctx := context.Background()

	out, err := executeCmd(t, app, "activity", "comment", "add", "talk", "solid", "hour")
	require.NoError(t, err)
	assert.Contains(t, out, "Commented on talk0001")

	comments, err := app.Activities.ListComments(ctx, "talk0001", 0, 0)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "solid hour", comments[0].Body)
	prefix := comments[0].ID[:6]

	out, err = executeCmd(t, app, "activity", "comment", "list", "talk0001")
	require.NoError(t, err)
	assert.Contains(t, out, "solid hour")

	out, err = executeCmd(t, app, "activity", "show", "talk0001")
	require.NoError(t, err)
	assert.Contains(t, out, "solid hour", "show lists comments under the detail box")

	clk.Add(time.Minute)
	out, err = executeCmd(t, app, "activity", "comment", "edit", "talk0001", prefix, "solid", "two", "hours")
	require.NoError(t, err)
	assert.Contains(t, out, "Edited comment")

	out, err = executeCmd(t, app, "activity", "comment", "list", "talk0001")
	require.NoError(t, err)
	assert.Contains(t, out, "solid two hours")
	assert.Contains(t, out, "(edited)")

	out, err = executeCmd(t, app, "activity", "comment", "rm", "talk0001", prefix)
	require.NoError(t, err)
	assert.Contains(t, out, "Removed comment")

	out, err = executeCmd(t, app, "activity", "comment", "list", "talk0001")
	require.NoError(t, err)
	assert.Contains(t, out, "No comments yet.")
}

func TestActivityComment_Errors(t *testing.T) {
	app, _ := testApp(t)
	seedActivity(t, app, "talk0002")

	_, err := executeCmd(t, app, "activity", "comment", "add", "talk0002", "   ")
	require.ErrorIs(t, err, domain.ErrInvalidComment)

	_, err = executeCmd(t, app, "activity", "comment", "add", "nope0000", "hi")
	require.ErrorIs(t, err, repository.ErrNotFound)

	_, err = executeCmd(t, app, "activity", "comment", "rm", "talk0002", "zzzz")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

// --- export / import ---

func TestActivityExportImport(t *testing.T) {
	src, _ := testApp(t)
	seedActivity(t, src, "exp00001", testutil.WithCategory("Learning"), testutil.WithNote("go generics"))
	seedActivity(t, src, "exp00002", testutil.WithVisibility(domain.VisibilityPrivate))

	path := filepath.Join(t.TempDir(), "backup.json")
	out, err := executeCmd(t, src, "activity", "export", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Exported 2 activities")

	dst, _ := testApp(t)
	out, err = executeCmd(t, dst, "activity", "import", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 2 activities")

	out, err = executeCmd(t, dst, "activity", "import", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 0 activities (2 already present)")

	a, err := dst.Activities.Get(context.Background(), "exp00001")
	require.NoError(t, err)
	assert.Equal(t, "go generics", a.Note)
}

func TestActivityExport_Stdout(t *testing.T) {
	app, _ := testApp(t)
	seedActivity(t, app, "stdout01")

	out, err := executeCmd(t, app, "activity", "export")
	require.NoError(t, err)
	assert.Contains(t, out, `"id": "stdout01"`)
	assert.Contains(t, out, `"version": 1`)
}

// --- stats / categories ---

func TestStatsCmd(t *testing.T) {
	app, _ := testApp(t)
	_, err := executeCmd(t, app, "activity", "log", "-m", "90")
	require.NoError(t, err)
	_, err = executeCmd(t, app, "activity", "log", "-m", "45")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "Sessions")
	assert.Contains(t, out, "2h 15m")
	assert.Contains(t, out, "1 day")
}

func TestCategoriesCmd(t *testing.T) {
	app, _ := testApp(t)
	out, err := executeCmd(t, app, "categories")
	require.NoError(t, err)
	for _, c := range domain.StartCategories {
		assert.Contains(t, out, c)
	}
	assert.Equal(t, len(domain.StartCategories), strings.Count(strings.TrimSpace(out), "\n")+1)
}

// --- bootstrap ---

func TestRootCmd_LoadsConfigAndOpens(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "focusflow.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("default_category: Writing\nfeed_page_size: 5\n"), 0o644))

	base, _ := testApp(t)
	var opened *config.Config
	app := &App{Clock: base.Clock}
	app.Open = func(cfg *config.Config, logger *slog.Logger) (io.Closer, error) {
		opened = cfg
		app.Timer, app.Activities, app.Stats, app.Backup = base.Timer, base.Activities, base.Stats, base.Backup
		return nil, nil
	}

	_, err := executeCmd(t, app, "--config", cfgPath, "--db", filepath.Join(dir, "x.db"), "--log-level", "debug", "categories")
	require.NoError(t, err)

	require.NotNil(t, opened)
	assert.Equal(t, "Writing", opened.DefaultCategory)
	assert.Equal(t, 5, opened.FeedPageSize)
	assert.Equal(t, filepath.Join(dir, "x.db"), opened.DBPath)
	assert.Equal(t, "debug", opened.LogLevel)
	assert.NotNil(t, app.Logger)
}

func TestRootCmd_InvalidConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	app := &App{}
	_, err := executeCmd(t, app, "--log-level", "loud", "categories")
	require.Error(t, err)
}

func TestRootCmd_NonInteractiveShowsHelp(t *testing.T) {
	app, _ := testApp(t)
	app.IsInteractive = func() bool { return false }
	out, err := executeCmd(t, app)
	require.NoError(t, err)
	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "track")
}
