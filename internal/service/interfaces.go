package service

import (
	"context"
	"time"

	"github.com/alexanderramin/focusflow/internal/domain"
	"github.com/alexanderramin/focusflow/internal/importer"
	"github.com/alexanderramin/focusflow/internal/timer"
)

// SaveInput carries the save dialog's answers. Empty strings and nil
// pointers fall back to the session's values or the defaults.
type SaveInput struct {
	Category    string // overrides the category the session was started with
	Note        string
	EvidenceURL string
	FocusLevel  *int
	Visibility  domain.Visibility
}

// FeedQuery selects a page of the activity feed.
type FeedQuery struct {
	Category       string
	IncludePrivate bool
	Limit          int
	Offset         int
}

type ActivityService interface {
	// SaveSession persists a stopped timer session, rounding its duration
	// to whole minutes.
	SaveSession(ctx context.Context, res timer.Result, in SaveInput) (*domain.Activity, error)
	// LogManual records a session that was not timed, given in minutes.
	LogManual(ctx context.Context, minutes int, in SaveInput) (*domain.Activity, error)
	Get(ctx context.Context, id string) (*domain.Activity, error)
	ListFeed(ctx context.Context, q FeedQuery) ([]*domain.Activity, error)
	Update(ctx context.Context, id string, u domain.ActivityUpdate) (*domain.Activity, error)
	Delete(ctx context.Context, id string) error
	Share(ctx context.Context, id string) (*domain.Activity, error)

	// ToggleLike likes an unliked activity or unlikes a liked one and
	// returns the activity with its refreshed counters.
	ToggleLike(ctx context.Context, activityID string) (*domain.Activity, error)
	Comment(ctx context.Context, activityID, body string) (*domain.Comment, error)
	EditComment(ctx context.Context, commentID, body string) (*domain.Comment, error)
	DeleteComment(ctx context.Context, commentID string) error
	// ListComments returns an activity's comments oldest first. A limit
	// of 0 returns them all.
	ListComments(ctx context.Context, activityID string, limit, offset int) ([]*domain.Comment, error)
}

type StatsService interface {
	ProfileStats(ctx context.Context, now time.Time) (domain.ProfileStats, error)
}

// ImportResult holds the outcome of a backup import.
type ImportResult struct {
	Imported int
	Skipped  int // ids already present in the store
}

type BackupService interface {
	Export(ctx context.Context) (*importer.ImportSchema, error)
	ImportFile(ctx context.Context, path string) (*ImportResult, error)
	ImportFromSchema(ctx context.Context, schema *importer.ImportSchema) (*ImportResult, error)
}
