package repository

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/focusflow/internal/domain"
)

// ErrNotFound is wrapped by lookups that match no row.
var ErrNotFound = errors.New("not found")

// ActivityFilter narrows List results. Zero values mean "no filter".
type ActivityFilter struct {
	Category   string
	Visibility domain.Visibility
	Since      *time.Time
	Limit      int
	Offset     int
}

type ActivityRepo interface {
	Create(ctx context.Context, a *domain.Activity) error
	GetByID(ctx context.Context, id string) (*domain.Activity, error)
	List(ctx context.Context, f ActivityFilter) ([]*domain.Activity, error)
	Update(ctx context.Context, a *domain.Activity) error
	IncrementShareCount(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type CommentRepo interface {
	Create(ctx context.Context, c *domain.Comment) error
	GetByID(ctx context.Context, id string) (*domain.Comment, error)
	// ListByActivity returns comments oldest first.
	ListByActivity(ctx context.Context, activityID string, limit, offset int) ([]*domain.Comment, error)
	UpdateBody(ctx context.Context, id, body string, at time.Time) error
	Delete(ctx context.Context, id string) error
}

// LikeRepo stores at most one like per activity.
type LikeRepo interface {
	Has(ctx context.Context, activityID string) (bool, error)
	Add(ctx context.Context, activityID string, at time.Time) error
	Remove(ctx context.Context, activityID string) error
}
