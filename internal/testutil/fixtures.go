package testutil

import (
	"time"

	"github.com/alexanderramin/focusflow/internal/domain"
	"github.com/google/uuid"
)

// Activity options
type ActivityOption func(*domain.Activity)

func WithCategory(c string) ActivityOption {
	return func(a *domain.Activity) {
		a.Category = c
	}
}

func WithDurationMinutes(m int) ActivityOption {
	return func(a *domain.Activity) {
		a.DurationMinutes = m
	}
}

func WithNote(n string) ActivityOption {
	return func(a *domain.Activity) {
		a.Note = n
	}
}

func WithFocusLevel(l int) ActivityOption {
	return func(a *domain.Activity) {
		a.FocusLevel = &l
	}
}

func WithVisibility(v domain.Visibility) ActivityOption {
	return func(a *domain.Activity) {
		a.Visibility = v
	}
}

func WithCreatedAt(t time.Time) ActivityOption {
	return func(a *domain.Activity) {
		a.CreatedAt = t.UTC()
	}
}

// NewTestActivity returns a valid 25-minute public activity.
func NewTestActivity(opts ...ActivityOption) *domain.Activity {
	a := &domain.Activity{
		ID:              uuid.New().String(),
		Category:        "Deep Work",
		DurationMinutes: 25,
		FocusLevel:      domain.IntPtr(domain.DefaultFocusLevel),
		Visibility:      domain.VisibilityPublic,
		CreatedAt:       time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// NewTestComment returns a comment on activityID posted at the given time.
func NewTestComment(activityID, body string, at time.Time) *domain.Comment {
	return &domain.Comment{
		ID:         uuid.New().String(),
		ActivityID: activityID,
		Body:       body,
		CreatedAt:  at.UTC(),
		UpdatedAt:  at.UTC(),
	}
}
