package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidActivity is wrapped by every Activity validation failure.
var ErrInvalidActivity = errors.New("invalid activity")

// Activity is a saved focus session.
type Activity struct {
	ID              string
	Category        string
	DurationMinutes int
	Note            string
	EvidenceURL     string
	FocusLevel      *int
	Visibility      Visibility
	ShareCount      int
	CreatedAt       time.Time

	// Read-only counters filled in by the store.
	LikeCount    int
	CommentCount int
}

// Validate checks the fields the store relies on.
func (a *Activity) Validate() error {
	if strings.TrimSpace(a.Category) == "" {
		return fmt.Errorf("%w: category is required", ErrInvalidActivity)
	}
	if a.DurationMinutes < 1 {
		return fmt.Errorf("%w: duration must be at least 1 minute, got %d", ErrInvalidActivity, a.DurationMinutes)
	}
	if a.FocusLevel != nil && (*a.FocusLevel < MinFocusLevel || *a.FocusLevel > MaxFocusLevel) {
		return fmt.Errorf("%w: focus level must be between %d and %d, got %d",
			ErrInvalidActivity, MinFocusLevel, MaxFocusLevel, *a.FocusLevel)
	}
	if !a.Visibility.Valid() {
		return fmt.Errorf("%w: unknown visibility %q", ErrInvalidActivity, a.Visibility)
	}
	return nil
}

// IsPublic reports whether the activity shows up in the shared feed.
func (a *Activity) IsPublic() bool {
	return a.Visibility == VisibilityPublic
}

// Liked reports whether the local user has liked the activity.
func (a *Activity) Liked() bool {
	return a.LikeCount > 0
}

// ActivityUpdate carries optional edits. Nil fields are left unchanged.
type ActivityUpdate struct {
	Category        *string
	DurationMinutes *int
	Note            *string
	EvidenceURL     *string
	FocusLevel      *int
	Visibility      *Visibility
}

// Apply copies the set fields onto a.
func (u ActivityUpdate) Apply(a *Activity) {
	if u.Category != nil {
		a.Category = *u.Category
	}
	if u.DurationMinutes != nil {
		a.DurationMinutes = *u.DurationMinutes
	}
	if u.Note != nil {
		a.Note = *u.Note
	}
	if u.EvidenceURL != nil {
		a.EvidenceURL = *u.EvidenceURL
	}
	if u.FocusLevel != nil {
		lvl := *u.FocusLevel
		a.FocusLevel = &lvl
	}
	if u.Visibility != nil {
		a.Visibility = *u.Visibility
	}
}
