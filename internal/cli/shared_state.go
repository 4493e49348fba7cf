package cli

import (
	"context"

	"github.com/alexanderramin/focusflow/internal/domain"
)

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Terminal dimensions
	Width  int
	Height int

	// Save-dialog defaults, remembered from the last saved session.
	LastCategory   string
	LastFocus      int
	LastVisibility domain.Visibility
}

func newSharedState(app *App) *SharedState {
	s := &SharedState{App: app, LastVisibility: domain.VisibilityPublic}
	if app.Config != nil {
		s.LastCategory = app.Config.DefaultCategory
		s.LastFocus = app.Config.DefaultFocus
	}
	if s.LastCategory == "" {
		s.LastCategory = domain.StartCategories[0]
	}
	if s.LastFocus == 0 {
		s.LastFocus = domain.DefaultFocusLevel
	}
	return s
}

// ContentHeight is the space left for the active view once the header and
// status bar are drawn.
func (s *SharedState) ContentHeight() int {
	return max(s.Height-4, 1)
}

func (s *SharedState) ctx() context.Context {
	return context.Background()
}
