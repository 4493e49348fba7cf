package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewID names the screens the tracker can stack. The timer view is always
// at the bottom.
type ViewID int

const (
	ViewTimer ViewID = iota
	ViewFeed
	ViewForm
)

func (id ViewID) String() string {
	switch id {
	case ViewTimer:
		return "timer"
	case ViewFeed:
		return "feed"
	case ViewForm:
		return "form"
	default:
		return "unknown"
	}
}

// View is one screen on the stack. Title feeds the header breadcrumbs and
// may be empty; ShortHelp feeds the status bar.
type View interface {
	tea.Model
	ID() ViewID
	ShortHelp() []key.Binding
	Title() string
}
