package cli

import (
	"github.com/alexanderramin/focusflow/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// wizardView wraps a huh.Form as a View on the navigation stack. When
// the form completes it sends a wizardCompleteMsg carrying the done
// callback's result.
type wizardView struct {
	state    *SharedState
	form     *huh.Form
	titleStr string
	done     func() tea.Msg
	cancel   string
}

func newWizardView(state *SharedState, title string, form *huh.Form, done func() tea.Msg) *wizardView {
	return &wizardView{
		state:    state,
		form:     form,
		titleStr: title,
		done:     done,
		cancel:   "Cancelled.",
	}
}

// withCancelOutput sets the message shown when Esc abandons the form.
func (v *wizardView) withCancelOutput(s string) *wizardView {
	v.cancel = s
	return v
}

func (v *wizardView) Init() tea.Cmd {
	return v.form.Init()
}

func (v *wizardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		cancel := v.cancel
		return v, func() tea.Msg { return wizardCompleteOutput(formatter.Dim(cancel)) }
	}

	form, cmd := v.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		v.form = f
	}

	switch v.form.State {
	case huh.StateCompleted:
		done := v.done
		return v, func() tea.Msg {
			if done == nil {
				return wizardCompleteMsg{}
			}
			return done()
		}
	case huh.StateAborted:
		cancel := v.cancel
		return v, func() tea.Msg { return wizardCompleteOutput(formatter.Dim(cancel)) }
	}

	return v, cmd
}

func (v *wizardView) View() string {
	return v.form.View()
}

func (v *wizardView) ID() ViewID    { return ViewForm }
func (v *wizardView) Title() string { return v.titleStr }
func (v *wizardView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}
