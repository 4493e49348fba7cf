package cli

import (
	"strings"

	"github.com/alexanderramin/focusflow/internal/cli/formatter"
	"github.com/alexanderramin/focusflow/internal/timer"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// appModel is the root bubbletea Model for the tracker. It manages a view
// stack over the live timer view and redraws on every timer snapshot.
type appModel struct {
	state     *SharedState
	viewStack []View
	updates   <-chan timer.State
	quitting  bool

	// Transient output, displayed in place of the active view until the
	// next key press.
	lastOutput   string
	outputVP     viewport.Model
	outputActive bool
}

// newAppModel builds the model. updates may be nil, in which case the
// view only refreshes on input.
func newAppModel(app *App, updates <-chan timer.State) appModel {
	state := newSharedState(app)

	vp := viewport.New(0, 0)
	vp.KeyMap = outputViewportKeyMap()

	return appModel{
		state:     state,
		viewStack: []View{newTimerView(state)},
		updates:   updates,
		outputVP:  vp,
	}
}

func (m *appModel) activeView() View {
	if len(m.viewStack) == 0 {
		return nil
	}
	return m.viewStack[len(m.viewStack)-1]
}

func (m *appModel) setActiveView(v View) {
	if len(m.viewStack) > 0 {
		m.viewStack[len(m.viewStack)-1] = v
	}
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	cmds := []tea.Cmd{waitForTimer(m.updates)}
	if v := m.activeView(); v != nil {
		cmds = append(cmds, v.Init())
	}
	return tea.Batch(cmds...)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		if m.outputActive {
			m.outputVP.Width = msg.Width
			m.outputVP.Height = m.state.ContentHeight()
		}
		return m.forward(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case timerUpdateMsg:
		// The views read the timer directly; the message only triggers a
		// redraw. Re-arm for the next snapshot.
		return m, waitForTimer(m.updates)

	case pushViewMsg:
		m.clearOutput()
		m.viewStack = append(m.viewStack, msg.view)
		m.state.App.logger().Debug("view_push", "view", msg.view.ID().String(), "depth", len(m.viewStack))
		return m, msg.view.Init()

	case popViewMsg:
		if len(m.viewStack) > 1 {
			popped := m.activeView()
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
			m.state.App.logger().Debug("view_pop", "view", popped.ID().String(), "depth", len(m.viewStack))
		}
		return m, nil

	case refreshViewMsg:
		var cmds []tea.Cmd
		for i, v := range m.viewStack {
			updated, cmd := v.Update(msg)
			m.viewStack[i] = updated.(View)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	case cmdOutputMsg:
		m.showOutput(msg.output)
		return m, nil

	case wizardCompleteMsg:
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		m.clearOutput()
		return m, tea.Batch(msg.nextCmd, func() tea.Msg { return refreshViewMsg{} })
	}

	return m.forward(msg)
}

func (m appModel) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}
	return m, nil
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	// Forms own every key except Ctrl+C.
	if v := m.activeView(); v != nil && v.ID() == ViewForm {
		return m.forward(msg)
	}

	if m.outputActive {
		if isOutputScrollKey(msg) {
			var cmd tea.Cmd
			m.outputVP, cmd = m.outputVP.Update(msg)
			return m, cmd
		}
		m.clearOutput()
		if msg.Type == tea.KeyEsc {
			return m, nil
		}
	}

	switch {
	case msg.String() == "q":
		if m.state.App.Timer.State().Phase() != timer.PhaseIdle {
			return m, outputCmd(formatter.StyleYellow.Render("A session is in progress. Stop (s) or reset (x) it before quitting."))
		}
		m.quitting = true
		return m, tea.Quit

	case msg.String() == "?":
		return m, outputCmd(m.renderKeyHelp())

	case msg.Type == tea.KeyEsc:
		if len(m.viewStack) > 1 {
			popped := m.activeView()
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
			m.state.App.logger().Debug("view_pop", "view", popped.ID().String(), "depth", len(m.viewStack))
		}
		return m, nil
	}

	return m.forward(msg)
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{m.renderHeader()}

	switch {
	case m.outputActive && m.state.Height > 0:
		sections = append(sections, m.outputVP.View())
	case m.lastOutput != "":
		sections = append(sections, m.lastOutput)
	default:
		if v := m.activeView(); v != nil {
			sections = append(sections, v.View())
		}
	}

	sections = append(sections, m.renderStatusBar())
	result := strings.Join(sections, "\n")

	// Pad to terminal height so the alt-screen renderer does not leave
	// stale lines behind.
	if m.state.Height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.state.Height {
			result += strings.Repeat("\n", m.state.Height-lines)
		}
	}
	return result
}

// ── rendering helpers ────────────────────────────────────────────────────────

func (m *appModel) renderHeader() string {
	title := formatter.StylePurple.Render("focusflow")

	var crumbs []string
	for _, v := range m.viewStack {
		if t := v.Title(); t != "" {
			crumbs = append(crumbs, t)
		}
	}
	header := title
	if len(crumbs) > 0 {
		header += " " + formatter.Dim("›") + " " + formatter.Dim(strings.Join(crumbs, " › "))
	}

	// Keep the session visible while another view is on top.
	if s := m.state.App.Timer.State(); len(m.viewStack) > 1 && s.Phase() != timer.PhaseIdle {
		header += "  " + formatter.FormatTimerState(s)
	}

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return header + "\n" + sep
}

func (m *appModel) renderStatusBar() string {
	var hints []string

	if m.outputActive {
		if m.outputVP.TotalLineCount() > m.outputVP.Height && m.outputVP.Height > 0 {
			hints = append(hints, formatter.Dim("↑↓ pgup/pgdn: scroll"))
		}
		hints = append(hints, formatter.Dim("any key: dismiss"))
	} else if v := m.activeView(); v != nil {
		for _, b := range v.ShortHelp() {
			hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
		}
		if v.ID() != ViewForm {
			if len(m.viewStack) > 1 {
				hints = append(hints, formatter.Dim("esc: back"))
			}
			hints = append(hints, formatter.Dim("q: quit"))
		}
	}

	sepStyle := lipgloss.NewStyle().Foreground(formatter.ColorDim)
	sep := sepStyle.Render(strings.Repeat("─", max(m.state.Width, 20)))
	return sep + "\n" + strings.Join(hints, "  ")
}

func (m *appModel) renderKeyHelp() string {
	rows := [][]string{
		{"n / enter", "start a session"},
		{"p / r / space", "pause, resume"},
		{"s", "stop and save"},
		{"x", "reset without saving"},
		{"f", "activity feed"},
		{"i", "profile stats"},
		{"esc", "back"},
		{"q", "quit (when idle)"},
		{"ctrl+c", "quit now"},
	}
	return formatter.RenderBox("Keys", formatter.RenderTable(formatter.Cols("Key", "Action"), rows))
}

func (m *appModel) showOutput(s string) {
	m.lastOutput = s
	m.outputActive = true
	m.outputVP.SetContent(s)
	m.outputVP.Width = m.state.Width
	m.outputVP.Height = m.state.ContentHeight()
	m.outputVP.GotoTop()
}

func (m *appModel) clearOutput() {
	m.lastOutput = ""
	m.outputActive = false
}

// outputViewportKeyMap only scrolls on arrow and page keys so letters stay
// free to dismiss the output.
func outputViewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		Up:           key.NewBinding(key.WithKeys("up")),
		Down:         key.NewBinding(key.WithKeys("down")),
	}
}

func isOutputScrollKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyUp, tea.KeyDown, tea.KeyPgUp, tea.KeyPgDown,
		tea.KeyCtrlU, tea.KeyCtrlD:
		return true
	}
	return false
}
