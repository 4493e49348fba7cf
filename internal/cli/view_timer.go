package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/focusflow/internal/cli/formatter"
	"github.com/alexanderramin/focusflow/internal/domain"
	"github.com/alexanderramin/focusflow/internal/service"
	"github.com/alexanderramin/focusflow/internal/timer"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const recentLimit = 5

type recentLoadedMsg struct {
	activities []*domain.Activity
	err        error
}

// timerView is the home view: the live clock plus the last few sessions.
type timerView struct {
	state  *SharedState
	recent []*domain.Activity
	err    error
}

func newTimerView(state *SharedState) *timerView {
	return &timerView{state: state}
}

func (v *timerView) Init() tea.Cmd {
	return v.loadRecent()
}

func (v *timerView) loadRecent() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		acts, err := app.Activities.ListFeed(v.state.ctx(), service.FeedQuery{
			IncludePrivate: true,
			Limit:          recentLimit,
		})
		return recentLoadedMsg{activities: acts, err: err}
	}
}

func (v *timerView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case recentLoadedMsg:
		v.recent, v.err = msg.activities, msg.err
		return v, nil
	case refreshViewMsg:
		return v, v.loadRecent()
	case tea.KeyMsg:
		return v, v.handleKey(msg)
	}
	return v, nil
}

func (v *timerView) handleKey(msg tea.KeyMsg) tea.Cmd {
	t := v.state.App.Timer
	phase := t.State().Phase()

	switch msg.String() {
	case "n", "enter":
		if phase == timer.PhaseIdle {
			return pushView(newStartWizard(v.state))
		}
	case "p":
		t.Pause()
	case "r":
		t.Resume()
	case " ":
		switch phase {
		case timer.PhaseRunning:
			t.Pause()
		case timer.PhasePaused:
			t.Resume()
		}
	case "x":
		if phase != timer.PhaseIdle {
			t.Reset()
			return outputCmd(formatter.Dim("Session reset."))
		}
	case "s":
		if res, ok := t.Stop(); ok {
			return pushView(newSaveWizard(v.state, res))
		}
	case "f":
		return pushView(newFeedView(v.state))
	case "i":
		return statsOutputCmd(v.state)
	}
	return nil
}

func statsOutputCmd(state *SharedState) tea.Cmd {
	app := state.App
	return func() tea.Msg {
		s, err := app.Stats.ProfileStats(state.ctx(), app.now().Now())
		if err != nil {
			return cmdOutputMsg{output: errorOutput(err)}
		}
		return cmdOutputMsg{output: formatter.FormatProfileStats(s)}
	}
}

func (v *timerView) View() string {
	s := v.state.App.Timer.State()

	var b strings.Builder
	b.WriteString("\n")

	category := formatter.Dim("No session")
	if s.Phase() != timer.PhaseIdle {
		category = formatter.CategoryBadge(s.Category)
	}
	b.WriteString(fmt.Sprintf("  %s  %s\n\n", formatter.PhasePill(s.Phase()), category))

	clock := formatter.StyleClock
	if s.Phase() == timer.PhasePaused {
		clock = clock.Foreground(formatter.ColorDim)
	}
	b.WriteString("  " + clock.Render(formatter.LiveClock(s.ElapsedSeconds)) + "\n\n")

	switch {
	case v.err != nil:
		b.WriteString("  " + errorOutput(v.err) + "\n")
	case len(v.recent) == 0:
		b.WriteString("  " + formatter.Dim("No sessions yet. Press n to start one.") + "\n")
	default:
		b.WriteString(formatter.Header("Recent") + "\n")
		b.WriteString(formatter.FormatActivityList(v.recent, v.state.App.now().Now()))
	}
	return b.String()
}

func (v *timerView) ID() ViewID    { return ViewTimer }
func (v *timerView) Title() string { return "" }

func (v *timerView) ShortHelp() []key.Binding {
	var keys []key.Binding
	switch v.state.App.Timer.State().Phase() {
	case timer.PhaseIdle:
		keys = append(keys, key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "start")))
	case timer.PhaseRunning:
		keys = append(keys,
			key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
			key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "stop")),
			key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "reset")),
		)
	case timer.PhasePaused:
		keys = append(keys,
			key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "resume")),
			key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "stop")),
			key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "reset")),
		)
	}
	return append(keys,
		key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "feed")),
		key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "stats")),
	)
}
