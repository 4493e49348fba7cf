package cli

import (
	"fmt"

	"github.com/alexanderramin/focusflow/internal/cli/formatter"
	"github.com/alexanderramin/focusflow/internal/domain"
	"github.com/alexanderramin/focusflow/internal/service"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type feedLoadedMsg struct {
	activities []*domain.Activity
	offset     int
	err        error
}

// feedView pages through saved activities, newest first.
type feedView struct {
	state      *SharedState
	activities []*domain.Activity
	offset     int
	cursor     int
	private    bool
	err        error
}

func newFeedView(state *SharedState) *feedView {
	return &feedView{state: state, private: true}
}

func (v *feedView) pageSize() int {
	if cfg := v.state.App.Config; cfg != nil && cfg.FeedPageSize > 0 {
		return cfg.FeedPageSize
	}
	return 20
}

func (v *feedView) Init() tea.Cmd {
	return v.load(v.offset)
}

func (v *feedView) load(offset int) tea.Cmd {
	app := v.state.App
	q := service.FeedQuery{IncludePrivate: v.private, Limit: v.pageSize(), Offset: offset}
	return func() tea.Msg {
		acts, err := app.Activities.ListFeed(v.state.ctx(), q)
		return feedLoadedMsg{activities: acts, offset: offset, err: err}
	}
}

func (v *feedView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case feedLoadedMsg:
		if msg.err == nil && len(msg.activities) == 0 && msg.offset > 0 {
			return v, nil // past the last page
		}
		v.activities, v.offset, v.err = msg.activities, msg.offset, msg.err
		v.cursor = min(v.cursor, max(len(v.activities)-1, 0))
		return v, nil

	case refreshViewMsg:
		return v, v.load(v.offset)

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(v.activities)-1 {
				v.cursor++
			}
		case "right", "l":
			if len(v.activities) == v.pageSize() {
				v.cursor = 0
				return v, v.load(v.offset + v.pageSize())
			}
		case "left", "h":
			if v.offset > 0 {
				v.cursor = 0
				return v, v.load(max(v.offset-v.pageSize(), 0))
			}
		case "v":
			v.private = !v.private
			v.cursor = 0
			return v, v.load(0)
		case "enter":
			if a := v.selected(); a != nil {
				return v, outputCmd(formatter.FormatActivityDetail(a, v.state.App.now().Now()))
			}
		case "S":
			if a := v.selected(); a != nil {
				return v, v.share(a.ID)
			}
		}
	}
	return v, nil
}

func (v *feedView) selected() *domain.Activity {
	if v.cursor < 0 || v.cursor >= len(v.activities) {
		return nil
	}
	return v.activities[v.cursor]
}

func (v *feedView) share(id string) tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		a, err := app.Activities.Share(v.state.ctx(), id)
		if err != nil {
			return cmdOutputMsg{output: errorOutput(err)}
		}
		return cmdOutputMsg{output: formatter.StyleGreen.Render(
			fmt.Sprintf("Shared %s (%d shares).", formatter.TruncID(a.ID), a.ShareCount))}
	}
}

func (v *feedView) View() string {
	if v.err != nil {
		return "\n  " + errorOutput(v.err)
	}
	if len(v.activities) == 0 {
		return "\n  " + formatter.Dim("Nothing logged yet.")
	}

	scope := "public"
	if v.private {
		scope = "all"
	}
	head := fmt.Sprintf("%s %s", formatter.Header("Feed"),
		formatter.Dim(fmt.Sprintf("(%s, %d-%d)", scope, v.offset+1, v.offset+len(v.activities))))

	var out string
	now := v.state.App.now().Now()
	for i, a := range v.activities {
		marker := "  "
		if i == v.cursor {
			marker = formatter.StyleHeader.Render("› ")
		}
		out += fmt.Sprintf("%s%s  %s  %s  %s\n", marker,
			formatter.CategoryBadge(a.Category),
			formatter.FormatMinutes(a.DurationMinutes),
			formatter.VisibilityPill(a.Visibility),
			formatter.Dim(formatter.HumanTimestampFrom(a.CreatedAt, now)))
	}
	return head + "\n" + out
}

func (v *feedView) ID() ViewID    { return ViewFeed }
func (v *feedView) Title() string { return "Feed" }
func (v *feedView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("j", "k"), key.WithHelp("j/k", "move")),
		key.NewBinding(key.WithKeys("h", "l"), key.WithHelp("h/l", "page")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		key.NewBinding(key.WithKeys("S"), key.WithHelp("S", "share")),
		key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "public/all")),
	}
}
