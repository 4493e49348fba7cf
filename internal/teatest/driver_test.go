package teatest

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

type pingMsg struct{}
type noiseMsg struct{}

// echoModel records the keys and messages it sees.
type echoModel struct {
	seen  []string
	block chan struct{}
}

func (m echoModel) Init() tea.Cmd {
	return tea.Batch(
		func() tea.Msg { return pingMsg{} },
		func() tea.Msg { <-m.block; return noiseMsg{} },
	)
}

func (m echoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case pingMsg:
		m.seen = append(m.seen, "ping")
	case noiseMsg:
		m.seen = append(m.seen, "noise")
	case tea.KeyMsg:
		m.seen = append(m.seen, msg.String())
		if msg.String() == "q" {
			return m, tea.Quit
		}
		if msg.Type == tea.KeyEnter {
			return m, func() tea.Msg { return noiseMsg{} }
		}
	case tea.WindowSizeMsg:
		m.seen = append(m.seen, "size")
	}
	return m, nil
}

func (m echoModel) View() string { return strings.Join(m.seen, ",") }

func TestDriver_DrainsAndAbandonsBlockingCmds(t *testing.T) {
	d := New(t, echoModel{block: make(chan struct{})}, WithSize(80, 24), WithCmdTimeout(5*time.Millisecond))
	d.DrainInit()

	assert.Equal(t, "size,ping", d.View())
}

func TestDriver_Keys(t *testing.T) {
	d := New(t, echoModel{block: make(chan struct{})})
	d.Type("ab")
	d.PressSpace()
	d.PressEnter()

	assert.Equal(t, "a,b, ,enter,noise", d.View())
	assert.True(t, d.ViewContains("noise"))
}

func TestDriver_Skip(t *testing.T) {
	d := New(t, echoModel{block: make(chan struct{})}, WithSkip(func(msg tea.Msg) bool {
		_, ok := msg.(noiseMsg)
		return ok
	}))
	d.PressEnter()

	assert.Equal(t, "enter", d.View())
}

func TestDriver_Quit(t *testing.T) {
	d := New(t, echoModel{block: make(chan struct{})})
	d.PressKey('q')
	assert.True(t, d.Quitting)

	d.PressKey('x')
	assert.Equal(t, "q", d.View(), "input after quit is ignored")
}
