package cli

import (
	"github.com/alexanderramin/focusflow/internal/timer"
	tea "github.com/charmbracelet/bubbletea"
)

// Navigation messages used by views to request view transitions.
// The appModel handles these in its Update method.

// pushViewMsg pushes a new view onto the navigation stack.
type pushViewMsg struct {
	view View
}

// popViewMsg returns to the previous view.
type popViewMsg struct{}

// cmdOutputMsg carries text to show in place of the active view until the
// next key press.
type cmdOutputMsg struct {
	output string
}

// wizardCompleteMsg is sent when a wizard form completes or is cancelled.
// The appModel pops the wizard view, then runs nextCmd.
type wizardCompleteMsg struct {
	nextCmd tea.Cmd
}

// refreshViewMsg asks every view on the stack to reload its data.
type refreshViewMsg struct{}

// timerUpdateMsg carries a snapshot published by the session timer.
type timerUpdateMsg struct {
	state timer.State
}

func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

func popView() tea.Cmd {
	return func() tea.Msg { return popViewMsg{} }
}

// outputCmd returns a tea.Cmd that sends a cmdOutputMsg.
func outputCmd(s string) tea.Cmd {
	if s == "" {
		return nil
	}
	return func() tea.Msg { return cmdOutputMsg{output: s} }
}

func wizardCompleteOutput(s string) tea.Msg {
	return wizardCompleteMsg{nextCmd: outputCmd(s)}
}

func wizardCompleteError(err error) tea.Msg {
	return wizardCompleteMsg{nextCmd: outputCmd(errorOutput(err))}
}

// waitForTimer blocks until the timer publishes a snapshot. The model
// re-arms it after every timerUpdateMsg.
func waitForTimer(updates <-chan timer.State) tea.Cmd {
	if updates == nil {
		return nil
	}
	return func() tea.Msg {
		s, ok := <-updates
		if !ok {
			return nil
		}
		return timerUpdateMsg{state: s}
	}
}

// timerFeed adapts the timer's subscriber callback to a channel the TUI
// can wait on. Only the newest snapshot matters, so a full buffer drops
// the stale one instead of blocking the publisher.
func timerFeed(t *timer.Timer) (<-chan timer.State, func()) {
	ch := make(chan timer.State, 1)
	unsubscribe := t.Subscribe(func(s timer.State) {
		for {
			select {
			case ch <- s:
				return
			default:
			}
			select {
			case <-ch:
			default:
			}
		}
	})
	return ch, unsubscribe
}
