package cli

import (
	"testing"

	"github.com/alexanderramin/focusflow/internal/teatest"
)

// TestDriver wraps teatest.Driver with access to appModel internals
// (view stack, transient output) that the generic driver cannot see.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver builds the appModel without a timer feed, sets the
// terminal size and drains Init.
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	m := newAppModel(app, nil)
	d := teatest.New(t, m, teatest.WithSize(120, 40))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// ViewStackLen returns the number of views on the stack.
func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().viewStack)
}

// LastOutput returns the transient output with styling removed.
func (d *TestDriver) LastOutput() string {
	return stripANSI(d.appModel().lastOutput)
}

// Screen returns the rendered frame with styling removed.
func (d *TestDriver) Screen() string {
	return stripANSI(d.View())
}

// SharedState exposes the state shared by every view.
func (d *TestDriver) SharedState() *SharedState {
	return d.appModel().state
}

// IsQuitting reports whether the model asked to quit.
func (d *TestDriver) IsQuitting() bool {
	return d.Quitting || d.appModel().quitting
}
