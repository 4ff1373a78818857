// Package teatest drives bubbletea models synchronously in tests.
//
// A Driver calls Update directly and runs the returned Cmds inline, so the
// week view and forms can be asserted on without a terminal or a
// tea.Program goroutine.
package teatest

import (
	"fmt"
	"regexp"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// MaxDrainDepth bounds how many chained Cmds one Send may run.
const MaxDrainDepth = 100

// cmdTimeout skips Cmds that wait on timers, such as cursor blinks.
const cmdTimeout = 10 * time.Millisecond

var ansi = regexp.MustCompile(`\x1b\[[0-9;?]*[a-zA-Z]`)

// Driver holds the model under test.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting is set once a Cmd returns tea.QuitMsg.
	Quitting bool
}

type Option func(*Driver)

// WithSize sends a WindowSizeMsg before Init runs.
func WithSize(w, h int) Option {
	return func(d *Driver) {
		d.Resize(w, h)
	}
}

// New wraps model, applies opts and drains model.Init().
func New(t *testing.T, model tea.Model, opts ...Option) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model}
	for _, opt := range opts {
		opt(d)
	}
	d.drain(d.Model.Init(), 0)
	return d
}

// Send dispatches msg and drains the resulting Cmds. Messages sent after
// quitting are dropped.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	updated, cmd := d.Model.Update(msg)
	d.Model = updated
	d.drain(cmd, 0)
}

func (d *Driver) Resize(w, h int) {
	d.T.Helper()
	d.Send(tea.WindowSizeMsg{Width: w, Height: h})
}

var namedKeys = map[string]tea.KeyType{
	"enter":  tea.KeyEnter,
	"esc":    tea.KeyEsc,
	"ctrl+c": tea.KeyCtrlC,
	"up":     tea.KeyUp,
	"down":   tea.KeyDown,
	"left":   tea.KeyLeft,
	"right":  tea.KeyRight,
	"pgdown": tea.KeyPgDown,
	"pgup":   tea.KeyPgUp,
	"tab":    tea.KeyTab,
}

// Press sends one key, named the way tea.KeyMsg.String() prints it
// ("enter", "ctrl+c", "n").
func (d *Driver) Press(key string) {
	d.T.Helper()
	if kt, ok := namedKeys[key]; ok {
		d.Send(tea.KeyMsg{Type: kt})
		return
	}
	d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
}

// Type sends s one rune at a time.
func (d *Driver) Type(s string) {
	d.T.Helper()
	for _, r := range s {
		d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// View returns the rendered model with ANSI styling removed.
func (d *Driver) View() string {
	return ansi.ReplaceAllString(d.Model.View(), "")
}

// ViewContains fails the test unless every want appears in View.
func (d *Driver) ViewContains(want ...string) bool {
	d.T.Helper()
	view := d.View()
	ok := true
	for _, w := range want {
		if !strings.Contains(view, w) {
			d.T.Errorf("view does not contain %q:\n%s", w, view)
			ok = false
		}
	}
	return ok
}

func (d *Driver) drain(cmd tea.Cmd, depth int) {
	if cmd == nil {
		return
	}
	if depth >= MaxDrainDepth {
		d.T.Logf("teatest: drain depth limit (%d) reached", MaxDrainDepth)
		return
	}

	msg := runCmd(cmd)
	if msg == nil || isBlink(msg) {
		return
	}
	switch msg := msg.(type) {
	case tea.BatchMsg:
		for _, sub := range msg {
			d.drain(sub, depth+1)
		}
		return
	case tea.QuitMsg:
		d.Quitting = true
		return
	}

	updated, next := d.Model.Update(msg)
	d.Model = updated
	d.drain(next, depth+1)
}

// runCmd returns nil when cmd does not finish within cmdTimeout.
func runCmd(cmd tea.Cmd) tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(cmdTimeout):
		return nil
	}
}

func isBlink(msg tea.Msg) bool {
	return strings.Contains(strings.ToLower(fmt.Sprintf("%T", msg)), "blink")
}
