package panels

import (
	"bytes"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
)

// panelAdapter wraps panel types that use typed Update signatures into
// a proper tea.Model so they can be used with teatest.
type panelAdapter struct {
	view     func() string
	updateFn func(tea.Msg) tea.Cmd
}

func (a panelAdapter) Init() tea.Cmd                           { return nil }
func (a panelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) { return a, a.updateFn(msg) }
func (a panelAdapter) View() string                            { return a.view() }

// stateMsg lets a test push a new events.State through the program loop.
type stateMsg struct{ apply func(*EventList) }

func wrapEventList(el *EventList) tea.Model {
	return panelAdapter{
		view: func() string { return el.View() },
		updateFn: func(msg tea.Msg) tea.Cmd {
			if m, ok := msg.(stateMsg); ok {
				m.apply(el)
				return nil
			}
			newEL, cmd := el.Update(msg)
			*el = newEL
			return cmd
		},
	}
}

// StatusBar has no Update method, so the adapter uses a no-op.
func wrapStatusBar(sb *StatusBar) tea.Model {
	return panelAdapter{
		view:     func() string { return sb.View() },
		updateFn: func(tea.Msg) tea.Cmd { return nil },
	}
}

func wrapHelpOverlay(h *HelpOverlay) tea.Model {
	return panelAdapter{
		view: func() string { return h.View() },
		updateFn: func(msg tea.Msg) tea.Cmd {
			newH, cmd := h.Update(msg)
			*h = newH
			return cmd
		},
	}
}

// waitDuration is the standard timeout for WaitFor calls in tests.
const waitDuration = 3 * time.Second

// waitForContains waits until the output contains the given substring.
func waitForContains(tb testing.TB, tm *teatest.TestModel, substr string) {
	tb.Helper()
	teatest.WaitFor(
		tb,
		tm.Output(),
		func(bts []byte) bool { return bytes.Contains(bts, []byte(substr)) },
		teatest.WithDuration(waitDuration),
	)
}

// waitForAll waits for a single frame stream that contains every substring.
// WaitFor consumes the output it reads, so checks against one unchanged frame
// must share a predicate rather than follow each other.
func waitForAll(tb testing.TB, tm *teatest.TestModel, substrs ...string) {
	tb.Helper()
	teatest.WaitFor(
		tb,
		tm.Output(),
		func(bts []byte) bool {
			for _, s := range substrs {
				if !bytes.Contains(bts, []byte(s)) {
					return false
				}
			}
			return true
		},
		teatest.WithDuration(waitDuration),
	)
}
