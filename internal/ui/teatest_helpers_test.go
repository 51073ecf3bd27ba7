package ui

import (
	"bytes"
	"context"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/justinpbarnett/labmon/internal/config"
	"github.com/justinpbarnett/labmon/internal/events"
	"github.com/justinpbarnett/labmon/internal/poller"
	"github.com/justinpbarnett/labmon/internal/ui/clipboard"
)

const waitDuration = 3 * time.Second

// fakeFetcher answers every fetch with whatever was last set.
type fakeFetcher struct {
	mu     sync.Mutex
	calls  int
	events []events.Event
	err    error
}

func (f *fakeFetcher) Fetch(ctx context.Context) ([]events.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.events, f.err
}

func (f *fakeFetcher) set(evs []events.Event, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events, f.err = evs, err
}

func (f *fakeFetcher) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func newTestApp(tb testing.TB) (App, *fakeFetcher) {
	tb.Helper()
	f := &fakeFetcher{}
	p := poller.New(f)
	tb.Cleanup(p.Stop)

	cfg := config.DefaultConfig()
	a := NewApp(context.Background(), &cfg, p, nil)
	a.copyText = func(string) (clipboard.Method, error) { return clipboard.MethodNative, nil }
	return a, f
}

// appAdapter wraps the App (value receiver model) so tests can inspect
// the latest model while the program runs.
type appAdapter struct {
	mu  sync.Mutex
	app App
}

func (a *appAdapter) Init() tea.Cmd {
	return a.app.Init()
}

func (a *appAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	a.mu.Lock()
	defer a.mu.Unlock()
	m, cmd := a.app.Update(msg)
	a.app = m.(App)
	return a, cmd
}

func (a *appAdapter) View() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.app.View()
}

func (a *appAdapter) snapshot() App {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.app
}

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

func waitForCalls(tb testing.TB, f *fakeFetcher, n int) {
	tb.Helper()
	deadline := time.Now().Add(waitDuration)
	for f.Calls() < n {
		if time.Now().After(deadline) {
			tb.Fatalf("timed out waiting for %d fetches, saw %d", n, f.Calls())
		}
		time.Sleep(5 * time.Millisecond)
	}
}
