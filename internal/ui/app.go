package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/justinpbarnett/labmon/internal/config"
	"github.com/justinpbarnett/labmon/internal/events"
	"github.com/justinpbarnett/labmon/internal/poller"
	"github.com/justinpbarnett/labmon/internal/ui/clipboard"
	"github.com/justinpbarnett/labmon/internal/ui/layout"
	"github.com/justinpbarnett/labmon/internal/ui/panels"
	"github.com/justinpbarnett/labmon/internal/ui/styles"
	"go.uber.org/zap"
)

const statusTickInterval = 120 * time.Millisecond

// App is the dashboard model. It is the only owner of the events.State:
// poller results arrive as ResultMsg and are applied in arrival order.
type App struct {
	config      *config.Config
	poller      *poller.Poller
	logger      *zap.SugaredLogger
	ctx         context.Context
	copyText    func(string) (clipboard.Method, error)
	width       int
	height      int
	layout      layout.Layout
	state       events.State
	eventList   panels.EventList
	statusBar   panels.StatusBar
	helpOverlay *panels.HelpOverlay
	keys        KeyMap
	ready       bool
	fetches     int
	lastFailed  bool
	lastUpdate  time.Time
}

// NewApp builds the dashboard around p. The poller is started by Init and
// stopped on quit; ctx bounds every fetch it makes.
func NewApp(ctx context.Context, cfg *config.Config, p *poller.Poller, logger *zap.SugaredLogger) App {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	title := cfg.UI.Title
	if title == "" {
		title = config.DefaultTitle
	}

	state := events.NewState()
	el := panels.NewEventList(title)
	el.SetState(state)

	return App{
		config:    cfg,
		poller:    p,
		logger:    logger,
		ctx:       ctx,
		copyText:  clipboard.Write,
		state:     state,
		eventList: el,
		statusBar: panels.NewStatusBar(cfg.Backend.URL),
		keys:      DefaultKeyMap(),
	}
}

// Init mounts the dashboard: the first fetch goes out immediately and the
// 5 second timer is armed.
func (a App) Init() tea.Cmd {
	a.poller.Start(a.ctx)
	return tea.Batch(
		listenForResults(a.poller.Results()),
		a.eventList.Init(),
		statusTick(),
	)
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.layout = layout.Calculate(msg.Width, msg.Height)
		a.propagateSizes()
		return a, nil

	case ResultMsg:
		a.applyResult(msg.Result)
		return a, listenForResults(a.poller.Results())

	case statusTickMsg:
		a.statusBar.Tick()
		a.syncStats()
		return a, statusTick()

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.eventList, cmd = a.eventList.Update(msg)
		return a, cmd

	case CloseModalMsg:
		a.helpOverlay = nil
		return a, nil

	case YankMsg:
		text := msg.Text
		return a, func() tea.Msg {
			method, err := a.copyText(text)
			return yankDoneMsg{method: method, err: err}
		}

	case yankDoneMsg:
		if msg.err != nil {
			a.logger.Warnw("clipboard write failed", "error", msg.err)
			return a, a.flash("Copy failed: "+msg.err.Error(), panels.FlashError)
		}
		a.logger.Debugw("event copied", "method", string(msg.method))
		return a, a.flash("Copied to clipboard", panels.FlashSuccess)

	case ClearFlashMsg:
		a.statusBar.ExpireFlash()
		return a, nil

	case tea.KeyMsg:
		if key.Matches(msg, a.keys.Quit) && (msg.String() == "ctrl+c" || a.helpOverlay == nil) {
			a.poller.Stop()
			return a, tea.Quit
		}
		if a.helpOverlay != nil {
			var cmd tea.Cmd
			*a.helpOverlay, cmd = a.helpOverlay.Update(msg)
			return a, cmd
		}

		switch {
		case key.Matches(msg, a.keys.Help):
			a.helpOverlay = panels.NewHelpOverlay()
			return a, nil
		case key.Matches(msg, a.keys.Refresh):
			a.poller.Refresh()
			a.logger.Debugw("manual refresh")
			cmd := a.flash("Refreshing", panels.FlashInfo)
			a.syncStats()
			return a, cmd
		}

		var cmd tea.Cmd
		a.eventList, cmd = a.eventList.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a App) View() string {
	if !a.ready {
		return lipgloss.Place(a.width, a.height,
			lipgloss.Center, lipgloss.Center, "Loading...")
	}

	if a.layout.TooSmall {
		msg := fmt.Sprintf("Terminal too small (%d×%d)\nMinimum: %d×%d",
			a.width, a.height, layout.MinWidth, layout.MinHeight)
		return lipgloss.Place(a.width, a.height,
			lipgloss.Center, lipgloss.Center, msg)
	}

	full := lipgloss.JoinVertical(lipgloss.Left, a.eventList.View(), a.statusBar.View())

	if a.helpOverlay != nil {
		full = lipgloss.Place(a.width, a.height,
			lipgloss.Center, lipgloss.Center, a.helpOverlay.View(),
			lipgloss.WithWhitespaceChars(" "),
			lipgloss.WithWhitespaceForeground(styles.TextDim),
		)
	}
	return full
}

// State returns the current view state.
func (a App) State() events.State {
	return a.state
}

func (a *App) applyResult(r poller.Result) {
	a.state.Apply(r.Events, r.Err)
	a.fetches++
	a.lastFailed = r.Err != nil
	if r.Err == nil {
		a.lastUpdate = r.Finished
	}
	a.eventList.SetState(a.state)
	a.syncStats()

	fields := []any{
		"seq", r.Seq,
		"request_id", r.RequestID,
		"trigger", string(r.Trigger),
		"duration", r.Finished.Sub(r.Started).String(),
	}
	if r.Err != nil {
		a.logger.Warnw("fetch failed", append(fields, "error", r.Err)...)
		return
	}
	a.logger.Debugw("fetch applied", append(fields, "events", len(r.Events))...)
}

func (a *App) syncStats() {
	a.statusBar.SetStats(panels.Stats{
		Events:     len(a.state.Events),
		Fetches:    a.fetches,
		InFlight:   a.poller.InFlight(),
		LastFailed: a.lastFailed,
		LastUpdate: a.lastUpdate,
	})
}

func (a *App) flash(msg string, level panels.FlashLevel) tea.Cmd {
	a.statusBar.SetFlashWithLevel(msg, level)
	return tea.Tick(panels.FlashDuration(), func(time.Time) tea.Msg {
		return ClearFlashMsg{}
	})
}

func (a *App) propagateSizes() {
	l := a.layout
	a.eventList.SetSize(l.EventsWidth, l.EventsHeight)
	a.statusBar.SetSize(l.StatusBarWidth)
}

func listenForResults(ch <-chan poller.Result) tea.Cmd {
	return func() tea.Msg {
		return ResultMsg{Result: <-ch}
	}
}

func statusTick() tea.Cmd {
	return tea.Tick(statusTickInterval, func(time.Time) tea.Msg {
		return statusTickMsg{}
	})
}
