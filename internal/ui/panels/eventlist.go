package panels

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/justinpbarnett/labmon/internal/events"
	"github.com/justinpbarnett/labmon/internal/ui/border"
	"github.com/justinpbarnett/labmon/internal/ui/styles"
	"github.com/justinpbarnett/labmon/internal/ui/text"
)

const (
	LoadingText = "Loading events..."
	EmptyText   = "No events recorded yet"
	ListHeading = "Recent Activity"
	ErrorPrefix = "Error: "

	maxTimeColW = 24
	ggWindow    = 500 * time.Millisecond
)

// ViewKind is which of the four mutually exclusive screens a State maps to.
type ViewKind int

const (
	ViewLoading ViewKind = iota
	ViewError
	ViewEmpty
	ViewList
)

func (k ViewKind) String() string {
	switch k {
	case ViewLoading:
		return "loading"
	case ViewError:
		return "error"
	case ViewEmpty:
		return "empty"
	default:
		return "list"
	}
}

// Classify picks the screen for s. Loading wins over everything, then an
// error, then the empty state; only then is the list shown.
func Classify(s events.State) ViewKind {
	switch {
	case s.Loading:
		return ViewLoading
	case s.HasError():
		return ViewError
	case len(s.Events) == 0:
		return ViewEmpty
	default:
		return ViewList
	}
}

// RenderEvents is the unstyled projection of s: the loading text, the error
// line, the empty-state text, or the heading followed by one
// "<time> <message>" row per event in backend order.
func RenderEvents(s events.State) string {
	switch Classify(s) {
	case ViewLoading:
		return LoadingText
	case ViewError:
		return ErrorPrefix + text.OneLine(s.Err)
	case ViewEmpty:
		return EmptyText
	}
	var b strings.Builder
	b.WriteString(ListHeading)
	timeW := timeColumnWidth(s.Events)
	for _, ev := range s.Events {
		b.WriteString("\n")
		b.WriteString(text.PadRight(text.OneLine(ev.Time), timeW))
		b.WriteString("  ")
		b.WriteString(text.OneLine(ev.Message))
	}
	return b.String()
}

// EventList renders the dashboard's single panel from an events.State.
// The row cursor is positional: after a refresh it stays on the same index,
// not the same event.
type EventList struct {
	state    events.State
	title    string
	selected int
	offset   int
	width    int
	height   int
	lastKeyG bool
	lastKeyT time.Time
	spinner  spinner.Model
}

func NewEventList(title string) EventList {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.LoadingStyle
	return EventList{
		state:   events.NewState(),
		title:   title,
		spinner: sp,
	}
}

// Init starts the loading spinner.
func (e EventList) Init() tea.Cmd {
	return e.spinner.Tick
}

func (e EventList) Update(msg tea.Msg) (EventList, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		// Let the spinner die once loading is over.
		if !e.state.Loading {
			return e, nil
		}
		var cmd tea.Cmd
		e.spinner, cmd = e.spinner.Update(msg)
		return e, cmd
	case tea.KeyMsg:
		return e.updateKey(msg)
	}
	return e, nil
}

func (e EventList) updateKey(msg tea.KeyMsg) (EventList, tea.Cmd) {
	n := len(e.state.Events)
	switch msg.String() {
	case "j", "down":
		if e.selected < n-1 {
			e.selected++
			e.scrollToSelection()
		}
		e.lastKeyG = false
	case "k", "up":
		if e.selected > 0 {
			e.selected--
			e.scrollToSelection()
		}
		e.lastKeyG = false
	case "G", "end":
		e.selected = max(n-1, 0)
		e.scrollToSelection()
		e.lastKeyG = false
	case "home":
		e.selected = 0
		e.scrollToSelection()
		e.lastKeyG = false
	case "g":
		if e.lastKeyG && time.Since(e.lastKeyT) < ggWindow {
			e.selected = 0
			e.scrollToSelection()
			e.lastKeyG = false
		} else {
			e.lastKeyG = true
			e.lastKeyT = time.Now()
		}
	case "y":
		e.lastKeyG = false
		if ev, ok := e.SelectedEvent(); ok && Classify(e.state) == ViewList {
			line := ev.Time + " " + ev.Message
			return e, func() tea.Msg { return YankMsg{Text: line} }
		}
	default:
		e.lastKeyG = false
	}
	return e, nil
}

func (e EventList) View() string {
	keybinds := []border.Keybind{
		{Key: "r", Label: "efresh"},
		{Key: "y", Label: "ank"},
		{Key: "?", Label: " help"},
		{Key: "q", Label: "uit"},
	}
	content := e.renderContent(max(e.width-2, 0), max(e.height-2, 0))
	return border.RenderPanel(e.title, content, keybinds, e.width, e.height, true)
}

func (e EventList) renderContent(width, height int) string {
	switch Classify(e.state) {
	case ViewLoading:
		return e.spinner.View() + " " + styles.LoadingStyle.Render(LoadingText)
	case ViewError:
		return styles.ErrorStyle.Render(ErrorPrefix + text.OneLine(e.state.Err))
	case ViewEmpty:
		return styles.TextSecondaryStyle.Render(EmptyText)
	}

	evs := e.state.Events
	var b strings.Builder

	heading := styles.HeadingStyle.Render(ListHeading)
	rows := e.visibleRows(height)
	if len(evs) > rows {
		heading += styles.TextDimStyle.Render(fmt.Sprintf("  %d/%d", e.selected+1, len(evs)))
	}
	b.WriteString(heading)

	timeW := timeColumnWidth(evs)
	end := min(e.offset+rows, len(evs))
	for i := e.offset; i < end; i++ {
		ev := evs[i]
		ts := text.PadRight(text.OneLine(ev.Time), timeW)
		msg := text.OneLine(ev.Message)

		b.WriteString("\n")
		if i == e.selected {
			b.WriteString(styles.SelectedRowStyle.Width(width).Render(text.Truncate(ts+"  "+msg, width)))
			continue
		}
		b.WriteString(styles.EventTimeStyle.Render(ts) + "  " + styles.TextPrimaryStyle.Render(msg))
	}
	return b.String()
}

func timeColumnWidth(evs []events.Event) int {
	w := 0
	for _, ev := range evs {
		w = max(w, ansi.StringWidth(text.OneLine(ev.Time)))
	}
	return min(w, maxTimeColW)
}

// visibleRows is the number of event rows that fit under the heading.
func (e EventList) visibleRows(innerHeight int) int {
	return max(innerHeight-1, 1)
}

func (e *EventList) scrollToSelection() {
	rows := e.visibleRows(e.height - 2)
	if e.selected < e.offset {
		e.offset = e.selected
	}
	if e.selected >= e.offset+rows {
		e.offset = e.selected - rows + 1
	}
	maxOffset := max(len(e.state.Events)-rows, 0)
	e.offset = min(max(e.offset, 0), maxOffset)
}

func (e *EventList) clampSelection() {
	n := len(e.state.Events)
	if n == 0 {
		e.selected, e.offset = 0, 0
		return
	}
	e.selected = min(max(e.selected, 0), n-1)
	e.scrollToSelection()
}

// SetState replaces the rendered state. The cursor keeps its index.
func (e *EventList) SetState(s events.State) {
	e.state = s
	e.clampSelection()
}

func (e EventList) State() events.State {
	return e.state
}

func (e *EventList) SetSize(w, h int) {
	e.width = w
	e.height = h
	e.clampSelection()
}

func (e EventList) SelectedEvent() (events.Event, bool) {
	if e.selected < 0 || e.selected >= len(e.state.Events) {
		return events.Event{}, false
	}
	return e.state.Events[e.selected], true
}
