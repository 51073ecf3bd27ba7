package layout

// Layout holds the computed cell dimensions of the dashboard.
type Layout struct {
	TermWidth  int
	TermHeight int
	TooSmall   bool

	EventsWidth  int
	EventsHeight int

	StatusBarWidth int
}

const (
	MinWidth  = 40
	MinHeight = 8

	statusBarHeight = 1
)

// Calculate splits the terminal into the event panel and a one-row status
// bar. Returns Layout with TooSmall=true if under minimum.
func Calculate(termWidth, termHeight int) Layout {
	l := Layout{
		TermWidth:  termWidth,
		TermHeight: termHeight,
	}

	if termWidth < MinWidth || termHeight < MinHeight {
		l.TooSmall = true
		return l
	}

	l.EventsWidth = termWidth
	l.EventsHeight = termHeight - statusBarHeight
	l.StatusBarWidth = termWidth
	return l
}
