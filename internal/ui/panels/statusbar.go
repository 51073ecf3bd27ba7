package panels

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/justinpbarnett/labmon/internal/ui/styles"
	"github.com/justinpbarnett/labmon/internal/ui/text"
)

const flashDurationVal = 3 * time.Second

var statusSpinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Version is set via -ldflags at build time. Falls back to "dev".
var Version = "dev"

// FlashDuration returns how long the status bar flash is shown.
func FlashDuration() time.Duration { return flashDurationVal }

// FlashLevel controls the icon and color of a status bar flash message.
type FlashLevel int

const (
	FlashInfo    FlashLevel = iota // blue ●
	FlashSuccess                   // green ✓
	FlashWarning                   // yellow ⚠
	FlashError                     // red ✗
)

// Stats is the polling summary shown in the status bar.
type Stats struct {
	Events     int
	Fetches    int
	InFlight   int
	LastFailed bool
	LastUpdate time.Time
}

type StatusBar struct {
	width      int
	url        string
	stats      Stats
	flash      string
	flashLevel FlashLevel
	flashUntil time.Time
	tickStep   int
}

func NewStatusBar(url string) StatusBar {
	return StatusBar{url: url}
}

func (s StatusBar) View() string {
	sep := styles.TextDimStyle.Render(" │ ")

	var indicator string
	switch {
	case s.stats.InFlight > 0:
		frame := statusSpinnerFrames[s.tickStep%len(statusSpinnerFrames)]
		indicator = lipgloss.NewStyle().Foreground(styles.StatusRunning).Render(frame)
	case s.stats.LastFailed:
		indicator = lipgloss.NewStyle().Foreground(styles.StatusError).Render("●")
	case s.stats.Fetches > 0:
		indicator = lipgloss.NewStyle().Foreground(styles.StatusSuccess).Render("●")
	default:
		indicator = lipgloss.NewStyle().Foreground(styles.StatusPending).Render("●")
	}
	appName := indicator + " " + styles.TextSecondaryStyle.Render("labmon "+Version)

	counts := fmt.Sprintf("%s %s",
		styles.TextPrimaryStyle.Render(text.Plural(s.stats.Events, "event", "events")),
		styles.TextDimStyle.Render("("+text.Plural(s.stats.Fetches, "fetch", "fetches")+")"),
	)
	updated := styles.TextSecondaryStyle.Render("updated " + text.RelativeTime(s.stats.LastUpdate))

	left := " " + appName + sep + counts + sep + updated

	if s.flash != "" && time.Now().Before(s.flashUntil) {
		var icon string
		var color lipgloss.TerminalColor
		switch s.flashLevel {
		case FlashSuccess:
			icon, color = "✓", styles.StatusSuccess
		case FlashError:
			icon, color = "✗", styles.StatusError
		case FlashWarning:
			icon, color = "⚠", styles.StatusWarning
		default:
			icon, color = "●", styles.StatusRunning
		}
		left += sep + lipgloss.NewStyle().Foreground(color).Bold(true).Render(icon+" "+s.flash)
	}

	right := styles.TextSecondaryStyle.Render("?:help") + " "

	// The backend URL is the first thing to go on a narrow terminal.
	urlBudget := s.width - lipgloss.Width(left) - lipgloss.Width(right) - lipgloss.Width(sep) - 1
	if s.url != "" && urlBudget >= 12 {
		right = styles.TextDimStyle.Render(text.Truncate(s.url, urlBudget)) + sep + right
	}

	gap := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func (s *StatusBar) SetStats(st Stats) {
	s.stats = st
}

func (s StatusBar) Stats() Stats {
	return s.stats
}

func (s *StatusBar) SetFlash(msg string) {
	s.SetFlashWithLevel(msg, FlashInfo)
}

func (s *StatusBar) SetFlashWithLevel(msg string, level FlashLevel) {
	s.flash = msg
	s.flashLevel = level
	s.flashUntil = time.Now().Add(flashDurationVal)
}

func (s *StatusBar) ClearFlash() {
	s.flash = ""
	s.flashLevel = FlashInfo
	s.flashUntil = time.Time{}
}

// ExpireFlash clears the flash only once its display time has passed, so a
// stale clear does not cut short a newer message.
func (s *StatusBar) ExpireFlash() {
	if !time.Now().Before(s.flashUntil) {
		s.ClearFlash()
	}
}

func (s *StatusBar) SetSize(w int) {
	s.width = w
}

// Tick advances the in-flight spinner frame.
func (s *StatusBar) Tick() {
	s.tickStep++
}
