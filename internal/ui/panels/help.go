package panels

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/justinpbarnett/labmon/internal/ui/border"
	"github.com/justinpbarnett/labmon/internal/ui/styles"
)

type HelpOverlay struct {
	width  int
	height int
}

func NewHelpOverlay() *HelpOverlay {
	return &HelpOverlay{
		width:  40,
		height: 16,
	}
}

func (h HelpOverlay) Update(msg tea.Msg) (HelpOverlay, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "?", "q":
			return h, func() tea.Msg { return CloseModalMsg{} }
		}
	}
	return h, nil
}

// Size is the overlay's fixed footprint, used for centering.
func (h HelpOverlay) Size() (int, int) {
	return h.width, h.height
}

func (h HelpOverlay) View() string {
	keyStyle := lipgloss.NewStyle().Foreground(styles.KeybindKey).Bold(true)
	descStyle := styles.TextPrimaryStyle
	sectionStyle := styles.TitleStyle

	kv := func(key, desc string) string {
		return "  " + keyStyle.Render(key) + "  " + descStyle.Render(desc)
	}

	var b strings.Builder
	b.WriteString(sectionStyle.Render("Navigation") + "\n")
	b.WriteString(kv("j/k ", "Move up/down") + "\n")
	b.WriteString(kv("G/gg", "Jump to bottom/top") + "\n")
	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Actions") + "\n")
	b.WriteString(kv("r   ", "Refresh now") + "\n")
	b.WriteString(kv("y   ", "Copy selected event") + "\n")
	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Global") + "\n")
	b.WriteString(kv("?   ", "Toggle this help") + "\n")
	b.WriteString(kv("q   ", "Quit") + "\n")
	b.WriteString(kv("Esc ", "Close modal"))

	bottomKb := []border.Keybind{{Key: "?", Label: " close"}, {Key: "Esc", Label: " close"}}
	return border.RenderPanel("Keybinds", b.String(), bottomKb, h.width, h.height, true)
}
