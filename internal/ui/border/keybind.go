package border

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/justinpbarnett/labmon/internal/ui/styles"
)

// Keybind is a hint shown in a panel's bottom border: [r]efresh, [?] help.
type Keybind struct {
	Key   string
	Label string
}

var (
	keybindKeyStyle   = lipgloss.NewStyle().Foreground(styles.KeybindKey).Bold(true)
	keybindLabelStyle = lipgloss.NewStyle().Foreground(styles.KeybindLabel)
)

func RenderKeybind(kb Keybind) string {
	return keybindKeyStyle.Render("["+kb.Key+"]") + keybindLabelStyle.Render(kb.Label)
}

// KeybindWidth is the visible width of RenderKeybind(kb).
func KeybindWidth(kb Keybind) int {
	return 2 + ansi.StringWidth(kb.Key) + ansi.StringWidth(kb.Label)
}
