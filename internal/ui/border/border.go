package border

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/justinpbarnett/labmon/internal/ui/styles"
)

const (
	cornerTL = "╭"
	cornerTR = "╮"
	cornerBL = "╰"
	cornerBR = "╯"
	horizBar = "─"
	vertBar  = "│"
)

func lineStyle(focused bool) lipgloss.Style {
	if focused {
		return lipgloss.NewStyle().Foreground(styles.BorderFocused)
	}
	return lipgloss.NewStyle().Foreground(styles.BorderUnfocused)
}

// edge renders one horizontal border row: left corner, "─ " + label + " "
// when label is non-empty, then fill up to the right corner. label is
// pre-rendered and measured with lipgloss.Width.
func edge(left, right, label string, width int, focused bool) string {
	if width < 2 {
		return ""
	}
	ls := lineStyle(focused)
	inner := width - 2
	if label == "" {
		return ls.Render(left + strings.Repeat(horizBar, inner) + right)
	}
	fill := inner - 3 - lipgloss.Width(label)
	if fill < 0 {
		fill = 0
	}
	return ls.Render(left+horizBar+" ") + label + ls.Render(" "+strings.Repeat(horizBar, fill)+right)
}

// RenderBorderTop renders ╭─ Title ───╮. The title is dropped if it cannot fit.
func RenderBorderTop(title string, width int, focused bool) string {
	if title == "" || lipgloss.Width(title)+5 > width {
		return edge(cornerTL, cornerTR, "", width, focused)
	}
	ts := styles.TextSecondaryStyle.Bold(true)
	if focused {
		ts = styles.TitleStyle
	}
	return edge(cornerTL, cornerTR, ts.Render(title), width, focused)
}

// RenderBorderBottom renders ╰─ [r]efresh  [?] help ─╯ when focused, or a
// plain bar otherwise. Keybinds that would overflow are dropped from the end.
func RenderBorderBottom(keybinds []Keybind, width int, focused bool) string {
	if !focused || len(keybinds) == 0 {
		return edge(cornerBL, cornerBR, "", width, focused)
	}

	budget := width - 5
	var parts []string
	used := 0
	for _, kb := range keybinds {
		w := KeybindWidth(kb)
		if len(parts) > 0 {
			w += 2
		}
		if used+w > budget {
			break
		}
		parts = append(parts, RenderKeybind(kb))
		used += w
	}
	return edge(cornerBL, cornerBR, strings.Join(parts, "  "), width, focused)
}

// RenderBorderSides frames each content line with │ and pads or truncates
// it to width-2 visible cells.
func RenderBorderSides(content string, width int, focused bool) string {
	if width < 2 {
		return content
	}
	ls := lineStyle(focused)
	inner := width - 2
	clip := lipgloss.NewStyle().MaxWidth(inner)

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if lipgloss.Width(line) > inner {
			line = clip.Render(line)
		}
		if pad := inner - lipgloss.Width(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		lines[i] = ls.Render(vertBar) + line + ls.Render(vertBar)
	}
	return strings.Join(lines, "\n")
}
