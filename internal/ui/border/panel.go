package border

import "strings"

// RenderPanel assembles a bordered panel of exactly width×height cells:
// a titled top edge, content cropped or padded to height-2 rows, and a
// bottom edge carrying keybind hints when focused.
func RenderPanel(title, content string, keybinds []Keybind, width, height int, focused bool) string {
	if width < 2 || height < 2 {
		return ""
	}

	rows := height - 2
	var lines []string
	if content != "" {
		lines = strings.Split(content, "\n")
	}
	if len(lines) > rows {
		lines = lines[:rows]
	}
	for len(lines) < rows {
		lines = append(lines, "")
	}

	var b strings.Builder
	b.WriteString(RenderBorderTop(title, width, focused))
	if rows > 0 {
		b.WriteString("\n")
		b.WriteString(RenderBorderSides(strings.Join(lines, "\n"), width, focused))
	}
	b.WriteString("\n")
	b.WriteString(RenderBorderBottom(keybinds, width, focused))
	return b.String()
}
