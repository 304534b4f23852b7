package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// RenderPopup centers a bordered card over the base view. Rows outside
// the card pass through untouched.
func RenderPopup(base, popup string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	baseLines := fitLines(base, height)
	for i := range baseLines {
		baseLines[i] = padRight(baseLines[i], width)
	}

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(1, 2).
		Render(popup)
	cardLines := strings.Split(card, "\n")
	cardWidth := 0
	for _, line := range cardLines {
		if w := ansi.StringWidth(line); w > cardWidth {
			cardWidth = w
		}
	}

	x := max(0, (width-cardWidth)/2)
	y := max(0, (height-len(cardLines))/2)
	for i, line := range cardLines {
		row := y + i
		if row >= len(baseLines) {
			break
		}
		left := ansi.Truncate(baseLines[row], x, "")
		if w := ansi.StringWidth(left); w < x {
			left += strings.Repeat(" ", x-w)
		}
		line = padRight(line, cardWidth)
		rest := width - x - cardWidth
		right := ""
		if rest > 0 {
			right = strings.Repeat(" ", rest)
		}
		baseLines[row] = left + line + right
	}
	return strings.Join(baseLines, "\n")
}
