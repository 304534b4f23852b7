package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Pane frames content with a rounded border and an inline title.
type Pane struct {
	Title   string
	Content string
	Active  bool
}

func (p Pane) Render(width, height int) string {
	if width < 4 {
		width = 4
	}
	if height < 3 {
		height = 3
	}

	border := lipgloss.Color("#6c7086")
	if p.Active {
		border = lipgloss.Color("#89b4fa")
	}
	borderStyle := lipgloss.NewStyle().Foreground(border)
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4")).Bold(true)

	innerWidth := width - 2
	title := " " + p.Title + " "
	if ansi.StringWidth(title) > innerWidth {
		title = ansi.Truncate(title, innerWidth, "…")
	}
	titleW := ansi.StringWidth(title)
	dashes := innerWidth - titleW
	if dashes < 0 {
		dashes = 0
	}
	pre := min(1, dashes)
	top := borderStyle.Render("╭"+strings.Repeat("─", pre)) +
		titleStyle.Render(title) +
		borderStyle.Render(strings.Repeat("─", dashes-pre)+"╮")

	v := borderStyle.Render("│")
	contentLines := fitLines(p.Content, height-2)
	rows := make([]string, 0, height)
	rows = append(rows, top)
	for _, line := range contentLines {
		rows = append(rows, v+padRight(" "+line, innerWidth)+v)
	}
	rows = append(rows, borderStyle.Render("╰"+strings.Repeat("─", innerWidth)+"╯"))
	return strings.Join(rows, "\n")
}
