package tabview

import "github.com/charmbracelet/lipgloss"

// Styles groups every lipgloss style the widget renders with. Callers may
// replace individual entries; per-panel header overrides take precedence
// over ActiveHeader/InactiveHeader.
type Styles struct {
	HeaderBar      lipgloss.Style
	ActiveHeader   lipgloss.Style
	InactiveHeader lipgloss.Style
	DisabledHeader lipgloss.Style
	CloseGlyph     lipgloss.Style
	Indicator      lipgloss.Style
	IndicatorTrack lipgloss.Style
	NavButton      lipgloss.Style
	NavButtonOff   lipgloss.Style
	Content        lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		HeaderBar: lipgloss.NewStyle().
			Background(colorMantle).
			Foreground(colorText),
		ActiveHeader: lipgloss.NewStyle().
			Background(colorSurface0).
			Foreground(colorAccent).
			Bold(true).
			Padding(0, 1),
		InactiveHeader: lipgloss.NewStyle().
			Background(colorMantle).
			Foreground(colorTabOff).
			Padding(0, 1),
		DisabledHeader: lipgloss.NewStyle().
			Background(colorMantle).
			Foreground(colorDisabled).
			Padding(0, 1),
		CloseGlyph: lipgloss.NewStyle().
			Foreground(colorError),
		Indicator: lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true),
		IndicatorTrack: lipgloss.NewStyle().
			Foreground(colorBorder),
		NavButton: lipgloss.NewStyle().
			Background(colorSurface0).
			Foreground(colorAccent).
			Padding(0, 1),
		NavButtonOff: lipgloss.NewStyle().
			Background(colorMantle).
			Foreground(colorDisabled).
			Padding(0, 1),
		Content: lipgloss.NewStyle().
			Foreground(colorText),
	}
}
