package tabview

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// FinderMatch is one ranked header candidate.
type FinderMatch struct {
	Index    int
	Header   string
	Distance int
}

// RankHeaders orders reachable panel headers by how well they match the
// query: substring matches first, then by edit distance, ties broken by
// panel order. An empty query keeps the panel order.
func RankHeaders(query string, panels []*Panel) []FinderMatch {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]FinderMatch, 0, len(panels))
	for i, p := range panels {
		if p.closed || p.disabled {
			continue
		}
		h := strings.ToLower(p.header)
		out = append(out, FinderMatch{
			Index:    i,
			Header:   p.header,
			Distance: levenshtein.ComputeDistance(q, h),
		})
	}
	if q == "" {
		return out
	}
	contains := func(m FinderMatch) bool {
		return strings.Contains(strings.ToLower(m.Header), q)
	}
	sort.SliceStable(out, func(a, b int) bool {
		ca, cb := contains(out[a]), contains(out[b])
		if ca != cb {
			return ca
		}
		if out[a].Distance != out[b].Distance {
			return out[a].Distance < out[b].Distance
		}
		return out[a].Index < out[b].Index
	})
	return out
}

// Finder is a jump-to-tab prompt: type part of a header, enter opens the
// best match.
type Finder struct {
	Input textinput.Model
	Limit int

	tabs    *TabView
	open    bool
	matches []FinderMatch
}

func NewFinder(t *TabView) *Finder {
	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "tab name"
	input.CharLimit = 64
	return &Finder{Input: input, Limit: 5, tabs: t}
}

func (f *Finder) Open() tea.Cmd {
	f.open = true
	f.Input.SetValue("")
	f.refresh()
	return f.Input.Focus()
}

func (f *Finder) Dismiss() {
	f.open = false
	f.Input.Blur()
}

func (f *Finder) Opened() bool { return f.open }

func (f *Finder) Matches() []FinderMatch { return f.matches }

func (f *Finder) Update(msg tea.Msg) tea.Cmd {
	if !f.open {
		return nil
	}
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			f.Dismiss()
			return nil
		case "enter":
			f.Dismiss()
			if len(f.matches) == 0 {
				return nil
			}
			best := f.matches[0]
			return f.tabs.Open(f.tabs.panels[best.Index], msg)
		}
	}
	var cmd tea.Cmd
	f.Input, cmd = f.Input.Update(msg)
	f.refresh()
	return cmd
}

func (f *Finder) refresh() {
	f.matches = RankHeaders(f.Input.Value(), f.tabs.panels)
}

func (f *Finder) View(width int) string {
	title := lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Render("Jump to tab")
	lines := []string{title, f.Input.View(), ""}
	limit := f.Limit
	if limit <= 0 || limit > len(f.matches) {
		limit = len(f.matches)
	}
	matchStyle := lipgloss.NewStyle().Foreground(colorText)
	bestStyle := lipgloss.NewStyle().Foreground(colorAccent)
	for i := 0; i < limit; i++ {
		style := matchStyle
		if i == 0 {
			style = bestStyle
		}
		lines = append(lines, style.Render(f.matches[i].Header))
	}
	if len(f.matches) == 0 {
		lines = append(lines, lipgloss.NewStyle().Foreground(colorMuted).Render("no matches"))
	}
	return lipgloss.NewStyle().Width(max(10, width)).Render(strings.Join(lines, "\n"))
}
