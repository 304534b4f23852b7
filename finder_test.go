package tabview

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestRankHeadersPrefersSubstringMatches(t *testing.T) {
	panels := testPanels("Dashboard", "Settings", "Reports")
	matches := RankHeaders("set", panels)
	if len(matches) != 3 {
		t.Fatalf("match count = %d, want 3", len(matches))
	}
	if matches[0].Header != "Settings" {
		t.Fatalf("best match = %q, want Settings", matches[0].Header)
	}
}

func TestRankHeadersSkipsUnreachablePanels(t *testing.T) {
	panels := []*Panel{
		NewPanel(PanelSpec{Header: "Dashboard", Disabled: true}),
		NewPanel(PanelSpec{Header: "Reports"}),
	}
	panels[1].closed = true
	matches := RankHeaders("", panels)
	if len(matches) != 0 {
		t.Fatalf("disabled and closed panels must not rank, got %d", len(matches))
	}
}

func TestRankHeadersEmptyQueryKeepsOrder(t *testing.T) {
	matches := RankHeaders("", testPanels("b", "a", "c"))
	want := []string{"b", "a", "c"}
	for i, m := range matches {
		if m.Header != want[i] {
			t.Fatalf("order broken at %d: %q", i, m.Header)
		}
	}
}

func TestFinderEnterOpensBestMatch(t *testing.T) {
	tv := New(testPanels("Dashboard", "Settings", "Reports")...)
	f := NewFinder(tv)
	f.Open()
	for _, r := range "sett" {
		f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	cmd := f.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if f.Opened() {
		t.Fatalf("enter should dismiss the finder")
	}
	msgs := collectMsgs(cmd)
	if change, ok := findChange(msgs); !ok || change.Index != 1 {
		t.Fatalf("expected change for Settings (index 1), got %+v", msgs)
	}
	assertSingleSelection(t, tv, 1)
}

func TestFinderEscDismissesWithoutSelection(t *testing.T) {
	tv := New(testPanels("a", "b")...)
	f := NewFinder(tv)
	f.Open()
	if cmd := f.Update(tea.KeyMsg{Type: tea.KeyEsc}); cmd != nil {
		t.Fatalf("esc must not emit")
	}
	if f.Opened() {
		t.Fatalf("esc should dismiss the finder")
	}
	assertSingleSelection(t, tv, 0)
}
