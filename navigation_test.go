package tabview

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

func TestArrowMovesFocusAndWraps(t *testing.T) {
	tv := New(testPanels("a", "b", "c")...)
	handled, _ := tv.HandleKey(keyMsg(tea.KeyRight))
	if !handled {
		t.Fatalf("right arrow should be handled")
	}
	if tv.FocusedIndex() != 1 {
		t.Fatalf("focused = %d, want 1", tv.FocusedIndex())
	}
	tv.HandleKey(keyMsg(tea.KeyRight))
	tv.HandleKey(keyMsg(tea.KeyRight))
	if tv.FocusedIndex() != 0 {
		t.Fatalf("focused = %d, want wrap to 0", tv.FocusedIndex())
	}
	tv.HandleKey(keyMsg(tea.KeyLeft))
	if tv.FocusedIndex() != 2 {
		t.Fatalf("focused = %d, want wrap back to 2", tv.FocusedIndex())
	}
}

func TestTraversalSkipsDisabledAndClosed(t *testing.T) {
	panels := []*Panel{
		NewPanel(PanelSpec{Header: "a"}),
		NewPanel(PanelSpec{Header: "b", Disabled: true}),
		NewPanel(PanelSpec{Header: "c"}),
		NewPanel(PanelSpec{Header: "d"}),
	}
	tv := New(panels...)
	collectMsgs(tv.Close(panels[3], nil))
	tv.HandleKey(keyMsg(tea.KeyRight))
	if tv.FocusedIndex() != 2 {
		t.Fatalf("focused = %d, want 2 (skipping disabled 1, closed 3)", tv.FocusedIndex())
	}
	tv.HandleKey(keyMsg(tea.KeyRight))
	if tv.FocusedIndex() != 0 {
		t.Fatalf("focused = %d, want wrap to 0", tv.FocusedIndex())
	}
}

func TestHomeReachesOnlyEnabledPanel(t *testing.T) {
	panels := []*Panel{
		NewPanel(PanelSpec{Header: "a", Disabled: true}),
		NewPanel(PanelSpec{Header: "b", Disabled: true}),
		NewPanel(PanelSpec{Header: "c"}),
	}
	tv := New(panels...)
	tv.SelectOnFocus = true
	handled, _ := tv.HandleKey(keyMsg(tea.KeyHome))
	if !handled {
		t.Fatalf("home should be handled")
	}
	if tv.FocusedIndex() != 2 {
		t.Fatalf("focused = %d, want 2 (disabled 0 and 1 skipped)", tv.FocusedIndex())
	}
	if !tv.Panels()[2].Selected() {
		t.Fatalf("select-on-focus should select the focused panel")
	}
}

func TestEndMovesToLastReachable(t *testing.T) {
	panels := []*Panel{
		NewPanel(PanelSpec{Header: "a"}),
		NewPanel(PanelSpec{Header: "b"}),
		NewPanel(PanelSpec{Header: "c", Disabled: true}),
	}
	tv := New(panels...)
	tv.HandleKey(keyMsg(tea.KeyEnd))
	if tv.FocusedIndex() != 1 {
		t.Fatalf("focused = %d, want 1 (last reachable)", tv.FocusedIndex())
	}
}

func TestEnterActivatesFocusedHeader(t *testing.T) {
	tv := New(testPanels("a", "b", "c")...)
	tv.HandleKey(keyMsg(tea.KeyRight))
	handled, cmd := tv.HandleKey(keyMsg(tea.KeyEnter))
	if !handled {
		t.Fatalf("enter should be handled")
	}
	msgs := collectMsgs(cmd)
	change, ok := findChange(msgs)
	if !ok || change.Index != 1 {
		t.Fatalf("expected change for index 1, got %+v", msgs)
	}
	assertSingleSelection(t, tv, 1)
}

func TestSelectOnFocusOpensEveryStop(t *testing.T) {
	tv := New(testPanels("a", "b", "c")...)
	tv.SelectOnFocus = true
	_, cmd := tv.HandleKey(keyMsg(tea.KeyRight))
	msgs := collectMsgs(cmd)
	if change, ok := findChange(msgs); !ok || change.Index != 1 {
		t.Fatalf("focus move should open panel 1, got %+v", msgs)
	}
	assertSingleSelection(t, tv, 1)
}

func TestUnknownKeyIsNotClaimed(t *testing.T) {
	tv := New(testPanels("a", "b")...)
	handled, _ := tv.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'z'}})
	if handled {
		t.Fatalf("unbound keys must pass through to content")
	}
}
