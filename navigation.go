package tabview

import tea "github.com/charmbracelet/bubbletea"

// Keyboard traversal runs over the ordered panel slice, never over
// rendered output: closed and disabled panels are simply unreachable.

func (t *TabView) reachable(i int) bool {
	if i < 0 || i >= len(t.panels) {
		return false
	}
	p := t.panels[i]
	return !p.closed && !p.disabled
}

// nextReachable walks from the given index in the given direction,
// wrapping around the ends. Returns -1 when no header is reachable.
func (t *TabView) nextReachable(from, dir int) int {
	n := len(t.panels)
	if n == 0 || dir == 0 {
		return -1
	}
	i := from
	for steps := 0; steps < n; steps++ {
		i = ((i+dir)%n + n) % n
		if t.reachable(i) {
			return i
		}
	}
	return -1
}

func (t *TabView) firstReachable() int {
	for i := range t.panels {
		if t.reachable(i) {
			return i
		}
	}
	return -1
}

func (t *TabView) lastReachable() int {
	for i := len(t.panels) - 1; i >= 0; i-- {
		if t.reachable(i) {
			return i
		}
	}
	return -1
}

// focusAnchor is the header the next traversal starts from.
func (t *TabView) focusAnchor() int {
	if t.reachable(t.focusedIndex) {
		return t.focusedIndex
	}
	return t.activeIndex
}

func (t *TabView) moveFocus(idx int, ev tea.Msg) tea.Cmd {
	if !t.reachable(idx) {
		return nil
	}
	t.focusedIndex = idx
	t.scrollIntoView(idx)
	if t.SelectOnFocus {
		return t.Open(t.panels[idx], ev)
	}
	return nil
}

// HandleKey processes one key press against the header strip. The
// returned bool reports whether the key was consumed, so the embedding
// model can suppress further handling, mirroring default-action
// suppression.
func (t *TabView) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if len(t.panels) == 0 || t.KeyMap == nil {
		return false, nil
	}
	switch {
	case t.KeyMap.IsAction(msg, ActionPrevHeader):
		return true, t.moveFocus(t.nextReachable(t.focusAnchor(), -1), msg)
	case t.KeyMap.IsAction(msg, ActionNextHeader):
		return true, t.moveFocus(t.nextReachable(t.focusAnchor(), 1), msg)
	case t.KeyMap.IsAction(msg, ActionFirstHeader):
		return true, t.moveFocus(t.firstReachable(), msg)
	case t.KeyMap.IsAction(msg, ActionLastHeader):
		return true, t.moveFocus(t.lastReachable(), msg)
	case t.KeyMap.IsAction(msg, ActionActivate):
		anchor := t.focusAnchor()
		if !t.reachable(anchor) {
			return true, nil
		}
		return true, t.Open(t.panels[anchor], msg)
	}
	return false, nil
}
