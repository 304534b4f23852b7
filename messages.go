package tabview

import tea "github.com/charmbracelet/bubbletea"

// ChangeMsg is emitted after a selection change caused by user
// interaction. Event carries the message that triggered the change, if
// any. Programmatic selection via SetActiveIndex is silent.
type ChangeMsg struct {
	Event tea.Msg
	Index int
}

// CloseMsg is emitted for every close request. In controlled-close mode
// Close is non-nil and the panel is only removed once Close is invoked;
// otherwise the panel is already removed by the time the message arrives.
type CloseMsg struct {
	Event tea.Msg
	Index int
	Close func() tea.Cmd
}

// ActiveIndexChangedMsg reports the container's authoritative index after
// it changed the selection itself. Index is -1 when no panel qualifies
// for selection anymore.
type ActiveIndexChangedMsg struct {
	Index int
}

func changeCmd(ev tea.Msg, index int) tea.Cmd {
	return func() tea.Msg { return ChangeMsg{Event: ev, Index: index} }
}

func closeCmd(msg CloseMsg) tea.Cmd {
	return func() tea.Msg { return msg }
}

func activeIndexCmd(index int) tea.Cmd {
	return func() tea.Msg { return ActiveIndexChangedMsg{Index: index} }
}
