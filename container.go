package tabview

import (
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	zone "github.com/lrstanley/bubblezone"
)

// TabView owns an ordered set of panels and keeps exactly one non-closed
// panel selected. It is the single authority over selection: panels never
// reach into the container, they only report changes through the hook the
// container attaches.
type TabView struct {
	// Scrollable enables header-strip paging when the headers overflow
	// the widget width.
	Scrollable bool
	// ControlClose defers panel removal to the CloseMsg continuation.
	ControlClose bool
	// SelectOnFocus opens a panel whenever keyboard focus reaches its
	// header.
	SelectOnFocus bool
	// AutoHideButtons hides the nav buttons while the headers fit.
	AutoHideButtons bool
	Tabindex        int
	BackwardLabel   string
	ForwardLabel    string

	KeyMap *KeyMap
	Styles Styles

	id           string
	panels       []*Panel
	activeIndex  int
	focusedIndex int

	width  int
	height int

	scrollOffset       int
	tabChanged         bool
	buttonVisible      bool
	backwardIsDisabled bool
	forwardIsDisabled  bool
	inkBarOffset       int
	inkBarWidth        int

	zones       *zone.Manager
	pendingInit tea.Cmd
}

func New(panels ...*Panel) *TabView {
	t := newTabView()
	t.pendingInit = t.SetPanels(panels...)
	return t
}

// NewAt creates a TabView whose initial selection lands on the panel at
// index, falling back to index 0 when out of range.
func NewAt(index int, panels ...*Panel) *TabView {
	t := newTabView()
	t.activeIndex = index
	t.pendingInit = t.SetPanels(panels...)
	return t
}

func newTabView() *TabView {
	return &TabView{
		AutoHideButtons: true,
		BackwardLabel:   "‹",
		ForwardLabel:    "›",
		KeyMap:          DefaultKeyMap(),
		Styles:          DefaultStyles(),
		id:              uuid.NewString(),
		activeIndex:     0,
		focusedIndex:    -1,
		width:           80,
		height:          24,
	}
}

func (t *TabView) Init() tea.Cmd {
	cmd := t.pendingInit
	t.pendingInit = nil
	return cmd
}

// SetZoneManager enables mouse support. Pass nil to disable it. The
// embedding program must run the manager's Scan over its final view.
func (t *TabView) SetZoneManager(z *zone.Manager) { t.zones = z }

// SetPanels replaces the panel set, mirroring the current declaration.
// Hooks on panels that left the set are released so they cannot dirty a
// container they no longer belong to.
func (t *TabView) SetPanels(panels ...*Panel) tea.Cmd {
	for _, p := range t.panels {
		p.detach()
	}
	t.panels = slices.Clone(panels)
	for _, p := range t.panels {
		p.attach(t.invalidate)
	}
	t.focusedIndex = -1
	t.tabChanged = true
	cmd := t.initSelection()
	t.refreshOverflow()
	return cmd
}

func (t *TabView) AddPanel(p *Panel) tea.Cmd {
	if p == nil {
		return nil
	}
	cur := t.selectedPanel()
	t.panels = append(t.panels, p)
	p.attach(t.invalidate)
	t.tabChanged = true
	var cmd tea.Cmd
	if cur == nil {
		cmd = t.initSelection()
	} else if p.selected {
		// the existing selection wins over a declared one
		p.selected = false
	}
	t.refreshOverflow()
	return cmd
}

// RemovePanel drops a destroyed panel from the set. Unlike Close, this is
// actual removal: the panel leaves the ordered list entirely.
func (t *TabView) RemovePanel(p *Panel) tea.Cmd {
	idx := t.indexOf(p)
	if idx < 0 {
		return nil
	}
	p.detach()
	wasSelected := p.selected
	p.selected = false
	t.panels = append(t.panels[:idx], t.panels[idx+1:]...)
	// keep focus on the same panel across the shift
	switch {
	case t.focusedIndex == idx:
		t.focusedIndex = -1
	case t.focusedIndex > idx:
		t.focusedIndex--
	}
	t.tabChanged = true
	var cmd tea.Cmd
	if wasSelected {
		cmd = t.selectFirstRemaining()
	} else {
		t.activeIndex = t.indexOfSelected()
	}
	t.refreshOverflow()
	return cmd
}

// Panels returns the ordered panel list, closed panels included; closed
// panels are filtered only at render time.
func (t *TabView) Panels() []*Panel { return slices.Clone(t.panels) }

func (t *TabView) ActiveIndex() int { return t.activeIndex }

func (t *TabView) FocusedIndex() int { return t.focusedIndex }

// SetActiveIndex is the directed programmatic selection input. It is
// silent: no ChangeMsg or ActiveIndexChangedMsg is emitted for a change
// the caller itself asked for. Out-of-range and disabled targets degrade
// to a no-op.
func (t *TabView) SetActiveIndex(index int) tea.Cmd {
	if index < 0 || index >= len(t.panels) {
		return nil
	}
	p := t.panels[index]
	if p.disabled || p.closed || p.selected {
		return nil
	}
	if cur := t.selectedPanel(); cur != nil {
		cur.selected = false
	}
	p.selected = true
	cmd := p.load()
	t.activeIndex = index
	t.tabChanged = true
	t.scrollIntoView(index)
	return cmd
}

// Open selects a panel in response to user interaction. Disabled and
// already-selected panels are no-ops. State is fully updated before any
// notification fires, so handlers observe the post-change container.
func (t *TabView) Open(p *Panel, ev tea.Msg) tea.Cmd {
	if p == nil || p.disabled || p.closed || p.selected {
		return nil
	}
	idx := t.indexOf(p)
	if idx < 0 {
		return nil
	}
	if cur := t.selectedPanel(); cur != nil {
		cur.selected = false
	}
	p.selected = true
	loadCmd := p.load()
	t.tabChanged = true
	t.activeIndex = idx
	t.scrollIntoView(idx)
	return tea.Batch(loadCmd, activeIndexCmd(idx), changeCmd(ev, idx))
}

// Close requests removal of a panel from the header strip. Closing a
// disabled panel is a no-op. In controlled mode the CloseMsg carries a
// continuation and nothing is removed until it runs.
func (t *TabView) Close(p *Panel, ev tea.Msg) tea.Cmd {
	if p == nil || p.disabled || p.closed {
		return nil
	}
	idx := t.indexOf(p)
	if idx < 0 {
		return nil
	}
	msg := CloseMsg{Event: ev, Index: idx}
	if t.ControlClose {
		msg.Close = func() tea.Cmd { return t.removeTab(p) }
		return closeCmd(msg)
	}
	removeCmd := t.removeTab(p)
	if removeCmd != nil {
		return tea.Batch(removeCmd, closeCmd(msg))
	}
	return closeCmd(msg)
}

// removeTab performs the close transition: closed is one-way, and when
// the selected panel goes, the first remaining non-closed, non-disabled
// sibling in ascending order takes over. No qualifying sibling leaves the
// container validly unselected at index -1.
func (t *TabView) removeTab(p *Panel) tea.Cmd {
	if p == nil || p.closed {
		return nil
	}
	p.closed = true
	var cmd tea.Cmd
	if p.selected {
		p.selected = false
		cmd = t.selectFirstRemaining()
	}
	if t.focusedIndex >= 0 && !t.reachable(t.focusedIndex) {
		t.focusedIndex = -1
	}
	t.tabChanged = true
	t.refreshOverflow()
	return cmd
}

func (t *TabView) selectFirstRemaining() tea.Cmd {
	t.activeIndex = -1
	for i, c := range t.panels {
		if c.closed || c.disabled {
			continue
		}
		c.selected = true
		t.activeIndex = i
		t.scrollIntoView(i)
		return tea.Batch(c.load(), activeIndexCmd(i))
	}
	return activeIndexCmd(-1)
}

func (t *TabView) selectedPanel() *Panel {
	for _, p := range t.panels {
		if p.selected && !p.closed {
			return p
		}
	}
	return nil
}

func (t *TabView) indexOf(p *Panel) int {
	for i, c := range t.panels {
		if c == p {
			return i
		}
	}
	return -1
}

func (t *TabView) indexOfSelected() int {
	for i, p := range t.panels {
		if p.selected && !p.closed {
			return i
		}
	}
	return -1
}

// initSelection runs on panel discovery. A panel already declared
// selected wins; otherwise the panel at the current index, falling back
// to index 0 when the index is out of range. Init is silent: no
// notifications are emitted.
func (t *TabView) initSelection() tea.Cmd {
	if len(t.panels) == 0 {
		t.activeIndex = -1
		return nil
	}
	selected := -1
	for i, p := range t.panels {
		if !p.selected || p.closed {
			continue
		}
		if selected < 0 {
			selected = i
			continue
		}
		p.selected = false
	}
	if selected < 0 {
		selected = t.activeIndex
		if selected < 0 || selected >= len(t.panels) {
			selected = 0
		}
		t.panels[selected].selected = true
	}
	t.activeIndex = selected
	return t.panels[selected].load()
}

func (t *TabView) invalidate() {
	t.tabChanged = true
	t.refreshOverflow()
}

// SetSize is the explicit layout-changed input; tea.WindowSizeMsg routes
// here as well.
func (t *TabView) SetSize(width, height int) {
	t.width = width
	t.height = height
	t.tabChanged = true
	t.refreshOverflow()
}

func (t *TabView) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		t.SetSize(msg.Width, msg.Height)
		return nil
	case tea.KeyMsg:
		if handled, cmd := t.HandleKey(msg); handled {
			return cmd
		}
		return t.updateSelectedContent(msg)
	case tea.MouseMsg:
		return t.handleMouse(msg)
	default:
		return t.updateContents(msg)
	}
}

// updateSelectedContent forwards input the header strip did not consume
// to the active panel only.
func (t *TabView) updateSelectedContent(msg tea.Msg) tea.Cmd {
	p := t.selectedPanel()
	if p == nil || p.content == nil || !p.loaded {
		return nil
	}
	return p.content.Update(msg)
}

// updateContents forwards non-input messages to the active panel and to
// every cached, loaded panel so background content stays warm.
func (t *TabView) updateContents(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(t.panels))
	for _, p := range t.panels {
		if p.closed || p.content == nil || !p.loaded {
			continue
		}
		if !p.selected && !p.cache {
			continue
		}
		if cmd := p.content.Update(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

func (t *TabView) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if t.zones == nil {
		return nil
	}
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	if t.buttonVisible {
		if t.zones.Get(t.backwardButtonID()).InBounds(msg) {
			t.NavBackward()
			return nil
		}
		if t.zones.Get(t.forwardButtonID()).InBounds(msg) {
			t.NavForward()
			return nil
		}
	}
	for _, p := range t.panels {
		if p.closed {
			continue
		}
		if p.closable && t.zones.Get(p.closeActionID()).InBounds(msg) {
			return t.Close(p, msg)
		}
		if t.zones.Get(p.HeaderActionID()).InBounds(msg) {
			return t.Open(p, msg)
		}
	}
	return nil
}

// Teardown releases every panel hook. Call when the widget is removed
// from the program for good.
func (t *TabView) Teardown() {
	for _, p := range t.panels {
		p.detach()
	}
	t.zones = nil
}
