package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"

	tabview "github.com/hollowbeak/tabview"
	"github.com/hollowbeak/tabview/internal/config"
	"github.com/hollowbeak/tabview/widgets"
)

// paneContent frames static text in a widgets.Pane.
type paneContent struct {
	title string
	text  string
}

func (c paneContent) Init() tea.Cmd              { return nil }
func (c paneContent) Update(msg tea.Msg) tea.Cmd { return nil }
func (c paneContent) View(width, height int) string {
	return widgets.Pane{Title: c.title, Content: c.text, Active: true}.Render(width, height)
}

type model struct {
	tabs   *tabview.TabView
	finder *tabview.Finder
	zones  *zone.Manager
	status string
	width  int
	height int
}

func (m model) Init() tea.Cmd {
	return m.tabs.Init()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.tabs.SetSize(msg.Width, msg.Height-1)
		return m, nil
	case tea.KeyMsg:
		if m.finder.Opened() {
			return m, m.finder.Update(msg)
		}
		switch msg.String() {
		case "q", "ctrl+c":
			m.tabs.Teardown()
			return m, tea.Quit
		case "/":
			return m, m.finder.Open()
		case "ctrl+w":
			for _, p := range m.tabs.Panels() {
				if p.Selected() && p.Closable() {
					return m, m.tabs.Close(p, msg)
				}
			}
			return m, nil
		}
		return m, m.tabs.Update(msg)
	case tabview.ChangeMsg:
		m.status = fmt.Sprintf("Switched to tab %d", msg.Index)
		return m, nil
	case tabview.ActiveIndexChangedMsg:
		if msg.Index < 0 {
			m.status = "No tab selected"
		}
		return m, nil
	case tabview.CloseMsg:
		m.status = fmt.Sprintf("Closed tab %d", msg.Index)
		if msg.Close != nil {
			return m, msg.Close()
		}
		return m, nil
	default:
		return m, m.tabs.Update(msg)
	}
}

func (m model) View() string {
	view := m.tabs.View() + "\n" + statusStyleRender(m.status, m.width)
	if m.finder.Opened() {
		view = widgets.RenderPopup(view, m.finder.View(32), m.width, m.height)
	}
	return m.zones.Scan(view)
}

func statusStyleRender(status string, width int) string {
	if status == "" {
		status = "←/→ move · enter select · / find · ctrl+w close · q quit"
	}
	if width > 0 {
		status = ansi.Truncate(status, width, "")
	}
	return status
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("load config", "err", err)
	}

	zones := zone.New()

	panels := []*tabview.Panel{
		tabview.NewPanel(tabview.PanelSpec{
			Header:   "Overview",
			LeftIcon: "●",
			Cache:    true,
			Content:  paneContent{title: "Overview", text: "Welcome to the tabview demo."},
		}),
		tabview.NewPanel(tabview.PanelSpec{
			Header:   "Reports",
			Closable: true,
			Content:  paneContent{title: "Reports", text: "Closable tab: press ctrl+w."},
		}),
		tabview.NewPanel(tabview.PanelSpec{
			Header:   "Archive",
			Disabled: true,
			Content:  paneContent{title: "Archive", text: "Unreachable while disabled."},
		}),
		tabview.NewPanel(tabview.PanelSpec{
			Header:  "Settings",
			Tooltip: "demo settings",
			Content: paneContent{title: "Settings", text: "Nothing to configure yet."},
		}),
	}

	tabs := tabview.New(panels...)
	tabs.Scrollable = cfg.UI.Scrollable
	tabs.ControlClose = cfg.UI.ControlClose
	tabs.SelectOnFocus = cfg.UI.SelectOnFocus
	tabs.AutoHideButtons = cfg.UI.AutoHideButtons
	tabs.BackwardLabel = cfg.UI.BackwardLabel
	tabs.ForwardLabel = cfg.UI.ForwardLabel
	tabs.SetZoneManager(zones)

	m := model{tabs: tabs, finder: tabview.NewFinder(tabs), zones: zones}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		log.Fatal("run", "err", err)
	}
}
