package tabview

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
)

// Content is the model rendered inside a panel's body. Init runs once,
// the first time the panel is selected.
type Content interface {
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	View(width, height int) string
}

// StaticContent renders fixed text.
type StaticContent struct {
	Text string
}

func (c StaticContent) Init() tea.Cmd              { return nil }
func (c StaticContent) Update(msg tea.Msg) tea.Cmd { return nil }
func (c StaticContent) View(width, height int) string {
	return c.Text
}

type TooltipPosition string

const (
	TooltipTop    TooltipPosition = "top"
	TooltipBottom TooltipPosition = "bottom"
	TooltipLeft   TooltipPosition = "left"
	TooltipRight  TooltipPosition = "right"
)

// PanelSpec declares one panel of a TabView.
type PanelSpec struct {
	Header          string
	LeftIcon        string
	RightIcon       string
	Tooltip         string
	TooltipPosition TooltipPosition
	HeaderStyle     *lipgloss.Style
	Closable        bool
	Cache           bool
	Selected        bool
	Disabled        bool
	Content         Content
}

// Panel is the state holder for one unit of tabbed content. A panel never
// mutates sibling state; all cross-panel logic lives in the TabView that
// owns it. Setters that can change header geometry notify the owning
// container so it can refresh the indicator bar on the next render pass.
type Panel struct {
	id              string
	header          string
	leftIcon        string
	rightIcon       string
	tooltip         string
	tooltipPosition TooltipPosition
	headerStyle     *lipgloss.Style
	closable        bool
	cache           bool
	selected        bool
	disabled        bool
	closed          bool
	loaded          bool
	content         Content

	notify func()
}

func NewPanel(spec PanelSpec) *Panel {
	pos := spec.TooltipPosition
	if pos == "" {
		pos = TooltipTop
	}
	return &Panel{
		id:              uuid.NewString(),
		header:          spec.Header,
		leftIcon:        spec.LeftIcon,
		rightIcon:       spec.RightIcon,
		tooltip:         spec.Tooltip,
		tooltipPosition: pos,
		headerStyle:     spec.HeaderStyle,
		closable:        spec.Closable,
		cache:           spec.Cache,
		selected:        spec.Selected,
		disabled:        spec.Disabled,
		content:         spec.Content,
	}
}

func (p *Panel) ID() string                       { return p.id }
func (p *Panel) Header() string                   { return p.header }
func (p *Panel) LeftIcon() string                 { return p.leftIcon }
func (p *Panel) RightIcon() string                { return p.rightIcon }
func (p *Panel) Tooltip() string                  { return p.tooltip }
func (p *Panel) TooltipPosition() TooltipPosition { return p.tooltipPosition }
func (p *Panel) HeaderStyle() *lipgloss.Style     { return p.headerStyle }
func (p *Panel) Closable() bool                   { return p.closable }
func (p *Panel) Cache() bool                      { return p.cache }
func (p *Panel) Selected() bool                   { return p.selected }
func (p *Panel) Disabled() bool                   { return p.disabled }
func (p *Panel) Closed() bool                     { return p.closed }
func (p *Panel) Loaded() bool                     { return p.loaded }
func (p *Panel) Content() Content                 { return p.content }

// HeaderActionID is the stable identifier of the panel's header button.
// It doubles as the mouse hit-test zone name.
func (p *Panel) HeaderActionID() string { return p.id + "_header_action" }

// ContentID is the stable identifier of the panel's content region,
// linked to the header action that controls it.
func (p *Panel) ContentID() string { return p.id + "_content" }

func (p *Panel) closeActionID() string { return p.id + "_close" }

func (p *Panel) SetHeader(header string) {
	p.header = header
	p.markChanged()
}

func (p *Panel) SetLeftIcon(icon string) {
	p.leftIcon = icon
	p.markChanged()
}

func (p *Panel) SetRightIcon(icon string) {
	p.rightIcon = icon
	p.markChanged()
}

func (p *Panel) SetTooltip(tooltip string) {
	p.tooltip = tooltip
	p.markChanged()
}

func (p *Panel) SetTooltipPosition(pos TooltipPosition) {
	p.tooltipPosition = pos
	p.markChanged()
}

func (p *Panel) SetHeaderStyle(style *lipgloss.Style) {
	p.headerStyle = style
	p.markChanged()
}

func (p *Panel) SetClosable(closable bool) {
	p.closable = closable
	p.markChanged()
}

func (p *Panel) SetCache(cache bool) {
	p.cache = cache
}

func (p *Panel) SetDisabled(disabled bool) {
	p.disabled = disabled
	p.markChanged()
}

func (p *Panel) SetContent(content Content) {
	p.content = content
	p.markChanged()
}

// load marks the panel loaded and mounts its content. The transition is
// one-way; repeated calls are no-ops.
func (p *Panel) load() tea.Cmd {
	if p.loaded {
		return nil
	}
	p.loaded = true
	if p.content == nil {
		return nil
	}
	return p.content.Init()
}

func (p *Panel) attach(notify func()) { p.notify = notify }
func (p *Panel) detach()              { p.notify = nil }

func (p *Panel) markChanged() {
	if p.notify != nil {
		p.notify()
	}
}
