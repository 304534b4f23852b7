package tabview

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Header strip geometry. All measurements run over styled but unmarked
// header renders, so mouse-zone markers never skew widths.

func (t *TabView) renderHeader(i int, marked bool) string {
	p := t.panels[i]
	text := p.header
	if p.leftIcon != "" {
		text = p.leftIcon + " " + text
	}
	if p.rightIcon != "" {
		text = text + " " + p.rightIcon
	}
	style := t.Styles.InactiveHeader
	switch {
	case p.disabled:
		style = t.Styles.DisabledHeader
	case p.selected:
		style = t.Styles.ActiveHeader
	}
	if p.headerStyle != nil {
		style = *p.headerStyle
	}
	label := style.Render(text)
	glyph := ""
	if p.closable && !p.disabled {
		glyph = t.Styles.CloseGlyph.Render("✕ ")
	}
	if marked && t.zones != nil {
		label = t.zones.Mark(p.HeaderActionID(), label)
		if glyph != "" {
			glyph = t.zones.Mark(p.closeActionID(), glyph)
		}
	}
	return label + glyph
}

// headerWidths reports the rendered width of every header, index-aligned
// with the panel slice; closed panels measure zero.
func (t *TabView) headerWidths() []int {
	widths := make([]int, len(t.panels))
	for i, p := range t.panels {
		if p.closed {
			continue
		}
		widths[i] = ansi.StringWidth(t.renderHeader(i, false))
	}
	return widths
}

func (t *TabView) totalHeaderWidth() int {
	total := 0
	for _, w := range t.headerWidths() {
		total += w
	}
	return total
}

// headerOffset is the horizontal offset of a header relative to the
// start of the strip.
func (t *TabView) headerOffset(idx int) int {
	widths := t.headerWidths()
	off := 0
	for i := 0; i < idx && i < len(widths); i++ {
		off += widths[i]
	}
	return off
}

func (t *TabView) backwardButtonID() string { return t.id + "_nav_backward" }
func (t *TabView) forwardButtonID() string  { return t.id + "_nav_forward" }

func (t *TabView) navButtonWidths() (back, forward int) {
	if !t.buttonVisible {
		return 0, 0
	}
	back = ansi.StringWidth(t.Styles.NavButton.Render(t.BackwardLabel))
	forward = ansi.StringWidth(t.Styles.NavButton.Render(t.ForwardLabel))
	return back, forward
}

// visibleWidth is the strip viewport: widget width minus whatever the
// nav buttons currently occupy.
func (t *TabView) visibleWidth() int {
	back, forward := t.navButtonWidths()
	w := t.width - back - forward
	if w < 0 {
		w = 0
	}
	return w
}

func (t *TabView) maxScroll() int {
	m := t.totalHeaderWidth() - t.visibleWidth()
	if m < 0 {
		m = 0
	}
	return m
}

// refreshOverflow recomputes nav-button visibility and boundary flags
// from current geometry. It runs on every layout or header change.
func (t *TabView) refreshOverflow() {
	if !t.Scrollable {
		t.buttonVisible = false
		t.scrollOffset = 0
		t.backwardIsDisabled = true
		t.forwardIsDisabled = true
		return
	}
	if t.AutoHideButtons {
		t.buttonVisible = t.totalHeaderWidth() >= t.width
	} else {
		t.buttonVisible = true
	}
	t.clampScroll()
	t.updateScrollBoundaries()
}

func (t *TabView) clampScroll() {
	if m := t.maxScroll(); t.scrollOffset > m {
		t.scrollOffset = m
	}
	if t.scrollOffset < 0 {
		t.scrollOffset = 0
	}
}

// Boundary flags recompute on every scroll-offset change, user-initiated
// or programmatic.
func (t *TabView) updateScrollBoundaries() {
	t.backwardIsDisabled = t.scrollOffset <= 0
	t.forwardIsDisabled = t.scrollOffset >= t.maxScroll()
}

func (t *TabView) ButtonVisible() bool      { return t.buttonVisible }
func (t *TabView) BackwardIsDisabled() bool { return t.backwardIsDisabled }
func (t *TabView) ForwardIsDisabled() bool  { return t.forwardIsDisabled }
func (t *TabView) ScrollOffset() int        { return t.scrollOffset }

// NavBackward pages the strip left by one viewport width.
func (t *TabView) NavBackward() {
	if !t.Scrollable || t.backwardIsDisabled {
		return
	}
	t.scrollOffset -= max(1, t.visibleWidth())
	t.clampScroll()
	t.updateScrollBoundaries()
}

// NavForward pages the strip right by one viewport width.
func (t *TabView) NavForward() {
	if !t.Scrollable || t.forwardIsDisabled {
		return
	}
	t.scrollOffset += max(1, t.visibleWidth())
	t.clampScroll()
	t.updateScrollBoundaries()
}

// scrollIntoView adjusts the offset until the header at idx is fully
// inside the viewport.
func (t *TabView) scrollIntoView(idx int) {
	if !t.Scrollable || idx < 0 || idx >= len(t.panels) {
		return
	}
	vis := t.visibleWidth()
	if vis <= 0 {
		return
	}
	off := t.headerOffset(idx)
	w := t.headerWidths()[idx]
	if off < t.scrollOffset {
		t.scrollOffset = off
	} else if off+w > t.scrollOffset+vis {
		t.scrollOffset = off + w - vis
	}
	t.clampScroll()
	t.updateScrollBoundaries()
}

// syncIndicator consumes the dirty flag, at most once per render pass,
// and re-measures the active header's offset and width.
func (t *TabView) syncIndicator() {
	if !t.tabChanged {
		return
	}
	t.tabChanged = false
	idx := t.indexOfSelected()
	if idx < 0 {
		t.inkBarOffset = 0
		t.inkBarWidth = 0
		return
	}
	t.inkBarOffset = t.headerOffset(idx)
	t.inkBarWidth = t.headerWidths()[idx]
}

// IndicatorGeometry reports the indicator bar's offset and width
// relative to the strip start, re-measuring first if pending.
func (t *TabView) IndicatorGeometry() (offset, width int) {
	t.syncIndicator()
	return t.inkBarOffset, t.inkBarWidth
}

func (t *TabView) View() string {
	if t.width <= 0 {
		return ""
	}
	t.syncIndicator()

	strip := t.renderStrip()
	indicator := t.renderIndicatorRow()
	content := t.renderContent()

	rows := []string{strip, indicator}
	if content != "" {
		rows = append(rows, content)
	}
	return strings.Join(rows, "\n")
}

func (t *TabView) renderStrip() string {
	parts := make([]string, 0, len(t.panels))
	for i, p := range t.panels {
		if p.closed {
			continue
		}
		parts = append(parts, t.renderHeader(i, true))
	}
	strip := strings.Join(parts, "")
	vis := t.width
	left, right := "", ""
	if t.buttonVisible {
		left, right = t.renderNavButtons()
		vis = t.visibleWidth()
	}
	if t.Scrollable {
		strip = ansi.TruncateLeft(strip, t.scrollOffset, "")
	}
	strip = ansi.Truncate(strip, vis, "")
	if pad := vis - ansi.StringWidth(strip); pad > 0 {
		strip += t.Styles.HeaderBar.Render(strings.Repeat(" ", pad))
	}
	return left + strip + right
}

func (t *TabView) renderNavButtons() (left, right string) {
	backStyle, fwdStyle := t.Styles.NavButton, t.Styles.NavButton
	if t.backwardIsDisabled {
		backStyle = t.Styles.NavButtonOff
	}
	if t.forwardIsDisabled {
		fwdStyle = t.Styles.NavButtonOff
	}
	left = backStyle.Render(t.BackwardLabel)
	right = fwdStyle.Render(t.ForwardLabel)
	if t.zones != nil {
		left = t.zones.Mark(t.backwardButtonID(), left)
		right = t.zones.Mark(t.forwardButtonID(), right)
	}
	return left, right
}

func (t *TabView) renderIndicatorRow() string {
	back, _ := t.navButtonWidths()
	vis := t.visibleWidth()
	start := t.inkBarOffset - t.scrollOffset
	end := start + t.inkBarWidth
	if start < 0 {
		start = 0
	}
	if end > vis {
		end = vis
	}
	var row strings.Builder
	if back > 0 {
		row.WriteString(strings.Repeat(" ", back))
	}
	if t.inkBarWidth > 0 && end > start {
		row.WriteString(t.Styles.IndicatorTrack.Render(strings.Repeat("─", start)))
		row.WriteString(t.Styles.Indicator.Render(strings.Repeat("━", end-start)))
		row.WriteString(t.Styles.IndicatorTrack.Render(strings.Repeat("─", max(0, vis-end))))
	} else {
		row.WriteString(t.Styles.IndicatorTrack.Render(strings.Repeat("─", max(0, vis))))
	}
	return ansi.Truncate(row.String(), t.width, "")
}

func (t *TabView) renderContent() string {
	p := t.selectedPanel()
	if p == nil || p.content == nil {
		return ""
	}
	h := t.height - 2
	if h <= 0 {
		return ""
	}
	view := p.content.View(t.width, h)
	view = fitHeight(view, h)
	if t.zones != nil {
		view = t.zones.Mark(p.ContentID(), view)
	}
	return t.Styles.Content.Render(view)
}

func fitHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
