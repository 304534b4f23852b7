package tabview

import (
	"strings"
	"testing"
)

func scrollableView(headers ...string) *TabView {
	tv := New(testPanels(headers...)...)
	tv.Scrollable = true
	tv.SetSize(24, 10)
	return tv
}

func TestOverflowShowsNavButtons(t *testing.T) {
	tv := scrollableView("alpha tab", "beta tab", "gamma tab", "delta tab")
	if !tv.ButtonVisible() {
		t.Fatalf("headers wider than the widget must show nav buttons")
	}
	if !tv.BackwardIsDisabled() {
		t.Fatalf("backward must start disabled at the left extreme")
	}
	if tv.ForwardIsDisabled() {
		t.Fatalf("forward must be enabled while content remains to the right")
	}
}

func TestNoOverflowHidesButtons(t *testing.T) {
	tv := New(testPanels("a", "b")...)
	tv.Scrollable = true
	tv.SetSize(80, 10)
	if tv.ButtonVisible() {
		t.Fatalf("buttons must auto-hide while headers fit")
	}
}

func TestAutoHideOffKeepsButtons(t *testing.T) {
	tv := New(testPanels("a", "b")...)
	tv.Scrollable = true
	tv.AutoHideButtons = false
	tv.SetSize(80, 10)
	if !tv.ButtonVisible() {
		t.Fatalf("buttons must stay visible with auto-hide off")
	}
}

func TestForwardScrollReachesRightExtreme(t *testing.T) {
	tv := scrollableView("alpha tab", "beta tab", "gamma tab", "delta tab")
	for i := 0; i < 20 && !tv.ForwardIsDisabled(); i++ {
		tv.NavForward()
	}
	if !tv.ForwardIsDisabled() {
		t.Fatalf("forward must disable at the right extreme")
	}
	if tv.BackwardIsDisabled() {
		t.Fatalf("backward must be enabled away from the left extreme")
	}
	offset := tv.ScrollOffset()
	tv.NavForward()
	if tv.ScrollOffset() != offset {
		t.Fatalf("scrolling past the extreme must clamp")
	}
}

func TestNavBackwardReturnsToStart(t *testing.T) {
	tv := scrollableView("alpha tab", "beta tab", "gamma tab", "delta tab")
	tv.NavForward()
	for i := 0; i < 20 && !tv.BackwardIsDisabled(); i++ {
		tv.NavBackward()
	}
	if tv.ScrollOffset() != 0 {
		t.Fatalf("offset = %d, want 0", tv.ScrollOffset())
	}
	if !tv.BackwardIsDisabled() || tv.ForwardIsDisabled() {
		t.Fatalf("boundary flags wrong at left extreme: back=%v fwd=%v",
			tv.BackwardIsDisabled(), tv.ForwardIsDisabled())
	}
}

func TestScrollIntoViewFollowsSelection(t *testing.T) {
	tv := scrollableView("alpha tab", "beta tab", "gamma tab", "delta tab")
	last := len(tv.Panels()) - 1
	tv.SetActiveIndex(last)
	off := tv.headerOffset(last)
	w := tv.headerWidths()[last]
	if off+w > tv.ScrollOffset()+tv.visibleWidth() || off < tv.ScrollOffset() {
		t.Fatalf("active header [%d,%d) outside viewport [%d,%d)",
			off, off+w, tv.ScrollOffset(), tv.ScrollOffset()+tv.visibleWidth())
	}
}

func TestIndicatorTracksActiveHeader(t *testing.T) {
	tv := New(testPanels("first", "second", "third")...)
	tv.SetSize(60, 10)
	tv.SetActiveIndex(1)
	offset, width := tv.IndicatorGeometry()
	if want := tv.headerOffset(1); offset != want {
		t.Fatalf("indicator offset = %d, want %d", offset, want)
	}
	if want := tv.headerWidths()[1]; width != want {
		t.Fatalf("indicator width = %d, want %d", width, want)
	}
}

func TestIndicatorDirtyFlagConsumedOnce(t *testing.T) {
	tv := New(testPanels("a", "b")...)
	tv.SetActiveIndex(1)
	if !tv.tabChanged {
		t.Fatalf("selection change must mark the indicator dirty")
	}
	tv.IndicatorGeometry()
	if tv.tabChanged {
		t.Fatalf("dirty flag must clear after one measurement pass")
	}
}

func TestHeaderChangeReflowsIndicator(t *testing.T) {
	tv := New(testPanels("ab", "cd")...)
	tv.SetActiveIndex(1)
	_, before := tv.IndicatorGeometry()
	tv.Panels()[1].SetHeader("a much longer header")
	_, after := tv.IndicatorGeometry()
	if after <= before {
		t.Fatalf("indicator width %d should grow past %d after header change", after, before)
	}
}

func TestClosedPanelLeavesHeaderStrip(t *testing.T) {
	tv := New(testPanels("aaaa", "bbbb", "cccc")...)
	tv.SetSize(60, 10)
	total := tv.totalHeaderWidth()
	collectMsgs(tv.Close(tv.Panels()[2], nil))
	if got := tv.totalHeaderWidth(); got >= total {
		t.Fatalf("strip width %d should shrink below %d after close", got, total)
	}
	if strings.Contains(stripANSI(tv.renderStrip()), "cccc") {
		t.Fatalf("closed header must not render")
	}
}

func TestViewGuardsZeroWidth(t *testing.T) {
	tv := New(testPanels("a")...)
	tv.SetSize(0, 0)
	if tv.View() != "" {
		t.Fatalf("zero width must render nothing rather than panic")
	}
}

func stripANSI(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case inEscape:
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
		case r == '\x1b':
			inEscape = true
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
