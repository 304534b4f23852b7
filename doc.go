// Package tabview provides a tabbed-container widget for bubbletea
// applications.
//
// A TabView owns an ordered set of Panel state objects, renders a header
// strip of clickable, keyboard-navigable tab buttons with an indicator bar
// under the active tab, and shows the content of exactly one panel at a
// time. When the header strip is wider than the widget, overflow nav
// buttons page the strip left and right.
//
// Allowed here:
// - panel state and change notification
// - selection, close and focus-traversal policy
// - header strip geometry (indicator bar, scroll offset, nav buttons)
//
// Not allowed here:
// - application chrome (status bars, footers, screen stacks)
// - content rendering beyond hosting a panel's Content model
package tabview
