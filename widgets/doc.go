// Package widgets holds the rendering primitives panel content is framed
// with: a bordered pane and a centered popup overlay. Nothing here knows
// about tabs or selection policy.
package widgets
