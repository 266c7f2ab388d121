// Package panel implements a scrollable viewport over styled text lines.
//
// A Panel owns the scroll offset, the scrollbar geometry, and the handle drag
// state. Owners push geometry with SetViewport and content with SetLines; the
// panel clamps its offset after every change and never reports errors.
//
// Coordinates are host units in the host's coordinate space. A terminal host
// uses one unit per cell.
package panel
