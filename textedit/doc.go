// Package textedit implements a multi-line text input engine with greedy word
// wrapping.
//
// An Engine keeps the typed text in a buffer.Buffer, one row per explicit
// line, and derives the wrapped lines it shows through a *panel.Panel from
// those rows. Lines produced by wrapping are soft continuations of the line
// before them and remember the whitespace the wrap removed. Edits go to the
// buffer and only the rows they touched are wrapped again. Explicit newlines
// are hard boundaries and are never merged by a reflow.
//
// Input arrives as Bubble Tea key and mouse messages through HandleKey and
// HandleMouse, or through the direct editing methods.
package textedit
