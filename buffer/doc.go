// Package buffer implements the document model behind the input box: rows of
// grapheme clusters split on hard newlines, a cursor and snapshot undo.
//
// Coordinates are 0-based (Row, Col), with Col counted in grapheme clusters.
// Soft wrapping is layered on top by the textedit package and never stored
// here.
package buffer
