package textedit

const defaultHistoryLimit = 100

func (e *Engine) CanUndo() bool { return e.buf.CanUndo() }

func (e *Engine) CanRedo() bool { return e.buf.CanRedo() }

// Undo reverts the last edit. It reports false when there is nothing to undo.
func (e *Engine) Undo() bool {
	e.buf.SetCursor(e.bufferPos(e.cursor))
	if !e.buf.Undo() {
		return false
	}
	e.layoutAll(e.buf.Cursor())
	e.commit()
	return true
}

// Redo re-applies the last undone edit.
func (e *Engine) Redo() bool {
	e.buf.SetCursor(e.bufferPos(e.cursor))
	if !e.buf.Redo() {
		return false
	}
	e.layoutAll(e.buf.Cursor())
	e.commit()
	return true
}
