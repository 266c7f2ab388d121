package textedit

// ChangeEvent is passed to Config.OnChange after every effective change to
// the text or the cursor.
type ChangeEvent struct {
	Version uint64
	Cursor  Pos
	Text    string
}

func (e *Engine) emitChange() {
	if e.cfg.OnChange == nil {
		return
	}
	e.cfg.OnChange(ChangeEvent{
		Version: e.version,
		Cursor:  e.cursor,
		Text:    e.Text(),
	})
}
