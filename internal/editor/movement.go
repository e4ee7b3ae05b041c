package editor

// Move steps the cursor. The column is clamped to the target line; row
// count and content never change. In Visual the selection follows.
func (e *Editor) Move(d Direction) {
	switch d {
	case DirBegin:
		e.cursor.Column = 0
	case DirEnd:
		e.cursor.Column = e.buf.Line(e.cursor.Row).Len()
	case DirUp:
		if e.cursor.Row > 0 {
			e.cursor.Row--
			e.clampCursorCol()
		}
	case DirDown:
		if e.cursor.Row < e.buf.LineCount()-1 {
			e.cursor.Row++
			e.clampCursorCol()
		}
	case DirLeft:
		if e.cursor.Column > 0 {
			e.cursor.Column--
		}
	case DirRight:
		if e.cursor.Column < e.buf.Line(e.cursor.Row).Len() {
			e.cursor.Column++
		}
	}
	if e.mode == ModeVisual {
		e.handleSelect()
	}
}

// MoveTo places the cursor at p, clamped into the buffer. Used for mouse
// clicks, which can jump several rows at once, so the Visual highlight is
// rebuilt from scratch.
func (e *Editor) MoveTo(p Position) {
	e.cursor = e.clampPosition(p)
	if e.mode == ModeVisual {
		e.reselect()
	}
}

func (e *Editor) clampCursorCol() {
	if n := e.buf.Line(e.cursor.Row).Len(); e.cursor.Column > n {
		e.cursor.Column = n
	}
}

func (e *Editor) clampPosition(p Position) Position {
	p.Row = clampRange(p.Row, 0, e.buf.LineCount()-1)
	p.Column = clampRange(p.Column, 0, e.buf.Line(p.Row).Len())
	return p
}

// handleSelect repaints the highlight between the anchor and the cursor.
func (e *Editor) handleSelect() {
	e.active = e.cursor
	lo, hi := MinMax(e.anchor, e.active)

	for row := lo.Row + 1; row < hi.Row; row++ {
		line := e.buf.Line(row)
		line.Select(0, line.Len())
	}

	if lo.Row-1 >= 0 {
		e.buf.Line(lo.Row - 1).Unselect()
	}
	if hi.Row+1 < e.buf.LineCount() {
		e.buf.Line(hi.Row + 1).Unselect()
	}

	if lo.Row != hi.Row {
		first := e.buf.Line(lo.Row)
		first.Select(lo.Column, first.Len())
		e.buf.Line(hi.Row).Select(0, hi.Column)
		return
	}
	e.buf.Line(hi.Row).Select(minInt(e.anchor.Column, e.active.Column), maxInt(e.anchor.Column, e.active.Column))
}

// reselect brings the selection back in line after an edit or a jump:
// the anchor is clamped into the current buffer and every highlight is
// repainted.
func (e *Editor) reselect() {
	e.anchor = e.clampPosition(e.anchor)
	e.buf.unselectRows(0, e.buf.LineCount()-1)
	e.handleSelect()
}
