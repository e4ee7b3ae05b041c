package editor

import "strings"

const (
	charBackspace = '\b'
	charDelete    = '\x7f'
)

// Write is the single entry point for character-level edits: CR and LF
// split the line, backspace and DEL delete, Tab inserts spaces, anything
// else is inserted at the cursor.
func (e *Editor) Write(r rune) {
	e.afterEdit(e.write(r))
}

func (e *Editor) InsertNewline() {
	e.afterEdit(e.insertNewline())
}

func (e *Editor) InsertTab() {
	e.afterEdit(e.insertTab())
}

func (e *Editor) DeleteForward() {
	e.afterEdit(e.deleteForward())
}

func (e *Editor) DeleteBackward() {
	e.afterEdit(e.deleteBackward())
}

// write applies one character without the per-edit bookkeeping, so replay
// loops (paste, open) can defer it to the end.
func (e *Editor) write(r rune) bool {
	switch r {
	case '\r', '\n':
		return e.insertNewline()
	case charBackspace:
		return e.deleteBackward()
	case charDelete:
		return e.deleteForward()
	case '\t':
		return e.insertTab()
	}
	e.buf.Line(e.cursor.Row).InsertChar(e.cursor.Column, r)
	e.cursor.Column++
	return true
}

// afterEdit recomputes the longest line and marks the document unsaved
// when the buffer changed. A guarded no-op leaves the saved flag alone.
func (e *Editor) afterEdit(changed bool) {
	if !changed {
		return
	}
	e.buf.RecomputeLongest()
	e.saved = false
	if e.mode == ModeVisual {
		e.reselect()
	}
}

func (e *Editor) insertNewline() bool {
	line := e.buf.Line(e.cursor.Row)
	tail := line.Split(e.cursor.Column)
	e.cursor.Row++
	e.cursor.Column = 0
	e.buf.InsertLine(e.cursor.Row, tail)
	return true
}

func (e *Editor) insertTab() bool {
	e.buf.Line(e.cursor.Row).InsertString(e.cursor.Column, strings.Repeat(" ", e.tabWidth))
	e.cursor.Column += e.tabWidth
	return true
}

// deleteForward removes the character under the cursor, or pulls the next
// line up when the cursor sits at the end of a line.
func (e *Editor) deleteForward() bool {
	pos := e.cursor
	line := e.buf.Line(pos.Row)
	if pos.Column < line.Len() {
		line.EraseChar(pos.Column + 1)
		return true
	}
	if pos.Row < e.buf.LineCount()-1 {
		line.Join(*e.buf.Line(pos.Row + 1))
		e.buf.EraseLine(pos.Row + 1)
		return true
	}
	return false
}

func (e *Editor) deleteBackward() bool {
	pos := e.cursor
	line := e.buf.Line(pos.Row)
	if pos.Row != 0 && pos.Column == 0 {
		prev := e.buf.Line(pos.Row - 1)
		e.cursor.Column = prev.Len()
		if !line.Empty() {
			prev.Join(*line)
		}
		e.buf.EraseLine(pos.Row)
		e.cursor.Row--
		return true
	}
	if !line.Empty() && pos.Column > 0 {
		line.EraseChar(pos.Column)
		e.cursor.Column--
		return true
	}
	return false
}
