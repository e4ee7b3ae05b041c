package editor

import (
	"strings"

	"github.com/kobzarvs/tedit/internal/logger"
)

// Copy replaces the clipboard with the text between the anchor and the
// cursor. With erase set the text is cut out of the buffer and the
// selection collapses to its start.
func (e *Editor) Copy(erase bool) {
	e.anchor = e.clampPosition(e.anchor)
	e.active = e.clampPosition(e.active)
	lo, hi := MinMax(e.anchor, e.active)
	minCol := minInt(e.anchor.Column, e.active.Column)
	maxCol := maxInt(e.anchor.Column, e.active.Column)

	var sb strings.Builder
	if lo.Row != hi.Row {
		for row := lo.Row; row <= hi.Row; row++ {
			line := e.buf.Line(row)
			start, end := 0, line.Len()
			if row == lo.Row {
				start = lo.Column
			}
			if row == hi.Row {
				end = hi.Column
			}
			sb.WriteString(line.Substring(start, end-start, erase))
			if row != hi.Row {
				sb.WriteByte('\n')
			}
		}
		if erase {
			e.buf.Line(lo.Row).Join(*e.buf.Line(hi.Row))
			e.buf.EraseLines(lo.Row+1, hi.Row+1)
			e.anchor = lo
			e.active = lo
		}
	} else {
		sb.WriteString(e.buf.Line(lo.Row).Substring(minCol, maxCol-minCol, erase))
	}
	e.clipboard = sb.String()
	e.cursor = Position{Row: lo.Row, Column: minCol}

	if erase {
		e.afterEdit(true)
	}
	e.mirrorClipboard()
}

// Paste types the clipboard back through the write path, so newlines split
// lines and tabs expand exactly as they do when typed.
func (e *Editor) Paste() {
	if e.clipboard == "" {
		return
	}
	changed := false
	for _, r := range e.clipboard {
		if e.write(r) {
			changed = true
		}
	}
	e.afterEdit(changed)
}

func (e *Editor) mirrorClipboard() {
	if e.sink == nil {
		return
	}
	if err := e.sink.SetClipboard(e.clipboard); err != nil {
		logger.Warn("clipboard mirror failed", "error", err)
	}
}
