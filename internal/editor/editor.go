package editor

import (
	"strings"

	"github.com/kobzarvs/tedit/internal/config"
	"github.com/kobzarvs/tedit/internal/logger"
)

// Editor owns the buffer, cursor, mode, selection and clipboard of one
// document. It is not safe for concurrent use; events are handled one at a
// time to completion.
type Editor struct {
	buf       *Buffer
	cursor    Position
	mode      Mode
	anchor    Position // selection start captured on entering Visual
	active    Position // selection end, follows the cursor in Visual
	clipboard string
	doc       Document
	saved     bool
	tabWidth  int

	statusMessage string

	storage Storage
	chooser PathChooser
	sink    ClipboardSink
}

func New(cfg config.Config) *Editor {
	tabWidth := cfg.Editor.TabWidth
	if tabWidth < 1 {
		logger.Warn("invalid tab width, using 1", "tab-width", cfg.Editor.TabWidth)
		tabWidth = 1
	}
	return &Editor{
		buf:      NewBuffer(),
		mode:     ModeInsert,
		doc:      Unbound(),
		tabWidth: tabWidth,
	}
}

func (e *Editor) SetStorage(s Storage) {
	e.storage = s
}

func (e *Editor) SetPathChooser(c PathChooser) {
	e.chooser = c
}

func (e *Editor) SetClipboardSink(s ClipboardSink) {
	e.sink = s
}

// HandleKey processes one translated key press and reports whether the
// user asked to quit.
//
// A control chord outside Visual switches to Normal before its command
// runs. A plain key outside Visual returns to Insert; bound plain keys
// (arrows and the like) still run their command.
func (e *Editor) HandleKey(k Key) bool {
	e.statusMessage = ""
	if k.Ctrl {
		if e.mode != ModeVisual {
			e.SetMode(ModeNormal)
		}
		return e.Exec(k.Command)
	}
	if e.mode != ModeVisual {
		e.SetMode(ModeInsert)
	}
	if k.Command == CmdNone {
		return false
	}
	return e.Exec(k.Command)
}

// HandleChar routes typed text. Only Insert mode writes.
func (e *Editor) HandleChar(r rune) {
	if e.mode != ModeInsert {
		return
	}
	e.Write(r)
}

// HandleRelease reacts to a key release from frontends that report them:
// letting go of the control modifier outside Visual returns to Insert.
func (e *Editor) HandleRelease(ctrl bool) {
	if !ctrl && e.mode != ModeVisual {
		e.SetMode(ModeInsert)
	}
}

// Exec runs a single command and reports whether it was a quit request.
func (e *Editor) Exec(c Command) bool {
	if d, ok := c.direction(); ok {
		e.Move(d)
		return false
	}
	switch c {
	case CmdDeleteForward:
		e.DeleteForward()
	case CmdDeleteBackward:
		e.DeleteBackward()
	case CmdToggleVisual:
		e.ToggleVisual()
	case CmdPaste:
		e.Paste()
	case CmdCopy, CmdCut:
		if e.mode == ModeVisual {
			e.Copy(c == CmdCut)
			e.SetMode(ModeNormal)
		}
	case CmdSave:
		wrote, err := e.save()
		switch {
		case err != nil:
			e.setStatus(err.Error())
		case wrote:
			path, _ := e.doc.Path()
			e.setStatus("saved " + path)
		}
	case CmdOpen:
		if err := e.Open(); err != nil {
			e.setStatus(err.Error())
		}
	case CmdQuit:
		return true
	}
	return false
}

// SetMode switches mode. Leaving Visual clears every highlight over the
// anchor..active rows; entering Visual anchors the selection at the cursor.
func (e *Editor) SetMode(m Mode) {
	if e.mode == ModeVisual {
		e.buf.unselectRows(minInt(e.anchor.Row, e.active.Row), maxInt(e.anchor.Row, e.active.Row))
	}
	if e.mode != m {
		logger.Debug("mode change", "from", ModeLabel(e.mode), "to", ModeLabel(m))
	}
	e.mode = m
	if m == ModeVisual {
		e.anchor = e.cursor
		e.active = e.cursor
	}
}

func (e *Editor) ToggleVisual() {
	if e.mode == ModeVisual {
		e.SetMode(ModeNormal)
		return
	}
	e.SetMode(ModeVisual)
}

func (e *Editor) setStatus(msg string) {
	e.statusMessage = msg
}

func (e *Editor) Mode() Mode {
	return e.mode
}

func (e *Editor) Cursor() Position {
	return e.cursor
}

// Anchor is the fixed end of the Visual selection.
func (e *Editor) Anchor() Position {
	return e.anchor
}

func (e *Editor) LineCount() int {
	return e.buf.LineCount()
}

func (e *Editor) Line(i int) string {
	return e.buf.Line(i).String()
}

func (e *Editor) LineLen(i int) int {
	return e.buf.Line(i).Len()
}

func (e *Editor) Lines() []string {
	return e.buf.Strings()
}

// Selected returns the highlighted column span of line i.
func (e *Editor) Selected(i int) (int, int, bool) {
	return e.buf.Line(i).Selection()
}

func (e *Editor) LongestLineLength() int {
	return e.buf.Longest()
}

func (e *Editor) Clipboard() string {
	return e.clipboard
}

func (e *Editor) Saved() bool {
	return e.saved
}

func (e *Editor) Document() Document {
	return e.doc
}

func (e *Editor) Content() string {
	return e.buf.Content()
}

func (e *Editor) StatusMessage() string {
	return e.statusMessage
}

// SetStatusMessage lets the frontend report its own errors in the status bar.
func (e *Editor) SetStatusMessage(msg string) {
	e.statusMessage = strings.TrimSpace(msg)
}
