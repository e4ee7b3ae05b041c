package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/kobzarvs/tedit/internal/config"
	"github.com/kobzarvs/tedit/internal/editor"
	"github.com/kobzarvs/tedit/internal/logger"
)

const wheelStep = 3

// Editor is the part of the core the terminal frontend drives.
type Editor interface {
	View
	HandleKey(k editor.Key) bool
	HandleChar(r rune)
	MoveTo(p editor.Position)
}

type dragKind int

const (
	dragNone dragKind = iota
	dragText
	dragVertical
	dragHorizontal
)

// UI is the terminal frontend: it turns tcell events into editor input and
// redraws after each one.
type UI struct {
	screen   tcell.Screen
	ed       Editor
	keymap   *Keymap
	renderer *Renderer
	prompt   *Prompt

	vp     Viewport
	follow bool
	margin int

	mouseDown bool
	drag      dragKind
	grab      int

	onTick func()
}

func New(s tcell.Screen, ed Editor, cfg config.Config) *UI {
	u := &UI{
		screen:   s,
		ed:       ed,
		keymap:   NewKeymap(cfg.Keymap),
		renderer: NewRenderer(cfg.Theme),
		follow:   true,
		margin:   cfg.Editor.ScrollMargin,
	}
	u.prompt = NewPrompt(s, u.Draw)
	return u
}

// Prompt is the path chooser backed by this screen.
func (u *UI) Prompt() *Prompt {
	return u.prompt
}

func (u *UI) SetBranch(name string) {
	u.renderer.SetBranch(name)
}

// SetTick installs a hook run on every interrupt event posted to the screen.
func (u *UI) SetTick(fn func()) {
	u.onTick = fn
}

func (u *UI) Viewport() Viewport {
	return u.vp
}

func (u *UI) Draw() {
	u.renderer.Render(u.screen, u.ed, &u.vp, u.follow, u.margin, u.prompt)
}

// Run polls events until the editor asks to quit or the screen goes away.
func (u *UI) Run() error {
	u.Draw()
	for {
		ev := u.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if u.HandleEvent(ev) {
			logger.Info("quit requested")
			return nil
		}
		u.Draw()
	}
}

// HandleEvent applies one event and reports whether it asked to quit.
func (u *UI) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return u.handleKey(ev)
	case *tcell.EventMouse:
		u.handleMouse(ev)
	case *tcell.EventResize:
		u.screen.Sync()
		u.follow = true
	case *tcell.EventInterrupt:
		if u.onTick != nil {
			u.onTick()
		}
	}
	return false
}

func (u *UI) handleKey(ev *tcell.EventKey) bool {
	in := u.keymap.Translate(ev)
	u.follow = true
	if u.ed.HandleKey(in.Key) {
		return true
	}
	if in.HasChar {
		u.ed.HandleChar(in.Char)
	}
	return false
}

func (u *UI) layout() layout {
	w, h := u.screen.Size()
	return computeLayout(w, h, u.ed.LineCount(), u.ed.LongestLineLength())
}

func (u *UI) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	l := u.layout()
	btn := ev.Buttons()
	switch {
	case btn&tcell.WheelUp != 0:
		u.vp.ScrollBy(-wheelStep, u.ed.LineCount(), l.textH)
		u.follow = false
	case btn&tcell.WheelDown != 0:
		u.vp.ScrollBy(wheelStep, u.ed.LineCount(), l.textH)
		u.follow = false
	case btn&tcell.WheelLeft != 0:
		u.vp.ScrollXBy(-wheelStep, u.ed.LongestLineLength(), l.textW)
		u.follow = false
	case btn&tcell.WheelRight != 0:
		u.vp.ScrollXBy(wheelStep, u.ed.LongestLineLength(), l.textW)
		u.follow = false
	case btn&tcell.Button1 != 0:
		if !u.mouseDown {
			u.mouseDown = true
			u.press(l, x, y)
			return
		}
		u.dragTo(l, x, y)
	default:
		u.mouseDown = false
		u.drag = dragNone
	}
}

// press starts a click: on a scrollbar it grabs the thumb (jumping to the
// click when it lands on the track), in the text area it moves the cursor.
func (u *UI) press(l layout, x, y int) {
	switch {
	case l.vbar && x == l.textW && y < l.textH:
		u.drag = dragVertical
		u.grab = grabOffset(l.vscroll(u.ed, &u.vp), y)
		u.dragTo(l, x, y)
	case l.hbar && y == l.textH && x < l.textW:
		u.drag = dragHorizontal
		u.grab = grabOffset(l.hscroll(u.ed, &u.vp), x)
		u.dragTo(l, x, y)
	case x < l.textW && y < l.textH:
		u.drag = dragText
		u.moveToCell(l, x, y)
	default:
		u.drag = dragNone
	}
}

func (u *UI) dragTo(l layout, x, y int) {
	switch u.drag {
	case dragVertical:
		u.vp.Top = l.vscroll(u.ed, &u.vp).offsetFor(y - u.grab)
		u.follow = false
	case dragHorizontal:
		u.vp.Left = l.hscroll(u.ed, &u.vp).offsetFor(x - u.grab)
		u.follow = false
	case dragText:
		u.moveToCell(l, x, y)
	}
}

// grabOffset is where inside the thumb the pointer holds it. A press on the
// track grabs the thumb by its middle so it centres under the pointer.
func grabOffset(b scrollbar, pos int) int {
	start, size := b.thumb()
	if pos >= start && pos < start+size {
		return pos - start
	}
	return size / 2
}

// moveToCell puts the cursor on the character drawn at screen cell (x, y).
func (u *UI) moveToCell(l layout, x, y int) {
	x = clampRange(x, 0, max(l.textW-1, 0))
	y = clampRange(y, 0, max(l.textH-1, 0))
	row := clampRange(u.vp.Top+y, 0, u.ed.LineCount()-1)
	line := []rune(u.ed.Line(row))
	left := min(u.vp.Left, len(line))
	col := left + columnAt(line[left:], x)
	u.ed.MoveTo(editor.Position{Row: row, Column: col})
	u.follow = true
}
