package term

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/kobzarvs/tedit/internal/config"
	"github.com/kobzarvs/tedit/internal/editor"
)

// View is what the renderer reads from the editor each frame.
type View interface {
	LineCount() int
	Line(i int) string
	Selected(i int) (start, end int, ok bool)
	Cursor() editor.Position
	Mode() editor.Mode
	LongestLineLength() int
	Document() editor.Document
	Saved() bool
	StatusMessage() string
}

// Renderer draws a View onto a tcell screen: the text area with its
// scrollbars, a status line and a message line.
type Renderer struct {
	styleMain      tcell.Style
	styleSelection tcell.Style
	styleStatus    tcell.Style
	styleTrack     tcell.Style
	styleThumb     tcell.Style
	cursorColor    tcell.Color

	branch string
}

func NewRenderer(theme config.Theme) *Renderer {
	fg := parseColor(theme.Foreground, tcell.ColorWhite)
	bg := parseColor(theme.Background, tcell.ColorBlack)
	selFg := parseColor(theme.SelectionForeground, fg)
	selBg := parseColor(theme.SelectionBackground, tcell.ColorGray)
	statusFg := parseColor(theme.StatuslineForeground, fg)
	statusBg := parseColor(theme.StatuslineBackground, bg)
	return &Renderer{
		styleMain:      tcell.StyleDefault.Foreground(fg).Background(bg),
		styleSelection: tcell.StyleDefault.Foreground(selFg).Background(selBg),
		styleStatus:    tcell.StyleDefault.Foreground(statusFg).Background(statusBg),
		styleTrack:     tcell.StyleDefault.Foreground(statusBg).Background(statusBg),
		styleThumb:     tcell.StyleDefault.Foreground(selBg).Background(selBg),
		cursorColor:    parseColor(theme.Cursor, tcell.ColorDefault),
	}
}

// SetBranch sets the version-control branch shown in the status line.
func (r *Renderer) SetBranch(name string) {
	r.branch = name
}

// layout splits the screen. The last row holds messages and prompts, the
// one above it the status line. Scrollbars appear only when the content
// overflows the text area.
type layout struct {
	width, height int
	textW, textH  int
	vbar, hbar    bool
	statusY, msgY int
}

func computeLayout(w, h, lineCount, longest int) layout {
	l := layout{width: w, height: h, textW: w, msgY: h - 1, statusY: h - 2}
	l.textH = max(h-2, 0)
	if h < 2 {
		l.statusY = -1
		l.textH = 0
	}
	// Each bar can make room for the other one to become necessary.
	for i := 0; i < 2; i++ {
		if !l.hbar && longest+1 > l.textW && l.textH > 1 {
			l.hbar = true
			l.textH--
		}
		if !l.vbar && lineCount > l.textH && l.textW > 1 {
			l.vbar = true
			l.textW--
		}
	}
	return l
}

func (l layout) vscroll(v View, vp *Viewport) scrollbar {
	return scrollbar{total: v.LineCount(), visible: l.textH, offset: vp.Top, length: l.textH}
}

func (l layout) hscroll(v View, vp *Viewport) scrollbar {
	return scrollbar{total: v.LongestLineLength() + 1, visible: l.textW, offset: vp.Left, length: l.textW}
}

// Render draws one frame. When follow is set the viewport first scrolls to
// keep the cursor visible. An active prompt takes over the message line and
// the cursor.
func (r *Renderer) Render(s tcell.Screen, v View, vp *Viewport, follow bool, margin int, p *Prompt) {
	w, h := s.Size()
	l := computeLayout(w, h, v.LineCount(), v.LongestLineLength())
	if w <= 0 || h <= 0 {
		return
	}

	cur := v.Cursor()
	if follow {
		vp.Follow(cur.Row, cur.Column, []rune(v.Line(cur.Row)), l.textH, l.textW, margin)
	}
	vp.Top = clampRange(vp.Top, 0, maxTop(v.LineCount(), l.textH))
	// Left counts runes while the width counts cells, so a line of wide
	// runes can need more scroll than the longest line suggests.
	leftLimit := maxLeft(v.LongestLineLength(), l.textW)
	if follow {
		leftLimit = max(leftLimit, vp.Left)
	}
	vp.Left = clampRange(vp.Left, 0, leftLimit)

	s.SetStyle(r.styleMain)
	s.Clear()

	for y := 0; y < l.textH; y++ {
		row := vp.Top + y
		if row >= v.LineCount() {
			clearLine(s, y, l.textW, r.styleMain)
			continue
		}
		selStart, selEnd, ok := v.Selected(row)
		if !ok {
			selStart, selEnd = -1, -1
		}
		r.drawLine(s, y, l.textW, []rune(v.Line(row)), vp.Left, selStart, selEnd)
	}
	if l.vbar {
		r.drawScrollbar(s, l.vscroll(v, vp), true, l.textW)
	}
	if l.hbar {
		r.drawScrollbar(s, l.hscroll(v, vp), false, l.textH)
	}
	if l.statusY >= 0 {
		r.renderStatusline(s, v, w, l.statusY)
	}

	if p != nil && p.Active() {
		cx := r.renderPrompt(s, p, w, l.msgY)
		s.SetCursorStyle(tcell.CursorStyleSteadyBar, r.cursorColor)
		s.ShowCursor(cx, l.msgY)
		s.Show()
		return
	}
	r.renderMessage(s, v.StatusMessage(), w, l.msgY)

	cy := cur.Row - vp.Top
	cx := 0
	if line := []rune(v.Line(cur.Row)); vp.Left <= cur.Column {
		cx = cellWidth(line[vp.Left:clampRange(cur.Column, vp.Left, len(line))])
	} else {
		cy = -1
	}
	if cy < 0 || cy >= l.textH || cx >= l.textW {
		s.HideCursor()
		s.Show()
		return
	}
	cursorStyle := tcell.CursorStyleSteadyBlock
	if v.Mode() == editor.ModeInsert {
		cursorStyle = tcell.CursorStyleSteadyBar
	}
	s.SetCursorStyle(cursorStyle, r.cursorColor)
	s.ShowCursor(cx, cy)
	s.Show()
}

func (r *Renderer) drawLine(s tcell.Screen, y, w int, line []rune, left, selStart, selEnd int) {
	x := 0
	for idx := left; idx < len(line) && x < w; idx++ {
		ch := line[idx]
		style := r.styleMain
		if idx >= selStart && idx < selEnd {
			style = r.styleSelection
		}
		cw := runeCells(ch)
		if x+cw > w {
			break
		}
		if runewidth.RuneWidth(ch) == 0 {
			ch = ' '
		}
		s.SetContent(x, y, ch, nil, style)
		x += cw
	}
	for x < w {
		s.SetContent(x, y, ' ', nil, r.styleMain)
		x++
	}
}

func (r *Renderer) drawScrollbar(s tcell.Screen, b scrollbar, vertical bool, at int) {
	start, size := b.thumb()
	for i := 0; i < b.length; i++ {
		style := r.styleTrack
		if i >= start && i < start+size {
			style = r.styleThumb
		}
		if vertical {
			s.SetContent(at, i, ' ', nil, style)
		} else {
			s.SetContent(i, at, ' ', nil, style)
		}
	}
}

func (r *Renderer) renderStatusline(s tcell.Screen, v View, w, y int) {
	name := "[No Name]"
	if path, ok := v.Document().Path(); ok {
		name = filepath.Base(path)
	}
	dirty := ""
	if !v.Saved() {
		dirty = "*"
	}
	left := fmt.Sprintf(" %s | %s%s ", editor.ModeLabel(v.Mode()), name, dirty)

	cur := v.Cursor()
	right := fmt.Sprintf(" Ln %d, Col %d | %d lines ", cur.Row+1, cur.Column+1, v.LineCount())
	if r.branch != "" {
		right += "| " + r.branch + " "
	}

	line := composeStatusLine(left, right, w)
	x := 0
	for _, ch := range line {
		if x >= w {
			break
		}
		s.SetContent(x, y, ch, nil, r.styleStatus)
		x += runeCells(ch)
	}
	for ; x < w; x++ {
		s.SetContent(x, y, ' ', nil, r.styleStatus)
	}
}

func (r *Renderer) renderMessage(s tcell.Screen, msg string, w, y int) {
	x := 0
	for _, ch := range " " + msg {
		if x >= w {
			break
		}
		s.SetContent(x, y, ch, nil, r.styleMain)
		x += runeCells(ch)
	}
	for ; x < w; x++ {
		s.SetContent(x, y, ' ', nil, r.styleMain)
	}
}

// renderPrompt draws the prompt label and input and returns the cursor
// column. Long input scrolls so its end stays visible.
func (r *Renderer) renderPrompt(s tcell.Screen, p *Prompt, w, y int) int {
	label := []rune(p.Label())
	input := p.Input()
	room := w - cellWidth(label) - 1
	for len(input) > 0 && cellWidth(input) > room {
		input = input[1:]
	}
	x := 0
	for _, ch := range append(label, input...) {
		if x >= w {
			break
		}
		s.SetContent(x, y, ch, nil, r.styleStatus)
		x += runeCells(ch)
	}
	cx := x
	for ; x < w; x++ {
		s.SetContent(x, y, ' ', nil, r.styleStatus)
	}
	return min(cx, max(w-1, 0))
}

func clearLine(s tcell.Screen, y, w int, style tcell.Style) {
	for x := 0; x < w; x++ {
		s.SetContent(x, y, ' ', nil, style)
	}
}

// composeStatusLine pads left and right to width, cutting the left part
// first when both do not fit.
func composeStatusLine(left, right string, width int) []rune {
	if width <= 0 {
		return nil
	}
	leftRunes := []rune(left)
	rightRunes := []rune(right)
	if len(leftRunes)+len(rightRunes) > width {
		if len(rightRunes) >= width {
			rightRunes = rightRunes[len(rightRunes)-width:]
			leftRunes = nil
		} else {
			leftRunes = leftRunes[:width-len(rightRunes)]
		}
	}
	spaceCount := max(width-len(leftRunes)-len(rightRunes), 0)
	line := make([]rune, 0, width)
	line = append(line, leftRunes...)
	line = append(line, []rune(strings.Repeat(" ", spaceCount))...)
	line = append(line, rightRunes...)
	return line
}

func parseColor(name string, fallback tcell.Color) tcell.Color {
	name = strings.TrimSpace(name)
	if name == "" {
		return fallback
	}
	if strings.HasPrefix(name, "#") && len(name) == 7 {
		r, err1 := strconv.ParseInt(name[1:3], 16, 32)
		g, err2 := strconv.ParseInt(name[3:5], 16, 32)
		b, err3 := strconv.ParseInt(name[5:7], 16, 32)
		if err1 == nil && err2 == nil && err3 == nil {
			return tcell.NewRGBColor(int32(r), int32(g), int32(b))
		}
		return fallback
	}
	name = strings.ToLower(name)
	if name == "default" {
		return tcell.ColorDefault
	}
	c := tcell.GetColor(name)
	if c == tcell.ColorDefault {
		return fallback
	}
	return c
}
