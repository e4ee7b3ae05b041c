package term

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/kobzarvs/tedit/internal/config"
	"github.com/kobzarvs/tedit/internal/editor"
)

func newTestEditor(lines ...string) *editor.Editor {
	e := editor.New(config.Default())
	for _, r := range strings.Join(lines, "\n") {
		e.HandleChar(r)
	}
	e.MoveTo(editor.Position{})
	return e
}

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	t.Cleanup(s.Fini)
	s.SetSize(w, h)
	return s
}

func rowText(s tcell.SimulationScreen, y int) string {
	cells, w, _ := s.GetContents()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		c := cells[y*w+x]
		if len(c.Runes) == 0 {
			continue
		}
		sb.WriteRune(c.Runes[0])
	}
	return sb.String()
}

func cellAt(s tcell.SimulationScreen, x, y int) tcell.SimCell {
	cells, w, _ := s.GetContents()
	return cells[y*w+x]
}

func TestRenderLinesStatusAndCursor(t *testing.T) {
	e := newTestEditor("hello", "world")
	e.MoveTo(editor.Position{Row: 1, Column: 2})
	s := newTestScreen(t, 60, 5)
	u := New(s, e, config.Default())

	u.Draw()

	if got := rowText(s, 0); !strings.HasPrefix(got, "hello") {
		t.Fatalf("row 0 = %q, want prefix hello", got)
	}
	if got := rowText(s, 1); !strings.HasPrefix(got, "world") {
		t.Fatalf("row 1 = %q, want prefix world", got)
	}
	status := rowText(s, 3)
	if !strings.Contains(status, "INSERT") || !strings.Contains(status, "[No Name]*") {
		t.Fatalf("status = %q, want mode and unsaved name", status)
	}
	if !strings.Contains(status, "Ln 2, Col 3") {
		t.Fatalf("status = %q, want Ln 2, Col 3", status)
	}
	x, y, visible := s.GetCursor()
	if !visible || x != 2 || y != 1 {
		t.Fatalf("cursor = (%d,%d,%v), want (2,1,true)", x, y, visible)
	}
}

func TestRenderStatusMessage(t *testing.T) {
	e := newTestEditor("abc")
	e.SetStatusMessage("disk full")
	s := newTestScreen(t, 30, 5)
	u := New(s, e, config.Default())

	u.Draw()

	if got := rowText(s, 4); !strings.HasPrefix(got, " disk full") {
		t.Fatalf("message row = %q, want %q", got, " disk full")
	}
}

func TestRenderSelectionStyle(t *testing.T) {
	e := newTestEditor("abcdef")
	e.MoveTo(editor.Position{Column: 1})
	e.SetMode(editor.ModeVisual)
	e.MoveTo(editor.Position{Column: 4})
	s := newTestScreen(t, 60, 5)
	u := New(s, e, config.Default())

	u.Draw()

	for x := 0; x < 6; x++ {
		selected := x >= 1 && x < 4
		got := cellAt(s, x, 0).Style == u.renderer.styleSelection
		if got != selected {
			t.Fatalf("cell %d selected = %v, want %v", x, got, selected)
		}
	}
	if status := rowText(s, 3); !strings.Contains(status, "VISUAL") {
		t.Fatalf("status = %q, want VISUAL", status)
	}
}

func TestRenderFollowsCursorVertically(t *testing.T) {
	lines := make([]string, 10)
	for i := range lines {
		lines[i] = string(rune('a' + i))
	}
	e := newTestEditor(lines...)
	e.MoveTo(editor.Position{Row: 9})
	s := newTestScreen(t, 20, 5)
	u := New(s, e, config.Default())

	u.Draw()

	if u.Viewport().Top != 7 {
		t.Fatalf("top = %d, want 7", u.Viewport().Top)
	}
	if got := rowText(s, 0); !strings.HasPrefix(got, "h") {
		t.Fatalf("row 0 = %q, want prefix h", got)
	}
	_, y, visible := s.GetCursor()
	if !visible || y != 2 {
		t.Fatalf("cursor row = %d (%v), want 2", y, visible)
	}
}

func TestRenderScrollMargin(t *testing.T) {
	lines := make([]string, 20)
	e := newTestEditor(lines...)
	e.MoveTo(editor.Position{Row: 5})
	cfg := config.Default()
	cfg.Editor.ScrollMargin = 2
	s := newTestScreen(t, 20, 8)
	u := New(s, e, cfg)

	u.Draw()

	// Six text rows, so row 5 needs two rows of context below it.
	if u.Viewport().Top != 2 {
		t.Fatalf("top = %d, want 2", u.Viewport().Top)
	}
}

func TestRenderFollowsCursorHorizontally(t *testing.T) {
	e := newTestEditor(strings.Repeat("x", 30))
	e.MoveTo(editor.Position{Column: 30})
	s := newTestScreen(t, 10, 6)
	u := New(s, e, config.Default())

	u.Draw()

	if u.Viewport().Left != 21 {
		t.Fatalf("left = %d, want 21", u.Viewport().Left)
	}
	x, _, visible := s.GetCursor()
	if !visible || x != 9 {
		t.Fatalf("cursor x = %d (%v), want 9", x, visible)
	}
}

func TestRenderWideRunes(t *testing.T) {
	e := newTestEditor("世界x")
	e.MoveTo(editor.Position{Column: 2})
	s := newTestScreen(t, 20, 5)
	u := New(s, e, config.Default())

	u.Draw()

	x, _, _ := s.GetCursor()
	if x != 4 {
		t.Fatalf("cursor x = %d, want 4", x)
	}
	if c := cellAt(s, 4, 0); len(c.Runes) == 0 || c.Runes[0] != 'x' {
		t.Fatalf("cell 4 = %q, want x", c.Runes)
	}
}

func TestRenderKeepsCursorAtEndOfWideRuneLine(t *testing.T) {
	e := newTestEditor(strings.Repeat("世", 30))
	e.MoveTo(editor.Position{Column: 30})
	s := newTestScreen(t, 10, 6)
	u := New(s, e, config.Default())

	u.Draw()

	// Four wide runes fill eight cells and the cursor takes the ninth.
	if u.Viewport().Left != 26 {
		t.Fatalf("left = %d, want 26", u.Viewport().Left)
	}
	x, _, visible := s.GetCursor()
	if !visible || x != 8 {
		t.Fatalf("cursor x = %d (%v), want 8", x, visible)
	}
}

func TestComputeLayoutScrollbars(t *testing.T) {
	l := computeLayout(20, 5, 1, 3)
	if l.vbar || l.hbar || l.textW != 20 || l.textH != 3 {
		t.Fatalf("layout = %+v, want no bars and a 20x3 text area", l)
	}
	l = computeLayout(20, 5, 10, 3)
	if !l.vbar || l.hbar || l.textW != 19 {
		t.Fatalf("layout = %+v, want vertical bar only", l)
	}
	l = computeLayout(20, 5, 2, 40)
	if !l.hbar || l.textH != 2 {
		t.Fatalf("layout = %+v, want horizontal bar", l)
	}
	// The horizontal bar eats a row, which pushes three lines past the view.
	l = computeLayout(20, 5, 3, 40)
	if !l.hbar || !l.vbar {
		t.Fatalf("layout = %+v, want both bars", l)
	}
}

func TestScrollbarThumb(t *testing.T) {
	b := scrollbar{total: 10, visible: 3, offset: 0, length: 3}
	if start, size := b.thumb(); start != 0 || size != 1 {
		t.Fatalf("thumb = (%d,%d), want (0,1)", start, size)
	}
	b.offset = 7
	if start, _ := b.thumb(); start != 2 {
		t.Fatalf("thumb start at end = %d, want 2", start)
	}
	if got := b.offsetFor(2); got != 7 {
		t.Fatalf("offsetFor(2) = %d, want 7", got)
	}
	if got := b.offsetFor(-5); got != 0 {
		t.Fatalf("offsetFor(-5) = %d, want 0", got)
	}
	full := scrollbar{total: 2, visible: 5, length: 5}
	if start, size := full.thumb(); start != 0 || size != 5 {
		t.Fatalf("thumb without overflow = (%d,%d), want (0,5)", start, size)
	}
}

func TestColumnAt(t *testing.T) {
	line := []rune("a世b")
	tests := []struct {
		x, want int
	}{
		{-1, 0},
		{0, 0},
		{1, 1},
		{2, 1},
		{3, 2},
		{9, 3},
	}
	for _, tt := range tests {
		if got := columnAt(line, tt.x); got != tt.want {
			t.Fatalf("columnAt(%d) = %d, want %d", tt.x, got, tt.want)
		}
	}
}

func TestComposeStatusLine(t *testing.T) {
	got := string(composeStatusLine("left", "right", 12))
	if got != "left   right" {
		t.Fatalf("status = %q, want %q", got, "left   right")
	}
	got = string(composeStatusLine("left", "right", 7))
	if got != "leright" {
		t.Fatalf("status = %q, want %q", got, "leright")
	}
}

func TestParseColor(t *testing.T) {
	if got := parseColor("#ff0000", tcell.ColorBlue); got != tcell.NewRGBColor(255, 0, 0) {
		t.Fatalf("parseColor = %v, want red", got)
	}
	if got := parseColor("#zz0000", tcell.ColorBlue); got != tcell.ColorBlue {
		t.Fatalf("parseColor bad hex = %v, want fallback", got)
	}
	if got := parseColor("", tcell.ColorBlue); got != tcell.ColorBlue {
		t.Fatalf("parseColor empty = %v, want fallback", got)
	}
}
