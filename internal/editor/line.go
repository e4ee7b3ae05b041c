package editor

// Line is one row of text plus the highlight span the selection logic
// paints on it. Index arguments are trusted: callers go through the guarded
// Editor paths, and an out-of-range index panics like any slice access.
type Line struct {
	text []rune

	selected bool
	selStart int
	selEnd   int
}

func NewLine(s string) Line {
	return Line{text: []rune(s)}
}

func (l *Line) Len() int {
	return len(l.text)
}

func (l *Line) Empty() bool {
	return len(l.text) == 0
}

func (l *Line) String() string {
	return string(l.text)
}

func (l *Line) InsertChar(col int, r rune) {
	l.text = append(l.text, 0)
	copy(l.text[col+1:], l.text[col:])
	l.text[col] = r
}

// InsertString inserts s as one contiguous block starting at col.
func (l *Line) InsertString(col int, s string) {
	rs := []rune(s)
	if len(rs) == 0 {
		return
	}
	out := make([]rune, 0, len(l.text)+len(rs))
	out = append(out, l.text[:col]...)
	out = append(out, rs...)
	out = append(out, l.text[col:]...)
	l.text = out
}

// EraseChar removes the character before col (backspace semantics), so
// col must be at least 1.
func (l *Line) EraseChar(col int) {
	idx := col - 1
	copy(l.text[idx:], l.text[idx+1:])
	l.text = l.text[:len(l.text)-1]
}

// Split truncates the line at col and returns the removed tail as a new line.
func (l *Line) Split(col int) Line {
	tail := append([]rune(nil), l.text[col:]...)
	l.text = l.text[:col:col]
	return Line{text: tail}
}

// Join appends other's text. The caller drops other afterwards.
func (l *Line) Join(other Line) {
	l.text = append(l.text, other.text...)
}

// Substring returns n characters starting at start, removing them from the
// line when erase is set.
func (l *Line) Substring(start, n int, erase bool) string {
	s := string(l.text[start : start+n])
	if erase && n > 0 {
		l.text = append(l.text[:start], l.text[start+n:]...)
	}
	return s
}

// Select marks [start, end) as highlighted.
func (l *Line) Select(start, end int) {
	l.selected = true
	l.selStart = start
	l.selEnd = end
}

func (l *Line) Unselect() {
	l.selected = false
	l.selStart = 0
	l.selEnd = 0
}

// Selection reports the highlighted column span clamped to the current
// text. ok is false when nothing visible is highlighted.
func (l *Line) Selection() (start, end int, ok bool) {
	if !l.selected {
		return 0, 0, false
	}
	start = clampRange(l.selStart, 0, len(l.text))
	end = clampRange(l.selEnd, 0, len(l.text))
	if end <= start {
		return 0, 0, false
	}
	return start, end, true
}
