package editor

import "strings"

// Buffer owns the document lines. It always holds at least one line.
type Buffer struct {
	lines   []Line
	longest int
}

func NewBuffer(lines ...string) *Buffer {
	b := &Buffer{}
	if len(lines) == 0 {
		lines = []string{""}
	}
	b.lines = make([]Line, len(lines))
	for i, s := range lines {
		b.lines[i] = NewLine(s)
	}
	b.RecomputeLongest()
	return b
}

func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// Line returns the line at idx for in-place mutation. The pointer is only
// valid until the next structural change.
func (b *Buffer) Line(idx int) *Line {
	return &b.lines[idx]
}

func (b *Buffer) InsertLine(idx int, l Line) {
	b.lines = append(b.lines, Line{})
	copy(b.lines[idx+1:], b.lines[idx:])
	b.lines[idx] = l
}

// EraseLine removes the line at idx. It refuses to remove the last
// remaining line and reports whether anything was removed.
func (b *Buffer) EraseLine(idx int) bool {
	if len(b.lines) <= 1 || idx < 0 || idx >= len(b.lines) {
		return false
	}
	b.lines = append(b.lines[:idx], b.lines[idx+1:]...)
	return true
}

// EraseLines removes rows [from, to). Like EraseLine it never empties the
// buffer: a request covering every line leaves one empty line behind.
func (b *Buffer) EraseLines(from, to int) {
	from = clampRange(from, 0, len(b.lines))
	to = clampRange(to, from, len(b.lines))
	if from == to {
		return
	}
	b.lines = append(b.lines[:from], b.lines[to:]...)
	if len(b.lines) == 0 {
		b.lines = []Line{{}}
	}
}

// RecomputeLongest rescans every line and returns the longest length.
func (b *Buffer) RecomputeLongest() int {
	longest := 0
	for i := range b.lines {
		if n := b.lines[i].Len(); n > longest {
			longest = n
		}
	}
	b.longest = longest
	return longest
}

func (b *Buffer) Longest() int {
	return b.longest
}

func (b *Buffer) Strings() []string {
	out := make([]string, len(b.lines))
	for i := range b.lines {
		out[i] = b.lines[i].String()
	}
	return out
}

// Content joins every line with a single newline.
func (b *Buffer) Content() string {
	var sb strings.Builder
	for i := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(b.lines[i].text))
	}
	return sb.String()
}

func (b *Buffer) unselectRows(from, to int) {
	from = maxInt(from, 0)
	to = minInt(to, len(b.lines)-1)
	for i := from; i <= to; i++ {
		b.lines[i].Unselect()
	}
}
