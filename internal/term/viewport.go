package term

import "github.com/mattn/go-runewidth"

// Viewport holds the scroll offsets of the text area. Top is the first
// visible row and Left the first visible column, both in buffer units.
type Viewport struct {
	Top  int
	Left int
}

// Follow scrolls just enough to keep the cursor on screen, keeping margin
// rows of context above and below it when the view is tall enough.
func (v *Viewport) Follow(row, col int, line []rune, height, width, margin int) {
	if height > 0 {
		margin = clampRange(margin, 0, (height-1)/2)
		if row < v.Top+margin {
			v.Top = row - margin
		}
		if row >= v.Top+height-margin {
			v.Top = row - height + margin + 1
		}
		if v.Top < 0 {
			v.Top = 0
		}
	}
	if width > 0 {
		col = clampRange(col, 0, len(line))
		if col < v.Left {
			v.Left = col
		}
		v.Left = clampRange(v.Left, 0, len(line))
		// The cursor cell itself must fit, so stop one cell short.
		for v.Left < col && cellWidth(line[v.Left:col])+1 > width {
			v.Left++
		}
	}
}

// ScrollBy moves Top by delta rows, never past the last line.
func (v *Viewport) ScrollBy(delta, lineCount, height int) {
	v.Top = clampRange(v.Top+delta, 0, maxTop(lineCount, height))
}

// ScrollXBy moves Left by delta columns within the longest line.
func (v *Viewport) ScrollXBy(delta, longest, width int) {
	v.Left = clampRange(v.Left+delta, 0, maxLeft(longest, width))
}

func maxTop(lineCount, height int) int {
	if lineCount <= height {
		return 0
	}
	return lineCount - height
}

func maxLeft(longest, width int) int {
	// One extra column lets the cursor sit after the last character.
	if longest+1 <= width {
		return 0
	}
	return longest + 1 - width
}

// scrollbar is the geometry of one scrollbar track of length cells showing
// visible of total units, scrolled to offset.
type scrollbar struct {
	total   int
	visible int
	offset  int
	length  int
}

// thumb returns the first cell and the size of the thumb.
func (b scrollbar) thumb() (start, size int) {
	if b.length <= 0 {
		return 0, 0
	}
	if b.total <= b.visible {
		return 0, b.length
	}
	size = max(1, b.length*b.visible/b.total)
	span := b.total - b.visible
	start = (b.length - size) * clampRange(b.offset, 0, span) / span
	return start, size
}

// offsetFor maps a thumb start cell back to a scroll offset.
func (b scrollbar) offsetFor(thumbStart int) int {
	_, size := b.thumb()
	free := b.length - size
	span := b.total - b.visible
	if free <= 0 || span <= 0 {
		return 0
	}
	thumbStart = clampRange(thumbStart, 0, free)
	return (thumbStart*span + free/2) / free
}

// cellWidth is the terminal width of runes. Zero-width and control runes
// still take a cell so the cursor stays addressable.
func cellWidth(rs []rune) int {
	w := 0
	for _, r := range rs {
		w += runeCells(r)
	}
	return w
}

func runeCells(r rune) int {
	if w := runewidth.RuneWidth(r); w > 0 {
		return w
	}
	return 1
}

// columnAt maps a cell offset x, measured from the start of rs, to the
// column of the rune drawn there. Clicks past the end land after the last
// rune.
func columnAt(rs []rune, x int) int {
	if x <= 0 {
		return 0
	}
	cells := 0
	for i, r := range rs {
		w := runeCells(r)
		if cells+w > x {
			return i
		}
		cells += w
	}
	return len(rs)
}

func clampRange(value, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}
