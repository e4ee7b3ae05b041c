package editor

// Position is a (row, column) location inside a Buffer. Columns count
// characters, not display cells.
type Position struct {
	Row    int
	Column int
}

// MinMax orders two positions by row only. When both positions share a row
// the order is not decided by column: b comes first. Same-row callers take
// min/max of the columns themselves.
func MinMax(a, b Position) (Position, Position) {
	if a.Row < b.Row {
		return a, b
	}
	return b, a
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func clampRange(value, lo, hi int) int {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}
