package editor

type Mode int

const (
	ModeInsert Mode = iota
	ModeNormal
	ModeVisual
)

// ModeLabel is the status-bar name of a mode.
func ModeLabel(m Mode) string {
	switch m {
	case ModeInsert:
		return "INSERT"
	case ModeNormal:
		return "NORMAL"
	case ModeVisual:
		return "VISUAL"
	}
	return "UNKNOWN"
}

type Direction int

const (
	DirBegin Direction = iota
	DirEnd
	DirUp
	DirDown
	DirLeft
	DirRight
)
