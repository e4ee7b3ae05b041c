package editor

// Command is an abstract editor command. Input frontends translate device
// events into commands; the Editor never sees raw key codes.
type Command int

const (
	CmdNone Command = iota
	CmdBegin
	CmdEnd
	CmdUp
	CmdDown
	CmdLeft
	CmdRight
	CmdDeleteForward
	CmdDeleteBackward
	CmdToggleVisual
	CmdPaste
	CmdCopy
	CmdCut
	CmdSave
	CmdOpen
	CmdQuit
)

var commandNames = map[Command]string{
	CmdBegin:          "begin",
	CmdEnd:            "end",
	CmdUp:             "up",
	CmdDown:           "down",
	CmdLeft:           "left",
	CmdRight:          "right",
	CmdDeleteForward:  "delete_forward",
	CmdDeleteBackward: "delete_backward",
	CmdToggleVisual:   "toggle_visual",
	CmdPaste:          "paste",
	CmdCopy:           "copy",
	CmdCut:            "cut",
	CmdSave:           "save",
	CmdOpen:           "open",
	CmdQuit:           "quit",
}

var commandsByName = func() map[string]Command {
	m := make(map[string]Command, len(commandNames))
	for c, name := range commandNames {
		m[name] = c
	}
	return m
}()

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return "none"
}

// ParseCommand resolves a keymap action name.
func ParseCommand(name string) (Command, bool) {
	c, ok := commandsByName[name]
	return c, ok
}

func (c Command) direction() (Direction, bool) {
	switch c {
	case CmdBegin:
		return DirBegin, true
	case CmdEnd:
		return DirEnd, true
	case CmdUp:
		return DirUp, true
	case CmdDown:
		return DirDown, true
	case CmdLeft:
		return DirLeft, true
	case CmdRight:
		return DirRight, true
	}
	return 0, false
}

// Key is one key press after translation. Ctrl is set for control chords;
// Command is CmdNone for keys with no binding.
type Key struct {
	Command Command
	Ctrl    bool
}
