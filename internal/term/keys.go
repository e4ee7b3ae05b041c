package term

import (
	"sort"
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/kobzarvs/tedit/internal/editor"
	"github.com/kobzarvs/tedit/internal/logger"
)

// Keymap resolves key names such as "ctrl+a" or "left" to editor commands.
type Keymap struct {
	bindings map[string]editor.Command
}

// NewKeymap builds a keymap from config entries. Entries naming an unknown
// action are dropped with a warning so a typo in the config file does not
// keep the editor from starting.
func NewKeymap(entries map[string]string) *Keymap {
	km := &Keymap{bindings: make(map[string]editor.Command, len(entries))}
	for name, action := range entries {
		cmd, ok := editor.ParseCommand(strings.TrimSpace(action))
		if !ok {
			logger.Warn("unknown keymap action", "key", name, "action", action)
			continue
		}
		km.bindings[strings.ToLower(strings.TrimSpace(name))] = cmd
	}
	return km
}

func (k *Keymap) Lookup(name string) (editor.Command, bool) {
	cmd, ok := k.bindings[name]
	return cmd, ok
}

// Names lists the bound key names in sorted order.
func (k *Keymap) Names() []string {
	names := make([]string, 0, len(k.bindings))
	for name := range k.bindings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Input is one key event after translation: a key for HandleKey and, for
// keys that produce text, the character to hand to HandleChar.
type Input struct {
	Key     editor.Key
	Char    rune
	HasChar bool
}

// Translate turns a terminal key event into editor input. Bound keys map to
// their command; unbound control chords still count as chords so the mode
// machine sees them; anything that types text carries its character.
func (k *Keymap) Translate(ev *tcell.EventKey) Input {
	name := keyString(ev)
	ctrl := strings.HasPrefix(name, "ctrl+")
	if cmd, ok := k.Lookup(name); ok {
		return Input{Key: editor.Key{Command: cmd, Ctrl: ctrl}}
	}
	if ctrl {
		return Input{Key: editor.Key{Ctrl: true}}
	}
	if r, ok := textRune(ev); ok {
		return Input{Char: r, HasChar: true}
	}
	return Input{}
}

// textRune is the character a key types. Backspace and Delete map to the
// control characters the write path treats as deletions.
func textRune(ev *tcell.EventKey) (rune, bool) {
	if ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt|tcell.ModMeta) != 0 && ev.Key() == tcell.KeyRune {
		return 0, false
	}
	switch ev.Key() {
	case tcell.KeyRune:
		return ev.Rune(), true
	case tcell.KeyEnter:
		return '\r', true
	case tcell.KeyTab:
		return '\t', true
	case tcell.KeyBackspace2:
		return '\b', true
	case tcell.KeyDelete:
		return '\x7f', true
	}
	return 0, false
}

func keyString(ev *tcell.EventKey) string {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			if r == ' ' {
				return "ctrl+space"
			}
			return "ctrl+" + string(unicode.ToLower(r))
		}
		if ev.Modifiers()&tcell.ModAlt != 0 {
			return "alt+" + string(unicode.ToLower(r))
		}
		if r == ' ' {
			return "space"
		}
		return string(r)
	}
	// Enter, Tab and Ctrl+Space share codes with control chords.
	switch ev.Key() {
	case tcell.KeyEnter:
		return "enter"
	case tcell.KeyTab:
		return "tab"
	case tcell.KeyBacktab:
		return "shift+tab"
	case tcell.KeyCtrlSpace:
		return "ctrl+space"
	}
	if name := ctrlKeyName(ev.Key()); name != "" {
		return name
	}
	name := ""
	switch ev.Key() {
	case tcell.KeyUp:
		name = "up"
	case tcell.KeyDown:
		name = "down"
	case tcell.KeyLeft:
		name = "left"
	case tcell.KeyRight:
		name = "right"
	case tcell.KeyPgUp:
		name = "pgup"
	case tcell.KeyPgDn:
		name = "pgdn"
	case tcell.KeyHome:
		name = "home"
	case tcell.KeyEnd:
		name = "end"
	case tcell.KeyBackspace2:
		name = "backspace"
	case tcell.KeyDelete:
		name = "del"
	case tcell.KeyEscape:
		name = "esc"
	default:
		return ""
	}
	if ev.Modifiers()&tcell.ModCtrl != 0 {
		return "ctrl+" + name
	}
	return name
}

func ctrlKeyName(key tcell.Key) string {
	if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
		return "ctrl+" + string(rune('a'+int(key-tcell.KeyCtrlA)))
	}
	return ""
}
