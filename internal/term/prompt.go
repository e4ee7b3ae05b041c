package term

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/kobzarvs/tedit/internal/logger"
)

// Prompt reads a file path on the message line. It implements
// editor.PathChooser by running its own event loop on the screen until the
// user accepts or cancels; redraw repaints the editor behind it.
type Prompt struct {
	screen tcell.Screen
	redraw func()

	label  string
	input  []rune
	active bool
}

func NewPrompt(s tcell.Screen, redraw func()) *Prompt {
	return &Prompt{screen: s, redraw: redraw}
}

func (p *Prompt) ChooseSavePath() (string, bool) {
	return p.ask("Save as: ")
}

func (p *Prompt) ChooseOpenPath() (string, bool) {
	return p.ask("Open: ")
}

func (p *Prompt) Active() bool {
	return p.active
}

func (p *Prompt) Label() string {
	return p.label
}

func (p *Prompt) Input() []rune {
	return p.input
}

func (p *Prompt) ask(label string) (string, bool) {
	p.label = label
	p.input = nil
	p.active = true
	defer func() {
		p.active = false
		p.input = nil
		p.paint()
	}()

	for {
		p.paint()
		ev := p.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			// Screen finalized.
			return "", false
		case *tcell.EventResize:
			p.screen.Sync()
		case *tcell.EventKey:
			path, done, ok := p.handleKey(ev)
			if !done {
				continue
			}
			if !ok {
				logger.Debug("prompt cancelled", "label", strings.TrimSpace(label))
				return "", false
			}
			return path, true
		}
	}
}

// handleKey edits the input line. done reports that the prompt finished;
// ok is false when it was cancelled.
func (p *Prompt) handleKey(ev *tcell.EventKey) (path string, done, ok bool) {
	switch ev.Key() {
	case tcell.KeyEnter:
		path = expandPath(strings.TrimSpace(string(p.input)))
		if path == "" {
			return "", true, false
		}
		return path, true, true
	case tcell.KeyEscape, tcell.KeyCtrlC, tcell.KeyCtrlQ, tcell.KeyCtrlG:
		return "", true, false
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(p.input) > 0 {
			p.input = p.input[:len(p.input)-1]
		}
	case tcell.KeyCtrlU:
		p.input = p.input[:0]
	case tcell.KeyRune:
		if ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt|tcell.ModMeta) == 0 {
			p.input = append(p.input, ev.Rune())
		}
	}
	return "", false, false
}

func (p *Prompt) paint() {
	if p.redraw != nil {
		p.redraw()
	}
}

// expandPath resolves a leading ~ to the home directory.
func expandPath(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
