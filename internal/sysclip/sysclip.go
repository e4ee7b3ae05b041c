package sysclip

import (
	"errors"

	"github.com/atotto/clipboard"
)

// ErrUnsupported is returned when no system clipboard tool is available.
var ErrUnsupported = errors.New("system clipboard unavailable")

// Sink mirrors editor clipboard writes to the OS clipboard.
type Sink struct {
	write func(string) error
}

func New() *Sink {
	return &Sink{write: clipboard.WriteAll}
}

// Available reports whether the platform has a clipboard backend.
func Available() bool {
	return !clipboard.Unsupported
}

func (s *Sink) SetClipboard(text string) error {
	if !Available() {
		return ErrUnsupported
	}
	return s.write(text)
}
