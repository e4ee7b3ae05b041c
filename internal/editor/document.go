package editor

import "errors"

var (
	ErrNoStorage = errors.New("no storage configured")
	ErrNoChooser = errors.New("no path chooser configured")
)

// Document says whether the buffer is bound to a file path.
type Document struct {
	path  string
	bound bool
}

func Unbound() Document {
	return Document{}
}

func Bound(path string) Document {
	return Document{path: path, bound: true}
}

func (d Document) Path() (string, bool) {
	return d.path, d.bound
}

func (d Document) IsBound() bool {
	return d.bound
}

// PathChooser asks the user for a path. ok is false when the user cancels.
type PathChooser interface {
	ChooseSavePath() (path string, ok bool)
	ChooseOpenPath() (path string, ok bool)
}

// Storage persists plain-text documents. Save must not leave a partially
// written file behind on failure.
type Storage interface {
	Save(path, content string) error
	Open(path string) (string, error)
}

// ClipboardSink receives every cut or copied text, e.g. the OS clipboard.
type ClipboardSink interface {
	SetClipboard(text string) error
}
