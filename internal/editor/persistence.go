package editor

import (
	"fmt"

	"github.com/kobzarvs/tedit/internal/logger"
)

// Save writes the buffer to its bound path, asking the chooser for one when
// the document is unbound. An already saved document and a cancelled
// chooser are silent no-ops. On failure nothing changes.
func (e *Editor) Save() error {
	_, err := e.save()
	return err
}

// save reports whether the buffer was actually written.
func (e *Editor) save() (bool, error) {
	if e.saved {
		return false, nil
	}
	if e.storage == nil {
		return false, ErrNoStorage
	}
	path, ok := e.doc.Path()
	if !ok {
		if e.chooser == nil {
			return false, ErrNoChooser
		}
		path, ok = e.chooser.ChooseSavePath()
		if !ok || path == "" {
			logger.Debug("save cancelled")
			return false, nil
		}
	}
	content := e.buf.Content()
	if err := e.storage.Save(path, content); err != nil {
		logger.Error("save failed", "path", path, "error", err)
		return false, fmt.Errorf("save %s: %w", path, err)
	}
	e.doc = Bound(path)
	e.saved = true
	logger.Info("saved", "path", path, "bytes", len(content))
	return true, nil
}

// Open asks the chooser for a path and loads it.
func (e *Editor) Open() error {
	if e.chooser == nil {
		return ErrNoChooser
	}
	path, ok := e.chooser.ChooseOpenPath()
	if !ok || path == "" {
		logger.Debug("open cancelled")
		return nil
	}
	return e.OpenPath(path)
}

// OpenPath replaces the buffer with the file at path by typing its content
// through the write path, then puts the cursor at the top. If the read
// fails the current buffer and binding are kept.
func (e *Editor) OpenPath(path string) error {
	if e.storage == nil {
		return ErrNoStorage
	}
	content, err := e.storage.Open(path)
	if err != nil {
		logger.Error("open failed", "path", path, "error", err)
		return fmt.Errorf("open %s: %w", path, err)
	}
	if e.mode == ModeVisual {
		e.SetMode(ModeNormal)
	}
	e.load(content)
	e.doc = Bound(path)
	e.saved = true
	logger.Info("opened", "path", path, "lines", e.buf.LineCount())
	return nil
}

// Bind names the file the next save writes to without reading it. The
// buffer is left as is and counts as unsaved.
func (e *Editor) Bind(path string) {
	e.doc = Bound(path)
	e.saved = false
}

func (e *Editor) load(content string) {
	e.buf = NewBuffer()
	e.cursor = Position{}
	for _, r := range content {
		e.write(r)
	}
	e.buf.RecomputeLongest()
	e.cursor = Position{}
	e.anchor = Position{}
	e.active = Position{}
}
