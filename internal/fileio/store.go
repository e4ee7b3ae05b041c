package fileio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kobzarvs/tedit/internal/logger"
)

const defaultPerm os.FileMode = 0o644

// Store reads and writes plain-text documents on the local filesystem.
type Store struct{}

func NewStore() *Store {
	return &Store{}
}

// Open returns the file content with CRLF line endings folded to LF.
func (s *Store) Open(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	content := strings.ReplaceAll(string(data), "\r\n", "\n")
	logger.Debug("file read", "path", path, "bytes", len(data))
	return content, nil
}

// Save writes content next to path under a temporary name and renames it
// into place, so a failed write never leaves a truncated file behind. An
// existing file keeps its permissions. A symlink is followed so the link
// itself survives and its target receives the content.
func (s *Store) Save(path, content string) error {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		path = resolved
	}
	dir := filepath.Dir(path)
	perm := defaultPerm
	if info, err := os.Stat(path); err == nil {
		if !info.Mode().IsRegular() {
			return fmt.Errorf("%s is not a regular file", path)
		}
		perm = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tedit-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	cleanup := func() {
		_ = os.Remove(tmpName)
	}

	if _, err := tmp.WriteString(content); err != nil {
		_ = tmp.Close()
		cleanup()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		cleanup()
		return err
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return err
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		cleanup()
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		cleanup()
		return err
	}
	logger.Debug("file written", "path", path, "bytes", len(content))
	return nil
}
