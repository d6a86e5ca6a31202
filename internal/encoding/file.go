package encoding

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileExists checks if a regular file exists at the given path.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// EnsureParentDir creates the parent directory of a file path if it is missing.
// Uses 0755 permissions.
func EnsureParentDir(filePath string) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	return nil
}

// WriteText replaces the content of path with text, creating parent
// directories if they don't exist.
func WriteText(path, text string) error {
	if err := EnsureParentDir(path); err != nil {
		return err
	}

	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}

	return nil
}

// OpenAppend opens path for appending. created reports whether the file did
// not exist before the call, so callers can emit a header first.
func OpenAppend(path string) (f *os.File, created bool, err error) {
	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
	case errors.Is(statErr, fs.ErrNotExist):
		created = true

		if err := EnsureParentDir(path); err != nil {
			return nil, false, err
		}
	default:
		return nil, false, fmt.Errorf("failed to stat file %s: %w", path, statErr)
	}

	f, err = os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, false, fmt.Errorf("failed to open file %s: %w", path, err)
	}

	return f, created, nil
}
