// Package pidfile manages the process-id marker file written at startup
// and removed on shutdown.
package pidfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"sync"
)

// File is an acquired marker file. Release it with Remove, typically via defer.
type File struct {
	path string
	once sync.Once
}

// Write creates (or truncates) the marker file at path, creating parent
// directories as needed, and stores the current process id in it.
func Write(path string) (*File, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create pid directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(strconv.Itoa(os.Getpid())), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write pid file: %w", err)
	}
	return &File{path: path}, nil
}

// Path returns the marker location.
func (f *File) Path() string {
	if f == nil {
		return ""
	}
	return f.path
}

// Remove deletes the marker. It is best-effort: failures are reported to the
// caller but never retried, and only the first call does any work.
func (f *File) Remove() error {
	if f == nil {
		return nil
	}
	var err error
	f.once.Do(func() {
		if rmErr := os.Remove(f.path); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
			err = rmErr
		}
	})
	return err
}
