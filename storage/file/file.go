package file

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	dirMode  = 0o750
	fileMode = 0o644
)

var (
	// ErrPathIsDirectory is returned when the path points to a directory instead of a file.
	ErrPathIsDirectory = errors.New("path is a directory, not a file")

	// ErrPermissionDenied is returned when the file cannot be both read and written.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrNotFound is returned when reading a file that does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrWrite is returned when a file or its parent directories cannot be written.
	ErrWrite = errors.New("write failed")
)

// Check reports whether path exists and, when it does, that it is a regular
// file the process can both read and write. A missing file is not an error.
func Check(path string) (bool, error) {
	cleanPath := filepath.Clean(path)

	stat, err := os.Stat(cleanPath)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}

	if err != nil {
		return false, fmt.Errorf("stat file %q: %w", cleanPath, classify(err))
	}

	if stat.IsDir() {
		return true, fmt.Errorf("path %q: %w", cleanPath, ErrPathIsDirectory)
	}

	err = probe(cleanPath, os.O_RDONLY)
	if err != nil {
		return true, fmt.Errorf("cannot read file %q: %w", cleanPath, err)
	}

	err = probe(cleanPath, os.O_WRONLY)
	if err != nil {
		return true, fmt.Errorf("cannot write file %q: %w", cleanPath, err)
	}

	return true, nil
}

func probe(path string, flag int) error {
	f, err := os.OpenFile(path, flag, 0) // #nosec G304 -- path is cleaned by the caller
	if err != nil {
		return classify(err)
	}

	return f.Close()
}

// Read returns the contents of path.
func Read(path string) ([]byte, error) {
	cleanPath := filepath.Clean(path)

	data, err := os.ReadFile(cleanPath) // #nosec G304 -- path is cleaned
	if err != nil {
		return nil, fmt.Errorf("reading file %q: %w", cleanPath, classify(err))
	}

	return data, nil
}

// Write stores data at path, creating missing parent directories first.
// An existing file keeps its mode.
func Write(path string, data []byte) error {
	cleanPath := filepath.Clean(path)

	dir := filepath.Dir(cleanPath)

	err := os.MkdirAll(dir, dirMode)
	if err != nil {
		return fmt.Errorf("%w: creating directory %q: %w", ErrWrite, dir, err)
	}

	err = os.WriteFile(cleanPath, data, fileMode) // #nosec G306 -- documents are meant to be shared config files
	if err != nil {
		return fmt.Errorf("%w: writing file %q: %w", ErrWrite, cleanPath, classify(err))
	}

	return nil
}

func classify(err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %w", ErrPermissionDenied, err)
	default:
		return err
	}
}
