package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// fileInputStorage is the default implementation of [InputStorage] over the
// local file system. Each call opens and releases its own handle.
type fileInputStorage struct {
}

// NewFileInputStorage constructs a new [InputStorage] reading from the local
// file system.
func NewFileInputStorage() InputStorage {
	return &fileInputStorage{}
}

// Exists reports whether path exists. A path that does not exist yields
// (false, nil); any other stat failure is returned wrapped in
// [ErrCheckingInput].
func (s *fileInputStorage) Exists(ctx context.Context, path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}

	return false, fmt.Errorf("%w: %w", ErrCheckingInput, err)
}

// Read returns the whole content of path as a string.
//
// Returns an error wrapping [ErrReadingInput] if the file cannot be read,
// for example when path is a directory.
func (s *fileInputStorage) Read(ctx context.Context, path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadingInput, err)
	}

	return string(content), nil
}
