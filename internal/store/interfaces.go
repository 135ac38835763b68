package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/input_storage_mock.go -package=mock

// InputStorage gives read access to the file the user asked meow to
// process.
type InputStorage interface {
	// Exists reports whether path names an existing file system entry.
	Exists(ctx context.Context, path string) (bool, error)
	// Read returns the raw content of path.
	Read(ctx context.Context, path string) (string, error)
}
