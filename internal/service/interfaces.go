package service

import "context"

// FileProcessor validates the input file and applies the transform selected
// by the configured mode.
type FileProcessor interface {
	ReadInput(ctx context.Context, path string) (string, error)
	ProcessContent(ctx context.Context, content, mode string) (string, error)
}

// TestRunner runs the built-in self checks.
type TestRunner interface {
	RunTests(ctx context.Context, debug bool) error
}
