package store

import "errors"

// Sentinel errors returned by [InputStorage] implementations. They wrap the
// underlying os error, so both can be matched with [errors.Is].
var (
	// ErrCheckingInput is returned when the existence of the input path
	// cannot be determined (for example, a permission problem on a parent
	// directory).
	ErrCheckingInput = errors.New("error checking input file")

	// ErrReadingInput is returned when the input file exists but its content
	// cannot be read.
	ErrReadingInput = errors.New("error reading input file")
)
