package utils

import "github.com/google/uuid"

// NewRunID returns an identifier for a single invocation of the tool.
// UUIDv7 keeps run IDs time-ordered in collected logs; if the clock source
// fails a random v4 is returned instead.
func NewRunID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
