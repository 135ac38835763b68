package config

import "errors"

// Errors returned by [Load]. They are wrapped with the underlying cause, so
// callers should match them with [errors.Is].
var (
	// ErrReadingConfigFile indicates that a config file exists but could not
	// be opened (for example, a permission problem).
	ErrReadingConfigFile = errors.New("error reading config file")
	// ErrDecodingConfigFile indicates malformed JSON or a value of the wrong
	// type in a config file.
	ErrDecodingConfigFile = errors.New("error decoding config file")
	// ErrParsingEnv indicates a MEOW_* variable whose value cannot be
	// converted to the field type.
	ErrParsingEnv = errors.New("error getting env configs")
)
