// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the application-level error taxonomy shared by the
// config loader, the file processor and the command line layer.
//
// The taxonomy is closed: every failure that reaches the entry point is an
// [*Error] of one of the Kind* values below, and each kind maps to exactly
// one process exit code. Adding a kind means updating [exitCodeMap] and
// [kindPrefixMap] together.
package app

import (
	"errors"
	"fmt"
)

// Kind identifies the category of an application [Error].
type Kind int

const (
	// KindConfig marks a failure while loading or decoding configuration.
	KindConfig Kind = iota + 1
	// KindIO marks an I/O failure while reading the input file.
	KindIO
	// KindFileNotFound marks a missing input file.
	KindFileNotFound
	// KindInvalidInput marks input that cannot be processed, including
	// empty files, unknown modes and malformed command lines.
	KindInvalidInput
	// KindTestFailed marks a test run that finished with failed steps.
	KindTestFailed
)

// Process exit codes. ExitSuccess is reserved for runs without an error.
const (
	ExitSuccess     = 0
	ExitConfigError = 1
	ExitFileError   = 2
	ExitInputError  = 3
	ExitTestFailed  = 4
)

var exitCodeMap = map[Kind]int{
	KindConfig:       ExitConfigError,
	KindIO:           ExitFileError,
	KindFileNotFound: ExitFileError,
	KindInvalidInput: ExitInputError,
	KindTestFailed:   ExitTestFailed,
}

var kindPrefixMap = map[Kind]string{
	KindConfig:       "config error",
	KindIO:           "io error",
	KindFileNotFound: "file not found",
	KindInvalidInput: "invalid input",
	KindTestFailed:   "test failed",
}

// Error is the single error type surfaced to the entry point.
//
// Only the fields relevant to Kind are set: Path for KindFileNotFound,
// Failed for KindTestFailed, Err for the wrapping kinds (KindConfig, KindIO).
type Error struct {
	Kind   Kind
	Msg    string
	Path   string
	Failed uint32
	Err    error
}

// Error renders the human-readable message shown on the error stream.
func (e *Error) Error() string {
	prefix := kindPrefixMap[e.Kind]

	switch e.Kind {
	case KindFileNotFound:
		return fmt.Sprintf("%s: %s", prefix, e.Path)
	case KindTestFailed:
		return fmt.Sprintf("%s: %s (failed: %d)", prefix, e.Msg, e.Failed)
	case KindConfig, KindIO:
		if e.Err != nil {
			return fmt.Sprintf("%s: %v", prefix, e.Err)
		}
	}

	return fmt.Sprintf("%s: %s", prefix, e.Msg)
}

// Unwrap exposes the wrapped lower-level error, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// ExitCode returns the process exit code assigned to the error's kind.
func (e *Error) ExitCode() int {
	return exitCodeMap[e.Kind]
}

// ConfigError wraps a configuration loading failure.
func ConfigError(err error) error {
	return &Error{Kind: KindConfig, Err: err}
}

// IOError wraps a failure while reading the input file.
func IOError(err error) error {
	return &Error{Kind: KindIO, Err: err}
}

// FileNotFound reports that path does not exist.
func FileNotFound(path string) error {
	return &Error{Kind: KindFileNotFound, Path: path}
}

// InvalidInput reports input that cannot be processed.
func InvalidInput(msg string) error {
	return &Error{Kind: KindInvalidInput, Msg: msg}
}

// TestFailed reports a test run with failed failures.
func TestFailed(msg string, failed uint32) error {
	return &Error{Kind: KindTestFailed, Msg: msg, Failed: failed}
}

// KindOf returns the kind of the first [*Error] in err's chain.
func KindOf(err error) (Kind, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind, true
	}
	return 0, false
}

// ExitCode maps any error to a process exit code. nil maps to ExitSuccess;
// errors outside the taxonomy can only come from command line parsing and
// map to ExitInputError.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.ExitCode()
	}

	return ExitInputError
}
