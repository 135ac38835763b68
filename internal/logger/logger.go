// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used throughout meow.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, etc.) are available directly on *Logger.
// Diagnostics go to the error stream; the transformed content and other
// command results are written to stdout by the command layer, never through
// the logger.
package logger

import (
	"context"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a human-readable *Logger writing to w.
//
// The logger is configured with:
//   - a level derived from verbosity (see [LevelFromVerbosity]);
//   - a "role" field set to role;
//   - a "run_id" field identifying the invocation;
//   - a timestamp on every entry.
//
// Output uses zerolog's console format without colors, so it stays readable
// when the error stream is redirected to a file.
func NewLogger(role, runID string, w io.Writer, verbosity int) *Logger {
	console := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: time.TimeOnly,
	}

	logger := zerolog.New(console).
		Level(LevelFromVerbosity(verbosity)).
		With().
		Str("role", role).
		Str("run_id", runID).
		Timestamp().
		Logger()

	return &Logger{logger}
}

// LevelFromVerbosity maps the -v count to a log level: warnings only by
// default, info at -v, debug from -vv on.
func LevelFromVerbosity(verbosity int) zerolog.Level {
	switch {
	case verbosity <= 0:
		return zerolog.WarnLevel
	case verbosity == 1:
		return zerolog.InfoLevel
	default:
		return zerolog.DebugLevel
	}
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// WithDebug returns a child logger that emits debug entries regardless of
// the receiver's level. A Nop logger stays silent.
func (l *Logger) WithDebug() *Logger {
	if l.GetLevel() == zerolog.Disabled {
		return l
	}
	return &Logger{l.Level(zerolog.DebugLevel)}
}

// WithContext attaches the logger to ctx so that [FromContext] can retrieve
// it further down the call chain.
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return l.Logger.WithContext(ctx)
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper and returns it as a *Logger.
//
// If no logger has been attached to ctx, zerolog returns a disabled logger,
// so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
