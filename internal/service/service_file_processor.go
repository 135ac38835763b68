// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/meow/internal/app"
	"github.com/MKhiriev/meow/internal/logger"
	"github.com/MKhiriev/meow/internal/store"
)

type fileProcessor struct {
	input store.InputStorage

	logger *logger.Logger
}

func NewFileProcessor(input store.InputStorage, logger *logger.Logger) FileProcessor {
	return &fileProcessor{
		input:  input,
		logger: logger,
	}
}

// ReadInput checks that path exists, reads it and rejects content that is
// empty after trimming whitespace.
//
// Errors are [app.Error] values:
//   - file not found when path does not exist (no read is attempted);
//   - io error when the existence check or the read fails;
//   - invalid input when the content is blank.
func (p *fileProcessor) ReadInput(ctx context.Context, path string) (string, error) {
	exists, err := p.input.Exists(ctx, path)
	if err != nil {
		return "", app.IOError(err)
	}
	if !exists {
		return "", app.FileNotFound(path)
	}

	content, err := p.input.Read(ctx, path)
	if err != nil {
		return "", app.IOError(err)
	}

	if strings.TrimSpace(content) == "" {
		return "", app.InvalidInput(app.MsgEmptyInput)
	}

	p.logger.Debug().Str("path", path).Int("bytes", len(content)).Msg("input read")
	return content, nil
}

// ProcessContent applies the transform registered for mode. An unknown mode
// is an invalid-input error naming the mode.
func (p *fileProcessor) ProcessContent(ctx context.Context, content, mode string) (string, error) {
	transform, ok := transforms[mode]
	if !ok {
		return "", app.InvalidInput(fmt.Sprintf("%s: %s", app.MsgUnknownMode, mode))
	}

	p.logger.Debug().Str("mode", mode).Msg("processing content")
	return transform(content), nil
}
