// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates l from MEOW_* environment variables using the
// caarlos0/env library. Variables that are unset leave the matching field
// nil.
//
// Returns a wrapped error if a value cannot be converted to the field type
// (e.g. MEOW_PORT=abc or MEOW_PORT=70000).
func parseEnv(l *layer) error {
	err := env.ParseWithOptions(l, env.Options{Prefix: EnvPrefix})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrParsingEnv, err)
	}

	return nil
}
