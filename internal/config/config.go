// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"context"
	"os"
)

// EnvPrefix is prepended to every field name to form the environment
// variable that overrides it (MEOW_PORT, MEOW_MODE, ...).
const EnvPrefix = "MEOW_"

// DefaultConfigFiles are tried in order when no explicit config path is
// given. Both are optional.
var DefaultConfigFiles = []string{".env.json", "config.json"}

// Config is the fully resolved configuration of a single run. It is a plain
// value and is not modified after [Load] returns.
type Config struct {
	// Port is the service port. Env: MEOW_PORT
	Port uint16

	// Path is the working path. Env: MEOW_PATH
	Path string

	// Mode selects the content transform applied by the file processor.
	// Env: MEOW_MODE
	Mode string

	// Zone is the time zone offset in hours. Env: MEOW_ZONE
	Zone int32

	// Area is the region name. Env: MEOW_AREA
	Area string
}

// Defaults returns the built-in configuration values.
func Defaults() Config {
	return Config{
		Port: 8000,
		Path: "/home/foo/bar",
		Mode: "happy mode",
		Zone: 8,
		Area: "Taipei",
	}
}

// Load resolves the configuration from defaults, the config file(s) and the
// environment, in increasing precedence.
//
// When configPath is non-empty only that file is consulted; otherwise each of
// [DefaultConfigFiles] is tried. Missing files are skipped. Any decoding
// failure (malformed JSON, a value of the wrong type, an out-of-range env
// value) fails the whole load.
func Load(ctx context.Context, configPath string) (Config, error) {
	files := DefaultConfigFiles
	if configPath != "" {
		files = []string{configPath}
	}

	return newConfigBuilder(ctx).
		withDefaults().
		withFiles(files...).
		withEnv().
		build()
}

// GetSystemEnv returns the raw value of an environment variable. It is not
// part of the merged configuration.
func GetSystemEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}
