// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli implements the meow command line.
//
// It loads the optional .env file, parses the command tree, loads the
// configuration, dispatches to the selected command and translates any
// failure into a process exit code.
package cli
