// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

const (
	// MsgEmptyInput is the invalid-input message used when the input file
	// exists but holds nothing except whitespace.
	MsgEmptyInput = "input file is empty"

	// MsgUnknownMode prefixes the invalid-input message produced when the
	// configured mode is not one of the supported transforms. The offending
	// mode name follows the colon.
	MsgUnknownMode = "unknown processing mode"

	// MsgSomeTestsFailed is the test-failed message reported when the test
	// runner counts at least one failed step.
	MsgSomeTestsFailed = "some tests failed"

	// MsgAllTestsPassed is printed to stdout once the test runner finishes
	// without failures.
	MsgAllTestsPassed = "All tests passed!"
)
