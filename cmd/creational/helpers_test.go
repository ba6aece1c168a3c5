package main

import (
	"bytes"
	"testing"
)

//
// -----------------------------------------------------------------------------
// Shared fixtures
// -----------------------------------------------------------------------------

// result captures one CLI invocation.
type result struct {
	code   int
	stdout string
	stderr string
}

// runCLI invokes run with a clean CREATIONAL_ environment.
func runCLI(t *testing.T, args ...string) result {
	t.Helper()

	t.Setenv("CREATIONAL_LOG_LEVEL", "")
	t.Setenv("CREATIONAL_LIBRARY_DELAY", "")
	t.Setenv("CREATIONAL_ACCESSORS", "")

	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}
