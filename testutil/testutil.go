// Package testutil provides helpers for end-to-end tests of cleanrun
// applications. A test builds an App, points it at a fabricated
// command line and captured output streams, runs it in-process, and
// compares the exit code and the full stdout and stderr contents
// against expectations.
package testutil

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/janert/cleanrun"
)

// Check runs app with the given argv (argv[0] is the program path)
// and fails the test unless the exit code and the complete stdout and
// stderr contents match the expectations exactly. An empty expectation
// requires a silent stream.
func Check(t *testing.T, app *cleanrun.App, main func(*cleanrun.Matches) (int, error),
	argv []string, wantCode int, wantStdout, wantStderr string) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	code := app.CommandLine(argv).Output(&stdout, &stderr).Run(main)

	if code != wantCode {
		t.Errorf("exit code: got=%d want=%d", code, wantCode)
	}
	if diff := cmp.Diff(wantStdout, stdout.String()); diff != "" {
		t.Errorf("stdout mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantStderr, stderr.String()); diff != "" {
		t.Errorf("stderr mismatch (-want +got):\n%s", diff)
	}
}
