package cli

import (
	"strings"
	"testing"
)

func TestRunSearchFindsDog(t *testing.T) {
	var code int
	out := captureStdout(t, func() { code = runSearch([]string{"dog"}) })
	if code != 0 {
		t.Fatalf("runSearch() exit code = %d, want 0", code)
	}
	if !strings.Contains(out, "-> 15") {
		t.Errorf("unexpected stdout: %q", out)
	}
}

func TestRunSearchNoMatches(t *testing.T) {
	var code int
	out := captureStdout(t, func() { code = runSearch([]string{"zzzzznotarealprefix"}) })
	if code != 0 {
		t.Fatalf("runSearch() exit code = %d, want 0", code)
	}
	if !strings.Contains(out, "no matches") {
		t.Errorf("unexpected stdout: %q", out)
	}
}

func TestRunSearchRequiresExactlyOneArgument(t *testing.T) {
	var code int
	errOut := captureStderr(t, func() { code = runSearch(nil) })
	if code != 2 {
		t.Fatalf("runSearch() exit code = %d, want 2", code)
	}
	if !strings.Contains(errOut, "exactly one") {
		t.Errorf("unexpected stderr: %q", errOut)
	}
}
