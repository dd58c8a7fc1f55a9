package cli

import (
	"encoding/hex"
	"strings"
	"testing"
)

func TestRunProfileEmptyPasswordMatchesMasterKey(t *testing.T) {
	masterHex := strings.Repeat("ab", 64)
	var code int
	out := captureStdout(t, func() { code = runProfile([]string{"--master-key", masterHex}) })
	if code != 0 {
		t.Fatalf("runProfile() exit code = %d, want 0", code)
	}
	if strings.TrimSpace(out) != masterHex {
		t.Errorf("runProfile() with empty password should echo the master key, got %q", strings.TrimSpace(out))
	}
}

func TestRunProfileWithPasswordDiffers(t *testing.T) {
	masterHex := strings.Repeat("cd", 64)
	out := captureStdout(t, func() {
		runProfile([]string{"--master-key", masterHex, "--password", "savings"})
	})
	trimmed := strings.TrimSpace(out)
	if trimmed == masterHex {
		t.Error("runProfile() with a non-empty password should differ from the master key")
	}
	if _, err := hex.DecodeString(trimmed); err != nil {
		t.Errorf("runProfile() output is not valid hex: %v", err)
	}
}

func TestRunProfileRejectsWrongLength(t *testing.T) {
	var code int
	errOut := captureStderr(t, func() { code = runProfile([]string{"--master-key", "abcd"}) })
	if code != 2 {
		t.Fatalf("runProfile() exit code = %d, want 2", code)
	}
	if !strings.Contains(errOut, "64 bytes") {
		t.Errorf("unexpected stderr: %q", errOut)
	}
}
