package cli

import (
	"strconv"
	"strings"
	"testing"

	"github.com/universalseed/useed/seed"
)

func validIndexCSV(n int) string {
	data := make([]byte, n-2)
	for i := range data {
		data[i] = byte(i * 5)
	}
	checksum := seed.ComputeChecksum(data)
	full := append(data, checksum[:]...)

	parts := make([]string, len(full))
	for i, b := range full {
		parts[i] = strconv.Itoa(int(b))
	}
	return strings.Join(parts, ",")
}

func TestRunVerifyValidIndexes(t *testing.T) {
	var code int
	out := captureStdout(t, func() { code = runVerify([]string{"--indexes", validIndexCSV(24)}) })
	if code != 0 {
		t.Fatalf("runVerify() exit code = %d, want 0", code)
	}
	if !strings.Contains(out, "checksum OK") {
		t.Errorf("unexpected stdout: %q", out)
	}
}

func TestRunVerifyCorruptedIndexes(t *testing.T) {
	csv := validIndexCSV(24)
	parts := strings.Split(csv, ",")
	first, _ := strconv.Atoi(parts[0])
	parts[0] = strconv.Itoa((first + 1) % 256)
	corrupted := strings.Join(parts, ",")

	var code int
	errOut := captureStderr(t, func() { code = runVerify([]string{"--indexes", corrupted}) })
	if code != 2 {
		t.Fatalf("runVerify() exit code = %d, want 2", code)
	}
	if !strings.Contains(errOut, "checksum mismatch") {
		t.Errorf("unexpected stderr: %q", errOut)
	}
}

func TestRunVerifyRequiresExactlyOneSource(t *testing.T) {
	var code int
	errOut := captureStderr(t, func() { code = runVerify(nil) })
	if code != 2 {
		t.Fatalf("runVerify() with no flags exit code = %d, want 2", code)
	}
	if !strings.Contains(errOut, "exactly one of") {
		t.Errorf("unexpected stderr: %q", errOut)
	}

	errOut = captureStderr(t, func() {
		code = runVerify([]string{"--words", "dog", "--indexes", validIndexCSV(24)})
	})
	if code != 2 {
		t.Fatalf("runVerify() with both flags exit code = %d, want 2", code)
	}
	if !strings.Contains(errOut, "exactly one of") {
		t.Errorf("unexpected stderr: %q", errOut)
	}
}

func TestRunVerifyUnresolvableWordReportsError(t *testing.T) {
	var code int
	errOut := captureStderr(t, func() { code = runVerify([]string{"--words", "doggg"}) })
	if code != 2 {
		t.Fatalf("runVerify() exit code = %d, want 2", code)
	}
	if !strings.Contains(errOut, "unresolvable word") {
		t.Errorf("unexpected stderr: %q", errOut)
	}
}
