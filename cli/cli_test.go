package cli

import "testing"

func TestRunUnknownCommand(t *testing.T) {
	var code int
	errOut := captureStderr(t, func() { code = Run([]string{"not-a-real-command"}) })
	if code != 2 {
		t.Fatalf("expected exit 2, got %d", code)
	}
	if errOut == "" {
		t.Fatal("expected usage text on stderr for an unknown command")
	}
}

func TestRunNoArgsPrintsTopHelp(t *testing.T) {
	var code int
	out := captureStdout(t, func() { code = Run(nil) })
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if out != topHelp {
		t.Error("Run with no args should print topHelp verbatim")
	}
}

func TestRunHelpDispatchesKnownTopics(t *testing.T) {
	topics := []string{"generate", "verify", "derive", "profile", "fingerprint",
		"resolve", "search", "languages", "bits", "randomness", "info", "version", "help"}
	for _, topic := range topics {
		var code int
		out := captureStdout(t, func() { code = Run([]string{"help", topic}) })
		if code != 0 {
			t.Errorf("help %s: expected exit 0, got %d", topic, code)
		}
		if out == "" {
			t.Errorf("help %s: expected non-empty help text", topic)
		}
	}
}
