// Package cli implements the reference command-line front end exercising
// every public operation of the seed, words, entropy, and kdf packages.
package cli

import (
	"fmt"
	"os"
)

// Main is the CLI entrypoint used by the useed binary.
func Main() {
	os.Exit(Run(os.Args[1:]))
}

// Run executes the CLI with the provided arguments and returns the exit code.
func Run(args []string) int {
	if len(args) < 1 {
		fmt.Fprint(os.Stdout, topHelp)
		return 0
	}

	cmd := args[0]
	remain := args[1:]
	switch cmd {
	case "generate":
		return runGenerate(remain)
	case "verify":
		return runVerify(remain)
	case "derive":
		return runDerive(remain)
	case "profile":
		return runProfile(remain)
	case "fingerprint":
		return runFingerprint(remain)
	case "resolve":
		return runResolve(remain)
	case "search":
		return runSearch(remain)
	case "languages":
		return runLanguages(remain)
	case "bits":
		return runBits(remain)
	case "randomness":
		return runRandomness(remain)
	case "info":
		return runInfo(remain)
	case "version":
		return runVersion(remain)
	case "help", "-h", "--help":
		return runHelp(remain)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", cmd)
		fmt.Fprint(os.Stderr, topHelp)
		return 2
	}
}
