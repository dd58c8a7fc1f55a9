package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Help text for top-level usage (kept in sync with docs).
const topHelp = `useed - visual & multilingual seed-phrase CLI

Usage:
  useed <command> [flags]

Commands:
  generate     Generate a new validated seed
  verify       Verify a seed's checksum
  derive       Derive a master key from a seed
  profile      Derive a profile key from a master key
  fingerprint  Compute the public fingerprint of a seed
  resolve      Resolve word(s)/emoji to icon indexes
  search       Autocomplete icon words by prefix
  languages    List supported languages
  bits         Estimate entropy bits for a word count + passphrase
  randomness   Run the statistical randomness validator over a sample
  info         Display KDF and table parameters
  version      Show the CLI build version
  help         Show help (general or for a command)

Run 'useed help <command>' for details.
`

// ---- help ----
func runHelp(args []string) int {
	if len(args) == 0 {
		fmt.Fprint(os.Stdout, topHelp)
		return 0
	}

	topic := args[0]
	if s, ok := lookupDoc(topic); ok {
		if _, err := io.Copy(os.Stdout, strings.NewReader(s)); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write help: %v\n", err)
			return 2
		}
		if !strings.HasSuffix(s, "\n") {
			fmt.Fprintln(os.Stdout)
		}
		return 0
	}
	fmt.Fprint(os.Stdout, topHelp)
	return 0
}

// lookupDoc returns built-in help text for a command if present.
func lookupDoc(topic string) (string, bool) {
	switch topic {
	case "generate":
		return helpGenerate, true
	case "verify":
		return helpVerify, true
	case "derive":
		return helpDerive, true
	case "profile":
		return helpProfile, true
	case "fingerprint":
		return helpFingerprint, true
	case "resolve":
		return helpResolve, true
	case "search":
		return helpSearch, true
	case "languages":
		return helpLanguages, true
	case "bits":
		return helpBits, true
	case "randomness":
		return helpRandomness, true
	case "info":
		return helpInfo, true
	case "version":
		return helpVersion, true
	case "help":
		return helpHelp, true
	default:
		return "", false
	}
}

const helpHelp = `# useed help

Show general help or per-command help.

Usage:
  useed help
  useed help <command>
`
