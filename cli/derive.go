package cli

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/universalseed/useed/kdf"
)

func runDerive(args []string) int {
	fs := flag.NewFlagSet("derive", flag.ExitOnError)
	wordsFlag := fs.String("words", "", "space-separated seed words")
	indexesFlag := fs.String("indexes", "", "comma-separated decimal icon indexes")
	passphrase := fs.String("passphrase", "", "optional passphrase (no normalization applied)")
	_ = fs.Parse(args)

	input, ok := seedInputFromFlags(*wordsFlag, *indexesFlag)
	if !ok {
		return 2
	}

	masterKey, err := kdf.DeriveMasterKey(input, *passphrase)
	if err != nil {
		fmt.Fprintf(os.Stderr, "derivation failed: %v\n", err)
		return 2
	}

	fmt.Fprintln(os.Stdout, strings.ToLower(hex.EncodeToString(masterKey[:])))
	return 0
}

// seedInputFromFlags resolves exactly one of --words/--indexes into a
// kdf.SeedInput, printing a usage error to stderr and returning ok=false
// otherwise.
func seedInputFromFlags(wordsFlag, indexesFlag string) (input kdf.SeedInput, ok bool) {
	haveWords := strings.TrimSpace(wordsFlag) != ""
	haveIndexes := strings.TrimSpace(indexesFlag) != ""
	if haveWords == haveIndexes {
		fmt.Fprintln(os.Stderr, "exactly one of --words or --indexes is required")
		return kdf.SeedInput{}, false
	}
	if haveIndexes {
		idx, err := parseIndexes(indexesFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid --indexes: %v\n", err)
			return kdf.SeedInput{}, false
		}
		return kdf.FromIndexes(idx), true
	}
	return kdf.FromWords(strings.Fields(wordsFlag)), true
}

const helpDerive = `# useed derive

Derive the 64-byte master key from a seed and optional passphrase.

Arguments:
  --words <words>        space-separated seed words (strict resolve)
  --indexes <list>       comma-separated decimal icon indexes (0-255)
  --passphrase <string>  optional passphrase, used verbatim (no normalization)

Exactly one of --words or --indexes is required.

Examples:
  useed derive --words "dog heart ..." --passphrase "correct horse battery staple"
  useed derive --indexes "3,200,15,8,..."
`
