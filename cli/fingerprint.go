package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/universalseed/useed/kdf"
)

func runFingerprint(args []string) int {
	fs := flag.NewFlagSet("fingerprint", flag.ExitOnError)
	wordsFlag := fs.String("words", "", "space-separated seed words")
	indexesFlag := fs.String("indexes", "", "comma-separated decimal icon indexes")
	passphrase := fs.String("passphrase", "", "optional passphrase")
	_ = fs.Parse(args)

	input, ok := seedInputFromFlags(*wordsFlag, *indexesFlag)
	if !ok {
		return 2
	}

	fp, err := kdf.Fingerprint(input, *passphrase)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fingerprint failed: %v\n", err)
		return 2
	}
	fmt.Fprintln(os.Stdout, fp)
	return 0
}

const helpFingerprint = `# useed fingerprint

Compute the 8-character public fingerprint of a seed and optional passphrase.
An empty passphrase takes a fast path; a non-empty passphrase runs the full
key-derivation pipeline.

Arguments:
  --words <words>        space-separated seed words (strict resolve)
  --indexes <list>       comma-separated decimal icon indexes (0-255)
  --passphrase <string>  optional passphrase

Exactly one of --words or --indexes is required.

Examples:
  useed fingerprint --words "dog heart ..."
`
