package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/universalseed/useed/kdf"
)

func runBits(args []string) int {
	fs := flag.NewFlagSet("bits", flag.ExitOnError)
	wordCount := fs.Int("words", 24, "seed length: 24 or 36")
	passphrase := fs.String("passphrase", "", "optional passphrase to include in the estimate")
	_ = fs.Parse(args)

	estimate, err := kdf.EntropyBits(*wordCount, *passphrase)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to estimate entropy bits: %v\n", err)
		return 2
	}
	fmt.Fprintf(os.Stdout, "%.2f\n", estimate)
	return 0
}

const helpBits = `# useed bits

Estimate the total security level, in bits, of a seed length and optional
passphrase.

Arguments:
  --words <24|36>        seed length (default: 24)
  --passphrase <string>  optional passphrase to include in the estimate

Examples:
  useed bits --words 24
  useed bits --words 36 --passphrase "correct horse battery staple"
`
