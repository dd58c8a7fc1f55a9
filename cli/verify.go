package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/universalseed/useed/seed"
	"github.com/universalseed/useed/words"
)

func runVerify(args []string) int {
	fs := flag.NewFlagSet("verify", flag.ExitOnError)
	wordsFlag := fs.String("words", "", "space-separated seed words")
	indexesFlag := fs.String("indexes", "", "comma-separated decimal icon indexes")
	_ = fs.Parse(args)

	indexes, ok := resolveSeedArg(*wordsFlag, *indexesFlag)
	if !ok {
		return 2
	}

	if seed.VerifyChecksum(indexes) {
		fmt.Fprintln(os.Stdout, "checksum OK")
		return 0
	}
	fmt.Fprintln(os.Stderr, "checksum mismatch")
	return 2
}

// resolveSeedArg resolves exactly one of --words/--indexes into a raw index
// slice, printing a usage error to stderr and returning ok=false otherwise.
func resolveSeedArg(wordsFlag, indexesFlag string) (indexes []byte, ok bool) {
	haveWords := strings.TrimSpace(wordsFlag) != ""
	haveIndexes := strings.TrimSpace(indexesFlag) != ""
	if haveWords == haveIndexes {
		fmt.Fprintln(os.Stderr, "exactly one of --words or --indexes is required")
		return nil, false
	}
	if haveIndexes {
		idx, err := parseIndexes(indexesFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid --indexes: %v\n", err)
			return nil, false
		}
		return idx, true
	}

	list := strings.Fields(wordsFlag)
	idx, errs := words.ResolveMany(list, true)
	for i, err := range errs {
		if err != nil {
			fmt.Fprintf(os.Stderr, "unresolvable word %d (%q): %v\n", i, list[i], err)
			if candidates := words.Search(list[i], 5); len(candidates) > 0 {
				fmt.Fprint(os.Stderr, "  did you mean:")
				for _, c := range candidates {
					fmt.Fprintf(os.Stderr, " %s", c.Word)
				}
				fmt.Fprintln(os.Stderr)
			}
			return nil, false
		}
	}
	return idx, true
}

const helpVerify = `# useed verify

Verify a seed's checksum without deriving any keys.

Arguments:
  --words <words>      space-separated seed words (strict resolve)
  --indexes <list>     comma-separated decimal icon indexes (0-255)

Exactly one of --words or --indexes is required.

Examples:
  useed verify --words "dog heart ... "
  useed verify --indexes "3,200,15,8,..."
`
