package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/universalseed/useed/words"
)

func runSearch(args []string) int {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	limit := fs.Int("limit", 10, "maximum number of matches")
	_ = fs.Parse(args)

	rest := fs.Args()
	if len(rest) != 1 {
		fmt.Fprintln(os.Stderr, "search requires exactly one prefix argument")
		return 2
	}

	hits := words.Search(rest[0], *limit)
	if len(hits) == 0 {
		fmt.Fprintln(os.Stdout, "no matches")
		return 0
	}
	for _, h := range hits {
		fmt.Fprintf(os.Stdout, "%s -> %d\n", h.Word, h.Index)
	}
	return 0
}

const helpSearch = `# useed search

Autocomplete icon words by normalized prefix.

Usage:
  useed search [--limit N] <prefix>

Arguments:
  --limit <n>   maximum number of matches (default: 10)

Examples:
  useed search do
  useed search --limit 3 co
`
