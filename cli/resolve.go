package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/universalseed/useed/words"
)

func runResolve(args []string) int {
	fs := flag.NewFlagSet("resolve", flag.ExitOnError)
	fuzzy := fs.Bool("fuzzy", false, "allow script-aware fuzzy matching on a strict miss")
	_ = fs.Parse(args)

	list := fs.Args()
	if len(list) == 0 {
		fmt.Fprintln(os.Stderr, "resolve requires at least one word argument")
		return 2
	}

	strict := !*fuzzy
	indexes, errs := words.ResolveMany(list, strict)
	failed := false
	for i, err := range errs {
		if err != nil {
			failed = true
			fmt.Fprintf(os.Stderr, "%q: %v\n", list[i], err)
			continue
		}
		fmt.Fprintf(os.Stdout, "%s -> %d\n", list[i], indexes[i])
	}
	if failed {
		return 2
	}
	return 0
}

const helpResolve = `# useed resolve

Resolve one or more words, emoji, or icon names to their icon indexes.

Usage:
  useed resolve [--fuzzy] <word> [word...]

Arguments:
  --fuzzy   allow script-aware diacritic/affix folding on a strict miss
            (default: strict mode only, the mode used before key derivation)

Examples:
  useed resolve dog perro 犬
  useed resolve --fuzzy corazon
`
