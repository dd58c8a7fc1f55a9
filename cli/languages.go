package cli

import (
	"fmt"
	"os"

	"github.com/universalseed/useed/words"
)

func runLanguages(args []string) int {
	if len(args) > 0 {
		fmt.Fprintln(os.Stderr, "languages does not accept arguments")
		return 2
	}

	langs := words.Languages()
	if langs == nil {
		fmt.Fprintln(os.Stderr, "failed to load lookup table")
		return 2
	}
	for _, l := range langs {
		fmt.Fprintf(os.Stdout, "%s\t%s\n", l.Code, l.Label)
	}
	return 0
}

const helpLanguages = `# useed languages

List the languages supported by the loaded lookup table.

Usage:
  useed languages
`
