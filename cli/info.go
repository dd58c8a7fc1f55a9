package cli

import (
	"fmt"
	"os"

	"github.com/universalseed/useed/kdf"
	"github.com/universalseed/useed/words"
)

func runInfo(args []string) int {
	if len(args) > 0 {
		fmt.Fprintln(os.Stderr, "info does not accept arguments")
		return 2
	}

	fmt.Fprintln(os.Stdout, kdf.KDFInfo())

	langs := words.Languages()
	if langs == nil {
		fmt.Fprintln(os.Stderr, "failed to load lookup table")
		return 2
	}
	fmt.Fprintf(os.Stdout, "supported languages: %d\n", len(langs))
	for _, l := range langs {
		fmt.Fprintf(os.Stdout, "  %s\t%s\n", l.Code, l.Label)
	}
	return 0
}

const helpInfo = `# useed info

Display the active KDF domain/parameters and the loaded lookup table's
supported languages.

Usage:
  useed info
`
