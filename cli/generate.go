package cli

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/universalseed/useed/seed"
)

type generatedSeedJSON struct {
	Language string   `json:"language"`
	Words    []string `json:"words"`
	Indexes  []int    `json:"indexes"`
}

func runGenerate(args []string) int {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	wordCount := fs.Int("words", 24, "seed length: 24 or 36")
	language := fs.String("language", "", "display language code (default: en)")
	extraHex := fs.String("extra-entropy", "", "optional hex-encoded caller-supplied entropy")
	out := fs.String("out", "", "write seed JSON to file (stdout if empty)")
	_ = fs.Parse(args)

	var extra []byte
	if *extraHex != "" {
		b, err := parseHex(*extraHex)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid --extra-entropy: %v\n", err)
			return 2
		}
		extra = b
	}

	words, err := seed.GenerateWords(*wordCount, extra, *language)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to generate seed: %v\n", err)
		return 2
	}

	lang := *language
	if lang == "" {
		lang = "en"
	}
	obj := generatedSeedJSON{Language: lang}
	for _, w := range words {
		obj.Words = append(obj.Words, w.Word)
		obj.Indexes = append(obj.Indexes, int(w.Index))
	}

	data, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to encode seed JSON: %v\n", err)
		return 2
	}

	if *out == "" {
		if _, err := os.Stdout.Write(append(data, '\n')); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write seed JSON: %v\n", err)
			return 2
		}
	} else {
		if err := writeFileAtomic(*out, data, 0o600); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write %s: %v\n", *out, err)
			return 2
		}
	}
	return 0
}

const helpGenerate = `# useed generate

Generate a new validated seed (entropy collection, statistical validation,
checksum, and word rendering).

Arguments:
  --words <24|36>          seed length (default: 24)
  --language <code>        display language (default: en)
  --extra-entropy <hex>    optional caller-supplied entropy mixed into the pool
  --out <file>             write seed JSON (stdout if omitted)

Examples:
  useed generate
  useed generate --words 36 --language es --out myseed.json
`
