// Package words implements the multilingual lookup table, normalizer, and
// word-resolution engine (strict and fuzzy) for the 256 icon concepts.
package words

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"sync"
)

// IconIndex identifies one of the 256 immutable visual concepts. Numbering is
// frozen across every implementation of the v2 protocol.
type IconIndex = uint8

// ErrLookupTableMissing indicates the lookup artifact could not be loaded or
// did not satisfy the frozen-table invariants (every index has a primary word
// per loaded language, no cross-language key collisions).
var ErrLookupTableMissing = errors.New("words: lookup table missing or malformed")

// LanguageInfo is the (code, label) pair advertised by Languages.
type LanguageInfo struct {
	Code  string
	Label string
}

// Language holds the ordered, per-index accepted word lists for one language.
// Words[i][0] is always the primary display word for icon index i.
type Language struct {
	Code  string
	Label string
	Words [256][]string
}

// LookupTable is the frozen, process-wide mapping described in SPEC_FULL.md
// §3. It is safe for concurrent readers once loaded.
type LookupTable struct {
	Keys      map[string]IconIndex
	Languages map[string]*Language
	Order     []LanguageInfo

	sortedKeys []string // for Search, built once at load time
}

type jsonDoc struct {
	Languages []jsonLanguage    `json:"languages"`
	Keys      map[string]int    `json:"keys"`
	Emoji     map[string]string `json:"emoji"`
}

type jsonLanguage struct {
	Code  string     `json:"code"`
	Label string     `json:"label"`
	Words [][]string `json:"words"`
}

// Load parses a words.json document (see SPEC_FULL.md §6) and builds a
// LookupTable, validating the frozen-table invariants.
func Load(r io.Reader) (*LookupTable, error) {
	var doc jsonDoc
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLookupTableMissing, err)
	}

	tbl := &LookupTable{
		Keys:      make(map[string]IconIndex, len(doc.Keys)),
		Languages: make(map[string]*Language, len(doc.Languages)),
	}

	for _, jl := range doc.Languages {
		if len(jl.Words) != 256 {
			return nil, fmt.Errorf("%w: language %q has %d index entries, want 256",
				ErrLookupTableMissing, jl.Code, len(jl.Words))
		}
		lang := &Language{Code: jl.Code, Label: jl.Label}
		for i, words := range jl.Words {
			if len(words) == 0 {
				return nil, fmt.Errorf("%w: language %q index %d has no accepted words",
					ErrLookupTableMissing, jl.Code, i)
			}
			lang.Words[i] = words
		}
		tbl.Languages[jl.Code] = lang
		tbl.Order = append(tbl.Order, LanguageInfo{Code: jl.Code, Label: jl.Label})
	}

	for key, idx := range doc.Keys {
		if idx < 0 || idx > 255 {
			return nil, fmt.Errorf("%w: key %q maps to out-of-range index %d",
				ErrLookupTableMissing, key, idx)
		}
		norm := normalizeBase(key)
		if existing, ok := tbl.Keys[norm]; ok && existing != IconIndex(idx) {
			return nil, fmt.Errorf("%w: key %q collides across indexes %d and %d",
				ErrLookupTableMissing, key, existing, idx)
		}
		tbl.Keys[norm] = IconIndex(idx)
	}

	for idxStr, emoji := range doc.Emoji {
		idx, err := strconv.Atoi(idxStr)
		if err != nil {
			return nil, fmt.Errorf("%w: emoji index %q is not numeric", ErrLookupTableMissing, idxStr)
		}
		if idx < 0 || idx > 255 {
			return nil, fmt.Errorf("%w: emoji %q maps to out-of-range index %d",
				ErrLookupTableMissing, emoji, idx)
		}
		norm := normalizeBase(emoji)
		if existing, ok := tbl.Keys[norm]; ok && existing != IconIndex(idx) {
			return nil, fmt.Errorf("%w: emoji %q collides across indexes %d and %d",
				ErrLookupTableMissing, emoji, existing, idx)
		}
		tbl.Keys[norm] = IconIndex(idx)
	}

	tbl.sortedKeys = make([]string, 0, len(tbl.Keys))
	for k := range tbl.Keys {
		tbl.sortedKeys = append(tbl.sortedKeys, k)
	}
	sort.Strings(tbl.sortedKeys)

	return tbl, nil
}

var (
	defaultOnce  sync.Once
	defaultTable *LookupTable
	defaultErr   error
)

// DefaultTable lazily loads the embedded reference lookup artifact once per
// process and returns the cached table on every subsequent call.
func DefaultTable() (*LookupTable, error) {
	defaultOnce.Do(func() {
		defaultTable, defaultErr = Load(embeddedReader())
	})
	return defaultTable, defaultErr
}

// MustLoad is DefaultTable, panicking on failure. Intended for program init
// where a missing lookup artifact is unrecoverable.
func MustLoad() *LookupTable {
	tbl, err := DefaultTable()
	if err != nil {
		panic(err)
	}
	return tbl
}

// Languages returns the ordered list of supported (code, label) pairs from
// the default table.
func Languages() []LanguageInfo {
	tbl, err := DefaultTable()
	if err != nil {
		return nil
	}
	return tbl.Order
}

// PrimaryWord returns the primary display word for idx in language code.
func (t *LookupTable) PrimaryWord(idx IconIndex, code string) (string, error) {
	lang, ok := t.Languages[code]
	if !ok {
		return "", fmt.Errorf("words: unknown language %q", code)
	}
	words := lang.Words[idx]
	if len(words) == 0 {
		return "", fmt.Errorf("words: language %q has no word for index %d", code, idx)
	}
	return words[0], nil
}
