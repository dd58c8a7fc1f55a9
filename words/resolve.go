package words

import (
	"fmt"
	"sort"
)

// ErrUnresolvable indicates a word could not be matched to an icon index in
// the requested mode. Always wrapped with the offending word via %w.
var ErrUnresolvable = fmt.Errorf("words: word not found in lookup table")

// SearchHit is one autocomplete match returned by Search.
type SearchHit struct {
	Word  string
	Index IconIndex
}

// Resolve maps a single word, emoji, or icon name to its IconIndex using the
// default embedded table. In strict mode only exact, normalized matches
// succeed; in fuzzy mode a battery of script-aware folds is tried on a
// strict miss. See package doc and SPEC_FULL.md §4.2 for the full policy.
func Resolve(word string, strict bool) (IconIndex, error) {
	tbl, err := DefaultTable()
	if err != nil {
		return 0, err
	}
	return tbl.Resolve(word, strict)
}

// ResolveMany resolves a list of words against the default table. The
// returned error slice is positional: a nil entry means the word at that
// position resolved successfully.
func ResolveMany(list []string, strict bool) ([]IconIndex, []error) {
	tbl, err := DefaultTable()
	if err != nil {
		errs := make([]error, len(list))
		for i := range errs {
			errs[i] = err
		}
		return nil, errs
	}
	return tbl.ResolveMany(list, strict)
}

// Search runs autocomplete against the default table.
func Search(prefix string, limit int) []SearchHit {
	tbl, err := DefaultTable()
	if err != nil {
		return nil
	}
	return tbl.Search(prefix, limit)
}

// Resolve is the table-bound form of the package-level Resolve.
func (t *LookupTable) Resolve(word string, strict bool) (IconIndex, error) {
	if strict {
		return t.resolveStrict(word)
	}
	return t.resolveFuzzy(word)
}

// ResolveMany is the table-bound form of the package-level ResolveMany.
func (t *LookupTable) ResolveMany(list []string, strict bool) ([]IconIndex, []error) {
	out := make([]IconIndex, len(list))
	errs := make([]error, len(list))
	for i, w := range list {
		idx, err := t.Resolve(w, strict)
		out[i] = idx
		errs[i] = err
	}
	return out, errs
}

// resolveStrict applies only the shared base normalization (width folding,
// NFKC, zero-width strip, lowercase) and requires an exact table hit. It never falls back to
// diacritic or affix stripping: a silent misresolution here would corrupt
// key-derivation input.
func (t *LookupTable) resolveStrict(word string) (IconIndex, error) {
	key := normalizeBase(word)
	if idx, ok := t.Keys[key]; ok {
		return idx, nil
	}
	return 0, fmt.Errorf("words: unresolvable word %q: %w", word, ErrUnresolvable)
}

// resolveFuzzy tries an exact match first, then the ordered battery of
// script-aware folds from fuzzyCandidates on a miss. The diacritic folds are
// applied to the table keys as well, so an unaccented query matches an
// accented key. It is never used on the key-derivation path; callers relying
// on a fuzzy hit must still pass the resolved words back through checksum
// verification.
func (t *LookupTable) resolveFuzzy(word string) (IconIndex, error) {
	key := normalizeBase(word)
	if idx, ok := t.Keys[key]; ok {
		return idx, nil
	}
	// Same order as the first entries of fuzzyCandidates for scripts whose
	// marks may be stripped.
	diacriticFolds := []func(string) string{
		foldLatinDiacritics, foldGreekTonos, foldArabicTashkeel, foldHebrewNiqqud, foldCyrillicYo,
	}
	preserve := hasPreservedScript(key)
	for i, candidate := range fuzzyCandidates(key) {
		if candidate != key {
			if idx, ok := t.Keys[candidate]; ok {
				return idx, nil
			}
		}
		if !preserve && i < len(diacriticFolds) {
			for _, k := range t.sortedKeys {
				if diacriticFolds[i](k) == candidate {
					return t.Keys[k], nil
				}
			}
		}
	}
	return 0, fmt.Errorf("words: unresolvable word %q: %w", word, ErrUnresolvable)
}

// Search returns up to limit autocomplete matches for prefix, ordered by
// word and deduplicated by IconIndex.
func (t *LookupTable) Search(prefix string, limit int) []SearchHit {
	if limit <= 0 {
		return nil
	}
	needle := normalizeBase(prefix)
	keys := t.sortedKeys

	start := sort.Search(len(keys), func(i int) bool { return keys[i] >= needle })

	seen := make(map[IconIndex]bool)
	var hits []SearchHit
	for i := start; i < len(keys); i++ {
		k := keys[i]
		if len(k) < len(needle) || k[:len(needle)] != needle {
			break
		}
		idx := t.Keys[k]
		if seen[idx] {
			continue
		}
		seen[idx] = true
		hits = append(hits, SearchHit{Word: k, Index: idx})
	}

	sort.Slice(hits, func(i, j int) bool { return hits[i].Word < hits[j].Word })
	if len(hits) > limit {
		hits = hits[:limit]
	}
	return hits
}
