package words

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

var lowerCaser = cases.Lower(language.Und)

// normalizeBase runs the normalization steps shared by every lookup key and
// every query string, strict or fuzzy: fullwidth/halfwidth folding, NFKC,
// zero-width stripping, Unicode-aware lowercasing. It never removes
// diacritics or affixes — those are fuzzy-only fallbacks applied on top of
// this result.
func normalizeBase(s string) string {
	s = width.Fold.String(s)
	s = norm.NFKC.String(s)
	s = stripZeroWidth(s)
	s = lowerCaser.String(s)
	return s
}

// stripZeroWidth removes characters with no visible rendering that an
// attacker or a sloppy clipboard could inject between otherwise-identical
// words: ZWJ, ZWNJ, soft hyphen, BOM, and the variation-selector block.
func stripZeroWidth(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '‍', r == '‌', r == '­', r == 0xFEFF:
			continue
		case r >= '︀' && r <= '️':
			continue
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// stripCombiningMarks strips Unicode combining marks (category Mn) from an
// NFD-decomposed string, used by the Latin and Greek diacritic folds below
// (the Arabic and Hebrew folds remove their own code-point ranges). Scripts that encode meaning in their marks (see
// preserveMarkScripts) never pass through this.
func stripCombiningMarks(s string) string {
	decomposed := norm.NFD.String(s)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return norm.NFC.String(b.String())
}

// preserveMarkScripts names the scripts whose combining marks are
// semantically load-bearing; fuzzy mode must never strip them.
var preserveMarkScripts = []*unicode.RangeTable{
	unicode.Devanagari,
	unicode.Bengali,
	unicode.Gurmukhi,
	unicode.Tamil,
	unicode.Telugu,
	unicode.Thai,
}

func hasPreservedScript(s string) bool {
	for _, r := range s {
		for _, tbl := range preserveMarkScripts {
			if unicode.Is(tbl, r) {
				return true
			}
		}
	}
	return false
}

var latinSpecialFolds = map[string]string{
	"ß": "ss",
	"ø": "o",
	"æ": "ae",
	"œ": "oe",
	"đ": "d",
	"ł": "l",
}

func foldLatinDiacritics(s string) string {
	for from, to := range latinSpecialFolds {
		s = strings.ReplaceAll(s, from, to)
	}
	return stripCombiningMarks(s)
}

func foldGreekTonos(s string) string {
	return stripCombiningMarks(s)
}

func foldArabicTashkeel(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= 0x064B && r <= 0x0652 {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func foldHebrewNiqqud(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= 0x0591 && r <= 0x05C7 {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func foldCyrillicYo(s string) string {
	return strings.ReplaceAll(s, "ё", "е")
}

func stripArabicPrefix(s string) string {
	return strings.TrimPrefix(s, "ال")
}

func stripHebrewPrefix(s string) string {
	return strings.TrimPrefix(s, "ה")
}

func stripFrenchContraction(s string) string {
	for _, apos := range []string{"l'", "l’"} {
		if strings.HasPrefix(s, apos) {
			return strings.TrimPrefix(s, apos)
		}
	}
	return s
}

var nordicNounSuffixes = []string{"en", "et", "ul", "a"}

func stripNordicSuffix(s string) string {
	for _, suf := range nordicNounSuffixes {
		if len(s) > len(suf)+2 && strings.HasSuffix(s, suf) {
			return strings.TrimSuffix(s, suf)
		}
	}
	return s
}

// fuzzyCandidates returns, in the fallback order defined by the resolver,
// the candidate keys to retry after a strict-mode miss. Scripts whose marks
// are semantically load-bearing are skipped for diacritic-stripping folds
// (but still get prefix/suffix/contraction folds, which don't touch marks).
func fuzzyCandidates(base string) []string {
	var out []string
	preserve := hasPreservedScript(base)

	if !preserve {
		out = append(out, foldLatinDiacritics(base))
		out = append(out, foldGreekTonos(base))
		out = append(out, foldArabicTashkeel(base))
		out = append(out, foldHebrewNiqqud(base))
		out = append(out, foldCyrillicYo(base))
	}
	out = append(out, stripArabicPrefix(base))
	out = append(out, stripHebrewPrefix(base))
	out = append(out, stripFrenchContraction(base))
	out = append(out, stripNordicSuffix(base))

	return out
}
