package words

import (
	"errors"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestResolveCrossLanguage(t *testing.T) {
	words := []string{"dog", "perro", "犬", "🐕", "собака"}
	var want IconIndex
	for i, w := range words {
		idx, err := Resolve(w, true)
		if err != nil {
			t.Fatalf("Resolve(%q, true) unexpected error: %v", w, err)
		}
		if i == 0 {
			want = idx
		} else if idx != want {
			t.Errorf("Resolve(%q, true) = %d, want %d (same as %q)", w, idx, want, words[0])
		}
	}
	if want != 15 {
		t.Errorf("cross-language index = %d, want 15", want)
	}
}

func TestResolveStrictRejectsUnaccented(t *testing.T) {
	idx, err := Resolve("corazón", true)
	if err != nil {
		t.Fatalf("Resolve(%q, true) unexpected error: %v", "corazón", err)
	}
	if idx != 8 {
		t.Errorf("Resolve(%q, true) = %d, want 8", "corazón", idx)
	}

	_, err = Resolve("corazon", true)
	if !errors.Is(err, ErrUnresolvable) {
		t.Errorf("Resolve(%q, true) error = %v, want ErrUnresolvable", "corazon", err)
	}
}

func TestResolveFuzzyAcceptsUnaccented(t *testing.T) {
	idx, err := Resolve("corazon", false)
	if err != nil {
		t.Fatalf("fuzzy Resolve(%q) unexpected error: %v", "corazon", err)
	}
	if idx != 8 {
		t.Errorf("fuzzy Resolve(%q) = %d, want 8", "corazon", idx)
	}
}

func TestResolveManyPositionalErrors(t *testing.T) {
	list := []string{"dog", "not-a-real-word-xyz", "perro"}
	indexes, errs := ResolveMany(list, true)
	if len(errs) != len(list) {
		t.Fatalf("len(errs) = %d, want %d", len(errs), len(list))
	}
	if errs[0] != nil || errs[2] != nil {
		t.Errorf("expected positions 0 and 2 to resolve cleanly, got errs = %v", errs)
	}
	if errs[1] == nil {
		t.Errorf("expected position 1 to fail to resolve")
	}
	if indexes[0] != indexes[2] {
		t.Errorf("dog/perro indexes differ: %d vs %d", indexes[0], indexes[2])
	}
}

func TestEveryIndexHasPrimaryWordPerLanguage(t *testing.T) {
	tbl, err := DefaultTable()
	if err != nil {
		t.Fatalf("DefaultTable() error: %v", err)
	}
	for _, li := range tbl.Order {
		for i := 0; i < 256; i++ {
			word, err := tbl.PrimaryWord(IconIndex(i), li.Code)
			if err != nil {
				t.Fatalf("PrimaryWord(%d, %q) error: %v", i, li.Code, err)
			}
			idx, err := tbl.Resolve(word, true)
			if err != nil {
				t.Fatalf("Resolve(%q, true) [lang %q idx %d] error: %v", word, li.Code, i, err)
			}
			if idx != IconIndex(i) {
				t.Errorf("Resolve(PrimaryWord(%d, %q)) = %d, want %d", i, li.Code, idx, i)
			}
		}
	}
}

func TestSearchDeduplicatesAndLimits(t *testing.T) {
	hits := Search("do", 5)
	if len(hits) == 0 {
		t.Fatalf("Search(%q, 5) returned no hits", "do")
	}
	seen := make(map[IconIndex]bool)
	for _, h := range hits {
		if seen[h.Index] {
			t.Errorf("Search returned duplicate IconIndex %d", h.Index)
		}
		seen[h.Index] = true
	}
	if len(hits) > 5 {
		t.Errorf("Search returned %d hits, limit was 5", len(hits))
	}
	for i := 1; i < len(hits); i++ {
		if hits[i-1].Word > hits[i].Word {
			t.Errorf("Search results not sorted: %q before %q", hits[i-1].Word, hits[i].Word)
		}
	}
}

func TestSearchZeroLimit(t *testing.T) {
	if hits := Search("do", 0); hits != nil {
		t.Errorf("Search with limit 0 = %v, want nil", hits)
	}
}

func TestLanguagesReturnsOrderedList(t *testing.T) {
	langs := Languages()
	if len(langs) == 0 {
		t.Fatal("Languages() returned empty list")
	}
	seen := make(map[string]bool)
	for _, li := range langs {
		if li.Code == "" {
			t.Error("Languages() entry with empty code")
		}
		if seen[li.Code] {
			t.Errorf("Languages() duplicate code %q", li.Code)
		}
		seen[li.Code] = true
	}
}

func TestLanguagesStableAcrossCalls(t *testing.T) {
	first := Languages()
	second := Languages()
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Languages() not stable across calls (-first +second):\n%s", diff)
	}

	byCode := make(map[string]LanguageInfo, len(second))
	for _, li := range second {
		byCode[li.Code] = li
	}
	codes := make([]string, 0, len(byCode))
	for code := range byCode {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	rebuilt := make([]LanguageInfo, 0, len(codes))
	for _, code := range codes {
		rebuilt = append(rebuilt, byCode[code])
	}
	if diff := cmp.Diff(len(rebuilt), len(second)); diff != "" {
		t.Errorf("Languages() entries lost when re-keyed by code (-want +got):\n%s", diff)
	}
}
