package seed

import (
	"fmt"

	"github.com/universalseed/useed/entropy"
	"github.com/universalseed/useed/words"
)

// maxRegenerationAttempts is the hard retry bound before generation fails
// fatally, per SPEC_FULL.md §4.3/§4.5.
const maxRegenerationAttempts = 10

// defaultLanguage is used when GenerateWords is called with an empty
// language code.
const defaultLanguage = "en"

// entropySource is the interface the production entropy.Pool and a
// deterministic test double both satisfy, letting seed generation be
// exercised deterministically without touching the OS RNG.
type entropySource interface {
	Extract(extra []byte) ([]byte, error)
}

// validator is the function type entropy.VerifyRandomness satisfies, injectable
// for the same reason as entropySource.
type validator func(sample []byte, sampleSize, numSamples int) entropy.Report

// GenerateWords produces a validated seed of wordCount icon indexes
// (including the 2 trailing checksum indexes) and renders each to its
// primary display word in language, defaulting to English when language is
// empty.
func GenerateWords(wordCount int, extraEntropy []byte, language string) ([]SeedWord, error) {
	return generateWords(NewPoolSource(), entropy.VerifyRandomness, wordCount, extraEntropy, language)
}

// poolSource adapts *entropy.Pool to entropySource.
type poolSource struct {
	pool *entropy.Pool
}

// NewPoolSource wraps a fresh production entropy pool as an entropySource.
func NewPoolSource() entropySource {
	return &poolSource{pool: entropy.NewPool()}
}

func (p *poolSource) Extract(extra []byte) ([]byte, error) {
	return p.pool.Extract(extra)
}

func generateWords(source entropySource, verify validator, wordCount int, extraEntropy []byte, language string) ([]SeedWord, error) {
	if wordCount != 24 && wordCount != 36 {
		return nil, fmt.Errorf("seed: %w: got %d", ErrInvalidWordCount, wordCount)
	}
	if language == "" {
		language = defaultLanguage
	}

	dataLen := wordCount - 2

	var sample []byte
	var lastErr error
	valid := false
	for attempt := 0; attempt < maxRegenerationAttempts; attempt++ {
		out, err := source.Extract(extraEntropy)
		if err != nil {
			lastErr = err
			continue
		}
		report := verify(out, len(out), 1)
		if report.Pass {
			sample = out
			valid = true
			break
		}
		lastErr = fmt.Errorf("seed: entropy sample failed validation: %s", report.Summary)
	}
	if !valid {
		if lastErr != nil {
			return nil, fmt.Errorf("seed: %w: %v", ErrEntropyUnavailable, lastErr)
		}
		return nil, ErrEntropyUnavailable
	}
	if len(sample) < dataLen {
		return nil, fmt.Errorf("seed: entropy pool returned %d bytes, need at least %d", len(sample), dataLen)
	}

	dataIndexes := make([]byte, dataLen)
	copy(dataIndexes, sample[:dataLen])

	checksum := ComputeChecksum(dataIndexes)
	indexes := append(append([]byte{}, dataIndexes...), checksum[:]...)

	tbl, err := words.DefaultTable()
	if err != nil {
		return nil, err
	}

	out := make([]SeedWord, len(indexes))
	for i, idx := range indexes {
		word, err := tbl.PrimaryWord(IconIndex(idx), language)
		if err != nil {
			return nil, fmt.Errorf("seed: rendering index %d: %w", idx, err)
		}
		out[i] = SeedWord{Index: IconIndex(idx), Word: word}
	}
	return out, nil
}
