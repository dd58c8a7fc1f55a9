// Package seed implements the seed model: data-index layout, the 16-bit
// HMAC-SHA-256 checksum, and seed generation from validated entropy.
package seed

import (
	"errors"
	"fmt"

	"github.com/universalseed/useed/words"
)

// IconIndex identifies one of 256 immutable visual concepts.
type IconIndex = words.IconIndex

// ErrInvalidWordCount indicates a requested or supplied seed length was
// neither 24 nor 36.
var ErrInvalidWordCount = errors.New("seed: word count must be 24 or 36")

// ErrInvalidIndex indicates an index value outside [0, 255] reached a code
// path that only compiler-enforced IconIndex values should reach — possible
// for raw integer input from the CLI's --indexes flag, unreachable for
// []byte-typed callers.
var ErrInvalidIndex = errors.New("seed: index out of range [0, 255]")

// ErrEntropyUnavailable indicates the entropy pool failed randomness
// validation on every retry attempt.
var ErrEntropyUnavailable = errors.New("seed: entropy pool failed validation")

// SeedWord pairs an icon index with its display word in the language used
// at generation time. The word is reserved for display and round-trip only;
// derivation always operates on the index.
type SeedWord struct {
	Index IconIndex
	Word  string
}

// Seed is an ordered sequence of icon indexes: wordCount-2 data indexes
// followed by 2 checksum indexes. Value type; immutable after creation.
type Seed struct {
	indexes []byte
}

// NewSeed wraps a raw index slice (24 or 36 bytes, checksum included) into a
// Seed value without verifying the checksum; callers that need assurance
// call VerifyChecksum explicitly.
func NewSeed(indexes []byte) (Seed, error) {
	if len(indexes) != 24 && len(indexes) != 36 {
		return Seed{}, fmt.Errorf("seed: %w: got %d", ErrInvalidWordCount, len(indexes))
	}
	cp := make([]byte, len(indexes))
	copy(cp, indexes)
	return Seed{indexes: cp}, nil
}

// Indexes returns a defensive copy of the full index sequence, checksum
// included.
func (s Seed) Indexes() []byte {
	cp := make([]byte, len(s.indexes))
	copy(cp, s.indexes)
	return cp
}

// DataIndexes returns a defensive copy of the data portion only (excludes
// the trailing 2 checksum indexes).
func (s Seed) DataIndexes() []byte {
	n := len(s.indexes)
	cp := make([]byte, n-2)
	copy(cp, s.indexes[:n-2])
	return cp
}

// Len returns the total index count (24 or 36).
func (s Seed) Len() int {
	return len(s.indexes)
}
