// Package kdf implements the key-derivation pipeline: positional binding,
// HKDF-Extract, PBKDF2, Argon2id, HKDF-Expand, plus fingerprinting, profile
// derivation, and the entropy-bits estimator.
package kdf

import (
	"crypto/hmac"
	"crypto/sha512"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/pbkdf2"

	"github.com/universalseed/useed/seed"
	"github.com/universalseed/useed/words"
)

// Frozen v2 domain-separation constants. Every value here is part of the
// compatibility contract: changing any of them requires a new Domain string
// and a new spec version.
const (
	Domain = "universal-seed-v2"

	extractSalt = Domain

	pbkdf2SaltSuffix = "-stretch-pbkdf2"
	pbkdf2Iterations = 600_000
	pbkdf2KeyLen     = 64

	argon2SaltSuffix = "-stretch-argon2id"
	argon2Time       = 3
	argon2MemoryKiB  = 65536
	argon2Threads    = 4
	argon2KeyLen     = 64

	expandInfoSuffix = "-master"
	expandLen        = 64

	profileInfoSuffix = "-profile"
)

var (
	pbkdf2Salt = []byte(Domain + pbkdf2SaltSuffix)
	argon2Salt = []byte(Domain + argon2SaltSuffix)
	expandInfo = []byte(Domain + expandInfoSuffix)
)

// ErrInvalidLength indicates a SeedInput did not resolve to 24 or 36 icon
// indexes.
var ErrInvalidLength = errors.New("kdf: seed input must resolve to 24 or 36 indexes")

// ErrUnresolvable re-exports words.ErrUnresolvable so callers can match it
// with errors.Is without importing the words package directly.
var ErrUnresolvable = words.ErrUnresolvable

// ErrChecksumMismatch indicates the seed's trailing 2 indexes did not match
// the checksum computed over the data indexes.
var ErrChecksumMismatch = errors.New("kdf: checksum mismatch")

// ErrInvalidWordCount indicates a requested word count was neither 24 nor 36.
var ErrInvalidWordCount = seed.ErrInvalidWordCount

// SeedInput is a closed sum-type-like helper admitting exactly one of three
// shapes: words, indexes, or a typed seed.Seed. Construct it with
// FromWords, FromIndexes, or FromSeed — never directly.
type SeedInput struct {
	indexes []byte
	words   []string
}

// FromWords builds a SeedInput from a word list, resolved strictly against
// the default lookup table at derivation time. Resolution is always strict
// here: a fuzzy hit must never silently feed key derivation.
func FromWords(list []string) SeedInput {
	return SeedInput{words: append([]string{}, list...)}
}

// FromIndexes builds a SeedInput directly from 24 or 36 icon index bytes.
func FromIndexes(indexes []byte) SeedInput {
	return SeedInput{indexes: append([]byte{}, indexes...)}
}

// FromSeed builds a SeedInput from an already-constructed seed.Seed value.
func FromSeed(s seed.Seed) SeedInput {
	return SeedInput{indexes: s.Indexes()}
}

// resolve produces the full index sequence (data + checksum) for this
// input, resolving words strictly if that is the input's shape.
func (in SeedInput) resolve() ([]byte, error) {
	if in.words != nil {
		indexes, errs := words.ResolveMany(in.words, true)
		for i, err := range errs {
			if err != nil {
				return nil, fmt.Errorf("kdf: resolving word %d (%q): %w", i, in.words[i], err)
			}
		}
		return []byte(indexes), nil
	}
	return in.indexes, nil
}

// DeriveMasterKey runs the full six-layer pipeline (verify, bind, mix,
// extract, stretch, expand) and returns the 64-byte master key. A failed
// checksum always aborts derivation; no key is ever derived from an invalid
// seed.
func DeriveMasterKey(input SeedInput, passphrase string) ([64]byte, error) {
	indexes, err := input.resolve()
	if err != nil {
		return [64]byte{}, err
	}
	if len(indexes) != 24 && len(indexes) != 36 {
		return [64]byte{}, fmt.Errorf("%w: got %d", ErrInvalidLength, len(indexes))
	}
	if !seed.VerifyChecksum(indexes) {
		return [64]byte{}, ErrChecksumMismatch
	}

	dataIndexes := indexes[:len(indexes)-2]
	return deriveFromData(dataIndexes, passphrase)
}

// deriveFromData runs steps 1-6 of the pipeline over already-checksum-
// verified data indexes.
func deriveFromData(dataIndexes []byte, passphrase string) ([64]byte, error) {
	payload := positionalPayload(dataIndexes, passphrase)
	payloadBuf := newSecretBuffer(payload)
	defer payloadBuf.wipe()

	prk := hmacSHA512(extractSalt, payload)
	prkBuf := newSecretBuffer(prk)
	defer prkBuf.wipe()

	s1 := pbkdf2.Key(prk, pbkdf2Salt, pbkdf2Iterations, pbkdf2KeyLen, sha512.New)
	s1Buf := newSecretBuffer(s1)
	defer s1Buf.wipe()

	s2 := argon2.IDKey(s1, argon2Salt, argon2Time, argon2MemoryKiB, argon2Threads, argon2KeyLen)
	s2Buf := newSecretBuffer(s2)
	defer s2Buf.wipe()

	r := hkdf.Expand(sha512.New, s2, expandInfo)
	var out [64]byte
	if _, err := io.ReadFull(r, out[:]); err != nil {
		return [64]byte{}, fmt.Errorf("kdf: hkdf expand: %w", err)
	}
	return out, nil
}

// positionalPayload builds the position-tagged byte sequence: for each data
// index i, (pos_i, index_i), followed by the raw UTF-8 passphrase bytes if
// non-empty. The passphrase is never normalized.
func positionalPayload(dataIndexes []byte, passphrase string) []byte {
	payload := make([]byte, 0, len(dataIndexes)*2+len(passphrase))
	for i, idx := range dataIndexes {
		payload = append(payload, byte(i), idx)
	}
	if passphrase != "" {
		payload = append(payload, []byte(passphrase)...)
	}
	return payload
}

func hmacSHA512(key string, msg []byte) []byte {
	mac := hmac.New(sha512.New, []byte(key))
	mac.Write(msg)
	return mac.Sum(nil)
}

// KDFInfo returns a short human-readable description of the active KDF
// domain and parameters, for diagnostics and the reference CLI's info
// command.
func KDFInfo() string {
	return fmt.Sprintf("%s: HKDF-Extract(SHA-512) -> PBKDF2-SHA-512(%d) -> Argon2id(t=%d,m=%dKiB,p=%d) -> HKDF-Expand(SHA-512)",
		Domain, pbkdf2Iterations, argon2Time, argon2MemoryKiB, argon2Threads)
}
