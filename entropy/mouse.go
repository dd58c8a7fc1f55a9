package entropy

import (
	"crypto/sha512"
	"encoding/binary"
	"hash"
	"time"
)

// bitsPerMouseSample is the display convention used by BitsCollected; no
// internal logic branches on it.
const bitsPerMouseSample = 2

// MouseEntropyPool accumulates unique cursor positions into a rolling
// SHA-512 state. Not safe for concurrent use — callers serialize AddSample
// and Digest themselves.
type MouseEntropyPool struct {
	hasher        hash.Hash
	sampleCount   int
	bitsCollected int
	seen          map[[2]int32]struct{}
}

// NewMouseEntropyPool returns an empty, ready-to-use pool.
func NewMouseEntropyPool() *MouseEntropyPool {
	return &MouseEntropyPool{
		hasher: sha512.New(),
		seen:   make(map[[2]int32]struct{}),
	}
}

// AddSample folds a cursor position into the pool if it has not been seen
// before. Returns true if the sample was new (and thus contributed
// entropy), false if it was a duplicate (no state change).
func (p *MouseEntropyPool) AddSample(x, y int32) bool {
	key := [2]int32{x, y}
	if _, ok := p.seen[key]; ok {
		return false
	}
	p.seen[key] = struct{}{}

	var buf [20]byte
	binary.LittleEndian.PutUint32(buf[0:4], uint32(x))
	binary.LittleEndian.PutUint32(buf[4:8], uint32(y))
	binary.LittleEndian.PutUint64(buf[8:16], uint64(time.Now().UnixNano()))
	_ = buf[16:20] // reserved, zero-filled

	p.hasher.Write(buf[:])
	p.sampleCount++
	p.bitsCollected += bitsPerMouseSample
	return true
}

// Digest snapshots the current hasher state without mutating the pool.
func (p *MouseEntropyPool) Digest() [64]byte {
	sum := p.hasher.Sum(nil)
	var out [64]byte
	copy(out[:], sum)
	return out
}

// BitsCollected returns the running count of entropy bits attributed to
// unique samples collected so far.
func (p *MouseEntropyPool) BitsCollected() int {
	return p.bitsCollected
}

// SampleCount returns the number of unique samples absorbed so far.
func (p *MouseEntropyPool) SampleCount() int {
	return p.sampleCount
}
