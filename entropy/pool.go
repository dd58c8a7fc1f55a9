// Package entropy implements the multi-source entropy pool, its NIST SP
// 800-22 statistical validator, and the stateful mouse-cursor accumulator.
package entropy

import (
	"crypto/rand"
	"crypto/sha512"
	"encoding/binary"
	"errors"
	"os"
	"reflect"
	"runtime"
	"time"
)

// ErrEntropyUnavailable indicates the OS CSPRNG could not be read.
var ErrEntropyUnavailable = errors.New("entropy: unable to read OS random source")

// Pool mixes eight entropy sources through a streaming SHA-512 hasher. The
// two OS CSPRNG reads and the hardware-RNG stand-in all read the same OS
// pool: they are defense in depth, not independent entropy. A Pool has no
// state between Extract calls; its zero value is ready to use.
type Pool struct{}

// NewPool returns a ready-to-use entropy pool.
func NewPool() *Pool {
	return &Pool{}
}

// Extract mixes all eight sources plus any caller-supplied bytes and
// returns 64 bytes of output. A final OS CSPRNG read is folded in last so
// the result is never weaker than the system CSPRNG alone.
func (p *Pool) Extract(extra []byte) ([]byte, error) {
	h := sha512.New()

	osA := make([]byte, 64)
	if _, err := rand.Read(osA); err != nil {
		return nil, ErrEntropyUnavailable
	}
	writeSegment(h, osA)

	osB := make([]byte, 64)
	if _, err := rand.Read(osB); err != nil {
		return nil, ErrEntropyUnavailable
	}
	writeSegment(h, osB)

	writeSegment(h, clockSamples())

	pidBuf := make([]byte, 8)
	binary.LittleEndian.PutUint64(pidBuf, uint64(os.Getpid()))
	writeSegment(h, pidBuf)

	writeSegment(h, cpuJitter())

	sched, err := schedulingNoise()
	if err != nil {
		return nil, err
	}
	writeSegment(h, sched)

	hwFold := make([]byte, 64)
	if _, err := rand.Read(hwFold); err != nil {
		return nil, ErrEntropyUnavailable
	}
	writeSegment(h, hwFold)
	writeSegment(h, pointerFold())

	if len(extra) > 0 {
		writeSegment(h, extra)
	}

	final := make([]byte, 64)
	if _, err := rand.Read(final); err != nil {
		return nil, ErrEntropyUnavailable
	}
	writeSegment(h, final)

	return h.Sum(nil), nil
}

// writeSegment feeds a length-prefixed segment into the running hash so
// distinct sources can never alias into one another.
func writeSegment(h interface{ Write([]byte) (int, error) }, seg []byte) {
	var lenBuf [4]byte
	binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(seg)))
	h.Write(lenBuf[:])
	h.Write(seg)
}

func clockSamples() []byte {
	buf := make([]byte, 0, 8*5)
	for i := 0; i < 5; i++ {
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], uint64(time.Now().UnixNano()))
		buf = append(buf, b[:]...)
	}
	return buf
}

func cpuJitter() []byte {
	const iterations = 64
	buf := make([]byte, 0, 8*iterations)
	prev := time.Now().UnixNano()
	for i := 0; i < iterations; i++ {
		x := 0
		for j := 0; j < 1000; j++ {
			x += j * j
		}
		now := time.Now().UnixNano()
		delta := now - prev
		prev = now
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], uint64(delta)^uint64(x))
		buf = append(buf, b[:]...)
	}
	return buf
}

// schedulingNoise launches short-lived goroutines and records their arrival
// order over a channel, bounded by a timeout so a stalled scheduler can
// never leak the pool's Extract call forever.
func schedulingNoise() ([]byte, error) {
	const workers = 32
	const timeout = 2 * time.Second

	arrivals := make(chan int64, workers)
	for i := 0; i < workers; i++ {
		go func() {
			arrivals <- time.Now().UnixNano()
		}()
	}

	buf := make([]byte, 0, 8*workers)
	deadline := time.After(timeout)
	for i := 0; i < workers; i++ {
		select {
		case ts := <-arrivals:
			var b [8]byte
			binary.LittleEndian.PutUint64(b[:], uint64(ts))
			buf = append(buf, b[:]...)
		case <-deadline:
			return buf, nil
		}
	}
	return buf, nil
}

// pointerFold captures the addresses of a fresh stack and heap allocation,
// which vary under ASLR, and folds them in as a weak additional source.
func pointerFold() []byte {
	stackVal := 0
	heapVal := new(int)
	*heapVal = 1

	buf := make([]byte, 16)
	binary.LittleEndian.PutUint64(buf[0:8], uint64(reflect.ValueOf(&stackVal).Pointer()))
	binary.LittleEndian.PutUint64(buf[8:16], uint64(reflect.ValueOf(heapVal).Pointer()))
	runtime.KeepAlive(&stackVal)
	runtime.KeepAlive(heapVal)
	return buf
}
