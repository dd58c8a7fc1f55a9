package seed

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
)

// checksumDomain is the frozen HMAC key for the v2 checksum construction.
const checksumDomain = "universal-seed-v2-checksum"

// ComputeChecksum returns the 2-byte checksum for a data-index slice:
// HMAC-SHA-256(checksumDomain, dataIndexes)[0:2].
func ComputeChecksum(dataIndexes []byte) [2]byte {
	mac := hmac.New(sha256.New, []byte(checksumDomain))
	mac.Write(dataIndexes)
	digest := mac.Sum(nil)
	var out [2]byte
	copy(out[:], digest[:2])
	return out
}

// VerifyChecksum checks that the trailing 2 bytes of indexes match the
// checksum computed over the leading bytes. indexes must be length 24 or
// 36; any other length returns false. Never panics.
func VerifyChecksum(indexes []byte) bool {
	n := len(indexes)
	if n != 24 && n != 36 {
		return false
	}
	want := ComputeChecksum(indexes[:n-2])
	got := indexes[n-2:]
	return subtle.ConstantTimeCompare(want[:], got) == 1
}
