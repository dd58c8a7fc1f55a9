package kdf

import (
	"encoding/hex"
	"strings"

	"github.com/universalseed/useed/seed"
)

// Fingerprint returns an 8-character uppercase hex public identifier for
// input. With an empty passphrase this takes a fast path (a single HMAC,
// skipping the stretch stages); with a non-empty passphrase it runs the
// full DeriveMasterKey pipeline and truncates the result.
func Fingerprint(input SeedInput, passphrase string) (string, error) {
	indexes, err := input.resolve()
	if err != nil {
		return "", err
	}
	if len(indexes) != 24 && len(indexes) != 36 {
		return "", ErrInvalidLength
	}
	if !seed.VerifyChecksum(indexes) {
		return "", ErrChecksumMismatch
	}
	dataIndexes := indexes[:len(indexes)-2]

	if passphrase == "" {
		payload := positionalPayload(dataIndexes, "")
		prk := hmacSHA512(extractSalt, payload)
		return strings.ToUpper(hex.EncodeToString(prk[:4])), nil
	}

	masterKey, err := deriveFromData(dataIndexes, passphrase)
	if err != nil {
		return "", err
	}
	return strings.ToUpper(hex.EncodeToString(masterKey[:4])), nil
}
