package kdf

import (
	"crypto/hmac"
	"crypto/sha512"
)

// DeriveProfile derives an independent profile key from a master key and a
// password. An empty password returns masterKey unchanged (the default
// profile). Never fails.
func DeriveProfile(masterKey [64]byte, password string) [64]byte {
	if password == "" {
		return masterKey
	}
	msg := append([]byte(Domain+profileInfoSuffix), []byte(password)...)
	mac := hmac.New(sha512.New, masterKey[:])
	mac.Write(msg)
	digest := mac.Sum(nil)

	var out [64]byte
	copy(out[:], digest)
	return out
}
