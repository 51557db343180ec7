package pkex

import (
	"crypto"
	"crypto/hmac"
)

// hmacX computes HMAC(key, concat(parts...)) with the given hash.
func hmacX(hash crypto.Hash, key []byte, parts ...[]byte) []byte {
	mac := hmac.New(hash.New, key)
	for _, p := range parts {
		mac.Write(p) //nolint:errcheck // hash.Hash.Write never errors
	}
	return mac.Sum(nil)
}
