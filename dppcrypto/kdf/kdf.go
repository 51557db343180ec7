// Package kdf provides the hash and key-derivation primitives shared by the
// DPP authentication and PKEX key schedules: SHA-2 selection by key length,
// HKDF, and 802.11's prf+ construction.
package kdf

import (
	"crypto"
	"crypto/hmac"
	"encoding/binary"
	"io"

	"golang.org/x/crypto/hkdf"

	_ "crypto/sha256" // register SHA-256/384
	_ "crypto/sha512" // register SHA-512

	"github.com/go-dpp/dpp/dpperr"
)

// HashFor returns the hash algorithm associated with a key of the given
// length: SHA-256 for 32 bytes, SHA-384 for 48, SHA-512 for 64.
func HashFor(keyLen int) (crypto.Hash, error) {
	switch keyLen {
	case 32:
		return crypto.SHA256, nil
	case 48:
		return crypto.SHA384, nil
	case 64:
		return crypto.SHA512, nil
	default:
		return 0, dpperr.Unsupported("kdf.HashFor", nil)
	}
}

// NonceLenFor returns the nonce length associated with a key of the given
// length: 16, 24, 32 bytes respectively.
func NonceLenFor(keyLen int) (int, error) {
	switch keyLen {
	case 32:
		return 16, nil
	case 48:
		return 24, nil
	case 64:
		return 32, nil
	default:
		return 0, dpperr.Unsupported("kdf.NonceLenFor", nil)
	}
}

// H computes Hash(concat(parts...)).
func H(hash crypto.Hash, parts ...[]byte) []byte {
	h := hash.New()
	for _, p := range parts {
		h.Write(p) //nolint:errcheck // hash.Hash.Write never errors
	}
	return h.Sum(nil)
}

// HKDF computes HKDF-Expand(HKDF-Extract(salt, ikm), info, l). A nil salt is
// treated as a hash-sized zero buffer, per the DPP key schedule's convention.
func HKDF(hash crypto.Hash, salt, info, ikm []byte, l int) ([]byte, error) {
	if !hash.Available() {
		return nil, dpperr.Unsupported("kdf.HKDF: hash unavailable", nil)
	}
	if salt == nil {
		salt = make([]byte, hash.Size())
	}
	r := hkdf.New(hash.New, ikm, salt, info)
	out := make([]byte, l)
	if _, err := io.ReadFull(r, out); err != nil {
		return nil, dpperr.CryptoFailure("kdf.HKDF", err)
	}
	return out, nil
}

// PrfPlus implements the 802.11 prf+ construction used by the DPP PKEX key
// schedule: iterated HMAC over (counter || concat(parts) || out_len_le16),
// with a 1-indexed counter byte. This mirrors the counter-mode KDF loop the
// FIDO Device Onboard kex package hand-rolls for its own protocol-specific
// KDF, adapted to prf+'s byte layout.
func PrfPlus(hash crypto.Hash, prk []byte, outLen int, parts ...[]byte) ([]byte, error) {
	if !hash.Available() {
		return nil, dpperr.Unsupported("kdf.PrfPlus: hash unavailable", nil)
	}

	hLen := hash.Size()
	n := (outLen + hLen - 1) / hLen
	if n > 255 {
		return nil, dpperr.Unsupported("kdf.PrfPlus: output too long", nil)
	}

	var body []byte
	for _, p := range parts {
		body = append(body, p...)
	}
	lenSuffix := make([]byte, 2)
	binary.LittleEndian.PutUint16(lenSuffix, uint16(outLen*8))

	var result []byte
	for i := 1; i <= n; i++ {
		mac := hmac.New(hash.New, prk)
		mac.Write([]byte{byte(i)}) //nolint:errcheck
		mac.Write(body)            //nolint:errcheck
		mac.Write(lenSuffix)       //nolint:errcheck
		result = append(result, mac.Sum(nil)...)
	}
	return result[:outLen], nil
}
