package attr

import (
	"crypto/aes"
	"crypto/cipher"

	"github.com/go-dpp/dpp/dpperr"
)

// oneBlock is 127 zero bits followed by a single one bit, per RFC 5297 §2.4.
var oneBlock = append(make([]byte, blockSize-1), 0x01)

// s2v implements RFC 5297 §2.4's S2V construction: components is the
// ordered list of associated-data strings with the plaintext last.
func s2v(key []byte, components [][]byte) ([]byte, error) {
	if len(components) == 0 {
		return cmac(key, oneBlock)
	}

	d, err := cmac(key, zeroBlock)
	if err != nil {
		return nil, err
	}

	for i := 0; i < len(components)-1; i++ {
		c, err := cmac(key, components[i])
		if err != nil {
			return nil, err
		}
		d = xorBlocks(dbl(d), c)
	}

	last := components[len(components)-1]
	var t []byte
	if len(last) >= blockSize {
		t = xorend(last, d)
	} else {
		t = xorBlocks(dbl(d), pad(last))
	}
	return cmac(key, t)
}

// xorend XORs b into the rightmost len(b) bytes of a, per RFC 5297 §2.3.
func xorend(a, b []byte) []byte {
	out := make([]byte, len(a))
	copy(out, a)
	off := len(a) - len(b)
	for i, v := range b {
		out[off+i] ^= v
	}
	return out
}

// sivIV masks the top bit of the 32-bit words at byte offsets 8 and 12 of
// v, producing the counter block SIV mode feeds to CTR-AES, per RFC 5297
// §2.5.
func sivIV(v []byte) []byte {
	q := make([]byte, len(v))
	copy(q, v)
	q[8] &= 0x7f
	q[12] &= 0x7f
	return q
}

func splitKey(key []byte) (k1, k2 []byte, err error) {
	if len(key)%2 != 0 {
		return nil, nil, dpperr.Unsupported("attr: SIV key must have even length", nil)
	}
	half := len(key) / 2
	return key[:half], key[half:], nil
}

// Wrap encrypts and authenticates plaintext with AES-SIV (RFC 5297), using
// ad as the ordered associated-data components. key's first half is the S2V
// (CMAC) key, its second half the CTR-AES key, matching the original
// implementation's aes_siv_encrypt convention of concatenating both halves
// into a single "wrapping key". The output is CTR-AES(P) || S2V(...), i.e.
// ciphertext of the same length as plaintext followed by the 16-byte
// synthetic IV, per the DPP WrappedData attribute's wire format.
func Wrap(key []byte, plaintext []byte, ad [][]byte) ([]byte, error) {
	k1, k2, err := splitKey(key)
	if err != nil {
		return nil, err
	}

	components := append(append([][]byte{}, ad...), plaintext)
	v, err := s2v(k1, components)
	if err != nil {
		return nil, dpperr.CryptoFailure("attr.Wrap: s2v", err)
	}

	block, err := aes.NewCipher(k2)
	if err != nil {
		return nil, dpperr.CryptoFailure("attr.Wrap: aes", err)
	}
	stream := cipher.NewCTR(block, sivIV(v))
	ciphertext := make([]byte, len(plaintext))
	stream.XORKeyStream(ciphertext, plaintext)

	out := make([]byte, 0, len(ciphertext)+len(v))
	out = append(out, ciphertext...)
	out = append(out, v...)
	return out, nil
}

// Unwrap reverses Wrap, verifying the synthetic IV against a freshly
// computed S2V over the recovered plaintext and the same associated data.
// It returns dpperr.CryptoVerifyFailure if authentication fails.
func Unwrap(key []byte, wrapped []byte, ad [][]byte) ([]byte, error) {
	if len(wrapped) < blockSize {
		return nil, dpperr.Malformed("attr.Unwrap: wrapped data too short", nil)
	}
	k1, k2, err := splitKey(key)
	if err != nil {
		return nil, err
	}

	ciphertextLen := len(wrapped) - blockSize
	ciphertext := wrapped[:ciphertextLen]
	v := wrapped[ciphertextLen:]

	block, err := aes.NewCipher(k2)
	if err != nil {
		return nil, dpperr.CryptoFailure("attr.Unwrap: aes", err)
	}
	stream := cipher.NewCTR(block, sivIV(v))
	plaintext := make([]byte, len(ciphertext))
	stream.XORKeyStream(plaintext, ciphertext)

	components := append(append([][]byte{}, ad...), plaintext)
	check, err := s2v(k1, components)
	if err != nil {
		return nil, dpperr.CryptoFailure("attr.Unwrap: s2v", err)
	}
	if !constantTimeEqual(check, v) {
		return nil, dpperr.CryptoFailure("attr.Unwrap: SIV mismatch", nil)
	}
	return plaintext, nil
}

func constantTimeEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	var diff byte
	for i := range a {
		diff |= a[i] ^ b[i]
	}
	return diff == 0
}
