// Package pkex implements DPP's PKEX (Public Key Exchange) key schedule:
// the password-derived base-point multiples Qi/Qr, the shared secret z, and
// the commit-reveal MACs u/v. Grounded on dpp_derive_qi/qr/z/u/v in the
// reference implementation's dpp-util.c.
package pkex

import (
	"math/big"

	"github.com/go-dpp/dpp/dppcrypto/ecc"
	"github.com/go-dpp/dpp/dppcrypto/kdf"
	"github.com/go-dpp/dpp/dpperr"
)

// pkexInitiatorP256X/Y and pkexResponderP256X/Y are the fixed base points Pi
// and Pr defined by the Easy Connect specification for PKEX on P-256.
var (
	pkexInitiatorP256X = new(big.Int).SetBytes([]byte{
		0x56, 0x26, 0x12, 0xcf, 0x36, 0x48, 0xfe, 0x0b,
		0x07, 0x04, 0xbb, 0x12, 0x22, 0x50, 0xb2, 0x54,
		0xb1, 0x94, 0x64, 0x7e, 0x54, 0xce, 0x08, 0x07,
		0x2e, 0xec, 0xca, 0x74, 0x5b, 0x61, 0x2d, 0x25,
	})
	pkexInitiatorP256Y = new(big.Int).SetBytes([]byte{
		0x3e, 0x44, 0xc7, 0xc9, 0x8c, 0x1c, 0xa1, 0x0b,
		0x20, 0x09, 0x93, 0xb2, 0xfd, 0xe5, 0x69, 0xdc,
		0x75, 0xbc, 0xad, 0x33, 0xc1, 0xe7, 0xc6, 0x45,
		0x4d, 0x10, 0x1e, 0x6a, 0x3d, 0x84, 0x3c, 0xa4,
	})
	pkexResponderP256X = new(big.Int).SetBytes([]byte{
		0x1e, 0xa4, 0x8a, 0xb1, 0xa4, 0xe8, 0x42, 0x39,
		0xad, 0x73, 0x07, 0xf2, 0x34, 0xdf, 0x57, 0x4f,
		0xc0, 0x9d, 0x54, 0xbe, 0x36, 0x1b, 0x31, 0x0f,
		0x59, 0x91, 0x52, 0x33, 0xac, 0x19, 0x9d, 0x76,
	})
	pkexResponderP256Y = new(big.Int).SetBytes([]byte{
		0xd9, 0xfb, 0xf6, 0xb9, 0xf5, 0xfa, 0xdf, 0x19,
		0x58, 0xd8, 0x3e, 0xc9, 0x89, 0x7a, 0x35, 0xc1,
		0xbd, 0xe9, 0x0b, 0x77, 0x7a, 0xcb, 0x91, 0x2a,
		0xe8, 0x21, 0x3f, 0x47, 0x52, 0x02, 0x4d, 0x67,
	})
)

// BasePoints returns the fixed initiator/responder base points Pi, Pr for
// curve. The Easy Connect specification only publishes these constants for
// P-256; requesting P-384 (or any other curve) returns dpperr.Unsupported.
func BasePoints(curve ecc.CurveID) (pi, pr *ecc.Point, err error) {
	if curve != ecc.P256 {
		return nil, nil, dpperr.Unsupported("pkex.BasePoints: no published base points for this curve", nil)
	}
	pi, err = ecc.NewPoint(curve, pkexInitiatorP256X, pkexInitiatorP256Y)
	if err != nil {
		return nil, nil, err
	}
	pr, err = ecc.NewPoint(curve, pkexResponderP256X, pkexResponderP256Y)
	if err != nil {
		return nil, nil, err
	}
	return pi, pr, nil
}

func hashScalar(curve ecc.CurveID, parts ...[]byte) (*ecc.Scalar, error) {
	h := kdf.H(curve.Hash(), parts...)
	return ecc.ScalarFromBytes(curve, h[:curve.ScalarLen()])
}

// DeriveQI computes Qi = H([MAC-Initiator |] [identifier |] code) * Pi.
// mac is nil when the PKEX protocol version omits MAC-Initiator from the
// hash input; identifier is empty when no identifying string was configured.
func DeriveQI(base *ecc.Point, mac []byte, identifier, code string) (*ecc.Point, error) {
	return deriveQ(base, mac, identifier, code)
}

// DeriveQR computes Qr = H([MAC-Responder |] [identifier |] code) * Pr,
// with the same optionality rules as DeriveQI.
func DeriveQR(base *ecc.Point, mac []byte, identifier, code string) (*ecc.Point, error) {
	return deriveQ(base, mac, identifier, code)
}

func deriveQ(base *ecc.Point, mac []byte, identifier, code string) (*ecc.Point, error) {
	var parts [][]byte
	if mac != nil {
		parts = append(parts, mac)
	}
	if identifier != "" {
		parts = append(parts, []byte(identifier))
	}
	parts = append(parts, []byte(code))

	scalar, err := hashScalar(base.Curve(), parts...)
	if err != nil {
		return nil, dpperr.CryptoFailure("pkex.deriveQ: hash to scalar", err)
	}
	return base.MulScalar(scalar)
}

// DeriveZ computes z = HKDF-Expand(HKDF-Extract(salt=nil, ikm=K.x),
// MAC-Initiator | MAC-Responder | M.x | N.x | code, key_len), the PKEX shared
// secret used to derive the wrapping key for the Commit-Reveal exchange.
func DeriveZ(macI, macR [6]byte, k, m, n *ecc.Point, code string) ([]byte, error) {
	curve := k.Curve()
	hash := curve.Hash()

	var info []byte
	info = append(info, macI[:]...)
	info = append(info, macR[:]...)
	info = append(info, m.X()...)
	info = append(info, n.X()...)
	info = append(info, code...)
	return kdf.HKDF(hash, nil, info, k.X(), curve.ScalarLen())
}

// DeriveU computes u = HMAC(J.x, MAC-Initiator | A.x | Y'.x | X.x), the
// initiator's Commit-Reveal MAC. includeMAC lets a caller drive whether
// MAC-Initiator enters the transcript explicitly, since the reference
// implementation's own comment notes this varies by protocol version and
// must never be inferred by the derivation itself.
func DeriveU(j *ecc.Point, mac []byte, a, y, x *ecc.Point, includeMAC bool) []byte {
	hash := y.Curve().Hash()
	var parts [][]byte
	if includeMAC {
		parts = append(parts, mac)
	}
	parts = append(parts, a.X(), y.X(), x.X())
	return hmacX(hash, j.X(), parts...)
}

// DeriveV computes v = HMAC(L.x, [MAC-Responder |] B.x | X'.x | Y.x), the
// responder's Commit-Reveal MAC, with the same explicit-inclusion contract
// as DeriveU.
func DeriveV(l *ecc.Point, mac []byte, b, x, y *ecc.Point, includeMAC bool) []byte {
	hash := l.Curve().Hash()
	var parts [][]byte
	if includeMAC {
		parts = append(parts, mac)
	}
	parts = append(parts, b.X(), x.X(), y.X())
	return hmacX(hash, l.X(), parts...)
}
