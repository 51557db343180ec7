package ecc

import (
	"crypto/elliptic"
	"math/big"

	"github.com/go-dpp/dpp/dpperr"
)

// Encoding names the wire shape a Point is serialized in.
type Encoding int

const (
	// EncodingFull is raw (x || y), each CoordLen() bytes.
	EncodingFull Encoding = iota
	// EncodingCompliant is x-only; the y sign is recovered deterministically
	// (the even-y square root is chosen, matching the convention used by
	// PKEX/SAE style "compliant" point encodings).
	EncodingCompliant
	// EncodingCompressed is x-only with an explicit SEC1 parity tag
	// (0x02 even / 0x03 odd) as the first byte.
	EncodingCompressed
)

// EncodeFull returns raw (x || y).
func (p *Point) EncodeFull() []byte {
	return append(p.X(), p.Y()...)
}

// EncodeCompliant returns x-only bytes; the corresponding decoder recovers
// the even-y root deterministically.
func (p *Point) EncodeCompliant() []byte {
	return p.X()
}

// EncodeCompressed returns the SEC1 compressed form: a single tag byte
// (0x02 for even y, 0x03 for odd y) followed by x.
func (p *Point) EncodeCompressed() []byte {
	tag := byte(0x02)
	if p.IsYOdd() {
		tag = 0x03
	}
	return append([]byte{tag}, p.X()...)
}

// PointFromBytes decodes a point encoded in the given shape and verifies it
// lies on the curve.
func PointFromBytes(curve CurveID, enc Encoding, data []byte) (*Point, error) {
	switch enc {
	case EncodingFull:
		n := curve.CoordLen()
		if len(data) != 2*n {
			return nil, dpperr.Malformed("ecc.PointFromBytes: full", nil)
		}
		x := new(big.Int).SetBytes(data[:n])
		y := new(big.Int).SetBytes(data[n:])
		return newPoint(curve, x, y)
	case EncodingCompliant:
		n := curve.CoordLen()
		if len(data) != n {
			return nil, dpperr.Malformed("ecc.PointFromBytes: compliant", nil)
		}
		x := new(big.Int).SetBytes(data)
		return recoverEvenY(curve, x)
	case EncodingCompressed:
		n := curve.CoordLen()
		if len(data) != n+1 || (data[0] != 0x02 && data[0] != 0x03) {
			return nil, dpperr.Malformed("ecc.PointFromBytes: compressed", nil)
		}
		ellCurve, err := curve.elliptic()
		if err != nil {
			return nil, err
		}
		x, y := elliptic.UnmarshalCompressed(ellCurve, data)
		if x == nil {
			return nil, dpperr.CryptoFailure("ecc.PointFromBytes: compressed", nil)
		}
		return newPoint(curve, x, y)
	default:
		return nil, dpperr.Unsupported("ecc.PointFromBytes: encoding", nil)
	}
}

// recoverEvenY finds the on-curve y for x and returns whichever of {y, p-y}
// is even, matching EncodeCompliant's convention.
func recoverEvenY(curve CurveID, x *big.Int) (*Point, error) {
	ellCurve, err := curve.elliptic()
	if err != nil {
		return nil, err
	}
	params := ellCurve.Params()
	p := params.P

	// y^2 = x^3 - 3x + b (mod p), the short Weierstrass form NIST curves use.
	x3 := new(big.Int).Exp(x, big.NewInt(3), p)
	threeX := new(big.Int).Mul(x, big.NewInt(3))
	y2 := new(big.Int).Sub(x3, threeX)
	y2.Add(y2, params.B)
	y2.Mod(y2, p)

	y := new(big.Int).ModSqrt(y2, p)
	if y == nil {
		return nil, dpperr.CryptoFailure("ecc: x has no square root on curve", nil)
	}
	if y.Bit(0) == 1 {
		y.Sub(p, y)
	}
	return newPoint(curve, x, y)
}
