// Package ecc is the thin contract over curve, scalar, and point arithmetic
// that every other package in this module builds on. It wraps crypto/ecdsa,
// crypto/ecdh, and crypto/elliptic directly, following the standard-library
// pattern the FIDO Device Onboard kex package uses for the same purpose: no
// third-party ECC package is required for P-256/P-384 point and scalar
// arithmetic.
package ecc

import (
	"crypto"
	"crypto/ecdh"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"io"
	"math/big"

	"github.com/go-dpp/dpp/dpperr"
)

// CurveID identifies one of the two curves this module supports.
type CurveID int

// Supported curves.
const (
	P256 CurveID = iota + 1
	P384
)

// ScalarLen returns the fixed byte width of a scalar or coordinate on this
// curve: 32 for P-256, 48 for P-384.
func (c CurveID) ScalarLen() int {
	switch c {
	case P256:
		return 32
	case P384:
		return 48
	default:
		return 0
	}
}

// CoordLen is an alias for ScalarLen: coordinates and scalars share width.
func (c CurveID) CoordLen() int { return c.ScalarLen() }

// Hash returns the curve-associated hash: SHA-256 for P-256, SHA-384 for
// P-384.
func (c CurveID) Hash() crypto.Hash {
	switch c {
	case P256:
		return crypto.SHA256
	case P384:
		return crypto.SHA384
	default:
		return 0
	}
}

// String implements fmt.Stringer.
func (c CurveID) String() string {
	switch c {
	case P256:
		return "P-256"
	case P384:
		return "P-384"
	default:
		return "unknown curve"
	}
}

func (c CurveID) elliptic() (elliptic.Curve, error) {
	switch c {
	case P256:
		return elliptic.P256(), nil
	case P384:
		return elliptic.P384(), nil
	default:
		return nil, dpperr.Unsupported("ecc: curve", nil)
	}
}

func (c CurveID) ecdh() (ecdh.Curve, error) {
	switch c {
	case P256:
		return ecdh.P256(), nil
	case P384:
		return ecdh.P384(), nil
	default:
		return nil, dpperr.Unsupported("ecc: curve", nil)
	}
}

// Scalar is an integer in [1, n-1] tagged with the curve it belongs to.
// Scalars are treated as sensitive: Zeroize wipes the backing buffer.
type Scalar struct {
	curve CurveID
	d     *big.Int
}

// NewScalarRandom draws a uniformly random scalar in [1, n-1] using rnd.
func NewScalarRandom(rnd io.Reader, curve CurveID) (*Scalar, error) {
	ec, err := curve.ecdh()
	if err != nil {
		return nil, err
	}
	priv, err := ec.GenerateKey(rnd)
	if err != nil {
		return nil, dpperr.Exhausted("ecc.NewScalarRandom", err)
	}
	return ScalarFromBytes(curve, priv.Bytes())
}

// ScalarFromBytes decodes a fixed-width big-endian scalar and validates it
// lies in [1, n-1].
func ScalarFromBytes(curve CurveID, b []byte) (*Scalar, error) {
	ellCurve, err := curve.elliptic()
	if err != nil {
		return nil, err
	}
	if len(b) != curve.ScalarLen() {
		return nil, dpperr.Malformed("ecc.ScalarFromBytes", nil)
	}
	d := new(big.Int).SetBytes(b)
	n := ellCurve.Params().N
	if d.Sign() == 0 || d.Cmp(n) >= 0 {
		return nil, dpperr.CryptoFailure("ecc.ScalarFromBytes", nil)
	}
	return &Scalar{curve: curve, d: d}, nil
}

// Curve returns the scalar's curve.
func (s *Scalar) Curve() CurveID { return s.curve }

// Bytes returns the scalar as a fixed-width big-endian buffer.
func (s *Scalar) Bytes() []byte {
	out := make([]byte, s.curve.ScalarLen())
	b := s.d.Bytes()
	copy(out[len(out)-len(b):], b)
	return out
}

// Zeroize wipes the scalar's backing buffer. The scalar must not be used
// afterwards.
func (s *Scalar) Zeroize() {
	if s == nil || s.d == nil {
		return
	}
	words := s.d.Bits()
	for i := range words {
		words[i] = 0
	}
	s.d.SetInt64(0)
}

// AddMod returns (s + other) mod n, the group order. This is the explicit
// modular reduction the DPP authentication key schedule requires when
// summing a bootstrap and protocol private key (spec: naive, unreduced
// addition is incorrect).
func (s *Scalar) AddMod(other *Scalar) (*Scalar, error) {
	if s.curve != other.curve {
		return nil, dpperr.Unsupported("ecc.Scalar.AddMod: curve mismatch", nil)
	}
	ellCurve, err := s.curve.elliptic()
	if err != nil {
		return nil, err
	}
	n := ellCurve.Params().N
	sum := new(big.Int).Add(s.d, other.d)
	sum.Mod(sum, n)
	if sum.Sign() == 0 {
		return nil, dpperr.CryptoFailure("ecc.Scalar.AddMod: sum is zero", nil)
	}
	return &Scalar{curve: s.curve, d: sum}, nil
}

// Public returns the point s*G.
func (s *Scalar) Public() (*Point, error) {
	ellCurve, err := s.curve.elliptic()
	if err != nil {
		return nil, err
	}
	x, y := ellCurve.ScalarBaseMult(s.Bytes())
	return newPoint(s.curve, x, y)
}

// ECDH computes the shared secret x-coordinate between s and peer, using
// crypto/ecdh under the hood so the point-at-infinity case is rejected by
// the standard library exactly as spec requires.
func (s *Scalar) ECDH(peer *Point) ([]byte, error) {
	ec, err := s.curve.ecdh()
	if err != nil {
		return nil, err
	}
	priv, err := ec.NewPrivateKey(s.Bytes())
	if err != nil {
		return nil, dpperr.CryptoFailure("ecc.Scalar.ECDH: private key", err)
	}
	pub, err := peer.ecdhPublicKey()
	if err != nil {
		return nil, err
	}
	shared, err := priv.ECDH(pub)
	if err != nil {
		return nil, dpperr.CryptoFailure("ecc.Scalar.ECDH", err)
	}
	return shared, nil
}

// Point is an element of the curve's prime-order subgroup. The point at
// infinity is never represented by a valid *Point.
type Point struct {
	curve CurveID
	x, y  *big.Int
}

func newPoint(curve CurveID, x, y *big.Int) (*Point, error) {
	if x == nil || y == nil || (x.Sign() == 0 && y.Sign() == 0) {
		return nil, dpperr.CryptoFailure("ecc: point at infinity", nil)
	}
	ellCurve, err := curve.elliptic()
	if err != nil {
		return nil, err
	}
	if !ellCurve.IsOnCurve(x, y) {
		return nil, dpperr.CryptoFailure("ecc: point not on curve", nil)
	}
	return &Point{curve: curve, x: x, y: y}, nil
}

// NewPoint constructs a Point from affine coordinates, validating that it
// lies on the curve and is not the point at infinity.
func NewPoint(curve CurveID, x, y *big.Int) (*Point, error) {
	return newPoint(curve, new(big.Int).Set(x), new(big.Int).Set(y))
}

// Curve returns the point's curve.
func (p *Point) Curve() CurveID { return p.curve }

// X returns the point's x-coordinate as a fixed-width big-endian buffer.
func (p *Point) X() []byte {
	out := make([]byte, p.curve.CoordLen())
	b := p.x.Bytes()
	copy(out[len(out)-len(b):], b)
	return out
}

// Y returns the point's y-coordinate as a fixed-width big-endian buffer.
func (p *Point) Y() []byte {
	out := make([]byte, p.curve.CoordLen())
	b := p.y.Bytes()
	copy(out[len(out)-len(b):], b)
	return out
}

// IsYOdd reports whether the point's y-coordinate is odd, i.e. the SEC1
// compressed tag would be 0x03.
func (p *Point) IsYOdd() bool { return p.y.Bit(0) == 1 }

// Equal reports whether p and other are the same point on the same curve.
func (p *Point) Equal(other *Point) bool {
	return p.curve == other.curve && p.x.Cmp(other.x) == 0 && p.y.Cmp(other.y) == 0
}

// Add returns p + other on the curve.
func (p *Point) Add(other *Point) (*Point, error) {
	if p.curve != other.curve {
		return nil, dpperr.Unsupported("ecc.Point.Add: curve mismatch", nil)
	}
	ellCurve, err := p.curve.elliptic()
	if err != nil {
		return nil, err
	}
	x, y := ellCurve.Add(p.x, p.y, other.x, other.y)
	return newPoint(p.curve, x, y)
}

// MulScalar returns s*p.
func (p *Point) MulScalar(s *Scalar) (*Point, error) {
	if p.curve != s.curve {
		return nil, dpperr.Unsupported("ecc.Point.MulScalar: curve mismatch", nil)
	}
	ellCurve, err := p.curve.elliptic()
	if err != nil {
		return nil, err
	}
	x, y := ellCurve.ScalarMult(p.x, p.y, s.Bytes())
	return newPoint(p.curve, x, y)
}

func (p *Point) ecdhPublicKey() (*ecdh.PublicKey, error) {
	ecdsaPub := &ecdsa.PublicKey{Curve: mustElliptic(p.curve), X: p.x, Y: p.y}
	pub, err := ecdsaPub.ECDH()
	if err != nil {
		return nil, dpperr.CryptoFailure("ecc: point to ECDH key", err)
	}
	return pub, nil
}

func mustElliptic(c CurveID) elliptic.Curve {
	ec, err := c.elliptic()
	if err != nil {
		panic(err)
	}
	return ec
}

// Rand is crypto/rand.Reader, exported as a default CSPRNG for callers to
// pass to NewScalarRandom. No function in this module reads it directly;
// generation functions take their random source as a parameter.
var Rand io.Reader = rand.Reader
