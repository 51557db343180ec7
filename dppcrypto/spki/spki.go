// Package spki encodes and decodes the SubjectPublicKeyInfo structure that
// carries a DPP bootstrapping public key: an ecPublicKey algorithm
// identifier plus a compressed EC point. crypto/x509's PKIX marshaling
// always emits the uncompressed point form, so this package hand-builds the
// DER with encoding/asn1's raw-value primitives, the same "write the bytes
// by hand because the standard marshaler doesn't cover this shape" approach
// FIDO Device Onboard's cose package takes for its own COSE key encoding.
package spki

import (
	"bytes"
	"encoding/asn1"

	"github.com/go-dpp/dpp/dppcrypto/ecc"
	"github.com/go-dpp/dpp/dpperr"
)

// ecPublicKey (1.2.840.10045.2.1)
var oidECPublicKey = asn1.ObjectIdentifier{1, 2, 840, 10045, 2, 1}

// prime256v1 (1.2.840.10045.3.1.7)
var oidP256 = asn1.ObjectIdentifier{1, 2, 840, 10045, 3, 1, 7}

// secp384r1 (1.3.132.0.34)
var oidP384 = asn1.ObjectIdentifier{1, 3, 132, 0, 34}

type algorithmIdentifier struct {
	Algorithm  asn1.ObjectIdentifier
	Parameters asn1.ObjectIdentifier
}

type subjectPublicKeyInfo struct {
	Algorithm algorithmIdentifier
	PublicKey asn1.BitString
}

func curveOID(curve ecc.CurveID) (asn1.ObjectIdentifier, error) {
	switch curve {
	case ecc.P256:
		return oidP256, nil
	case ecc.P384:
		return oidP384, nil
	default:
		return nil, dpperr.Unsupported("spki: curve", nil)
	}
}

func curveFromOID(oid asn1.ObjectIdentifier) (ecc.CurveID, error) {
	switch {
	case oid.Equal(oidP256):
		return ecc.P256, nil
	case oid.Equal(oidP384):
		return ecc.P384, nil
	default:
		return 0, dpperr.Unsupported("spki: unknown curve OID", nil)
	}
}

// Encode emits the SPKI DER encoding of p, using the compressed point form
// whose parity byte matches p's y-coordinate. A P-256 key produces exactly
// 59 bytes; a P-384 key exactly 76 bytes.
func Encode(p *ecc.Point) ([]byte, error) {
	oid, err := curveOID(p.Curve())
	if err != nil {
		return nil, err
	}
	compressed := p.EncodeCompressed()
	spki := subjectPublicKeyInfo{
		Algorithm: algorithmIdentifier{
			Algorithm:  oidECPublicKey,
			Parameters: oid,
		},
		PublicKey: asn1.BitString{
			Bytes:     compressed,
			BitLength: len(compressed) * 8,
		},
	}
	der, err := asn1.Marshal(spki)
	if err != nil {
		return nil, dpperr.Malformed("spki.Encode", err)
	}
	return der, nil
}

// Decode parses an SPKI DER encoding, verifying the outer/inner SEQUENCE
// shape, the two OIDs, a zero BIT STRING unused-bits count, that the point
// lies on the named curve, and that der is exactly the canonical encoding
// of that point (two elements at each level, nothing extra).
func Decode(der []byte) (*ecc.Point, error) {
	var spki subjectPublicKeyInfo
	rest, err := asn1.Unmarshal(der, &spki)
	if err != nil {
		return nil, dpperr.Malformed("spki.Decode", err)
	}
	if len(rest) != 0 {
		return nil, dpperr.Malformed("spki.Decode: trailing bytes", nil)
	}
	if !spki.Algorithm.Algorithm.Equal(oidECPublicKey) {
		return nil, dpperr.Malformed("spki.Decode: not ecPublicKey", nil)
	}
	curve, err := curveFromOID(spki.Algorithm.Parameters)
	if err != nil {
		return nil, err
	}
	if spki.PublicKey.BitLength%8 != 0 {
		return nil, dpperr.Malformed("spki.Decode: unused bits nonzero", nil)
	}
	data := spki.PublicKey.RightAlign()
	if len(data) != curve.CoordLen()+1 {
		return nil, dpperr.Malformed("spki.Decode: bad point length", nil)
	}
	point, err := ecc.PointFromBytes(curve, ecc.EncodingCompressed, data)
	if err != nil {
		return nil, err
	}
	canonical, err := Encode(point)
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(canonical, der) {
		return nil, dpperr.Malformed("spki.Decode: extra or non-canonical elements", nil)
	}
	return point, nil
}
