// Package auth implements the DPP Authentication protocol's key schedule:
// the two ECDH intermediate keys k1/k2, the shared key ke, the L point used
// in mutual authentication, and the I-auth/R-auth transcript MACs. All of
// this is grounded on dpp_derive_k1/k2/ke/li/lr/i_auth/r_auth in the
// reference implementation's dpp-util.c.
package auth

import (
	"github.com/go-dpp/dpp/dppcrypto/ecc"
	"github.com/go-dpp/dpp/dppcrypto/kdf"
	"github.com/go-dpp/dpp/dpperr"
)

// DeriveK1 computes k1 = HKDF(salt=nil, info="first intermediate key",
// ikm=M.x, len=key_len), where M.x = ECDH(responderBootPrivate, initiatorProtoPublic).
// It returns M.x alongside k1, since ke's derivation needs it again.
func DeriveK1(initiatorProtoPublic *ecc.Point, responderBootPrivate *ecc.Scalar) (mx, k1 []byte, err error) {
	mx, err = responderBootPrivate.ECDH(initiatorProtoPublic)
	if err != nil {
		return nil, nil, dpperr.CryptoFailure("auth.DeriveK1: ecdh", err)
	}
	hash, err := kdf.HashFor(len(mx))
	if err != nil {
		return nil, nil, err
	}
	k1, err = kdf.HKDF(hash, nil, []byte("first intermediate key"), mx, len(mx))
	if err != nil {
		return nil, nil, err
	}
	return mx, k1, nil
}

// DeriveK2 computes k2 = HKDF(salt=nil, info="second intermediate key",
// ikm=N.x, len=key_len), where N.x = ECDH(responderProtoPrivate, initiatorProtoPublic).
// It returns N.x alongside k2.
func DeriveK2(initiatorProtoPublic *ecc.Point, responderProtoPrivate *ecc.Scalar) (nx, k2 []byte, err error) {
	nx, err = responderProtoPrivate.ECDH(initiatorProtoPublic)
	if err != nil {
		return nil, nil, dpperr.CryptoFailure("auth.DeriveK2: ecdh", err)
	}
	hash, err := kdf.HashFor(len(nx))
	if err != nil {
		return nil, nil, err
	}
	k2, err = kdf.HKDF(hash, nil, []byte("second intermediate key"), nx, len(nx))
	if err != nil {
		return nil, nil, err
	}
	return nx, k2, nil
}

// DeriveKe computes bk = HKDF-Extract(I-nonce || R-nonce, M.x || N.x [ || L.x]),
// ke = HKDF-Expand(bk, "DPP Key", key_len). l is nil for the responder-only
// (non-mutual) authentication variant.
func DeriveKe(iNonce, rNonce, mx, nx []byte, l *ecc.Point) ([]byte, error) {
	keyLen := len(mx)

	hash, err := kdf.HashFor(keyLen)
	if err != nil {
		return nil, err
	}

	salt := append(append([]byte{}, iNonce...), rNonce...)
	ikm := append(append([]byte{}, mx...), nx...)
	if l != nil {
		ikm = append(ikm, l.X()...)
	}

	return kdf.HKDF(hash, salt, []byte("DPP Key"), ikm, keyLen)
}

// DeriveLI computes L = bI * (BR + PR), the initiator-side L point used
// when confirming mutual authentication.
func DeriveLI(responderBootPublic, responderProtoPublic *ecc.Point, initiatorBootPrivate *ecc.Scalar) (*ecc.Point, error) {
	sum, err := responderBootPublic.Add(responderProtoPublic)
	if err != nil {
		return nil, dpperr.CryptoFailure("auth.DeriveLI: add", err)
	}
	l, err := sum.MulScalar(initiatorBootPrivate)
	if err != nil {
		return nil, dpperr.CryptoFailure("auth.DeriveLI: mul", err)
	}
	return l, nil
}

// DeriveLR computes L = ((bR + pR) mod q) * BI, the responder-side L point.
func DeriveLR(responderBootPrivate, responderProtoPrivate *ecc.Scalar, initiatorBootPublic *ecc.Point) (*ecc.Point, error) {
	sum, err := responderBootPrivate.AddMod(responderProtoPrivate)
	if err != nil {
		return nil, dpperr.CryptoFailure("auth.DeriveLR: add", err)
	}
	l, err := initiatorBootPublic.MulScalar(sum)
	if err != nil {
		return nil, dpperr.CryptoFailure("auth.DeriveLR: mul", err)
	}
	return l, nil
}

// DeriveRAuth computes
// R-auth = H(I-nonce | R-nonce | PI.x | PR.x | [ BI.x | ] BR.x | 0).
// initiatorBootPublic is nil for the responder-only variant, which omits
// BI.x from the transcript.
func DeriveRAuth(iNonce, rNonce []byte, initiatorProtoPublic, responderProtoPublic, initiatorBootPublic, responderBootPublic *ecc.Point) ([]byte, error) {
	pix := initiatorProtoPublic.X()
	prx := responderProtoPublic.X()
	brx := responderBootPublic.X()

	hash, err := kdf.HashFor(len(pix))
	if err != nil {
		return nil, err
	}

	parts := [][]byte{iNonce, rNonce, pix, prx}
	if initiatorBootPublic != nil {
		parts = append(parts, initiatorBootPublic.X())
	}
	parts = append(parts, brx, []byte{0x00})
	return kdf.H(hash, parts...), nil
}

// DeriveIAuth computes
// I-auth = H(R-nonce | I-nonce | PR.x | PI.x | BR.x | [ BI.x | ] 1).
func DeriveIAuth(rNonce, iNonce []byte, responderProtoPublic, initiatorProtoPublic, responderBootPublic, initiatorBootPublic *ecc.Point) ([]byte, error) {
	prx := responderProtoPublic.X()
	pix := initiatorProtoPublic.X()
	brx := responderBootPublic.X()

	hash, err := kdf.HashFor(len(prx))
	if err != nil {
		return nil, err
	}

	parts := [][]byte{rNonce, iNonce, prx, pix, brx}
	if initiatorBootPublic != nil {
		parts = append(parts, initiatorBootPublic.X())
	}
	parts = append(parts, []byte{0x01})
	return kdf.H(hash, parts...), nil
}
