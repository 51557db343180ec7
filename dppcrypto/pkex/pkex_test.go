package pkex

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"testing"

	"github.com/go-dpp/dpp/dppcrypto/ecc"
	"github.com/go-dpp/dpp/internal/dpptest"
)

// compliantPoint decodes a 32-byte x-only hex string into a P-256 point,
// recovering y by the even-root convention the published PKEX vectors use.
func compliantPoint(t *testing.T, s string) *ecc.Point {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatal(err)
	}
	p, err := ecc.PointFromBytes(ecc.P256, ecc.EncodingCompliant, b)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func hexBytes(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestBasePointsAreOnCurve(t *testing.T) {
	pi, pr, err := BasePoints(ecc.P256)
	if err != nil {
		t.Fatal(err)
	}
	if pi.Equal(pr) {
		t.Fatal("Pi and Pr must be distinct base points")
	}
}

func TestBasePointsRejectsP384(t *testing.T) {
	if _, _, err := BasePoints(ecc.P384); err == nil {
		t.Fatal("expected P-384 PKEX base points to be unsupported")
	}
}

func TestDeriveQIAndQRDifferForSameCode(t *testing.T) {
	pi, pr, err := BasePoints(ecc.P256)
	if err != nil {
		t.Fatal(err)
	}
	macI := dpptest.PKEXMACInitiator[:]
	macR := dpptest.PKEXMACResponder[:]
	code := dpptest.PKEXCode

	qi, err := DeriveQI(pi, macI, dpptest.PKEXIdentifier, code)
	if err != nil {
		t.Fatal(err)
	}
	qr, err := DeriveQR(pr, macR, dpptest.PKEXIdentifier, code)
	if err != nil {
		t.Fatal(err)
	}
	if qi.Equal(qr) {
		t.Fatal("Qi and Qr should differ: different base points and MAC")
	}
}

func TestDeriveQIDeterministic(t *testing.T) {
	pi, _, err := BasePoints(ecc.P256)
	if err != nil {
		t.Fatal(err)
	}
	mac := []byte{0xac, 0x64, 0x91, 0xf4, 0x52, 0x07}
	a, err := DeriveQI(pi, mac, "joes_key", "thisisreallysecret")
	if err != nil {
		t.Fatal(err)
	}
	b, err := DeriveQI(pi, mac, "joes_key", "thisisreallysecret")
	if err != nil {
		t.Fatal(err)
	}
	if !a.Equal(b) {
		t.Fatal("DeriveQI should be deterministic for identical inputs")
	}

	c, err := DeriveQI(pi, mac, "joes_key", "adifferentcode")
	if err != nil {
		t.Fatal(err)
	}
	if a.Equal(c) {
		t.Fatal("DeriveQI should differ when the code differs")
	}
}

func randPoint(t *testing.T, curve ecc.CurveID) *ecc.Point {
	t.Helper()
	s, err := ecc.NewScalarRandom(rand.Reader, curve)
	if err != nil {
		t.Fatal(err)
	}
	p, err := s.Public()
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestDeriveZDeterministicAndSensitiveToInputs(t *testing.T) {
	curve := ecc.P256
	k := randPoint(t, curve)
	m := randPoint(t, curve)
	n := randPoint(t, curve)
	macI := [6]byte{0xac, 0x64, 0x91, 0xf4, 0x52, 0x07}
	macR := [6]byte{0x6e, 0x5e, 0xce, 0x6e, 0xf3, 0xdd}

	a, err := DeriveZ(macI, macR, k, m, n, "thisisreallysecret")
	if err != nil {
		t.Fatal(err)
	}
	b, err := DeriveZ(macI, macR, k, m, n, "thisisreallysecret")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Fatal("DeriveZ should be deterministic for identical inputs")
	}
	if len(a) != curve.ScalarLen() {
		t.Fatalf("len(z) = %d, want %d", len(a), curve.ScalarLen())
	}

	c, err := DeriveZ(macI, macR, k, m, n, "adifferentcode")
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(a, c) {
		t.Fatal("DeriveZ should differ when the code differs")
	}
}

func TestDeriveUAndVMACInclusionIsExplicit(t *testing.T) {
	curve := ecc.P256
	j := randPoint(t, curve)
	l := randPoint(t, curve)
	a := randPoint(t, curve)
	b := randPoint(t, curve)
	x := randPoint(t, curve)
	y := randPoint(t, curve)
	mac := []byte{0xac, 0x64, 0x91, 0xf4, 0x52, 0x07}

	withMAC := DeriveU(j, mac, a, y, x, true)
	withoutMAC := DeriveU(j, mac, a, y, x, false)
	if bytes.Equal(withMAC, withoutMAC) {
		t.Fatal("DeriveU must respect the explicit includeMAC flag")
	}

	vWithMAC := DeriveV(l, mac, b, x, y, true)
	vWithoutMAC := DeriveV(l, mac, b, x, y, false)
	if bytes.Equal(vWithMAC, vWithoutMAC) {
		t.Fatal("DeriveV must respect the explicit includeMAC flag")
	}
}

// TestPKEXVectorAppendixD reproduces the published Appendix D PKEX test
// vector for NIST P-256 byte for byte: Qi.x, Qr.x, z, u, and v all against
// their literal expected outputs.
func TestPKEXVectorAppendixD(t *testing.T) {
	v := dpptest.PKEXVector

	pi, pr, err := BasePoints(ecc.P256)
	if err != nil {
		t.Fatal(err)
	}

	qi, err := DeriveQI(pi, dpptest.PKEXMACInitiator[:], dpptest.PKEXIdentifier, dpptest.PKEXCode)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(qi.X(), hexBytes(t, v.QIx)) {
		t.Fatalf("Qi.x = %x, want %s", qi.X(), v.QIx)
	}

	qr, err := DeriveQR(pr, dpptest.PKEXMACResponder[:], dpptest.PKEXIdentifier, dpptest.PKEXCode)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(qr.X(), hexBytes(t, v.QRx)) {
		t.Fatalf("Qr.x = %x, want %s", qr.X(), v.QRx)
	}

	n := compliantPoint(t, v.Nx)
	m := compliantPoint(t, v.Mx)
	k := compliantPoint(t, v.Kx)

	z, err := DeriveZ(dpptest.PKEXMACInitiator, dpptest.PKEXMACResponder, k, m, n, dpptest.PKEXCode)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(z, hexBytes(t, v.Z)) {
		t.Fatalf("z = %x, want %s", z, v.Z)
	}

	j := compliantPoint(t, v.Jx)
	a := compliantPoint(t, v.Ax)
	y := compliantPoint(t, v.Yx)
	x := compliantPoint(t, v.Xx)

	u := DeriveU(j, dpptest.PKEXMACInitiator[:], a, y, x, true)
	if !bytes.Equal(u, hexBytes(t, v.U)) {
		t.Fatalf("u = %x, want %s", u, v.U)
	}

	b := compliantPoint(t, v.Bx)
	l := compliantPoint(t, v.Lx)

	vMac := DeriveV(l, dpptest.PKEXMACResponder[:], b, x, y, true)
	if !bytes.Equal(vMac, hexBytes(t, v.V)) {
		t.Fatalf("v = %x, want %s", vMac, v.V)
	}
}
