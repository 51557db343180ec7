package kdf

import (
	"bytes"
	"crypto"
	"testing"
)

func TestHashForAndNonceLenFor(t *testing.T) {
	cases := []struct {
		keyLen    int
		wantHash  crypto.Hash
		wantNonce int
	}{
		{32, crypto.SHA256, 16},
		{48, crypto.SHA384, 24},
		{64, crypto.SHA512, 32},
	}
	for _, c := range cases {
		h, err := HashFor(c.keyLen)
		if err != nil || h != c.wantHash {
			t.Errorf("HashFor(%d) = %v, %v; want %v", c.keyLen, h, err, c.wantHash)
		}
		n, err := NonceLenFor(c.keyLen)
		if err != nil || n != c.wantNonce {
			t.Errorf("NonceLenFor(%d) = %v, %v; want %v", c.keyLen, n, err, c.wantNonce)
		}
	}

	if _, err := HashFor(20); err == nil {
		t.Error("expected HashFor(20) to fail")
	}
}

func TestHKDFNilSaltIsZeroBuffer(t *testing.T) {
	ikm := []byte("input key material")
	info := []byte("context")

	explicit, err := HKDF(crypto.SHA256, make([]byte, crypto.SHA256.Size()), info, ikm, 32)
	if err != nil {
		t.Fatal(err)
	}
	implicit, err := HKDF(crypto.SHA256, nil, info, ikm, 32)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(explicit, implicit) {
		t.Fatal("nil salt should behave as a hash-sized zero buffer")
	}
}

func TestPrfPlusDeterministic(t *testing.T) {
	prk := []byte("pairwise random key of some length")
	a, err := PrfPlus(crypto.SHA256, prk, 32, []byte("part1"), []byte("part2"))
	if err != nil {
		t.Fatal(err)
	}
	b, err := PrfPlus(crypto.SHA256, prk, 32, []byte("part1"), []byte("part2"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Fatal("prf+ should be deterministic for identical inputs")
	}

	c, err := PrfPlus(crypto.SHA256, prk, 32, []byte("part1"), []byte("partX"))
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(a, c) {
		t.Fatal("prf+ should differ when input parts differ")
	}
}

func TestPrfPlusLongOutputSpansMultipleIterations(t *testing.T) {
	prk := []byte("key")
	out, err := PrfPlus(crypto.SHA256, prk, 100, []byte("data"))
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 100 {
		t.Fatalf("len(out) = %d, want 100", len(out))
	}
}
