package attr

import (
	"bytes"
	"encoding/hex"
	"testing"
)

// Test vector from RFC 5297 Appendix A.1. The RFC's own canonical layout is
// SIV || ciphertext; DPP's WrappedData attribute instead lays out
// ciphertext || SIV, so the expected bytes below are the RFC vector's SIV
// and ciphertext halves swapped, not the RFC's own concatenation.
func TestWrapRFC5297Vector(t *testing.T) {
	key, _ := hex.DecodeString("fffefdfcfbfaf9f8f7f6f5f4f3f2f1f0" +
		"f0f1f2f3f4f5f6f7f8f9fafbfcfdfeff")
	ad, _ := hex.DecodeString("101112131415161718191a1b1c1d1e1f2021222324252627")
	plaintext, _ := hex.DecodeString("112233445566778899aabbccddee")

	want, _ := hex.DecodeString("340c02b9690c4dc04daef7f6afe5c" +
		"85632d07c6e8f37f950acd320a2ecc9")

	got, err := Wrap(key, plaintext, [][]byte{ad})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("Wrap = %x, want %x", got, want)
	}

	recovered, err := Unwrap(key, got, [][]byte{ad})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(recovered, plaintext) {
		t.Fatalf("Unwrap = %x, want %x", recovered, plaintext)
	}
}

// TestWrapUsesCiphertextThenSIVOrder pins the DPP wire-format order
// explicitly: the first len(plaintext) bytes of Wrap's output must be the
// ciphertext, and the trailing 16 bytes the synthetic IV, per the
// WrappedData attribute's wire format.
func TestWrapUsesCiphertextThenSIVOrder(t *testing.T) {
	key := bytes.Repeat([]byte{0x22}, 32)
	plaintext := []byte("some attribute payload bytes")
	ad := [][]byte{[]byte("ad0"), []byte("ad1")}

	wrapped, err := Wrap(key, plaintext, ad)
	if err != nil {
		t.Fatal(err)
	}
	if len(wrapped) != len(plaintext)+blockSize {
		t.Fatalf("len(wrapped) = %d, want %d", len(wrapped), len(plaintext)+blockSize)
	}

	ciphertext := wrapped[:len(plaintext)]
	if bytes.Equal(ciphertext, plaintext) {
		t.Fatal("leading bytes look unencrypted; expected ciphertext first")
	}

	recovered, err := Unwrap(key, wrapped, ad)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(recovered, plaintext) {
		t.Fatalf("Unwrap = %q, want %q", recovered, plaintext)
	}
}

func TestUnwrapRejectsTamperedCiphertext(t *testing.T) {
	key, _ := hex.DecodeString("fffefdfcfbfaf9f8f7f6f5f4f3f2f1f0" +
		"f0f1f2f3f4f5f6f7f8f9fafbfcfdfeff")
	ad, _ := hex.DecodeString("101112131415161718191a1b1c1d1e1f2021222324252627")
	plaintext, _ := hex.DecodeString("112233445566778899aabbccddee")

	wrapped, err := Wrap(key, plaintext, [][]byte{ad})
	if err != nil {
		t.Fatal(err)
	}
	wrapped[len(wrapped)-1] ^= 0x01
	if _, err := Unwrap(key, wrapped, [][]byte{ad}); err == nil {
		t.Fatal("expected tampered ciphertext to fail authentication")
	}
}

func TestUnwrapRejectsWrongAD(t *testing.T) {
	key, _ := hex.DecodeString("fffefdfcfbfaf9f8f7f6f5f4f3f2f1f0" +
		"f0f1f2f3f4f5f6f7f8f9fafbfcfdfeff")
	ad, _ := hex.DecodeString("101112131415161718191a1b1c1d1e1f2021222324252627")
	plaintext, _ := hex.DecodeString("112233445566778899aabbccddee")

	wrapped, err := Wrap(key, plaintext, [][]byte{ad})
	if err != nil {
		t.Fatal(err)
	}
	wrongAD := append([]byte{}, ad...)
	wrongAD[0] ^= 0x01
	if _, err := Unwrap(key, wrapped, [][]byte{wrongAD}); err == nil {
		t.Fatal("expected mismatched associated data to fail authentication")
	}
}

func TestWrapAttrsRoundTrip(t *testing.T) {
	key := bytes.Repeat([]byte{0x11}, 32)
	ad0 := []byte("ad0-context")
	attrs := []TLV{
		{Type: TypeInitiatorNonce, Value: []byte("nonce-bytes-here")},
		{Type: TypeInitiatorCapabilities, Value: []byte{0x01}},
	}
	wrapped, err := WrapAttrs(key, ad0, nil, attrs)
	if err != nil {
		t.Fatal(err)
	}
	if wrapped.Type != TypeWrappedData {
		t.Fatalf("wrapped.Type = %v, want TypeWrappedData", wrapped.Type)
	}

	got, err := UnwrapAttrs(key, ad0, nil, wrapped.Value)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(attrs) {
		t.Fatalf("len(got) = %d, want %d", len(got), len(attrs))
	}
	for i := range attrs {
		if got[i].Type != attrs[i].Type || !bytes.Equal(got[i].Value, attrs[i].Value) {
			t.Fatalf("attr %d mismatch: got %+v, want %+v", i, got[i], attrs[i])
		}
	}
}
