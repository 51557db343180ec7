package attr

import (
	"bytes"
	"encoding/hex"
	"testing"
)

// Test vectors from RFC 4493 §4.
func TestCMACRFC4493Vectors(t *testing.T) {
	key, _ := hex.DecodeString("2b7e151628aed2a6abf7158809cf4f3c")
	msg, _ := hex.DecodeString("6bc1bee22e409f96e93d7e117393172a" +
		"ae2d8a571e03ac9c9eb76fac45af8e51" +
		"30c81c46a35ce411e5fbc1191a0a52ef" +
		"f69f2445df4f9b17ad2b417be66c3710")

	cases := []struct {
		name string
		n    int
		want string
	}{
		{"Mlen=0", 0, "bb1d6929e95937287fa37d129b756746"},
		{"Mlen=16", 16, "070a16b46b4d4144f79bdd9dd04a287c"},
		{"Mlen=40", 40, "dfa66747de9ae63030ca32611497c827"},
		{"Mlen=64", 64, "51f0bebf7e3b9d92fc49741779363cfe"},
	}
	for _, c := range cases {
		got, err := cmac(key, msg[:c.n])
		if err != nil {
			t.Fatalf("%s: %v", c.name, err)
		}
		want, _ := hex.DecodeString(c.want)
		if !bytes.Equal(got, want) {
			t.Errorf("%s: cmac = %x, want %x", c.name, got, want)
		}
	}
}

func TestDblKnownAnswer(t *testing.T) {
	// dbl of a block with MSB set must XOR the reduction constant in.
	in := make([]byte, 16)
	in[0] = 0x80
	out := dbl(in)
	if out[15] != 0x87 {
		t.Fatalf("dbl did not reduce: %x", out)
	}
}
