// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package base58_test

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	btcutilbase58 "github.com/btcsuite/btcutil/base58"

	"github.com/cgMuro/hacking-blockchain/util/base58"
)

// TestEncode checks fixed vectors, including the all-zero 25-byte payload
// that must map every zero byte to the alphabet's leading symbol.
func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		out  string
	}{
		{"empty", []byte{}, ""},
		{"single zero byte", []byte{0x00}, "1"},
		{"25 zero bytes", make([]byte, 25), strings.Repeat("1", 25)},
		{"hello", []byte("hello world"), "StV1DL6CwTryKyV"},
		{"leading zero", []byte{0x00, 0x00, 0x28, 0x7f, 0xb4, 0xcd}, "11233QC4"},
	}

	for _, test := range tests {
		if got := base58.Encode(test.in); got != test.out {
			t.Errorf("Encode (%s): got %q, want %q", test.name, got, test.out)
		}
	}
}

// TestDecode round-trips random payloads and rejects symbols outside the
// alphabet.
func TestDecode(t *testing.T) {
	prng := rand.New(rand.NewSource(58))
	for i := 0; i < 64; i++ {
		in := make([]byte, prng.Intn(64))
		prng.Read(in)

		decoded := base58.Decode(base58.Encode(in))
		if !bytes.Equal(decoded, in) {
			t.Fatalf("round-trip failed for %x: got %x", in, decoded)
		}
	}

	for _, invalid := range []string{"0", "O", "I", "l", "ab0c"} {
		if got := base58.Decode(invalid); len(got) != 0 {
			t.Errorf("Decode(%q): got %x, want empty", invalid, got)
		}
	}
}

// TestEncodeAgainstReference cross-checks the encoder with the btcsuite
// base58 implementation over random payloads, including ones with leading
// zero bytes.
func TestEncodeAgainstReference(t *testing.T) {
	prng := rand.New(rand.NewSource(1))
	for i := 0; i < 128; i++ {
		in := make([]byte, prng.Intn(40)+1)
		prng.Read(in)
		if i%4 == 0 {
			in[0] = 0x00
		}

		got := base58.Encode(in)
		want := btcutilbase58.Encode(in)
		if got != want {
			t.Fatalf("Encode(%x): got %q, reference implementation "+
				"produced %q", in, got, want)
		}
	}
}
