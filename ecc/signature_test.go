// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecc

import (
	"crypto/rand"
	"math/big"
	"testing"

	refsecp256k1 "github.com/decred/dcrd/dcrec/secp256k1/v4"
	refecdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"github.com/stretchr/testify/require"
)

// TestSignAndVerify signs random messages with random keys and checks the
// verification equation, the low-s policy and tamper detection.
func TestSignAndVerify(t *testing.T) {
	for i := 0; i < 100; i++ {
		priv, err := NewPrivateKey()
		if err != nil {
			t.Fatalf("NewPrivateKey: unexpected error: %v", err)
		}

		hash := make([]byte, 32)
		if _, err := rand.Read(hash); err != nil {
			t.Fatalf("failed to generate message hash: %v", err)
		}

		sig, err := priv.Sign(hash)
		if err != nil {
			t.Fatalf("Sign: unexpected error: %v", err)
		}

		if sig.S.Cmp(secp256k1HalfN) > 0 {
			t.Fatalf("signature s = %v is not in canonical low form", sig.S)
		}

		if !sig.Verify(hash, priv.PubKey()) {
			t.Fatal("signature does not verify under its own key")
		}

		// A single flipped bit in the hash must invalidate the signature.
		hash[0] ^= 0x80
		if sig.Verify(hash, priv.PubKey()) {
			t.Fatal("signature verified a tampered hash")
		}
	}
}

// TestSignatureSerialize checks DER encoding against fixed vectors.
func TestSignatureSerialize(t *testing.T) {
	tests := []struct {
		name     string
		sig      *Signature
		expected []byte
	}{
		{
			// signature from bitcoin blockchain tx
			// 0437cd7f8525ceed2324359c2d0ba26006d92d85
			"valid 1 - r and s most significant bits set",
			&Signature{
				R: fromHex("4e45e16932b8af514961a1d3a1a25fdf3f4f7732e9d624c6c61548ab5fb8cd41"),
				S: fromHex("181522ec8eca07de4860a4acdd12909d831cc56cbbac4622082221a8768d1d09"),
			},
			[]byte{
				0x30, 0x44, 0x02, 0x20, 0x4e, 0x45, 0xe1, 0x69,
				0x32, 0xb8, 0xaf, 0x51, 0x49, 0x61, 0xa1, 0xd3,
				0xa1, 0xa2, 0x5f, 0xdf, 0x3f, 0x4f, 0x77, 0x32,
				0xe9, 0xd6, 0x24, 0xc6, 0xc6, 0x15, 0x48, 0xab,
				0x5f, 0xb8, 0xcd, 0x41, 0x02, 0x20, 0x18, 0x15,
				0x22, 0xec, 0x8e, 0xca, 0x07, 0xde, 0x48, 0x60,
				0xa4, 0xac, 0xdd, 0x12, 0x90, 0x9d, 0x83, 0x1c,
				0xc5, 0x6c, 0xbb, 0xac, 0x46, 0x22, 0x08, 0x22,
				0x21, 0xa8, 0x76, 0x8d, 0x1d, 0x09,
			},
		},
		{
			"valid 2 - r leading zero stripped",
			&Signature{
				R: big.NewInt(0x7f),
				S: big.NewInt(0x01),
			},
			[]byte{
				0x30, 0x06, 0x02, 0x01, 0x7f, 0x02, 0x01, 0x01,
			},
		},
		{
			"valid 3 - high bit set gets 0x00 padding",
			&Signature{
				R: big.NewInt(0x80),
				S: big.NewInt(0x81),
			},
			[]byte{
				0x30, 0x08, 0x02, 0x02, 0x00, 0x80, 0x02, 0x02,
				0x00, 0x81,
			},
		},
		{
			"zero signature",
			&Signature{
				R: big.NewInt(0),
				S: big.NewInt(0),
			},
			[]byte{0x30, 0x06, 0x02, 0x01, 0x00, 0x02, 0x01, 0x00},
		},
	}

	for i, test := range tests {
		result := test.sig.Serialize()
		if len(result) != len(test.expected) {
			t.Errorf("Serialize #%d (%s) unexpected length - got %d, "+
				"want %d", i, test.name, len(result), len(test.expected))
			continue
		}
		for j := range result {
			if result[j] != test.expected[j] {
				t.Errorf("Serialize #%d (%s) unexpected byte at offset "+
					"%d - got 0x%02x, want 0x%02x", i, test.name, j,
					result[j], test.expected[j])
				break
			}
		}
	}
}

// TestParseDERSignature ensures Serialize output parses back to the same
// scalars and that malformed encodings are rejected.
func TestParseDERSignature(t *testing.T) {
	priv, err := NewPrivateKey()
	if err != nil {
		t.Fatalf("NewPrivateKey: unexpected error: %v", err)
	}
	hash := make([]byte, 32)
	if _, err := rand.Read(hash); err != nil {
		t.Fatalf("failed to generate message hash: %v", err)
	}
	sig, err := priv.Sign(hash)
	if err != nil {
		t.Fatalf("Sign: unexpected error: %v", err)
	}

	parsed, err := ParseDERSignature(sig.Serialize())
	if err != nil {
		t.Fatalf("ParseDERSignature: unexpected error: %v", err)
	}
	if !parsed.IsEqual(sig) {
		t.Error("signature did not round-trip through DER")
	}

	tests := []struct {
		name string
		sig  []byte
	}{
		{"empty", nil},
		{"too short", []byte{0x30, 0x02, 0x02, 0x00}},
		{"no header magic", []byte{0x31, 0x06, 0x02, 0x01, 0x01, 0x02, 0x01, 0x01}},
		{"no 1st int marker", []byte{0x30, 0x06, 0x01, 0x01, 0x01, 0x02, 0x01, 0x01}},
		{"negative R", []byte{0x30, 0x06, 0x02, 0x01, 0x80, 0x02, 0x01, 0x01}},
		{"excessively padded R", []byte{0x30, 0x07, 0x02, 0x02, 0x00, 0x01, 0x02, 0x01, 0x01}},
	}
	for _, test := range tests {
		if _, err := ParseDERSignature(test.sig); err == nil {
			t.Errorf("ParseDERSignature (%s): expected an error", test.name)
		}
	}
}

// TestSignatureAgainstReference verifies signatures produced here with the
// decred secp256k1 implementation, and vice versa.
func TestSignatureAgainstReference(t *testing.T) {
	for i := 0; i < 16; i++ {
		priv, err := NewPrivateKey()
		require.NoError(t, err)

		hash := make([]byte, 32)
		_, err = rand.Read(hash)
		require.NoError(t, err)

		// Our signature must verify under the reference implementation.
		sig, err := priv.Sign(hash)
		require.NoError(t, err)

		refPub, err := refsecp256k1.ParsePubKey(priv.PubKey().SerializeCompressed())
		require.NoError(t, err)
		refSig, err := refecdsa.ParseDERSignature(sig.Serialize())
		require.NoError(t, err)
		require.True(t, refSig.Verify(hash, refPub),
			"reference implementation rejected our signature")

		// And a reference signature must verify here.
		refPriv := refsecp256k1.PrivKeyFromBytes(priv.Serialize())
		theirSig := refecdsa.Sign(refPriv, hash)
		ourCopy, err := ParseDERSignature(theirSig.Serialize())
		require.NoError(t, err)
		require.True(t, ourCopy.Verify(hash, priv.PubKey()),
			"we rejected a reference implementation signature")
	}
}
