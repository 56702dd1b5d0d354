// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"bytes"
	"encoding/hex"
	"testing"
)

// TestPayToPubKeyHashScript checks the standard locking template byte for
// byte.
func TestPayToPubKeyHashScript(t *testing.T) {
	pubKeyHash, err := hex.DecodeString("751e76e8199196d454941c45d1b3a323f1433bd6")
	if err != nil {
		t.Fatal(err)
	}

	script, err := PayToPubKeyHashScript(pubKeyHash)
	if err != nil {
		t.Fatalf("PayToPubKeyHashScript: unexpected error: %v", err)
	}

	expected := append(append([]byte{OpDup, OpHash160, 0x14}, pubKeyHash...),
		OpEqualVerify, OpCheckSig)
	if !bytes.Equal(script, expected) {
		t.Fatalf("wrong script - got %x, want %x", script, expected)
	}

	if !IsPayToPubKeyHash(script) {
		t.Error("IsPayToPubKeyHash rejected a standard script")
	}

	extracted, err := ExtractPubKeyHash(script)
	if err != nil {
		t.Fatalf("ExtractPubKeyHash: unexpected error: %v", err)
	}
	if !bytes.Equal(extracted, pubKeyHash) {
		t.Errorf("ExtractPubKeyHash: got %x, want %x", extracted, pubKeyHash)
	}

	// Hashes that are not 20 bytes are rejected.
	if _, err := PayToPubKeyHashScript(pubKeyHash[:19]); err == nil {
		t.Error("expected an error for a short pubkey hash")
	}
}

// TestIsPayToPubKeyHash exercises rejection of near-miss scripts.
func TestIsPayToPubKeyHash(t *testing.T) {
	pubKeyHash := make([]byte, 20)
	script, err := PayToPubKeyHashScript(pubKeyHash)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		script []byte
		want   bool
	}{
		{"standard", script, true},
		{"empty", nil, false},
		{"truncated", script[:24], false},
		{"wrong first opcode", append([]byte{Op0}, script[1:]...), false},
	}

	for _, test := range tests {
		if got := IsPayToPubKeyHash(test.script); got != test.want {
			t.Errorf("IsPayToPubKeyHash (%s): got %v, want %v",
				test.name, got, test.want)
		}
	}
}
