// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"testing"
	"time"
)

// TestBlockHeaderSerialize round-trips a header through the wire format and
// checks the id is stable.
func TestBlockHeaderSerialize(t *testing.T) {
	var prevBlock, merkleRoot Hash
	prevBlock[0] = 0xde
	merkleRoot[0] = 0xad

	header := NewBlockHeader(1, &prevBlock, &merkleRoot, 0x1d00ffff, 42)

	var buf bytes.Buffer
	if err := header.Serialize(&buf); err != nil {
		t.Fatalf("Serialize: unexpected error: %v", err)
	}
	if buf.Len() != header.SerializeSize() {
		t.Errorf("SerializeSize: got %d, want %d", header.SerializeSize(),
			buf.Len())
	}

	var decoded BlockHeader
	if err := decoded.Deserialize(bytes.NewReader(buf.Bytes())); err != nil {
		t.Fatalf("Deserialize: unexpected error: %v", err)
	}

	if decoded.Version != header.Version ||
		decoded.PrevBlock != header.PrevBlock ||
		decoded.MerkleRoot != header.MerkleRoot ||
		!decoded.Timestamp.Equal(header.Timestamp) ||
		decoded.Bits != header.Bits ||
		decoded.Nonce != header.Nonce {
		t.Error("header did not round-trip through serialization")
	}

	if header.BlockHash() != decoded.BlockHash() {
		t.Error("round-tripped header has a different hash")
	}
}

// TestBlockHashChaining ensures distinct headers chain through distinct
// hashes.
func TestBlockHashChaining(t *testing.T) {
	var genesisPrev, merkleRoot Hash
	genesis := &BlockHeader{
		Version:    1,
		PrevBlock:  genesisPrev,
		MerkleRoot: merkleRoot,
		Timestamp:  time.Unix(0x495fab29, 0),
		Bits:       0x1d00ffff,
		Nonce:      0x7c2bac1d,
	}

	child := &BlockHeader{
		Version:    1,
		PrevBlock:  genesis.BlockHash(),
		MerkleRoot: merkleRoot,
		Timestamp:  time.Unix(0x495fab2a, 0),
		Bits:       0x1d00ffff,
		Nonce:      7,
	}

	if genesis.BlockHash() == child.BlockHash() {
		t.Error("distinct headers produced the same hash")
	}
	if child.PrevBlock != genesis.BlockHash() {
		t.Error("child does not commit to its parent's hash")
	}
}
