// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"io"
	"time"

	"github.com/cgMuro/hacking-blockchain/util"
)

// blockHeaderLen is the number of bytes a serialized block header occupies:
// Version 4 bytes + PrevBlock and MerkleRoot hashes + Timestamp 4 bytes +
// Bits 4 bytes + Nonce 4 bytes.
const blockHeaderLen = 16 + (HashSize * 2)

// BlockHeader defines information about a block. Each header commits to the
// hash of its single parent, chaining blocks together.
type BlockHeader struct {
	// Version of the block. This is not the same as the protocol version.
	Version uint32

	// Hash of the previous block header in the chain.
	PrevBlock Hash

	// Merkle tree reference to hash of all transactions for the block.
	MerkleRoot Hash

	// Time the block was created. This is, unfortunately, encoded as a
	// uint32 on the wire and therefore is limited to 2106.
	Timestamp time.Time

	// Difficulty target for the block.
	Bits uint32

	// Nonce used to generate the block.
	Nonce uint32
}

// NewBlockHeader returns a new BlockHeader using the provided version,
// previous block hash, merkle root hash, difficulty bits, and nonce, with
// the timestamp set to the current time truncated to one second precision.
func NewBlockHeader(version uint32, prevBlock, merkleRoot *Hash, bits, nonce uint32) *BlockHeader {
	return &BlockHeader{
		Version:    version,
		PrevBlock:  *prevBlock,
		MerkleRoot: *merkleRoot,
		Timestamp:  time.Unix(time.Now().Unix(), 0),
		Bits:       bits,
		Nonce:      nonce,
	}
}

// BlockHash computes the block identifier hash for the given block header,
// the double-SHA256 of its serialization.
func (h *BlockHeader) BlockHash() Hash {
	buf := bytes.NewBuffer(make([]byte, 0, blockHeaderLen))
	// Ignore the error returns since writing to a bytes.Buffer cannot
	// fail.
	_ = h.Serialize(buf)

	var hash Hash
	copy(hash[:], util.DoubleHashB(buf.Bytes()))
	return hash
}

// Serialize encodes the block header to w in wire format.
func (h *BlockHeader) Serialize(w io.Writer) error {
	err := binarySerializer.PutUint32(w, h.Version)
	if err != nil {
		return err
	}
	_, err = w.Write(h.PrevBlock[:])
	if err != nil {
		return err
	}
	_, err = w.Write(h.MerkleRoot[:])
	if err != nil {
		return err
	}
	err = binarySerializer.PutUint32(w, uint32(h.Timestamp.Unix()))
	if err != nil {
		return err
	}
	err = binarySerializer.PutUint32(w, h.Bits)
	if err != nil {
		return err
	}
	return binarySerializer.PutUint32(w, h.Nonce)
}

// Deserialize decodes a block header from r in wire format into the
// receiver.
func (h *BlockHeader) Deserialize(r io.Reader) error {
	version, err := binarySerializer.Uint32(r)
	if err != nil {
		return err
	}
	h.Version = version

	_, err = io.ReadFull(r, h.PrevBlock[:])
	if err != nil {
		return err
	}
	_, err = io.ReadFull(r, h.MerkleRoot[:])
	if err != nil {
		return err
	}

	timestamp, err := binarySerializer.Uint32(r)
	if err != nil {
		return err
	}
	h.Timestamp = time.Unix(int64(timestamp), 0)

	h.Bits, err = binarySerializer.Uint32(r)
	if err != nil {
		return err
	}
	h.Nonce, err = binarySerializer.Uint32(r)
	return err
}

// SerializeSize returns the number of bytes it would take to serialize the
// block header.
func (h *BlockHeader) SerializeSize() int {
	return blockHeaderLen
}
