// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/hex"

	"github.com/pkg/errors"
)

// HashSize is the size in bytes of a transaction or block hash.
const HashSize = 32

// Hash is a 32-byte double-SHA256 digest stored in wire order, which is
// byte-reversed relative to the conventional hex display. String reverses
// back into display order.
type Hash [HashSize]byte

// TxID is the hash that uniquely identifies a transaction: the double-SHA256
// of its final serialization.
type TxID Hash

// String returns the TxID in the conventional big-endian hex display order.
func (txID TxID) String() string {
	return Hash(txID).String()
}

// IsEqual returns true if target is the same as the TxID.
func (txID *TxID) IsEqual(target *TxID) bool {
	if txID == nil && target == nil {
		return true
	}
	if txID == nil || target == nil {
		return false
	}
	return *txID == *target
}

// String returns the Hash in the conventional big-endian hex display order.
func (hash Hash) String() string {
	for i := 0; i < HashSize/2; i++ {
		hash[i], hash[HashSize-1-i] = hash[HashSize-1-i], hash[i]
	}
	return hex.EncodeToString(hash[:])
}

// NewTxIDFromStr creates a TxID from a hash string in display order. The
// string must be exactly 64 hex characters.
func NewTxIDFromStr(src string) (*TxID, error) {
	hash, err := newHashFromStr(src)
	return (*TxID)(hash), err
}

func newHashFromStr(src string) (*Hash, error) {
	if len(src) != HashSize*2 {
		return nil, errors.Errorf("invalid hash length of %d, want %d",
			len(src), HashSize*2)
	}

	decoded, err := hex.DecodeString(src)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	// Reverse from display order into internal storage order.
	var hash Hash
	for i, b := range decoded {
		hash[HashSize-1-i] = b
	}
	return &hash, nil
}
