// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"crypto/sha256"

	"golang.org/x/crypto/ripemd160"
)

// Hash160 calculates the hash ripemd160(sha256(b)), the 20-byte digest used
// to shorten a public key for address derivation.
func Hash160(buf []byte) []byte {
	sum := sha256.Sum256(buf)
	hasher := ripemd160.New()
	hasher.Write(sum[:])
	return hasher.Sum(nil)
}

// DoubleHashB calculates the hash sha256(sha256(b)) and returns the
// resulting bytes.
func DoubleHashB(buf []byte) []byte {
	first := sha256.Sum256(buf)
	second := sha256.Sum256(first[:])
	return second[:]
}
