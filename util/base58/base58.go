// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package base58 provides base-58 encoding and decoding, the address text
// format of the ledger. The alphabet excludes the characters 0, O, I and l,
// which are visually ambiguous in print.
package base58

import (
	"math/big"
)

// ChecksumSize is the number of double-SHA256 bytes appended to a payload
// before base-58 encoding it into a Base58Check string.
const ChecksumSize = 4

const alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

var (
	bigRadix = big.NewInt(58)
	bigZero  = big.NewInt(0)
)

// Encode encodes the passed bytes as a base-58 string. The input is treated
// as one big-endian integer and repeatedly divided by 58; since leading zero
// bytes carry no magnitude, each one is restored as a leading '1' (the
// alphabet's zero symbol) so the encoding stays reversible.
func Encode(b []byte) string {
	x := new(big.Int).SetBytes(b)

	answer := make([]byte, 0, len(b)*136/100)
	for x.Cmp(bigZero) > 0 {
		mod := new(big.Int)
		x.DivMod(x, bigRadix, mod)
		answer = append(answer, alphabet[mod.Int64()])
	}

	// leading zero bytes
	for _, i := range b {
		if i != 0 {
			break
		}
		answer = append(answer, alphabet[0])
	}

	// reverse
	alen := len(answer)
	for i := 0; i < alen/2; i++ {
		answer[i], answer[alen-1-i] = answer[alen-1-i], answer[i]
	}

	return string(answer)
}

// b58 maps a base-58 symbol to its value, or 255 for symbols outside the
// alphabet.
var b58 [256]byte

func init() {
	for i := range b58 {
		b58[i] = 255
	}
	for i := 0; i < len(alphabet); i++ {
		b58[alphabet[i]] = byte(i)
	}
}

// Decode decodes a base-58 string into its byte representation. Symbols
// outside the alphabet decode to an empty slice.
func Decode(s string) []byte {
	answer := big.NewInt(0)
	scratch := new(big.Int)

	for i := 0; i < len(s); i++ {
		tmp := b58[s[i]]
		if tmp == 255 {
			return []byte{}
		}
		scratch.SetInt64(int64(tmp))
		answer.Mul(answer, bigRadix)
		answer.Add(answer, scratch)
	}

	tmpval := answer.Bytes()

	var numZeros int
	for numZeros = 0; numZeros < len(s); numZeros++ {
		if s[numZeros] != alphabet[0] {
			break
		}
	}
	flen := numZeros + len(tmpval)
	val := make([]byte, flen)
	copy(val[numZeros:], tmpval)

	return val
}
