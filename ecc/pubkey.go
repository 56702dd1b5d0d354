// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecc

import (
	"math/big"

	"github.com/pkg/errors"
)

// SEC encoding constants.
const (
	// PubKeyBytesLenCompressed is the length of a compressed SEC encoded
	// public key: a parity prefix followed by the x coordinate.
	PubKeyBytesLenCompressed = 33

	// PubKeyBytesLenUncompressed is the length of an uncompressed SEC
	// encoded public key: a prefix followed by both coordinates.
	PubKeyBytesLenUncompressed = 65

	pubkeyCompressedEven byte = 0x02
	pubkeyCompressedOdd  byte = 0x03
	pubkeyUncompressed   byte = 0x04
)

// PublicKey is a point on the secp256k1 curve derived from a private key by
// scalar multiplication of the base point. It serializes to the SEC format.
type PublicKey Point

// Point returns the public key as a curve point.
func (p *PublicKey) Point() *Point {
	return (*Point)(p)
}

// SerializeCompressed serializes the public key in the 33-byte compressed
// SEC format: a 1-byte prefix encoding the parity of y, followed by the
// 32-byte big-endian x coordinate.
func (p *PublicKey) SerializeCompressed() []byte {
	prefix := pubkeyCompressedEven
	if p.y.Bit(0) == 1 {
		prefix = pubkeyCompressedOdd
	}

	b := make([]byte, 0, PubKeyBytesLenCompressed)
	b = append(b, prefix)
	return paddedAppend(32, b, p.x.Bytes())
}

// SerializeUncompressed serializes the public key in the 65-byte
// uncompressed SEC format: the 0x04 prefix followed by the 32-byte
// big-endian x and y coordinates.
func (p *PublicKey) SerializeUncompressed() []byte {
	b := make([]byte, 0, PubKeyBytesLenUncompressed)
	b = append(b, pubkeyUncompressed)
	b = paddedAppend(32, b, p.x.Bytes())
	return paddedAppend(32, b, p.y.Bytes())
}

// IsEqual compares this PublicKey instance to the one passed, returning true
// if both PublicKeys are equivalent.
func (p *PublicKey) IsEqual(otherPubKey *PublicKey) bool {
	return p.Point().IsEqual(otherPubKey.Point())
}

// ParsePubKey parses a SEC encoded public key, verifying that the decoded
// point actually lies on the secp256k1 curve. It supports the compressed and
// uncompressed formats.
func ParsePubKey(pubKeyStr []byte) (*PublicKey, error) {
	curve := S256()

	switch len(pubKeyStr) {
	case PubKeyBytesLenUncompressed:
		if pubKeyStr[0] != pubkeyUncompressed {
			return nil, errors.Errorf("invalid magic in pubkey str: "+
				"%d", pubKeyStr[0])
		}
		x := new(big.Int).SetBytes(pubKeyStr[1:33])
		y := new(big.Int).SetBytes(pubKeyStr[33:])
		if !curve.IsOnCurve(x, y) {
			return nil, errors.New("pubkey is not on secp256k1 curve")
		}
		return (*PublicKey)(NewPoint(curve, x, y)), nil

	case PubKeyBytesLenCompressed:
		prefix := pubKeyStr[0]
		if prefix != pubkeyCompressedEven && prefix != pubkeyCompressedOdd {
			return nil, errors.Errorf("invalid magic in compressed "+
				"pubkey string: %d", prefix)
		}
		x := new(big.Int).SetBytes(pubKeyStr[1:])
		y, err := decompressY(curve, x, prefix == pubkeyCompressedOdd)
		if err != nil {
			return nil, err
		}
		return (*PublicKey)(NewPoint(curve, x, y)), nil

	default:
		return nil, errors.Errorf("invalid pub key length %d",
			len(pubKeyStr))
	}
}

// decompressY recovers the y coordinate with the requested parity from the
// curve equation, using the modular square root of x^3 + a*x + b.
func decompressY(curve *Curve, x *big.Int, odd bool) (*big.Int, error) {
	rhs := new(big.Int).Mul(x, x)
	rhs.Mul(rhs, x)
	rhs.Add(rhs, new(big.Int).Mul(curve.A, x))
	rhs.Add(rhs, curve.B)
	rhs.Mod(rhs, curve.P)

	y := new(big.Int).ModSqrt(rhs, curve.P)
	if y == nil {
		return nil, errors.New("invalid pubkey: x is not on the curve")
	}
	if odd != (y.Bit(0) == 1) {
		y.Sub(curve.P, y)
	}
	return y, nil
}

// paddedAppend appends the src byte slice to dst, returning the new slice.
// If the length of the source is smaller than the passed size, leading zero
// bytes are appended to the dst slice before appending src.
func paddedAppend(size uint, dst, src []byte) []byte {
	for i := 0; i < int(size)-len(src); i++ {
		dst = append(dst, 0)
	}
	return append(dst, src...)
}
