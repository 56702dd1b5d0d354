// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecc

import (
	"math/big"
)

// Generator is a base point on a curve together with n, the (pre-computed)
// order of the cyclic subgroup it generates. Scalar arithmetic for keys and
// signatures is performed modulo n.
type Generator struct {
	G *Point
	N *big.Int
}

// secp256k1 parameters, initialized once at package load and read-only
// afterwards, so they are safe for unsynchronized concurrent use.
var (
	secp256k1          *Curve
	secp256k1Generator *Generator
	secp256k1HalfN     *big.Int
)

func init() {
	p := fromHex("fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f")
	curve := NewCurve(p, big.NewInt(0), big.NewInt(7))

	gx := fromHex("79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798")
	gy := fromHex("483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8")
	n := fromHex("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141")

	secp256k1 = curve
	secp256k1Generator = &Generator{G: NewPoint(curve, gx, gy), N: n}
	secp256k1HalfN = new(big.Int).Rsh(n, 1)
}

// S256 returns the secp256k1 curve, y^2 = x^3 + 7 over F_p.
func S256() *Curve {
	return secp256k1
}

// Secp256k1Generator returns the standard secp256k1 base point and the prime
// order of the group it generates.
func Secp256k1Generator() *Generator {
	return secp256k1Generator
}

// fromHex converts the passed big-endian hex string into a big integer.
// It only differs from the one available in math/big in that it panics on an
// invalid hex string, which is acceptable since it is only called on
// hardcoded constants.
func fromHex(s string) *big.Int {
	r, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("invalid hex in source file: " + s)
	}
	return r
}
