// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecc

import (
	"crypto/rand"
	"math/big"

	"github.com/pkg/errors"
)

// PrivKeyBytesLen defines the length in bytes of a serialized private key.
const PrivKeyBytesLen = 32

// PrivateKey is a secp256k1 secret key, an integer in [1, n-1]. It is held
// only by the signing party and is never part of the wire format.
type PrivateKey struct {
	D *big.Int
}

// NewPrivateKey samples a private key uniformly at random from [1, n-1].
// The scalar is drawn from crypto/rand: key and nonce material must never
// come from a general-purpose PRNG.
func NewPrivateKey() (*PrivateKey, error) {
	d, err := randFieldElement(Secp256k1Generator().N)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sample private key")
	}
	return &PrivateKey{D: d}, nil
}

// PrivKeyFromBytes returns a private key based on the provided big-endian
// byte slice along with the derived public key.
func PrivKeyFromBytes(pk []byte) (*PrivateKey, *PublicKey) {
	priv := &PrivateKey{D: new(big.Int).SetBytes(pk)}
	return priv, priv.PubKey()
}

// PubKey returns the public key point d*G corresponding to this private key.
func (p *PrivateKey) PubKey() *PublicKey {
	gen := Secp256k1Generator()
	// The scalar is non-negative, so scalar multiplication cannot fail.
	point, _ := gen.G.ScalarMult(new(big.Int).Abs(p.D))
	return (*PublicKey)(point)
}

// Serialize returns the private key as a 32-byte big-endian number.
func (p *PrivateKey) Serialize() []byte {
	b := make([]byte, PrivKeyBytesLen)
	return p.D.FillBytes(b)
}

// randFieldElement returns a uniformly random integer in [1, n-1] read from
// crypto/rand.
func randFieldElement(n *big.Int) (*big.Int, error) {
	// rand.Int returns a uniform value in [0, n-2]; shift into [1, n-1].
	k, err := rand.Int(rand.Reader, new(big.Int).Sub(n, one))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return k.Add(k, one), nil
}

var one = big.NewInt(1)
