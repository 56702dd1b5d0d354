// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecc

import (
	"math/big"

	"github.com/pkg/errors"
)

// Errors returned by canonicalPadding.
var (
	errNegativeValue          = errors.New("value may be interpreted as negative")
	errExcessivelyPaddedValue = errors.New("value is excessively padded")
)

// Signature is an ECDSA signature, a pair of integers (r, s) in [1, n-1].
// It exists only to be DER encoded into an input's unlocking script.
type Signature struct {
	R *big.Int
	S *big.Int
}

// Sign generates an ECDSA signature for the provided hash (which should be
// the result of hashing a larger message, here the double-SHA256 signature
// hash of a transaction) using the private key. The produced signature is
// canonical: s is normalized to the lower of the two possible values to
// prevent signature malleability.
//
// The ephemeral scalar k is drawn fresh from crypto/rand for every call.
// Reusing k across two signatures for the same key leaks the private key, so
// entropy failures abort the signing rather than falling back to anything
// weaker.
func (p *PrivateKey) Sign(hash []byte) (*Signature, error) {
	gen := Secp256k1Generator()
	n := gen.N
	z := hashToInt(hash, n)

	for {
		k, err := randFieldElement(n)
		if err != nil {
			return nil, errors.Wrap(err, "failed to sample signature nonce")
		}

		// R = k*G, r = R.x mod n.
		kG, err := gen.G.ScalarMult(k)
		if err != nil {
			return nil, err
		}
		r := new(big.Int).Mod(kG.X(), n)
		if r.Sign() == 0 {
			continue
		}

		// s = k^-1 * (z + d*r) mod n.
		s := new(big.Int).Mul(p.D, r)
		s.Add(s, z)
		s.Mul(s, ModInverse(k, n))
		s.Mod(s, n)
		if s.Sign() == 0 {
			continue
		}

		// Low-s normalization, preferred by relay policy.
		if s.Cmp(secp256k1HalfN) > 0 {
			s.Sub(n, s)
		}

		return &Signature{R: r, S: s}, nil
	}
}

// Verify reports whether the signature is a valid ECDSA signature of the
// hash under the given public key, using the standard verification equation
// r == x(u1*G + u2*Q) mod n with u1 = z/s and u2 = r/s.
func (sig *Signature) Verify(hash []byte, pubKey *PublicKey) bool {
	gen := Secp256k1Generator()
	n := gen.N

	if sig.R.Sign() <= 0 || sig.S.Sign() <= 0 {
		return false
	}
	if sig.R.Cmp(n) >= 0 || sig.S.Cmp(n) >= 0 {
		return false
	}

	z := hashToInt(hash, n)
	w := ModInverse(sig.S, n)

	u1 := new(big.Int).Mul(z, w)
	u1.Mod(u1, n)
	u2 := new(big.Int).Mul(sig.R, w)
	u2.Mod(u2, n)

	u1G, err := gen.G.ScalarMult(u1)
	if err != nil {
		return false
	}
	u2Q, err := pubKey.Point().ScalarMult(u2)
	if err != nil {
		return false
	}

	sum := u1G.Add(u2Q)
	if sum.IsInfinity() {
		return false
	}

	x := new(big.Int).Mod(sum.X(), n)
	return x.Cmp(sig.R) == 0
}

// IsEqual compares this Signature instance to the one passed, returning true
// if both Signatures are equivalent. A signature is equivalent to another, if
// they both have the same scalar value for R and S.
func (sig *Signature) IsEqual(otherSig *Signature) bool {
	return sig.R.Cmp(otherSig.R) == 0 &&
		sig.S.Cmp(otherSig.S) == 0
}

// Serialize returns the DER encoding of the signature:
//
//	0x30 <total length> 0x02 <length of R> <R> 0x02 <length of S> <S>
//
// Each integer is big-endian with leading zero bytes stripped, then prefixed
// with a single 0x00 byte when its leading byte has the high bit set, so it
// cannot be misread as negative under DER's signed-integer convention.
func (sig *Signature) Serialize() []byte {
	rb := canonicalizeInt(sig.R)
	sb := canonicalizeInt(sig.S)

	// total length of returned signature is 1 byte for each magic and
	// length (6 total), plus lengths of R and S.
	length := 6 + len(rb) + len(sb)
	b := make([]byte, 0, length)

	b = append(b, 0x30, byte(length-2))
	b = append(b, 0x02, byte(len(rb)))
	b = append(b, rb...)
	b = append(b, 0x02, byte(len(sb)))
	b = append(b, sb...)
	return b
}

// ParseDERSignature parses a DER encoded signature produced by Serialize,
// rejecting any non-canonical encoding.
func ParseDERSignature(sigStr []byte) (*Signature, error) {
	// minimal message is when both numbers are 1 byte each:
	// 0x30 + len + 0x02 + len + <byte> + 0x02 + len + <byte>
	if len(sigStr) < 8 {
		return nil, errors.New("malformed signature: too short")
	}

	// 0x30
	index := 0
	if sigStr[index] != 0x30 {
		return nil, errors.New("malformed signature: no header magic")
	}
	index++
	// length of remaining message
	siglen := int(sigStr[index])
	index++
	if siglen+2 > len(sigStr) {
		return nil, errors.New("malformed signature: bad length")
	}
	// trim the slice we're working on so we only look at what matters.
	sigStr = sigStr[:siglen+2]

	// 0x02
	if sigStr[index] != 0x02 {
		return nil, errors.New("malformed signature: no 1st int marker")
	}
	index++

	// Length of signature R.
	rLen := int(sigStr[index])
	// must be positive, must be able to fit in another 0x2, <len> <s>
	// hence the -3. We assume that the length must be at least one byte.
	index++
	if rLen <= 0 || rLen > len(sigStr)-index-3 {
		return nil, errors.New("malformed signature: bogus R length")
	}

	// Then R itself.
	rBytes := sigStr[index : index+rLen]
	if err := canonicalPadding(rBytes); err != nil {
		switch err {
		case errNegativeValue:
			return nil, errors.New("signature R is negative")
		case errExcessivelyPaddedValue:
			return nil, errors.New("signature R is excessively padded")
		default:
			return nil, err
		}
	}
	index += rLen

	// 0x02. length already checked in previous if.
	if sigStr[index] != 0x02 {
		return nil, errors.New("malformed signature: no 2nd int marker")
	}
	index++

	// Length of signature S.
	sLen := int(sigStr[index])
	index++
	// S should be the rest of the string.
	if sLen <= 0 || sLen > len(sigStr)-index {
		return nil, errors.New("malformed signature: bogus S length")
	}

	// Then S itself.
	sBytes := sigStr[index : index+sLen]
	if err := canonicalPadding(sBytes); err != nil {
		switch err {
		case errNegativeValue:
			return nil, errors.New("signature S is negative")
		case errExcessivelyPaddedValue:
			return nil, errors.New("signature S is excessively padded")
		default:
			return nil, err
		}
	}
	index += sLen

	// sanity check length parsing
	if index != len(sigStr) {
		return nil, errors.Errorf("malformed signature: bad final length %v != %v",
			index, len(sigStr))
	}

	signature := &Signature{
		R: new(big.Int).SetBytes(rBytes),
		S: new(big.Int).SetBytes(sBytes),
	}

	n := Secp256k1Generator().N
	if signature.R.Sign() != 1 {
		return nil, errors.New("signature R isn't 1 or more")
	}
	if signature.S.Sign() != 1 {
		return nil, errors.New("signature S isn't 1 or more")
	}
	if signature.R.Cmp(n) >= 0 {
		return nil, errors.New("signature R is >= curve order")
	}
	if signature.S.Cmp(n) >= 0 {
		return nil, errors.New("signature S is >= curve order")
	}

	return signature, nil
}

// canonicalizeInt returns the bytes for the passed big integer adjusted as
// necessary to ensure that a big-endian encoded integer can't possibly be
// misinterpreted as a negative number. This can happen when the most
// significant bit is set, so it is padded by a leading zero byte in this case.
// Also, the returned bytes will have at least a single byte when the passed
// value is 0.
func canonicalizeInt(val *big.Int) []byte {
	b := val.Bytes()
	if len(b) == 0 {
		b = []byte{0x00}
	}
	if b[0]&0x80 != 0 {
		paddedBytes := make([]byte, len(b)+1)
		copy(paddedBytes[1:], b)
		b = paddedBytes
	}
	return b
}

// canonicalPadding checks whether a big-endian encoded integer could
// possibly be misinterpreted as a negative number (even though OpenSSL
// treats all numbers as unsigned), or if there is any unnecessary
// leading zero padding.
func canonicalPadding(b []byte) error {
	switch {
	case b[0]&0x80 == 0x80:
		return errNegativeValue
	case len(b) > 1 && b[0] == 0x00 && b[1]&0x80 != 0x80:
		return errExcessivelyPaddedValue
	default:
		return nil
	}
}

// hashToInt converts a hash value to an integer modulo nothing: the hash is
// interpreted as a big-endian integer and truncated to the bit length of the
// group order, per FIPS 186-3.
func hashToInt(hash []byte, n *big.Int) *big.Int {
	orderBits := n.BitLen()
	orderBytes := (orderBits + 7) / 8
	if len(hash) > orderBytes {
		hash = hash[:orderBytes]
	}

	ret := new(big.Int).SetBytes(hash)
	excess := len(hash)*8 - orderBits
	if excess > 0 {
		ret.Rsh(ret, uint(excess))
	}
	return ret
}
