// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecc

import (
	"fmt"
	"math/big"

	"github.com/pkg/errors"
)

// Curve is a short-Weierstrass elliptic curve over the field of integers
// modulo a prime. Points on the curve satisfy y^2 = x^3 + A*x + B (mod P).
// A Curve is immutable after construction and is shared by every Point
// derived from it.
type Curve struct {
	P *big.Int // prime modulus of the field
	A *big.Int
	B *big.Int
}

// NewCurve returns a curve with the given parameters. The primality of p is
// not verified here, callers are expected to pass well-known parameters.
func NewCurve(p, a, b *big.Int) *Curve {
	return &Curve{P: p, A: a, B: b}
}

// IsOnCurve returns whether the affine coordinates (x, y) satisfy the curve
// equation.
func (curve *Curve) IsOnCurve(x, y *big.Int) bool {
	// y^2 = x^3 + a*x + b (mod p)
	lhs := new(big.Int).Mul(y, y)
	lhs.Mod(lhs, curve.P)

	rhs := new(big.Int).Mul(x, x)
	rhs.Mul(rhs, x)
	rhs.Add(rhs, new(big.Int).Mul(curve.A, x))
	rhs.Add(rhs, curve.B)
	rhs.Mod(rhs, curve.P)

	return lhs.Cmp(rhs) == 0
}

// Point is a point on a Curve, either the point at infinity (the group
// identity) or an affine (x, y) pair. The infinity variant is tagged rather
// than being a shared sentinel value, so equality and the group law are total
// operations. Use NewPoint and Infinity to construct values.
type Point struct {
	curve *Curve

	// x and y are nil if and only if this is the point at infinity.
	x *big.Int
	y *big.Int
}

// Infinity returns the group identity. It acts as the additive identity for
// every curve and compares equal only to itself.
func Infinity() *Point {
	return &Point{}
}

// NewPoint returns the affine point (x, y) on the given curve. The curve
// equation is not re-verified here: points produced by scalar multiplication
// satisfy it by construction and externally supplied coordinates are the
// caller's responsibility.
func NewPoint(curve *Curve, x, y *big.Int) *Point {
	return &Point{
		curve: curve,
		x:     new(big.Int).Set(x),
		y:     new(big.Int).Set(y),
	}
}

// IsInfinity returns whether this is the point at infinity.
func (p *Point) IsInfinity() bool {
	return p.x == nil
}

// X returns the affine x coordinate. It must not be called on the point at
// infinity.
func (p *Point) X() *big.Int {
	return p.x
}

// Y returns the affine y coordinate. It must not be called on the point at
// infinity.
func (p *Point) Y() *big.Int {
	return p.y
}

// Curve returns the curve this point belongs to, or nil for the point at
// infinity.
func (p *Point) Curve() *Curve {
	return p.curve
}

// IsEqual returns whether two points have the same coordinates. The point at
// infinity is equal only to itself.
func (p *Point) IsEqual(other *Point) bool {
	if p.IsInfinity() || other.IsInfinity() {
		return p.IsInfinity() && other.IsInfinity()
	}
	return p.x.Cmp(other.x) == 0 && p.y.Cmp(other.y) == 0
}

// Negate returns the additive inverse (x, -y mod p) of the point. The point
// at infinity is its own inverse.
func (p *Point) Negate() *Point {
	if p.IsInfinity() {
		return Infinity()
	}
	negY := new(big.Int).Neg(p.y)
	negY.Mod(negY, p.curve.P)
	return &Point{curve: p.curve, x: new(big.Int).Set(p.x), y: negY}
}

// Add returns the sum of two points under the elliptic curve group law:
//
//   - infinity is the additive identity
//   - a point plus its inverse (same x, opposite y) is infinity
//   - doubling uses the tangent slope (3x^2 + a) / 2y
//   - distinct points use the chord slope (y1 - y2) / (x1 - x2)
func (p *Point) Add(other *Point) *Point {
	if p.IsInfinity() {
		return other
	}
	if other.IsInfinity() {
		return p
	}

	curve := p.curve

	// P + (-P) = infinity.
	if p.x.Cmp(other.x) == 0 && p.y.Cmp(other.y) != 0 {
		return Infinity()
	}

	var m *big.Int
	if p.x.Cmp(other.x) == 0 {
		// Doubling: m = (3*x^2 + a) / (2*y).
		num := new(big.Int).Mul(p.x, p.x)
		num.Mul(num, three)
		num.Add(num, curve.A)
		den := new(big.Int).Lsh(p.y, 1)
		m = num.Mul(num, ModInverse(den, curve.P))
	} else {
		// Chord: m = (y1 - y2) / (x1 - x2).
		num := new(big.Int).Sub(p.y, other.y)
		den := new(big.Int).Sub(p.x, other.x)
		m = num.Mul(num, ModInverse(den, curve.P))
	}
	m.Mod(m, curve.P)

	// x3 = m^2 - x1 - x2
	x3 := new(big.Int).Mul(m, m)
	x3.Sub(x3, p.x)
	x3.Sub(x3, other.x)
	x3.Mod(x3, curve.P)

	// y3 = -(m*(x3 - x1) + y1)
	y3 := new(big.Int).Sub(x3, p.x)
	y3.Mul(y3, m)
	y3.Add(y3, p.y)
	y3.Neg(y3)
	y3.Mod(y3, curve.P)

	return &Point{curve: curve, x: x3, y: y3}
}

// ScalarMult returns k*P computed with the double-and-add method, iterating
// the bits of k from least to most significant. It runs in O(log k) point
// operations. k must be non-negative; k == 0 yields the point at infinity.
func (p *Point) ScalarMult(k *big.Int) (*Point, error) {
	if k.Sign() < 0 {
		return nil, errors.Errorf("scalar multiplication requires a "+
			"non-negative scalar, got %s", k)
	}

	result := Infinity()
	addend := p
	for k := new(big.Int).Set(k); k.Sign() != 0; k.Rsh(k, 1) {
		if k.Bit(0) == 1 {
			result = result.Add(addend)
		}
		addend = addend.Add(addend)
	}
	return result, nil
}

// String returns the point as "(x, y)" in hex, or "(infinity)".
func (p *Point) String() string {
	if p.IsInfinity() {
		return "(infinity)"
	}
	return fmt.Sprintf("(%064x, %064x)", p.x, p.y)
}

var three = big.NewInt(3)

// ModInverse returns the modular multiplicative inverse m of n such that
// (n*m) mod p == 1, using the iterative extended Euclidean algorithm. The
// result is the Bézout coefficient of n reduced into [0, p).
//
// The caller must guarantee gcd(n, p) == 1, which always holds when p is
// prime and n is not a multiple of p. The precondition is not re-checked and
// violating it yields a mathematically meaningless result.
func ModInverse(n, p *big.Int) *big.Int {
	oldR, r := new(big.Int).Set(n), new(big.Int).Set(p)
	oldS, s := big.NewInt(1), big.NewInt(0)

	for r.Sign() != 0 {
		quotient := new(big.Int).Div(oldR, r)

		oldR, r = r, oldR.Sub(oldR, new(big.Int).Mul(quotient, r))
		oldS, s = s, oldS.Sub(oldS, new(big.Int).Mul(quotient, s))
	}

	return oldS.Mod(oldS, p)
}
