// Copyright (c) 2023 Yawning Angel
// SPDX-License-Identifier: BSD-3-Clause

package secp256k1

import (
	"math/big"

	"github.com/btcsuite/btcd/btcec/v2"
)

// Point is an affine point of the secp256k1 curve. The zero value is
// the point at infinity and is never a valid signature input.
type Point struct {
	x, y *big.Int
}

func curve() *btcec.KoblitzCurve {
	return btcec.S256()
}

// NewGeneratorPoint returns the secp256k1 base point G.
func NewGeneratorPoint() *Point {
	c := curve()
	return &Point{x: new(big.Int).Set(c.Gx), y: new(big.Int).Set(c.Gy)}
}

// IsIdentity returns true iff p is the point at infinity.
func (p *Point) IsIdentity() bool {
	return p.x == nil || p.y == nil || (p.x.Sign() == 0 && p.y.Sign() == 0)
}

// Equal returns true iff p and other are the same affine point.
func (p *Point) Equal(other *Point) bool {
	if p.IsIdentity() || other.IsIdentity() {
		return p.IsIdentity() == other.IsIdentity()
	}
	return p.x.Cmp(other.x) == 0 && p.y.Cmp(other.y) == 0
}

// Add returns p + q.
func (p *Point) Add(q *Point) *Point {
	if p.IsIdentity() {
		return q
	}
	if q.IsIdentity() {
		return p
	}
	x, y := curve().Add(p.x, p.y, q.x, q.y)
	return &Point{x: x, y: y}
}

// ScalarMult returns s*p.
func (p *Point) ScalarMult(s *Scalar) *Point {
	x, y := curve().ScalarMult(p.x, p.y, s.Bytes())
	return &Point{x: x, y: y}
}

// ScalarBaseMult returns s*G.
func ScalarBaseMult(s *Scalar) *Point {
	x, y := curve().ScalarBaseMult(s.Bytes())
	return &Point{x: x, y: y}
}
