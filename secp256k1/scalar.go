// Copyright (c) 2023 Yawning Angel
// SPDX-License-Identifier: BSD-3-Clause

// Package secp256k1 provides the byte- and hex-level codecs this repository
// needs for the secp256k1 scalar field and group, backed by
// github.com/decred/dcrd/dcrec/secp256k1/v4 and github.com/btcsuite/btcd/btcec/v2
// for the underlying arithmetic.
package secp256k1

import (
	"encoding/hex"
	"strings"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// ScalarSize is the length, in bytes, of an encoded Scalar.
const ScalarSize = 32

// Scalar is an element of the secp256k1 scalar field (an integer in
// [0, n) where n is the curve order).
type Scalar struct {
	s secp256k1.ModNScalar
}

// NewScalar returns a new Scalar set to 0.
func NewScalar() *Scalar {
	return &Scalar{}
}

// Equal returns true iff s and other represent the same scalar.
func (s *Scalar) Equal(other *Scalar) bool {
	return s.s.Equals(&other.s)
}

// IsZero returns true iff s is the zero scalar.
func (s *Scalar) IsZero() bool {
	return s.s.IsZero()
}

// Bytes returns the big-endian, 32-byte encoding of s.
func (s *Scalar) Bytes() []byte {
	b := s.s.Bytes()
	out := make([]byte, ScalarSize)
	copy(out, b[:])
	return out
}

// HexString returns s encoded as exactly 64 lowercase hex characters,
// big-endian, zero-padded (scalar_to_hex, ).
func (s *Scalar) HexString() string {
	return hex.EncodeToString(s.Bytes())
}

// ScalarFromCanonicalBytes decodes a 32-byte big-endian value into a
// Scalar, refusing to reduce: if the value is >= the curve order it
// returns ErrNotInField rather than silently wrapping.
func ScalarFromCanonicalBytes(src []byte) (*Scalar, error) {
	if len(src) != ScalarSize {
		return nil, newError(ErrBadLength, "secp256k1: scalar must be exactly 32 bytes")
	}
	var buf [32]byte
	copy(buf[:], src)

	var s secp256k1.ModNScalar
	overflow := s.SetBytes(&buf)
	if overflow != 0 {
		return nil, newError(ErrNotInField, "secp256k1: scalar value is not less than the curve order")
	}
	return &Scalar{s: s}, nil
}

// ScalarFromHex implements scalar_from_hex: strips an optional
// "0x" prefix, hex-decodes, left-pads to 32 bytes, and rejects values that
// are not strictly less than the curve order.
func ScalarFromHex(s string) (*Scalar, error) {
	s = strings.TrimPrefix(s, "0x")
	if len(s)%2 != 0 {
		return nil, newError(ErrInvalidHex, "secp256k1: odd-length hex string")
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, newError(ErrInvalidHex, "secp256k1: "+err.Error())
	}
	if len(raw) > ScalarSize {
		return nil, newError(ErrBadLength, "secp256k1: scalar hex decodes to more than 32 bytes")
	}

	padded := make([]byte, ScalarSize)
	copy(padded[ScalarSize-len(raw):], raw)
	return ScalarFromCanonicalBytes(padded)
}
