// Copyright (c) 2023 Yawning Angel
// SPDX-License-Identifier: BSD-3-Clause

package secp256k1

import (
	"encoding/hex"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// CompressedPointSize is the length, in bytes, of the compressed SEC1
// encoding of a point: 1 parity byte || 32-byte big-endian x.
const CompressedPointSize = 33

// CompressedHexSize is the length, in characters, of the lowercase hex
// form of a compressed point.
const CompressedHexSize = CompressedPointSize * 2

// CompressedBytes implements serialize_point, returning the
// 33-byte compressed SEC1 encoding of p. p must not be the identity.
func (p *Point) CompressedBytes() []byte {
	var xField, yField secp256k1.FieldVal
	xField.SetByteSlice(p.x.Bytes())
	yField.SetByteSlice(p.y.Bytes())
	pub := secp256k1.NewPublicKey(&xField, &yField)
	return pub.SerializeCompressed()
}

// HexString returns p's compressed encoding as exactly 66 lowercase hex
// characters.
func (p *Point) HexString() string {
	return hex.EncodeToString(p.CompressedBytes())
}

// PointFromCompressedBytes implements deserialize_point:
// rejects any input whose length is not exactly 33 bytes or which does
// not decode to a point on the curve.
func PointFromCompressedBytes(src []byte) (*Point, error) {
	if len(src) != CompressedPointSize {
		return nil, newError(ErrBadLength, "secp256k1: compressed point must be exactly 33 bytes")
	}
	if src[0] != 0x02 && src[0] != 0x03 {
		return nil, newError(ErrNotOnCurve, "secp256k1: invalid compressed point prefix")
	}
	pub, err := secp256k1.ParsePubKey(src)
	if err != nil {
		return nil, newError(ErrNotOnCurve, "secp256k1: "+err.Error())
	}
	return &Point{x: pub.X(), y: pub.Y()}, nil
}

// PointFromHex decodes a 66-character compressed-hex point.
func PointFromHex(s string) (*Point, error) {
	if len(s) != CompressedHexSize {
		return nil, newError(ErrBadLength, "secp256k1: point hex must be exactly 66 characters")
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, newError(ErrInvalidHex, "secp256k1: "+err.Error())
	}
	return PointFromCompressedBytes(raw)
}
