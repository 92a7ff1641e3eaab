// Copyright (c) 2023 Yawning Angel
// SPDX-License-Identifier: BSD-3-Clause

package secp256k1

import (
	bytemare "github.com/bytemare/secp256k1"
)

// H2CSuite is the RFC 9380 hash-to-curve suite identifier this package
// implements.
const H2CSuite = "secp256k1_XMD:SHA-256_SSWU_RO_"

// h2cDST is the domain-separation tag: the literal suite identifier
// bytes, used unmodified as the DST. This is not the "suite name plus
// application context" RFC 9380 usually recommends; the reference
// implementation this is ported from uses the bare suite name.
var h2cDST = []byte(H2CSuite)

// HashToCurve implements hash_to_secp256k1: RFC 9380 hash-to-curve with
// suite secp256k1_XMD:SHA-256_SSWU_RO_, returning an affine point that
// is never the identity for any input.
//
// Most users SHOULD treat this as an opaque random oracle rather than
// rely on any structural property of the output point beyond "on the
// curve and non-identity".
func HashToCurve(msg []byte) *Point {
	el := bytemare.HashToGroup(msg, h2cDST)
	encoded := el.Encode()

	p, err := PointFromCompressedBytes(encoded)
	if err != nil {
		// bytemare/secp256k1 guarantees its output is a valid
		// non-identity curve point; a decode failure here means the
		// two libraries disagree about SEC1 encoding, which is a
		// programming error, not a verifier-input error.
		panic("secp256k1: hash-to-curve produced an undecodable point: " + err.Error())
	}
	return p
}
