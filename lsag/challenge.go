// Copyright (c) 2023 Yawning Angel
// SPDX-License-Identifier: BSD-3-Clause

package lsag

import "github.com/alicesring/lsag-go/secp256k1"

// challengeParams bundles the per-step inputs to computeC.
type challengeParams struct {
	previousIndex   int
	previousR       *secp256k1.Scalar
	previousC       *secp256k1.Scalar
	keyImage        *secp256k1.Point
	linkabilityFlag string
}

// computeC implements compute_c: the single-link challenge
// recomputation that verify_lsag folds over the ring.
//
// The digest of keccak_256 is always 32 bytes and is parsed directly as
// a scalar with no reduction modulo the curve order: if the raw digest is
// >= n, scalar_from_hex surfaces NotInField here rather than reducing.
func computeC(ring Ring, serializedRing, messageDigest string, params challengeParams) (*secp256k1.Scalar, error) {
	member := ring[params.previousIndex]

	// A = r*G + c*ring[i]
	a := secp256k1.ScalarBaseMult(params.previousR).Add(member.ScalarMult(params.previousC))

	// H_i = hash_to_secp256k1(serialize_point(ring[i]) || (L or ""))
	hi := memberHash(member, params.linkabilityFlag)

	// B = r*H_i + c*I
	b := hi.ScalarMult(params.previousR).Add(params.keyImage.ScalarMult(params.previousC))

	digestDecimal, err := hexToDecimal(messageDigest)
	if err != nil {
		return nil, err
	}

	// T = serialized_ring || hex_to_decimal(message_digest) ||
	//     serialize_point(A) || serialize_point(B)
	transcript := serializedRing + digestDecimal + a.HexString() + b.HexString()

	digest := keccak256(transcript)
	cNext, err := secp256k1.ScalarFromHex(digest)
	if err != nil {
		return nil, err
	}
	return cNext, nil
}
