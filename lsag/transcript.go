// Copyright (c) 2023 Yawning Angel
// SPDX-License-Identifier: BSD-3-Clause

package lsag

import (
	"encoding/hex"
	"math/big"
	"strings"

	"golang.org/x/crypto/sha3"

	"github.com/alicesring/lsag-go/secp256k1"
)

// keccak256 implements keccak_256: concatenates each part as
// UTF-8 bytes, with no separator, in order, hashes with Keccak-256 (the
// original Keccak padding byte 0x01, not SHA3-256), and returns the
// 64-char lowercase hex digest.
//
// The reference transcript prepends an empty leading token before
// concatenation; that is a no-op here, since an empty string
// contributes zero bytes regardless of position.
func keccak256(parts ...string) string {
	h := sha3.NewLegacyKeccak256()
	for _, p := range parts {
		h.Write([]byte(p))
	}
	return hex.EncodeToString(h.Sum(nil))
}

// hexToDecimal implements hex_to_decimal: requires exactly
// 64 hex characters, interprets them as a nonnegative big-endian
// integer, and emits the unpadded base-10 representation.
func hexToDecimal(s string) (string, error) {
	if len(s) != 64 {
		return "", secp256k1.Error{Err: secp256k1.ErrBadLength, Description: "lsag: digest hex must be exactly 64 characters"}
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return "", secp256k1.Error{Err: secp256k1.ErrInvalidHex, Description: "lsag: " + err.Error()}
	}
	n := new(big.Int).SetBytes(raw)
	return n.String(), nil
}

// serializeRing implements serialize_ring: the concatenation
// (no delimiter) of each ring point's 66-char compressed hex.
func serializeRing(ring Ring) string {
	var sb strings.Builder
	for _, p := range ring {
		sb.WriteString(p.HexString())
	}
	return sb.String()
}

// messageDigest returns keccak_256([message]).
func messageDigest(message string) string {
	return keccak256(message)
}

// memberHash implements the per-member curve hash from compute_c step 2:
// hash_to_secp256k1(serialize_point(ring[i]) || (L or "")).
func memberHash(member *secp256k1.Point, linkabilityFlag string) *secp256k1.Point {
	msg := member.HexString() + linkabilityFlag
	return secp256k1.HashToCurve([]byte(msg))
}
