// Copyright (c) 2023 Yawning Angel
// SPDX-License-Identifier: BSD-3-Clause

package lsag

import "github.com/alicesring/lsag-go/secp256k1"

// Ring is an ordered sequence of ring-member public keys. Order is
// caller-defined and is part of the signed data; the verifier never
// reorders it.
type Ring []*secp256k1.Point

// Signature is the tuple
// (ring, message, c0, responses[0..m], key_image, linkability_flag?).
type Signature struct {
	Ring      Ring
	Message   string
	C0        *secp256k1.Scalar
	Responses []*secp256k1.Scalar
	KeyImage  *secp256k1.Point

	// LinkabilityFlag is an optional UTF-8 string. An absent flag and an
	// empty-string flag are treated identically in the transcript, so the
	// zero value already represents "absent" here since Go has no
	// first-class "optional string" and the two cases are defined to be
	// indistinguishable anyway.
	LinkabilityFlag string
}
