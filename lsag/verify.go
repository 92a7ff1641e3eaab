// Copyright (c) 2023 Yawning Angel
// SPDX-License-Identifier: BSD-3-Clause

package lsag

// VerifyLSAG implements verify_lsag: closes the ring by
// folding computeC once per ring position, starting from sig.C0, and
// accepts iff the final value equals sig.C0 again.
//
// It returns an error, not false, for structural problems (ring or
// response length mismatch, malformed scalars, malformed points); only a
// well-formed-but-incorrect signature returns (false, nil). Callers MUST
// NOT collapse a returned error into "invalid" without noticing that
// distinction.
func VerifyLSAG(sig *Signature) (bool, error) {
	ring := sig.Ring
	if len(ring) != len(sig.Responses) {
		return false, newError(ErrLengthMismatch, "lsag: len(ring) != len(responses)")
	}

	digest := messageDigest(sig.Message)
	serializedRing := serializeRing(ring)

	c := sig.C0
	for i := 0; i < len(ring); i++ {
		params := challengeParams{
			previousIndex:   i,
			previousR:       sig.Responses[i],
			previousC:       c,
			keyImage:        sig.KeyImage,
			linkabilityFlag: sig.LinkabilityFlag,
		}
		next, err := computeC(ring, serializedRing, digest, params)
		if err != nil {
			return false, err
		}
		c = next
	}

	return c.Equal(sig.C0), nil
}
