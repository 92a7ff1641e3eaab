// Copyright (c) 2023 Yawning Angel
// SPDX-License-Identifier: BSD-3-Clause

package lsag

import (
	"encoding/base64"
	"encoding/json"

	"github.com/pion/logging"

	"github.com/alicesring/lsag-go/secp256k1"
)

// envelope mirrors the JSON object the wire format uses. Extra fields
// observed in the wild (curve, evmWitnesses) are intentionally absent
// here: the decoder ignores unknown fields by construction rather than
// by filtering them out.
type envelope struct {
	Message         string   `json:"message"`
	Ring            []string `json:"ring"`
	C               string   `json:"c"`
	Responses       []string `json:"responses"`
	KeyImage        string   `json:"keyImage"`
	LinkabilityFlag string   `json:"linkabilityFlag"`
}

// LoggerFactory is used by VerifyB64 to report decode failures without
// panicking or returning an error to a caller whose contract is a bare
// bool. Defaulting to logging.NewDefaultLoggerFactory() mirrors the
// Config.LoggerFactory convention this package's teacher uses.
var LoggerFactory logging.LoggerFactory = logging.NewDefaultLoggerFactory()

func envelopeLogger() logging.LeveledLogger {
	return LoggerFactory.NewLogger("lsag")
}

// VerifyB64 implements verify_b64: base64-decodes envelope,
// parses it as the JSON object above, builds a Signature, and hands it
// to VerifyLSAG. A base64/JSON/field decoding error is logged and
// yields false rather than propagating, per the envelope decoder's
// contract with untrusted input. A structural fault out of VerifyLSAG
// itself (a ring/response length mismatch) is a different thing: C7's
// contract says callers MUST NOT see that silently mapped to false, so
// it is left to fault here too, matching the reference verifier's own
// crash on a mismatched ring and response count.
func VerifyB64(envelope string) bool {
	sig, err := decodeEnvelope(envelope)
	if err != nil {
		envelopeLogger().Warnf("failed to decode lsag envelope: %v", err)
		return false
	}

	valid, err := VerifyLSAG(sig)
	if err != nil {
		panic(err)
	}
	return valid
}

func decodeEnvelope(raw string) (*Signature, error) {
	decoded, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, newError(ErrEnvelopeDecode, "lsag: base64 decode: "+err.Error())
	}

	var env envelope
	if err := json.Unmarshal(decoded, &env); err != nil {
		return nil, newError(ErrEnvelopeDecode, "lsag: json decode: "+err.Error())
	}

	var present map[string]json.RawMessage
	if err := json.Unmarshal(decoded, &present); err != nil {
		return nil, newError(ErrEnvelopeDecode, "lsag: json decode: "+err.Error())
	}
	for _, field := range []string{"message", "ring", "c", "responses", "keyImage"} {
		if _, ok := present[field]; !ok {
			return nil, newError(ErrEnvelopeDecode, "lsag: missing field "+field)
		}
	}

	ring := make(Ring, 0, len(env.Ring))
	for _, s := range env.Ring {
		p, err := secp256k1.PointFromHex(s)
		if err != nil {
			return nil, newError(ErrEnvelopeDecode, "lsag: ring point: "+err.Error())
		}
		ring = append(ring, p)
	}

	c0, err := secp256k1.ScalarFromHex(env.C)
	if err != nil {
		return nil, newError(ErrEnvelopeDecode, "lsag: c: "+err.Error())
	}

	responses := make([]*secp256k1.Scalar, 0, len(env.Responses))
	for _, s := range env.Responses {
		r, err := secp256k1.ScalarFromHex(s)
		if err != nil {
			return nil, newError(ErrEnvelopeDecode, "lsag: response: "+err.Error())
		}
		responses = append(responses, r)
	}

	keyImage, err := secp256k1.PointFromHex(env.KeyImage)
	if err != nil {
		return nil, newError(ErrEnvelopeDecode, "lsag: keyImage: "+err.Error())
	}

	return &Signature{
		Ring:            ring,
		Message:         env.Message,
		C0:              c0,
		Responses:       responses,
		KeyImage:        keyImage,
		LinkabilityFlag: env.LinkabilityFlag,
	}, nil
}
