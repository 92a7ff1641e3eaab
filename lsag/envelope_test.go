// Copyright (c) 2023 Yawning Angel
// SPDX-License-Identifier: BSD-3-Clause

package lsag

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"
)

// validB64Envelope is the base64 envelope literal from the source this
// package is ported from (packages/rust-verifier/src/main.rs). It
// encodes the same signature as fourMemberSignature, plus the unused
// "curve" and "evmWitnesses" fields the decoder must ignore.
const validB64Envelope = "eyJtZXNzYWdlIjoibWVzc2FnZSIsInJpbmciOlsiMDIwOGY0ZjM3ZTJkOGY3NGUxOGMxYjhmZGUyMzc0ZDVmMjg0MDJmYjhhYjdmZDFjYzViNzg2YWE0MDg1MWE3MGNiIiwiMDMxNmQ3ZGE3MGJhMjQ3YTZhNDBiYjMxMDE4N2U4Nzg5YjgwYzQ1ZmE2ZGMwMDYxYWJiOGNlZDQ5Y2JlN2Y4ODdmIiwiMDIyMTg2OWNhM2FlMzNiZTNhNzMyN2U5YTAyNzIyMDNhZmE3MmM1MmE1NDYwY2ViOWY0YTUwOTMwNTMxYmQ5MjZhIiwiMDIzMzdkNmY1NzdlNjZhMjFhNzgzMWMwODdjNjgzNmExYmFlMzcwODZiZjQzMTQwMDgxMWFjN2M2ZTk2YzhjY2JiIl0sImMiOiI4NjM3OWI0Mzg2MWU5NTBiNWZhNGI3NTcxYWZmMGM2MDA0NTc4ZTcxMjgwYWFlZGI5OTM4MzNjOWJkZTYzYzQzIiwicmVzcG9uc2VzIjpbImQ2YzE4NTRlZWIxMzJkNTg4NmFjNTkwYzUzMGE1NWE3ZmJhM2Q5MmM0ZWI2ODk2YTcyOGIwYTYxODk5YWQ5MDIiLCI2YTUxZDczMWIzOTgwMzZlZDNiM2I1Y2ZkMjA2NDA3YTM1ZmQxMWZhYTJiYmFkMTY1OGJjZjlmMDhiOWM1ZmI4IiwiNmE1MWQ3MzFiMzk4MDM2ZWQzYjNiNWNmZDIwNjQwN2EzNWZkMTFmYWEyYmJhZDE2NThiY2Y5ZjA4YjljNWZiOCIsIjZhNTFkNzMxYjM5ODAzNmVkM2IzYjVjZmQyMDY0MDdhMzVmZDExZmFhMmJiYWQxNjU4YmNmOWYwOGI5YzVmYjgiXSwiY3VydmUiOiJ7XCJjdXJ2ZVwiOlwiU0VDUDI1NksxXCJ9Iiwia2V5SW1hZ2UiOiIwMjE5MWViOWYwNjM2YTViMWE4N2VkNjZjYzAwZDViM2ZmYTM1ZDRlMDRjNGIyMWM4ZTQ4ZGI5ODdhYmI2MDBiMTEiLCJsaW5rYWJpbGl0eUZsYWciOiJsaW5rYWJpbGl0eSBmbGFnIiwiZXZtV2l0bmVzc2VzIjpbXX0="

// TestVerifyB64Valid is scenario S3: the source-embedded base64 envelope
// must decode, parse, and verify to true.
func TestVerifyB64Valid(t *testing.T) {
	require.True(t, VerifyB64(validB64Envelope))
}

func TestVerifyB64MalformedBase64(t *testing.T) {
	require.False(t, VerifyB64("not valid base64!!"))
}

func TestVerifyB64MalformedJSON(t *testing.T) {
	bad := base64.StdEncoding.EncodeToString([]byte("{not json"))
	require.False(t, VerifyB64(bad))
}

func TestVerifyB64BadField(t *testing.T) {
	bad := base64.StdEncoding.EncodeToString([]byte(
		`{"message":"m","ring":["zz"],"c":"00","responses":["00"],"keyImage":"00","linkabilityFlag":""}`))
	require.False(t, VerifyB64(bad))
}

// TestVerifyB64LengthMismatchFaults covers the S6 scenario through the
// envelope front end: a well-formed envelope whose ring and responses
// have different lengths is not a decoding error, so it must not be
// swallowed into a plain false. It is a structural fault out of
// VerifyLSAG itself, which VerifyB64 lets through.
func TestVerifyB64LengthMismatchFaults(t *testing.T) {
	g := validRingHex()
	bad := base64.StdEncoding.EncodeToString([]byte(
		`{"message":"m","ring":["` + g[0] + `","` + g[1] + `"],"c":"` +
			validScalarHex() + `","responses":["` + validScalarHex() + `"],"keyImage":"` +
			g[0] + `","linkabilityFlag":""}`))

	require.Panics(t, func() {
		VerifyB64(bad)
	})
}

func validRingHex() []string {
	return []string{
		"0208f4f37e2d8f74e18c1b8fde2374d5f28402fb8ab7fd1cc5b786aa40851a70cb",
		"0316d7da70ba247a6a40bb310187e8789b80c45fa6dc0061abb8ced49cbe7f887f",
	}
}

func validScalarHex() string {
	return "86379b43861e950b5fa4b7571aff0c6004578e71280aaedb993833c9bde63c43"
}
