// Copyright (c) 2023 Yawning Angel
// SPDX-License-Identifier: BSD-3-Clause

package secp256k1

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPointRoundTrip(t *testing.T) {
	g := NewGeneratorPoint()
	hexStr := g.HexString()
	require.Len(t, hexStr, CompressedHexSize)
	require.True(t, hexStr[:2] == "02" || hexStr[:2] == "03")

	p, err := PointFromHex(hexStr)
	require.NoError(t, err)
	require.True(t, g.Equal(p))

	two, err := ScalarFromHex("02")
	require.NoError(t, err)
	doubled := g.ScalarMult(two)
	require.False(t, doubled.Equal(g))
}

func TestPointFromHexErrors(t *testing.T) {
	t.Run("BadLength", func(t *testing.T) {
		_, err := PointFromHex("02" + "00")
		require.Error(t, err)
		require.ErrorIs(t, err, ErrBadLength)
	})

	t.Run("InvalidHex", func(t *testing.T) {
		bad := "zz" + string(make([]byte, 64))
		_, err := PointFromHex(bad)
		require.Error(t, err)
	})

	t.Run("NotOnCurve", func(t *testing.T) {
		// Valid prefix, all-zero x is not on the curve.
		allZero := "02" + "0000000000000000000000000000000000000000000000000000000000000000"[:64]
		_, err := PointFromHex(allZero)
		require.Error(t, err)
		require.ErrorIs(t, err, ErrNotOnCurve)
	})
}

func TestHashToCurveNeverIdentity(t *testing.T) {
	msgs := [][]byte{
		[]byte(""),
		[]byte("message"),
		[]byte("02abababababababababababababababababababababababababababababablinkability flag"),
	}
	for i, m := range msgs {
		p := HashToCurve(m)
		require.False(t, p.IsIdentity(), "[%d]", i)
	}
}
