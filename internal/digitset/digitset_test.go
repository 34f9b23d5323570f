// Copyright (c) 2026 CStanKonrad
// SPDX-License-Identifier: MIT

package digitset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIndexOf(t *testing.T) {
	require.Equal(t, 0, IndexOf('0'))
	require.Equal(t, 9, IndexOf('9'))
	require.Equal(t, 10, IndexOf(':'))
	require.Equal(t, 11, IndexOf(';'))
	require.Equal(t, -1, IndexOf('a'))
	require.Equal(t, -1, IndexOf(' '))
}

func TestDigitRoundTrip(t *testing.T) {
	for i := 0; i < Size; i++ {
		require.Equal(t, i, IndexOf(Digit(i)))
	}
}

func TestIsNumber(t *testing.T) {
	require.True(t, IsNumber("123:;0"))
	require.False(t, IsNumber(""))
	require.False(t, IsNumber("12a"))
	require.False(t, IsNumber("1 2"))
}

func TestMaskOf(t *testing.T) {
	m := MaskOf("abc012")
	require.True(t, m.Test(0))
	require.True(t, m.Test(1))
	require.True(t, m.Test(2))
	require.False(t, m.Test(3))
	require.Equal(t, 3, m.Count())
}

func TestMaskSubsetOf(t *testing.T) {
	m := MaskOf("012")
	require.True(t, m.SubsetOf(MaskOf("0123456789")))
	require.False(t, m.SubsetOf(MaskOf("01")))
}

func TestFull(t *testing.T) {
	require.Equal(t, Size, Full.Count())
}
