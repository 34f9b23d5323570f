// Copyright (c) 2026 CStanKonrad
// SPDX-License-Identifier: MIT

package phfwd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSimpleRedirect(t *testing.T) {
	fb := New()
	require.NoError(t, fb.Add("2", "0"))
	require.Equal(t, Numbers{"0"}, fb.Get("2"))
	require.Equal(t, Numbers{"022"}, fb.Get("222"))
	require.Equal(t, Numbers{"0", "2"}, fb.Reverse("0"))
}

func TestLongestPrefixWins(t *testing.T) {
	fb := New()
	require.NoError(t, fb.Add("2", "0"))
	require.NoError(t, fb.Add("22", "1"))
	require.Equal(t, Numbers{"122"}, fb.Get("2222"))
}

func TestOverwriteReplacesPriorRule(t *testing.T) {
	fb := New()
	require.NoError(t, fb.Add("2", "0"))
	require.NoError(t, fb.Add("2", "9"))
	require.Equal(t, Numbers{"9"}, fb.Get("2"))
	require.NotContains(t, fb.Reverse("0"), "2")
}

func TestReverseFanIn(t *testing.T) {
	fb := New()
	require.NoError(t, fb.Add("1", "7"))
	require.NoError(t, fb.Add("12", "7"))
	require.NoError(t, fb.Add("123", "7"))
	require.Equal(t, Numbers{"1", "12", "123", "7"}, fb.Reverse("7"))
}

func TestSubtreeRemoval(t *testing.T) {
	fb := New()
	require.NoError(t, fb.Add("12", "5"))
	require.NoError(t, fb.Add("123", "6"))
	require.NoError(t, fb.Add("1234", "7"))
	fb.Remove("12")

	require.Equal(t, Numbers{"5"}, fb.Reverse("5"))
	require.Equal(t, Numbers{"6"}, fb.Reverse("6"))
}

func TestNonTrivialCountEmptyBaseLengthZero(t *testing.T) {
	fb := New()
	require.Equal(t, uint(1), fb.NonTrivialCount("012345678901", 0))
}

func TestNonTrivialCountOneRule(t *testing.T) {
	fb := New()
	require.NoError(t, fb.Add("0", "5"))
	require.Equal(t, uint(1), fb.NonTrivialCount("0123456789", 1))
}

func TestIdentityWhenNoRuleApplies(t *testing.T) {
	fb := New()
	require.Equal(t, Numbers{"999"}, fb.Get("999"))
	require.Contains(t, fb.Reverse("999"), "999")
}

func TestRemoveIsIdempotentAndSilentOnAbsentRule(t *testing.T) {
	fb := New()
	require.NoError(t, fb.Add("2", "0"))
	fb.Remove("2")
	require.NotPanics(t, func() { fb.Remove("2") })
	require.Equal(t, Numbers{"2"}, fb.Get("2"))
}

func TestGetAndAddRejectInvalidArguments(t *testing.T) {
	fb := New()
	require.ErrorIs(t, fb.Add("", "1"), ErrInvalidArgument)
	require.ErrorIs(t, fb.Add("1", "1"), ErrInvalidArgument)
	require.ErrorIs(t, fb.Add("1a", "2"), ErrInvalidArgument)
	require.Equal(t, Numbers{}, fb.Get(""))
	require.Equal(t, Numbers{}, fb.Reverse("x1"))
}
