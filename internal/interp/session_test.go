// Copyright (c) 2026 CStanKonrad
// SPDX-License-Identifier: MIT

package interp

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func run(t *testing.T, input string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	s := New(strings.NewReader(input), &out, nil)
	err := s.Run()
	return out.String(), err
}

func TestSimpleRedirectScenario(t *testing.T) {
	out, err := run(t, "NEW A 2 > 0 2 ?")
	require.NoError(t, err)
	require.Equal(t, "0\n", out)
}

func TestReverseIncludesIdentity(t *testing.T) {
	out, err := run(t, "NEW A 2 > 0 ? 0")
	require.NoError(t, err)
	require.Equal(t, "0\n2\n", out)
}

func TestLongestPrefixWinsScenario(t *testing.T) {
	out, err := run(t, "NEW A 2 > 0 22 > 1 2222 ?")
	require.NoError(t, err)
	require.Equal(t, "122\n", out)
}

func TestSubtreeRemovalScenario(t *testing.T) {
	out, err := run(t, "NEW A 12 > 5 123 > 6 1234 > 7 DEL 12 ? 5 ? 6")
	require.NoError(t, err)
	require.Equal(t, "5\n6\n", out)
}

func TestCommentSurvivesTokens(t *testing.T) {
	out, err := run(t, "NEW$$c$$A $$ x $$ 1 > 2 1 ?")
	require.NoError(t, err)
	require.Equal(t, "2\n", out)
}

func TestUnterminatedCommentIsEOFError(t *testing.T) {
	_, err := run(t, "NEW A $$ unterminated")
	require.Error(t, err)
	require.Equal(t, "ERROR EOF", err.Error())
}

func TestOperationWithoutCurrentBaseReportsOperatorInfix(t *testing.T) {
	_, err := run(t, "1 ?")
	require.Error(t, err)
	require.Equal(t, "ERROR ? 1", err.Error())
}

func TestDelUnknownBaseReportsOperatorInfix(t *testing.T) {
	_, err := run(t, "DEL nosuchbase")
	require.Error(t, err)
	require.Equal(t, "ERROR DEL 5", err.Error())
}

func TestSelfRedirectIsInvalidArgument(t *testing.T) {
	_, err := run(t, "NEW A 1 > 1")
	require.Error(t, err)
	require.Equal(t, "ERROR > 7", err.Error())
}

func TestNonTrivialCountOnEmptyBaseUsesExcessLength(t *testing.T) {
	out, err := run(t, "NEW A @ 0123456789012345")
	require.NoError(t, err)
	require.Equal(t, "0\n", out)
}

func TestNewRejectsReservedWordAsIdentifier(t *testing.T) {
	_, err := run(t, "NEW NEW")
	require.Error(t, err)
	require.Equal(t, "ERROR 5", err.Error())
}
