// Copyright (c) 2026 CStanKonrad
// SPDX-License-Identifier: MIT

package dlist

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func collect[T any](l *List[T]) []T {
	var out []T
	for e := l.Front(); e != nil; e = e.Next() {
		out = append(out, e.Value)
	}
	return out
}

func TestPushBackFront(t *testing.T) {
	l := New[int]()
	l.PushBack(1)
	l.PushBack(2)
	l.PushFront(0)
	require.Equal(t, []int{0, 1, 2}, collect(l))
	require.Equal(t, 3, l.Len())
}

func TestEmptyList(t *testing.T) {
	l := New[int]()
	require.Equal(t, 0, l.Len())
	require.Nil(t, l.Front())
	require.Nil(t, l.Back())
}

func TestRemove(t *testing.T) {
	l := New[string]()
	l.PushBack("a")
	mid := l.PushBack("b")
	l.PushBack("c")
	l.Remove(mid)
	require.Equal(t, []string{"a", "c"}, collect(l))
	require.Equal(t, 2, l.Len())
}

func TestRemoveOnlyElement(t *testing.T) {
	l := New[int]()
	e := l.PushBack(42)
	l.Remove(e)
	require.True(t, l.Len() == 0)
	require.Nil(t, l.Front())
	require.Nil(t, l.Back())
}

func TestPrevNext(t *testing.T) {
	l := New[int]()
	l.PushBack(1)
	l.PushBack(2)
	l.PushBack(3)

	mid := l.Front().Next()
	require.Equal(t, 2, mid.Value)
	require.Equal(t, 1, mid.Prev().Value)
	require.Equal(t, 3, mid.Next().Value)
	require.Nil(t, l.Back().Next())
	require.Nil(t, l.Front().Prev())
}

func TestJoin(t *testing.T) {
	a := New[int]()
	a.PushBack(1)
	a.PushBack(2)

	b := New[int]()
	b.PushBack(3)
	b.PushBack(4)

	a.Join(b)
	require.Equal(t, []int{1, 2, 3, 4}, collect(a))
	require.Equal(t, 4, a.Len())
	require.Equal(t, 0, b.Len())
	require.Nil(t, b.Front())
}

func TestJoinOntoEmpty(t *testing.T) {
	a := New[int]()
	b := New[int]()
	b.PushBack(1)
	b.PushBack(2)

	a.Join(b)
	require.Equal(t, []int{1, 2}, collect(a))
	require.Equal(t, 0, b.Len())
}

func TestJoinEmptyOther(t *testing.T) {
	a := New[int]()
	a.PushBack(1)
	b := New[int]()

	a.Join(b)
	require.Equal(t, []int{1}, collect(a))
	require.Equal(t, 1, a.Len())
}

func TestJoinThenContinueMutating(t *testing.T) {
	a := New[int]()
	a.PushBack(1)
	b := New[int]()
	b.PushBack(2)
	b.PushBack(3)

	a.Join(b)
	a.PushBack(4)
	require.Equal(t, []int{1, 2, 3, 4}, collect(a))

	last := a.Back()
	require.Equal(t, 4, last.Value)
	require.Nil(t, last.Next())
}
