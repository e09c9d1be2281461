// Copyright 2026 The Scapegoat Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package scapegoat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scapegoat-go/scapegoat"
)

func buildSet(t *testing.T, keys ...int) *scapegoat.Set[int, uint16] {
	t.Helper()
	s, err := scapegoat.NewSet[int, uint16](64)
	require.NoError(t, err)
	for _, k := range keys {
		_, err := s.Insert(k)
		require.NoError(t, err)
	}
	return s
}

func TestSetInsertContainsRemove(t *testing.T) {
	t.Parallel()

	s := buildSet(t, 1, 2, 3)
	assert.True(t, s.Contains(2))
	assert.False(t, s.Contains(42))

	inserted, err := s.Insert(2)
	require.NoError(t, err)
	assert.False(t, inserted, "re-inserting an existing member should report false")

	removed := s.Remove(2)
	assert.True(t, removed)
	assert.False(t, s.Contains(2))
}

func collect(it func(yield func(int) bool)) []int {
	var out []int
	it(func(k int) bool {
		out = append(out, k)
		return true
	})
	return out
}

func TestSetAlgebra(t *testing.T) {
	t.Parallel()

	a := buildSet(t, 1, 2, 3, 4)
	b := buildSet(t, 3, 4, 5, 6)

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, collect(scapegoat.Union(a, b)))
	assert.Equal(t, []int{3, 4}, collect(scapegoat.Intersection(a, b)))
	assert.Equal(t, []int{1, 2}, collect(scapegoat.Difference(a, b)))
	assert.Equal(t, []int{1, 2, 5, 6}, collect(scapegoat.SymmetricDifference(a, b)))

	assert.False(t, scapegoat.IsDisjoint(a, b))
	assert.False(t, scapegoat.IsSubset(a, b))

	c := buildSet(t, 3, 4)
	assert.True(t, scapegoat.IsSubset(c, a))
}

func TestSetFirstLastPop(t *testing.T) {
	t.Parallel()

	s := buildSet(t, 5, 1, 9, 3)

	first, ok := s.First()
	require.True(t, ok)
	assert.Equal(t, 1, first)

	last, ok := s.Last()
	require.True(t, ok)
	assert.Equal(t, 9, last)

	popped, ok := s.PopFirst()
	require.True(t, ok)
	assert.Equal(t, 1, popped)
	assert.Equal(t, 3, s.Len())
}
