// Copyright 2026 The Scapegoat Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package tree

import "testing"

func buildTestTree(t *testing.T, keys []int) *Tree[int, int, uint16] {
	t.Helper()
	tr, err := New[int, int, uint16](256)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, k := range keys {
		if _, _, err := tr.Insert(k, k*10); err != nil {
			t.Fatalf("insert %d: %v", k, err)
		}
	}
	return tr
}

func TestIterAscendingOrder(t *testing.T) {
	tr := buildTestTree(t, []int{5, 3, 8, 1, 4, 7, 9})

	it := NewIter(tr)
	if it.Len() != 7 {
		t.Fatalf("expected Len 7, got %d", it.Len())
	}

	var got []int
	for {
		k, v, ok := it.Next()
		if !ok {
			break
		}
		if *v != k*10 {
			t.Fatalf("value mismatch for key %d: got %d", k, *v)
		}
		got = append(got, k)
	}

	want := []int{1, 3, 4, 5, 7, 8, 9}
	if len(got) != len(want) {
		t.Fatalf("expected %d keys, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("at position %d: expected %d, got %d", i, want[i], got[i])
		}
	}
	if it.Len() != 0 {
		t.Fatalf("expected Len 0 after full traversal, got %d", it.Len())
	}
}

func TestIterMutAllowsInPlaceUpdate(t *testing.T) {
	tr := buildTestTree(t, []int{5, 3, 8, 1, 4})

	it := NewIterMut(tr)
	for {
		_, v, ok := it.Next()
		if !ok {
			break
		}
		*v = *v + 1
	}

	for _, k := range []int{5, 3, 8, 1, 4} {
		_, v, ok := tr.Get(k)
		if !ok {
			t.Fatalf("key %d missing after IterMut", k)
		}
		if *v != k*10+1 {
			t.Fatalf("key %d: expected updated value %d, got %d", k, k*10+1, *v)
		}
	}
}

func TestIntoIterDrainsAscending(t *testing.T) {
	tr := buildTestTree(t, []int{5, 3, 8, 1, 4})

	it := NewIntoIter(tr)
	if it.Len() != 5 {
		t.Fatalf("expected Len 5, got %d", it.Len())
	}

	var got []int
	for {
		k, _, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, k)
	}

	want := []int{1, 3, 4, 5, 8}
	if len(got) != len(want) {
		t.Fatalf("expected %d keys, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("at position %d: expected %d, got %d", i, want[i], got[i])
		}
	}
	if tr.Len() != 0 {
		t.Fatalf("expected tree fully drained, got len %d", tr.Len())
	}
}
