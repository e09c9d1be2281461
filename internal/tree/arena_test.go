// Copyright 2026 The Scapegoat Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package tree

import "testing"

func TestArenaAddRemoveReuse(t *testing.T) {
	a := NewArena[string, int, uint8](4)

	idx0, err := a.Add("a", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	idx1, err := a.Add("b", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Len() != 2 {
		t.Fatalf("expected length 2, got %d", a.Len())
	}

	removed, ok := a.Remove(idx0)
	if !ok || removed.Key != "a" {
		t.Fatalf("expected to remove key 'a', got %+v ok=%v", removed, ok)
	}
	if a.IsOccupied(idx0) {
		t.Fatalf("slot %d should be free after remove", idx0)
	}

	reused, err := a.Add("c", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reused != idx0 {
		t.Fatalf("expected LIFO reuse of slot %d, got %d", idx0, reused)
	}

	if !a.IsOccupied(idx1) {
		t.Fatalf("slot %d should still be occupied", idx1)
	}
}

func TestArenaCapacityExceeded(t *testing.T) {
	a := NewArena[int, int, uint8](2)
	if _, err := a.Add(1, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := a.Add(2, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := a.Add(3, 3); err == nil {
		t.Fatalf("expected capacity exceeded error")
	}
}

func TestArenaSortReindexesChildren(t *testing.T) {
	a := NewArena[int, int, uint8](3)

	rootIdx, _ := a.Add(2, 0)
	leftIdx, _ := a.Add(1, 0)
	rightIdx, _ := a.Add(3, 0)
	a.Node(rootIdx).SetLeft(leftIdx, true)
	a.Node(rootIdx).SetRight(rightIdx, true)

	meta := []GetHelper{
		NewGetHelper(leftIdx, true, rootIdx, true, false),
		NewGetHelper(rootIdx, true, 0, false, false),
		NewGetHelper(rightIdx, true, rootIdx, true, true),
	}

	newRoot := a.Sort(rootIdx, meta)
	if newRoot != 1 {
		t.Fatalf("expected sorted root at slot 1, got %d", newRoot)
	}
	if a.Node(0).Key != 1 || a.Node(1).Key != 2 || a.Node(2).Key != 3 {
		t.Fatalf("arena not physically sorted: %d %d %d", a.Node(0).Key, a.Node(1).Key, a.Node(2).Key)
	}

	root := a.Node(newRoot)
	l, hasL := root.Left()
	r, hasR := root.Right()
	if !hasL || l != 0 {
		t.Fatalf("expected left child at slot 0, got %d ok=%v", l, hasL)
	}
	if !hasR || r != 2 {
		t.Fatalf("expected right child at slot 2, got %d ok=%v", r, hasR)
	}
}
