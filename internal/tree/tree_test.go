// Copyright 2026 The Scapegoat Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package tree

import "testing"

func TestTreeInsertGetRemove(t *testing.T) {
	tr, err := New[int, string, uint16](16)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, k := range []int{5, 3, 8, 1, 4, 7, 9} {
		if _, _, err := tr.Insert(k, "v"); err != nil {
			t.Fatalf("insert %d: %v", k, err)
		}
	}
	if tr.Len() != 7 {
		t.Fatalf("expected len 7, got %d", tr.Len())
	}

	if _, v, ok := tr.Get(8); !ok || v == nil {
		t.Fatalf("expected key 8 present")
	}
	if _, _, ok := tr.Get(42); ok {
		t.Fatalf("expected key 42 absent")
	}

	if _, ok := tr.Remove(8); !ok {
		t.Fatalf("expected remove of 8 to succeed")
	}
	if tr.Len() != 6 {
		t.Fatalf("expected len 6 after remove, got %d", tr.Len())
	}
	if tr.ContainsKey(8) {
		t.Fatalf("key 8 should be gone")
	}
}

func TestTreeInsertOverwriteReturnsOldValue(t *testing.T) {
	tr, _ := New[int, string, uint8](8)
	if _, _, err := tr.Insert(1, "first"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	old, hadOld, err := tr.Insert(1, "second")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !hadOld || old != "first" {
		t.Fatalf("expected old value 'first', got %q hadOld=%v", old, hadOld)
	}
	if tr.Len() != 1 {
		t.Fatalf("overwrite should not change size, got %d", tr.Len())
	}
}

func TestTreeCapacityExceeded(t *testing.T) {
	tr, _ := New[int, int, uint8](2)
	if _, _, err := tr.Insert(1, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, _, err := tr.Insert(2, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, _, err := tr.Insert(3, 3); err == nil {
		t.Fatalf("expected capacity error inserting third key")
	}
}

// TestTreeRemoveTwoChildren exercises the corrected min_idx/min_parent_idx
// removal ordering against a two-children node whose in-order successor
// sits more than one left-step into the right subtree, with that successor
// itself holding a right child — exactly the shape a stale min_parent_idx
// would silently drop a subtree under.
func TestTreeRemoveTwoChildren(t *testing.T) {
	tr, _ := New[int, int, uint8](32)

	for _, k := range []int{10, 5, 20, 15, 25, 12, 18, 13} {
		if _, _, err := tr.Insert(k, k); err != nil {
			t.Fatalf("insert %d: %v", k, err)
		}
	}

	if _, ok := tr.Remove(10); !ok {
		t.Fatalf("expected removal of 10 to succeed")
	}
	if tr.ContainsKey(10) {
		t.Fatalf("key 10 should be gone")
	}
	for _, k := range []int{5, 20, 15, 25, 12, 18, 13} {
		if !tr.ContainsKey(k) {
			t.Fatalf("key %d lost during two-children removal", k)
		}
	}

	// In-order traversal must still be strictly ascending; a dropped
	// subtree would either shrink the count or break ordering.
	prevSet := false
	var prev int
	count := 0
	it := NewIter(tr)
	for {
		k, _, ok := it.Next()
		if !ok {
			break
		}
		count++
		if prevSet && prev >= k {
			t.Fatalf("traversal out of order: %d then %d", prev, k)
		}
		prev, prevSet = k, true
	}
	if count != 7 {
		t.Fatalf("expected 7 remaining keys, traversal saw %d", count)
	}
}

func TestTreeRebuildOnInsertKeepsAllKeys(t *testing.T) {
	tr, _ := New[int, int, uint16](256)
	// Ascending insert is the worst case for an unbalanced BST and forces
	// repeated scapegoat rebuilds.
	for i := 0; i < 200; i++ {
		if _, _, err := tr.Insert(i, i); err != nil {
			t.Fatalf("insert %d: %v", i, err)
		}
	}
	if tr.Len() != 200 {
		t.Fatalf("expected 200 keys, got %d", tr.Len())
	}
	for i := 0; i < 200; i++ {
		if !tr.ContainsKey(i) {
			t.Fatalf("key %d missing after rebuilds", i)
		}
	}
	if tr.RebalCount() == 0 {
		t.Fatalf("expected at least one rebuild from ascending insert pattern")
	}
}

func TestTreeGlobalRebuildOnDeletion(t *testing.T) {
	tr, _ := New[int, int, uint16](256)
	for i := 0; i < 100; i++ {
		if _, _, err := tr.Insert(i, i); err != nil {
			t.Fatalf("insert %d: %v", i, err)
		}
	}
	before := tr.RebalCount()
	for i := 0; i < 90; i++ {
		if _, ok := tr.Remove(i); !ok {
			t.Fatalf("expected remove of %d to succeed", i)
		}
	}
	if tr.RebalCount() <= before {
		t.Fatalf("expected deletion-triggered global rebuild, rebal count unchanged at %d", tr.RebalCount())
	}
	for i := 90; i < 100; i++ {
		if !tr.ContainsKey(i) {
			t.Fatalf("key %d lost during global rebuild", i)
		}
	}
}

func TestTreeFirstLastPopFirstPopLast(t *testing.T) {
	tr, _ := New[int, string, uint8](16)
	for _, k := range []int{5, 1, 9, 3, 7} {
		tr.Insert(k, "v")
	}

	if k, _, ok := tr.FirstKeyValue(); !ok || k != 1 {
		t.Fatalf("expected first key 1, got %d ok=%v", k, ok)
	}
	if k, _, ok := tr.LastKeyValue(); !ok || k != 9 {
		t.Fatalf("expected last key 9, got %d ok=%v", k, ok)
	}

	if k, _, ok := tr.PopFirst(); !ok || k != 1 {
		t.Fatalf("expected pop_first 1, got %d ok=%v", k, ok)
	}
	if k, _, ok := tr.PopLast(); !ok || k != 9 {
		t.Fatalf("expected pop_last 9, got %d ok=%v", k, ok)
	}
	if tr.Len() != 3 {
		t.Fatalf("expected 3 keys remaining, got %d", tr.Len())
	}
}

func TestTreeSetRebalParamValidation(t *testing.T) {
	tr, _ := New[int, int, uint8](8)
	if err := tr.SetRebalParam(2, 5); err == nil {
		t.Fatalf("expected alpha 0.4 to be rejected (below [0.5, 1.0))")
	}
	if err := tr.SetRebalParam(1, 2); err != nil {
		t.Fatalf("expected alpha 0.5 to be accepted (inclusive lower bound): %v", err)
	}
	if err := tr.SetRebalParam(3, 4); err != nil {
		t.Fatalf("expected alpha 0.75 to be accepted: %v", err)
	}
	if err := tr.SetRebalParam(1, 1); err == nil {
		t.Fatalf("expected alpha 1.0 to be rejected (exclusive upper bound)")
	}
}

func TestTreeRetain(t *testing.T) {
	tr, _ := New[int, int, uint8](16)
	for i := 0; i < 10; i++ {
		tr.Insert(i, i)
	}
	tr.Retain(func(k, v int) bool { return k%2 == 0 })
	if tr.Len() != 5 {
		t.Fatalf("expected 5 even keys remaining, got %d", tr.Len())
	}
	for i := 0; i < 10; i++ {
		want := i%2 == 0
		if got := tr.ContainsKey(i); got != want {
			t.Fatalf("key %d: contains=%v want=%v", i, got, want)
		}
	}
}

func TestTreeSplitOff(t *testing.T) {
	tr, _ := New[int, int, uint8](16)
	for i := 0; i < 10; i++ {
		tr.Insert(i, i)
	}
	upper := tr.SplitOff(5)
	if tr.Len() != 5 || upper.Len() != 5 {
		t.Fatalf("expected 5/5 split, got %d/%d", tr.Len(), upper.Len())
	}
	for i := 0; i < 5; i++ {
		if !tr.ContainsKey(i) {
			t.Fatalf("lower half missing key %d", i)
		}
	}
	for i := 5; i < 10; i++ {
		if !upper.ContainsKey(i) {
			t.Fatalf("upper half missing key %d", i)
		}
	}
}
