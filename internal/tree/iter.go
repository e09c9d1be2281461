// Copyright 2026 The Scapegoat Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package tree

// Iter is a read-only, in-order (ascending key) traversal over a Tree. It
// walks the pointer structure directly via an ancestor stack — no arena
// mutation, no extra storage beyond the stack itself.
type Iter[K any, V any, Ix Index] struct {
	arena    *Arena[K, V, Ix]
	stack    []int
	total    int
	consumed int
}

// NewIter builds an Iter starting at the tree's leftmost node.
func NewIter[K any, V any, Ix Index](t *Tree[K, V, Ix]) *Iter[K, V, Ix] {
	it := &Iter[K, V, Ix]{arena: t.arena, total: t.size}
	if rootIdx, ok := t.RootIdx(); ok {
		it.pushLeftSpine(rootIdx)
	}
	return it
}

func (it *Iter[K, V, Ix]) pushLeftSpine(idx int) {
	for {
		it.stack = append(it.stack, idx)
		node := it.arena.Node(idx)
		l, ok := node.Left()
		if !ok {
			return
		}
		idx = l
	}
}

// Next returns the next key/value pair in ascending order, or false once
// exhausted.
func (it *Iter[K, V, Ix]) Next() (K, *V, bool) {
	n := len(it.stack)
	if n == 0 {
		var zero K
		return zero, nil, false
	}
	idx := it.stack[n-1]
	it.stack = it.stack[:n-1]
	node := it.arena.Node(idx)
	if r, ok := node.Right(); ok {
		it.pushLeftSpine(r)
	}
	it.consumed++
	return node.Key, &node.Val, true
}

// Len reports the number of pairs not yet visited, matching Rust's
// ExactSizeIterator contract for this traversal.
func (it *Iter[K, V, Ix]) Len() int { return it.total - it.consumed }

// IterMut is Iter's mutable counterpart. The tree must first be physically
// reordered so ascending key order matches ascending slot order (Tree.
// SortArena does this once, up front); after that a flat scan of occupied
// slots in slot order IS the in-order traversal, and no ancestor stack is
// needed at all.
type IterMut[K any, V any, Ix Index] struct {
	arena *Arena[K, V, Ix]
	next  int
	total int
	seen  int
}

// NewIterMut sorts t's arena in place (see Tree.SortArena) and returns an
// iterator over the now slot-ordered occupied nodes.
func NewIterMut[K any, V any, Ix Index](t *Tree[K, V, Ix]) *IterMut[K, V, Ix] {
	t.SortArena()
	return &IterMut[K, V, Ix]{arena: t.arena, total: t.size}
}

// Next returns the next key/value pair in slot (== ascending key) order.
func (it *IterMut[K, V, Ix]) Next() (K, *V, bool) {
	for it.next < it.arena.Len() {
		idx := it.next
		it.next++
		if !it.arena.IsOccupied(idx) {
			continue
		}
		node := it.arena.Node(idx)
		it.seen++
		return node.Key, &node.Val, true
	}
	var zero K
	return zero, nil, false
}

// Len reports the number of pairs not yet visited.
func (it *IterMut[K, V, Ix]) Len() int { return it.total - it.seen }

// IntoIter consumes a Tree in ascending key order. It is built once from a
// full flatten-and-sort (the same primitive Tree.rebuild uses), then
// reversed so that each Next can simply pop the slice's tail in O(1) instead
// of shifting off the front.
type IntoIter[K any, V any, Ix Index] struct {
	tree    *Tree[K, V, Ix]
	reverse []int // descending; Next pops from the tail, so yields ascending
}

// NewIntoIter builds an IntoIter that will drain t completely.
func NewIntoIter[K any, V any, Ix Index](t *Tree[K, V, Ix]) *IntoIter[K, V, Ix] {
	sorted := t.FlattenSorted()
	reverse := make([]int, len(sorted))
	for i, idx := range sorted {
		reverse[len(sorted)-1-i] = idx
	}
	return &IntoIter[K, V, Ix]{tree: t, reverse: reverse}
}

// Next removes and returns the current minimum-key pair, or false once the
// tree is fully drained.
func (it *IntoIter[K, V, Ix]) Next() (K, V, bool) {
	n := len(it.reverse)
	if n == 0 {
		var zk K
		var zv V
		return zk, zv, false
	}
	idx := it.reverse[n-1]
	it.reverse = it.reverse[:n-1]
	return it.tree.RemoveByIdx(idx)
}

// Len reports the number of pairs not yet drained.
func (it *IntoIter[K, V, Ix]) Len() int { return len(it.reverse) }
