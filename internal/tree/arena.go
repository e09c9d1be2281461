// Copyright 2026 The Scapegoat Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package tree

import "fmt"

// ErrCapacityExceeded reports that an Arena has no free slot and no unused
// tail space left to satisfy an Add.
type ErrCapacityExceeded struct {
	Capacity int
}

func (e *ErrCapacityExceeded) Error() string {
	return fmt.Sprintf("tree: arena capacity (%d) exceeded", e.Capacity)
}

// Arena is a fixed-capacity slot array plus a LIFO free list. It replaces a
// pointer graph with integer indices: nodes never point at each other
// directly, only at slot numbers within this arena.
type Arena[K any, V any, Ix Index] struct {
	slots    []Node[K, V, Ix]
	occupied []bool
	free     []int // LIFO: last freed, first reused
	length   int   // number of slots ever appended (occupied or on the free list)
	capacity int
}

// NewArena builds an empty arena with room for exactly capacity nodes.
// capacity must not exceed MaxCapacity[Ix](); callers validate that at the
// Tree layer, where it becomes a MaximumCapacityExceeded error instead of a
// panic.
func NewArena[K any, V any, Ix Index](capacity int) *Arena[K, V, Ix] {
	return &Arena[K, V, Ix]{
		slots:    make([]Node[K, V, Ix], capacity),
		occupied: make([]bool, capacity),
		free:     make([]int, 0, capacity),
		capacity: capacity,
	}
}

// Add claims a slot for (key, val), preferring the most recently freed slot
// (LIFO reuse keeps recently-vacated storage warm and bounds fragmentation),
// falling back to unused tail space. Returns ErrCapacityExceeded if neither
// is available.
func (a *Arena[K, V, Ix]) Add(key K, val V) (int, error) {
	if n := len(a.free); n > 0 {
		idx := a.free[n-1]
		a.free = a.free[:n-1]
		a.slots[idx] = newNode[K, V, Ix](key, val)
		a.occupied[idx] = true
		return idx, nil
	}
	if a.length >= a.capacity {
		return 0, &ErrCapacityExceeded{Capacity: a.capacity}
	}
	idx := a.length
	a.length++
	a.slots[idx] = newNode[K, V, Ix](key, val)
	a.occupied[idx] = true
	return idx, nil
}

// Remove extracts and returns the node at idx, freeing its slot for reuse.
// Reports false if idx was not occupied.
func (a *Arena[K, V, Ix]) Remove(idx int) (Node[K, V, Ix], bool) {
	if !a.IsOccupied(idx) {
		return Node[K, V, Ix]{}, false
	}
	node := a.slots[idx]
	var zero Node[K, V, Ix]
	a.slots[idx] = zero
	a.occupied[idx] = false
	a.free = append(a.free, idx)
	return node, true
}

// Node returns a pointer into arena storage for idx. idx must be occupied;
// callers that are unsure should check IsOccupied first.
func (a *Arena[K, V, Ix]) Node(idx int) *Node[K, V, Ix] { return &a.slots[idx] }

// IsOccupied reports whether idx currently holds a live node.
func (a *Arena[K, V, Ix]) IsOccupied(idx int) bool {
	return idx >= 0 && idx < a.length && a.occupied[idx]
}

// Len returns the number of slots ever appended (the high-water mark of
// physical arena usage, not the live node count).
func (a *Arena[K, V, Ix]) Len() int { return a.length }

// Capacity returns the fixed maximum slot count.
func (a *Arena[K, V, Ix]) Capacity() int { return a.capacity }

// FreeListLen returns the number of slots currently on the free list.
func (a *Arena[K, V, Ix]) FreeListLen() int { return len(a.free) }

// Each calls fn for every occupied slot index, in physical (not logical)
// order. Used by Tree.sortArena's metadata collection pass.
func (a *Arena[K, V, Ix]) Each(fn func(idx int)) {
	for i := 0; i < a.length; i++ {
		if a.occupied[i] {
			fn(i)
		}
	}
}

// Sort physically permutes arena slots to match the order described by
// meta (logical index i must end up holding the node meta[i] describes),
// rewrites every reachable node's child links to the post-permutation
// indices, and reports rootIdx's new location.
//
// meta must describe every reachable node exactly once, in the desired
// final (ascending key) order. This is the one routine that moves node
// *storage* rather than just rewiring indices — everything else in the
// tree (including rebuild) only ever changes which slot a child index
// names, never which slot a node physically occupies.
func (a *Arena[K, V, Ix]) Sort(rootIdx int, meta []GetHelper) int {
	hist := newSwapHistory()

	for sortedIdx, ngh := range meta {
		origNode, _ := ngh.NodeIdx()
		currIdx := hist.currIdx(origNode)
		if currIdx == sortedIdx {
			continue
		}
		a.slots[currIdx], a.slots[sortedIdx] = a.slots[sortedIdx], a.slots[currIdx]
		a.occupied[currIdx], a.occupied[sortedIdx] = a.occupied[sortedIdx], a.occupied[currIdx]
		hist.add(currIdx, sortedIdx)

		// Any free-list entry that named the slot we just vacated now
		// names wherever that content physically landed.
		for i, f := range a.free {
			if f == sortedIdx {
				a.free[i] = currIdx
			}
		}
	}

	for _, ngh := range meta {
		parentIdx, hasParent := ngh.ParentIdx()
		if !hasParent {
			continue
		}
		currParent := hist.currIdx(parentIdx)
		nodeIdx, _ := ngh.NodeIdx()
		currChild := hist.currIdx(nodeIdx)
		parent := &a.slots[currParent]
		if ngh.IsRightChild() {
			parent.SetRight(currChild, true)
		} else {
			parent.SetLeft(currChild, true)
		}
	}

	return hist.currIdx(rootIdx)
}
