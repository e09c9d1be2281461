// Copyright 2026 The Scapegoat Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package tree

import (
	"cmp"
	"math"
	"slices"
)

// Tree is a fixed-capacity, self-balancing ordered associative container: a
// scapegoat tree over an arena-allocated node pool. Node storage never
// grows after construction: all nodes live inside a single arena of
// capacity N. Lookups, rebuilds and iterators still allocate temporary
// slices (paths, worklists, sorted index lists) on the Go heap.
//
// Balance is weight-based (the scapegoat discipline), not height-based like
// a red-black or AVL tree: insertion rebuilds the first ancestor subtree
// found to violate alpha-weight-balance, and deletion triggers a global
// rebuild only once accumulated deletions have let "high water" drift too
// far above the live size. Both rebuilds are amortized O(log n); no single
// operation has a hard O(log n) worst case, per the scapegoat discipline.
type Tree[K cmp.Ordered, V any, Ix Index] struct {
	arena *Arena[K, V, Ix]

	root    int
	hasRoot bool

	minIdx, maxIdx int // valid only when hasRoot

	size      int
	highWater int

	alphaNum, alphaDenom float64

	rebalCount uint64
}

// defaultAlphaNum/defaultAlphaDenom give the classic scapegoat alpha = 2/3.
const (
	defaultAlphaNum   = 2.0
	defaultAlphaDenom = 3.0
)

// New constructs an empty tree with fixed capacity and default alpha (2/3).
// Fails with MaximumCapacityExceededError if capacity cannot be addressed
// by Ix (i.e. exceeds MaxCapacity[Ix]()).
func New[K cmp.Ordered, V any, Ix Index](capacity int) (*Tree[K, V, Ix], error) {
	if capacity < 0 || uint64(capacity) > MaxCapacity[Ix]() {
		return nil, &MaximumCapacityExceededError{Requested: capacity, Limit: MaxCapacity[Ix]()}
	}
	return &Tree[K, V, Ix]{
		arena:      NewArena[K, V, Ix](capacity),
		alphaNum:   defaultAlphaNum,
		alphaDenom: defaultAlphaDenom,
	}, nil
}

// Len returns the number of live key/value pairs.
func (t *Tree[K, V, Ix]) Len() int { return t.size }

// IsEmpty reports whether the tree holds no elements.
func (t *Tree[K, V, Ix]) IsEmpty() bool { return !t.hasRoot }

// Capacity returns the fixed maximum element count (N).
func (t *Tree[K, V, Ix]) Capacity() int { return t.arena.Capacity() }

// IsFull reports whether the tree is at capacity.
func (t *Tree[K, V, Ix]) IsFull() bool { return t.size == t.Capacity() }

// RebalCount returns the number of subtree rebuilds performed so far
// (wraps on overflow; diagnostic only).
func (t *Tree[K, V, Ix]) RebalCount() uint64 { return t.rebalCount }

// RebalParam returns the current (alphaNum, alphaDenom) balance factor.
func (t *Tree[K, V, Ix]) RebalParam() (float64, float64) { return t.alphaNum, t.alphaDenom }

// SetRebalParam validates and applies a new alpha = num/denom balance
// factor. Valid range is [0.5, 1.0); values outside it leave the tree
// unchanged and return RebalanceFactorOutOfRangeError.
func (t *Tree[K, V, Ix]) SetRebalParam(num, denom float64) error {
	alpha := num / denom
	if alpha < 0.5 || alpha >= 1.0 {
		return &RebalanceFactorOutOfRangeError{Num: num, Denom: denom}
	}
	t.alphaNum, t.alphaDenom = num, denom
	return nil
}

// Arena exposes the backing arena for iterator construction in sibling
// files (iter.go) and diagnostics (dump.go). Not part of the Tree's own
// public behavior.
func (t *Tree[K, V, Ix]) Arena() *Arena[K, V, Ix] { return t.arena }

// RootIdx reports the arena index of the tree root, if non-empty.
func (t *Tree[K, V, Ix]) RootIdx() (int, bool) { return t.root, t.hasRoot }

// MinIdx reports the arena index of the minimum-key node, if non-empty.
func (t *Tree[K, V, Ix]) MinIdx() (int, bool) { return t.minIdx, t.hasRoot }

// MaxIdx reports the arena index of the maximum-key node, if non-empty.
func (t *Tree[K, V, Ix]) MaxIdx() (int, bool) { return t.maxIdx, t.hasRoot }

// Get returns a pointer to the value stored at key, or nil if absent.
func (t *Tree[K, V, Ix]) Get(key K) (K, *V, bool) {
	ngh := t.get(nil, key)
	if idx, ok := ngh.NodeIdx(); ok {
		n := t.arena.Node(idx)
		return n.Key, &n.Val, true
	}
	var zero K
	return zero, nil, false
}

// ContainsKey reports whether key is present.
func (t *Tree[K, V, Ix]) ContainsKey(key K) bool {
	_, _, ok := t.Get(key)
	return ok
}

// FirstKeyValue returns the minimum key's key/value pair.
func (t *Tree[K, V, Ix]) FirstKeyValue() (K, *V, bool) {
	if !t.hasRoot {
		var zero K
		return zero, nil, false
	}
	n := t.arena.Node(t.minIdx)
	return n.Key, &n.Val, true
}

// LastKeyValue returns the maximum key's key/value pair.
func (t *Tree[K, V, Ix]) LastKeyValue() (K, *V, bool) {
	if !t.hasRoot {
		var zero K
		return zero, nil, false
	}
	n := t.arena.Node(t.maxIdx)
	return n.Key, &n.Val, true
}

// get is the key lookup primitive: Get, ContainsKey and the removal paths'
// descent are thin wrappers over it. insert walks the tree with its own
// descent, and FirstKeyValue/LastKeyValue read the cached min/max indices
// instead. When path is non-nil, every visited ancestor is
// recorded; on a hit the node itself is popped back off (path holds only
// strict ancestors), on a miss the path is cleared entirely.
func (t *Tree[K, V, Ix]) get(path *Path, key K) GetHelper {
	if !t.hasRoot {
		return NewGetHelper(0, false, 0, false, false)
	}

	currIdx := t.root
	parentIdx := 0
	hasParent := false
	isRight := false

	for {
		node := t.arena.Node(currIdx)
		if path != nil {
			path.Push(currIdx)
		}

		switch {
		case key < node.Key:
			left, ok := node.Left()
			if !ok {
				if path != nil {
					path.Clear()
				}
				return NewGetHelper(0, false, 0, false, false)
			}
			parentIdx, hasParent, isRight = currIdx, true, false
			currIdx = left

		case key > node.Key:
			right, ok := node.Right()
			if !ok {
				if path != nil {
					path.Clear()
				}
				return NewGetHelper(0, false, 0, false, false)
			}
			parentIdx, hasParent, isRight = currIdx, true, true
			currIdx = right

		default:
			if path != nil {
				path.Pop()
			}
			return NewGetHelper(currIdx, true, parentIdx, hasParent, isRight)
		}
	}
}

// Insert inserts or overwrites key with val, returning the previous value
// if key was already present. If key was present, both its key and value
// are overwritten in place (intentional: K may compare equal while differing
// in fields outside the order, e.g. case-insensitive keys), and no rebalance
// is needed since the shape is unchanged. Fails with
// StackCapacityExceededError if the tree is full and key is new.
func (t *Tree[K, V, Ix]) Insert(key K, val V) (V, bool, error) {
	path := NewPath(t.heightEstimate())
	oldVal, hadOld, ngh, err := t.insert(path, key, val)
	if err != nil {
		var zero V
		return zero, false, err
	}

	// An overwrite changes no shape: only a genuinely new leaf can have
	// pushed the tree out of alpha-balance.
	if !hadOld && path.Len() > t.alphaBalanceDepth(t.highWater) {
		if sgIdx, ok := t.findScapegoat(path); ok {
			t.rebuild(sgIdx)
		}
	}

	_ = ngh
	return oldVal, hadOld, nil
}

func (t *Tree[K, V, Ix]) heightEstimate() int {
	if t.highWater < 2 {
		return 4
	}
	return t.alphaBalanceDepth(t.highWater) + 4
}

// insert performs the sorted descent + new-leaf attach (or in-place
// overwrite) described in spec §4.3 steps 1-2. It never rebalances; that is
// the caller's (Insert's) job once the path length is known.
func (t *Tree[K, V, Ix]) insert(path *Path, key K, val V) (V, bool, GetHelper, error) {
	var zero V

	if !t.hasRoot {
		idx, err := t.arena.Add(key, val)
		if err != nil {
			return zero, false, GetHelper{}, &StackCapacityExceededError{Capacity: t.Capacity()}
		}
		t.root, t.hasRoot = idx, true
		t.minIdx, t.maxIdx = idx, idx
		t.size++
		t.highWater++
		return zero, false, NewGetHelper(idx, true, 0, false, false), nil
	}

	currIdx := t.root
	parentIdx, hasParent, isRight := 0, false, false
	for {
		path.Push(currIdx)
		node := t.arena.Node(currIdx)

		switch {
		case key < node.Key:
			left, ok := node.Left()
			if ok {
				parentIdx, hasParent, isRight = currIdx, true, false
				currIdx = left
				continue
			}

			newMin := key < t.arena.Node(t.minIdx).Key
			newIdx, err := t.arena.Add(key, val)
			if err != nil {
				return zero, false, GetHelper{}, &StackCapacityExceededError{Capacity: t.Capacity()}
			}
			if newMin {
				t.minIdx = newIdx
			}
			t.arena.Node(currIdx).SetLeft(newIdx, true)
			t.size++
			t.highWater++
			return zero, false, NewGetHelper(newIdx, true, currIdx, true, false), nil

		case key > node.Key:
			right, ok := node.Right()
			if ok {
				parentIdx, hasParent, isRight = currIdx, true, true
				currIdx = right
				continue
			}

			newMax := key > t.arena.Node(t.maxIdx).Key
			newIdx, err := t.arena.Add(key, val)
			if err != nil {
				return zero, false, GetHelper{}, &StackCapacityExceededError{Capacity: t.Capacity()}
			}
			if newMax {
				t.maxIdx = newIdx
			}
			t.arena.Node(currIdx).SetRight(newIdx, true)
			t.size++
			t.highWater++
			return zero, false, NewGetHelper(newIdx, true, currIdx, true, true), nil

		default:
			old := node.Val
			node.Key = key
			node.Val = val
			return old, true, NewGetHelper(currIdx, true, parentIdx, hasParent, isRight), nil
		}
	}
}

// RemoveEntry removes key, returning its stored key/value pair if present.
// Deletion triggers a full rebuild from the root when high_water has
// drifted past 2x the live size, resetting high_water to size afterward —
// this is what keeps deletion-heavy workloads amortized O(1) per op
// (spec §4.4 step 4, §9 "two rebuild triggers").
func (t *Tree[K, V, Ix]) RemoveEntry(key K) (K, V, bool) {
	path := NewPath(t.heightEstimate())
	ngh := t.get(path, key)
	k, v, removed := t.remove(path, ngh)
	if removed && t.highWater > 2*t.size {
		if rootIdx, ok := t.RootIdx(); ok {
			t.rebuild(rootIdx)
			t.highWater = t.size
		}
	}
	return k, v, removed
}

// Remove removes key, returning its value if present.
func (t *Tree[K, V, Ix]) Remove(key K) (V, bool) {
	_, v, ok := t.RemoveEntry(key)
	return v, ok
}

// RemoveByIdx removes the node at a known arena index (used by PopFirst,
// PopLast, Retain/SplitOff's drain-filter, and IntoIter). It re-derives the
// node's parentage via the same path-recording lookup every other removal
// uses — the index alone is not enough to unlink it.
func (t *Tree[K, V, Ix]) RemoveByIdx(idx int) (K, V, bool) {
	if !t.arena.IsOccupied(idx) {
		var zk K
		var zv V
		return zk, zv, false
	}
	return t.RemoveEntry(t.arena.Node(idx).Key)
}

// remove implements spec §4.4's case analysis. path is not read here;
// remove only needs ngh.
func (t *Tree[K, V, Ix]) remove(_ *Path, ngh GetHelper) (K, V, bool) {
	nodeIdx, ok := ngh.NodeIdx()
	if !ok {
		var zk K
		var zv V
		return zk, zv, false
	}

	toRemove := t.arena.Node(nodeIdx)
	leftIdx, hasLeft := toRemove.Left()
	rightIdx, hasRight := toRemove.Right()

	var newChild int
	hasNewChild := false

	switch {
	case !hasLeft && !hasRight:
		// No children: detach from parent; slot freed below.

	case hasLeft && !hasRight:
		newChild, hasNewChild = leftIdx, true

	case !hasLeft && hasRight:
		newChild, hasNewChild = rightIdx, true

	default:
		// Two children: in-order-successor re-link, not copy (spec §4.4
		// step 2, §9 "minimum-by-unlink"). Walk all the way left from the
		// right subtree to find the successor, unlink it from its own
		// parent (it has no left child by construction), then re-hang the
		// removed node's former children off it.
		minIdx := rightIdx
		minParentIdx := nodeIdx

		for {
			minNode := t.arena.Node(minIdx)
			lt, hasLt := minNode.Left()
			if !hasLt {
				break
			}
			// Corrected order (spec §9 open question): the parent pointer
			// must advance to the *current* min before min itself
			// advances, or a subtree gets silently dropped.
			minParentIdx = minIdx
			minIdx = lt
		}

		minNode := t.arena.Node(minIdx)
		minRight, minHasRight := minNode.Right()

		// What min_node's right edge should hold once min is promoted to
		// node_idx's position: ordinarily node_idx's own original right
		// subtree, unchanged. But when min is that right subtree's root
		// itself (no descent happened above), min's own right child takes
		// that slot instead — min can't point at itself.
		promotedRight, hasPromotedRight := rightIdx, true
		if minParentIdx == nodeIdx {
			promotedRight, hasPromotedRight = minRight, minHasRight
		} else {
			t.arena.Node(minParentIdx).SetLeft(minRight, minHasRight)
		}

		minNode.SetRight(promotedRight, hasPromotedRight)
		minNode.SetLeft(leftIdx, true)

		newChild, hasNewChild = minIdx, true
	}

	if parentIdx, hasParent := ngh.ParentIdx(); hasParent {
		parent := t.arena.Node(parentIdx)
		if ngh.IsRightChild() {
			parent.SetRight(newChild, hasNewChild)
		} else {
			parent.SetLeft(newChild, hasNewChild)
		}
	} else {
		t.root, t.hasRoot = newChild, hasNewChild
	}

	removed, _ := t.arena.Remove(nodeIdx)
	t.size--

	if nodeIdx == t.minIdx {
		t.updateMinIdx()
	} else if nodeIdx == t.maxIdx {
		t.updateMaxIdx()
	}

	return removed.Key, removed.Val, true
}

func (t *Tree[K, V, Ix]) updateMinIdx() {
	if !t.hasRoot {
		t.minIdx = 0
		return
	}
	curr := t.root
	for {
		node := t.arena.Node(curr)
		lt, ok := node.Left()
		if !ok {
			t.minIdx = curr
			return
		}
		curr = lt
	}
}

func (t *Tree[K, V, Ix]) updateMaxIdx() {
	if !t.hasRoot {
		t.maxIdx = 0
		return
	}
	curr := t.root
	for {
		node := t.arena.Node(curr)
		gt, ok := node.Right()
		if !ok {
			t.maxIdx = curr
			return
		}
		curr = gt
	}
}

// findScapegoat walks path (root-first) from the bottom up, accumulating
// subtree sizes via the "differential" shortcut (only the sibling subtree
// is re-counted at each step, per spec §4.3) until it finds the deepest
// ancestor whose subtree is alpha-weight-unbalanced. Returns its arena index.
func (t *Tree[K, V, Ix]) findScapegoat(path *Path) (int, bool) {
	if path.Len() <= 1 {
		return 0, false
	}

	nodeSubtreeSize := 1 // the newly inserted leaf
	parentPathIdx := path.Len() - 1
	parentSubtreeSize := t.subtreeSize(path.At(parentPathIdx))

	for parentPathIdx > 0 && t.alphaDenom*float64(nodeSubtreeSize) <= t.alphaNum*float64(parentSubtreeSize) {
		nodeSubtreeSize = parentSubtreeSize
		parentPathIdx--
		parentSubtreeSize = t.subtreeSizeDifferential(path.At(parentPathIdx), path.At(parentPathIdx+1), nodeSubtreeSize)
	}

	return path.At(parentPathIdx), true
}

// subtreeSize is an iterative DFS accumulator: the spec deliberately omits
// a cached per-node subtree_size field (C1 lists only key/val/children), so
// every call here walks the subtree fresh.
func (t *Tree[K, V, Ix]) subtreeSize(idx int) int {
	worklist := []int{idx}
	size := 0
	for len(worklist) > 0 {
		n := len(worklist) - 1
		curr := worklist[n]
		worklist = worklist[:n]
		size++
		node := t.arena.Node(curr)
		if l, ok := node.Left(); ok {
			worklist = append(worklist, l)
		}
		if r, ok := node.Right(); ok {
			worklist = append(worklist, r)
		}
	}
	return size
}

// subtreeSizeDifferential avoids re-walking the subtree just counted: the
// parent's size is childSubtreeSize (already known) plus a fresh DFS count
// of only the *sibling* subtree, plus one for the parent itself.
func (t *Tree[K, V, Ix]) subtreeSizeDifferential(parentIdx, childIdx, childSubtreeSize int) int {
	parent := t.arena.Node(parentIdx)

	isRightChild := false
	if r, ok := parent.Right(); ok && r == childIdx {
		isRightChild = true
	}

	var siblingSize int
	if isRightChild {
		if l, ok := parent.Left(); ok {
			siblingSize = t.subtreeSize(l)
		}
	} else {
		if r, ok := parent.Right(); ok {
			siblingSize = t.subtreeSize(r)
		}
	}

	return childSubtreeSize + siblingSize + 1
}

// rebuild flattens the subtree rooted at idx into key-sorted arena indices
// and reshapes it into a perfectly weight-balanced BST over the same
// indices — no allocation, only re-wired child links (spec §4.5).
func (t *Tree[K, V, Ix]) rebuild(idx int) {
	sorted := t.flattenSubtreeToSortedIdxs(idx)
	t.rebalanceFromSortedIdxs(idx, sorted)
	t.rebalCount++
}

// flattenSubtreeToSortedIdxs collects every reachable index under idx (an
// iterative DFS, no recursion) and sorts them ascending by key. This is the
// same primitive the consuming iterator (IntoIter) reuses.
func (t *Tree[K, V, Ix]) flattenSubtreeToSortedIdxs(idx int) []int {
	worklist := []int{idx}
	flattened := []int{idx}

	for len(worklist) > 0 {
		n := len(worklist) - 1
		curr := worklist[n]
		worklist = worklist[:n]
		node := t.arena.Node(curr)
		if l, ok := node.Left(); ok {
			worklist = append(worklist, l)
			flattened = append(flattened, l)
		}
		if r, ok := node.Right(); ok {
			worklist = append(worklist, r)
			flattened = append(flattened, r)
		}
	}

	slices.SortFunc(flattened, func(a, b int) int {
		return cmp.Compare(t.arena.Node(a).Key, t.arena.Node(b).Key)
	})

	return flattened
}

// rebalanceFromSortedIdxs rewires child links over an already key-sorted
// list of existing arena indices into a perfectly balanced shape: the
// middle element becomes a subtree root, the two halves recurse. Recursion
// is expressed as an explicit worklist (spec's "iterative subtree rebuild").
func (t *Tree[K, V, Ix]) rebalanceFromSortedIdxs(oldSubtreeRootIdx int, sortedIdxs []int) {
	if len(sortedIdxs) <= 1 {
		return
	}

	lastIdx := len(sortedIdxs) - 1
	rootRange := newRebuildRange(0, lastIdx)
	subtreeRootArenaIdx := sortedIdxs[rootRange.mid]

	if t.hasRoot && containsInt(sortedIdxs, t.root) {
		t.root = subtreeRootArenaIdx
	} else {
		oldKey := t.arena.Node(oldSubtreeRootIdx).Key
		ngh := t.get(nil, oldKey)
		if parentIdx, hasParent := ngh.ParentIdx(); hasParent {
			parent := t.arena.Node(parentIdx)
			if ngh.IsRightChild() {
				parent.SetRight(subtreeRootArenaIdx, true)
			} else {
				parent.SetLeft(subtreeRootArenaIdx, true)
			}
		}
	}

	type work struct {
		sortedIdx int
		rng       rebuildRange
	}
	worklist := []work{{rootRange.mid, rootRange}}

	for len(worklist) > 0 {
		n := len(worklist) - 1
		w := worklist[n]
		worklist = worklist[:n]

		parent := t.arena.Node(sortedIdxs[w.sortedIdx])
		parent.SetLeft(0, false)
		parent.SetRight(0, false)

		if w.rng.low < w.rng.mid {
			childRange := newRebuildRange(w.rng.low, w.rng.mid-1)
			parent.SetLeft(sortedIdxs[childRange.mid], true)
			worklist = append(worklist, work{childRange.mid, childRange})
		}

		if w.rng.mid < w.rng.high {
			childRange := newRebuildRange(w.rng.mid+1, w.rng.high)
			parent.SetRight(sortedIdxs[childRange.mid], true)
			worklist = append(worklist, work{childRange.mid, childRange})
		}
	}
}

// alphaBalanceDepth computes floor(log_{alphaDenom/alphaNum}(val)), the
// maximum depth an alpha-balanced tree of val nodes may reach before it is
// considered unbalanced.
func (t *Tree[K, V, Ix]) alphaBalanceDepth(val int) int {
	if val <= 0 {
		return 0
	}
	base := t.alphaDenom / t.alphaNum
	return int(math.Floor(math.Log(float64(val)) / math.Log(base)))
}

// sortArena physically reorders the arena so in-order traversal matches
// slot order (spec §4.6's IterMut contract). Collects a GetHelper for every
// occupied slot (order doesn't matter for collection), sorts that metadata
// by key, then hands it to Arena.Sort.
func (t *Tree[K, V, Ix]) sortArena() {
	if !t.hasRoot {
		return
	}

	var meta []GetHelper
	t.arena.Each(func(idx int) {
		key := t.arena.Node(idx).Key
		meta = append(meta, t.get(nil, key))
	})

	slices.SortFunc(meta, func(a, b GetHelper) int {
		aIdx, _ := a.NodeIdx()
		bIdx, _ := b.NodeIdx()
		return cmp.Compare(t.arena.Node(aIdx).Key, t.arena.Node(bIdx).Key)
	})

	newRoot := t.arena.Sort(t.root, meta)
	t.root = newRoot
	t.updateMaxIdx()
	t.updateMinIdx()
}

// SortArena exposes sortArena for IterMut (iter.go) in the facade package.
func (t *Tree[K, V, Ix]) SortArena() { t.sortArena() }

// FlattenSorted exposes flattenSubtreeToSortedIdxs rooted at the whole tree,
// for IntoIter.
func (t *Tree[K, V, Ix]) FlattenSorted() []int {
	if !t.hasRoot {
		return nil
	}
	return t.flattenSubtreeToSortedIdxs(t.root)
}

// Clear resets the tree to empty, preserving RebalCount (a lifetime
// diagnostic, not workload-scoped).
func (t *Tree[K, V, Ix]) Clear() {
	rebal := t.rebalCount
	fresh, _ := New[K, V, Ix](t.Capacity())
	fresh.alphaNum, fresh.alphaDenom = t.alphaNum, t.alphaDenom
	*t = *fresh
	t.rebalCount = rebal
}

// PopFirst removes and returns the minimum key/value pair.
func (t *Tree[K, V, Ix]) PopFirst() (K, V, bool) {
	if !t.hasRoot {
		var zk K
		var zv V
		return zk, zv, false
	}
	return t.RemoveByIdx(t.minIdx)
}

// PopLast removes and returns the maximum key/value pair.
func (t *Tree[K, V, Ix]) PopLast() (K, V, bool) {
	if !t.hasRoot {
		var zk K
		var zv V
		return zk, zv, false
	}
	return t.RemoveByIdx(t.maxIdx)
}

// Retain keeps only entries for which keep returns true, removing the rest.
// Entries are visited in ascending key order; removal uses the same
// unlink-and-relink path as RemoveEntry, so no extra rebuild bookkeeping is
// needed beyond what Remove already performs.
func (t *Tree[K, V, Ix]) Retain(keep func(key K, val V) bool) {
	if !t.hasRoot {
		return
	}
	for _, idx := range t.FlattenSorted() {
		if !t.arena.IsOccupied(idx) {
			continue
		}
		n := t.arena.Node(idx)
		if !keep(n.Key, n.Val) {
			t.RemoveByIdx(idx)
		}
	}
}

// TryAppend moves every entry of other into t, leaving other empty.
// On key collision, other's value wins (it is logically inserted after t's
// existing entries). Fails without mutating either tree if t lacks capacity
// for other's exclusive keys.
func (t *Tree[K, V, Ix]) TryAppend(other *Tree[K, V, Ix]) error {
	if !other.hasRoot {
		return nil
	}

	exclusive := 0
	for _, idx := range other.FlattenSorted() {
		n := other.arena.Node(idx)
		if !t.ContainsKey(n.Key) {
			exclusive++
		}
	}
	if t.size+exclusive > t.Capacity() {
		return &StackCapacityExceededError{Capacity: t.Capacity()}
	}

	for _, idx := range other.FlattenSorted() {
		key, val, ok := other.RemoveByIdx(idx)
		if !ok {
			continue
		}
		if _, _, err := t.Insert(key, val); err != nil {
			return err
		}
	}
	return nil
}

// Append is TryAppend, discarding the error (used when the caller has
// already sized capacity to guarantee success).
func (t *Tree[K, V, Ix]) Append(other *Tree[K, V, Ix]) {
	_ = t.TryAppend(other)
}

// SplitOff removes every entry with key >= at from t and returns them as a
// freshly built tree of the same capacity and alpha.
func (t *Tree[K, V, Ix]) SplitOff(at K) *Tree[K, V, Ix] {
	split, _ := New[K, V, Ix](t.Capacity())
	split.alphaNum, split.alphaDenom = t.alphaNum, t.alphaDenom

	if !t.hasRoot {
		return split
	}

	for _, idx := range t.FlattenSorted() {
		n := t.arena.Node(idx)
		if n.Key < at {
			continue
		}
		key, val, ok := t.RemoveByIdx(idx)
		if !ok {
			continue
		}
		_, _, _ = split.Insert(key, val)
	}
	return split
}

func containsInt(s []int, v int) bool {
	return slices.Contains(s, v)
}
