// Copyright 2026 The Scapegoat Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package tree

// Path records the ancestor arena indices visited during a lookup, in
// descent order (root first). It never records the found node itself, only
// strict ancestors — this is what lets a Node omit a parent pointer: a
// mutation that needs the parent reconstructs it from the Path a lookup
// just built.
//
// Length never exceeds the tree's current height, which the scapegoat
// balance invariant (spec §3, invariant 2) keeps logarithmic in high_water.
type Path struct {
	idxs []int
}

// NewPath returns an empty path with capacity hinted by the caller (usually
// an estimate of tree height; growth beyond the hint is safe but reallocates).
func NewPath(capHint int) *Path {
	if capHint < 4 {
		capHint = 4
	}
	return &Path{idxs: make([]int, 0, capHint)}
}

// Push appends an ancestor index to the end of the path.
func (p *Path) Push(idx int) { p.idxs = append(p.idxs, idx) }

// Pop removes the last (most recently visited) ancestor, if any.
func (p *Path) Pop() {
	if len(p.idxs) > 0 {
		p.idxs = p.idxs[:len(p.idxs)-1]
	}
}

// Clear empties the path, used when a lookup misses.
func (p *Path) Clear() { p.idxs = p.idxs[:0] }

// Len returns the number of ancestors currently recorded.
func (p *Path) Len() int { return len(p.idxs) }

// At returns the ancestor index recorded at position i (0 is the root).
func (p *Path) At(i int) int { return p.idxs[i] }

// Slice exposes the recorded indices, root first. The returned slice aliases
// Path's storage and must not be retained past the next mutation.
func (p *Path) Slice() []int { return p.idxs }
