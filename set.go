// Copyright 2026 The Scapegoat Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package scapegoat

import (
	"cmp"
	"io"

	"github.com/scapegoat-go/scapegoat/internal/tree"
)

// Set is a fixed-capacity, ordered set backed by a scapegoat tree. It is
// implemented as a Map keyed on the element type with an empty value, the
// same way the BTreeSet-over-BTreeMap relationship works.
type Set[K cmp.Ordered, Ix tree.Index] struct {
	m *Map[K, struct{}, Ix]
}

// NewSet constructs an empty Set with the given fixed capacity.
func NewSet[K cmp.Ordered, Ix tree.Index](capacity int) (*Set[K, Ix], error) {
	m, err := NewMap[K, struct{}, Ix](capacity)
	if err != nil {
		return nil, err
	}
	return &Set[K, Ix]{m: m}, nil
}

// Len returns the number of elements currently stored.
func (s *Set[K, Ix]) Len() int { return s.m.Len() }

// IsEmpty reports whether the set holds no elements.
func (s *Set[K, Ix]) IsEmpty() bool { return s.m.IsEmpty() }

// Capacity returns the set's fixed maximum element count.
func (s *Set[K, Ix]) Capacity() int { return s.m.Capacity() }

// IsFull reports whether the set is at capacity.
func (s *Set[K, Ix]) IsFull() bool { return s.m.IsFull() }

// Contains reports whether key is a member.
func (s *Set[K, Ix]) Contains(key K) bool { return s.m.ContainsKey(key) }

// Insert adds key, reporting whether it was newly inserted (false if it
// was already a member).
func (s *Set[K, Ix]) Insert(key K) (bool, error) {
	_, hadOld, err := s.m.Insert(key, struct{}{})
	if err != nil {
		return false, err
	}
	return !hadOld, nil
}

// Remove removes key, reporting whether it was present.
func (s *Set[K, Ix]) Remove(key K) bool {
	_, ok := s.m.Remove(key)
	return ok
}

// First returns the minimum element.
func (s *Set[K, Ix]) First() (K, bool) {
	k, _, ok := s.m.FirstKeyValue()
	return k, ok
}

// Last returns the maximum element.
func (s *Set[K, Ix]) Last() (K, bool) {
	k, _, ok := s.m.LastKeyValue()
	return k, ok
}

// PopFirst removes and returns the minimum element.
func (s *Set[K, Ix]) PopFirst() (K, bool) {
	k, _, ok := s.m.PopFirst()
	return k, ok
}

// PopLast removes and returns the maximum element.
func (s *Set[K, Ix]) PopLast() (K, bool) {
	k, _, ok := s.m.PopLast()
	return k, ok
}

// Retain keeps only elements for which keep returns true.
func (s *Set[K, Ix]) Retain(keep func(key K) bool) {
	s.m.Retain(func(k K, _ struct{}) bool { return keep(k) })
}

// Clear removes every element, preserving capacity and alpha.
func (s *Set[K, Ix]) Clear() { s.m.Clear() }

// Append moves every element of other into s, leaving other empty. If s
// lacks capacity for other's exclusive elements, neither set changes and no
// error is reported.
func (s *Set[K, Ix]) Append(other *Set[K, Ix]) { s.m.Append(other.m) }

// SplitOff removes every element >= at and returns them as a new Set of the
// same capacity and alpha.
func (s *Set[K, Ix]) SplitOff(at K) *Set[K, Ix] {
	return &Set[K, Ix]{m: s.m.SplitOff(at)}
}

// Iter returns an ascending-order iterator over elements.
func (s *Set[K, Ix]) Iter() func(yield func(K) bool) {
	return func(yield func(K) bool) {
		it := s.m.Iter()
		for {
			k, _, ok := it.Next()
			if !ok || !yield(k) {
				return
			}
		}
	}
}

// DebugTable renders a tabular snapshot of every backing arena slot —
// occupied or free, in physical order — to w. Intended for interactive
// debugging and test failure output, never for the hot path.
func (s *Set[K, Ix]) DebugTable(w io.Writer) { s.m.DebugTable(w) }

// keys materializes every element in ascending order; the set-algebra
// iterators below walk two such slices in lockstep rather than re-deriving
// each other's tree structure.
func (s *Set[K, Ix]) keys() []K {
	out := make([]K, 0, s.Len())
	it := s.m.Iter()
	for {
		k, _, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, k)
	}
	return out
}
