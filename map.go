// Copyright 2026 The Scapegoat Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package scapegoat

import (
	"cmp"
	"io"

	"github.com/scapegoat-go/scapegoat/internal/tree"
)

// Map is a fixed-capacity, ordered key/value container backed by a
// scapegoat tree. Ix picks the narrow unsigned integer type used to
// address the backing arena (uint8 for <=254 entries, uint16 for <=65534,
// and so on) — the zero value of Map is not usable; construct with NewMap.
type Map[K cmp.Ordered, V any, Ix tree.Index] struct {
	t *tree.Tree[K, V, Ix]
}

// NewMap constructs an empty Map with the given fixed capacity.
func NewMap[K cmp.Ordered, V any, Ix tree.Index](capacity int) (*Map[K, V, Ix], error) {
	t, err := tree.New[K, V, Ix](capacity)
	if err != nil {
		return nil, err
	}
	return &Map[K, V, Ix]{t: t}, nil
}

// Len returns the number of entries currently stored.
func (m *Map[K, V, Ix]) Len() int { return m.t.Len() }

// IsEmpty reports whether the map holds no entries.
func (m *Map[K, V, Ix]) IsEmpty() bool { return m.t.IsEmpty() }

// Capacity returns the map's fixed maximum entry count.
func (m *Map[K, V, Ix]) Capacity() int { return m.t.Capacity() }

// IsFull reports whether the map is at capacity.
func (m *Map[K, V, Ix]) IsFull() bool { return m.t.IsFull() }

// RebalCount returns the number of subtree rebuilds performed so far.
func (m *Map[K, V, Ix]) RebalCount() uint64 { return m.t.RebalCount() }

// RebalParam returns the map's current (num, denom) alpha balance factor.
func (m *Map[K, V, Ix]) RebalParam() (float64, float64) { return m.t.RebalParam() }

// SetRebalParam validates and applies a new alpha = num/denom balance
// factor in [0.5, 1.0).
func (m *Map[K, V, Ix]) SetRebalParam(num, denom float64) error {
	return m.t.SetRebalParam(num, denom)
}

// Get returns the value stored at key, if present.
func (m *Map[K, V, Ix]) Get(key K) (V, bool) {
	_, v, ok := m.t.Get(key)
	if !ok {
		var zero V
		return zero, false
	}
	return *v, true
}

// GetMut returns a pointer to the value stored at key, allowing in-place
// mutation without a remove/reinsert round trip.
func (m *Map[K, V, Ix]) GetMut(key K) (*V, bool) {
	_, v, ok := m.t.Get(key)
	return v, ok
}

// ContainsKey reports whether key is present.
func (m *Map[K, V, Ix]) ContainsKey(key K) bool { return m.t.ContainsKey(key) }

// Insert inserts or overwrites key with val, returning the value it
// replaced, if any. Panics-free: a full map returns CapacityExceededError.
func (m *Map[K, V, Ix]) Insert(key K, val V) (V, bool, error) {
	old, hadOld, err := m.t.Insert(key, val)
	checkInvariants(m)
	return old, hadOld, err
}

// TryInsert is an alias for Insert kept for parity with the container's
// fallible-insert vocabulary elsewhere in the package; Insert already never
// panics.
func (m *Map[K, V, Ix]) TryInsert(key K, val V) (V, bool, error) {
	return m.Insert(key, val)
}

// Remove removes key, returning its value if present.
func (m *Map[K, V, Ix]) Remove(key K) (V, bool) {
	v, ok := m.t.Remove(key)
	checkInvariants(m)
	return v, ok
}

// RemoveEntry removes key, returning its key/value pair if present.
func (m *Map[K, V, Ix]) RemoveEntry(key K) (K, V, bool) {
	k, v, ok := m.t.RemoveEntry(key)
	checkInvariants(m)
	return k, v, ok
}

// FirstKeyValue returns the minimum key's key/value pair.
func (m *Map[K, V, Ix]) FirstKeyValue() (K, V, bool) {
	k, v, ok := m.t.FirstKeyValue()
	if !ok {
		var zk K
		var zv V
		return zk, zv, false
	}
	return k, *v, true
}

// LastKeyValue returns the maximum key's key/value pair.
func (m *Map[K, V, Ix]) LastKeyValue() (K, V, bool) {
	k, v, ok := m.t.LastKeyValue()
	if !ok {
		var zk K
		var zv V
		return zk, zv, false
	}
	return k, *v, true
}

// PopFirst removes and returns the minimum key/value pair.
func (m *Map[K, V, Ix]) PopFirst() (K, V, bool) {
	k, v, ok := m.t.PopFirst()
	checkInvariants(m)
	return k, v, ok
}

// PopLast removes and returns the maximum key/value pair.
func (m *Map[K, V, Ix]) PopLast() (K, V, bool) {
	k, v, ok := m.t.PopLast()
	checkInvariants(m)
	return k, v, ok
}

// Retain keeps only entries for which keep returns true.
func (m *Map[K, V, Ix]) Retain(keep func(key K, val V) bool) {
	m.t.Retain(keep)
	checkInvariants(m)
}

// Append moves every entry of other into m, leaving other empty. On key
// collision, other's value wins. If m lacks capacity for other's exclusive
// keys, neither map changes and no error is reported (see TryAppend).
func (m *Map[K, V, Ix]) Append(other *Map[K, V, Ix]) {
	m.t.Append(other.t)
	checkInvariants(m)
}

// TryAppend is Append's fallible form: it fails without mutating either
// map if m lacks capacity for other's exclusive keys.
func (m *Map[K, V, Ix]) TryAppend(other *Map[K, V, Ix]) error {
	err := m.t.TryAppend(other.t)
	checkInvariants(m)
	return err
}

// SplitOff removes every entry with key >= at and returns them as a new Map
// of the same capacity and alpha.
func (m *Map[K, V, Ix]) SplitOff(at K) *Map[K, V, Ix] {
	split := &Map[K, V, Ix]{t: m.t.SplitOff(at)}
	checkInvariants(m)
	checkInvariants(split)
	return split
}

// Clear removes every entry, preserving capacity and alpha.
func (m *Map[K, V, Ix]) Clear() { m.t.Clear() }

// Keys returns every key in ascending order.
func (m *Map[K, V, Ix]) Keys() []K {
	out := make([]K, 0, m.Len())
	it := m.Iter()
	for {
		k, _, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, k)
	}
	return out
}

// Values returns every value, ordered by ascending key.
func (m *Map[K, V, Ix]) Values() []V {
	out := make([]V, 0, m.Len())
	it := m.Iter()
	for {
		_, v, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, *v)
	}
	return out
}

// FirstEntry returns an Entry view over the minimum key, if the map is
// non-empty.
func (m *Map[K, V, Ix]) FirstEntry() (Entry[K, V, Ix], bool) {
	k, _, ok := m.FirstKeyValue()
	if !ok {
		return Entry[K, V, Ix]{}, false
	}
	return m.Entry(k), true
}

// LastEntry returns an Entry view over the maximum key, if the map is
// non-empty.
func (m *Map[K, V, Ix]) LastEntry() (Entry[K, V, Ix], bool) {
	k, _, ok := m.LastKeyValue()
	if !ok {
		return Entry[K, V, Ix]{}, false
	}
	return m.Entry(k), true
}

// Iter returns an ascending-order iterator over key/value pairs. The
// returned iterator is invalidated by any subsequent mutation of m.
func (m *Map[K, V, Ix]) Iter() *tree.Iter[K, V, Ix] { return tree.NewIter(m.t) }

// IterMut returns an ascending-order iterator whose returned value
// pointers may be mutated directly. Building it physically reorders the
// backing arena once up front (see Tree.SortArena); do it only when you
// intend to consume the whole iterator.
func (m *Map[K, V, Ix]) IterMut() *tree.IterMut[K, V, Ix] { return tree.NewIterMut(m.t) }

// IntoIter drains m entirely, yielding pairs in ascending key order.
func (m *Map[K, V, Ix]) IntoIter() *tree.IntoIter[K, V, Ix] { return tree.NewIntoIter(m.t) }

// DebugTable renders a tabular snapshot of every backing arena slot —
// occupied or free, in physical order — to w. Intended for interactive
// debugging and test failure output, never for the hot path.
func (m *Map[K, V, Ix]) DebugTable(w io.Writer) { tree.Dump(m.t, w) }
