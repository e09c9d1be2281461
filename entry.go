// Copyright 2026 The Scapegoat Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package scapegoat

import (
	"cmp"

	"github.com/scapegoat-go/scapegoat/internal/tree"
)

// Entry is a view into a single map slot, obtained via Map.Entry, that
// lets a caller test presence and then insert-or-update. It records only
// the key and whether it was present, not the slot's index, so OrInsert,
// OrInsertWith and AndModify look the key up again.
type Entry[K cmp.Ordered, V any, Ix tree.Index] struct {
	m        *Map[K, V, Ix]
	key      K
	occupied bool
}

// Entry returns a view into m's slot for key. Presence is determined here
// and reused by Occupied; the other methods search the tree again.
func (m *Map[K, V, Ix]) Entry(key K) Entry[K, V, Ix] {
	_, ok := m.GetMut(key)
	return Entry[K, V, Ix]{m: m, key: key, occupied: ok}
}

// Occupied reports whether the entry's key was already present.
func (e Entry[K, V, Ix]) Occupied() bool { return e.occupied }

// OrInsert returns the entry's current value if occupied, otherwise
// inserts and returns def.
func (e Entry[K, V, Ix]) OrInsert(def V) (V, error) {
	if e.occupied {
		v, _ := e.m.Get(e.key)
		return v, nil
	}
	_, _, err := e.m.Insert(e.key, def)
	if err != nil {
		var zero V
		return zero, err
	}
	return def, nil
}

// OrInsertWith is OrInsert, computing the default lazily so callers can
// avoid the cost of building one when the entry is already occupied.
func (e Entry[K, V, Ix]) OrInsertWith(makeDefault func() V) (V, error) {
	if e.occupied {
		v, _ := e.m.Get(e.key)
		return v, nil
	}
	return e.OrInsert(makeDefault())
}

// AndModify applies fn to the entry's value in place, if occupied, and
// returns the (possibly unmodified) entry for further chaining.
func (e Entry[K, V, Ix]) AndModify(fn func(v *V)) Entry[K, V, Ix] {
	if e.occupied {
		if v, ok := e.m.GetMut(e.key); ok {
			fn(v)
		}
	}
	return e
}
