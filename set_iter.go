// Copyright 2026 The Scapegoat Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package scapegoat

import (
	"cmp"

	"github.com/scapegoat-go/scapegoat/internal/tree"
)

// Union returns a lazy ascending-order iterator over every element present
// in a, b, or both. It walks both sets' sorted key slices in lockstep
// (a two-pointer merge) rather than materializing a combined result set
// up front, so its extra space is O(1) beyond the two input snapshots.
func Union[K cmp.Ordered, Ix tree.Index](a, b *Set[K, Ix]) func(yield func(K) bool) {
	ak, bk := a.keys(), b.keys()
	return func(yield func(K) bool) {
		i, j := 0, 0
		for i < len(ak) && j < len(bk) {
			switch {
			case ak[i] < bk[j]:
				if !yield(ak[i]) {
					return
				}
				i++
			case ak[i] > bk[j]:
				if !yield(bk[j]) {
					return
				}
				j++
			default:
				if !yield(ak[i]) {
					return
				}
				i++
				j++
			}
		}
		for ; i < len(ak); i++ {
			if !yield(ak[i]) {
				return
			}
		}
		for ; j < len(bk); j++ {
			if !yield(bk[j]) {
				return
			}
		}
	}
}

// Intersection returns a lazy ascending-order iterator over every element
// present in both a and b.
func Intersection[K cmp.Ordered, Ix tree.Index](a, b *Set[K, Ix]) func(yield func(K) bool) {
	ak, bk := a.keys(), b.keys()
	return func(yield func(K) bool) {
		i, j := 0, 0
		for i < len(ak) && j < len(bk) {
			switch {
			case ak[i] < bk[j]:
				i++
			case ak[i] > bk[j]:
				j++
			default:
				if !yield(ak[i]) {
					return
				}
				i++
				j++
			}
		}
	}
}

// Difference returns a lazy ascending-order iterator over every element of
// a not present in b.
func Difference[K cmp.Ordered, Ix tree.Index](a, b *Set[K, Ix]) func(yield func(K) bool) {
	ak, bk := a.keys(), b.keys()
	return func(yield func(K) bool) {
		i, j := 0, 0
		for i < len(ak) {
			for j < len(bk) && bk[j] < ak[i] {
				j++
			}
			if j < len(bk) && bk[j] == ak[i] {
				i++
				continue
			}
			if !yield(ak[i]) {
				return
			}
			i++
		}
	}
}

// SymmetricDifference returns a lazy ascending-order iterator over every
// element present in exactly one of a or b.
func SymmetricDifference[K cmp.Ordered, Ix tree.Index](a, b *Set[K, Ix]) func(yield func(K) bool) {
	ak, bk := a.keys(), b.keys()
	return func(yield func(K) bool) {
		i, j := 0, 0
		for i < len(ak) && j < len(bk) {
			switch {
			case ak[i] < bk[j]:
				if !yield(ak[i]) {
					return
				}
				i++
			case ak[i] > bk[j]:
				if !yield(bk[j]) {
					return
				}
				j++
			default:
				i++
				j++
			}
		}
		for ; i < len(ak); i++ {
			if !yield(ak[i]) {
				return
			}
		}
		for ; j < len(bk); j++ {
			if !yield(bk[j]) {
				return
			}
		}
	}
}

// IsSubset reports whether every element of a is also in b.
func IsSubset[K cmp.Ordered, Ix tree.Index](a, b *Set[K, Ix]) bool {
	for _, k := range a.keys() {
		if !b.Contains(k) {
			return false
		}
	}
	return true
}

// IsDisjoint reports whether a and b share no elements.
func IsDisjoint[K cmp.Ordered, Ix tree.Index](a, b *Set[K, Ix]) bool {
	for _, k := range a.keys() {
		if b.Contains(k) {
			return false
		}
	}
	return true
}
