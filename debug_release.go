// Copyright 2026 The Scapegoat Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

//go:build !scapegoat_debug

package scapegoat

import (
	"cmp"

	"github.com/scapegoat-go/scapegoat/internal/tree"
)

// checkInvariants is a no-op in release builds (the default); the
// scapegoat_debug build tag swaps in the real traversal-based check.
func checkInvariants[K cmp.Ordered, V any, Ix tree.Index](m *Map[K, V, Ix]) {
	_ = m
}
