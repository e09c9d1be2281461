// Copyright 2026 The Scapegoat Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

//go:build scapegoat_debug

package scapegoat

import (
	"cmp"

	"github.com/sirupsen/logrus"

	"github.com/scapegoat-go/scapegoat/internal/tree"
)

// debugLog is used only when built with -tags scapegoat_debug; the release
// build (debug_release.go) compiles it away entirely rather than gating
// each call site with a runtime flag.
var debugLog = logrus.WithField("component", "scapegoat")

// checkInvariants walks m's tree and panics (fatal, matching the source's
// debug_assert! discipline) if ascending-order traversal is not strictly
// increasing, or if len() disagrees with a fresh traversal count. Only
// compiled into -tags scapegoat_debug builds, where it runs after each
// mutating Map call (Insert included).
func checkInvariants[K cmp.Ordered, V any, Ix tree.Index](m *Map[K, V, Ix]) {
	it := m.Iter()
	prevSet := false
	var prev K
	count := 0
	for {
		k, _, ok := it.Next()
		if !ok {
			break
		}
		count++
		if prevSet && !(prev < k) {
			debugLog.Panicf("scapegoat: invariant violated: traversal key %v did not strictly increase past %v", k, prev)
		}
		prev, prevSet = k, true
	}
	if count != m.Len() {
		debugLog.Panicf("scapegoat: invariant violated: traversal visited %d entries, Len() reports %d", count, m.Len())
	}
}
