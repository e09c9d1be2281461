// Copyright 2026 The Scapegoat Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package scapegoat provides fixed-capacity, self-balancing ordered Map and
// Set containers backed by a scapegoat tree over an arena-allocated node
// pool. Node storage never grows once a container is constructed: every
// node lives in one of N pre-sized arena slots, addressed by a narrow index
// type (Ix) rather than a pointer, and capacity is fixed for the container's
// lifetime. Operations still allocate temporary slices (lookup paths,
// rebuild worklists, iterator state) on the Go heap.
//
// Map and Set are thin, type-specialized facades over internal/tree, which
// holds the actual balancing algorithm, arena, and iterator machinery.
package scapegoat
