// Copyright 2026 The Scapegoat Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package tree

import "fmt"

// MaximumCapacityExceededError reports that a requested fixed capacity
// cannot be addressed by the chosen index width Ix.
type MaximumCapacityExceededError struct {
	Requested int
	Limit     uint64
}

func (e *MaximumCapacityExceededError) Error() string {
	return fmt.Sprintf("tree: requested capacity %d exceeds maximum %d addressable by index type", e.Requested, e.Limit)
}

// StackCapacityExceededError reports that a run-time insertion would exceed
// the tree's fixed capacity.
type StackCapacityExceededError struct {
	Capacity int
}

func (e *StackCapacityExceededError) Error() string {
	return fmt.Sprintf("tree: insertion would exceed fixed capacity %d", e.Capacity)
}

// RebalanceFactorOutOfRangeError reports an invalid alpha (num/denom)
// balance factor; valid range is [0.5, 1.0).
type RebalanceFactorOutOfRangeError struct {
	Num, Denom float64
}

func (e *RebalanceFactorOutOfRangeError) Error() string {
	return fmt.Sprintf("tree: rebalance factor %g/%g out of range [0.5, 1.0)", e.Num, e.Denom)
}
