// Copyright 2026 The Scapegoat Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package scapegoat

import (
	"errors"

	"github.com/containerd/errdefs"

	"github.com/scapegoat-go/scapegoat/internal/tree"
)

// MaximumCapacityExceededError reports that a requested fixed capacity
// cannot be addressed by the chosen index width.
type MaximumCapacityExceededError = tree.MaximumCapacityExceededError

// CapacityExceededError reports that an insertion would exceed a
// container's fixed capacity.
type CapacityExceededError = tree.StackCapacityExceededError

// RebalanceFactorOutOfRangeError reports an invalid alpha (num/denom)
// balance factor; valid range is [0.5, 1.0).
type RebalanceFactorOutOfRangeError = tree.RebalanceFactorOutOfRangeError

// IsInvalidArgument classifies errdefs-style "bad input" failures: an
// out-of-range rebalance factor, or a requested capacity too large for the
// index type. Callers that only care "was this my fault" can check this
// instead of a type switch over every concrete error.
func IsInvalidArgument(err error) bool {
	var rangeErr *RebalanceFactorOutOfRangeError
	var capErr *MaximumCapacityExceededError
	return errors.As(err, &rangeErr) || errors.As(err, &capErr) || errdefs.IsInvalidArgument(err)
}

// IsResourceExhausted classifies "the container is full" failures.
func IsResourceExhausted(err error) bool {
	var full *CapacityExceededError
	return errors.As(err, &full) || errdefs.IsResourceExhausted(err)
}
