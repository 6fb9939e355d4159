// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package quorumset

import "errors"

// Errors returned while constructing a QuorumSet. Per §7 of the
// specification these are rejected at construction and never tolerated
// mid-analysis.
var (
	// ErrNegativeThreshold is returned when a threshold is negative.
	ErrNegativeThreshold = errors.New("quorumset: threshold must be nonnegative")

	// ErrThresholdExceedsChildren is returned when a threshold exceeds the
	// number of validators plus inner sets.
	ErrThresholdExceedsChildren = errors.New("quorumset: threshold exceeds child count")
)
