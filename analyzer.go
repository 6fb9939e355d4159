// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package fbas

import (
	"github.com/quorumlabs/fbas/analysis"
	"github.com/quorumlabs/fbas/fbasmodel"
	"github.com/quorumlabs/fbas/id"
	"github.com/quorumlabs/fbas/quorumset"
	"github.com/quorumlabs/fbas/reduce"
)

// Type aliases for a clean single-import experience.
type (
	NodeID    = id.NodeID
	NodeIDSet = id.NodeIDSet

	QuorumSet = quorumset.QuorumSet

	Node = fbasmodel.Node
	FBAS = fbasmodel.FBAS

	Option = analysis.Option
)

// Errors re-exported for convenience.
var (
	ErrDuplicatePublicKey       = fbasmodel.ErrDuplicatePublicKey
	ErrNodeReferenceOutOfRange  = fbasmodel.ErrNodeReferenceOutOfRange
	ErrNegativeThreshold        = quorumset.ErrNegativeThreshold
	ErrThresholdExceedsChildren = quorumset.ErrThresholdExceedsChildren
)

// Options re-exported for convenience.
var (
	WithLogger     = analysis.WithLogger
	WithRegisterer = analysis.WithRegisterer
)

// NewFBAS builds an FBAS from an ordered node list (§3, §7).
func NewFBAS(nodes []Node) (*FBAS, error) {
	return fbasmodel.New(nodes)
}

// NewQuorumSet builds a validated QuorumSet (§3).
func NewQuorumSet(threshold int, validators []NodeID, innerSets []QuorumSet) (QuorumSet, error) {
	return quorumset.New(threshold, validators, innerSets)
}

// IntactNodes returns the set of nodes whose quorum sets remain
// satisfiable after iteratively discarding unsatisfiable references
// (§4.2's preprocessing step, ahead of minimal-quorum enumeration).
func IntactNodes(f *FBAS) NodeIDSet {
	return reduce.IntactNodes(f)
}

// MinimalQuorums enumerates every inclusion-minimal quorum of f (§4.3).
func MinimalQuorums(f *FBAS, opts ...Option) []NodeIDSet {
	return analysis.MinimalQuorums(f, opts...)
}

// HasQuorumIntersection decides whether every pair of quorums in f
// shares a node (§4.4).
func HasQuorumIntersection(f *FBAS, opts ...Option) bool {
	return analysis.HasQuorumIntersection(f, opts...)
}

// MinimalBlockingSets enumerates every inclusion-minimal subset of
// target that intersects every quorum in quorums (§4.5).
func MinimalBlockingSets(quorums []NodeIDSet, target NodeIDSet, opts ...Option) []NodeIDSet {
	return analysis.MinimalBlockingSets(quorums, target, opts...)
}

// MinimalSplittingSets enumerates every inclusion-minimal subset of
// target that contains the intersection of some two minimal quorums of f,
// so that those quorums share no member outside it (§4.6).
func MinimalSplittingSets(f *FBAS, target NodeIDSet, opts ...Option) []NodeIDSet {
	return analysis.MinimalSplittingSets(f, target, opts...)
}
