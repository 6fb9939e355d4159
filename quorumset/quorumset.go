// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package quorumset implements the recursive threshold structure each FBAS
// node uses to declare what it trusts, and the evaluator that decides
// whether a candidate node set satisfies it.
package quorumset

import (
	"fmt"

	"github.com/quorumlabs/fbas/id"
)

// QuorumSet is a threshold structure: it is satisfied by a NodeIDSet S iff
// at least Threshold of its children — each Validator counting 1 if it is
// in S, each InnerSet counting 1 if it is recursively satisfied by S — are
// satisfied.
//
// Construct with New, which validates the threshold. The zero value is
// the threshold-0 quorum set with no children, satisfied by any set.
type QuorumSet struct {
	Threshold  int
	Validators []id.NodeID
	InnerSets  []QuorumSet
}

// ChildCount returns the number of direct children (validators plus inner
// sets) of qs.
func (qs QuorumSet) ChildCount() int {
	return len(qs.Validators) + len(qs.InnerSets)
}

// New constructs a QuorumSet, rejecting a malformed threshold per §7:
// negative, or exceeding the number of children.
func New(threshold int, validators []id.NodeID, innerSets []QuorumSet) (QuorumSet, error) {
	if threshold < 0 {
		return QuorumSet{}, ErrNegativeThreshold
	}
	childCount := len(validators) + len(innerSets)
	if threshold > childCount {
		return QuorumSet{}, ErrThresholdExceedsChildren
	}
	return QuorumSet{
		Threshold:  threshold,
		Validators: validators,
		InnerSets:  innerSets,
	}, nil
}

// Unsatisfiable is the degenerate quorum set assigned, per §6, to an
// "unknown" public key referenced inside some other node's quorum set but
// absent from the node list: threshold 1 with no children, hence never
// satisfied by any set.
func Unsatisfiable() QuorumSet {
	return QuorumSet{Threshold: 1}
}

// IsQuorumSlice reports whether S satisfies qs, counting satisfied
// children until Threshold is reached. A threshold of 0 is satisfied by
// any S, including the empty set; a threshold exceeding ChildCount() is
// never satisfied. O(size of qs).
func (qs QuorumSet) IsQuorumSlice(s id.NodeIDSet) bool {
	if qs.Threshold == 0 {
		return true
	}
	satisfied := 0
	for _, v := range qs.Validators {
		if s.Contains(v) {
			satisfied++
			if satisfied >= qs.Threshold {
				return true
			}
		}
	}
	for i := range qs.InnerSets {
		if qs.InnerSets[i].IsQuorumSlice(s) {
			satisfied++
			if satisfied >= qs.Threshold {
				return true
			}
		}
	}
	return false
}

// ContainedNodes returns the set of every validator named anywhere in qs,
// recursively through its inner sets. Used by the FBAS reductions and by
// the minimal-quorum search to bound exploration.
func (qs QuorumSet) ContainedNodes() id.NodeIDSet {
	out := id.Of(qs.Validators...)
	for i := range qs.InnerSets {
		out.Union(qs.InnerSets[i].ContainedNodes())
	}
	return out
}

// String renders qs for diagnostics as threshold and child count, e.g.
// "2-of-3" for two validators and one inner set; the children themselves
// are not listed.
func (qs QuorumSet) String() string {
	return fmt.Sprintf("%d-of-%d", qs.Threshold, qs.ChildCount())
}
