// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package reduce

import (
	"github.com/quorumlabs/fbas/fbasmodel"
	"github.com/quorumlabs/fbas/id"
	"github.com/quorumlabs/fbas/quorumset"
)

// DetectSymmetric reports whether every node in cluster declares the same
// flat (no inner sets) quorum set, referring only to validators within
// cluster. When it does, the shared quorum set is returned along with
// true: the minimal quorums of cluster are then combinatorially
// determined by the threshold alone (§4.2's symmetric-cluster
// optimization), without running the general search.
func DetectSymmetric(f *fbasmodel.FBAS, cluster id.NodeIDSet) (quorumset.QuorumSet, bool) {
	var shared quorumset.QuorumSet
	first := true
	ok := true

	cluster.ForEach(func(v id.NodeID) bool {
		qs, present := f.QuorumSet(v)
		if !present || len(qs.InnerSets) != 0 {
			ok = false
			return false
		}
		if !id.IsSubset(qs.ContainedNodes(), cluster) {
			ok = false
			return false
		}
		if first {
			shared = qs
			first = false
			return true
		}
		if !sameFlatQuorumSet(qs, shared) {
			ok = false
			return false
		}
		return true
	})

	if !ok || first {
		return quorumset.QuorumSet{}, false
	}
	return shared, true
}

func sameFlatQuorumSet(a, b quorumset.QuorumSet) bool {
	if a.Threshold != b.Threshold || len(a.Validators) != len(b.Validators) {
		return false
	}
	return id.Equal(id.Of(a.Validators...), id.Of(b.Validators...))
}

// SymmetricMinimalQuorums enumerates the minimal quorums of a symmetric
// cluster directly: every size-Threshold subset of cluster is a minimal
// quorum, and there are no others, because each member's quorum set is
// exactly "Threshold of the cluster". With threshold 0 every nonempty
// subset is a quorum, so the minimal quorums are the singletons. Must
// agree with the general DFS enumerator on the same input; only used as
// a fast path.
func SymmetricMinimalQuorums(shared quorumset.QuorumSet, cluster id.NodeIDSet) []id.NodeIDSet {
	members := cluster.SortedSlice()
	if shared.Threshold == 0 {
		out := make([]id.NodeIDSet, 0, len(members))
		for _, m := range members {
			out = append(out, id.Of(m))
		}
		return out
	}
	var out []id.NodeIDSet
	var combo []id.NodeID
	var choose func(start int)
	choose = func(start int) {
		if len(combo) == shared.Threshold {
			out = append(out, id.Of(combo...))
			return
		}
		remainingNeeded := shared.Threshold - len(combo)
		for i := start; i <= len(members)-remainingNeeded; i++ {
			combo = append(combo, members[i])
			choose(i + 1)
			combo = combo[:len(combo)-1]
		}
	}
	choose(0)
	return out
}
