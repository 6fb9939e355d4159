// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package reduce implements the FBAS reductions (§4.2): the
// satisfiable-node filter, strongly-connected-component decomposition, and
// symmetric-cluster detection that the minimal-quorum enumerator is built
// on top of.
package reduce

import (
	"github.com/quorumlabs/fbas/fbasmodel"
	"github.com/quorumlabs/fbas/id"
)

// IntactNodes iteratively removes every node whose quorum set cannot be
// satisfied by the remaining node set, treating removed nodes as absent.
// The fixed point is reached within f.Len() iterations (§4.2). Only
// intact nodes can belong to a quorum; this is the "strongly connected
// component-candidate pool" the rest of the pipeline restricts itself to.
func IntactNodes(f *fbasmodel.FBAS) id.NodeIDSet {
	candidate := f.AllNodeIDs()
	for i := 0; i < f.Len(); i++ {
		next := candidate.Clone()
		changed := false
		candidate.ForEach(func(v id.NodeID) bool {
			qs, ok := f.QuorumSet(v)
			if !ok || !qs.IsQuorumSlice(candidate) {
				next.Remove(v)
				changed = true
			}
			return true
		})
		candidate = next
		if !changed {
			break
		}
	}
	return candidate
}
