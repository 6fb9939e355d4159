// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ingest

import (
	"github.com/quorumlabs/fbas/fbasmodel"
	"github.com/quorumlabs/fbas/id"
	"github.com/quorumlabs/fbas/quorumset"
)

// OrgMap assigns each public key to the organization it belongs to. A
// public key absent from the map is treated as its own singleton
// organization.
type OrgMap map[string]string

// MergeByOrganization collapses every node belonging to the same
// organization into a single logical node (§6's optional organization-
// merge preprocessor). The merged node's public key is the organization
// ID; its quorum set is the first member's quorum set with every
// validator reference remapped from node-level to organization-level and
// deduplicated, reducing the threshold by one for each reference
// collapsed into an already-counted organization (the common case, where
// an organization's own validators all declare the same or near-
// identical trust structure). The core treats the result as any other
// FBAS.
func MergeByOrganization(f *fbasmodel.FBAS, orgs OrgMap) (*fbasmodel.FBAS, error) {
	type group struct {
		orgID   string
		members []id.NodeID
	}

	orderOf := make(map[string]int, f.Len())
	var groups []group
	for i := 0; i < f.Len(); i++ {
		nid := id.NodeID(i)
		pk, _ := f.PublicKey(nid)
		org, ok := orgs[pk]
		if !ok {
			org = pk
		}
		gi, exists := orderOf[org]
		if !exists {
			gi = len(groups)
			orderOf[org] = gi
			groups = append(groups, group{orgID: org})
		}
		groups[gi].members = append(groups[gi].members, nid)
	}

	remap := make(map[id.NodeID]id.NodeID, f.Len())
	for gi, g := range groups {
		for _, m := range g.members {
			remap[m] = id.NodeID(gi)
		}
	}

	nodes := make([]fbasmodel.Node, len(groups))
	for gi, g := range groups {
		template, _ := f.QuorumSet(g.members[0])
		merged, err := remapQuorumSet(template, remap)
		if err != nil {
			return nil, err
		}
		nodes[gi] = fbasmodel.Node{PublicKey: g.orgID, QuorumSet: merged}
	}
	return fbasmodel.New(nodes)
}

// remapQuorumSet rewrites qs's validator references through remap,
// collapsing any validators that land on the same merged NodeID and
// reducing the threshold by one per collapsed duplicate (clamped to the
// new child count).
func remapQuorumSet(qs quorumset.QuorumSet, remap map[id.NodeID]id.NodeID) (quorumset.QuorumSet, error) {
	seen := id.NewNodeIDSet()
	validators := make([]id.NodeID, 0, len(qs.Validators))
	duplicates := 0
	for _, v := range qs.Validators {
		merged, ok := remap[v]
		if !ok {
			merged = v
		}
		if seen.Contains(merged) {
			duplicates++
			continue
		}
		seen.Add(merged)
		validators = append(validators, merged)
	}

	inner := make([]quorumset.QuorumSet, 0, len(qs.InnerSets))
	for i := range qs.InnerSets {
		r, err := remapQuorumSet(qs.InnerSets[i], remap)
		if err != nil {
			return quorumset.QuorumSet{}, err
		}
		inner = append(inner, r)
	}

	threshold := qs.Threshold - duplicates
	if threshold < 0 {
		threshold = 0
	}
	childCount := len(validators) + len(inner)
	if threshold > childCount {
		threshold = childCount
	}
	return quorumset.New(threshold, validators, inner)
}
