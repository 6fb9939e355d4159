// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ingest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quorumlabs/fbas/fbasmodel"
	"github.com/quorumlabs/fbas/id"
	"github.com/quorumlabs/fbas/quorumset"
)

// threeOrgs builds a 6-node FBAS: orgA = {a1,a2}, orgB = {b1,b2}, orgC =
// {c1,c2}. Every node declares the identical flat quorum set "4 of all 6
// validators", so merging by organization should collapse each pair of
// duplicate org-mate references into one, halving the validator count
// (6 to 3) and lowering the threshold by one per collapsed duplicate
// (4 to 1).
func threeOrgs(t *testing.T) (*fbasmodel.FBAS, OrgMap) {
	t.Helper()
	require := require.New(t)

	names := []string{"a1", "a2", "b1", "b2", "c1", "c2"}
	orgs := OrgMap{
		"a1": "orgA", "a2": "orgA",
		"b1": "orgB", "b2": "orgB",
		"c1": "orgC", "c2": "orgC",
	}

	allValidators := make([]id.NodeID, len(names))
	for i := range names {
		allValidators[i] = id.NodeID(i)
	}
	qs, err := quorumset.New(4, allValidators, nil)
	require.NoError(err)

	nodes := make([]fbasmodel.Node, len(names))
	for i, n := range names {
		nodes[i] = fbasmodel.Node{PublicKey: n, QuorumSet: qs}
	}

	f, err := fbasmodel.New(nodes)
	require.NoError(err)
	return f, orgs
}

func TestMergeByOrganizationCollapsesMembers(t *testing.T) {
	require := require.New(t)

	f, orgs := threeOrgs(t)
	merged, err := MergeByOrganization(f, orgs)
	require.NoError(err)
	require.Equal(3, merged.Len())

	orgA, ok := merged.NodeID("orgA")
	require.True(ok)
	qs, ok := merged.QuorumSet(orgA)
	require.True(ok)

	// 6 validators collapse to 3 organizations; each pair of org-mate
	// duplicates removes one from both the child count and the threshold.
	require.Len(qs.Validators, 3)
	require.Equal(1, qs.Threshold)
}

func TestMergeByOrganizationSingletonsPassThrough(t *testing.T) {
	require := require.New(t)

	qsA, err := quorumset.New(1, []id.NodeID{0}, nil)
	require.NoError(err)
	nodes := []fbasmodel.Node{{PublicKey: "solo", QuorumSet: qsA}}
	f, err := fbasmodel.New(nodes)
	require.NoError(err)

	merged, err := MergeByOrganization(f, OrgMap{})
	require.NoError(err)
	require.Equal(1, merged.Len())

	nid, ok := merged.NodeID("solo")
	require.True(ok)
	qs, ok := merged.QuorumSet(nid)
	require.True(ok)
	require.Equal(1, qs.Threshold)
	require.Len(qs.Validators, 1)
}
