// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package bench generates synthetic FBAS instances for this repository's
// own benchmarks and tests. It is not part of the public analysis
// surface (§1 lists synthetic-FBAS generation as an external
// collaborator); it exists only so the analyzer's own test suite does
// not depend on fixture files.
package bench

import (
	"fmt"

	"github.com/quorumlabs/fbas/fbasmodel"
	"github.com/quorumlabs/fbas/id"
	"github.com/quorumlabs/fbas/quorumset"
)

// Symmetric returns an n-node FBAS in which every node shares the same
// flat threshold-of-n quorum set: the symmetric-cluster shape §4.2's
// fast path is built for.
func Symmetric(n, threshold int) (*fbasmodel.FBAS, error) {
	validators := make([]id.NodeID, n)
	for i := range validators {
		validators[i] = id.NodeID(i)
	}
	qs, err := quorumset.New(threshold, validators, nil)
	if err != nil {
		return nil, err
	}
	nodes := make([]fbasmodel.Node, n)
	for i := range nodes {
		nodes[i] = fbasmodel.Node{PublicKey: fmt.Sprintf("n%d", i), QuorumSet: qs}
	}
	return fbasmodel.New(nodes)
}

// DisjointClusters returns clusterCount independent symmetric clusters of
// clusterSize nodes each, threshold per cluster. No cluster references
// any node outside itself, so the resulting FBAS never enjoys quorum
// intersection once clusterCount >= 2 — useful for exercising the
// splitting-set fast path and the SCC decomposition's sink-per-cluster
// behavior.
func DisjointClusters(clusterCount, clusterSize, threshold int) (*fbasmodel.FBAS, error) {
	var nodes []fbasmodel.Node
	for c := 0; c < clusterCount; c++ {
		base := id.NodeID(c * clusterSize)
		validators := make([]id.NodeID, clusterSize)
		for i := range validators {
			validators[i] = base + id.NodeID(i)
		}
		qs, err := quorumset.New(threshold, validators, nil)
		if err != nil {
			return nil, err
		}
		for i := 0; i < clusterSize; i++ {
			nodes = append(nodes, fbasmodel.Node{
				PublicKey: fmt.Sprintf("c%d-n%d", c, i),
				QuorumSet: qs,
			})
		}
	}
	return fbasmodel.New(nodes)
}

// TieredHierarchy returns an FBAS where a small "core" of coreSize nodes
// runs a flat threshold-of-core quorum set, and each of tierSize outer
// nodes requires both itself and the core's quorum set (coreThreshold of
// the core) — the "organization
// validators deferring to a tier-1 core" shape common in real Stellar
// network snapshots.
func TieredHierarchy(coreSize, coreThreshold, tierSize int) (*fbasmodel.FBAS, error) {
	coreValidators := make([]id.NodeID, coreSize)
	for i := range coreValidators {
		coreValidators[i] = id.NodeID(i)
	}
	coreQS, err := quorumset.New(coreThreshold, coreValidators, nil)
	if err != nil {
		return nil, err
	}

	nodes := make([]fbasmodel.Node, 0, coreSize+tierSize)
	for i := 0; i < coreSize; i++ {
		nodes = append(nodes, fbasmodel.Node{
			PublicKey: fmt.Sprintf("core%d", i),
			QuorumSet: coreQS,
		})
	}
	for i := 0; i < tierSize; i++ {
		self := id.NodeID(coreSize + i)
		outerQS, err := quorumset.New(2, []id.NodeID{self}, []quorumset.QuorumSet{coreQS})
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, fbasmodel.Node{
			PublicKey: fmt.Sprintf("tier1-%d", i),
			QuorumSet: outerQS,
		})
	}
	return fbasmodel.New(nodes)
}
