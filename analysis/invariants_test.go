// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package analysis

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/quorumlabs/fbas/fbasmodel"
	"github.com/quorumlabs/fbas/id"
	"github.com/quorumlabs/fbas/internal/bench"
	"github.com/quorumlabs/fbas/quorumset"
	"github.com/quorumlabs/fbas/reduce"
)

func checkUniversalInvariants(t *testing.T, f *fbasmodel.FBAS) {
	t.Helper()
	require := require.New(t)

	quorums := MinimalQuorums(f)

	// Invariant 1: every returned set is a minimal quorum.
	for i, q := range quorums {
		require.True(f.IsQuorum(q), "set %s is not a quorum", q)
		for j, other := range quorums {
			if i == j {
				continue
			}
			require.False(id.IsStrictSubset(other, q), "%s is not minimal: %s is a strict quorum subset", q, other)
		}
	}

	// Invariant 2: completeness. Any quorum built by adding an extra
	// intact node to an already-minimal quorum must still contain some
	// member of the returned family as a subset (trivially itself, since
	// supersets of a quorum are quorums too — every already-satisfied
	// member stays satisfied, and the returned family already contains
	// the minimal quorum being extended).
	intact := reduce.IntactNodes(f)
	intact.ForEach(func(extra id.NodeID) bool {
		for _, q := range quorums {
			if q.Contains(extra) {
				continue
			}
			superset := q.Clone()
			superset.Add(extra)
			if !f.IsQuorum(superset) {
				continue
			}
			found := false
			for _, candidate := range quorums {
				if id.IsSubset(candidate, superset) {
					found = true
					break
				}
			}
			require.True(found, "quorum %s contains no minimal quorum from the returned family", superset)
		}
		return true
	})

	// Invariant 3: intersection decision agrees with pairwise check.
	require.Equal(PairwiseIntersect(quorums), HasQuorumIntersection(f))

	// Invariant 4: every blocking set hits every quorum, minimally.
	blocking := MinimalBlockingSets(quorums, intact)
	for _, b := range blocking {
		for _, q := range quorums {
			require.True(id.Overlaps(b, q), "blocking set %s does not hit quorum %s", b, q)
		}
	}

	// Invariant 5: for every splitting set S, some two minimal quorums
	// share no member outside S.
	splitting := MinimalSplittingSets(f, intact)
	for _, s := range splitting {
		split := false
		for i := 0; i < len(quorums) && !split; i++ {
			for j := i + 1; j < len(quorums) && !split; j++ {
				split = !id.Overlaps(id.Difference(quorums[i], s), id.Difference(quorums[j], s))
			}
		}
		require.True(split, "splitting set %s leaves no two minimal quorums disjoint", s)
	}

	// Invariant 7: determinism.
	again := MinimalQuorums(f)
	require.Equal(len(quorums), len(again))
	for i := range quorums {
		require.True(id.Equal(quorums[i], again[i]))
	}
}

func TestInvariantsOnSymmetricCluster(t *testing.T) {
	f, err := bench.Symmetric(5, 3)
	require.NoError(t, err)
	checkUniversalInvariants(t, f)
}

func TestInvariantsOnDisjointClusters(t *testing.T) {
	f, err := bench.DisjointClusters(3, 3, 2)
	require.NoError(t, err)
	checkUniversalInvariants(t, f)
}

func TestInvariantsOnTieredHierarchy(t *testing.T) {
	f, err := bench.TieredHierarchy(4, 3, 3)
	require.NoError(t, err)
	checkUniversalInvariants(t, f)
}

// Invariant 6: removing a non-satisfiable node does not change the
// minimal-quorum family.
func TestInvariant6UnsatisfiableNodeDoesNotChangeMinimalQuorums(t *testing.T) {
	require := require.New(t)

	base, err := bench.Symmetric(3, 2)
	require.NoError(err)
	before := MinimalQuorums(base)

	nodes := append([]fbasmodel.Node(nil), base.Nodes()...)
	nodes = append(nodes, fbasmodel.Node{PublicKey: "stray", QuorumSet: quorumset.Unsatisfiable()})
	extended, err := fbasmodel.New(nodes)
	require.NoError(err)

	after := MinimalQuorums(extended)
	requireSetFamiliesEqual(t, before, after)
}

func TestWithLoggerAndRegistererDoNotPanic(t *testing.T) {
	require := require.New(t)

	f, err := bench.Symmetric(3, 2)
	require.NoError(err)

	logger := zap.NewExample()
	reg := prometheus.NewRegistry()

	quorums := MinimalQuorums(f, WithLogger(logger), WithRegisterer(reg))
	require.NotEmpty(quorums)

	intact := reduce.IntactNodes(f)
	_ = MinimalBlockingSets(quorums, intact, WithRegisterer(reg))
	_ = MinimalSplittingSets(f, intact, WithRegisterer(reg))
}
