// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package reduce

import (
	"sort"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/quorumlabs/fbas/fbasmodel"
	"github.com/quorumlabs/fbas/id"
)

// buildReferenceGraph builds the directed graph G where edge u->v exists
// iff v is named anywhere in quorum_set(u), restricted to nodes in
// universe. This is the graph §4.2 decomposes into strongly connected
// components.
func buildReferenceGraph(f *fbasmodel.FBAS, universe id.NodeIDSet) *simple.DirectedGraph {
	g := simple.NewDirectedGraph()
	universe.ForEach(func(v id.NodeID) bool {
		g.AddNode(simple.Node(int64(v)))
		return true
	})
	universe.ForEach(func(u id.NodeID) bool {
		qs, ok := f.QuorumSet(u)
		if !ok {
			return true
		}
		qs.ContainedNodes().ForEach(func(v id.NodeID) bool {
			if v != u && universe.Contains(v) {
				g.SetEdge(simple.Edge{F: simple.Node(int64(u)), T: simple.Node(int64(v))})
			}
			return true
		})
		return true
	})
	return g
}

// SCCs returns the strongly connected components of the node-reference
// graph restricted to universe, computed with gonum's Tarjan
// implementation (§4.2, §9). Components are returned in ascending order
// of their lowest NodeID.
func SCCs(f *fbasmodel.FBAS, universe id.NodeIDSet) []id.NodeIDSet {
	g := buildReferenceGraph(f, universe)
	comps := topo.TarjanSCC(g)

	out := make([]id.NodeIDSet, len(comps))
	for i, comp := range comps {
		s := id.NewNodeIDSetCapacity(uint(universe.Len()))
		for _, n := range comp {
			s.Add(id.NodeID(n.ID()))
		}
		out[i] = s
	}
	// Tarjan's component order follows the graph's node iteration order,
	// which is not stable across runs.
	sort.Slice(out, func(i, j int) bool {
		a, _ := out[i].Min()
		b, _ := out[j].Min()
		return a < b
	})
	return out
}

// SinkSCCs returns the strongly connected components of universe's
// reference graph that are sinks in the condensation: no node in the
// component names a node outside it. Every quorum lies entirely within
// exactly one such component (§4.2); the minimal-quorum enumerator is
// applied to each sink SCC independently and the results are unioned.
func SinkSCCs(f *fbasmodel.FBAS, universe id.NodeIDSet) []id.NodeIDSet {
	comps := SCCs(f, universe)

	compOf := make(map[id.NodeID]int, universe.Len())
	for ci, comp := range comps {
		comp.ForEach(func(v id.NodeID) bool {
			compOf[v] = ci
			return true
		})
	}

	hasOutsideEdge := make([]bool, len(comps))
	universe.ForEach(func(u id.NodeID) bool {
		qs, ok := f.QuorumSet(u)
		if !ok {
			return true
		}
		ci := compOf[u]
		qs.ContainedNodes().ForEach(func(v id.NodeID) bool {
			if universe.Contains(v) && compOf[v] != ci {
				hasOutsideEdge[ci] = true
			}
			return true
		})
		return true
	})

	sinks := make([]id.NodeIDSet, 0, len(comps))
	for ci, comp := range comps {
		if !hasOutsideEdge[ci] {
			sinks = append(sinks, comp)
		}
	}
	return sinks
}
