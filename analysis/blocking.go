// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package analysis

import "github.com/quorumlabs/fbas/id"

// MinimalBlockingSets enumerates all inclusion-minimal NodeIDSets B ⊆
// target such that B intersects every quorum in quorums (§4.5): the
// minimal hitting sets of the quorum family, restricted to target (the
// set of nodes whose silence is actually being considered — by
// convention the intact set, see §9's Open Question).
//
// At each step the unhit quorum with the smallest cardinality is chosen
// (the branching-factor heuristic of §4.5); nodes committed in earlier
// sibling branches are excluded from later ones so the same hitting set
// is never produced twice by a different last-added node. The minimality
// sieve (§4.7) is still applied to the final family, since the exclusion
// rule alone is not a complete minimality proof for multi-level
// branching.
func MinimalBlockingSets(quorums []id.NodeIDSet, target id.NodeIDSet, opts ...Option) []id.NodeIDSet {
	cfg := newConfig(opts...)
	s := &blockingSearch{target: target, cfg: cfg}
	s.search(id.NewNodeIDSet(), quorums, id.NewNodeIDSet())

	result := sieve(s.results)
	cfg.metrics.observeEnumeration(len(result))
	return result
}

type blockingSearch struct {
	target  id.NodeIDSet
	cfg     *Config
	results []id.NodeIDSet
}

func (s *blockingSearch) search(selected id.NodeIDSet, unhit []id.NodeIDSet, excludedBySiblings id.NodeIDSet) {
	s.cfg.metrics.observeBranch()

	if len(unhit) == 0 {
		s.results = append(s.results, selected.Clone())
		return
	}

	smallest := 0
	for i := 1; i < len(unhit); i++ {
		if unhit[i].Len() < unhit[smallest].Len() {
			smallest = i
		}
	}

	candidates := id.Intersection(unhit[smallest], s.target)
	candidates = id.Difference(candidates, excludedBySiblings)
	if candidates.IsEmpty() {
		s.cfg.metrics.observePrune()
		return
	}

	excluded := excludedBySiblings.Clone()
	candidates.ForEach(func(v id.NodeID) bool {
		newSelected := selected.Clone()
		newSelected.Add(v)
		s.search(newSelected, hitBy(unhit, v), excluded)
		excluded.Add(v)
		return true
	})
}

// hitBy returns the subsequence of quorums not containing v.
func hitBy(quorums []id.NodeIDSet, v id.NodeID) []id.NodeIDSet {
	out := make([]id.NodeIDSet, 0, len(quorums))
	for _, q := range quorums {
		if !q.Contains(v) {
			out = append(out, q)
		}
	}
	return out
}
