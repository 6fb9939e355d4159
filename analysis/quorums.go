// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package analysis

import (
	"go.uber.org/zap"

	"github.com/quorumlabs/fbas/fbasmodel"
	"github.com/quorumlabs/fbas/id"
	"github.com/quorumlabs/fbas/reduce"
)

// MinimalQuorums returns every inclusion-minimal quorum of f (§4.3). The
// search is restricted to the intact set, decomposed into sink strongly
// connected components (§4.2); each sink is searched independently (with
// a symmetric-cluster fast path where it applies) and the results are
// unioned and passed through the minimality sieve (§4.7).
//
// Output order is deterministic: within a sink, the DFS pivot rule always
// picks the lowest NodeID (§5); across sinks, results are appended in the
// order SinkSCCs returns them.
func MinimalQuorums(f *fbasmodel.FBAS, opts ...Option) []id.NodeIDSet {
	cfg := newConfig(opts...)
	var all []id.NodeIDSet
	for _, sink := range sinkSCCs(f) {
		all = append(all, minimalQuorumsInUniverse(f, sink, cfg, nil)...)
	}
	result := sieve(all)
	cfg.logger.Debug("minimal quorums enumerated",
		zap.Int("candidates", len(all)),
		zap.Int("minimal", len(result)),
	)
	cfg.metrics.observeEnumeration(len(result))
	return result
}

func sinkSCCs(f *fbasmodel.FBAS) []id.NodeIDSet {
	intact := reduce.IntactNodes(f)
	return reduce.SinkSCCs(f, intact)
}

// minimalQuorumsInUniverse enumerates the minimal quorums contained in
// universe. onFound, if non-nil, is invoked for every quorum as soon as
// it is found; returning false aborts the remainder of the search (used
// by the quorum-intersection short-circuit, §4.3).
func minimalQuorumsInUniverse(f *fbasmodel.FBAS, universe id.NodeIDSet, cfg *Config, onFound func(id.NodeIDSet) bool) []id.NodeIDSet {
	if shared, ok := reduce.DetectSymmetric(f, universe); ok {
		quorums := reduce.SymmetricMinimalQuorums(shared, universe)
		for _, q := range quorums {
			if onFound != nil && !onFound(q) {
				break
			}
		}
		return quorums
	}

	s := &quorumSearch{f: f, cfg: cfg, onFound: onFound}
	s.search(id.NewNodeIDSet(), universe)
	return s.results
}

// quorumSearch holds the mutable state of a single depth-first search
// over subsets of a node universe (§4.3).
type quorumSearch struct {
	f       *fbasmodel.FBAS
	cfg     *Config
	onFound func(id.NodeIDSet) bool
	results []id.NodeIDSet
	aborted bool
}

// search explores the branch defined by (committed, remaining), per the
// invariants of §4.3:
//   - every v in committed has quorum_set(v) satisfiable by committed ∪ remaining
//   - committed is not yet known to be a quorum
func (s *quorumSearch) search(committed, remaining id.NodeIDSet) {
	if s.aborted {
		return
	}
	s.cfg.metrics.observeBranch()

	if s.f.IsQuorum(committed) {
		q := committed.Clone()
		s.results = append(s.results, q)
		if s.onFound != nil && !s.onFound(q) {
			s.aborted = true
		}
		return
	}
	if remaining.IsEmpty() {
		return
	}

	pivot, _ := remaining.Min()

	committedIn := committed.Clone()
	committedIn.Add(pivot)
	remainingAfter := remaining.Clone()
	remainingAfter.Remove(pivot)

	if s.satisfiablePrune(committedIn, remainingAfter) {
		s.search(committedIn, remainingAfter)
	} else {
		s.cfg.metrics.observePrune()
	}
	if s.aborted {
		return
	}

	if s.satisfiablePrune(committed, remainingAfter) {
		s.search(committed, remainingAfter)
	} else {
		s.cfg.metrics.observePrune()
	}
}

// satisfiablePrune reports whether every node in committed can still be
// satisfied by committed ∪ remaining — the prune condition applied
// before descending into a branch (§4.3).
func (s *quorumSearch) satisfiablePrune(committed, remaining id.NodeIDSet) bool {
	union := id.Union2(committed, remaining)
	ok := true
	committed.ForEach(func(v id.NodeID) bool {
		qs, present := s.f.QuorumSet(v)
		if !present || !qs.IsQuorumSlice(union) {
			ok = false
			return false
		}
		return true
	})
	return ok
}
