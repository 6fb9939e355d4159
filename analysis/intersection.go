// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package analysis

import (
	"github.com/quorumlabs/fbas/fbasmodel"
	"github.com/quorumlabs/fbas/id"
)

// PairwiseIntersect reports whether every pair of sets in family
// intersects. This is the quorum-intersection decision of §4.4 applied
// directly to an already-computed minimal-quorum family: O(n^2 *
// word-count).
func PairwiseIntersect(family []id.NodeIDSet) bool {
	for i := 0; i < len(family); i++ {
		for j := i + 1; j < len(family); j++ {
			if !id.Overlaps(family[i], family[j]) {
				return false
			}
		}
	}
	return true
}

// HasQuorumIntersection decides whether f enjoys quorum intersection:
// every pair of its quorums intersects, equivalently every pair of its
// minimal quorums intersects (§4.4). It enumerates minimal quorums
// sink-by-sink and aborts as soon as any two collected quorums are found
// disjoint (§4.3's short-circuit), rather than always materializing the
// full family first.
func HasQuorumIntersection(f *fbasmodel.FBAS, opts ...Option) bool {
	cfg := newConfig(opts...)
	var collected []id.NodeIDSet
	intersects := true

	for _, sink := range sinkSCCs(f) {
		if !intersects {
			break
		}
		onFound := func(q id.NodeIDSet) bool {
			for _, prev := range collected {
				if !id.Overlaps(q, prev) {
					intersects = false
					return false
				}
			}
			collected = append(collected, q)
			return true
		}
		minimalQuorumsInUniverse(f, sink, cfg, onFound)
	}

	return intersects
}
