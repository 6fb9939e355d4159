// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package analysis implements the minimal-quorum enumerator, the
// quorum-intersection decision, and the minimal blocking-set and
// splitting-set enumerators (§4.3–§4.7), together with the minimality
// sieve they all funnel through before returning.
package analysis

import "github.com/quorumlabs/fbas/id"

// sieve reduces family to its inclusion-minimal members: sort by
// ascending cardinality, then keep a set only if no previously kept set is
// a subset of it (§4.7). O(|family|^2 * word-count).
func sieve(family []id.NodeIDSet) []id.NodeIDSet {
	if len(family) == 0 {
		return family
	}
	sorted := make([]id.NodeIDSet, len(family))
	copy(sorted, family)
	id.SortByCardinality(sorted)

	kept := make([]id.NodeIDSet, 0, len(sorted))
	for _, candidate := range sorted {
		minimal := true
		for _, k := range kept {
			if id.IsSubset(k, candidate) {
				minimal = false
				break
			}
		}
		if minimal {
			kept = append(kept, candidate)
		}
	}
	return kept
}
