// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package id implements the dense NodeID index and the word-parallel
// NodeIDSet bit-set used throughout the FBAS analyzer.
package id

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// NodeID is a dense, nonnegative index into the node universe of an FBAS.
// It is assigned at FBAS construction time in input order; the node's
// stable public identifier lives in a parallel table, never in the NodeID
// itself.
type NodeID uint32

// String renders a NodeID for diagnostics. It is not the public key.
func (n NodeID) String() string {
	return fmt.Sprintf("n%d", uint32(n))
}

// minSetCapacity is the initial bit-set capacity, in bits, for a fresh
// NodeIDSet. The Stellar validator count today is in the low hundreds
// (§9), so this comfortably avoids growth on the first few inserts.
const minSetCapacity = 256

// NodeIDSet is a set of NodeIDs backed by a word-parallel bit-set. The zero
// value is a usable empty set. Insertion order is irrelevant; equality is
// set equality.
type NodeIDSet struct {
	bits *bitset.BitSet
}

// NewNodeIDSet returns an empty set with a default initial capacity.
func NewNodeIDSet() NodeIDSet {
	return NodeIDSet{bits: bitset.New(minSetCapacity)}
}

// NewNodeIDSetCapacity returns an empty set sized for at least capacity
// distinct NodeIDs.
func NewNodeIDSetCapacity(capacity uint) NodeIDSet {
	if capacity < minSetCapacity {
		capacity = minSetCapacity
	}
	return NodeIDSet{bits: bitset.New(capacity)}
}

// Of returns a set initialized with elts.
func Of(elts ...NodeID) NodeIDSet {
	s := NewNodeIDSet()
	s.Add(elts...)
	return s
}

// ensureInit lazily allocates the backing bit-set; bitset.BitSet.Set
// grows to fit any index past the initial capacity on its own, so there
// is nothing here tied to the value being inserted.
func (s *NodeIDSet) ensureInit() {
	if s.bits == nil {
		s.bits = bitset.New(minSetCapacity)
	}
}

// Add inserts elts into the set.
func (s *NodeIDSet) Add(elts ...NodeID) {
	for _, v := range elts {
		s.ensureInit()
		s.bits.Set(uint(v))
	}
}

// Remove deletes elts from the set, if present.
func (s *NodeIDSet) Remove(elts ...NodeID) {
	if s.bits == nil {
		return
	}
	for _, v := range elts {
		s.bits.Clear(uint(v))
	}
}

// Contains reports whether v is in the set.
func (s NodeIDSet) Contains(v NodeID) bool {
	if s.bits == nil {
		return false
	}
	return s.bits.Test(uint(v))
}

// Len returns the number of elements in the set, in O(word-count).
func (s NodeIDSet) Len() int {
	if s.bits == nil {
		return 0
	}
	return int(s.bits.Count())
}

// IsEmpty reports whether the set has no elements.
func (s NodeIDSet) IsEmpty() bool {
	return s.bits == nil || s.bits.None()
}

// Clone returns an independent copy of the set.
func (s NodeIDSet) Clone() NodeIDSet {
	if s.bits == nil {
		return NewNodeIDSet()
	}
	return NodeIDSet{bits: s.bits.Clone()}
}

// Union mutates s in place to include every element of other.
func (s *NodeIDSet) Union(other NodeIDSet) {
	if other.bits == nil {
		return
	}
	if s.bits == nil {
		s.bits = bitset.New(minSetCapacity)
	}
	s.bits.InPlaceUnion(other.bits)
}

// Intersect mutates s in place to keep only elements also in other.
func (s *NodeIDSet) Intersect(other NodeIDSet) {
	if s.bits == nil {
		return
	}
	if other.bits == nil {
		s.bits = bitset.New(minSetCapacity)
		return
	}
	s.bits.InPlaceIntersection(other.bits)
}

// Difference mutates s in place to remove every element also in other.
func (s *NodeIDSet) Difference(other NodeIDSet) {
	if s.bits == nil || other.bits == nil {
		return
	}
	s.bits.InPlaceDifference(other.bits)
}

// Union2 returns a new set containing the union of a and b, leaving both
// untouched. Named to avoid colliding with the in-place Union method.
func Union2(a, b NodeIDSet) NodeIDSet {
	out := a.Clone()
	out.Union(b)
	return out
}

// Intersection returns a new set containing the intersection of a and b.
func Intersection(a, b NodeIDSet) NodeIDSet {
	out := a.Clone()
	out.Intersect(b)
	return out
}

// Difference returns a new set containing a minus b.
func Difference(a, b NodeIDSet) NodeIDSet {
	out := a.Clone()
	out.Difference(b)
	return out
}

// Overlaps reports whether a and b share at least one element.
func Overlaps(a, b NodeIDSet) bool {
	if a.bits == nil || b.bits == nil {
		return false
	}
	return a.bits.IntersectionCardinality(b.bits) > 0
}

// Equal reports whether a and b contain exactly the same elements.
func Equal(a, b NodeIDSet) bool {
	switch {
	case a.bits == nil && b.bits == nil:
		return true
	case a.bits == nil:
		return b.bits.None()
	case b.bits == nil:
		return a.bits.None()
	default:
		return a.bits.Equal(b.bits)
	}
}

// IsSubset reports whether every element of a is also in b.
func IsSubset(a, b NodeIDSet) bool {
	if a.bits == nil {
		return true
	}
	if b.bits == nil {
		return a.bits.None()
	}
	return a.bits.Difference(b.bits).None()
}

// IsStrictSubset reports whether a is a subset of b and a != b.
func IsStrictSubset(a, b NodeIDSet) bool {
	return IsSubset(a, b) && !Equal(a, b)
}

// SortedSlice returns the elements of the set as an ascending slice of
// NodeIDs. This is also the canonical bit-set serialization mentioned in
// §6 of the specification.
func (s NodeIDSet) SortedSlice() []NodeID {
	if s.bits == nil {
		return nil
	}
	out := make([]NodeID, 0, s.bits.Count())
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		out = append(out, NodeID(i))
	}
	return out
}

// Min returns the lowest NodeID in the set and true, or (0, false) if the
// set is empty. Used by the enumerators' deterministic pivot rule (§4.3,
// §5): picking the lowest NodeID gives reproducible output.
func (s NodeIDSet) Min() (NodeID, bool) {
	if s.bits == nil {
		return 0, false
	}
	i, ok := s.bits.NextSet(0)
	if !ok {
		return 0, false
	}
	return NodeID(i), true
}

// ForEach calls f for every element of the set in ascending order. Iteration
// stops early if f returns false.
func (s NodeIDSet) ForEach(f func(NodeID) bool) {
	if s.bits == nil {
		return
	}
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		if !f(NodeID(i)) {
			return
		}
	}
}

// String renders the set as an ascending, comma-separated list of NodeIDs.
func (s NodeIDSet) String() string {
	elts := s.SortedSlice()
	parts := make([]string, len(elts))
	for i, e := range elts {
		parts[i] = e.String()
	}
	return "{" + strings.Join(parts, ",") + "}"
}

// SortByCardinality sorts a family of sets ascending by Len(), the order
// required by the minimality sieve (§4.7).
func SortByCardinality(family []NodeIDSet) {
	sort.SliceStable(family, func(i, j int) bool {
		return family[i].Len() < family[j].Len()
	})
}
