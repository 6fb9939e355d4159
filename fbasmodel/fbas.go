// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package fbasmodel holds the Node and FBAS types: nodes keyed by public
// identifier, each holding a quorum set, plus the lookup tables the rest
// of the analyzer is built on.
package fbasmodel

import (
	"fmt"

	"github.com/quorumlabs/fbas/id"
	"github.com/quorumlabs/fbas/quorumset"
)

// Node is a single FBAS participant: a stable public identifier and the
// quorum set it declares. Identity is the PublicKey.
type Node struct {
	PublicKey string
	QuorumSet quorumset.QuorumSet
}

// FBAS is an ordered sequence of Nodes plus the public-key-to-NodeID
// mapping. NodeIDs are dense indices into the node list, assigned in input
// order; all set algebra elsewhere in the analyzer is expressed in terms
// of these indices. An FBAS is read-only for its entire lifetime: there is
// no incremental update API (§5).
type FBAS struct {
	nodes []Node
	index map[string]id.NodeID
}

// New constructs an FBAS from an ordered node list, assigning NodeID i to
// nodes[i]. It rejects duplicate public keys and any quorum set that
// references a NodeID outside [0, len(nodes)).
func New(nodes []Node) (*FBAS, error) {
	index := make(map[string]id.NodeID, len(nodes))
	for i, n := range nodes {
		if _, dup := index[n.PublicKey]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicatePublicKey, n.PublicKey)
		}
		index[n.PublicKey] = id.NodeID(i)
	}

	f := &FBAS{nodes: nodes, index: index}
	if err := f.validateReferences(); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *FBAS) validateReferences() error {
	limit := id.NodeID(len(f.nodes))
	var walk func(qs quorumset.QuorumSet) error
	walk = func(qs quorumset.QuorumSet) error {
		for _, v := range qs.Validators {
			if v >= limit {
				return fmt.Errorf("%w: %s", ErrNodeReferenceOutOfRange, v)
			}
		}
		for i := range qs.InnerSets {
			if err := walk(qs.InnerSets[i]); err != nil {
				return err
			}
		}
		return nil
	}
	for _, n := range f.nodes {
		if err := walk(n.QuorumSet); err != nil {
			return err
		}
	}
	return nil
}

// Len returns the number of nodes in the FBAS.
func (f *FBAS) Len() int {
	return len(f.nodes)
}

// NodeID returns the NodeID assigned to publicKey, if any.
func (f *FBAS) NodeID(publicKey string) (id.NodeID, bool) {
	nid, ok := f.index[publicKey]
	return nid, ok
}

// PublicKey returns the public key of nid, if it is in range.
func (f *FBAS) PublicKey(nid id.NodeID) (string, bool) {
	if int(nid) >= len(f.nodes) {
		return "", false
	}
	return f.nodes[nid].PublicKey, true
}

// QuorumSet returns the quorum set declared by nid, if it is in range.
func (f *FBAS) QuorumSet(nid id.NodeID) (quorumset.QuorumSet, bool) {
	if int(nid) >= len(f.nodes) {
		return quorumset.QuorumSet{}, false
	}
	return f.nodes[nid].QuorumSet, true
}

// Node returns the Node assigned to nid, if it is in range.
func (f *FBAS) Node(nid id.NodeID) (Node, bool) {
	if int(nid) >= len(f.nodes) {
		return Node{}, false
	}
	return f.nodes[nid], true
}

// Nodes returns the underlying node list. Callers must not mutate it.
func (f *FBAS) Nodes() []Node {
	return f.nodes
}

// AllNodeIDs returns the set of every NodeID in the FBAS, [0, Len()).
func (f *FBAS) AllNodeIDs() id.NodeIDSet {
	out := id.NewNodeIDSetCapacity(uint(len(f.nodes)))
	for i := range f.nodes {
		out.Add(id.NodeID(i))
	}
	return out
}

// IsQuorum reports whether S is a quorum: nonempty, and every member's
// quorum set is satisfied by S (§3).
func (f *FBAS) IsQuorum(s id.NodeIDSet) bool {
	if s.IsEmpty() {
		return false
	}
	quorum := true
	s.ForEach(func(v id.NodeID) bool {
		qs, ok := f.QuorumSet(v)
		if !ok || !qs.IsQuorumSlice(s) {
			quorum = false
			return false
		}
		return true
	})
	return quorum
}

// WithoutNodes returns a new FBAS with the nodes in removed deleted. Every
// remaining node keeps its original NodeID and quorum set. A removed node
// keeps its NodeID slot but loses its public key and gets the never-
// satisfied quorum set, just as an "unknown" node per §6.
func (f *FBAS) WithoutNodes(removed id.NodeIDSet) *FBAS {
	nodes := make([]Node, len(f.nodes))
	copy(nodes, f.nodes)
	index := make(map[string]id.NodeID, len(f.index))
	for k, v := range f.index {
		index[k] = v
	}
	removed.ForEach(func(v id.NodeID) bool {
		if int(v) < len(nodes) {
			delete(index, nodes[v].PublicKey)
			nodes[v] = Node{PublicKey: "", QuorumSet: quorumset.Unsatisfiable()}
		}
		return true
	})
	return &FBAS{nodes: nodes, index: index}
}
