// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package ingest implements the stellarbeat JSON ingestion contract and
// the organization-merge preprocessor described as external collaborators
// in §6 of the specification: thin adapters that produce an
// *fbasmodel.FBAS for the core to analyze. Translating NodeIDs back to
// public keys is not done here; FBAS.PublicKey provides that lookup.
package ingest

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/quorumlabs/fbas/fbasmodel"
	"github.com/quorumlabs/fbas/id"
	"github.com/quorumlabs/fbas/quorumset"
)

// rawQuorumSet mirrors the stellarbeat wire shape:
//
//	{ "threshold": int, "validators": [string], "innerQuorumSets": [...] }
type rawQuorumSet struct {
	Threshold       int            `json:"threshold"`
	Validators      []string       `json:"validators"`
	InnerQuorumSets []rawQuorumSet `json:"innerQuorumSets"`
}

// rawNode mirrors a single stellarbeat node dump entry.
type rawNode struct {
	PublicKey string       `json:"publicKey"`
	QuorumSet rawQuorumSet `json:"quorumSet"`
}

// FromJSON parses a stellarbeat node-dump array and builds an FBAS from
// it, in input order. Public keys referenced inside a quorum set but
// absent from the array are registered as NodeIDs with a degenerate
// threshold-1-no-children quorum set (§6), so the core's intact-set
// reduction discards them without the ingestion layer having to decide
// anything about them.
func FromJSON(r io.Reader) (*fbasmodel.FBAS, error) {
	var raw []rawNode
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("ingest: decode stellarbeat dump: %w", err)
	}
	return build(raw)
}

func build(raw []rawNode) (*fbasmodel.FBAS, error) {
	index := make(map[string]id.NodeID, len(raw))
	for i, n := range raw {
		if _, exists := index[n.PublicKey]; exists {
			return nil, fmt.Errorf("%w: %q", fbasmodel.ErrDuplicatePublicKey, n.PublicKey)
		}
		index[n.PublicKey] = id.NodeID(i)
	}

	nodes := make([]fbasmodel.Node, len(raw))
	for i, n := range raw {
		qs, err := resolveQuorumSet(n.QuorumSet, index, &nodes)
		if err != nil {
			return nil, fmt.Errorf("ingest: node %q: %w", n.PublicKey, err)
		}
		nodes[i] = fbasmodel.Node{PublicKey: n.PublicKey, QuorumSet: qs}
	}

	// nodes may now be longer than raw: resolveQuorumSet appended a
	// placeholder for every public key referenced but never declared.
	return fbasmodel.New(nodes)
}

// resolveQuorumSet converts a rawQuorumSet into a quorumset.QuorumSet,
// resolving each validator's public key to a NodeID. An unknown public
// key is assigned a fresh NodeID on first encounter and appended to
// nodes with a degenerate, never-satisfiable quorum set (§6).
func resolveQuorumSet(
	raw rawQuorumSet,
	index map[string]id.NodeID,
	nodes *[]fbasmodel.Node,
) (quorumset.QuorumSet, error) {
	validators := make([]id.NodeID, 0, len(raw.Validators))
	for _, key := range raw.Validators {
		validators = append(validators, resolveOrRegister(key, index, nodes))
	}

	inner := make([]quorumset.QuorumSet, 0, len(raw.InnerQuorumSets))
	for _, innerRaw := range raw.InnerQuorumSets {
		qs, err := resolveQuorumSet(innerRaw, index, nodes)
		if err != nil {
			return quorumset.QuorumSet{}, err
		}
		inner = append(inner, qs)
	}

	return quorumset.New(raw.Threshold, validators, inner)
}

func resolveOrRegister(key string, index map[string]id.NodeID, nodes *[]fbasmodel.Node) id.NodeID {
	if nid, ok := index[key]; ok {
		return nid
	}
	nid := id.NodeID(len(*nodes))
	index[key] = nid
	*nodes = append(*nodes, fbasmodel.Node{PublicKey: key, QuorumSet: quorumset.Unsatisfiable()})
	return nid
}
