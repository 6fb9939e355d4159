// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

/*
Package fbas provides a clean, single-import interface to the FBAS
structural analyzer.

# Overview

A Federated Byzantine Agreement System (FBAS) is a set of nodes, each
declaring a quorum set describing whom it trusts. This package answers
the structural questions that matter before any consensus round runs:
which sets of nodes form a quorum, whether the system enjoys quorum
intersection, and which small sets of nodes can block progress or split
the network into disagreeing quorums.

# Building an FBAS

Construct nodes directly, or ingest a stellarbeat-format network dump
with the ingest subpackage:

	nodes := []fbasmodel.Node{
		{PublicKey: "A", QuorumSet: qs},
		{PublicKey: "B", QuorumSet: qs},
	}
	f, err := fbasmodel.New(nodes)

# Analysis

	quorums := fbas.MinimalQuorums(f)
	ok := fbas.HasQuorumIntersection(f)
	blocking := fbas.MinimalBlockingSets(quorums, fbas.IntactNodes(f))
	splitting := fbas.MinimalSplittingSets(f, fbas.IntactNodes(f))

Every enumerator accepts functional options (WithLogger, WithRegisterer)
for diagnostic logging and Prometheus instrumentation; both are optional
and nil-safe.

# Scope

This package performs structural analysis only: it does not run a
consensus protocol, does not maintain any mutable network state, and
does not persist anything to disk. An FBAS, once built, is analyzed
read-only for its entire lifetime.
*/
package fbas
