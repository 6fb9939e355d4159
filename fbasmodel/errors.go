// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package fbasmodel

import "errors"

// Errors returned while constructing an FBAS. Per §7 these are rejected at
// construction; the core never tolerates them mid-analysis.
var (
	// ErrDuplicatePublicKey is returned when two nodes share a public key.
	ErrDuplicatePublicKey = errors.New("fbasmodel: duplicate public key")

	// ErrNodeReferenceOutOfRange is returned when a quorum set names a
	// NodeID that is not in range for the node list. The ingestion
	// collaborator (§6) is expected to register "unknown" public keys as
	// degenerate nodes before construction so this never fires in
	// practice; the core still checks it defensively.
	ErrNodeReferenceOutOfRange = errors.New("fbasmodel: quorum set references an out-of-range node id")
)
