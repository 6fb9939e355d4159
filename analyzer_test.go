// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package fbas

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestSDKSurfaceThreeNodeSymmetric exercises the root package's exported
// surface end to end on the §8 S1 scenario, without reaching into any
// subpackage directly.
func TestSDKSurfaceThreeNodeSymmetric(t *testing.T) {
	require := require.New(t)

	qs, err := NewQuorumSet(2, []NodeID{0, 1, 2}, nil)
	require.NoError(err)

	f, err := NewFBAS([]Node{
		{PublicKey: "A", QuorumSet: qs},
		{PublicKey: "B", QuorumSet: qs},
		{PublicKey: "C", QuorumSet: qs},
	})
	require.NoError(err)

	quorums := MinimalQuorums(f)
	require.Len(quorums, 3)
	require.True(HasQuorumIntersection(f))

	intact := IntactNodes(f)
	require.Equal(3, intact.Len())

	blocking := MinimalBlockingSets(quorums, intact)
	require.Len(blocking, 3)

	splitting := MinimalSplittingSets(f, intact)
	require.Len(splitting, 3)
}
