// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package quorumset

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quorumlabs/fbas/id"
)

func TestNewRejectsMalformedThreshold(t *testing.T) {
	require := require.New(t)

	_, err := New(-1, []id.NodeID{0, 1}, nil)
	require.ErrorIs(err, ErrNegativeThreshold)

	_, err = New(3, []id.NodeID{0, 1}, nil)
	require.ErrorIs(err, ErrThresholdExceedsChildren)

	_, err = New(0, nil, nil)
	require.NoError(err)
}

func TestIsQuorumSliceThresholdZero(t *testing.T) {
	require := require.New(t)

	qs, err := New(0, []id.NodeID{0, 1}, nil)
	require.NoError(err)
	require.True(qs.IsQuorumSlice(id.NewNodeIDSet()))
	require.True(qs.IsQuorumSlice(id.Of(0)))
}

func TestIsQuorumSliceSimpleMajority(t *testing.T) {
	require := require.New(t)

	qs, err := New(2, []id.NodeID{0, 1, 2}, nil)
	require.NoError(err)

	require.False(qs.IsQuorumSlice(id.Of(0)))
	require.True(qs.IsQuorumSlice(id.Of(0, 1)))
	require.True(qs.IsQuorumSlice(id.Of(0, 1, 2)))
}

func TestIsQuorumSliceRecursiveInnerSets(t *testing.T) {
	require := require.New(t)

	inner1, err := New(2, []id.NodeID{0, 1, 2}, nil)
	require.NoError(err)
	inner2, err := New(2, []id.NodeID{2, 3, 4}, nil)
	require.NoError(err)

	qs, err := New(2, nil, []QuorumSet{inner1, inner2})
	require.NoError(err)

	require.True(qs.IsQuorumSlice(id.Of(0, 1, 2, 3)))
	require.True(qs.IsQuorumSlice(id.Of(1, 2, 3, 4)))
	require.False(qs.IsQuorumSlice(id.Of(0, 1)))
}

func TestUnsatisfiableNeverSatisfied(t *testing.T) {
	require := require.New(t)

	qs := Unsatisfiable()
	require.False(qs.IsQuorumSlice(id.Of(0, 1, 2, 3, 4, 5)))
}

func TestContainedNodes(t *testing.T) {
	require := require.New(t)

	inner, err := New(1, []id.NodeID{5, 6}, nil)
	require.NoError(err)
	qs, err := New(2, []id.NodeID{0, 1}, []QuorumSet{inner})
	require.NoError(err)

	require.True(id.Equal(qs.ContainedNodes(), id.Of(0, 1, 5, 6)))
}
