// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quorumlabs/fbas/fbasmodel"
)

func TestFromJSONFlatQuorumSets(t *testing.T) {
	require := require.New(t)

	const doc = `[
		{"publicKey": "A", "quorumSet": {"threshold": 2, "validators": ["A", "B", "C"]}},
		{"publicKey": "B", "quorumSet": {"threshold": 2, "validators": ["A", "B", "C"]}},
		{"publicKey": "C", "quorumSet": {"threshold": 2, "validators": ["A", "B", "C"]}}
	]`

	f, err := FromJSON(strings.NewReader(doc))
	require.NoError(err)
	require.Equal(3, f.Len())

	a, ok := f.NodeID("A")
	require.True(ok)
	qs, ok := f.QuorumSet(a)
	require.True(ok)
	require.Equal(2, qs.Threshold)
	require.Len(qs.Validators, 3)
}

func TestFromJSONNestedInnerQuorumSets(t *testing.T) {
	require := require.New(t)

	const doc = `[
		{"publicKey": "A", "quorumSet": {
			"threshold": 1,
			"validators": ["A"],
			"innerQuorumSets": [
				{"threshold": 2, "validators": ["B", "C", "D"]}
			]
		}},
		{"publicKey": "B", "quorumSet": {"threshold": 1, "validators": ["B"]}},
		{"publicKey": "C", "quorumSet": {"threshold": 1, "validators": ["C"]}},
		{"publicKey": "D", "quorumSet": {"threshold": 1, "validators": ["D"]}}
	]`

	f, err := FromJSON(strings.NewReader(doc))
	require.NoError(err)
	require.Equal(4, f.Len())

	a, ok := f.NodeID("A")
	require.True(ok)
	qs, ok := f.QuorumSet(a)
	require.True(ok)
	require.Equal(1, qs.Threshold)
	require.Len(qs.Validators, 1)
	require.Len(qs.InnerSets, 1)
	require.Equal(2, qs.InnerSets[0].Threshold)
}

func TestFromJSONUnknownValidatorBecomesUnsatisfiablePlaceholder(t *testing.T) {
	require := require.New(t)

	const doc = `[
		{"publicKey": "A", "quorumSet": {"threshold": 2, "validators": ["A", "ghost"]}}
	]`

	f, err := FromJSON(strings.NewReader(doc))
	require.NoError(err)
	require.Equal(2, f.Len())

	ghost, ok := f.NodeID("ghost")
	require.True(ok)
	qs, ok := f.QuorumSet(ghost)
	require.True(ok)
	require.False(qs.IsQuorumSlice(f.AllNodeIDs()), "unknown node's quorum set must never be satisfiable")
}

func TestFromJSONRejectsDuplicatePublicKey(t *testing.T) {
	require := require.New(t)

	const doc = `[
		{"publicKey": "A", "quorumSet": {"threshold": 1, "validators": ["A"]}},
		{"publicKey": "A", "quorumSet": {"threshold": 1, "validators": ["A"]}}
	]`

	_, err := FromJSON(strings.NewReader(doc))
	require.ErrorIs(err, fbasmodel.ErrDuplicatePublicKey)
}

func TestFromJSONRejectsMalformedJSON(t *testing.T) {
	require := require.New(t)

	_, err := FromJSON(strings.NewReader(`not json`))
	require.Error(err)
}
