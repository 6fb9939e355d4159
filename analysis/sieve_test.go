// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package analysis

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quorumlabs/fbas/id"
)

func TestSieveRemovesSupersetsAndDuplicates(t *testing.T) {
	require := require.New(t)

	family := []id.NodeIDSet{
		id.Of(1, 2, 3),
		id.Of(1, 2),
		id.Of(1, 2), // duplicate
		id.Of(4),
	}

	result := sieve(family)
	require.Len(result, 2)

	var foundSmall, foundSingleton bool
	for _, s := range result {
		if id.Equal(s, id.Of(1, 2)) {
			foundSmall = true
		}
		if id.Equal(s, id.Of(4)) {
			foundSingleton = true
		}
	}
	require.True(foundSmall)
	require.True(foundSingleton)
}

func TestSieveEmptyFamily(t *testing.T) {
	require := require.New(t)
	require.Empty(sieve(nil))
}
