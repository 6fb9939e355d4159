// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/quorumlabs/fbas"
	"github.com/quorumlabs/fbas/internal/bench"
)

func benchCmd() *cobra.Command {
	var topology string
	var size int
	var threshold int

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run the analyzer against a synthetic network and report timing",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(topology, size, threshold)
		},
	}

	cmd.Flags().StringVar(&topology, "topology", "symmetric", "synthetic topology: symmetric, disjoint, tiered")
	cmd.Flags().IntVar(&size, "size", 7, "node count (per cluster for disjoint, core size for tiered)")
	cmd.Flags().IntVar(&threshold, "threshold", 4, "quorum slice threshold")

	return cmd
}

func runBench(topology string, size, threshold int) error {
	var f *fbas.FBAS
	var err error

	switch topology {
	case "symmetric":
		f, err = bench.Symmetric(size, threshold)
	case "disjoint":
		f, err = bench.DisjointClusters(3, size, threshold)
	case "tiered":
		f, err = bench.TieredHierarchy(size, threshold, size)
	default:
		return fmt.Errorf("unknown topology %q: want symmetric, disjoint, or tiered", topology)
	}
	if err != nil {
		return fmt.Errorf("generate topology: %w", err)
	}

	start := time.Now()
	quorums := fbas.MinimalQuorums(f)
	elapsed := time.Since(start)

	fmt.Printf("topology:        %s\n", topology)
	fmt.Printf("nodes:           %d\n", f.Len())
	fmt.Printf("minimal quorums: %d\n", len(quorums))
	fmt.Printf("elapsed:         %s\n", elapsed)
	return nil
}
