// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Command fbas-analyze is a thin cobra front-end over the fbas analyzer:
// it parses a stellarbeat node dump, calls the public analyzer API, and
// prints the results. It contains no analytical logic of its own (§6).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fbas-analyze",
	Short: "Structural analysis of Federated Byzantine Agreement Systems",
	Long: `fbas-analyze loads a stellarbeat-format network dump and reports on its
quorum structure: minimal quorums, quorum intersection, and the minimal sets of
nodes that can block progress or split the network into disagreeing quorums.`,
}

func main() {
	rootCmd.AddCommand(
		analyzeCmd(),
		checkIntersectionCmd(),
		benchCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
