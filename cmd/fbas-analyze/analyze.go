// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/quorumlabs/fbas"
	"github.com/quorumlabs/fbas/ingest"
)

func analyzeCmd() *cobra.Command {
	var inputPath string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Enumerate minimal quorums, blocking sets, and splitting sets",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(inputPath, verbose)
		},
	}

	cmd.Flags().StringVar(&inputPath, "input", "", "path to a stellarbeat-format node dump (required)")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "enable diagnostic logging during enumeration")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func runAnalyze(inputPath string, verbose bool) error {
	f, err := loadFBAS(inputPath)
	if err != nil {
		return err
	}

	var opts []fbas.Option
	if verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("build logger: %w", err)
		}
		opts = append(opts, fbas.WithLogger(logger))
	}

	intact := fbas.IntactNodes(f)
	quorums := fbas.MinimalQuorums(f, opts...)
	blocking := fbas.MinimalBlockingSets(quorums, intact, opts...)
	splitting := fbas.MinimalSplittingSets(f, intact, opts...)

	fmt.Printf("nodes:            %d\n", f.Len())
	fmt.Printf("intact nodes:     %d\n", intact.Len())
	fmt.Printf("minimal quorums:  %d\n", len(quorums))
	for _, q := range quorums {
		fmt.Printf("  %s\n", describeSet(f, q))
	}
	fmt.Printf("minimal blocking sets: %d\n", len(blocking))
	for _, b := range blocking {
		fmt.Printf("  %s\n", describeSet(f, b))
	}
	fmt.Printf("minimal splitting sets: %d\n", len(splitting))
	for _, s := range splitting {
		fmt.Printf("  %s\n", describeSet(f, s))
	}
	return nil
}

func loadFBAS(inputPath string) (*fbas.FBAS, error) {
	file, err := os.Open(inputPath)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", inputPath, err)
	}
	defer file.Close()

	f, err := ingest.FromJSON(file)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", inputPath, err)
	}
	return f, nil
}

func describeSet(f *fbas.FBAS, s fbas.NodeIDSet) string {
	out := "{"
	first := true
	for _, nid := range s.SortedSlice() {
		if !first {
			out += ", "
		}
		first = false
		if pk, ok := f.PublicKey(nid); ok {
			out += pk
		} else {
			out += nid.String()
		}
	}
	return out + "}"
}
