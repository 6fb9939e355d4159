// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quorumlabs/fbas"
)

func checkIntersectionCmd() *cobra.Command {
	var inputPath string

	cmd := &cobra.Command{
		Use:   "check-intersection",
		Short: "Decide whether the network enjoys quorum intersection",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := loadFBAS(inputPath)
			if err != nil {
				return err
			}
			if fbas.HasQuorumIntersection(f) {
				fmt.Println("quorum intersection: holds")
				return nil
			}
			fmt.Println("quorum intersection: FAILS")
			return nil
		},
	}

	cmd.Flags().StringVar(&inputPath, "input", "", "path to a stellarbeat-format node dump (required)")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
