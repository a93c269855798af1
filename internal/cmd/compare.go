// Copyright 2025 Rollupcost Users
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"strconv"

	"github.com/dotandev/rollupcost/internal/costmodel"
	"github.com/dotandev/rollupcost/internal/errors"
	"github.com/dotandev/rollupcost/internal/render"
	"github.com/spf13/cobra"
)

var (
	compareBatchSize int64
	compareGasPrice  float64
)

var compareCmd = &cobra.Command{
	Use:   "compare <tx_count>",
	Short: "Estimate the same batch under every builtin profile",
	Long: `Run one estimate per builtin profile and print the results side by side.

Useful for picking the cheapest rollup design for a given workload.

Example:
  rollupcost compare 10000 --batch-size 512 --gas-price-gwei 30`,
	Args: cobra.ExactArgs(1),
	RunE: runCompare,
}

func runCompare(cmd *cobra.Command, args []string) error {
	txCount, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return errors.WrapInvalidInput("tx_count must be an integer")
	}

	profiles := costmodel.Builtin()
	summaries := make([]*costmodel.Summary, 0, len(profiles))
	for _, p := range profiles {
		s, err := costmodel.Estimate(p, txCount, compareBatchSize, compareGasPrice)
		if err != nil {
			return err
		}
		summaries = append(summaries, s)
	}

	render.CompareTable(cmd.OutOrStdout(), summaries)
	return nil
}

func init() {
	compareCmd.Flags().Int64Var(&compareBatchSize, "batch-size", 256, "Number of transactions per batch")
	compareCmd.Flags().Float64Var(&compareGasPrice, "gas-price-gwei", 20.0, "Gas price in gwei")
	rootCmd.AddCommand(compareCmd)
}
