// Copyright 2025 Rollupcost Users
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"fmt"
	"io"

	"github.com/dotandev/rollupcost/internal/costmodel"
	"github.com/fatih/color"
)

var (
	headingColor = color.New(color.FgCyan, color.Bold)
	labelColor   = color.New(color.Bold)
)

// Human writes the readable form of a summary.
func Human(w io.Writer, s *costmodel.Summary) {
	headingColor.Fprintln(w, "🔍 Rollup cost estimate")
	fmt.Fprintf(w, "Profile      : %s (%s)\n", s.Profile.Name, s.Profile.Key)
	fmt.Fprintf(w, "Description  : %s\n", s.Profile.Description)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Transactions : %d\n", s.TxCount)
	fmt.Fprintf(w, "Batch size   : %d\n", s.BatchSize)
	fmt.Fprintf(w, "Batches      : %d\n", s.Batches)
	fmt.Fprintf(w, "Gas price    : %.2f gwei\n", s.GasPriceGwei)
	fmt.Fprintln(w)
	labelColor.Fprintln(w, "Gas breakdown (units of gas):")
	fmt.Fprintf(w, "  Proof gas per batch      : %d\n", s.Profile.ProofGas)
	fmt.Fprintf(w, "  Overhead gas per batch   : %d\n", s.Profile.OverheadGasPerBatch)
	fmt.Fprintf(w, "  Calldata gas per tx      : %d\n", s.Profile.CalldataGasPerTx)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Total proof gas          : %d\n", s.TotalProofGas)
	fmt.Fprintf(w, "  Total overhead gas       : %d\n", s.TotalOverheadGas)
	fmt.Fprintf(w, "  Total calldata gas       : %d\n", s.TotalCalldataGas)
	fmt.Fprintf(w, "  Total gas                : %d\n", s.TotalGas)
	fmt.Fprintln(w)
	labelColor.Fprintln(w, "Cost estimate:")
	fmt.Fprintf(w, "  Total fee   : %.6f ETH\n", s.TotalFeeEth)
	fmt.Fprintf(w, "  Per tx fee  : %.8f ETH\n", s.PerTxFeeEth)
	fmt.Fprintf(w, "  Per tx gas  : %.2f gas\n", s.PerTxGas)
}

// ProfileList writes the registry listing used by --list-profiles.
func ProfileList(w io.Writer, profiles []costmodel.Profile) {
	headingColor.Fprintln(w, "Available profiles:")
	for _, p := range profiles {
		fmt.Fprintf(w, "- %s: %s\n", p.Key, p.Name)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Use --profile with one of the keys above, or 'custom' to provide your own parameters.")
}

// CompareTable writes one row per profile for the compare command.
func CompareTable(w io.Writer, summaries []*costmodel.Summary) {
	if len(summaries) == 0 {
		return
	}
	s := summaries[0]
	headingColor.Fprintf(w, "Profile comparison: %d txs, batch size %d, %.2f gwei\n\n",
		s.TxCount, s.BatchSize, s.GasPriceGwei)

	fmt.Fprintf(w, "%-12s | %-8s | %-14s | %-12s | %-14s\n",
		"Profile", "Batches", "Total gas", "Per-tx gas", "Total fee (ETH)")
	fmt.Fprintln(w, "-------------+----------+----------------+--------------+----------------")
	for _, s := range summaries {
		fmt.Fprintf(w, "%-12s | %-8d | %-14d | %-12.2f | %-14.6f\n",
			s.Profile.Key, s.Batches, s.TotalGas, s.PerTxGas, s.TotalFeeEth)
	}
}
