// Copyright (c) 2026 dotandev
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package costmodel

import (
	"math/big"

	"github.com/dotandev/rollupcost/internal/errors"
)

const (
	weiPerGwei = 1_000_000_000
	weiPerEth  = 1_000_000_000_000_000_000
)

// Estimate computes the batching cost of txCount transactions under the
// given profile. Pure function, no side effects.
func Estimate(profile Profile, txCount, batchSize int64, gasPriceGwei float64) (*Summary, error) {
	if txCount <= 0 {
		return nil, errors.WrapInvalidInput("tx_count must be positive")
	}
	if batchSize <= 0 {
		return nil, errors.WrapInvalidInput("batch_size must be positive")
	}

	batches := uint64((txCount + batchSize - 1) / batchSize)

	totalProofGas := batches * profile.ProofGas
	totalOverheadGas := batches * profile.OverheadGasPerBatch
	totalCalldataGas := uint64(txCount) * profile.CalldataGasPerTx
	totalGas := totalProofGas + totalOverheadGas + totalCalldataGas

	// The wei fee can exceed uint64 range for large estimates, so the
	// intermediate product is taken exactly before reducing to ETH.
	gasPriceWei := int64(gasPriceGwei * weiPerGwei)
	feeWei := new(big.Int).Mul(
		new(big.Int).SetUint64(totalGas),
		big.NewInt(gasPriceWei),
	)
	totalFeeEth, _ := new(big.Float).Quo(
		new(big.Float).SetInt(feeWei),
		new(big.Float).SetUint64(weiPerEth),
	).Float64()

	return &Summary{
		Profile:      profile,
		TxCount:      txCount,
		BatchSize:    batchSize,
		GasPriceGwei: gasPriceGwei,

		Batches:          batches,
		TotalProofGas:    totalProofGas,
		TotalOverheadGas: totalOverheadGas,
		TotalCalldataGas: totalCalldataGas,
		TotalGas:         totalGas,
		PerTxGas:         float64(totalGas) / float64(txCount),
		TotalFeeEth:      totalFeeEth,
		PerTxFeeEth:      totalFeeEth / float64(txCount),
	}, nil
}
