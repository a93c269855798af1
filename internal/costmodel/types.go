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

// Profile describes the gas characteristics of a rollup design.
// Immutable once constructed.
type Profile struct {
	Key                 string `json:"key"`
	Name                string `json:"name"`
	Description         string `json:"description,omitempty"`
	ProofGas            uint64 `json:"proof_gas"`
	CalldataGasPerTx    uint64 `json:"calldata_gas_per_tx"`
	OverheadGasPerBatch uint64 `json:"overhead_gas_per_batch"`
}

// Summary holds the inputs and every derived figure of one estimate.
type Summary struct {
	Profile      Profile
	TxCount      int64
	BatchSize    int64
	GasPriceGwei float64

	Batches          uint64
	TotalProofGas    uint64
	TotalOverheadGas uint64
	TotalCalldataGas uint64
	TotalGas         uint64
	PerTxGas         float64
	TotalFeeEth      float64
	PerTxFeeEth      float64
}

// Fields returns the summary as the flat key/value set shared by both
// output formats, keyed with the JSON field names.
func (s *Summary) Fields() map[string]interface{} {
	return map[string]interface{}{
		"profile":             s.Profile.Key,
		"profileName":         s.Profile.Name,
		"description":         s.Profile.Description,
		"txCount":             s.TxCount,
		"batchSize":           s.BatchSize,
		"batches":             s.Batches,
		"gasPriceGwei":        s.GasPriceGwei,
		"proofGasPerBatch":    s.Profile.ProofGas,
		"calldataGasPerTx":    s.Profile.CalldataGasPerTx,
		"overheadGasPerBatch": s.Profile.OverheadGasPerBatch,
		"totalProofGas":       s.TotalProofGas,
		"totalOverheadGas":    s.TotalOverheadGas,
		"totalCalldataGas":    s.TotalCalldataGas,
		"totalGas":            s.TotalGas,
		"perTxGas":            s.PerTxGas,
		"totalFeeEth":         s.TotalFeeEth,
		"perTxFeeEth":         s.PerTxFeeEth,
	}
}
