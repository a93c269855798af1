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
	"fmt"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationResult struct {
	Valid  bool
	Errors []ValidationError
}

// Validate checks a profile loaded from a file before it is used for an
// estimate. Gas fields are unsigned so only structural problems remain.
func (p *Profile) Validate() *ValidationResult {
	result := &ValidationResult{Valid: true}

	if p.Key == "" {
		result.addError("key", "key is required")
	}
	if p.Name == "" {
		result.addError("name", "name is required")
	}

	const maxGas = 1_000_000_000
	checks := []struct {
		value uint64
		field string
	}{
		{p.ProofGas, "proof_gas"},
		{p.CalldataGasPerTx, "calldata_gas_per_tx"},
		{p.OverheadGasPerBatch, "overhead_gas_per_batch"},
	}
	for _, c := range checks {
		if c.value > maxGas {
			result.addError(c.field, "gas value > 1B")
		}
	}

	if p.ProofGas == 0 && p.CalldataGasPerTx == 0 && p.OverheadGasPerBatch == 0 {
		result.addError("profile", "at least one gas field must be non-zero")
	}

	if len(result.Errors) > 0 {
		result.Valid = false
	}
	return result
}

func (vr *ValidationResult) addError(field, message string) {
	vr.Errors = append(vr.Errors, ValidationError{Field: field, Message: message})
}

func (vr *ValidationResult) ErrorsAsString() string {
	if vr.Valid {
		return ""
	}
	result := fmt.Sprintf("Validation failed (%d errors):\n", len(vr.Errors))
	for _, err := range vr.Errors {
		result += fmt.Sprintf("  [%s] %s\n", err.Field, err.Message)
	}
	return result
}
