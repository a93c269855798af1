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
	"sort"

	"github.com/dotandev/rollupcost/internal/errors"
)

// CustomKey selects a caller-supplied profile on the CLI.
const CustomKey = "custom"

var builtinProfiles = map[string]Profile{
	"aztec": {
		Key:  "aztec",
		Name: "Aztec-style zk rollup",
		Description: "Privacy-preserving zk rollup with relatively expensive proofs but " +
			"efficient calldata packing.",
		ProofGas:            900_000,
		CalldataGasPerTx:    320,
		OverheadGasPerBatch: 60_000,
	},
	"zama": {
		Key:  "zama",
		Name: "Zama-style FHE + rollup hybrid",
		Description: "Conceptual profile for a system combining fully homomorphic " +
			"encryption with rollup-style batching. Proofs are cheaper but " +
			"ciphertexts are larger.",
		ProofGas:            500_000,
		CalldataGasPerTx:    700,
		OverheadGasPerBatch: 70_000,
	},
	"soundness": {
		Key:  "soundness",
		Name: "Soundness-first research rollup",
		Description: "Profile that prioritizes simple, auditable circuits and extra " +
			"safety margins over raw gas efficiency.",
		ProofGas:            650_000,
		CalldataGasPerTx:    420,
		OverheadGasPerBatch: 90_000,
	},
}

// Lookup returns the builtin profile for key.
func Lookup(key string) (Profile, error) {
	p, ok := builtinProfiles[key]
	if !ok {
		return Profile{}, errors.WrapUnknownProfile(key)
	}
	return p, nil
}

// Keys returns the builtin profile keys in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(builtinProfiles))
	for k := range builtinProfiles {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Builtin returns the builtin profiles ordered by key.
func Builtin() []Profile {
	profiles := make([]Profile, 0, len(builtinProfiles))
	for _, k := range Keys() {
		profiles = append(profiles, builtinProfiles[k])
	}
	return profiles
}

// NewCustomProfile builds the profile used when the caller supplies the
// three gas parameters explicitly.
func NewCustomProfile(proofGas, calldataGasPerTx, overheadGasPerBatch uint64) Profile {
	return Profile{
		Key:                 CustomKey,
		Name:                "Custom rollup profile",
		Description:         "User-defined gas parameters for a hypothetical rollup.",
		ProofGas:            proofGas,
		CalldataGasPerTx:    calldataGasPerTx,
		OverheadGasPerBatch: overheadGasPerBatch,
	}
}
