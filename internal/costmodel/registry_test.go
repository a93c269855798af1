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
	stderrors "errors"
	"testing"

	"github.com/dotandev/rollupcost/internal/errors"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		wantErr  bool
		proofGas uint64
	}{
		{"aztec", "aztec", false, 900_000},
		{"zama", "zama", false, 500_000},
		{"soundness", "soundness", false, 650_000},
		{"unknown key", "optimism", true, 0},
		{"empty key", "", true, 0},
		{"custom is not builtin", "custom", true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Lookup(tt.key)
			if (err != nil) != tt.wantErr {
				t.Errorf("Lookup(%q) error = %v, wantErr %v", tt.key, err, tt.wantErr)
				return
			}
			if tt.wantErr {
				if !stderrors.Is(err, errors.ErrUnknownProfile) {
					t.Errorf("Lookup(%q) error = %v, want ErrUnknownProfile", tt.key, err)
				}
				return
			}
			if p.ProofGas != tt.proofGas {
				t.Errorf("Lookup(%q).ProofGas = %d, want %d", tt.key, p.ProofGas, tt.proofGas)
			}
			if p.Key != tt.key {
				t.Errorf("Lookup(%q).Key = %q", tt.key, p.Key)
			}
		})
	}
}

func TestKeys_Sorted(t *testing.T) {
	keys := Keys()
	want := []string{"aztec", "soundness", "zama"}
	if len(keys) != len(want) {
		t.Fatalf("Keys() returned %d keys, want %d", len(keys), len(want))
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("Keys()[%d] = %q, want %q", i, keys[i], want[i])
		}
	}
}

func TestBuiltin_MatchesKeys(t *testing.T) {
	profiles := Builtin()
	keys := Keys()
	if len(profiles) != len(keys) {
		t.Fatalf("Builtin() returned %d profiles, want %d", len(profiles), len(keys))
	}
	for i, p := range profiles {
		if p.Key != keys[i] {
			t.Errorf("Builtin()[%d].Key = %q, want %q", i, p.Key, keys[i])
		}
	}
}

func TestNewCustomProfile(t *testing.T) {
	p := NewCustomProfile(800_000, 400, 50_000)

	if p.Key != CustomKey {
		t.Errorf("Key = %q, want %q", p.Key, CustomKey)
	}
	if p.ProofGas != 800_000 || p.CalldataGasPerTx != 400 || p.OverheadGasPerBatch != 50_000 {
		t.Errorf("unexpected gas fields: %+v", p)
	}
	if p.Name == "" || p.Description == "" {
		t.Errorf("custom profile should carry a name and description")
	}
}
