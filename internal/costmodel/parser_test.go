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
	"os"
	"path/filepath"
	"testing"
)

func TestParseProfileFromBytes(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		wantErr bool
	}{
		{
			name: "valid profile",
			data: []byte(`{
				"key": "myrollup",
				"name": "My rollup",
				"description": "Test profile",
				"proof_gas": 750000,
				"calldata_gas_per_tx": 350,
				"overhead_gas_per_batch": 55000
			}`),
			wantErr: false,
		},
		{
			name:    "empty data",
			data:    []byte{},
			wantErr: true,
		},
		{
			name:    "invalid JSON",
			data:    []byte(`{invalid json}`),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseProfileFromBytes(tt.data)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseProfileFromBytes() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && got == nil {
				t.Errorf("ParseProfileFromBytes() got nil, want profile")
			}
		})
	}
}

func TestParseProfile_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profile.json")

	content := []byte(`{
		"key": "filerollup",
		"name": "File rollup",
		"proof_gas": 600000,
		"calldata_gas_per_tx": 500,
		"overhead_gas_per_batch": 40000
	}`)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	p, err := ParseProfile(path)
	if err != nil {
		t.Fatalf("ParseProfile() error = %v", err)
	}
	if p.Key != "filerollup" || p.ProofGas != 600000 {
		t.Errorf("ParseProfile() got %+v", p)
	}
}

func TestParseProfile_MissingFile(t *testing.T) {
	if _, err := ParseProfile(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Errorf("ParseProfile() expected error for missing file")
	}
	if _, err := ParseProfile(""); err == nil {
		t.Errorf("ParseProfile() expected error for empty path")
	}
}

func TestProfile_ToJSONRoundTrip(t *testing.T) {
	p := NewCustomProfile(800_000, 400, 50_000)

	data, err := p.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}

	got, err := ParseProfileFromBytes(data)
	if err != nil {
		t.Fatalf("ParseProfileFromBytes() error = %v", err)
	}
	if *got != p {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, p)
	}
}
