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

package daemon

import (
	"net/http/httptest"
	"testing"

	"github.com/dotandev/rollupcost/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uint64p(v uint64) *uint64 { return &v }

func TestEstimate_BuiltinProfile(t *testing.T) {
	s := NewServer(Config{})
	r := httptest.NewRequest("POST", "/rpc", nil)

	var resp EstimateResponse
	err := s.Estimate(r, &EstimateRequest{
		Profile:      "aztec",
		TxCount:      256,
		BatchSize:    256,
		GasPriceGwei: 20.0,
	}, &resp)
	require.NoError(t, err)

	assert.Equal(t, "aztec", resp.Profile)
	assert.Equal(t, uint64(1), resp.Batches)
	assert.Equal(t, uint64(1_041_920), resp.TotalGas)
}

func TestEstimate_DefaultsToAztec(t *testing.T) {
	s := NewServer(Config{})
	r := httptest.NewRequest("POST", "/rpc", nil)

	var resp EstimateResponse
	err := s.Estimate(r, &EstimateRequest{
		TxCount:      256,
		BatchSize:    256,
		GasPriceGwei: 20.0,
	}, &resp)
	require.NoError(t, err)
	assert.Equal(t, "aztec", resp.Profile)
}

func TestEstimate_CustomProfile(t *testing.T) {
	s := NewServer(Config{})
	r := httptest.NewRequest("POST", "/rpc", nil)

	var resp EstimateResponse
	err := s.Estimate(r, &EstimateRequest{
		Profile:             "custom",
		TxCount:             100,
		BatchSize:           100,
		GasPriceGwei:        10.0,
		ProofGas:            uint64p(800_000),
		CalldataGasPerTx:    uint64p(400),
		OverheadGasPerBatch: uint64p(50_000),
	}, &resp)
	require.NoError(t, err)
	assert.Equal(t, uint64(890_000), resp.TotalGas)
}

func TestEstimate_CustomProfileMissingFields(t *testing.T) {
	s := NewServer(Config{})
	r := httptest.NewRequest("POST", "/rpc", nil)

	var resp EstimateResponse
	err := s.Estimate(r, &EstimateRequest{
		Profile:      "custom",
		TxCount:      100,
		BatchSize:    100,
		GasPriceGwei: 10.0,
		ProofGas:     uint64p(800_000),
	}, &resp)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrMissingCustomFields)
}

func TestEstimate_InvalidInput(t *testing.T) {
	s := NewServer(Config{})
	r := httptest.NewRequest("POST", "/rpc", nil)

	var resp EstimateResponse
	err := s.Estimate(r, &EstimateRequest{
		Profile:      "zama",
		TxCount:      0,
		BatchSize:    256,
		GasPriceGwei: 20.0,
	}, &resp)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidInput)
}

func TestEstimate_UnknownProfile(t *testing.T) {
	s := NewServer(Config{})
	r := httptest.NewRequest("POST", "/rpc", nil)

	var resp EstimateResponse
	err := s.Estimate(r, &EstimateRequest{
		Profile:      "optimism",
		TxCount:      10,
		BatchSize:    10,
		GasPriceGwei: 20.0,
	}, &resp)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrUnknownProfile)
}

func TestListProfiles(t *testing.T) {
	s := NewServer(Config{})
	r := httptest.NewRequest("POST", "/rpc", nil)

	var resp ListProfilesResponse
	require.NoError(t, s.ListProfiles(r, &ListProfilesRequest{}, &resp))

	require.Len(t, resp.Profiles, 3)
	assert.Equal(t, "aztec", resp.Profiles[0].Key)
}

func TestAuthenticate(t *testing.T) {
	tests := []struct {
		name      string
		authToken string
		header    string
		want      bool
	}{
		{"no auth required", "", "", true},
		{"missing header", "secret", "", false},
		{"bearer token match", "secret", "Bearer secret", true},
		{"bearer token mismatch", "secret", "Bearer wrong", false},
		{"raw token match", "secret", "secret", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewServer(Config{AuthToken: tt.authToken})
			r := httptest.NewRequest("POST", "/rpc", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			assert.Equal(t, tt.want, s.authenticate(r))
		})
	}
}

func TestEstimate_Unauthorized(t *testing.T) {
	s := NewServer(Config{AuthToken: "secret"})
	r := httptest.NewRequest("POST", "/rpc", nil)

	var resp EstimateResponse
	err := s.Estimate(r, &EstimateRequest{Profile: "aztec", TxCount: 1, BatchSize: 1}, &resp)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unauthorized")
}
