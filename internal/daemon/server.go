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
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/dotandev/rollupcost/internal/costmodel"
	rcerrors "github.com/dotandev/rollupcost/internal/errors"
	"github.com/dotandev/rollupcost/internal/logger"
	"github.com/dotandev/rollupcost/internal/telemetry"
	"github.com/gorilla/rpc/v2"
	"github.com/gorilla/rpc/v2/json2"
	"go.opentelemetry.io/otel/attribute"
)

// Server represents the JSON-RPC daemon server
type Server struct {
	authToken string
}

// Config holds daemon configuration
type Config struct {
	Port      string
	AuthToken string
}

// EstimateRequest represents the RollupService.Estimate RPC request.
// Profile selects a builtin profile; when it is "custom" the three gas
// fields must be supplied.
type EstimateRequest struct {
	Profile             string  `json:"profile"`
	TxCount             int64   `json:"tx_count"`
	BatchSize           int64   `json:"batch_size"`
	GasPriceGwei        float64 `json:"gas_price_gwei"`
	ProofGas            *uint64 `json:"proof_gas,omitempty"`
	CalldataGasPerTx    *uint64 `json:"calldata_gas_per_tx,omitempty"`
	OverheadGasPerBatch *uint64 `json:"overhead_gas_per_batch,omitempty"`
}

// EstimateResponse carries the summary fields of one estimate, using
// the same field names as the CLI's JSON output.
type EstimateResponse struct {
	Profile             string  `json:"profile"`
	ProfileName         string  `json:"profileName"`
	Description         string  `json:"description"`
	TxCount             int64   `json:"txCount"`
	BatchSize           int64   `json:"batchSize"`
	Batches             uint64  `json:"batches"`
	GasPriceGwei        float64 `json:"gasPriceGwei"`
	ProofGasPerBatch    uint64  `json:"proofGasPerBatch"`
	CalldataGasPerTx    uint64  `json:"calldataGasPerTx"`
	OverheadGasPerBatch uint64  `json:"overheadGasPerBatch"`
	TotalProofGas       uint64  `json:"totalProofGas"`
	TotalOverheadGas    uint64  `json:"totalOverheadGas"`
	TotalCalldataGas    uint64  `json:"totalCalldataGas"`
	TotalGas            uint64  `json:"totalGas"`
	PerTxGas            float64 `json:"perTxGas"`
	TotalFeeEth         float64 `json:"totalFeeEth"`
	PerTxFeeEth         float64 `json:"perTxFeeEth"`
}

// ListProfilesRequest represents the RollupService.ListProfiles RPC request
type ListProfilesRequest struct{}

// ListProfilesResponse represents the RollupService.ListProfiles RPC response
type ListProfilesResponse struct {
	Profiles []costmodel.Profile `json:"profiles"`
}

// NewServer creates a new JSON-RPC server
func NewServer(config Config) *Server {
	return &Server{authToken: config.AuthToken}
}

// authenticate validates the authorization token
func (s *Server) authenticate(r *http.Request) bool {
	if s.authToken == "" {
		return true // No auth required
	}

	auth := r.Header.Get("Authorization")
	if auth == "" {
		return false
	}

	// Support "Bearer <token>" format
	if strings.HasPrefix(auth, "Bearer ") {
		token := strings.TrimPrefix(auth, "Bearer ")
		return token == s.authToken
	}

	return auth == s.authToken
}

// resolveProfile picks the builtin or caller-supplied profile for a request.
func resolveProfile(req *EstimateRequest) (costmodel.Profile, error) {
	key := req.Profile
	if key == "" {
		key = "aztec"
	}

	if key != costmodel.CustomKey {
		return costmodel.Lookup(key)
	}

	var missing []string
	if req.ProofGas == nil {
		missing = append(missing, "proof_gas")
	}
	if req.CalldataGasPerTx == nil {
		missing = append(missing, "calldata_gas_per_tx")
	}
	if req.OverheadGasPerBatch == nil {
		missing = append(missing, "overhead_gas_per_batch")
	}
	if len(missing) > 0 {
		return costmodel.Profile{}, rcerrors.WrapMissingCustomFields(missing)
	}

	return costmodel.NewCustomProfile(*req.ProofGas, *req.CalldataGasPerTx, *req.OverheadGasPerBatch), nil
}

// Estimate handles RollupService.Estimate RPC calls
func (s *Server) Estimate(r *http.Request, req *EstimateRequest, resp *EstimateResponse) error {
	if !s.authenticate(r) {
		return fmt.Errorf("unauthorized")
	}

	tracer := telemetry.GetTracer()
	_, span := tracer.Start(r.Context(), "rpc_estimate")
	span.SetAttributes(
		attribute.String("estimate.profile", req.Profile),
		attribute.Int64("estimate.tx_count", req.TxCount),
	)
	defer span.End()

	logger.Logger.Info("Processing estimate RPC", "profile", req.Profile, "tx_count", req.TxCount)

	profile, err := resolveProfile(req)
	if err != nil {
		span.RecordError(err)
		return err
	}

	summary, err := costmodel.Estimate(profile, req.TxCount, req.BatchSize, req.GasPriceGwei)
	if err != nil {
		span.RecordError(err)
		return err
	}

	*resp = EstimateResponse{
		Profile:             summary.Profile.Key,
		ProfileName:         summary.Profile.Name,
		Description:         summary.Profile.Description,
		TxCount:             summary.TxCount,
		BatchSize:           summary.BatchSize,
		Batches:             summary.Batches,
		GasPriceGwei:        summary.GasPriceGwei,
		ProofGasPerBatch:    summary.Profile.ProofGas,
		CalldataGasPerTx:    summary.Profile.CalldataGasPerTx,
		OverheadGasPerBatch: summary.Profile.OverheadGasPerBatch,
		TotalProofGas:       summary.TotalProofGas,
		TotalOverheadGas:    summary.TotalOverheadGas,
		TotalCalldataGas:    summary.TotalCalldataGas,
		TotalGas:            summary.TotalGas,
		PerTxGas:            summary.PerTxGas,
		TotalFeeEth:         summary.TotalFeeEth,
		PerTxFeeEth:         summary.PerTxFeeEth,
	}
	return nil
}

// ListProfiles handles RollupService.ListProfiles RPC calls
func (s *Server) ListProfiles(r *http.Request, req *ListProfilesRequest, resp *ListProfilesResponse) error {
	if !s.authenticate(r) {
		return fmt.Errorf("unauthorized")
	}

	resp.Profiles = costmodel.Builtin()
	return nil
}

// Start starts the JSON-RPC server
func (s *Server) Start(ctx context.Context, port string) error {
	server := rpc.NewServer()
	server.RegisterCodec(json2.NewCodec(), "application/json")
	server.RegisterCodec(json2.NewCodec(), "application/json;charset=UTF-8")

	if err := server.RegisterService(s, "RollupService"); err != nil {
		return fmt.Errorf("failed to register service: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/rpc", server)

	// Health check endpoint
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	logger.Logger.Info("Starting JSON-RPC server", "port", port)

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: mux,
	}

	// Start server in goroutine
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Error("Server failed", "error", err)
		}
	}()

	// Wait for context cancellation
	<-ctx.Done()
	logger.Logger.Info("Shutting down JSON-RPC server")
	return srv.Shutdown(context.Background())
}
