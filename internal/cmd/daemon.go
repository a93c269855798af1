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

package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dotandev/rollupcost/internal/daemon"
	"github.com/dotandev/rollupcost/internal/telemetry"
	"github.com/spf13/cobra"
)

var (
	daemonPort      string
	daemonAuthToken string
	daemonTracing   bool
	daemonOTLPURL   string
)

var daemonCmd = &cobra.Command{
	Use:   "daemon",
	Short: "Start JSON-RPC server for remote estimates",
	Long: `Start a JSON-RPC 2.0 server that exposes the estimator to other tools.

Endpoints:
  - RollupService.Estimate:     Run a cost estimate
  - RollupService.ListProfiles: List the builtin profile registry

Example:
  rollupcost daemon --port 8080
  rollupcost daemon --port 8080 --auth-token secret123`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		// Initialize OpenTelemetry if enabled
		if daemonTracing {
			cleanup, err := telemetry.Init(ctx, telemetry.Config{
				Enabled:     true,
				ExporterURL: daemonOTLPURL,
				ServiceName: "rollupcost-daemon",
			})
			if err != nil {
				return fmt.Errorf("failed to initialize telemetry: %w", err)
			}
			defer cleanup()
		}

		server := daemon.NewServer(daemon.Config{
			Port:      daemonPort,
			AuthToken: daemonAuthToken,
		})

		// Setup graceful shutdown
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		// Handle interrupt signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			fmt.Println("\nReceived interrupt signal, shutting down...")
			cancel()
		}()

		fmt.Printf("Starting rollupcost daemon on port %s\n", daemonPort)
		if daemonAuthToken != "" {
			fmt.Println("Authentication: enabled")
		}

		return server.Start(ctx, daemonPort)
	},
}

func init() {
	daemonCmd.Flags().StringVarP(&daemonPort, "port", "p", "8080", "Port to listen on")
	daemonCmd.Flags().StringVar(&daemonAuthToken, "auth-token", "", "Authentication token for API access")
	daemonCmd.Flags().BoolVar(&daemonTracing, "tracing", false, "Enable OpenTelemetry tracing")
	daemonCmd.Flags().StringVar(&daemonOTLPURL, "otlp-url", "http://localhost:4318", "OTLP exporter URL")

	rootCmd.AddCommand(daemonCmd)
}
