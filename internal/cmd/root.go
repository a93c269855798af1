// Copyright 2025 Rollupcost Users
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"strconv"

	"github.com/dotandev/rollupcost/internal/config"
	"github.com/dotandev/rollupcost/internal/costmodel"
	"github.com/dotandev/rollupcost/internal/errors"
	"github.com/dotandev/rollupcost/internal/logger"
	"github.com/dotandev/rollupcost/internal/render"
	"github.com/dotandev/rollupcost/internal/telemetry"
	"github.com/dotandev/rollupcost/internal/updater"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"
)

var (
	profileFlag      string
	batchSizeFlag    int64
	gasPriceFlag     float64
	proofGasFlag     uint64
	calldataGasFlag  uint64
	overheadGasFlag  uint64
	jsonFlag         bool
	listProfilesFlag bool
	profileFileFlag  string
	tracingFlag      bool
	otlpURLFlag      string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "rollupcost <tx_count>",
	Short: "Offline rollup gas and fee estimator",
	Long: `Rollupcost estimates transaction-batching costs for rollup-style systems.

Given a transaction count, batch size, gas price and a cost profile it
computes total and per-transaction gas and fee figures, entirely offline.

Builtin profiles model Aztec-style zk rollups, Zama-style FHE hybrids and
soundness-focused research designs; 'custom' accepts your own parameters.

Examples:
  rollupcost 1000                              Estimate with the aztec profile
  rollupcost 1000 --profile zama --json        Machine-readable output
  rollupcost 5000 --batch-size 512             Larger batches
  rollupcost 100 --profile custom --proof-gas 800000 \
      --calldata-gas-per-tx 400 --overhead-gas-per-batch 50000
  rollupcost --list-profiles                   Show the profile registry`,
	Args: cobra.MaximumNArgs(1),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		checkForUpdatesAsync()
	},
	RunE:          runEstimate,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func runEstimate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if listProfilesFlag {
		render.ProfileList(out, costmodel.Builtin())
		return nil
	}

	if len(args) != 1 {
		return errors.WrapInvalidInput("tx_count argument is required")
	}

	txCount, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return errors.WrapInvalidInput("tx_count must be an integer")
	}

	cfg := loadConfigDefaults(cmd)

	profile, err := resolveProfile(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if tracingFlag || cfg.Tracing {
		cleanup, err := telemetry.Init(ctx, telemetry.Config{
			Enabled:     true,
			ExporterURL: otlpURLFlag,
			ServiceName: "rollupcost",
		})
		if err != nil {
			return err
		}
		defer cleanup()
	}

	tracer := telemetry.GetTracer()
	_, span := tracer.Start(ctx, "estimate")
	span.SetAttributes(
		attribute.String("estimate.profile", profile.Key),
		attribute.Int64("estimate.tx_count", txCount),
	)
	defer span.End()

	summary, err := costmodel.Estimate(profile, txCount, batchSizeFlag, gasPriceFlag)
	if err != nil {
		span.RecordError(err)
		return err
	}

	if jsonFlag {
		return render.JSON(out, summary)
	}
	render.Human(out, summary)
	return nil
}

// loadConfigDefaults fills in flag values the user did not set from the
// config file and environment. Explicit flags always win.
func loadConfigDefaults(cmd *cobra.Command) *config.Config {
	cfg, err := config.Load()
	if err != nil {
		logger.Logger.Warn("Failed to load config, using defaults", "error", err)
		cfg = config.DefaultConfig()
	}

	if cfg.LogLevel != "" {
		logger.SetLevel(logger.ParseLevel(cfg.LogLevel))
	}

	flags := cmd.Flags()
	if !flags.Changed("profile") && cfg.DefaultProfile != "" {
		profileFlag = cfg.DefaultProfile
	}
	if !flags.Changed("batch-size") && cfg.DefaultBatchSize > 0 {
		batchSizeFlag = cfg.DefaultBatchSize
	}
	if !flags.Changed("gas-price-gwei") && cfg.DefaultGasPriceGwei > 0 {
		gasPriceFlag = cfg.DefaultGasPriceGwei
	}
	if !flags.Changed("otlp-url") && cfg.OTLPURL != "" {
		otlpURLFlag = cfg.OTLPURL
	}

	return cfg
}

// resolveProfile picks the profile from --profile-file, --profile custom
// or the builtin registry, in that order of precedence.
func resolveProfile(cmd *cobra.Command) (costmodel.Profile, error) {
	if profileFileFlag != "" {
		p, err := costmodel.ParseProfile(profileFileFlag)
		if err != nil {
			return costmodel.Profile{}, errors.WrapProfileFile(err)
		}
		if result := p.Validate(); !result.Valid {
			return costmodel.Profile{}, errors.WrapProfileValidation(result.ErrorsAsString())
		}
		return *p, nil
	}

	if profileFlag != costmodel.CustomKey {
		return costmodel.Lookup(profileFlag)
	}

	flags := cmd.Flags()
	var missing []string
	if !flags.Changed("proof-gas") {
		missing = append(missing, "--proof-gas")
	}
	if !flags.Changed("calldata-gas-per-tx") {
		missing = append(missing, "--calldata-gas-per-tx")
	}
	if !flags.Changed("overhead-gas-per-batch") {
		missing = append(missing, "--overhead-gas-per-batch")
	}
	if len(missing) > 0 {
		return costmodel.Profile{}, errors.WrapMissingCustomFields(missing)
	}

	return costmodel.NewCustomProfile(proofGasFlag, calldataGasFlag, overheadGasFlag), nil
}

// checkForUpdatesAsync runs the update check in a goroutine to not block CLI startup
func checkForUpdatesAsync() {
	go func() {
		checker := updater.NewChecker(Version)
		checker.CheckForUpdates()
	}()
}

func init() {
	rootCmd.Flags().StringVar(&profileFlag, "profile", "aztec", "Cost profile to use (aztec, soundness, zama, custom)")
	rootCmd.Flags().Int64Var(&batchSizeFlag, "batch-size", 256, "Number of transactions per batch")
	rootCmd.Flags().Float64Var(&gasPriceFlag, "gas-price-gwei", 20.0, "Gas price in gwei")
	rootCmd.Flags().Uint64Var(&proofGasFlag, "proof-gas", 0, "Custom proof gas per batch (required when --profile custom)")
	rootCmd.Flags().Uint64Var(&calldataGasFlag, "calldata-gas-per-tx", 0, "Custom calldata gas per transaction (required when --profile custom)")
	rootCmd.Flags().Uint64Var(&overheadGasFlag, "overhead-gas-per-batch", 0, "Custom overhead gas per batch (required when --profile custom)")
	rootCmd.Flags().BoolVar(&jsonFlag, "json", false, "Print machine-readable JSON instead of a human summary")
	rootCmd.Flags().BoolVar(&listProfilesFlag, "list-profiles", false, "List known profiles and exit")
	rootCmd.Flags().StringVar(&profileFileFlag, "profile-file", "", "Load a profile record from a JSON file")
	rootCmd.Flags().BoolVar(&tracingFlag, "tracing", false, "Enable OpenTelemetry tracing")
	rootCmd.Flags().StringVar(&otlpURLFlag, "otlp-url", "http://localhost:4318", "OTLP exporter URL")
}
