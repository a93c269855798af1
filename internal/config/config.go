// Copyright 2025 Rollupcost Users
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dotandev/rollupcost/internal/errors"
)

// Config represents the general configuration for rollupcost
type Config struct {
	// DefaultProfile is used when no --profile flag is given.
	DefaultProfile string `json:"default_profile,omitempty"`
	// DefaultBatchSize is used when no --batch-size flag is given.
	DefaultBatchSize int64 `json:"default_batch_size,omitempty"`
	// DefaultGasPriceGwei is used when no --gas-price-gwei flag is given.
	DefaultGasPriceGwei float64 `json:"default_gas_price_gwei,omitempty"`
	LogLevel            string  `json:"log_level,omitempty"`
	// Tracing enables opt-in OpenTelemetry tracing.
	// Set via tracing = true in config or ROLLUPCOST_TRACING=true.
	Tracing bool `json:"tracing,omitempty"`
	// OTLPURL is the exporter endpoint used when tracing is enabled.
	OTLPURL string `json:"otlp_url,omitempty"`
}

var defaultConfig = &Config{
	DefaultProfile:      "aztec",
	DefaultBatchSize:    256,
	DefaultGasPriceGwei: 20.0,
	LogLevel:            "warn",
	OTLPURL:             "http://localhost:4318",
}

// GetConfigPath returns the directory holding the configuration file
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".rollupcost"), nil
}

// GetGeneralConfigPath returns the path to the general configuration file
func GetGeneralConfigPath() (string, error) {
	configDir, err := GetConfigPath()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.json"), nil
}

// Load reads the configuration file (JSON format) and applies
// ROLLUPCOST_* environment overrides on top of it.
func Load() (*Config, error) {
	cfg, err := loadFile()
	if err != nil {
		return nil, err
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFile() (*Config, error) {
	configPath, err := GetGeneralConfigPath()
	if err != nil {
		return nil, err
	}

	// If file doesn't exist, return default config
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, errors.WrapConfigError("failed to read config file", err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, errors.WrapConfigError("failed to parse config file", err)
	}

	return config, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("ROLLUPCOST_PROFILE"); v != "" {
		c.DefaultProfile = v
	}
	if v := os.Getenv("ROLLUPCOST_BATCH_SIZE"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.DefaultBatchSize = n
		}
	}
	if v := os.Getenv("ROLLUPCOST_GAS_PRICE_GWEI"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.DefaultGasPriceGwei = f
		}
	}
	if v := os.Getenv("ROLLUPCOST_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("ROLLUPCOST_OTLP_URL"); v != "" {
		c.OTLPURL = v
	}

	// ROLLUPCOST_TRACING is a boolean env var; parse it explicitly.
	switch strings.ToLower(os.Getenv("ROLLUPCOST_TRACING")) {
	case "1", "true", "yes":
		c.Tracing = true
	}
}

// Save writes the configuration to disk (JSON format)
func Save(config *Config) error {
	configPath, err := GetGeneralConfigPath()
	if err != nil {
		return err
	}

	// Ensure config directory exists
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return errors.WrapConfigError("failed to create config directory", err)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return errors.WrapConfigError("failed to marshal config", err)
	}

	// Write with restricted permissions (owner only)
	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return errors.WrapConfigError("failed to write config file", err)
	}

	return nil
}

func (c *Config) Validate() error {
	if c.DefaultBatchSize <= 0 {
		return errors.WrapInvalidInput("default_batch_size must be positive")
	}
	if c.DefaultGasPriceGwei < 0 {
		return errors.WrapInvalidInput("default_gas_price_gwei must be non-negative")
	}
	return nil
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Profile: %s, BatchSize: %d, GasPrice: %.2f gwei, LogLevel: %s}",
		c.DefaultProfile, c.DefaultBatchSize, c.DefaultGasPriceGwei, c.LogLevel,
	)
}

func DefaultConfig() *Config {
	cfg := *defaultConfig
	return &cfg
}
