// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/URvesh109/example-counter/config"
	"github.com/URvesh109/example-counter/rpc"
	"github.com/URvesh109/example-counter/utils"
)

func init() {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error getting home directory:", err)
		os.Exit(1)
	}

	configDir, err := utils.InitSubDirectory(homeDir, ".counter-cli")
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error creating config directory:", err)
		os.Exit(1)
	}

	configFile := filepath.Join(configDir, "config.yaml")
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		if _, err := os.Create(configFile); err != nil {
			fmt.Fprintln(os.Stderr, "Error creating config file:", err)
			os.Exit(1)
		}
	}

	// Set config name and paths
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configDir)

	// Read config
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintln(os.Stderr, "Error reading config:", err)
			os.Exit(1)
		}
		// Config file not found; will be created when needed
	}
}

func isJSONOutputRequested(cmd *cobra.Command) (bool, error) {
	output, err := getConfigValue(cmd, "output", false)
	if err != nil {
		return false, fmt.Errorf("failed to get output format: %w", err)
	}
	return strings.ToLower(output) == "json", nil
}

func printValue(cmd *cobra.Command, v fmt.Stringer) error {
	isJSON, err := isJSONOutputRequested(cmd)
	if err != nil {
		return err
	}

	if isJSON {
		jsonBytes, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(jsonBytes))
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), v.String())
	return nil
}

func getConfigValue(cmd *cobra.Command, key string, required bool) (string, error) {
	// Check flags first
	if value, err := cmd.Flags().GetString(key); err == nil && value != "" {
		return value, nil
	}

	// Then check viper
	if value := viper.GetString(key); value != "" {
		return value, nil
	}

	if required {
		return "", fmt.Errorf("required value for %s not found", key)
	}

	return "", nil
}

func setConfigValue(key, value string) error {
	viper.Set(key, value)
	return viper.WriteConfig()
}

// loadConfig reads the flags and the saved CLI config. The Solana CLI
// config is layered underneath by applySolanaConfig once a logger exists.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()
	flags := cmd.Flags()

	var err error
	if cfg.RPCURL, err = getConfigValue(cmd, "endpoint", false); err != nil {
		return nil, err
	}
	if cfg.KeypairPath, err = getConfigValue(cmd, "keypair", false); err != nil {
		return nil, err
	}
	programKeypair, err := getConfigValue(cmd, "program-keypair", false)
	if err != nil {
		return nil, err
	}
	if programKeypair != "" {
		cfg.SetProgramPath(filepath.Dir(programKeypair))
		cfg.ProgramKeypairPath = programKeypair
	}
	if cfg.ProgramID, err = flags.GetString("program-id"); err != nil {
		return nil, err
	}
	timeout, err := flags.GetDuration("timeout")
	if err != nil {
		return nil, err
	}
	if timeout > 0 {
		cfg.Timeout = timeout
	}
	level, err := getConfigValue(cmd, "log-level", false)
	if err != nil {
		return nil, err
	}
	if level != "" {
		cfg.LogLevel = level
	}
	if _, err := cfg.GetLogLevel(); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	return cfg, nil
}

// applySolanaConfig fills what the flags left unset from the Solana CLI
// config. An explicit --commitment still wins over the file.
func applySolanaConfig(cmd *cobra.Command, cfg *config.Config, log logging.Logger) error {
	flags := cmd.Flags()
	solanaConfig, err := flags.GetString("solana-config")
	if err != nil {
		return err
	}
	if solanaConfig == "" {
		if solanaConfig, err = config.DefaultSolanaCLIConfigPath(); err != nil {
			return err
		}
	}
	if err := cfg.Apply(log, solanaConfig); err != nil {
		return fmt.Errorf("failed to load solana cli config: %w", err)
	}

	commitment, err := flags.GetString("commitment")
	if err != nil {
		return err
	}
	if commitment != "" {
		if cfg.Commitment, err = rpc.ParseCommitment(commitment); err != nil {
			return err
		}
	}
	return nil
}
