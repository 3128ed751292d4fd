// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/URvesh109/example-counter/rpc"
)

var rootCmd = &cobra.Command{
	Use:   "counter-cli",
	Short: "Client for the on-chain counter program",
	Long: `A CLI that funds a payer, creates the payer's counter account on first use,
increments it and reports the resulting count.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	os.Exit(0)
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringP("output", "o", "text", "Output format (text or json)")
	flags.String("endpoint", "", "Cluster JSON-RPC URL (defaults to the Solana CLI config, then "+rpc.DefaultEndpoint+")")
	flags.String("keypair", "", "Payer keypair file or hex private key (defaults to the Solana CLI config)")
	flags.String("program-keypair", "", "Program keypair file (default dist/program/counter-keypair.json)")
	flags.String("program-id", "", "Program id, overrides --program-keypair")
	flags.String("solana-config", "", "Solana CLI config file (default ~/.config/solana/cli/config.yml)")
	flags.String("commitment", "", "Commitment level: processed, confirmed or finalized")
	flags.Duration("timeout", 0, "Bound on the whole command (default 2m)")
	flags.String("log-level", "", "Log level (default info)")
	flags.String("log-file", "", "Also write logs to this file, rotated")
	flags.String("metrics-file", "", "Write RPC metrics to this file on exit")
}

func main() {
	Execute()
}
