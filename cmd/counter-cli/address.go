// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/spf13/cobra"

	"github.com/URvesh109/example-counter/codec"
	"github.com/URvesh109/example-counter/config"
	"github.com/URvesh109/example-counter/counter"
)

var addressCmd = &cobra.Command{
	Use:   "address",
	Short: "Print the counter address derived from the payer and program",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if err := applySolanaConfig(cmd, cfg, logging.NoLog{}); err != nil {
			return err
		}
		if cfg.KeypairPath == "" {
			return fmt.Errorf("failed to get keypair: %w", config.ErrInvalidKey)
		}
		payer, err := config.LoadPrivateKey(cfg.KeypairPath)
		if err != nil {
			return fmt.Errorf("failed to load keypair: %w", err)
		}
		programID, err := cfg.LoadProgramID()
		if err != nil {
			return fmt.Errorf("failed to load program id: %w", err)
		}
		counterAddr, err := counter.Address(payer.Address(), programID)
		if err != nil {
			return fmt.Errorf("failed to derive counter address: %w", err)
		}
		return printValue(cmd, addressCmdResponse{
			Counter: counterAddr,
			Program: programID,
			Payer:   payer.Address(),
			Seed:    counter.Seed,
		})
	},
}

type addressCmdResponse struct {
	Counter codec.Address `json:"counter"`
	Program codec.Address `json:"program"`
	Payer   codec.Address `json:"payer"`
	Seed    string        `json:"seed"`
}

func (r addressCmdResponse) String() string {
	return r.Counter.String()
}

func init() {
	rootCmd.AddCommand(addressCmd)
}
