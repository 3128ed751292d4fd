// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/spf13/cobra"
)

var endpointCmd = &cobra.Command{
	Use:   "endpoint",
	Short: "Print the cluster endpoint in use",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if err := applySolanaConfig(cmd, cfg, logging.NoLog{}); err != nil {
			return err
		}
		return printValue(cmd, endpointCmdResponse{
			Endpoint: cfg.GetRPCURL(),
		})
	},
}

type endpointCmdResponse struct {
	Endpoint string `json:"endpoint"`
}

func (r endpointCmdResponse) String() string {
	return r.Endpoint
}

func init() {
	rootCmd.AddCommand(endpointCmd)
}
