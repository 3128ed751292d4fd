// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/URvesh109/example-counter/codec"
	"github.com/URvesh109/example-counter/utils"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Increment the payer's counter and print the new count",
	RunE: func(cmd *cobra.Command, _ []string) error {
		e, err := newEnv(cmd)
		if err != nil {
			return err
		}
		defer e.close()

		ctx, cancel := e.context(cmd)
		defer cancel()

		isJSON, err := isJSONOutputRequested(cmd)
		if err != nil {
			return err
		}
		if !isJSON {
			utils.Outf("{{magenta}}endpoint:{{/}} %s\n", e.config.GetRPCURL())
			utils.Outf("{{magenta}}payer:{{/}} %s\n", e.session.Payer())
		}
		count, err := e.session.Run(ctx)
		if err != nil {
			return err
		}
		return printValue(cmd, countCmdResponse{
			Counter: e.session.CounterAddress(),
			Program: e.session.ProgramID(),
			Payer:   e.session.Payer(),
			Count:   count,
		})
	},
}

type countCmdResponse struct {
	Counter codec.Address `json:"counter"`
	Program codec.Address `json:"program"`
	Payer   codec.Address `json:"payer"`
	Count   uint64        `json:"count"`
}

func (r countCmdResponse) String() string {
	return fmt.Sprintf("%s has been incremented %d time(s)", r.Counter, r.Count)
}

func init() {
	rootCmd.AddCommand(runCmd)
}
