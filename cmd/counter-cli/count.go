// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import "github.com/spf13/cobra"

var countCmd = &cobra.Command{
	Use:   "count",
	Short: "Print the payer's current count without incrementing it",
	RunE: func(cmd *cobra.Command, _ []string) error {
		e, err := newEnv(cmd)
		if err != nil {
			return err
		}
		defer e.close()

		ctx, cancel := e.context(cmd)
		defer cancel()

		if _, err := e.session.EstablishConnection(ctx); err != nil {
			return err
		}
		if err := e.session.CheckProgram(ctx); err != nil {
			return err
		}
		count, err := e.session.ReportCount(ctx)
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

func init() {
	rootCmd.AddCommand(countCmd)
}
