// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/URvesh109/example-counter/config"
	"github.com/URvesh109/example-counter/requester"
	"github.com/URvesh109/example-counter/rpc"
	"github.com/URvesh109/example-counter/session"
)

const (
	metricsNamespace = "counter_cli"

	logFileMaxSizeMB  = 8
	logFileMaxBackups = 3
	logFileMaxAgeDays = 7
)

// env holds everything a command builds from its flags. close must be
// called once the command is done.
type env struct {
	log     logging.Logger
	config  *config.Config
	client  *rpc.JSONRPCClient
	session *session.Session

	registry    *prometheus.Registry
	metricsFile string
	logFile     io.Closer
}

func newLogger(cmd *cobra.Command, cfg *config.Config) (logging.Logger, io.Closer, error) {
	level, err := cfg.GetLogLevel()
	if err != nil {
		return nil, nil, err
	}
	cores := []logging.WrappedCore{
		logging.NewWrappedCore(level, os.Stderr, logging.Colors.ConsoleEncoder()),
	}

	logFile, err := cmd.Flags().GetString("log-file")
	if err != nil {
		return nil, nil, err
	}
	var closer io.Closer
	if logFile != "" {
		rotator := &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    logFileMaxSizeMB,
			MaxBackups: logFileMaxBackups,
			MaxAge:     logFileMaxAgeDays,
			Compress:   true,
		}
		cores = append(cores, logging.NewWrappedCore(level, rotator, logging.Plain.FileEncoder()))
		closer = rotator
	}
	return logging.NewLogger("", cores...), closer, nil
}

// newEnv wires the logger, config, metrics, RPC client and session used by
// every command that talks to a cluster.
func newEnv(cmd *cobra.Command) (*env, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	log, logFile, err := newLogger(cmd, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	e := &env{log: log, config: cfg, logFile: logFile}
	if err := applySolanaConfig(cmd, cfg, log); err != nil {
		e.close()
		return nil, err
	}

	e.registry = prometheus.NewRegistry()
	metrics, err := requester.NewMetrics(metricsNamespace, e.registry)
	if err != nil {
		e.close()
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}
	if e.metricsFile, err = cmd.Flags().GetString("metrics-file"); err != nil {
		e.close()
		return nil, err
	}

	e.client = rpc.NewJSONRPCClient(
		cfg.GetRPCURL(),
		rpc.WithCommitment(cfg.Commitment),
		rpc.WithConfirmTimeout(cfg.ConfirmTimeout),
		rpc.WithRequesterOptions(requester.WithMetrics(metrics)),
	)
	payer, err := cfg.LoadPayer(log)
	if err != nil {
		e.close()
		return nil, fmt.Errorf("failed to load payer: %w", err)
	}
	e.session = session.New(log, cfg, e.client, payer)
	return e, nil
}

func (e *env) context(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), e.config.Timeout)
}

func (e *env) close() {
	if e.metricsFile != "" {
		if err := prometheus.WriteToTextfile(e.metricsFile, e.registry); err != nil {
			fmt.Fprintln(os.Stderr, "Error writing metrics:", err)
		}
	}
	if e.logFile != nil {
		_ = e.logFile.Close()
	}
}
