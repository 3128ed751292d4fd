// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/stretchr/testify/require"

	"github.com/URvesh109/example-counter/codec"
	"github.com/URvesh109/example-counter/counter"
	"github.com/URvesh109/example-counter/crypto/ed25519"
)

func execute(t *testing.T, args ...string) string {
	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestAddressCommand(t *testing.T) {
	require := require.New(t)
	dir := t.TempDir()
	payer, err := ed25519.GeneratePrivateKey()
	require.NoError(err)
	keypair := filepath.Join(dir, "id.json")
	require.NoError(payer.SaveKeypairFile(keypair))
	programID := codec.Address{0x42}

	expected, err := counter.Address(payer.Address(), programID)
	require.NoError(err)

	out := execute(t, "address",
		"--keypair", keypair,
		"--program-id", programID.String(),
		"--solana-config", filepath.Join(dir, "missing.yml"),
		"--output", "text",
	)
	require.Equal(expected.String()+"\n", out)

	out = execute(t, "address",
		"--keypair", keypair,
		"--program-id", programID.String(),
		"--solana-config", filepath.Join(dir, "missing.yml"),
		"--output", "json",
	)
	var resp addressCmdResponse
	require.NoError(json.Unmarshal([]byte(out), &resp))
	require.Equal(expected, resp.Counter)
	require.Equal(programID, resp.Program)
	require.Equal(payer.Address(), resp.Payer)
	require.Equal(counter.Seed, resp.Seed)
}

func TestEndpointCommand(t *testing.T) {
	out := execute(t, "endpoint",
		"--endpoint", "http://127.0.0.1:18899",
		"--solana-config", filepath.Join(t.TempDir(), "missing.yml"),
		"--output", "text",
	)
	require.Equal(t, "http://127.0.0.1:18899\n", out)
}

func TestCountResponse(t *testing.T) {
	r := countCmdResponse{Counter: codec.EmptyAddress, Count: 3}
	require.Equal(t, codec.EmptyAddress.String()+" has been incremented 3 time(s)", r.String())
}

func TestLogLevelFlag(t *testing.T) {
	require := require.New(t)
	require.NoError(rootCmd.ParseFlags([]string{"--log-level", "debug"}))
	t.Cleanup(func() {
		_ = rootCmd.Flags().Set("log-level", "")
	})

	cfg, err := loadConfig(rootCmd)
	require.NoError(err)
	require.Equal("debug", cfg.LogLevel)

	log, closer, err := newLogger(rootCmd, cfg)
	require.NoError(err)
	require.Nil(closer)
	require.True(log.Enabled(logging.Debug))
	require.False(log.Enabled(logging.Verbo))

	require.NoError(rootCmd.Flags().Set("log-level", "loud"))
	_, err = loadConfig(rootCmd)
	require.Error(err)
}
