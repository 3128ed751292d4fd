// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ava-labs/avalanchego/utils/logging"
	"go.uber.org/zap"

	"github.com/URvesh109/example-counter/codec"
	"github.com/URvesh109/example-counter/crypto/ed25519"
	"github.com/URvesh109/example-counter/rpc"
)

const (
	defaultProgramPath          = "dist/program"
	programSoName               = "counter.so"
	programKeypairName          = "counter-keypair.json"
	defaultTimeout              = 2 * time.Minute
	defaultLamportsPerSignature = 5_000
	// defaultSignatureBudget is how many signatures the payer should be able
	// to pay for after the counter account is funded.
	defaultSignatureBudget = 100
)

type Config struct {
	// RPCURL is the cluster JSON-RPC endpoint. When empty, the Solana CLI
	// config is consulted and then [rpc.DefaultEndpoint].
	RPCURL string
	// KeypairPath is the payer keypair file or a hex-encoded private key.
	KeypairPath string

	ProgramKeypairPath string
	ProgramSoPath      string
	// ProgramID overrides the id read from ProgramKeypairPath.
	ProgramID string

	Commitment     rpc.Commitment
	Timeout        time.Duration
	ConfirmTimeout time.Duration

	LamportsPerSignature uint64
	SignatureBudget      uint64

	LogLevel string
}

func NewConfig() *Config {
	return &Config{
		ProgramKeypairPath:   filepath.Join(defaultProgramPath, programKeypairName),
		ProgramSoPath:        filepath.Join(defaultProgramPath, programSoName),
		Commitment:           rpc.CommitmentConfirmed,
		Timeout:              defaultTimeout,
		ConfirmTimeout:       rpc.DefaultConfirmTimeout,
		LamportsPerSignature: defaultLamportsPerSignature,
		SignatureBudget:      defaultSignatureBudget,
		LogLevel:             logging.Info.LowerString(),
	}
}

// SetProgramPath points the program files at [dir].
func (c *Config) SetProgramPath(dir string) {
	c.ProgramKeypairPath = filepath.Join(dir, programKeypairName)
	c.ProgramSoPath = filepath.Join(dir, programSoName)
}

// Apply fills the endpoint, payer keypair and commitment left unset from the
// Solana CLI config at [path]. A missing file is not an error.
func (c *Config) Apply(log logging.Logger, path string) error {
	cli, err := LoadSolanaCLIConfig(path)
	if errors.Is(err, os.ErrNotExist) {
		log.Debug("no solana cli config found", zap.String("path", path))
		return nil
	}
	if err != nil {
		return err
	}
	if c.RPCURL == "" {
		c.RPCURL = cli.JSONRPCURL
	}
	if c.KeypairPath == "" {
		c.KeypairPath = cli.KeypairPath
	}
	if cli.Commitment != "" {
		commitment, err := rpc.ParseCommitment(cli.Commitment)
		if err != nil {
			return fmt.Errorf("%w: %s", err, path)
		}
		c.Commitment = commitment
	}
	return nil
}

func (c *Config) GetRPCURL() string {
	if c.RPCURL == "" {
		return rpc.DefaultEndpoint
	}
	return c.RPCURL
}

func (c *Config) GetLogLevel() (logging.Level, error) {
	return logging.ToLevel(c.LogLevel)
}

// FundingTarget is the balance the payer needs given the rent exemption of
// the counter account.
func (c *Config) FundingTarget(rent uint64) uint64 {
	return rent + c.LamportsPerSignature*c.SignatureBudget
}

// LoadPayer returns the configured payer. If none is configured or it cannot
// be loaded, a new random keypair is used instead.
func (c *Config) LoadPayer(log logging.Logger) (ed25519.PrivateKey, error) {
	if c.KeypairPath != "" {
		key, err := LoadPrivateKey(c.KeypairPath)
		if err == nil {
			return key, nil
		}
		log.Warn("failed to load payer keypair, falling back to a new random keypair",
			zap.String("keypair", c.KeypairPath),
			zap.Error(err),
		)
	} else {
		log.Warn("no payer keypair configured, using a new random keypair")
	}
	return ed25519.GeneratePrivateKey()
}

// LoadProgramID returns [ProgramID] when set and otherwise the address of
// the program keypair.
func (c *Config) LoadProgramID() (codec.Address, error) {
	if c.ProgramID != "" {
		return codec.StringToAddress(c.ProgramID)
	}
	key, err := ed25519.LoadKeypairFile(c.ProgramKeypairPath)
	if err != nil {
		return codec.EmptyAddress, err
	}
	return key.Address(), nil
}

// ProgramBuilt reports whether the program shared object exists.
func (c *Config) ProgramBuilt() bool {
	_, err := os.Stat(c.ProgramSoPath)
	return err == nil
}

// LoadPrivateKey reads a keypair file, or decodes [fileNameOrHex] as a hex
// private key when no such file exists.
func LoadPrivateKey(fileNameOrHex string) (ed25519.PrivateKey, error) {
	if _, err := os.Stat(fileNameOrHex); err == nil {
		return ed25519.LoadKeypairFile(fileNameOrHex)
	}
	b, err := codec.LoadHex(fileNameOrHex, ed25519.PrivateKeyLen)
	if err != nil {
		return ed25519.EmptyPrivateKey, fmt.Errorf("%w: unable to read %q as a keypair file or hex key", ErrInvalidKey, fileNameOrHex)
	}
	return ed25519.PrivateKeyFromBytes(b)
}
