// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package simulator

import "github.com/URvesh109/example-counter/consts"

const (
	defaultLamportsPerSignature = 5_000
	defaultMaxAirdrop           = 10 * consts.LamportsPerSOL
	defaultMaxAccountDataLen    = 10 * 1024 * 1024
	defaultVersion              = "1.18.0-simulator"

	// maxRecentBlockhashes is how many blockhashes a transaction may
	// reference.
	maxRecentBlockhashes = 150
)

type Config struct {
	LamportsPerSignature uint64
	// MaxAirdrop caps a single airdrop. Zero disables the faucet.
	MaxAirdrop        uint64
	MaxAccountDataLen uint64
	Version           string
}

func NewConfig() *Config {
	return &Config{
		LamportsPerSignature: defaultLamportsPerSignature,
		MaxAirdrop:           defaultMaxAirdrop,
		MaxAccountDataLen:    defaultMaxAccountDataLen,
		Version:              defaultVersion,
	}
}
