// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package consts

const (
	Uint8Len     = 1
	Uint32Len    = 4
	Uint64Len    = 8
	MaxUint8     = ^uint8(0)
	MaxUint16    = ^uint16(0)
	MaxUint64    = ^uint64(0)
	PublicKeyLen = 32
	HashLen      = 32
	SignatureLen = 64

	// MaxSeedLen is the longest seed accepted when deriving an address
	// with a seed.
	MaxSeedLen = 32

	// PDAMarker is appended to program derived addresses. An owner ending
	// with it cannot be used to derive a seeded address.
	PDAMarker = "ProgramDerivedAddress"

	NativeDecimals = 9
	LamportsPerSOL = uint64(1_000_000_000)

	// Only the legacy message format is produced, so a packet-sized
	// transaction is the upper bound on anything we sign.
	MaxTransactionSize = 1232
)
