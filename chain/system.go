// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"fmt"
	"io"

	"github.com/URvesh109/example-counter/codec"
	"github.com/URvesh109/example-counter/consts"
)

// SystemProgramID owns every account that has not been assigned to a
// program and creates new accounts.
var SystemProgramID = codec.EmptyAddress

// System instruction indexes, encoded as a little-endian u32.
const (
	SystemCreateAccount uint32 = iota
	SystemAssign
	SystemTransfer
	SystemCreateAccountWithSeed
)

const (
	systemIndexLen      = consts.Uint32Len
	withSeedHeaderLen   = systemIndexLen + codec.AddressLen + consts.Uint64Len
	withSeedTrailingLen = consts.Uint64Len + consts.Uint64Len + codec.AddressLen
)

// CreateAccountWithSeed creates an account at the address derived from
// ([Base], [Seed], [Owner]), funds it with [Lamports] and allocates [Space]
// zeroed bytes owned by [Owner].
type CreateAccountWithSeed struct {
	Base     codec.Address `json:"base"`
	Seed     string        `json:"seed"`
	Lamports uint64        `json:"lamports"`
	Space    uint64        `json:"space"`
	Owner    codec.Address `json:"owner"`
}

// The system program expects a u64 seed length where borsh writes a u32,
// so the fixed-width parts are encoded around the raw seed.
type createAccountWithSeedHeader struct {
	Index   uint32
	Base    codec.Address
	SeedLen uint64
}

type createAccountWithSeedTrailer struct {
	Lamports uint64
	Space    uint64
	Owner    codec.Address
}

func (c CreateAccountWithSeed) SerializeBorsh(w io.Writer) error {
	header := createAccountWithSeedHeader{
		Index:   SystemCreateAccountWithSeed,
		Base:    c.Base,
		SeedLen: uint64(len(c.Seed)),
	}
	if err := codec.SerializeTo(header, w); err != nil {
		return err
	}
	if err := codec.SerializeTo(codec.RawBytes(c.Seed), w); err != nil {
		return err
	}
	return codec.SerializeTo(createAccountWithSeedTrailer{
		Lamports: c.Lamports,
		Space:    c.Space,
		Owner:    c.Owner,
	}, w)
}

func (CreateAccountWithSeed) DeserializeBorsh(data []byte) (*CreateAccountWithSeed, error) {
	if len(data) < withSeedHeaderLen+withSeedTrailingLen {
		return nil, fmt.Errorf("%w: %d bytes", ErrInvalidInstructionData, len(data))
	}
	header, err := codec.Deserialize[createAccountWithSeedHeader](data[:withSeedHeaderLen])
	if err != nil {
		return nil, err
	}
	if header.Index != SystemCreateAccountWithSeed {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSystemInstruction, header.Index)
	}
	rest := data[withSeedHeaderLen:]
	if header.SeedLen > consts.MaxSeedLen || uint64(len(rest)) != header.SeedLen+withSeedTrailingLen {
		return nil, fmt.Errorf("%w: seed length %d", ErrInvalidInstructionData, header.SeedLen)
	}
	trailer, err := codec.Deserialize[createAccountWithSeedTrailer](rest[header.SeedLen:])
	if err != nil {
		return nil, err
	}
	return &CreateAccountWithSeed{
		Base:     header.Base,
		Seed:     string(rest[:header.SeedLen]),
		Lamports: trailer.Lamports,
		Space:    trailer.Space,
		Owner:    trailer.Owner,
	}, nil
}

// NewCreateAccountWithSeedInstruction builds the system instruction paid
// for by [from] that creates the account [to]. [to] must be the address
// derived from the base, seed and owner in [args].
func NewCreateAccountWithSeedInstruction(from, to codec.Address, args CreateAccountWithSeed) (Instruction, error) {
	data, err := codec.Serialize(args)
	if err != nil {
		return Instruction{}, err
	}
	accounts := []AccountMeta{
		{Address: from, IsSigner: true, IsWritable: true},
		{Address: to, IsSigner: false, IsWritable: true},
	}
	if args.Base != from {
		accounts = append(accounts, AccountMeta{Address: args.Base, IsSigner: true, IsWritable: false})
	}
	return NewInstruction(SystemProgramID, accounts, data), nil
}

// SystemInstructionIndex returns the index prefixing system instruction
// [data].
func SystemInstructionIndex(data []byte) (uint32, error) {
	if len(data) < systemIndexLen {
		return 0, fmt.Errorf("%w: %d bytes", ErrInvalidInstructionData, len(data))
	}
	index, err := codec.Deserialize[uint32](data[:systemIndexLen])
	if err != nil {
		return 0, err
	}
	return *index, nil
}
