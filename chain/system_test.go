// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/URvesh109/example-counter/chain"
	"github.com/URvesh109/example-counter/codec"
)

func TestCreateAccountWithSeedEncoding(t *testing.T) {
	require := require.New(t)
	args := chain.CreateAccountWithSeed{
		Base:     payer,
		Seed:     "counter",
		Lamports: 946560,
		Space:    8,
		Owner:    programID,
	}
	to, err := codec.CreateWithSeed(args.Base, args.Seed, args.Owner)
	require.NoError(err)

	ix, err := chain.NewCreateAccountWithSeedInstruction(payer, to, args)
	require.NoError(err)
	require.Equal(chain.SystemProgramID, ix.ProgramID)
	require.Equal([]chain.AccountMeta{
		{Address: payer, IsSigner: true, IsWritable: true},
		{Address: to, IsWritable: true},
	}, ix.Accounts)

	// index | base | seed len | seed | lamports | space | owner
	require.Len(ix.Data, 4+32+8+len("counter")+8+8+32)
	require.Equal([]byte{3, 0, 0, 0}, ix.Data[:4])
	require.Equal(payer[:], ix.Data[4:36])
	require.Equal([]byte{7, 0, 0, 0, 0, 0, 0, 0}, ix.Data[36:44])
	require.Equal([]byte("counter"), ix.Data[44:51])
	require.Equal([]byte{0x80, 0x71, 0x0e, 0, 0, 0, 0, 0}, ix.Data[51:59])
	require.Equal([]byte{8, 0, 0, 0, 0, 0, 0, 0}, ix.Data[59:67])
	require.Equal(programID[:], ix.Data[67:])

	index, err := chain.SystemInstructionIndex(ix.Data)
	require.NoError(err)
	require.Equal(chain.SystemCreateAccountWithSeed, index)

	parsed, err := codec.Deserialize[chain.CreateAccountWithSeed](ix.Data)
	require.NoError(err)
	require.Equal(args, *parsed)
}

func TestCreateAccountWithSeedSeparateBase(t *testing.T) {
	require := require.New(t)
	args := chain.CreateAccountWithSeed{Base: signerRO, Seed: "s", Owner: programID}
	ix, err := chain.NewCreateAccountWithSeedInstruction(payer, writable, args)
	require.NoError(err)
	require.Len(ix.Accounts, 3)
	require.Equal(chain.AccountMeta{Address: signerRO, IsSigner: true}, ix.Accounts[2])
}

func TestCreateAccountWithSeedInvalid(t *testing.T) {
	require := require.New(t)
	args := chain.CreateAccountWithSeed{Base: payer, Seed: "counter", Owner: programID}
	b, err := codec.Serialize(args)
	require.NoError(err)

	_, err = codec.Deserialize[chain.CreateAccountWithSeed](b[:20])
	require.ErrorIs(err, chain.ErrInvalidInstructionData)

	_, err = codec.Deserialize[chain.CreateAccountWithSeed](append(b, 0))
	require.ErrorIs(err, chain.ErrInvalidInstructionData)

	wrongIndex := append([]byte{2}, b[1:]...)
	_, err = codec.Deserialize[chain.CreateAccountWithSeed](wrongIndex)
	require.ErrorIs(err, chain.ErrUnknownSystemInstruction)

	_, err = chain.SystemInstructionIndex([]byte{3})
	require.ErrorIs(err, chain.ErrInvalidInstructionData)
}

func TestMinimumBalanceForRentExemption(t *testing.T) {
	require := require.New(t)
	require.Equal(uint64(890880), chain.MinimumBalanceForRentExemption(0))
	require.Equal(uint64(946560), chain.MinimumBalanceForRentExemption(8))
}
