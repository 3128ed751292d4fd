// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package counter defines the counter account's on-chain layout and the
// instruction that increments it.
package counter

import (
	"fmt"

	"github.com/URvesh109/example-counter/codec"
	"github.com/URvesh109/example-counter/consts"
)

// EncodedSize is the number of bytes a counter occupies in its account,
// whatever its value. Callers use it to allocate and rent-fund the account.
const EncodedSize = consts.Uint64Len

// Seed is combined with the payer and program id to derive the counter
// account address.
const Seed = "counter"

// Counter is the state stored in a counter account: a single borsh u64.
type Counter struct {
	Count uint64
}

// Encode returns the little-endian account representation of [count].
func Encode(count uint64) [EncodedSize]byte {
	var out [EncodedSize]byte
	b, err := codec.Serialize(Counter{Count: count})
	if err != nil {
		// A struct of one u64 always serializes.
		panic(err)
	}
	copy(out[:], b)
	return out
}

// Decode returns the count stored in the first [EncodedSize] bytes of
// [data]. Any trailing bytes are ignored.
func Decode(data []byte) (uint64, error) {
	if len(data) < EncodedSize {
		return 0, fmt.Errorf("%w: %d < %d bytes", ErrMalformedAccountData, len(data), EncodedSize)
	}
	c, err := codec.Deserialize[Counter](data[:EncodedSize])
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrMalformedAccountData, err)
	}
	return c.Count, nil
}

// Address returns the counter account owned by [programID] for [payer].
func Address(payer, programID codec.Address) (codec.Address, error) {
	return codec.CreateWithSeed(payer, Seed, programID)
}
