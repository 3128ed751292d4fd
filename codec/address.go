// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"bytes"
	"crypto/sha256"

	"github.com/btcsuite/btcd/btcutil/base58"

	"github.com/URvesh109/example-counter/consts"
)

const AddressLen = consts.PublicKeyLen

// Address is the 32 byte public key identifying an account on the ledger.
type Address [AddressLen]byte

var EmptyAddress = Address{}

// StringToAddress parses the base58 encoding of an address.
func StringToAddress(s string) (Address, error) {
	var a Address
	if err := decodeBase58(s, a[:]); err != nil {
		return EmptyAddress, err
	}
	return a, nil
}

// CreateWithSeed derives the address of an account from [base], [seed] and
// the [owner] program so it can be found again without storing it:
//
//	sha256(base || seed || owner)
func CreateWithSeed(base Address, seed string, owner Address) (Address, error) {
	if len(seed) > consts.MaxSeedLen {
		return EmptyAddress, ErrMaxSeedLengthExceeded
	}
	if bytes.HasSuffix(owner[:], []byte(consts.PDAMarker)) {
		return EmptyAddress, ErrIllegalOwner
	}
	h := sha256.New()
	h.Write(base[:])
	h.Write([]byte(seed))
	h.Write(owner[:])
	var a Address
	copy(a[:], h.Sum(nil))
	return a, nil
}

// String implements fmt.Stringer.
func (a Address) String() string {
	return base58.Encode(a[:])
}

// MarshalText returns the base58 representation of a.
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText parses a base58-encoded address.
func (a *Address) UnmarshalText(input []byte) error {
	return decodeBase58(string(input), a[:])
}

// Hash is a 32 byte ledger hash, such as a recent blockhash.
type Hash [consts.HashLen]byte

var EmptyHash = Hash{}

func StringToHash(s string) (Hash, error) {
	var h Hash
	if err := decodeBase58(s, h[:]); err != nil {
		return EmptyHash, err
	}
	return h, nil
}

func (h Hash) String() string {
	return base58.Encode(h[:])
}

func (h Hash) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

func (h *Hash) UnmarshalText(input []byte) error {
	return decodeBase58(string(input), h[:])
}

// decodeBase58 fills [dst] with the decoding of [s]. The decoded value must
// be exactly len(dst) bytes.
func decodeBase58(s string, dst []byte) error {
	if len(s) == 0 {
		return ErrInvalidBase58
	}
	b := base58.Decode(s)
	if len(b) == 0 {
		return ErrInvalidBase58
	}
	if len(b) != len(dst) {
		return ErrInvalidSize
	}
	copy(dst, b)
	return nil
}
