// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import "github.com/URvesh109/example-counter/codec"

// Account is a ledger-resident storage slot: its balance, the program that
// owns (and may modify) it, and its raw data.
type Account struct {
	Lamports   uint64        `json:"lamports"`
	Owner      codec.Address `json:"owner"`
	Executable bool          `json:"executable"`
	Data       []byte        `json:"data"`
}

// Clone returns a deep copy of a.
func (a *Account) Clone() *Account {
	c := *a
	c.Data = append([]byte(nil), a.Data...)
	return &c
}

// KeyedAccount is an account as presented to an executing program,
// together with the permissions the transaction granted on it.
type KeyedAccount struct {
	Address    codec.Address
	IsSigner   bool
	IsWritable bool

	*Account
}
