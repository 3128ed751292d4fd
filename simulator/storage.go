// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package simulator

import (
	"errors"

	"github.com/ava-labs/avalanchego/database"

	"github.com/URvesh109/example-counter/chain"
	"github.com/URvesh109/example-counter/codec"
)

// getAccount returns nil if [addr] has no account.
func getAccount(db database.KeyValueReader, addr codec.Address) (*chain.Account, error) {
	b, err := db.Get(addr[:])
	if errors.Is(err, database.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	acct, err := codec.Deserialize[chain.Account](b)
	if err != nil {
		return nil, err
	}
	if len(acct.Data) == 0 {
		acct.Data = nil
	}
	return acct, nil
}

// putAccount stores [acct], removing it once it holds no lamports.
func putAccount(db database.KeyValueWriterDeleter, addr codec.Address, acct *chain.Account) error {
	if acct.Lamports == 0 {
		return db.Delete(addr[:])
	}
	b, err := codec.Serialize(*acct)
	if err != nil {
		return err
	}
	return db.Put(addr[:], b)
}
