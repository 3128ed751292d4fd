// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package simulator

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/URvesh109/example-counter/chain"
	"github.com/URvesh109/example-counter/codec"
)

// processSystem executes a system program instruction. Only account
// creation from a seed is supported.
func (l *Ledger) processSystem(accounts []*chain.KeyedAccount, data []byte) error {
	index, err := chain.SystemInstructionIndex(data)
	if err != nil {
		return err
	}
	switch index {
	case chain.SystemCreateAccountWithSeed:
		args, err := codec.Deserialize[chain.CreateAccountWithSeed](data)
		if err != nil {
			return err
		}
		return l.createAccountWithSeed(accounts, args)
	default:
		return fmt.Errorf("%w: %d", chain.ErrUnknownSystemInstruction, index)
	}
}

func (l *Ledger) createAccountWithSeed(accounts []*chain.KeyedAccount, args *chain.CreateAccountWithSeed) error {
	if len(accounts) < 2 {
		return fmt.Errorf("%w: %d", ErrNotEnoughAccountKeys, len(accounts))
	}
	from, to := accounts[0], accounts[1]
	if !from.IsSigner {
		return fmt.Errorf("%w: %s", ErrMissingRequiredSignature, from.Address)
	}
	if !signed(accounts, args.Base) {
		return fmt.Errorf("%w: base %s", ErrMissingRequiredSignature, args.Base)
	}
	derived, err := codec.CreateWithSeed(args.Base, args.Seed, args.Owner)
	if err != nil {
		return err
	}
	if derived != to.Address {
		return fmt.Errorf("%w: %s != %s", ErrAddressMismatch, derived, to.Address)
	}
	if to.Lamports > 0 || len(to.Data) > 0 || to.Owner != chain.SystemProgramID {
		return fmt.Errorf("%w: %s", ErrAccountAlreadyInUse, to.Address)
	}
	if args.Space > l.config.MaxAccountDataLen {
		return fmt.Errorf("%w: %d", ErrInvalidAccountDataLen, args.Space)
	}
	if from.Lamports < args.Lamports {
		return fmt.Errorf("%w: have %d, need %d", ErrInsufficientFunds, from.Lamports, args.Lamports)
	}

	from.Lamports -= args.Lamports
	to.Lamports = args.Lamports
	to.Data = make([]byte, args.Space)
	to.Owner = args.Owner
	l.log.Debug("created account",
		zap.Stringer("address", to.Address),
		zap.Stringer("owner", args.Owner),
		zap.Uint64("space", args.Space),
	)
	return nil
}

func signed(accounts []*chain.KeyedAccount, addr codec.Address) bool {
	for _, acct := range accounts {
		if acct.Address == addr && acct.IsSigner {
			return true
		}
	}
	return false
}
