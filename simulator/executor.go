// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package simulator

import (
	"bytes"
	"fmt"

	"github.com/URvesh109/example-counter/chain"
	"github.com/URvesh109/example-counter/codec"
)

// execute runs every instruction of [tx] against a copy of the accounts it
// references and writes the result back in a single batch. Nothing is
// written if any check fails.
func (l *Ledger) execute(tx *chain.Transaction) error {
	msg := tx.Message
	accounts := make([]*chain.Account, len(msg.AccountKeys))
	for i, addr := range msg.AccountKeys {
		acct, err := getAccount(l.db, addr)
		if err != nil {
			return err
		}
		if acct == nil {
			acct = &chain.Account{Owner: chain.SystemProgramID}
		}
		accounts[i] = acct
	}

	fee := l.config.LamportsPerSignature * uint64(len(tx.Signatures))
	payer := accounts[0]
	if payer.Lamports < fee {
		return fmt.Errorf("%w: have %d, need %d", ErrInsufficientFundsForFee, payer.Lamports, fee)
	}
	payer.Lamports -= fee

	for i, ix := range msg.Instructions {
		if err := l.executeInstruction(msg, accounts, ix); err != nil {
			return fmt.Errorf("instruction %d: %w", i, err)
		}
	}

	batch := l.db.NewBatch()
	for i, addr := range msg.AccountKeys {
		if !msg.IsWritable(i) {
			continue
		}
		acct := accounts[i]
		// Only accounts holding data must stay rent exempt.
		if len(acct.Data) > 0 && acct.Lamports < chain.MinimumBalanceForRentExemption(uint64(len(acct.Data))) {
			return fmt.Errorf("%w: %s", ErrInsufficientFundsForRent, addr)
		}
		if err := putAccount(batch, addr, acct); err != nil {
			return err
		}
	}
	return batch.Write()
}

func (l *Ledger) executeInstruction(msg *chain.Message, accounts []*chain.Account, ix chain.CompiledInstruction) error {
	programID := msg.AccountKeys[ix.ProgramIDIndex]
	keyed := make([]*chain.KeyedAccount, len(ix.Accounts))
	for i, idx := range ix.Accounts {
		keyed[i] = &chain.KeyedAccount{
			Address:    msg.AccountKeys[idx],
			IsSigner:   msg.IsSigner(int(idx)),
			IsWritable: msg.IsWritable(int(idx)),
			Account:    accounts[idx],
		}
	}

	// Snapshot each referenced account once so that duplicates are checked
	// against their state before the instruction.
	pre := make(map[uint8]*chain.Account, len(ix.Accounts))
	for _, idx := range ix.Accounts {
		if _, ok := pre[idx]; !ok {
			pre[idx] = accounts[idx].Clone()
		}
	}

	if programID == chain.SystemProgramID {
		if err := l.processSystem(keyed, ix.Data); err != nil {
			return err
		}
	} else {
		program, err := l.loadProgram(accounts[ix.ProgramIDIndex], programID)
		if err != nil {
			return err
		}
		if err := program.Process(programID, keyed, ix.Data); err != nil {
			return err
		}
	}

	var preTotal, postTotal uint64
	for idx, before := range pre {
		after := accounts[idx]
		preTotal += before.Lamports
		postTotal += after.Lamports
		if err := verifyAccount(programID, msg.IsWritable(int(idx)), before, after); err != nil {
			return fmt.Errorf("%w: %s", err, msg.AccountKeys[idx])
		}
	}
	if preTotal != postTotal {
		return ErrUnbalancedInstruction
	}
	return nil
}

func (l *Ledger) loadProgram(acct *chain.Account, programID codec.Address) (Program, error) {
	program, ok := l.programs[programID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrProgramNotFound, programID)
	}
	if !acct.Executable {
		return nil, fmt.Errorf("%w: %s", ErrAccountNotExecutable, programID)
	}
	return program, nil
}

// verifyAccount enforces what [programID] may have done to an account.
func verifyAccount(programID codec.Address, writable bool, before, after *chain.Account) error {
	changed := before.Lamports != after.Lamports ||
		before.Owner != after.Owner ||
		before.Executable != after.Executable ||
		!bytes.Equal(before.Data, after.Data)
	if !changed {
		return nil
	}
	switch {
	case !writable:
		return ErrReadonlyDataModified
	case before.Executable || after.Executable:
		return ErrExecutableAccountModified
	case before.Owner != after.Owner && before.Owner != programID:
		return ErrModifiedProgramID
	case after.Lamports < before.Lamports && before.Owner != programID:
		return ErrExternalLamportSpend
	case len(before.Data) != len(after.Data) && before.Owner != programID:
		return ErrAccountDataSizeChanged
	case !bytes.Equal(before.Data, after.Data) && before.Owner != programID:
		return ErrExternalDataModified
	default:
		return nil
	}
}
