// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package simulator

import "errors"

var (
	ErrBlockhashNotFound         = errors.New("blockhash not found")
	ErrAlreadyProcessed          = errors.New("transaction already processed")
	ErrUnknownSignature          = errors.New("unknown signature")
	ErrAirdropLimit              = errors.New("airdrop exceeds faucet limit")
	ErrInsufficientFundsForFee   = errors.New("insufficient funds for fee")
	ErrInsufficientFundsForRent  = errors.New("insufficient funds for rent")
	ErrInsufficientFunds         = errors.New("insufficient funds")
	ErrProgramNotFound           = errors.New("program not found")
	ErrAccountNotExecutable      = errors.New("program account is not executable")
	ErrAccountAlreadyInUse       = errors.New("account already in use")
	ErrAddressMismatch           = errors.New("derived address does not match")
	ErrMissingRequiredSignature  = errors.New("missing required signature")
	ErrNotEnoughAccountKeys      = errors.New("not enough account keys")
	ErrInvalidAccountDataLen     = errors.New("invalid account data length")
	ErrExternalDataModified      = errors.New("instruction modified data of an account it does not own")
	ErrReadonlyDataModified      = errors.New("instruction modified a read-only account")
	ErrExternalLamportSpend      = errors.New("instruction spent from an account it does not own")
	ErrModifiedProgramID         = errors.New("instruction changed the owner of an account it does not own")
	ErrUnbalancedInstruction     = errors.New("sum of account balances changed")
	ErrAccountDataSizeChanged    = errors.New("instruction changed the size of account data")
	ErrProgramAlreadyDeployed    = errors.New("program already deployed")
	ErrExecutableAccountModified = errors.New("instruction modified an executable account")
)
