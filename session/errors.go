// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package session

import (
	"errors"
	"fmt"
)

var (
	ErrConnection           = errors.New("unable to connect to cluster")
	ErrInsufficientFunds    = errors.New("insufficient funds to pay for fees")
	ErrProgramNotDeployed   = errors.New("program is not deployed")
	ErrProgramNotExecutable = fmt.Errorf("%w: program is not executable", ErrProgramNotDeployed)
	ErrAccountMissing       = errors.New("counter account not found")
	ErrInvalidAccountOwner  = errors.New("counter account is owned by another program")

	ErrNotConnected        = errors.New("connection not established")
	ErrPayerNotEstablished = errors.New("payer not established")
	ErrProgramNotChecked   = errors.New("program not checked")
)
