// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import "errors"

var (
	ErrInvalidCommitment = errors.New("invalid commitment")
	ErrInvalidEncoding   = errors.New("invalid account data encoding")
	ErrTransactionFailed = errors.New("transaction failed")
	ErrConfirmTimeout    = errors.New("timed out waiting for confirmation")
)
