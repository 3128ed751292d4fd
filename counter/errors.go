// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package counter

import "errors"

var (
	// ErrMalformedAccountData is returned when account data is shorter than
	// [EncodedSize]; the account is corrupt or was derived wrongly.
	ErrMalformedAccountData = errors.New("malformed counter account data")

	ErrNotImplemented     = errors.New("instruction not implemented")
	ErrMissingAccount     = errors.New("counter account not provided")
	ErrAccountNotWritable = errors.New("counter account is not writable")
	ErrIncorrectProgramID = errors.New("counter account is not owned by the program")
	ErrCountOverflow      = errors.New("count overflow")
)
