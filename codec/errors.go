// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import "errors"

var (
	ErrInsufficientLength    = errors.New("insufficient length")
	ErrInvalidSize           = errors.New("invalid size")
	ErrInvalidBase58         = errors.New("invalid base58")
	ErrMaxSeedLengthExceeded = errors.New("max seed length exceeded")
	ErrIllegalOwner          = errors.New("provided owner is not allowed")
	ErrShortVecOverflow      = errors.New("compact-u16 overflow")
	ErrShortVecTooLong       = errors.New("compact-u16 encoding too long")
)
