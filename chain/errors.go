// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import "errors"

var (
	ErrNoInstructions           = errors.New("no instructions")
	ErrTooManyAccounts          = errors.New("too many accounts")
	ErrInvalidAccountIndex      = errors.New("invalid account index")
	ErrInvalidHeader            = errors.New("invalid message header")
	ErrMissingSigner            = errors.New("missing signer")
	ErrSignatureCountMismatch   = errors.New("signature count does not match required signers")
	ErrInvalidSignature         = errors.New("invalid signature")
	ErrTrailingBytes            = errors.New("trailing bytes")
	ErrUnknownSystemInstruction = errors.New("unknown system instruction")
	ErrInvalidInstructionData   = errors.New("invalid instruction data")
)
