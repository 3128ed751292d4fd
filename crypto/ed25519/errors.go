// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ed25519

import "errors"

var (
	ErrInvalidPrivateKey = errors.New("invalid private key")
	ErrInvalidSignature  = errors.New("invalid signature")
	ErrInvalidKeypair    = errors.New("invalid keypair")
	ErrKeypairMismatch   = errors.New("keypair public key does not match secret")
)
