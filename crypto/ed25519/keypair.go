// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ed25519

import (
	"bytes"
	"crypto/ed25519"
	"encoding/json"
	"fmt"
	"os"
)

// keypairFileMode is owner read/write, matching `solana-keygen`.
const keypairFileMode = 0o600

// Keypair files hold the 64 byte secret (seed|publicKey) as a JSON array of
// integers, the format written by `solana-keygen new`.

// ParseKeypair decodes the contents of a keypair file.
func ParseKeypair(b []byte) (PrivateKey, error) {
	var ints []int
	if err := json.Unmarshal(b, &ints); err != nil {
		return EmptyPrivateKey, fmt.Errorf("%w: %w", ErrInvalidKeypair, err)
	}
	if len(ints) != PrivateKeyLen {
		return EmptyPrivateKey, fmt.Errorf("%w: expected %d bytes, found %d", ErrInvalidKeypair, PrivateKeyLen, len(ints))
	}
	raw := make([]byte, PrivateKeyLen)
	for i, v := range ints {
		if v < 0 || v > 0xff {
			return EmptyPrivateKey, fmt.Errorf("%w: byte %d out of range", ErrInvalidKeypair, i)
		}
		raw[i] = byte(v)
	}
	return PrivateKeyFromBytes(raw)
}

// PrivateKeyFromBytes checks that [b] is a seed followed by the public key
// it expands to.
func PrivateKeyFromBytes(b []byte) (PrivateKey, error) {
	if len(b) != PrivateKeyLen {
		return EmptyPrivateKey, ErrInvalidPrivateKey
	}
	expanded := ed25519.NewKeyFromSeed(b[:PrivateKeySeedLen])
	if !bytes.Equal(expanded[PrivateKeySeedLen:], b[PrivateKeySeedLen:]) {
		return EmptyPrivateKey, ErrKeypairMismatch
	}
	return PrivateKey(b), nil
}

// LoadKeypairFile returns the PrivateKey stored in [filename].
func LoadKeypairFile(filename string) (PrivateKey, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return EmptyPrivateKey, err
	}
	return ParseKeypair(b)
}

// MarshalKeypair encodes p in the keypair file format.
func (p PrivateKey) MarshalKeypair() ([]byte, error) {
	ints := make([]int, PrivateKeyLen)
	for i, v := range p {
		ints[i] = int(v)
	}
	return json.Marshal(ints)
}

// SaveKeypairFile writes p to [filename], readable and writable by the owner
// only.
func (p PrivateKey) SaveKeypairFile(filename string) error {
	b, err := p.MarshalKeypair()
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, keypairFileMode)
}
