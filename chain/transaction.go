// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"fmt"

	"github.com/URvesh109/example-counter/codec"
	"github.com/URvesh109/example-counter/consts"
	"github.com/URvesh109/example-counter/crypto/ed25519"
)

// Transaction is a legacy transaction: the signatures of every required
// signer followed by the message they signed.
type Transaction struct {
	Signatures []ed25519.Signature `json:"signatures"`
	Message    *Message            `json:"message"`

	bytes []byte
}

func NewTransaction(payer codec.Address, instructions []Instruction, blockhash codec.Hash) (*Transaction, error) {
	msg, err := NewMessage(payer, instructions, blockhash)
	if err != nil {
		return nil, err
	}
	return &Transaction{Message: msg}, nil
}

// Sign signs the message with the key of every required signer. [keys]
// may contain keys that are not needed.
func (t *Transaction) Sign(keys ...ed25519.PrivateKey) (*Transaction, error) {
	msg, err := t.Message.Bytes()
	if err != nil {
		return nil, err
	}
	byAddr := make(map[codec.Address]ed25519.PrivateKey, len(keys))
	for _, k := range keys {
		byAddr[k.Address()] = k
	}
	signers := t.Message.Signers()
	sigs := make([]ed25519.Signature, len(signers))
	for i, signer := range signers {
		k, ok := byAddr[signer]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingSigner, signer)
		}
		sigs[i] = ed25519.Sign(msg, k)
	}
	t.Signatures = sigs

	// Ensure transaction is fully initialized and correct by reloading it from
	// bytes
	b, err := t.Marshal()
	if err != nil {
		return nil, err
	}
	return UnmarshalTransaction(b)
}

// ID is the first signature, which is the fee payer's.
func (t *Transaction) ID() ed25519.Signature {
	if len(t.Signatures) == 0 {
		return ed25519.EmptySignature
	}
	return t.Signatures[0]
}

// Bytes returns the wire encoding of a parsed or signed transaction.
func (t *Transaction) Bytes() []byte { return t.bytes }

func (t *Transaction) Size() int { return len(t.bytes) }

func (t *Transaction) Marshal() ([]byte, error) {
	p := codec.NewWriter(consts.MaxTransactionSize, consts.MaxTransactionSize)
	p.PackShortVec(len(t.Signatures))
	for _, sig := range t.Signatures {
		p.PackFixedBytes(sig[:])
	}
	t.Message.Marshal(p)
	return p.Bytes(), p.Err()
}

func UnmarshalTransaction(b []byte) (*Transaction, error) {
	p := codec.NewReader(b, consts.MaxTransactionSize)
	numSigs := p.UnpackShortVec()
	if p.Err() == nil && numSigs*ed25519.SignatureLen > len(b) {
		return nil, codec.ErrInsufficientLength
	}
	t := &Transaction{Signatures: make([]ed25519.Signature, numSigs)}
	for i := range t.Signatures {
		p.UnpackFixedBytes(t.Signatures[i][:])
	}
	if err := p.Err(); err != nil {
		return nil, err
	}
	msg, err := UnmarshalMessage(p)
	if err != nil {
		return nil, err
	}
	if !p.Empty() {
		return nil, ErrTrailingBytes
	}
	if len(t.Signatures) != int(msg.Header.NumRequiredSignatures) {
		return nil, fmt.Errorf("%w: %d != %d", ErrSignatureCountMismatch, len(t.Signatures), msg.Header.NumRequiredSignatures)
	}
	t.Message = msg
	t.bytes = b
	return t, nil
}

// Verify checks every signature against the message. Larger sets are
// verified as a batch.
func (t *Transaction) Verify() error {
	msg, err := t.Message.Bytes()
	if err != nil {
		return err
	}
	signers := t.Message.Signers()
	if len(signers) != len(t.Signatures) {
		return ErrSignatureCountMismatch
	}
	if len(signers) < ed25519.MinBatchSize {
		for i, signer := range signers {
			if !ed25519.Verify(msg, ed25519.PublicKey(signer), t.Signatures[i]) {
				return fmt.Errorf("%w: %s", ErrInvalidSignature, signer)
			}
		}
		return nil
	}
	batch := ed25519.NewBatch(len(signers))
	for i, signer := range signers {
		batch.Add(msg, ed25519.PublicKey(signer), t.Signatures[i])
	}
	if !batch.Verify() {
		return ErrInvalidSignature
	}
	return nil
}
