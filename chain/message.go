// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"fmt"

	"github.com/URvesh109/example-counter/codec"
	"github.com/URvesh109/example-counter/consts"
)

// maxAccounts bounds the account list because instructions reference
// accounts with a single byte index.
const maxAccounts = int(consts.MaxUint8) + 1

type MessageHeader struct {
	NumRequiredSignatures       uint8 `json:"numRequiredSignatures"`
	NumReadonlySignedAccounts   uint8 `json:"numReadonlySignedAccounts"`
	NumReadonlyUnsignedAccounts uint8 `json:"numReadonlyUnsignedAccounts"`
}

// CompiledInstruction is an [Instruction] whose program and accounts are
// replaced by indexes into [Message.AccountKeys].
type CompiledInstruction struct {
	ProgramIDIndex uint8   `json:"programIdIndex"`
	Accounts       []uint8 `json:"accounts"`
	Data           []byte  `json:"data"`
}

// Message is the signed portion of a legacy transaction.
type Message struct {
	Header          MessageHeader         `json:"header"`
	AccountKeys     []codec.Address       `json:"accountKeys"`
	RecentBlockhash codec.Hash            `json:"recentBlockhash"`
	Instructions    []CompiledInstruction `json:"instructions"`
}

type accountFlags struct {
	signer   bool
	writable bool
}

// NewMessage compiles [instructions] into a message paid for by [payer].
//
// The payer is always the first account. The remaining accounts are
// ordered writable signers, read-only signers, writable non-signers and
// read-only non-signers, keeping first-seen order within each group. An
// account referenced more than once receives the union of its flags.
func NewMessage(payer codec.Address, instructions []Instruction, blockhash codec.Hash) (*Message, error) {
	if len(instructions) == 0 {
		return nil, ErrNoInstructions
	}

	var (
		order = []codec.Address{payer}
		flags = map[codec.Address]*accountFlags{
			payer: {signer: true, writable: true},
		}
	)
	add := func(addr codec.Address, signer, writable bool) {
		f, ok := flags[addr]
		if !ok {
			f = &accountFlags{}
			flags[addr] = f
			order = append(order, addr)
		}
		f.signer = f.signer || signer
		f.writable = f.writable || writable
	}
	for _, ix := range instructions {
		for _, meta := range ix.Accounts {
			add(meta.Address, meta.IsSigner, meta.IsWritable)
		}
		add(ix.ProgramID, false, false)
	}
	if len(order) > maxAccounts {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyAccounts, len(order), maxAccounts)
	}

	groups := make([][]codec.Address, 4)
	for _, addr := range order {
		f := flags[addr]
		switch {
		case f.signer && f.writable:
			groups[0] = append(groups[0], addr)
		case f.signer:
			groups[1] = append(groups[1], addr)
		case f.writable:
			groups[2] = append(groups[2], addr)
		default:
			groups[3] = append(groups[3], addr)
		}
	}

	m := &Message{
		Header: MessageHeader{
			NumRequiredSignatures:       uint8(len(groups[0]) + len(groups[1])),
			NumReadonlySignedAccounts:   uint8(len(groups[1])),
			NumReadonlyUnsignedAccounts: uint8(len(groups[3])),
		},
		AccountKeys:     make([]codec.Address, 0, len(order)),
		RecentBlockhash: blockhash,
		Instructions:    make([]CompiledInstruction, 0, len(instructions)),
	}
	index := make(map[codec.Address]uint8, len(order))
	for _, group := range groups {
		for _, addr := range group {
			index[addr] = uint8(len(m.AccountKeys))
			m.AccountKeys = append(m.AccountKeys, addr)
		}
	}
	for _, ix := range instructions {
		compiled := CompiledInstruction{
			ProgramIDIndex: index[ix.ProgramID],
			Accounts:       make([]uint8, len(ix.Accounts)),
			Data:           ix.Data,
		}
		for i, meta := range ix.Accounts {
			compiled.Accounts[i] = index[meta.Address]
		}
		m.Instructions = append(m.Instructions, compiled)
	}
	return m, nil
}

// IsSigner reports whether the account at [i] must sign.
func (m *Message) IsSigner(i int) bool {
	return i < int(m.Header.NumRequiredSignatures)
}

// IsWritable reports whether the account at [i] may be modified.
func (m *Message) IsWritable(i int) bool {
	numSigned := int(m.Header.NumRequiredSignatures)
	if i < numSigned {
		return i < numSigned-int(m.Header.NumReadonlySignedAccounts)
	}
	return i < len(m.AccountKeys)-int(m.Header.NumReadonlyUnsignedAccounts)
}

// Signers returns the accounts that must sign, fee payer first.
func (m *Message) Signers() []codec.Address {
	return m.AccountKeys[:m.Header.NumRequiredSignatures]
}

// FeePayer returns the account charged for the transaction.
func (m *Message) FeePayer() codec.Address {
	return m.AccountKeys[0]
}

func (m *Message) Marshal(p *codec.Packer) {
	p.PackByte(m.Header.NumRequiredSignatures)
	p.PackByte(m.Header.NumReadonlySignedAccounts)
	p.PackByte(m.Header.NumReadonlyUnsignedAccounts)
	p.PackShortVec(len(m.AccountKeys))
	for _, addr := range m.AccountKeys {
		p.PackAddress(addr)
	}
	p.PackHash(m.RecentBlockhash)
	p.PackShortVec(len(m.Instructions))
	for _, ix := range m.Instructions {
		p.PackByte(ix.ProgramIDIndex)
		p.PackBytes(ix.Accounts)
		p.PackBytes(ix.Data)
	}
}

// Bytes returns the serialized message, which is what signers sign.
func (m *Message) Bytes() ([]byte, error) {
	p := codec.NewWriter(consts.MaxTransactionSize, consts.MaxTransactionSize)
	m.Marshal(p)
	return p.Bytes(), p.Err()
}

func UnmarshalMessage(p *codec.Packer) (*Message, error) {
	var m Message
	m.Header.NumRequiredSignatures = p.UnpackByte()
	m.Header.NumReadonlySignedAccounts = p.UnpackByte()
	m.Header.NumReadonlyUnsignedAccounts = p.UnpackByte()

	numKeys := p.UnpackShortVec()
	if numKeys > maxAccounts {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyAccounts, numKeys, maxAccounts)
	}
	m.AccountKeys = make([]codec.Address, numKeys)
	for i := range m.AccountKeys {
		p.UnpackAddress(&m.AccountKeys[i])
	}
	p.UnpackHash(&m.RecentBlockhash)

	numInstructions := p.UnpackShortVec()
	for i := 0; i < numInstructions && p.Err() == nil; i++ {
		ix := CompiledInstruction{ProgramIDIndex: p.UnpackByte()}
		ix.Accounts = p.UnpackBytes()
		ix.Data = p.UnpackBytes()
		m.Instructions = append(m.Instructions, ix)
	}
	if err := p.Err(); err != nil {
		return nil, err
	}
	if err := m.verify(); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *Message) verify() error {
	h := m.Header
	if h.NumRequiredSignatures == 0 ||
		int(h.NumRequiredSignatures) > len(m.AccountKeys) ||
		h.NumReadonlySignedAccounts >= h.NumRequiredSignatures ||
		int(h.NumRequiredSignatures)+int(h.NumReadonlyUnsignedAccounts) > len(m.AccountKeys) {
		return ErrInvalidHeader
	}
	if len(m.Instructions) == 0 {
		return ErrNoInstructions
	}
	for _, ix := range m.Instructions {
		if int(ix.ProgramIDIndex) >= len(m.AccountKeys) || ix.ProgramIDIndex == 0 {
			return fmt.Errorf("%w: program %d", ErrInvalidAccountIndex, ix.ProgramIDIndex)
		}
		for _, idx := range ix.Accounts {
			if int(idx) >= len(m.AccountKeys) {
				return fmt.Errorf("%w: account %d", ErrInvalidAccountIndex, idx)
			}
		}
	}
	return nil
}
