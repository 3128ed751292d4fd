// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package counter

import (
	"fmt"

	"github.com/URvesh109/example-counter/chain"
	"github.com/URvesh109/example-counter/codec"
	"github.com/URvesh109/example-counter/consts"
)

// Instruction is the one-byte opcode the counter program dispatches on.
type Instruction uint8

// Increment adds one to the counter. It carries no payload.
const Increment Instruction = 0

func (i Instruction) String() string {
	switch i {
	case Increment:
		return "Increment"
	default:
		return fmt.Sprintf("Instruction(%d)", uint8(i))
	}
}

// NewIncrementInstruction builds the instruction that increments the
// counter stored at [counterAddr].
func NewIncrementInstruction(programID, counterAddr codec.Address) (chain.Instruction, error) {
	data, err := codec.Serialize(uint8(Increment))
	if err != nil {
		return chain.Instruction{}, err
	}
	return chain.NewInstruction(
		programID,
		[]chain.AccountMeta{{Address: counterAddr, IsSigner: false, IsWritable: true}},
		data,
	), nil
}

// UnmarshalInstruction decodes instruction [data] sent to the program.
func UnmarshalInstruction(data []byte) (Instruction, error) {
	if len(data) != consts.Uint8Len {
		return 0, fmt.Errorf("%w: %d bytes of instruction data", ErrNotImplemented, len(data))
	}
	op, err := codec.Deserialize[uint8](data)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrNotImplemented, err)
	}
	ins := Instruction(*op)
	if ins != Increment {
		return 0, fmt.Errorf("%w: %s", ErrNotImplemented, ins)
	}
	return ins, nil
}
