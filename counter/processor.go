// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package counter

import (
	"fmt"

	"github.com/ava-labs/avalanchego/utils/logging"
	"go.uber.org/zap"

	"github.com/URvesh109/example-counter/chain"
	"github.com/URvesh109/example-counter/codec"
	"github.com/URvesh109/example-counter/consts"
)

// Processor executes counter instructions the way the deployed program
// does. It lets a simulated ledger host the program.
type Processor struct {
	log logging.Logger
}

func NewProcessor(log logging.Logger) *Processor {
	return &Processor{log: log}
}

// Process executes [input] against [accounts]. The counter account must be
// the first account.
func (p *Processor) Process(programID codec.Address, accounts []*chain.KeyedAccount, input []byte) error {
	ins, err := UnmarshalInstruction(input)
	if err != nil {
		return err
	}
	p.log.Debug("processing counter instruction",
		zap.Stringer("instruction", ins),
	)
	switch ins {
	case Increment:
		return p.increment(programID, accounts)
	default:
		return ErrNotImplemented
	}
}

func (p *Processor) increment(programID codec.Address, accounts []*chain.KeyedAccount) error {
	if len(accounts) == 0 {
		return ErrMissingAccount
	}
	acct := accounts[0]
	if acct.Owner != programID {
		return ErrIncorrectProgramID
	}
	if !acct.IsWritable {
		return ErrAccountNotWritable
	}
	if len(acct.Data) != EncodedSize {
		return fmt.Errorf("%w: expected %d bytes, found %d", ErrMalformedAccountData, EncodedSize, len(acct.Data))
	}
	count, err := Decode(acct.Data)
	if err != nil {
		return err
	}
	if count == consts.MaxUint64 {
		return ErrCountOverflow
	}
	count++
	encoded := Encode(count)
	copy(acct.Data, encoded[:])
	p.log.Debug("updating count",
		zap.Stringer("account", acct.Address),
		zap.Uint64("count", count),
	)
	return nil
}
