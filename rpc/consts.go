// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import "time"

const (
	Name = "counter"

	// DefaultEndpoint is the JSON-RPC address of a local test validator.
	DefaultEndpoint = "http://127.0.0.1:8899"

	DefaultConfirmTimeout = 60 * time.Second

	waitSleep = 500 * time.Millisecond
)

// Commitment is how settled a piece of ledger state must be before it is
// reported.
type Commitment string

const (
	CommitmentProcessed Commitment = "processed"
	CommitmentConfirmed Commitment = "confirmed"
	CommitmentFinalized Commitment = "finalized"
)

func (c Commitment) rank() int {
	switch c {
	case CommitmentProcessed:
		return 1
	case CommitmentConfirmed:
		return 2
	case CommitmentFinalized:
		return 3
	default:
		return 0
	}
}

// Reaches reports whether state at commitment c satisfies [target].
func (c Commitment) Reaches(target Commitment) bool {
	return c.rank() > 0 && c.rank() >= target.rank()
}

// ParseCommitment validates a user supplied commitment level.
func ParseCommitment(s string) (Commitment, error) {
	c := Commitment(s)
	if c.rank() == 0 {
		return "", ErrInvalidCommitment
	}
	return c, nil
}
