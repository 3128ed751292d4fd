// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"encoding/json"

	"github.com/URvesh109/example-counter/codec"
)

const encodingBase64 = "base64"

type Version struct {
	SolanaCore string `json:"solana-core"`
	FeatureSet uint32 `json:"feature-set"`
}

type Context struct {
	Slot uint64 `json:"slot"`
}

type contextReply[T any] struct {
	Context Context `json:"context"`
	Value   T       `json:"value"`
}

type commitmentArgs struct {
	Commitment Commitment `json:"commitment,omitempty"`
}

type encodingArgs struct {
	Commitment Commitment `json:"commitment,omitempty"`
	Encoding   string     `json:"encoding"`
}

type sendTransactionArgs struct {
	Encoding            string     `json:"encoding"`
	PreflightCommitment Commitment `json:"preflightCommitment,omitempty"`
}

type signatureStatusArgs struct {
	SearchTransactionHistory bool `json:"searchTransactionHistory"`
}

// AccountInfo is an account as returned by getAccountInfo. Data is a
// [payload, encoding] pair.
type AccountInfo struct {
	Lamports   uint64        `json:"lamports"`
	Owner      codec.Address `json:"owner"`
	Executable bool          `json:"executable"`
	RentEpoch  uint64        `json:"rentEpoch"`
	Data       []string      `json:"data"`
}

type LatestBlockhash struct {
	Blockhash            codec.Hash `json:"blockhash"`
	LastValidBlockHeight uint64     `json:"lastValidBlockHeight"`
}

type SignatureStatus struct {
	Slot               uint64          `json:"slot"`
	Confirmations      *uint64         `json:"confirmations"`
	Err                json.RawMessage `json:"err"`
	ConfirmationStatus Commitment      `json:"confirmationStatus"`
}

// Failed reports whether the transaction was processed with an error.
func (s *SignatureStatus) Failed() bool {
	return len(s.Err) > 0 && string(s.Err) != "null"
}

