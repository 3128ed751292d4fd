// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

const (
	// AccountStorageOverhead is charged on top of an account's data length.
	AccountStorageOverhead = 128
	LamportsPerByteYear    = 3480
	ExemptionThreshold     = 2
)

// MinimumBalanceForRentExemption returns the balance an account holding
// [dataLen] bytes needs for the ledger to never reclaim it.
func MinimumBalanceForRentExemption(dataLen uint64) uint64 {
	return (AccountStorageOverhead + dataLen) * LamportsPerByteYear * ExemptionThreshold
}
