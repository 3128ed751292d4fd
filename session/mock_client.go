// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package session

import (
	"context"

	"github.com/URvesh109/example-counter/chain"
	"github.com/URvesh109/example-counter/codec"
	"github.com/URvesh109/example-counter/crypto/ed25519"
	"github.com/URvesh109/example-counter/rpc"
)

var _ Client = (*MockClient)(nil)

// MockClient calls the On* hook of a method when set and otherwise forwards
// to Inner.
type MockClient struct {
	Inner Client

	OnGetVersion                        func(ctx context.Context) (*rpc.Version, error)
	OnGetBalance                        func(ctx context.Context, addr codec.Address) (uint64, error)
	OnRequestAirdrop                    func(ctx context.Context, addr codec.Address, lamports uint64) (ed25519.Signature, error)
	OnConfirmTransaction                func(ctx context.Context, sig ed25519.Signature) error
	OnGetAccountInfo                    func(ctx context.Context, addr codec.Address) (*chain.Account, error)
	OnGetMinimumBalanceForRentExemption func(ctx context.Context, size uint64) (uint64, error)
	OnGetLatestBlockhash                func(ctx context.Context) (codec.Hash, error)
	OnSendTransaction                   func(ctx context.Context, tx *chain.Transaction) (ed25519.Signature, error)
}

func (m *MockClient) GetVersion(ctx context.Context) (*rpc.Version, error) {
	if m.OnGetVersion != nil {
		return m.OnGetVersion(ctx)
	}
	return m.Inner.GetVersion(ctx)
}

func (m *MockClient) GetBalance(ctx context.Context, addr codec.Address) (uint64, error) {
	if m.OnGetBalance != nil {
		return m.OnGetBalance(ctx, addr)
	}
	return m.Inner.GetBalance(ctx, addr)
}

func (m *MockClient) RequestAirdrop(ctx context.Context, addr codec.Address, lamports uint64) (ed25519.Signature, error) {
	if m.OnRequestAirdrop != nil {
		return m.OnRequestAirdrop(ctx, addr, lamports)
	}
	return m.Inner.RequestAirdrop(ctx, addr, lamports)
}

func (m *MockClient) ConfirmTransaction(ctx context.Context, sig ed25519.Signature) error {
	if m.OnConfirmTransaction != nil {
		return m.OnConfirmTransaction(ctx, sig)
	}
	return m.Inner.ConfirmTransaction(ctx, sig)
}

func (m *MockClient) GetAccountInfo(ctx context.Context, addr codec.Address) (*chain.Account, error) {
	if m.OnGetAccountInfo != nil {
		return m.OnGetAccountInfo(ctx, addr)
	}
	return m.Inner.GetAccountInfo(ctx, addr)
}

func (m *MockClient) GetMinimumBalanceForRentExemption(ctx context.Context, size uint64) (uint64, error) {
	if m.OnGetMinimumBalanceForRentExemption != nil {
		return m.OnGetMinimumBalanceForRentExemption(ctx, size)
	}
	return m.Inner.GetMinimumBalanceForRentExemption(ctx, size)
}

func (m *MockClient) GetLatestBlockhash(ctx context.Context) (codec.Hash, error) {
	if m.OnGetLatestBlockhash != nil {
		return m.OnGetLatestBlockhash(ctx)
	}
	return m.Inner.GetLatestBlockhash(ctx)
}

func (m *MockClient) SendTransaction(ctx context.Context, tx *chain.Transaction) (ed25519.Signature, error) {
	if m.OnSendTransaction != nil {
		return m.OnSendTransaction(ctx, tx)
	}
	return m.Inner.SendTransaction(ctx, tx)
}
