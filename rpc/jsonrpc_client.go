// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/URvesh109/example-counter/chain"
	"github.com/URvesh109/example-counter/codec"
	"github.com/URvesh109/example-counter/crypto/ed25519"
	"github.com/URvesh109/example-counter/requester"
)

type JSONRPCClient struct {
	uri       string
	requester *requester.EndpointRequester

	commitment     Commitment
	confirmTimeout time.Duration
}

type Option func(*JSONRPCClient)

// WithCommitment sets the commitment used for reads and confirmations.
func WithCommitment(c Commitment) Option {
	return func(cli *JSONRPCClient) {
		cli.commitment = c
	}
}

// WithConfirmTimeout bounds how long ConfirmTransaction polls.
func WithConfirmTimeout(d time.Duration) Option {
	return func(cli *JSONRPCClient) {
		cli.confirmTimeout = d
	}
}

// WithRequesterOptions configures the underlying requester.
func WithRequesterOptions(opts ...requester.Option) Option {
	return func(cli *JSONRPCClient) {
		cli.requester = requester.New(cli.uri, opts...)
	}
}

func NewJSONRPCClient(uri string, opts ...Option) *JSONRPCClient {
	uri = strings.TrimSuffix(uri, "/")
	cli := &JSONRPCClient{
		uri:            uri,
		requester:      requester.New(uri),
		commitment:     CommitmentConfirmed,
		confirmTimeout: DefaultConfirmTimeout,
	}
	for _, opt := range opts {
		opt(cli)
	}
	return cli
}

func (cli *JSONRPCClient) URI() string { return cli.uri }

func (cli *JSONRPCClient) Commitment() Commitment { return cli.commitment }

func (cli *JSONRPCClient) GetVersion(ctx context.Context) (*Version, error) {
	resp := new(Version)
	err := cli.requester.SendRequest(
		ctx,
		"getVersion",
		nil,
		resp,
	)
	return resp, err
}

func (cli *JSONRPCClient) GetBalance(ctx context.Context, addr codec.Address) (uint64, error) {
	resp := new(contextReply[uint64])
	err := cli.requester.SendRequest(
		ctx,
		"getBalance",
		[]interface{}{addr, commitmentArgs{Commitment: cli.commitment}},
		resp,
	)
	return resp.Value, err
}

func (cli *JSONRPCClient) RequestAirdrop(
	ctx context.Context,
	addr codec.Address,
	lamports uint64,
) (ed25519.Signature, error) {
	var sig ed25519.Signature
	err := cli.requester.SendRequest(
		ctx,
		"requestAirdrop",
		[]interface{}{addr, lamports, commitmentArgs{Commitment: cli.commitment}},
		&sig,
	)
	return sig, err
}

// GetAccountInfo returns nil (and no error) if [addr] has no account.
func (cli *JSONRPCClient) GetAccountInfo(ctx context.Context, addr codec.Address) (*chain.Account, error) {
	resp := new(contextReply[*AccountInfo])
	if err := cli.requester.SendRequest(
		ctx,
		"getAccountInfo",
		[]interface{}{addr, encodingArgs{Commitment: cli.commitment, Encoding: encodingBase64}},
		resp,
	); err != nil {
		return nil, err
	}
	if resp.Value == nil {
		return nil, nil
	}
	return resp.Value.Account()
}

// Account decodes the base64 payload of info.
func (info *AccountInfo) Account() (*chain.Account, error) {
	if len(info.Data) != 2 || info.Data[1] != encodingBase64 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, info.Data)
	}
	data, err := base64.StdEncoding.DecodeString(info.Data[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEncoding, err)
	}
	return &chain.Account{
		Lamports:   info.Lamports,
		Owner:      info.Owner,
		Executable: info.Executable,
		Data:       data,
	}, nil
}

func (cli *JSONRPCClient) GetMinimumBalanceForRentExemption(ctx context.Context, size uint64) (uint64, error) {
	var lamports uint64
	err := cli.requester.SendRequest(
		ctx,
		"getMinimumBalanceForRentExemption",
		[]interface{}{size, commitmentArgs{Commitment: cli.commitment}},
		&lamports,
	)
	return lamports, err
}

func (cli *JSONRPCClient) GetLatestBlockhash(ctx context.Context) (codec.Hash, error) {
	resp := new(contextReply[LatestBlockhash])
	err := cli.requester.SendRequest(
		ctx,
		"getLatestBlockhash",
		[]interface{}{commitmentArgs{Commitment: cli.commitment}},
		resp,
	)
	return resp.Value.Blockhash, err
}

// SendTransaction submits a signed transaction. The returned signature
// identifies it for ConfirmTransaction.
func (cli *JSONRPCClient) SendTransaction(ctx context.Context, tx *chain.Transaction) (ed25519.Signature, error) {
	var sig ed25519.Signature
	err := cli.requester.SendRequest(
		ctx,
		"sendTransaction",
		[]interface{}{
			base64.StdEncoding.EncodeToString(tx.Bytes()),
			sendTransactionArgs{Encoding: encodingBase64, PreflightCommitment: cli.commitment},
		},
		&sig,
	)
	return sig, err
}

// GetSignatureStatuses returns one entry per signature, nil for
// signatures the node has not seen.
func (cli *JSONRPCClient) GetSignatureStatuses(
	ctx context.Context,
	sigs ...ed25519.Signature,
) ([]*SignatureStatus, error) {
	resp := new(contextReply[[]*SignatureStatus])
	err := cli.requester.SendRequest(
		ctx,
		"getSignatureStatuses",
		[]interface{}{sigs, signatureStatusArgs{SearchTransactionHistory: true}},
		resp,
	)
	return resp.Value, err
}

// ConfirmTransaction waits until [sig] reaches the client's commitment.
func (cli *JSONRPCClient) ConfirmTransaction(ctx context.Context, sig ed25519.Signature) error {
	cctx, cancel := context.WithTimeout(ctx, cli.confirmTimeout)
	defer cancel()

	err := Wait(cctx, func(ctx context.Context) (bool, error) {
		statuses, err := cli.GetSignatureStatuses(ctx, sig)
		if err != nil {
			return false, err
		}
		if len(statuses) == 0 || statuses[0] == nil {
			return false, nil
		}
		status := statuses[0]
		if status.Failed() {
			return false, fmt.Errorf("%w: %s: %s", ErrTransactionFailed, sig, status.Err)
		}
		return status.ConfirmationStatus.Reaches(cli.commitment), nil
	})
	if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
		return fmt.Errorf("%w: %s", ErrConfirmTimeout, sig)
	}
	return err
}

// Wait polls [check] until it reports done, fails, or [ctx] ends.
func Wait(ctx context.Context, check func(ctx context.Context) (bool, error)) error {
	for ctx.Err() == nil {
		exit, err := check(ctx)
		if err != nil {
			return err
		}
		if exit {
			return nil
		}
		select {
		case <-ctx.Done():
		case <-time.After(waitSleep):
		}
	}
	return ctx.Err()
}
