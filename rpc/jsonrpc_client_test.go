// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/URvesh109/example-counter/chain"
	"github.com/URvesh109/example-counter/codec"
	"github.com/URvesh109/example-counter/crypto/ed25519"
)

type rpcRequest struct {
	Method string            `json:"method"`
	Params []json.RawMessage `json:"params"`
}

// newServer answers each method with the JSON in [results]. A value that
// is a func is called with the request params.
func newServer(t *testing.T, results map[string]interface{}) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req rpcRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		result, ok := results[req.Method]
		if !ok {
			fmt.Fprintf(w, `{"jsonrpc":"2.0","id":1,"error":{"code":-32601,"message":"Method not found"}}`)
			return
		}
		if f, ok := result.(func([]json.RawMessage) string); ok {
			result = f(req.Params)
		}
		fmt.Fprintf(w, `{"jsonrpc":"2.0","id":1,"result":%s}`, result)
	}))
}

func TestGetVersion(t *testing.T) {
	require := require.New(t)
	server := newServer(t, map[string]interface{}{
		"getVersion": `{"solana-core":"1.18.4","feature-set":3352961542}`,
	})
	defer server.Close()

	cli := NewJSONRPCClient(server.URL + "/")
	require.Equal(server.URL, cli.URI())
	v, err := cli.GetVersion(context.Background())
	require.NoError(err)
	require.Equal("1.18.4", v.SolanaCore)
	require.Equal(uint32(3352961542), v.FeatureSet)
}

func TestGetBalance(t *testing.T) {
	require := require.New(t)
	addr := codec.Address{1, 2, 3}
	server := newServer(t, map[string]interface{}{
		"getBalance": func(params []json.RawMessage) string {
			require.Len(params, 2)
			require.Equal(`"`+addr.String()+`"`, string(params[0]))
			require.JSONEq(`{"commitment":"finalized"}`, string(params[1]))
			return `{"context":{"slot":10},"value":2039280}`
		},
	})
	defer server.Close()

	cli := NewJSONRPCClient(server.URL, WithCommitment(CommitmentFinalized))
	balance, err := cli.GetBalance(context.Background(), addr)
	require.NoError(err)
	require.Equal(uint64(2039280), balance)
}

func TestGetAccountInfo(t *testing.T) {
	require := require.New(t)
	owner := codec.Address{9}
	data := []byte{1, 0, 0, 0, 0, 0, 0, 0}
	present := codec.Address{1}
	server := newServer(t, map[string]interface{}{
		"getAccountInfo": func(params []json.RawMessage) string {
			require.JSONEq(`{"commitment":"confirmed","encoding":"base64"}`, string(params[1]))
			if string(params[0]) != `"`+present.String()+`"` {
				return `{"context":{"slot":1},"value":null}`
			}
			return fmt.Sprintf(
				`{"context":{"slot":1},"value":{"lamports":946560,"owner":%q,"executable":false,"rentEpoch":0,"data":[%q,"base64"]}}`,
				owner.String(),
				base64.StdEncoding.EncodeToString(data),
			)
		},
	})
	defer server.Close()

	cli := NewJSONRPCClient(server.URL)
	acct, err := cli.GetAccountInfo(context.Background(), present)
	require.NoError(err)
	require.Equal(&chain.Account{Lamports: 946560, Owner: owner, Data: data}, acct)

	acct, err = cli.GetAccountInfo(context.Background(), codec.Address{2})
	require.NoError(err)
	require.Nil(acct)
}

func TestAccountInfoInvalidEncoding(t *testing.T) {
	for _, data := range [][]string{nil, {"AQ=="}, {"AQ==", "base58"}, {"!!", "base64"}} {
		info := &AccountInfo{Data: data}
		_, err := info.Account()
		require.ErrorIs(t, err, ErrInvalidEncoding)
	}
}

func TestSendTransaction(t *testing.T) {
	require := require.New(t)
	payer, err := ed25519.GeneratePrivateKey()
	require.NoError(err)
	ix := chain.NewInstruction(codec.Address{7}, []chain.AccountMeta{{Address: codec.Address{8}, IsWritable: true}}, []byte{0})
	tx, err := chain.NewTransaction(payer.Address(), []chain.Instruction{ix}, codec.Hash{1})
	require.NoError(err)
	tx, err = tx.Sign(payer)
	require.NoError(err)

	server := newServer(t, map[string]interface{}{
		"getLatestBlockhash": `{"context":{"slot":1},"value":{"blockhash":"` + codec.Hash{1}.String() + `","lastValidBlockHeight":300}}`,
		"sendTransaction": func(params []json.RawMessage) string {
			var encoded string
			require.NoError(json.Unmarshal(params[0], &encoded))
			b, err := base64.StdEncoding.DecodeString(encoded)
			require.NoError(err)
			require.Equal(tx.Bytes(), b)
			require.JSONEq(`{"encoding":"base64","preflightCommitment":"confirmed"}`, string(params[1]))
			return `"` + tx.ID().String() + `"`
		},
	})
	defer server.Close()

	cli := NewJSONRPCClient(server.URL)
	blockhash, err := cli.GetLatestBlockhash(context.Background())
	require.NoError(err)
	require.Equal(codec.Hash{1}, blockhash)

	sig, err := cli.SendTransaction(context.Background(), tx)
	require.NoError(err)
	require.Equal(tx.ID(), sig)
}

func TestRequestAirdropAndRent(t *testing.T) {
	require := require.New(t)
	sig := ed25519.Signature{4, 5, 6}
	server := newServer(t, map[string]interface{}{
		"requestAirdrop": func(params []json.RawMessage) string {
			require.Equal("1000000000", string(params[1]))
			return `"` + sig.String() + `"`
		},
		"getMinimumBalanceForRentExemption": func(params []json.RawMessage) string {
			require.Equal("8", string(params[0]))
			return "946560"
		},
	})
	defer server.Close()

	cli := NewJSONRPCClient(server.URL)
	got, err := cli.RequestAirdrop(context.Background(), codec.Address{1}, 1_000_000_000)
	require.NoError(err)
	require.Equal(sig, got)

	rent, err := cli.GetMinimumBalanceForRentExemption(context.Background(), 8)
	require.NoError(err)
	require.Equal(uint64(946560), rent)
}

func TestConfirmTransaction(t *testing.T) {
	require := require.New(t)
	var calls atomic.Int32
	server := newServer(t, map[string]interface{}{
		"getSignatureStatuses": func([]json.RawMessage) string {
			switch calls.Add(1) {
			case 1:
				return `{"context":{"slot":1},"value":[null]}`
			case 2:
				return `{"context":{"slot":2},"value":[{"slot":2,"confirmations":0,"err":null,"confirmationStatus":"processed"}]}`
			default:
				return `{"context":{"slot":3},"value":[{"slot":2,"confirmations":null,"err":null,"confirmationStatus":"finalized"}]}`
			}
		},
	})
	defer server.Close()

	cli := NewJSONRPCClient(server.URL)
	require.NoError(cli.ConfirmTransaction(context.Background(), ed25519.Signature{1}))
	require.Equal(int32(3), calls.Load())
}

func TestConfirmTransactionFailed(t *testing.T) {
	require := require.New(t)
	server := newServer(t, map[string]interface{}{
		"getSignatureStatuses": `{"context":{"slot":1},"value":[{"slot":1,"confirmations":1,"err":{"InstructionError":[0,"InvalidAccountData"]},"confirmationStatus":"confirmed"}]}`,
	})
	defer server.Close()

	cli := NewJSONRPCClient(server.URL)
	err := cli.ConfirmTransaction(context.Background(), ed25519.Signature{1})
	require.ErrorIs(err, ErrTransactionFailed)
	require.ErrorContains(err, "InvalidAccountData")
}

func TestConfirmTransactionTimeout(t *testing.T) {
	require := require.New(t)
	server := newServer(t, map[string]interface{}{
		"getSignatureStatuses": `{"context":{"slot":1},"value":[null]}`,
	})
	defer server.Close()

	cli := NewJSONRPCClient(server.URL, WithConfirmTimeout(50*time.Millisecond))
	err := cli.ConfirmTransaction(context.Background(), ed25519.Signature{1})
	require.ErrorIs(err, ErrConfirmTimeout)

	// A caller cancellation is reported as such.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = cli.ConfirmTransaction(ctx, ed25519.Signature{1})
	require.ErrorIs(err, context.Canceled)
}

func TestCommitment(t *testing.T) {
	require := require.New(t)
	require.True(CommitmentFinalized.Reaches(CommitmentConfirmed))
	require.True(CommitmentConfirmed.Reaches(CommitmentConfirmed))
	require.False(CommitmentProcessed.Reaches(CommitmentConfirmed))
	require.False(Commitment("").Reaches(CommitmentProcessed))

	c, err := ParseCommitment("finalized")
	require.NoError(err)
	require.Equal(CommitmentFinalized, c)
	_, err = ParseCommitment("max")
	require.ErrorIs(err, ErrInvalidCommitment)
}
