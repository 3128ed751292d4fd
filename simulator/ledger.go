// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package simulator is an in-memory ledger that speaks the same client
// contract as a cluster node. It executes system and deployed programs
// against accounts held in a memdb.
package simulator

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ava-labs/avalanchego/utils/logging"
	"go.uber.org/zap"

	"github.com/URvesh109/example-counter/chain"
	"github.com/URvesh109/example-counter/codec"
	"github.com/URvesh109/example-counter/crypto/ed25519"
	"github.com/URvesh109/example-counter/rpc"
	"github.com/URvesh109/example-counter/utils"
)

// Program is the executable behind a deployed program id.
type Program interface {
	Process(programID codec.Address, accounts []*chain.KeyedAccount, input []byte) error
}

// LoaderID owns every deployed program account.
var LoaderID = mustAddress("BPFLoaderUpgradeab1e11111111111111111111111")

func mustAddress(s string) codec.Address {
	addr, err := codec.StringToAddress(s)
	if err != nil {
		panic(err)
	}
	return addr
}

type Ledger struct {
	log    logging.Logger
	config *Config

	lock     sync.Mutex
	db       database.Database
	programs map[codec.Address]Program
	slot     uint64

	blockhashes utils.BoundedBuffer[codec.Hash]
	statuses    map[ed25519.Signature]*rpc.SignatureStatus
}

func New(log logging.Logger, config *Config) (*Ledger, error) {
	blockhashes, err := utils.NewBoundedBuffer[codec.Hash](maxRecentBlockhashes, nil)
	if err != nil {
		return nil, err
	}
	l := &Ledger{
		log:         log,
		config:      config,
		db:          memdb.New(),
		programs:    map[codec.Address]Program{},
		blockhashes: blockhashes,
		statuses:    map[ed25519.Signature]*rpc.SignatureStatus{},
	}
	l.advance(codec.EmptyHash[:])
	return l, nil
}

func (l *Ledger) Close() error {
	return l.db.Close()
}

// advance moves to the next slot with a blockhash derived from [seed].
func (l *Ledger) advance(seed []byte) {
	l.slot++
	prev, _ := l.blockhashes.Last()
	h := sha256.New()
	h.Write(prev[:])
	h.Write(binary.LittleEndian.AppendUint64(nil, l.slot))
	h.Write(seed)
	l.blockhashes.Insert(codec.Hash(h.Sum(nil)))
}

func (l *Ledger) latestBlockhash() codec.Hash {
	h, _ := l.blockhashes.Last()
	return h
}

func (l *Ledger) record(sig ed25519.Signature) {
	l.statuses[sig] = &rpc.SignatureStatus{
		Slot:               l.slot,
		ConfirmationStatus: rpc.CommitmentFinalized,
	}
}

// DeployProgram marks [programID] as an executable account backed by [p].
func (l *Ledger) DeployProgram(programID codec.Address, p Program) error {
	l.lock.Lock()
	defer l.lock.Unlock()

	acct, err := getAccount(l.db, programID)
	if err != nil {
		return err
	}
	if acct != nil && acct.Executable {
		return fmt.Errorf("%w: %s", ErrProgramAlreadyDeployed, programID)
	}
	acct = &chain.Account{
		Lamports:   chain.MinimumBalanceForRentExemption(codec.AddressLen),
		Owner:      LoaderID,
		Executable: true,
		Data:       make([]byte, codec.AddressLen),
	}
	if err := putAccount(l.db, programID, acct); err != nil {
		return err
	}
	l.programs[programID] = p
	l.log.Info("deployed program", zap.Stringer("programID", programID))
	return nil
}

// SetAccount overwrites the account at [addr].
func (l *Ledger) SetAccount(addr codec.Address, acct *chain.Account) error {
	l.lock.Lock()
	defer l.lock.Unlock()

	return putAccount(l.db, addr, acct.Clone())
}

func (l *Ledger) Slot() uint64 {
	l.lock.Lock()
	defer l.lock.Unlock()

	return l.slot
}

func (l *Ledger) GetVersion(ctx context.Context) (*rpc.Version, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &rpc.Version{SolanaCore: l.config.Version}, nil
}

func (l *Ledger) GetBalance(ctx context.Context, addr codec.Address) (uint64, error) {
	acct, err := l.GetAccountInfo(ctx, addr)
	if err != nil || acct == nil {
		return 0, err
	}
	return acct.Lamports, nil
}

func (l *Ledger) GetAccountInfo(ctx context.Context, addr codec.Address) (*chain.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	l.lock.Lock()
	defer l.lock.Unlock()

	return getAccount(l.db, addr)
}

func (*Ledger) GetMinimumBalanceForRentExemption(ctx context.Context, size uint64) (uint64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return chain.MinimumBalanceForRentExemption(size), nil
}

func (l *Ledger) GetLatestBlockhash(ctx context.Context) (codec.Hash, error) {
	if err := ctx.Err(); err != nil {
		return codec.EmptyHash, err
	}
	l.lock.Lock()
	defer l.lock.Unlock()

	return l.latestBlockhash(), nil
}

// RequestAirdrop credits [lamports] to [addr] immediately. The returned
// signature is already finalized.
func (l *Ledger) RequestAirdrop(ctx context.Context, addr codec.Address, lamports uint64) (ed25519.Signature, error) {
	if err := ctx.Err(); err != nil {
		return ed25519.EmptySignature, err
	}
	if lamports > l.config.MaxAirdrop {
		return ed25519.EmptySignature, fmt.Errorf("%w: %d > %d", ErrAirdropLimit, lamports, l.config.MaxAirdrop)
	}
	l.lock.Lock()
	defer l.lock.Unlock()

	acct, err := getAccount(l.db, addr)
	if err != nil {
		return ed25519.EmptySignature, err
	}
	if acct == nil {
		acct = &chain.Account{Owner: chain.SystemProgramID}
	}
	acct.Lamports += lamports
	if err := putAccount(l.db, addr, acct); err != nil {
		return ed25519.EmptySignature, err
	}

	var sig ed25519.Signature
	digest := sha256.Sum256(binary.LittleEndian.AppendUint64(addr[:], l.slot))
	copy(sig[:], digest[:])
	latest := l.latestBlockhash()
	copy(sig[sha256.Size:], latest[:])
	l.record(sig)
	l.advance(sig[:])
	l.log.Debug("airdrop",
		zap.Stringer("to", addr),
		zap.Uint64("lamports", lamports),
	)
	return sig, nil
}

// SendTransaction executes [tx] against the ledger. Like preflight on a
// node, a transaction that fails returns an error and leaves no trace.
func (l *Ledger) SendTransaction(ctx context.Context, tx *chain.Transaction) (ed25519.Signature, error) {
	if err := ctx.Err(); err != nil {
		return ed25519.EmptySignature, err
	}
	// Execute what would go over the wire
	parsed, err := chain.UnmarshalTransaction(tx.Bytes())
	if err != nil {
		return ed25519.EmptySignature, err
	}
	if err := parsed.Verify(); err != nil {
		return ed25519.EmptySignature, err
	}

	l.lock.Lock()
	defer l.lock.Unlock()

	sig := parsed.ID()
	if _, ok := l.statuses[sig]; ok {
		return ed25519.EmptySignature, fmt.Errorf("%w: %s", ErrAlreadyProcessed, sig)
	}
	if !l.blockhashes.Contains(parsed.Message.RecentBlockhash) {
		return ed25519.EmptySignature, fmt.Errorf("%w: %s", ErrBlockhashNotFound, parsed.Message.RecentBlockhash)
	}
	if err := l.execute(parsed); err != nil {
		l.log.Debug("transaction failed",
			zap.Stringer("signature", sig),
			zap.Error(err),
		)
		return ed25519.EmptySignature, err
	}
	l.record(sig)
	l.advance(sig[:])
	l.log.Debug("transaction processed",
		zap.Stringer("signature", sig),
		zap.Uint64("slot", l.slot),
	)
	return sig, nil
}

// ConfirmTransaction succeeds for any signature the ledger has processed.
func (l *Ledger) ConfirmTransaction(ctx context.Context, sig ed25519.Signature) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	l.lock.Lock()
	defer l.lock.Unlock()

	if _, ok := l.statuses[sig]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSignature, sig)
	}
	return nil
}

// GetSignatureStatuses mirrors the node method of the same name.
func (l *Ledger) GetSignatureStatuses(ctx context.Context, sigs ...ed25519.Signature) ([]*rpc.SignatureStatus, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	l.lock.Lock()
	defer l.lock.Unlock()

	statuses := make([]*rpc.SignatureStatus, len(sigs))
	for i, sig := range sigs {
		if status, ok := l.statuses[sig]; ok {
			s := *status
			statuses[i] = &s
		}
	}
	return statuses, nil
}
