// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package session drives the counter program from a client: it connects to
// a cluster, funds a payer, checks the program, creates the counter account
// on first use, increments it and reads the count back.
package session

import (
	"context"
	"fmt"

	"github.com/ava-labs/avalanchego/utils/logging"
	"go.uber.org/zap"

	"github.com/URvesh109/example-counter/chain"
	"github.com/URvesh109/example-counter/codec"
	"github.com/URvesh109/example-counter/config"
	"github.com/URvesh109/example-counter/counter"
	"github.com/URvesh109/example-counter/crypto/ed25519"
	"github.com/URvesh109/example-counter/rpc"
	"github.com/URvesh109/example-counter/utils"
)

// Client is the subset of the cluster API a session needs.
type Client interface {
	GetVersion(ctx context.Context) (*rpc.Version, error)
	GetBalance(ctx context.Context, addr codec.Address) (uint64, error)
	RequestAirdrop(ctx context.Context, addr codec.Address, lamports uint64) (ed25519.Signature, error)
	ConfirmTransaction(ctx context.Context, sig ed25519.Signature) error
	// GetAccountInfo returns nil, nil when [addr] has no account.
	GetAccountInfo(ctx context.Context, addr codec.Address) (*chain.Account, error)
	GetMinimumBalanceForRentExemption(ctx context.Context, size uint64) (uint64, error)
	GetLatestBlockhash(ctx context.Context) (codec.Hash, error)
	SendTransaction(ctx context.Context, tx *chain.Transaction) (ed25519.Signature, error)
}

var _ Client = (*rpc.JSONRPCClient)(nil)

// Session carries the state shared by the steps of a run. Steps must be
// called in order: EstablishConnection, EstablishPayer, CheckProgram,
// EnsureCounterAccount, Increment, ReportCount.
type Session struct {
	log    logging.Logger
	config *config.Config
	cli    Client
	payer  ed25519.PrivateKey

	version        *rpc.Version
	payerReady     bool
	programChecked bool
	programID      codec.Address
	counter        codec.Address
}

func New(log logging.Logger, cfg *config.Config, cli Client, payer ed25519.PrivateKey) *Session {
	return &Session{
		log:    log,
		config: cfg,
		cli:    cli,
		payer:  payer,
	}
}

func (s *Session) Payer() codec.Address { return s.payer.Address() }

// ProgramID is set once CheckProgram succeeds.
func (s *Session) ProgramID() codec.Address { return s.programID }

// CounterAddress is set once CheckProgram succeeds.
func (s *Session) CounterAddress() codec.Address { return s.counter }

// Version is set once EstablishConnection succeeds.
func (s *Session) Version() *rpc.Version { return s.version }

// EstablishConnection checks that the cluster answers requests.
func (s *Session) EstablishConnection(ctx context.Context) (*rpc.Version, error) {
	version, err := s.cli.GetVersion(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnection, err)
	}
	s.version = version
	s.log.Info("connection to cluster established",
		zap.String("version", version.SolanaCore),
	)
	return version, nil
}

// EstablishPayer makes sure the payer can fund the counter account and the
// transactions of a run, airdropping the shortfall if needed.
func (s *Session) EstablishPayer(ctx context.Context) error {
	if s.version == nil {
		return ErrNotConnected
	}
	rent, err := s.cli.GetMinimumBalanceForRentExemption(ctx, counter.EncodedSize)
	if err != nil {
		return fmt.Errorf("failed to fetch rent exemption: %w", err)
	}
	target := s.config.FundingTarget(rent)

	payer := s.payer.Address()
	balance, err := s.cli.GetBalance(ctx, payer)
	if err != nil {
		return fmt.Errorf("failed to fetch payer balance: %w", err)
	}
	if balance < target {
		shortfall := target - balance
		s.log.Info("requesting airdrop",
			zap.Stringer("payer", payer),
			zap.Uint64("lamports", shortfall),
		)
		sig, err := s.cli.RequestAirdrop(ctx, payer, shortfall)
		if err != nil {
			return fmt.Errorf("%w: airdrop of %d lamports failed: %w", ErrInsufficientFunds, shortfall, err)
		}
		if err := s.cli.ConfirmTransaction(ctx, sig); err != nil {
			return fmt.Errorf("%w: airdrop %s not confirmed: %w", ErrInsufficientFunds, sig, err)
		}
		balance, err = s.cli.GetBalance(ctx, payer)
		if err != nil {
			return fmt.Errorf("failed to fetch payer balance: %w", err)
		}
	}
	if balance < target {
		return fmt.Errorf("%w: have %d, need %d lamports", ErrInsufficientFunds, balance, target)
	}
	s.payerReady = true
	s.log.Info("using payer",
		zap.Stringer("payer", payer),
		zap.String("balance", utils.FormatBalance(balance)),
	)
	return nil
}

// CheckProgram resolves the program id and checks that it is deployed. It
// also derives the counter address. It only needs a connection, so a
// read-only caller may skip EstablishPayer.
func (s *Session) CheckProgram(ctx context.Context) error {
	if s.version == nil {
		return ErrNotConnected
	}
	programID, err := s.config.LoadProgramID()
	if err != nil {
		return fmt.Errorf("%w: failed to read program keypair %q: %w. %s",
			ErrProgramNotDeployed, s.config.ProgramKeypairPath, err, s.deployHint())
	}
	info, err := s.cli.GetAccountInfo(ctx, programID)
	if err != nil {
		return fmt.Errorf("failed to fetch program account: %w", err)
	}
	if info == nil {
		return fmt.Errorf("%w: %s. %s", ErrProgramNotDeployed, programID, s.deployHint())
	}
	if !info.Executable {
		return fmt.Errorf("%w: %s", ErrProgramNotExecutable, programID)
	}
	counterAddr, err := counter.Address(s.payer.Address(), programID)
	if err != nil {
		return err
	}
	s.programID = programID
	s.counter = counterAddr
	s.programChecked = true
	s.log.Info("using program", zap.Stringer("programID", programID))
	return nil
}

func (s *Session) deployHint() string {
	if s.config.ProgramBuilt() {
		return fmt.Sprintf("Program needs to be deployed with `solana program deploy %s`", s.config.ProgramSoPath)
	}
	return "Program needs to be built and deployed"
}

// EnsureCounterAccount creates the counter account, rent exempt and owned by
// the program, if it does not exist yet.
func (s *Session) EnsureCounterAccount(ctx context.Context) error {
	if err := s.ready(); err != nil {
		return err
	}
	info, err := s.cli.GetAccountInfo(ctx, s.counter)
	if err != nil {
		return fmt.Errorf("failed to fetch counter account: %w", err)
	}
	if info != nil {
		if info.Owner != s.programID {
			return fmt.Errorf("%w: %s is owned by %s", ErrInvalidAccountOwner, s.counter, info.Owner)
		}
		return nil
	}

	lamports, err := s.cli.GetMinimumBalanceForRentExemption(ctx, counter.EncodedSize)
	if err != nil {
		return fmt.Errorf("failed to fetch rent exemption: %w", err)
	}
	payer := s.payer.Address()
	ix, err := chain.NewCreateAccountWithSeedInstruction(payer, s.counter, chain.CreateAccountWithSeed{
		Base:     payer,
		Seed:     counter.Seed,
		Lamports: lamports,
		Space:    counter.EncodedSize,
		Owner:    s.programID,
	})
	if err != nil {
		return err
	}
	s.log.Info("creating counter account",
		zap.Stringer("counter", s.counter),
		zap.Uint64("lamports", lamports),
	)
	if _, err := s.sendAndConfirm(ctx, ix); err != nil {
		return fmt.Errorf("failed to create counter account: %w", err)
	}
	return nil
}

// Increment sends a single increment instruction for the counter account.
func (s *Session) Increment(ctx context.Context) (ed25519.Signature, error) {
	if err := s.ready(); err != nil {
		return ed25519.EmptySignature, err
	}
	ix, err := counter.NewIncrementInstruction(s.programID, s.counter)
	if err != nil {
		return ed25519.EmptySignature, err
	}
	s.log.Info("incrementing counter", zap.Stringer("counter", s.counter))
	sig, err := s.sendAndConfirm(ctx, ix)
	if err != nil {
		return ed25519.EmptySignature, fmt.Errorf("failed to increment counter: %w", err)
	}
	return sig, nil
}

// ReportCount reads the counter account and decodes its count.
func (s *Session) ReportCount(ctx context.Context) (uint64, error) {
	if !s.programChecked {
		return 0, ErrProgramNotChecked
	}
	info, err := s.cli.GetAccountInfo(ctx, s.counter)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch counter account: %w", err)
	}
	if info == nil {
		return 0, fmt.Errorf("%w: %s", ErrAccountMissing, s.counter)
	}
	count, err := counter.Decode(info.Data)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", s.counter, err)
	}
	s.log.Info("counter has been incremented",
		zap.Stringer("counter", s.counter),
		zap.Uint64("count", count),
	)
	return count, nil
}

// Run performs every step in order and returns the resulting count.
func (s *Session) Run(ctx context.Context) (uint64, error) {
	if _, err := s.EstablishConnection(ctx); err != nil {
		return 0, err
	}
	if err := s.EstablishPayer(ctx); err != nil {
		return 0, err
	}
	if err := s.CheckProgram(ctx); err != nil {
		return 0, err
	}
	if err := s.EnsureCounterAccount(ctx); err != nil {
		return 0, err
	}
	if _, err := s.Increment(ctx); err != nil {
		return 0, err
	}
	return s.ReportCount(ctx)
}

func (s *Session) ready() error {
	if !s.payerReady {
		return ErrPayerNotEstablished
	}
	if !s.programChecked {
		return ErrProgramNotChecked
	}
	return nil
}

func (s *Session) sendAndConfirm(ctx context.Context, instructions ...chain.Instruction) (ed25519.Signature, error) {
	blockhash, err := s.cli.GetLatestBlockhash(ctx)
	if err != nil {
		return ed25519.EmptySignature, err
	}
	tx, err := chain.NewTransaction(s.payer.Address(), instructions, blockhash)
	if err != nil {
		return ed25519.EmptySignature, err
	}
	tx, err = tx.Sign(s.payer)
	if err != nil {
		return ed25519.EmptySignature, err
	}
	sig, err := s.cli.SendTransaction(ctx, tx)
	if err != nil {
		return ed25519.EmptySignature, err
	}
	if err := s.cli.ConfirmTransaction(ctx, sig); err != nil {
		return ed25519.EmptySignature, err
	}
	s.log.Debug("transaction confirmed",
		zap.Stringer("signature", sig),
		zap.Int("size", tx.Size()),
	)
	return sig, nil
}
