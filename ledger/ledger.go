// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/danielhkuo/tokenpoll/events"
	"github.com/danielhkuo/tokenpoll/identity"
)

// CredentialCost is the spendable-unit price of one vote: one unit is minted
// on claim and burned on cast.
const CredentialCost uint64 = 1

// BalanceStore is the capability the ledger holds over the spendable-unit
// store, already bound to the ledger's own spender identity. token.Binding
// is the production implementation; tests substitute mocks.
type BalanceStore interface {
	Mint(to identity.Address, amount uint64)
	BalanceOf(holder identity.Address) uint64
	BurnFrom(holder identity.Address, amount uint64) error
	Allowance(holder identity.Address) uint64
}

// Ledger composes the poll registry, credential book and vote tally behind
// a single mutex. Every mutating operation runs start-to-finish under the
// lock, which gives the total order the invariants depend on: preconditions
// are evaluated against committed state, a failure aborts with zero side
// effects, and two callers racing on the same (poll, address) key resolve
// to one winner with the loser observing the winner's post-state.
type Ledger struct {
	mu  sync.Mutex
	now func() time.Time

	authority identity.Address
	balances  BalanceStore
	sink      events.Sink

	registry *registry
	creds    *credentialBook
	votes    *voteBook
}

// Option configures a Ledger at construction.
type Option func(*Ledger)

// WithClock overrides the ambient clock. Tests freeze it to probe the
// deadline boundary.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) {
		l.now = now
	}
}

// New creates an empty ledger. The sink may be nil, in which case no
// notifications are emitted.
func New(balances BalanceStore, sink events.Sink, opts ...Option) *Ledger {
	l := &Ledger{
		now:      time.Now,
		balances: balances,
		sink:     sink,
		registry: &registry{},
		creds:    newCredentialBook(),
		votes:    newVoteBook(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Bootstrap sets the poll-creation authority. It succeeds exactly once;
// every later call fails ErrAuthoritySet regardless of caller.
func (l *Ledger) Bootstrap(authority identity.Address) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.authority.IsZero() {
		return fmt.Errorf("%w: %s", ErrAuthoritySet, l.authority)
	}
	l.authority = authority
	return nil
}

// Authority returns the bootstrapped authority, or the zero address if the
// ledger has not been bootstrapped yet.
func (l *Ledger) Authority() identity.Address {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.authority
}

// CreatePoll appends a new poll with deadline now+duration and returns its
// id. Only the authority may create polls; the option list must be
// non-empty.
func (l *Ledger) CreatePoll(caller identity.Address, title string, options []string, duration time.Duration) (uint64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.authority.IsZero() || caller != l.authority {
		return 0, fmt.Errorf("%w: %s", ErrUnauthorized, caller)
	}

	now := l.now()
	p, err := l.registry.create(title, options, now.Add(duration))
	if err != nil {
		return 0, err
	}

	l.emit(events.PollCreated(p.ID, p.Title, p.Deadline, now))
	return p.ID, nil
}

// Claim issues the (poll, claimant) credential and mints one spendable
// unit. Fails NotFound on a bad id, Closed past the deadline, and
// AlreadyClaimed on repeat - loudly, never as a silent no-op.
func (l *Ledger) Claim(pollID uint64, claimant identity.Address) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.claim(pollID, claimant)
}

func (l *Ledger) claim(pollID uint64, claimant identity.Address) error {
	p, err := l.registry.get(pollID)
	if err != nil {
		return err
	}
	now := l.now()
	if !p.Open(now) {
		return fmt.Errorf("%w: poll %d deadline was %s", ErrClosed, pollID, p.Deadline.Format(time.RFC3339))
	}
	if err := l.creds.issue(pollID, claimant); err != nil {
		return err
	}

	l.balances.Mint(claimant, CredentialCost)
	l.emit(events.CredentialIssued(pollID, claimant, CredentialCost, now))
	return nil
}

// CastVote records the voter's choice and burns the credential unit.
// Preconditions are checked in a fixed order so the reported error is
// deterministic: poll exists, poll open, not already voted, unit held,
// option index in bounds. The burn runs last; if the voter has not approved
// it, the vote flag and tally increment are rolled back and the operation
// fails ErrNotAuthorized with nothing changed.
func (l *Ledger) CastVote(pollID uint64, option int, voter identity.Address) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.castVote(pollID, option, voter)
}

func (l *Ledger) castVote(pollID uint64, option int, voter identity.Address) error {
	p, err := l.registry.get(pollID)
	if err != nil {
		return err
	}
	now := l.now()
	if !p.Open(now) {
		return fmt.Errorf("%w: poll %d deadline was %s", ErrClosed, pollID, p.Deadline.Format(time.RFC3339))
	}
	if l.votes.hasVoted(pollID, voter) {
		return fmt.Errorf("%w: poll %d, address %s", ErrAlreadyVoted, pollID, voter)
	}
	if l.balances.BalanceOf(voter) < CredentialCost {
		return fmt.Errorf("%w: poll %d, address %s", ErrNoCredential, pollID, voter)
	}
	if option < 0 || option >= len(p.Options) {
		return fmt.Errorf("%w: index %d, poll %d has %d options", ErrInvalidOption, option, pollID, len(p.Options))
	}

	if err := l.votes.record(pollID, voter, option, len(p.Options)); err != nil {
		return err
	}
	if err := l.balances.BurnFrom(voter, CredentialCost); err != nil {
		l.votes.rollback(pollID, voter, option)
		return fmt.Errorf("%w: poll %d, address %s: %v", ErrNotAuthorized, pollID, voter, err)
	}

	l.emit(events.VoteCast(pollID, voter, p.Options[option], now))
	return nil
}

// MintAndVote claims first if the caller holds no issuance flag for the
// poll, then casts the vote. The two halves are deliberately not one unit:
// when the claim succeeds and the vote fails, the credential stays claimed
// and unspent so a later retry degenerates to a plain CastVote.
func (l *Ledger) MintAndVote(pollID uint64, option int, caller identity.Address) (claimed bool, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.creds.hasIssued(pollID, caller) {
		if err := l.claim(pollID, caller); err != nil {
			return false, err
		}
		claimed = true
	}
	return claimed, l.castVote(pollID, option, caller)
}

// Exists reports whether the poll id has been created.
func (l *Ledger) Exists(pollID uint64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	_, err := l.registry.get(pollID)
	return err == nil
}

// IsOpen reports whether the poll is still accepting claims and votes.
func (l *Ledger) IsOpen(pollID uint64) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	p, err := l.registry.get(pollID)
	if err != nil {
		return false, err
	}
	return p.Open(l.now()), nil
}

// Details returns a copy of the poll's immutable attributes.
func (l *Ledger) Details(pollID uint64) (Poll, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	p, err := l.registry.get(pollID)
	if err != nil {
		return Poll{}, err
	}

	out := *p
	out.Options = append([]string(nil), p.Options...)
	return out, nil
}

// Results returns the per-option counts, index-aligned to the poll's
// options.
func (l *Ledger) Results(pollID uint64) ([]uint64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	p, err := l.registry.get(pollID)
	if err != nil {
		return nil, err
	}
	return l.votes.tallies(pollID, len(p.Options)), nil
}

// Winner returns the label of the first option holding the maximum count.
func (l *Ledger) Winner(pollID uint64) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	p, err := l.registry.get(pollID)
	if err != nil {
		return "", err
	}
	return winner(p, l.votes.tallies(pollID, len(p.Options)))
}

// HasClaimed reports the issuance flag for (poll, address).
func (l *Ledger) HasClaimed(pollID uint64, addr identity.Address) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, err := l.registry.get(pollID); err != nil {
		return false, err
	}
	return l.creds.hasIssued(pollID, addr), nil
}

// HasVoted reports the vote flag for (poll, address).
func (l *Ledger) HasVoted(pollID uint64, addr identity.Address) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, err := l.registry.get(pollID); err != nil {
		return false, err
	}
	return l.votes.hasVoted(pollID, addr), nil
}

// CanBurn reports whether the address has pre-authorized the ledger for at
// least the one-unit vote cost.
func (l *Ledger) CanBurn(addr identity.Address) bool {
	return l.balances.Allowance(addr) >= CredentialCost
}

// Allowance returns how much the address has authorized the ledger to burn.
func (l *Ledger) Allowance(addr identity.Address) uint64 {
	return l.balances.Allowance(addr)
}

// PollCount returns how many polls have been created.
func (l *Ledger) PollCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.registry.count()
}

// emit hands the event to the sink. The ledger maps are the source of
// truth; a sink failure is logged and the operation still succeeds.
func (l *Ledger) emit(e events.Event) {
	if l.sink == nil {
		return
	}
	if err := l.sink.Append(e); err != nil {
		slog.Warn("event append failed", "kind", e.Kind, "poll_id", e.PollID, "error", err)
	}
}
