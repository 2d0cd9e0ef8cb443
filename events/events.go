// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package events

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/tokenpoll/identity"
)

// Kind discriminates the three notification types the ledger emits.
type Kind string

const (
	KindPollCreated      Kind = "poll_created"
	KindCredentialIssued Kind = "credential_issued"
	KindVoteCast         Kind = "vote_cast"
)

// Event is one entry in the append-only notification log. Only the fields
// relevant to the Kind are populated.
type Event struct {
	ID       uuid.UUID        `json:"id"`
	Kind     Kind             `json:"kind"`
	PollID   uint64           `json:"poll_id"`
	Title    string           `json:"title,omitempty"`   // poll_created
	Address  identity.Address `json:"address,omitempty"` // credential_issued, vote_cast
	Amount   uint64           `json:"amount,omitempty"`  // credential_issued
	Option   string           `json:"option,omitempty"`  // vote_cast
	Deadline time.Time        `json:"deadline,omitzero"` // poll_created
	At       time.Time        `json:"at"`
}

// Sink receives events as the ledger commits state transitions. Appends must
// never mutate ledger state; a failing sink is logged and skipped, not
// propagated into the operation's result.
type Sink interface {
	Append(e Event) error
}

func PollCreated(pollID uint64, title string, deadline, at time.Time) Event {
	return Event{
		ID:       uuid.New(),
		Kind:     KindPollCreated,
		PollID:   pollID,
		Title:    title,
		Deadline: deadline,
		At:       at,
	}
}

func CredentialIssued(pollID uint64, claimant identity.Address, amount uint64, at time.Time) Event {
	return Event{
		ID:      uuid.New(),
		Kind:    KindCredentialIssued,
		PollID:  pollID,
		Address: claimant,
		Amount:  amount,
		At:      at,
	}
}

func VoteCast(pollID uint64, voter identity.Address, option string, at time.Time) Event {
	return Event{
		ID:      uuid.New(),
		Kind:    KindVoteCast,
		PollID:  pollID,
		Address: voter,
		Option:  option,
		At:      at,
	}
}

// Log is an in-memory Sink used in tests and as a fallback when no database
// is configured.
type Log struct {
	mu     sync.RWMutex
	events []Event
}

func NewLog() *Log {
	return &Log{}
}

func (l *Log) Append(e Event) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.events = append(l.events, e)
	return nil
}

// Events returns a snapshot of everything appended so far, in order.
func (l *Log) Events() []Event {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]Event, len(l.events))
	copy(out, l.events)
	return out
}
