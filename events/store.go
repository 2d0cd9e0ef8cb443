// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package events

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/danielhkuo/tokenpoll/identity"
)

// Store is a Sink backed by the event table. Timestamps are stored as unix
// seconds so the same queries work on postgres and sqlite.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Append(e Event) error {
	var deadline int64
	if !e.Deadline.IsZero() {
		deadline = e.Deadline.Unix()
	}

	_, err := s.db.Exec(`
		INSERT INTO event (id, kind, poll_id, title, address, amount, option_label, deadline, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, e.ID.String(), string(e.Kind), int64(e.PollID), e.Title, string(e.Address),
		int64(e.Amount), e.Option, deadline, e.At.Unix())
	if err != nil {
		return errors.WithStack(err)
	}
	return nil
}

// List returns the most recent events, newest first, capped at limit.
func (s *Store) List(limit int) ([]Event, error) {
	rows, err := s.db.Query(`
		SELECT id, kind, poll_id, title, address, amount, option_label, deadline, occurred_at
		FROM event
		ORDER BY occurred_at DESC, id
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

// ListByPoll returns all events for one poll in append order.
func (s *Store) ListByPoll(pollID uint64) ([]Event, error) {
	rows, err := s.db.Query(`
		SELECT id, kind, poll_id, title, address, amount, option_label, deadline, occurred_at
		FROM event
		WHERE poll_id = $1
		ORDER BY occurred_at, id
	`, int64(pollID))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

func scanEvents(rows *sql.Rows) ([]Event, error) {
	out := []Event{}
	for rows.Next() {
		var (
			e                     Event
			id, kind, addr        string
			pollID, amount        int64
			deadline, occurredAt  int64
		)
		if err := rows.Scan(&id, &kind, &pollID, &e.Title, &addr, &amount, &e.Option, &deadline, &occurredAt); err != nil {
			return nil, errors.WithStack(err)
		}

		parsed, err := uuid.Parse(id)
		if err != nil {
			return nil, errors.Wrapf(err, "malformed event id %q", id)
		}
		e.ID = parsed
		e.Kind = Kind(kind)
		e.PollID = uint64(pollID)
		e.Address = identity.Address(addr)
		e.Amount = uint64(amount)
		if deadline != 0 {
			e.Deadline = time.Unix(deadline, 0).UTC()
		}
		e.At = time.Unix(occurredAt, 0).UTC()
		out = append(out, e)
	}
	return out, errors.WithStack(rows.Err())
}
