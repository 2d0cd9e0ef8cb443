// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"fmt"
	"time"
)

// Poll is immutable once created: the title, option labels and deadline
// never change. An option's identity is its position in Options, not its
// label. There is no stored "closed" state; closure is derived by comparing
// the clock against Deadline.
type Poll struct {
	ID       uint64
	Title    string
	Options  []string
	Deadline time.Time
}

// Open reports whether the poll still accepts claims and votes at the given
// instant. Open strictly before the deadline, closed at and after it.
func (p *Poll) Open(now time.Time) bool {
	return now.Before(p.Deadline)
}

// registry owns the append-only poll collection. Ids are assigned in
// creation order starting at 0, so a poll's id always equals the registry
// length at the moment it was created. Not safe for concurrent use; the
// Ledger serializes access.
type registry struct {
	polls []Poll
}

func (r *registry) create(title string, options []string, deadline time.Time) (*Poll, error) {
	if len(options) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoOptions, title)
	}

	p := Poll{
		ID:       uint64(len(r.polls)),
		Title:    title,
		Options:  append([]string(nil), options...),
		Deadline: deadline,
	}
	r.polls = append(r.polls, p)
	return &r.polls[len(r.polls)-1], nil
}

func (r *registry) get(id uint64) (*Poll, error) {
	if id >= uint64(len(r.polls)) {
		return nil, fmt.Errorf("%w: poll %d (have %d polls)", ErrNotFound, id, len(r.polls))
	}
	return &r.polls[id], nil
}

func (r *registry) count() int {
	return len(r.polls)
}
