// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import "errors"

// Every operation fails with exactly one of these sentinels, wrapped with
// the poll id and address it applies to. A failed operation never leaves
// partial state behind.
var (
	// ErrNotFound: the poll id is at or beyond the registry length.
	ErrNotFound = errors.New("poll not found")

	// ErrUnauthorized: poll creation attempted by a non-authority caller,
	// or before the authority was bootstrapped.
	ErrUnauthorized = errors.New("caller is not the authority")

	// ErrClosed: the poll's deadline has passed. Openness flips exactly at
	// the deadline: a poll is open strictly before it, closed at and after.
	ErrClosed = errors.New("poll is closed")

	// ErrAlreadyClaimed: the (poll, address) issuance flag is already set.
	// Repeat claims fail loudly so callers can detect programming errors.
	ErrAlreadyClaimed = errors.New("credential already claimed")

	// ErrAlreadyVoted: the (poll, address) vote flag is already set.
	ErrAlreadyVoted = errors.New("vote already cast")

	// ErrNoCredential: the voter holds no spendable unit.
	ErrNoCredential = errors.New("no credential held")

	// ErrInvalidOption: the option index is outside the poll's option list.
	ErrInvalidOption = errors.New("option index out of range")

	// ErrNotAuthorized: the voter has not approved the ledger to burn the
	// one-unit vote cost. The vote record and tally increment are rolled
	// back when the burn is refused.
	ErrNotAuthorized = errors.New("burn not pre-authorized")

	// ErrNoOptions: a poll with an empty option list. Creation rejects it;
	// the winner scan re-checks it defensively.
	ErrNoOptions = errors.New("poll has no options")

	// ErrAuthoritySet: the authority bootstrap may only happen once.
	ErrAuthoritySet = errors.New("authority already set")
)
