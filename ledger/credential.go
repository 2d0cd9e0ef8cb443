// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"fmt"

	"github.com/danielhkuo/tokenpoll/identity"
)

// pollKey addresses the two flag maps: one entry per (poll, address) pair.
type pollKey struct {
	poll uint64
	addr identity.Address
}

// credentialBook tracks the single-issuance flag per (poll, address).
// The flag, not the token balance, is the source of truth for "has claimed":
// it transitions false to true exactly once and never reverses, even after
// the minted unit is spent. Not safe for concurrent use; the Ledger
// serializes access.
type credentialBook struct {
	issued map[pollKey]bool
}

func newCredentialBook() *credentialBook {
	return &credentialBook{issued: make(map[pollKey]bool)}
}

// issue sets the issuance flag. A second issue for the same pair fails with
// ErrAlreadyClaimed rather than silently no-oping.
func (b *credentialBook) issue(pollID uint64, claimant identity.Address) error {
	k := pollKey{poll: pollID, addr: claimant}
	if b.issued[k] {
		return fmt.Errorf("%w: poll %d, address %s", ErrAlreadyClaimed, pollID, claimant)
	}
	b.issued[k] = true
	return nil
}

func (b *credentialBook) hasIssued(pollID uint64, claimant identity.Address) bool {
	return b.issued[pollKey{poll: pollID, addr: claimant}]
}
