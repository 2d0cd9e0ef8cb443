// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"fmt"

	"github.com/danielhkuo/tokenpoll/identity"
)

// voteBook tracks the single-vote flag per (poll, address) and the running
// per-option counts. The sum of a poll's counts always equals the number of
// set vote flags for that poll; record and rollback are the only two
// mutations and both touch flag and count together. Not safe for concurrent
// use; the Ledger serializes access.
type voteBook struct {
	cast   map[pollKey]bool
	counts map[uint64][]uint64
}

func newVoteBook() *voteBook {
	return &voteBook{
		cast:   make(map[pollKey]bool),
		counts: make(map[uint64][]uint64),
	}
}

func (b *voteBook) hasVoted(pollID uint64, voter identity.Address) bool {
	return b.cast[pollKey{poll: pollID, addr: voter}]
}

// record sets the vote flag and increments the option count. The caller has
// already validated the option index against the poll's option list.
func (b *voteBook) record(pollID uint64, voter identity.Address, option, optionCount int) error {
	k := pollKey{poll: pollID, addr: voter}
	if b.cast[k] {
		return fmt.Errorf("%w: poll %d, address %s", ErrAlreadyVoted, pollID, voter)
	}

	counts, ok := b.counts[pollID]
	if !ok {
		counts = make([]uint64, optionCount)
		b.counts[pollID] = counts
	}

	b.cast[k] = true
	counts[option]++
	return nil
}

// rollback undoes a record when the subsequent credential burn is refused,
// restoring the exact pre-vote state.
func (b *voteBook) rollback(pollID uint64, voter identity.Address, option int) {
	delete(b.cast, pollKey{poll: pollID, addr: voter})
	b.counts[pollID][option]--
}

// tallies returns a copy of the poll's per-option counts, index-aligned to
// the option list and zero-filled for polls nobody has voted on yet.
func (b *voteBook) tallies(pollID uint64, optionCount int) []uint64 {
	out := make([]uint64, optionCount)
	copy(out, b.counts[pollID])
	return out
}

// winner scans options in ascending index order and keeps the first option
// whose count strictly exceeds the running maximum. Ties never displace an
// earlier leader, so the first option reaching the maximum wins.
func winner(p *Poll, counts []uint64) (string, error) {
	if len(p.Options) == 0 {
		return "", fmt.Errorf("%w: poll %d", ErrNoOptions, p.ID)
	}

	winnerIndex := 0
	maxCount := counts[0]
	for i := 1; i < len(counts); i++ {
		if counts[i] > maxCount {
			maxCount = counts[i]
			winnerIndex = i
		}
	}
	return p.Options[winnerIndex], nil
}
