// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package token

import (
	"errors"
	"fmt"
	"sync"

	"github.com/danielhkuo/tokenpoll/identity"
)

var (
	ErrInsufficientBalance   = errors.New("insufficient balance")
	ErrInsufficientAllowance = errors.New("insufficient allowance")
)

// Store holds spendable credential units per address, plus the allowances
// holders grant to spenders. Balances never go negative: BurnFrom checks
// allowance first, then balance, and decrements both together.
type Store struct {
	mu         sync.RWMutex
	balances   map[identity.Address]uint64
	allowances map[identity.Address]map[identity.Address]uint64
	minted     uint64
	burned     uint64
}

func NewStore() *Store {
	return &Store{
		balances:   make(map[identity.Address]uint64),
		allowances: make(map[identity.Address]map[identity.Address]uint64),
	}
}

// Mint credits amount units to the holder.
func (s *Store) Mint(to identity.Address, amount uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.balances[to] += amount
	s.minted += amount
}

// BalanceOf returns the holder's current spendable balance.
func (s *Store) BalanceOf(holder identity.Address) uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.balances[holder]
}

// Approve sets (not adds to) the amount the spender may burn on the
// holder's behalf.
func (s *Store) Approve(holder, spender identity.Address, amount uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	granted, ok := s.allowances[holder]
	if !ok {
		granted = make(map[identity.Address]uint64)
		s.allowances[holder] = granted
	}
	granted[spender] = amount
}

// Allowance returns how much the spender is still authorized to burn from
// the holder.
func (s *Store) Allowance(holder, spender identity.Address) uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.allowances[holder][spender]
}

// BurnFrom destroys amount units held by holder, on the spender's behalf.
// The spender must have been approved for at least amount, and the holder
// must hold at least amount. Both the balance and the remaining allowance
// are reduced.
func (s *Store) BurnFrom(holder, spender identity.Address, amount uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	granted := s.allowances[holder][spender]
	if granted < amount {
		return fmt.Errorf("%w: %s approved %d for %s, need %d",
			ErrInsufficientAllowance, holder, granted, spender, amount)
	}
	if s.balances[holder] < amount {
		return fmt.Errorf("%w: %s holds %d, need %d",
			ErrInsufficientBalance, holder, s.balances[holder], amount)
	}

	s.allowances[holder][spender] = granted - amount
	s.balances[holder] -= amount
	s.burned += amount
	return nil
}

// Outstanding returns total minted minus total burned: the number of
// claimed-but-not-yet-spent units across the whole system.
func (s *Store) Outstanding() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.minted - s.burned
}
