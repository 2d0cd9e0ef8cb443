// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package token

import "github.com/danielhkuo/tokenpoll/identity"

// Binding is a Store view fixed to one spender identity. The ledger holds a
// Binding for its own address, which satisfies ledger.BalanceStore: it can
// mint freely but may only burn what holders have approved to that spender.
type Binding struct {
	store   *Store
	spender identity.Address
}

// Bind returns the store scoped to the given spender.
func (s *Store) Bind(spender identity.Address) *Binding {
	return &Binding{store: s, spender: spender}
}

func (b *Binding) Mint(to identity.Address, amount uint64) {
	b.store.Mint(to, amount)
}

func (b *Binding) BalanceOf(holder identity.Address) uint64 {
	return b.store.BalanceOf(holder)
}

func (b *Binding) BurnFrom(holder identity.Address, amount uint64) error {
	return b.store.BurnFrom(holder, b.spender, amount)
}

func (b *Binding) Allowance(holder identity.Address) uint64 {
	return b.store.Allowance(holder, b.spender)
}

// Spender returns the identity this binding burns as.
func (b *Binding) Spender() identity.Address {
	return b.spender
}
