// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package token implements the spendable-unit balance store.

A credential is represented as a one-unit balance: the ledger mints one unit
when an address claims for a poll, and burns one unit when the vote is cast.
Holders must pre-authorize the burn:

	store.Approve(holder, ledgerAddr, 1)

# Bindings

The ledger never sees the full approve surface. It receives a Binding fixed
to its own spender address:

	led := ledger.New(store.Bind(ledgerAddr), sink)

so BurnFrom inside the ledger is always constrained by the holder's
allowance for that one spender. Tests substitute any other implementation
of ledger.BalanceStore.
*/
package token
