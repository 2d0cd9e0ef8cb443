// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ledger implements the token-gated poll state machine.

Each address may claim exactly one non-transferable voting credential per
poll and spend it exactly once to vote for one option index. Per
(poll, address) pair the state machine is two independent one-way flags:

	(unclaimed, unvoted) -> (claimed, unvoted) -> (claimed, voted)

Neither flag ever decreases, and (unclaimed, voted) is unreachable because
voting requires a held unit, which requires a prior claim.

# Components

  - registry: append-only poll collection, ids equal creation order
  - credentialBook: single-issuance flag per (poll, address)
  - voteBook: single-vote flag plus per-option counts
  - Ledger: the orchestrator composing the three under one mutex

# Concurrency

The Ledger is a single-writer state machine. One mutex serializes every
operation, so mutations are atomic and totally ordered, preconditions are
checked against committed state, and any failure aborts with no side
effects. The one documented exception is MintAndVote: a successful claim
followed by a failed vote keeps the credential for a later retry.

# Collaborators

The spendable-unit balance lives outside the package behind the
BalanceStore capability (production: token.Store bound to the ledger's
spender address). Notifications go to an events.Sink. Time is an injected
clock so deadline behavior is testable.

# Winner selection

Winner scans options in ascending index order and replaces the leader only
on a strictly greater count. Given counts [2 2 0] the first option wins;
later ties never displace an earlier leader.
*/
package ledger
