// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the tokenpoll API.

# Handler Types

Each handler is a struct with its dependencies injected via constructor:

  - PollHandler: authority bootstrap, poll creation and read endpoints
  - VotingHandler: credential claims, votes, the combined mint-and-vote
    path, and the burn-authorization helper
  - TokenHandler: the holder-facing approve/balance surface of the
    spendable-unit store
  - EventsHandler: notification log readback

	pollHandler := handlers.NewPollHandler(led)

# Identity

Every state-changing request carries the caller's address in the
X-Caller-Address header. There is no session or key scheme: the ledger
compares addresses by equality, and only the bootstrapped authority may
create polls.

# Voting Flow

	POST /authority                  → set the authority (once)
	POST /polls                      → authority creates a poll
	POST /polls/{id}/credential      → voter claims their one credential
	POST /token/approve              → voter authorizes the one-unit burn
	POST /polls/{id}/votes           → voter spends the credential
	GET  /polls/{id}/winner          → first-max winner

POST /polls/{id}/mint-and-vote collapses claim and vote into one call for
first-time voters. If the embedded vote fails, the claim is kept: retrying
the same call then skips straight to the vote.

# Error Mapping

Ledger failures pass through middleware.LedgerError, which maps the core's
sentinel errors onto HTTP statuses and forwards the error text verbatim.
*/
package handlers
