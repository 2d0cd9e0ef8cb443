// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package events is the append-only notification log.

The ledger emits three kinds of events as operations commit:

  - poll_created: poll id, title, deadline
  - credential_issued: poll id, claimant, amount (always 1)
  - vote_cast: poll id, voter, chosen option label

# Sinks

Two Sink implementations are provided:

  - Log: in-memory, used by tests
  - Store: database/sql backed (postgres or sqlite), queried by the
    GET /events endpoints

Sink appends happen after ledger state has committed. The ledger treats a
failed append as a warning, never as an operation failure: the ledger maps
are the source of truth, the event log is a projection for consumers.
*/
package events
