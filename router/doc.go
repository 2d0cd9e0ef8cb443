// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the tokenpoll API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(led, store, spender, eventStore)

# Endpoints

Health:

	GET /health

Authority:

	POST /authority - Bootstrap the poll-creation authority (once)
	GET  /authority - Current authority

Poll management (authority only, X-Caller-Address must match):

	POST /polls - Create poll

Poll reads (public):

	GET /polls/{id}         - Details, open flag, humanized deadline
	GET /polls/{id}/results - Per-option counts
	GET /polls/{id}/winner  - First-max winner
	GET /polls/{id}/events  - Poll's notification log

Voting (caller from X-Caller-Address):

	POST /polls/{id}/credential    - Claim the one credential
	POST /polls/{id}/votes         - Spend it on an option index
	POST /polls/{id}/mint-and-vote - Claim-if-needed then vote
	GET  /polls/{id}/authorization - Burn pre-authorization check

Spendable-unit store:

	POST /token/approve           - Authorize the ledger's burn
	GET  /token/balance/{address} - Current balance

Notification log:

	GET /events - Recent events, newest first

# Handler Initialization

The router creates handler instances with dependency injection:

	pollHandler := handlers.NewPollHandler(led)
	votingHandler := handlers.NewVotingHandler(led)
	tokenHandler := handlers.NewTokenHandler(store, spender)
	eventsHandler := handlers.NewEventsHandler(eventStore)
*/
package router
