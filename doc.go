// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the tokenpoll API server.

Tokenpoll is a token-gated poll ledger: an authority creates time-bounded
polls, each address may claim exactly one voting credential per poll, and
the credential is burned when its one vote is cast.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=file:tokenpoll.db go run main.go

Or with flags:

	go run main.go -p 3318 -d "postgres://..." -t postgres

# Configuration

Required settings:

  - DATABASE_URL (-d): event-log connection string (sqlite file or postgres)

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - AUTHORITY_ADDRESS (-authority): pre-set the poll-creation authority;
    otherwise bootstrap it with POST /authority

# Architecture

The server uses a handler-based architecture with dependency injection:

  - ledger: the core poll/credential/vote state machine (in-memory,
    single-writer)
  - token: spendable-unit balance store with approvals
  - events: append-only notification log (in-memory and SQL sinks)
  - handlers: HTTP request handlers (polls, voting, token, events)
  - router: route definitions using Go 1.22+ routing
  - middleware: logging, JSON helpers, ledger error mapping, CORS
  - models: request/response types
  - identity: address parsing and generation
  - db: event-log schema creation
  - cliparse: configuration parsing

Only the event log is persisted; ledger and balance state are in-memory
and rebuild empty on restart.

See package documentation for each component.
*/
package main
