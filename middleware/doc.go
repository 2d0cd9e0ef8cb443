// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP helpers shared by all handlers.

# Helpers

  - WithLogging: request start/completion logging via slog
  - JSONResponse / ErrorResponse: JSON encoding with status codes
  - ParseJSONBody: request body decoding
  - Caller: extracts the X-Caller-Address identity header
  - LedgerError: maps ledger sentinel errors to HTTP statuses
  - CORS: cross-origin support with preflight handling

# Status Mapping

LedgerError translates the core's error kinds:

	NotFound                          → 404
	Unauthorized                      → 401
	InvalidOption                     → 400
	NoCredential, NotAuthorized       → 403
	Closed, AlreadyClaimed,
	AlreadyVoted, NoOptions,
	AuthoritySet                      → 409

The wrapped error text is passed through verbatim so clients see the poll
id and address the failure applies to.
*/
package middleware
