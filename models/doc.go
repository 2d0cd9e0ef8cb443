// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - BootstrapRequest: authority
  - CreatePollRequest: title, options, duration_seconds
  - CastVoteRequest: option_index
  - ApproveRequest: amount

# Response Types

Types for JSON responses:

  - AuthorityResponse: authority
  - CreatePollResponse: poll_id, deadline
  - ClaimResponse: poll_id, address, amount
  - CastVoteResponse: poll_id, address, option, claimed
  - ApproveResponse: holder, spender, allowance
  - BalanceResponse: address, balance
  - AuthorizationResponse: address, allowance, authorized
  - ErrorResponse: error, message

# Domain Views

  - PollResponse: immutable poll attributes plus the derived open flag and
    a humanized closes_in string
  - ResultsResponse: per-option counts, index-aligned to options
  - WinnerResponse: the winning option label

Counts are always returned in option-index order; option identity is the
index, never the label.
*/
package models
