// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes the event-log table:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for the table and indexes.

# Tables

The schema includes a single table:

  - event: append-only notification log (poll_created, credential_issued,
    vote_cast)

Poll, credential and vote state live in the in-memory ledger, not in SQL.
The database is a projection for event consumers, so the DDL is kept to the
lowest common denominator of postgres and sqlite: TEXT, INTEGER, and unix
second timestamps.

# Indexes

Indexes on:

  - event.poll_id
  - event.kind
  - event.occurred_at
*/
package db
