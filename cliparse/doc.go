// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

A .env file in the working directory is loaded first (via godotenv); CLI
flags take precedence over environment variables.

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: connection string for the event log (required)
  - DatabaseType: "sqlite" (default) or "postgres"
  - Authority: optional pre-set authority address

# CLI Flags

	-p          Server port
	-d          Database URL
	-t          Database type
	-authority  Authority address

# Environment Variables

	PORT              → -p
	DATABASE_URL      → -d
	DATABASE_TYPE     → -t
	AUTHORITY_ADDRESS → -authority

# Validation

ParseFlags returns an error if DATABASE_URL is missing, the database type
is unknown, or the authority address fails identity.Parse. The authority is
optional: when unset, the ledger waits for the POST /authority bootstrap.
*/
package cliparse
