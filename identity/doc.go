// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package identity defines the Address type used to identify every caller.

# Addresses

Addresses are 0x-prefixed 40-hex-digit strings, normalized to lowercase:

	addr, err := identity.Parse(r.Header.Get("X-Caller-Address"))

Identity is carried on every request in the X-Caller-Address header. There
is no signature verification: the ledger trusts its identity source, and
enforcement is exact string equality against the stored authority address.

# Generation

Generate produces a random address from crypto/rand. The server uses it for
the ledger's burn-spender identity; tests use it for fixture voters.
*/
package identity
