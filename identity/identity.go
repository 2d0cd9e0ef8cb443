// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package identity

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidAddress = errors.New("invalid address")
	ErrEmptyAddress   = errors.New("address is required")
)

// Address identifies a caller. Addresses are 0x-prefixed, 40 hex digits,
// stored lowercase so comparisons are plain string equality.
type Address string

// None is the zero address. No credential or vote is ever recorded for it.
const None Address = ""

const hexDigits = 40

// Parse validates and normalizes a caller-supplied address.
func Parse(s string) (Address, error) {
	if s == "" {
		return None, ErrEmptyAddress
	}
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return None, fmt.Errorf("%w: missing 0x prefix: %q", ErrInvalidAddress, s)
	}
	body := s[2:]
	if len(body) != hexDigits {
		return None, fmt.Errorf("%w: want %d hex digits, got %d", ErrInvalidAddress, hexDigits, len(body))
	}
	if _, err := hex.DecodeString(body); err != nil {
		return None, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}
	return Address("0x" + strings.ToLower(body)), nil
}

// Generate creates a random address. Used for the ledger's own spender
// identity at startup and for test fixtures.
func Generate() (Address, error) {
	b := make([]byte, hexDigits/2)
	_, err := rand.Read(b)
	if err != nil {
		return None, fmt.Errorf("failed to generate address: %w", err)
	}
	return Address("0x" + hex.EncodeToString(b)), nil
}

func (a Address) String() string {
	return string(a)
}

// IsZero reports whether the address is unset.
func (a Address) IsZero() bool {
	return a == None
}
