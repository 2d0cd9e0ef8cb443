package models

import (
	"time"

	"github.com/danielhkuo/tokenpoll/identity"
)

// Request types

type BootstrapRequest struct {
	Authority string `json:"authority"`
}

type CreatePollRequest struct {
	Title           string   `json:"title"`
	Options         []string `json:"options"`
	DurationSeconds int64    `json:"duration_seconds"`
}

type CastVoteRequest struct {
	OptionIndex int `json:"option_index"`
}

type ApproveRequest struct {
	Amount uint64 `json:"amount"`
}

// Response types

type AuthorityResponse struct {
	Authority identity.Address `json:"authority"`
}

type CreatePollResponse struct {
	PollID   uint64    `json:"poll_id"`
	Deadline time.Time `json:"deadline"`
}

type ClaimResponse struct {
	PollID  uint64           `json:"poll_id"`
	Address identity.Address `json:"address"`
	Amount  uint64           `json:"amount"`
}

type CastVoteResponse struct {
	PollID  uint64           `json:"poll_id"`
	Address identity.Address `json:"address"`
	Option  string           `json:"option"`
	Claimed bool             `json:"claimed,omitempty"` // mint-and-vote only: claim happened in this call
}

type ApproveResponse struct {
	Holder    identity.Address `json:"holder"`
	Spender   identity.Address `json:"spender"`
	Allowance uint64           `json:"allowance"`
}

type BalanceResponse struct {
	Address identity.Address `json:"address"`
	Balance uint64           `json:"balance"`
}

type AuthorizationResponse struct {
	Address    identity.Address `json:"address"`
	Allowance  uint64           `json:"allowance"`
	Authorized bool             `json:"authorized"` // allowance covers the one-unit vote cost
}

// Domain views

type PollResponse struct {
	PollID   uint64    `json:"poll_id"`
	Title    string    `json:"title"`
	Options  []string  `json:"options"`
	Deadline time.Time `json:"deadline"`
	Open     bool      `json:"open"`
	ClosesIn string    `json:"closes_in"` // humanized, e.g. "59 minutes from now"
}

type ResultsResponse struct {
	PollID  uint64   `json:"poll_id"`
	Options []string `json:"options"`
	Counts  []uint64 `json:"counts"` // index-aligned to options
}

type WinnerResponse struct {
	PollID uint64 `json:"poll_id"`
	Winner string `json:"winner"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
