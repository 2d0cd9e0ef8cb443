// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/tokenpoll/identity"
	"github.com/danielhkuo/tokenpoll/ledger"
	"github.com/danielhkuo/tokenpoll/middleware"
	"github.com/danielhkuo/tokenpoll/models"
)

type VotingHandler struct {
	ledger *ledger.Ledger
}

func NewVotingHandler(l *ledger.Ledger) *VotingHandler {
	return &VotingHandler{ledger: l}
}

// Claim handles POST /polls/{id}/credential
// Issues the caller's single voting credential for the poll.
func (h *VotingHandler) Claim(w http.ResponseWriter, r *http.Request) {
	pollID, ok := parsePollID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll id must be an integer")
		return
	}

	caller, err := middleware.Caller(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.ledger.Claim(pollID, caller); err != nil {
		middleware.LedgerError(w, err)
		return
	}

	slog.Info("credential claimed", "poll_id", pollID, "address", caller)

	middleware.JSONResponse(w, http.StatusCreated, models.ClaimResponse{
		PollID:  pollID,
		Address: caller,
		Amount:  ledger.CredentialCost,
	})
}

// CastVote handles POST /polls/{id}/votes
func (h *VotingHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	pollID, ok := parsePollID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll id must be an integer")
		return
	}

	caller, err := middleware.Caller(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	var req models.CastVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.ledger.CastVote(pollID, req.OptionIndex, caller); err != nil {
		middleware.LedgerError(w, err)
		return
	}

	poll, err := h.ledger.Details(pollID)
	if err != nil {
		slog.Error("failed to read back poll after vote", "poll_id", pollID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to cast vote")
		return
	}

	slog.Info("vote cast", "poll_id", pollID, "address", caller, "option", poll.Options[req.OptionIndex])

	middleware.JSONResponse(w, http.StatusCreated, models.CastVoteResponse{
		PollID:  pollID,
		Address: caller,
		Option:  poll.Options[req.OptionIndex],
	})
}

// MintAndVote handles POST /polls/{id}/mint-and-vote
// Claims the credential first when the caller has none, then votes. When
// the claim succeeds but the vote fails, the credential stays claimed for a
// later retry; the error response reflects only the vote failure.
func (h *VotingHandler) MintAndVote(w http.ResponseWriter, r *http.Request) {
	pollID, ok := parsePollID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll id must be an integer")
		return
	}

	caller, err := middleware.Caller(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	var req models.CastVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	claimed, err := h.ledger.MintAndVote(pollID, req.OptionIndex, caller)
	if err != nil {
		if claimed {
			slog.Warn("claim committed but vote failed", "poll_id", pollID, "address", caller, "error", err)
		}
		middleware.LedgerError(w, err)
		return
	}

	poll, err := h.ledger.Details(pollID)
	if err != nil {
		slog.Error("failed to read back poll after vote", "poll_id", pollID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to cast vote")
		return
	}

	slog.Info("mint-and-vote completed", "poll_id", pollID, "address", caller, "claimed", claimed)

	middleware.JSONResponse(w, http.StatusCreated, models.CastVoteResponse{
		PollID:  pollID,
		Address: caller,
		Option:  poll.Options[req.OptionIndex],
		Claimed: claimed,
	})
}

// GetAuthorization handles GET /polls/{id}/authorization?address=0x..
// Reports whether the address's burn pre-authorization meets the one-unit
// vote cost.
func (h *VotingHandler) GetAuthorization(w http.ResponseWriter, r *http.Request) {
	if _, ok := parsePollID(r); !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll id must be an integer")
		return
	}

	addr, err := identity.Parse(r.URL.Query().Get("address"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.AuthorizationResponse{
		Address:    addr,
		Allowance:  h.ledger.Allowance(addr),
		Authorized: h.ledger.CanBurn(addr),
	})
}
