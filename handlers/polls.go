// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/tokenpoll/identity"
	"github.com/danielhkuo/tokenpoll/ledger"
	"github.com/danielhkuo/tokenpoll/middleware"
	"github.com/danielhkuo/tokenpoll/models"
)

type PollHandler struct {
	ledger *ledger.Ledger
}

func NewPollHandler(l *ledger.Ledger) *PollHandler {
	return &PollHandler{ledger: l}
}

// parsePollID reads the {id} path value as an unsigned integer.
func parsePollID(r *http.Request) (uint64, bool) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
	return id, err == nil
}

// Bootstrap handles POST /authority
// Sets the poll-creation authority exactly once.
func (h *PollHandler) Bootstrap(w http.ResponseWriter, r *http.Request) {
	var req models.BootstrapRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	addr, err := identity.Parse(req.Authority)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.ledger.Bootstrap(addr); err != nil {
		middleware.LedgerError(w, err)
		return
	}

	slog.Info("authority bootstrapped", "authority", addr)

	middleware.JSONResponse(w, http.StatusCreated, models.AuthorityResponse{Authority: addr})
}

// GetAuthority handles GET /authority
func (h *PollHandler) GetAuthority(w http.ResponseWriter, r *http.Request) {
	authority := h.ledger.Authority()
	if authority.IsZero() {
		middleware.ErrorResponse(w, http.StatusNotFound, "Authority not bootstrapped")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.AuthorityResponse{Authority: authority})
}

// CreatePoll handles POST /polls
func (h *PollHandler) CreatePoll(w http.ResponseWriter, r *http.Request) {
	caller, err := middleware.Caller(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	var req models.CreatePollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Validate input
	if req.Title == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "title is required")
		return
	}
	if len(req.Options) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "options are required")
		return
	}
	if req.DurationSeconds <= 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "duration_seconds must be positive")
		return
	}

	pollID, err := h.ledger.CreatePoll(caller, req.Title, req.Options, time.Duration(req.DurationSeconds)*time.Second)
	if err != nil {
		middleware.LedgerError(w, err)
		return
	}

	poll, err := h.ledger.Details(pollID)
	if err != nil {
		slog.Error("failed to read back created poll", "poll_id", pollID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create poll")
		return
	}

	slog.Info("poll created", "poll_id", pollID, "title", req.Title, "deadline", poll.Deadline)

	middleware.JSONResponse(w, http.StatusCreated, models.CreatePollResponse{
		PollID:   pollID,
		Deadline: poll.Deadline,
	})
}

// GetPoll handles GET /polls/{id}
func (h *PollHandler) GetPoll(w http.ResponseWriter, r *http.Request) {
	pollID, ok := parsePollID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll id must be an integer")
		return
	}

	poll, err := h.ledger.Details(pollID)
	if err != nil {
		middleware.LedgerError(w, err)
		return
	}
	open, err := h.ledger.IsOpen(pollID)
	if err != nil {
		middleware.LedgerError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.PollResponse{
		PollID:   poll.ID,
		Title:    poll.Title,
		Options:  poll.Options,
		Deadline: poll.Deadline,
		Open:     open,
		ClosesIn: humanize.Time(poll.Deadline),
	})
}

// GetResults handles GET /polls/{id}/results
func (h *PollHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	pollID, ok := parsePollID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll id must be an integer")
		return
	}

	poll, err := h.ledger.Details(pollID)
	if err != nil {
		middleware.LedgerError(w, err)
		return
	}
	counts, err := h.ledger.Results(pollID)
	if err != nil {
		middleware.LedgerError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ResultsResponse{
		PollID:  pollID,
		Options: poll.Options,
		Counts:  counts,
	})
}

// GetWinner handles GET /polls/{id}/winner
func (h *PollHandler) GetWinner(w http.ResponseWriter, r *http.Request) {
	pollID, ok := parsePollID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll id must be an integer")
		return
	}

	label, err := h.ledger.Winner(pollID)
	if err != nil {
		middleware.LedgerError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.WinnerResponse{
		PollID: pollID,
		Winner: label,
	})
}
