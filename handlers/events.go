// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/tokenpoll/events"
	"github.com/danielhkuo/tokenpoll/middleware"
)

const defaultEventLimit = 100

type EventsHandler struct {
	store *events.Store
}

func NewEventsHandler(store *events.Store) *EventsHandler {
	return &EventsHandler{store: store}
}

// List handles GET /events?limit=N
func (h *EventsHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := defaultEventLimit
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			middleware.ErrorResponse(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	out, err := h.store.List(limit)
	if err != nil {
		slog.Error("failed to query events", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, out)
}

// ListByPoll handles GET /polls/{id}/events
func (h *EventsHandler) ListByPoll(w http.ResponseWriter, r *http.Request) {
	pollID, ok := parsePollID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll id must be an integer")
		return
	}

	out, err := h.store.ListByPoll(pollID)
	if err != nil {
		slog.Error("failed to query events", "poll_id", pollID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, out)
}
