// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/tokenpoll/events"
	"github.com/danielhkuo/tokenpoll/handlers"
	"github.com/danielhkuo/tokenpoll/identity"
	"github.com/danielhkuo/tokenpoll/ledger"
	"github.com/danielhkuo/tokenpoll/middleware"
	"github.com/danielhkuo/tokenpoll/token"
)

func NewRouter(led *ledger.Ledger, store *token.Store, spender identity.Address, eventStore *events.Store) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	pollHandler := handlers.NewPollHandler(led)
	votingHandler := handlers.NewVotingHandler(led)
	tokenHandler := handlers.NewTokenHandler(store, spender)
	eventsHandler := handlers.NewEventsHandler(eventStore)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Authority bootstrap
	mux.HandleFunc("POST /authority", middleware.WithLogging(pollHandler.Bootstrap))
	mux.HandleFunc("GET /authority", middleware.WithLogging(pollHandler.GetAuthority))

	// Poll management (authority only)
	mux.HandleFunc("POST /polls", middleware.WithLogging(pollHandler.CreatePoll))

	// Poll reads (public)
	mux.HandleFunc("GET /polls/{id}", middleware.WithLogging(pollHandler.GetPoll))
	mux.HandleFunc("GET /polls/{id}/results", middleware.WithLogging(pollHandler.GetResults))
	mux.HandleFunc("GET /polls/{id}/winner", middleware.WithLogging(pollHandler.GetWinner))

	// Credential and voting operations
	mux.HandleFunc("POST /polls/{id}/credential", middleware.WithLogging(votingHandler.Claim))
	mux.HandleFunc("POST /polls/{id}/votes", middleware.WithLogging(votingHandler.CastVote))
	mux.HandleFunc("POST /polls/{id}/mint-and-vote", middleware.WithLogging(votingHandler.MintAndVote))
	mux.HandleFunc("GET /polls/{id}/authorization", middleware.WithLogging(votingHandler.GetAuthorization))

	// Spendable-unit store (holder-facing)
	mux.HandleFunc("POST /token/approve", middleware.WithLogging(tokenHandler.Approve))
	mux.HandleFunc("GET /token/balance/{address}", middleware.WithLogging(tokenHandler.GetBalance))

	// Notification log readback
	mux.HandleFunc("GET /events", middleware.WithLogging(eventsHandler.List))
	mux.HandleFunc("GET /polls/{id}/events", middleware.WithLogging(eventsHandler.ListByPoll))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("tokenpoll API v1"))
	})

	return mux
}
