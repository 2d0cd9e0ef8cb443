// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/tokenpoll/identity"
	"github.com/danielhkuo/tokenpoll/middleware"
	"github.com/danielhkuo/tokenpoll/models"
	"github.com/danielhkuo/tokenpoll/token"
)

// TokenHandler exposes the holder-facing surface of the balance store: the
// approve step voters must perform before the ledger may burn their unit,
// and balance lookups. The ledger itself never calls these.
type TokenHandler struct {
	store   *token.Store
	spender identity.Address
}

func NewTokenHandler(store *token.Store, spender identity.Address) *TokenHandler {
	return &TokenHandler{store: store, spender: spender}
}

// Approve handles POST /token/approve
// The caller authorizes the ledger to burn up to amount units.
func (h *TokenHandler) Approve(w http.ResponseWriter, r *http.Request) {
	caller, err := middleware.Caller(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	var req models.ApproveRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	h.store.Approve(caller, h.spender, req.Amount)

	slog.Info("burn approved", "holder", caller, "amount", req.Amount)

	middleware.JSONResponse(w, http.StatusOK, models.ApproveResponse{
		Holder:    caller,
		Spender:   h.spender,
		Allowance: h.store.Allowance(caller, h.spender),
	})
}

// GetBalance handles GET /token/balance/{address}
func (h *TokenHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	addr, err := identity.Parse(r.PathValue("address"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.BalanceResponse{
		Address: addr,
		Balance: h.store.BalanceOf(addr),
	})
}
