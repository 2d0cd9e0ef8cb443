// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/tokenpoll/models"
	"github.com/danielhkuo/tokenpoll/testutil"
)

func TestApprove(t *testing.T) {
	app := testutil.NewApp(t)
	handler := NewTokenHandler(app.Store, testutil.Spender)

	req := testutil.MakeRequest("POST", "/token/approve", models.ApproveRequest{Amount: 3}, callerHeader(string(testutil.Alice)))
	w := httptest.NewRecorder()
	handler.Approve(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.ApproveResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Allowance != 3 {
		t.Errorf("Expected allowance 3, got %d", resp.Allowance)
	}
	if resp.Spender != testutil.Spender {
		t.Errorf("Expected spender %s, got %s", testutil.Spender, resp.Spender)
	}

	// Approve replaces, not adds
	req = testutil.MakeRequest("POST", "/token/approve", models.ApproveRequest{Amount: 1}, callerHeader(string(testutil.Alice)))
	w = httptest.NewRecorder()
	handler.Approve(w, req)
	testutil.AssertJSON(t, w, &resp)
	if resp.Allowance != 1 {
		t.Errorf("Expected allowance replaced with 1, got %d", resp.Allowance)
	}

	// Zero amount revokes
	req = testutil.MakeRequest("POST", "/token/approve", models.ApproveRequest{Amount: 0}, callerHeader(string(testutil.Alice)))
	w = httptest.NewRecorder()
	handler.Approve(w, req)
	testutil.AssertJSON(t, w, &resp)
	if resp.Allowance != 0 {
		t.Errorf("Expected allowance revoked, got %d", resp.Allowance)
	}

	// Missing caller header is rejected
	req = testutil.MakeRequest("POST", "/token/approve", models.ApproveRequest{Amount: 1}, nil)
	w = httptest.NewRecorder()
	handler.Approve(w, req)
	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

func TestGetBalance(t *testing.T) {
	app := testutil.NewApp(t)
	handler := NewTokenHandler(app.Store, testutil.Spender)
	app.CreateTestPoll(t, "Lunch", "a", "b")
	app.ClaimFor(t, 0, testutil.Alice)

	get := func(addr string) *httptest.ResponseRecorder {
		req := testutil.MakeRequest("GET", "/token/balance/"+addr, nil, nil)
		req.SetPathValue("address", addr)
		w := httptest.NewRecorder()
		handler.GetBalance(w, req)
		return w
	}

	w := get(string(testutil.Alice))
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.BalanceResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Balance != 1 {
		t.Errorf("Expected balance 1 after claim, got %d", resp.Balance)
	}

	// Unknown addresses read zero, not an error
	w = get(string(testutil.Bob))
	testutil.AssertJSON(t, w, &resp)
	if resp.Balance != 0 {
		t.Errorf("Expected zero balance, got %d", resp.Balance)
	}

	testutil.AssertStatus(t, get("not-an-address"), http.StatusBadRequest)
}
