// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/danielhkuo/tokenpoll/identity"
	"github.com/danielhkuo/tokenpoll/middleware"
	"github.com/danielhkuo/tokenpoll/models"
	"github.com/danielhkuo/tokenpoll/testutil"
)

func callerHeader(addr string) map[string]string {
	return map[string]string{middleware.CallerHeader: addr}
}

func mustAddr(t *testing.T, s string) identity.Address {
	t.Helper()
	addr, err := identity.Parse(s)
	if err != nil {
		t.Fatalf("bad test address %q: %v", s, err)
	}
	return addr
}

func TestBootstrap(t *testing.T) {
	app := testutil.NewApp(t)
	handler := NewPollHandler(app.Ledger)

	// App already bootstrapped; a second bootstrap must conflict
	req := testutil.MakeRequest("POST", "/authority", models.BootstrapRequest{
		Authority: string(testutil.Alice),
	}, nil)
	w := httptest.NewRecorder()
	handler.Bootstrap(w, req)
	testutil.AssertStatus(t, w, http.StatusConflict)

	// Reads report the original authority
	req = testutil.MakeRequest("GET", "/authority", nil, nil)
	w = httptest.NewRecorder()
	handler.GetAuthority(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.AuthorityResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Authority != testutil.Authority {
		t.Errorf("Expected authority %s, got %s", testutil.Authority, resp.Authority)
	}

	// Malformed address is rejected before touching the ledger
	req = testutil.MakeRequest("POST", "/authority", models.BootstrapRequest{Authority: "nope"}, nil)
	w = httptest.NewRecorder()
	handler.Bootstrap(w, req)
	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

func TestCreatePoll(t *testing.T) {
	app := testutil.NewApp(t)
	handler := NewPollHandler(app.Ledger)

	tests := []struct {
		name           string
		headers        map[string]string
		requestBody    interface{}
		expectedStatus int
	}{
		{
			name:    "valid poll by authority",
			headers: callerHeader(string(testutil.Authority)),
			requestBody: models.CreatePollRequest{
				Title:           "Lunch",
				Options:         []string{"pizza", "sushi"},
				DurationSeconds: 3600,
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:    "non-authority caller",
			headers: callerHeader(string(testutil.Alice)),
			requestBody: models.CreatePollRequest{
				Title:           "Nope",
				Options:         []string{"a"},
				DurationSeconds: 3600,
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "missing caller header",
			requestBody:    models.CreatePollRequest{Title: "x", Options: []string{"a"}, DurationSeconds: 60},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing title",
			headers:        callerHeader(string(testutil.Authority)),
			requestBody:    models.CreatePollRequest{Options: []string{"a"}, DurationSeconds: 60},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "empty options",
			headers:        callerHeader(string(testutil.Authority)),
			requestBody:    models.CreatePollRequest{Title: "x", DurationSeconds: 60},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "non-positive duration",
			headers:        callerHeader(string(testutil.Authority)),
			requestBody:    models.CreatePollRequest{Title: "x", Options: []string{"a"}, DurationSeconds: 0},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/polls", tt.requestBody, tt.headers)
			w := httptest.NewRecorder()
			handler.CreatePoll(w, req)
			testutil.AssertStatus(t, w, tt.expectedStatus)
		})
	}
}

func TestCreatePollAssignsSequentialIDs(t *testing.T) {
	app := testutil.NewApp(t)
	handler := NewPollHandler(app.Ledger)

	for want := uint64(0); want < 3; want++ {
		req := testutil.MakeRequest("POST", "/polls", models.CreatePollRequest{
			Title:           "Poll",
			Options:         []string{"a", "b"},
			DurationSeconds: 3600,
		}, callerHeader(string(testutil.Authority)))
		w := httptest.NewRecorder()
		handler.CreatePoll(w, req)
		testutil.AssertStatus(t, w, http.StatusCreated)

		var resp models.CreatePollResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.PollID != want {
			t.Errorf("Expected poll_id %d, got %d", want, resp.PollID)
		}
		if !resp.Deadline.Equal(app.Clock.Now().Add(time.Hour)) {
			t.Errorf("Expected deadline %v, got %v", app.Clock.Now().Add(time.Hour), resp.Deadline)
		}
	}
}

func TestGetPoll(t *testing.T) {
	app := testutil.NewApp(t)
	handler := NewPollHandler(app.Ledger)
	pollID := app.CreateTestPoll(t, "Snacks", "chips", "fruit")

	makeGet := func(id string) *httptest.ResponseRecorder {
		req := testutil.MakeRequest("GET", "/polls/"+id, nil, nil)
		req.SetPathValue("id", id)
		w := httptest.NewRecorder()
		handler.GetPoll(w, req)
		return w
	}

	w := makeGet(strconv.FormatUint(pollID, 10))
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.PollResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Title != "Snacks" {
		t.Errorf("Expected title Snacks, got %s", resp.Title)
	}
	if len(resp.Options) != 2 || resp.Options[0] != "chips" {
		t.Errorf("Unexpected options: %v", resp.Options)
	}
	if !resp.Open {
		t.Error("Expected poll to be open")
	}
	if resp.ClosesIn == "" {
		t.Error("Expected humanized closes_in")
	}

	// Past the deadline the derived flag flips
	app.Clock.Advance(2 * time.Hour)
	w = makeGet(strconv.FormatUint(pollID, 10))
	var closed models.PollResponse
	testutil.AssertJSON(t, w, &closed)
	if closed.Open {
		t.Error("Expected poll to be closed after the deadline")
	}

	testutil.AssertStatus(t, makeGet("99"), http.StatusNotFound)
	testutil.AssertStatus(t, makeGet("abc"), http.StatusBadRequest)
}

func TestGetResultsAndWinner(t *testing.T) {
	app := testutil.NewApp(t)
	handler := NewPollHandler(app.Ledger)
	pollID := app.CreateTestPoll(t, "Tie", "Alice", "Bob", "Charlie")

	// Two votes each for the first two options: [2, 2, 0]
	voters := []string{
		"0x0000000000000000000000000000000000000010",
		"0x0000000000000000000000000000000000000011",
		"0x0000000000000000000000000000000000000012",
		"0x0000000000000000000000000000000000000013",
	}
	for i, v := range voters {
		addr := mustAddr(t, v)
		app.ClaimFor(t, pollID, addr)
		app.ApproveBurn(addr)
		if err := app.Ledger.CastVote(pollID, i/2, addr); err != nil {
			t.Fatalf("vote failed: %v", err)
		}
	}

	req := testutil.MakeRequest("GET", "/polls/0/results", nil, nil)
	req.SetPathValue("id", "0")
	w := httptest.NewRecorder()
	handler.GetResults(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var results models.ResultsResponse
	testutil.AssertJSON(t, w, &results)
	if len(results.Counts) != 3 || results.Counts[0] != 2 || results.Counts[1] != 2 || results.Counts[2] != 0 {
		t.Errorf("Expected counts [2 2 0], got %v", results.Counts)
	}

	req = testutil.MakeRequest("GET", "/polls/0/winner", nil, nil)
	req.SetPathValue("id", "0")
	w = httptest.NewRecorder()
	handler.GetWinner(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var winner models.WinnerResponse
	testutil.AssertJSON(t, w, &winner)
	if winner.Winner != "Alice" {
		t.Errorf("Expected tie to go to Alice, got %s", winner.Winner)
	}

	// Unknown poll ids surface as 404 on both reads
	req = testutil.MakeRequest("GET", "/polls/99/winner", nil, nil)
	req.SetPathValue("id", "99")
	w = httptest.NewRecorder()
	handler.GetWinner(w, req)
	testutil.AssertStatus(t, w, http.StatusNotFound)
}
