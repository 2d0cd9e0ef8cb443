// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/tokenpoll/events"
	"github.com/danielhkuo/tokenpoll/testutil"
)

func TestListEvents(t *testing.T) {
	app := testutil.NewApp(t)
	handler := NewEventsHandler(app.Events)

	app.CreateTestPoll(t, "First", "a", "b")
	app.Clock.Advance(time.Minute)
	app.CreateTestPoll(t, "Second", "a", "b")
	app.Clock.Advance(time.Minute)
	app.ClaimFor(t, 0, testutil.Alice)

	list := func(query string) *httptest.ResponseRecorder {
		req := testutil.MakeRequest("GET", "/events"+query, nil, nil)
		w := httptest.NewRecorder()
		handler.List(w, req)
		return w
	}

	w := list("")
	testutil.AssertStatus(t, w, http.StatusOK)

	var out []events.Event
	testutil.AssertJSON(t, w, &out)
	if len(out) != 3 {
		t.Fatalf("Expected 3 events, got %d", len(out))
	}
	// Newest first
	if out[0].Kind != events.KindCredentialIssued {
		t.Errorf("Expected newest event first, got %s", out[0].Kind)
	}

	w = list("?limit=1")
	testutil.AssertJSON(t, w, &out)
	if len(out) != 1 {
		t.Errorf("Expected 1 event with limit=1, got %d", len(out))
	}

	testutil.AssertStatus(t, list("?limit=0"), http.StatusBadRequest)
	testutil.AssertStatus(t, list("?limit=abc"), http.StatusBadRequest)
}

func TestListEventsByPoll(t *testing.T) {
	app := testutil.NewApp(t)
	handler := NewEventsHandler(app.Events)

	app.CreateTestPoll(t, "First", "a", "b")
	app.CreateTestPoll(t, "Second", "a", "b")
	app.ClaimFor(t, 1, testutil.Alice)

	req := testutil.MakeRequest("GET", "/polls/1/events", nil, nil)
	req.SetPathValue("id", "1")
	w := httptest.NewRecorder()
	handler.ListByPoll(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var out []events.Event
	testutil.AssertJSON(t, w, &out)
	if len(out) != 2 {
		t.Fatalf("Expected 2 events for poll 1, got %d", len(out))
	}
	for _, e := range out {
		if e.PollID != 1 {
			t.Errorf("Event %s leaked from poll %d", e.ID, e.PollID)
		}
	}

	req = testutil.MakeRequest("GET", "/polls/abc/events", nil, nil)
	req.SetPathValue("id", "abc")
	w = httptest.NewRecorder()
	handler.ListByPoll(w, req)
	testutil.AssertStatus(t, w, http.StatusBadRequest)
}
