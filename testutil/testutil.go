// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/tokenpoll/db"
	"github.com/danielhkuo/tokenpoll/events"
	"github.com/danielhkuo/tokenpoll/identity"
	"github.com/danielhkuo/tokenpoll/ledger"
	"github.com/danielhkuo/tokenpoll/token"
)

// Well-known addresses for tests.
const (
	Authority identity.Address = "0xa000000000000000000000000000000000000001"
	Spender   identity.Address = "0xfeedfeedfeedfeedfeedfeedfeedfeedfeedfeed"
	Alice     identity.Address = "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	Bob       identity.Address = "0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"
)

// Clock is a frozen time source tests advance by hand.
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

func NewClock() *Clock {
	return &Clock{now: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// SetupTestDB creates a fresh sqlite database with the event-log schema.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", "file:"+t.TempDir()+"/test.db")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// App is a fully wired ledger stack for handler tests: bootstrapped
// authority, frozen clock, sqlite-backed event log.
type App struct {
	Ledger *ledger.Ledger
	Store  *token.Store
	Events *events.Store
	DB     *sql.DB
	Clock  *Clock
}

func NewApp(t *testing.T) *App {
	t.Helper()

	conn := SetupTestDB(t)
	a := &App{
		Store:  token.NewStore(),
		Events: events.NewStore(conn),
		DB:     conn,
		Clock:  NewClock(),
	}
	a.Ledger = ledger.New(a.Store.Bind(Spender), a.Events, ledger.WithClock(a.Clock.Now))
	if err := a.Ledger.Bootstrap(Authority); err != nil {
		t.Fatalf("Failed to bootstrap authority: %v", err)
	}
	return a
}

// CreateTestPoll creates an authority poll with a one hour deadline.
func (a *App) CreateTestPoll(t *testing.T, title string, options ...string) uint64 {
	t.Helper()

	id, err := a.Ledger.CreatePoll(Authority, title, options, time.Hour)
	if err != nil {
		t.Fatalf("Failed to create test poll: %v", err)
	}
	return id
}

// ClaimFor issues the credential to addr for the poll.
func (a *App) ClaimFor(t *testing.T, pollID uint64, addr identity.Address) {
	t.Helper()

	if err := a.Ledger.Claim(pollID, addr); err != nil {
		t.Fatalf("Failed to claim credential: %v", err)
	}
}

// ApproveBurn lets the ledger burn one unit from addr.
func (a *App) ApproveBurn(addr identity.Address) {
	a.Store.Approve(addr, Spender, 1)
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
